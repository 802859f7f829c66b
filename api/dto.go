/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Request types carry go-playground/validator struct tags. Handlers run the
  shared validator instance before touching domain logic, so malformed input
  never reaches the services. Dates travel as "YYYY-MM-DD" strings.

SEE ALSO:
  - handlers.go: Uses these types
  - leave/types.go: Domain model these map to
*/
package api

import (
	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// CreateEmployeeRequest is the request to create an employee.
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required"`
	HireDate string `json:"hire_date" validate:"required,datetime=2006-01-02"`
}

// UpdateEmployeeRequest is a partial employee update. Omitted fields keep
// their stored values.
type UpdateEmployeeRequest struct {
	Name               *string `json:"name,omitempty" validate:"omitempty,min=1"`
	HireDate           *string `json:"hire_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RemainingLeaveDays *int    `json:"remaining_leave_days,omitempty" validate:"omitempty,gte=0"`
}

// CreateLeaveRequestRequest is the request to submit a leave request.
// TotalLeaveDays is optional; when omitted the server computes the inclusive
// calendar span of the dates.
type CreateLeaveRequestRequest struct {
	EmployeeID     int64  `json:"employee_id" validate:"required,gt=0"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" validate:"required,datetime=2006-01-02"`
	TotalLeaveDays *int   `json:"total_leave_days,omitempty" validate:"omitempty,gt=0"`
	Reason         string `json:"reason" validate:"required,oneof=SICKNESS VACATION FAMILY_EMERGENCY PERSONAL_LEAVE MATERNITY_LEAVE PATERNITY_LEAVE EDUCATION"`
	Note           string `json:"note,omitempty"`
}

// UpdateLeaveRequestRequest is a partial leave-request edit.
type UpdateLeaveRequestRequest struct {
	Reason    *string `json:"reason,omitempty" validate:"omitempty,oneof=SICKNESS VACATION FAMILY_EMERGENCY PERSONAL_LEAVE MATERNITY_LEAVE PATERNITY_LEAVE EDUCATION"`
	StartDate *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Note      *string `json:"note,omitempty"`
}

// UpdateLeaveRequestStatusRequest moves a request through the state machine.
type UpdateLeaveRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=WAITING_FOR_APPROVAL APPROVED REJECTED"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	HireDate           string `json:"hire_date"`
	RemainingLeaveDays int    `json:"remaining_leave_days"`
}

// LeaveRequestDTO represents a leave request in API responses.
type LeaveRequestDTO struct {
	ID             int64  `json:"id"`
	EmployeeID     int64  `json:"employee_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	TotalLeaveDays int    `json:"total_leave_days"`
	Status         string `json:"status"`
	Reason         string `json:"reason"`
	Note           string `json:"note,omitempty"`
}

// ErrorResponse is the JSON body for all error statuses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toEmployeeDTO(emp *leave.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:                 emp.ID,
		Name:               emp.Name,
		HireDate:           emp.HireDate.String(),
		RemainingLeaveDays: emp.RemainingLeaveDays,
	}
}

func toEmployeeDTOs(emps []*leave.Employee) []EmployeeDTO {
	dtos := make([]EmployeeDTO, len(emps))
	for i, emp := range emps {
		dtos[i] = toEmployeeDTO(emp)
	}
	return dtos
}

func toLeaveRequestDTO(req *leave.LeaveRequest) LeaveRequestDTO {
	return LeaveRequestDTO{
		ID:             req.ID,
		EmployeeID:     req.EmployeeID,
		StartDate:      req.StartDate.String(),
		EndDate:        req.EndDate.String(),
		TotalLeaveDays: req.TotalLeaveDays,
		Status:         string(req.Status),
		Reason:         string(req.Reason),
		Note:           req.Note,
	}
}

func toLeaveRequestDTOs(reqs []*leave.LeaveRequest) []LeaveRequestDTO {
	dtos := make([]LeaveRequestDTO, len(reqs))
	for i, req := range reqs {
		dtos[i] = toLeaveRequestDTO(req)
	}
	return dtos
}

// parseDate converts an already-validated "YYYY-MM-DD" string. The datetime
// validator tag guarantees the format, so failures here are programmer error.
func parseDate(s string) calendar.Date {
	return calendar.MustParse(s)
}
