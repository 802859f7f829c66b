/*
handlers.go - HTTP API handlers for the leave engine

PURPOSE:
  Exposes the employee and leave-request services via REST API. Handles HTTP
  request/response, JSON serialization, input validation, and delegates to
  domain logic.

ENDPOINTS:
  Employees:
    GET    /api/employees                     List all employees
    POST   /api/employees                     Create employee
    GET    /api/employees/{id}                Get employee details
    PUT    /api/employees/{id}                Update employee
    DELETE /api/employees/{id}                Delete employee (cascades)
    GET    /api/employees/{id}/leave-requests Requests for one employee

  Leave requests:
    GET    /api/leave-requests                List all leave requests
    POST   /api/leave-requests                Create leave request
    GET    /api/leave-requests/{id}           Get leave request
    PUT    /api/leave-requests/{id}           Administrative edit
    PUT    /api/leave-requests/{id}/status    Approve / reject / reopen
    DELETE /api/leave-requests/{id}           Delete leave request

ERROR HANDLING:
  Domain errors map to HTTP status by kind:
  - 400: rule violations and invalid dates (leave.IsClientError)
  - 404: unknown employee / request ids (leave.IsNotFound)
  - 422: request body fails struct validation
  - 500: storage failures and everything else

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Employees *leave.EmployeeService
	Requests  *leave.LeaveRequestService

	validate *validator.Validate
}

// NewHandler creates a new handler over the two services.
func NewHandler(employees *leave.EmployeeService, requests *leave.LeaveRequestService) *Handler {
	return &Handler{
		Employees: employees,
		Requests:  requests,
		validate:  validator.New(),
	}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees.
// GET /api/employees
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Employees.List(r.Context())
	if err != nil {
		writeDomainError(w, "Failed to list employees", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTOs(employees))
}

// CreateEmployee registers a new employee. The leave balance is computed
// server-side from the hire date.
// POST /api/employees
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.Employees.Create(r.Context(), req.Name, parseDate(req.HireDate))
	if err != nil {
		writeDomainError(w, "Failed to create employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// GetEmployee returns a single employee.
// GET /api/employees/{id}
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	emp, err := h.Employees.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// UpdateEmployee applies a partial update to an employee.
// PUT /api/employees/{id}
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	upd := leave.EmployeeUpdate{
		Name:               req.Name,
		RemainingLeaveDays: req.RemainingLeaveDays,
	}
	if req.HireDate != nil {
		d := parseDate(*req.HireDate)
		upd.HireDate = &d
	}

	emp, err := h.Employees.Update(r.Context(), id, upd)
	if err != nil {
		writeDomainError(w, "Failed to update employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// DeleteEmployee removes an employee and all of their leave requests.
// DELETE /api/employees/{id}
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Employees.Delete(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to delete employee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListEmployeeLeaveRequests returns all requests for one employee.
// GET /api/employees/{id}/leave-requests
func (h *Handler) ListEmployeeLeaveRequests(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	reqs, err := h.Employees.LeaveRequests(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to list leave requests", err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaveRequestDTOs(reqs))
}

// =============================================================================
// LEAVE REQUEST HANDLERS
// =============================================================================

// ListLeaveRequests returns all leave requests.
// GET /api/leave-requests
func (h *Handler) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.Requests.List(r.Context())
	if err != nil {
		writeDomainError(w, "Failed to list leave requests", err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaveRequestDTOs(reqs))
}

// CreateLeaveRequest submits a new leave request.
// POST /api/leave-requests
func (h *Handler) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	var req CreateLeaveRequestRequest
	if !h.decode(w, r, &req) {
		return
	}

	created, err := h.Requests.Create(r.Context(), leave.CreateLeaveRequest{
		EmployeeID:     req.EmployeeID,
		StartDate:      parseDate(req.StartDate),
		EndDate:        parseDate(req.EndDate),
		TotalLeaveDays: req.TotalLeaveDays,
		Reason:         leave.Reason(req.Reason),
		Note:           req.Note,
	})
	if err != nil {
		writeDomainError(w, "Failed to create leave request", err)
		return
	}
	writeJSON(w, http.StatusCreated, toLeaveRequestDTO(created))
}

// GetLeaveRequest returns a single leave request.
// GET /api/leave-requests/{id}
func (h *Handler) GetLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	req, err := h.Requests.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get leave request", err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaveRequestDTO(req))
}

// UpdateLeaveRequest applies an administrative edit to a request.
// PUT /api/leave-requests/{id}
func (h *Handler) UpdateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateLeaveRequestRequest
	if !h.decode(w, r, &req) {
		return
	}

	upd := leave.LeaveRequestUpdate{Note: req.Note}
	if req.Reason != nil {
		reason := leave.Reason(*req.Reason)
		upd.Reason = &reason
	}
	if req.StartDate != nil {
		d := parseDate(*req.StartDate)
		upd.StartDate = &d
	}
	if req.EndDate != nil {
		d := parseDate(*req.EndDate)
		upd.EndDate = &d
	}

	updated, err := h.Requests.Update(r.Context(), id, upd)
	if err != nil {
		writeDomainError(w, "Failed to update leave request", err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaveRequestDTO(updated))
}

// UpdateLeaveRequestStatus moves a request through the approval state machine.
// PUT /api/leave-requests/{id}/status
func (h *Handler) UpdateLeaveRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateLeaveRequestStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	updated, err := h.Requests.UpdateStatus(r.Context(), id, leave.Status(req.Status))
	if err != nil {
		writeDomainError(w, "Failed to update leave request status", err)
		return
	}
	writeJSON(w, http.StatusOK, toLeaveRequestDTO(updated))
}

// DeleteLeaveRequest removes a leave request.
// DELETE /api/leave-requests/{id}
func (h *Handler) DeleteLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Requests.Delete(r.Context(), id); err != nil {
		writeDomainError(w, "Failed to delete leave request", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

// decode parses and validates a JSON request body. On failure it writes the
// error response and returns false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "Request body is empty", nil)
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeError(w, http.StatusUnprocessableEntity, validationMessage(verrs), nil)
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.ActualTag() {
		case "required":
			msgs = append(msgs, "field "+fe.Field()+" is required")
		case "datetime":
			msgs = append(msgs, "field "+fe.Field()+" must be a YYYY-MM-DD date")
		case "oneof":
			msgs = append(msgs, "field "+fe.Field()+" must be one of: "+fe.Param())
		default:
			msgs = append(msgs, "field "+fe.Field()+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

// pathID parses the {id} chi URL parameter. On failure it writes a 400 and
// returns ok=false.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid id: "+raw, nil)
		return 0, false
	}
	return id, true
}

// writeDomainError maps a domain error to an HTTP status.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case leave.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case leave.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
