/*
service.go - Employee and leave-request lifecycles

PURPOSE:
  Orchestrates the two lifecycles over the store interfaces:

  EmployeeService:
    create (entitlement from tenure), get/list/update, delete (cascades to
    the employee's leave requests), and the nightly entitlement refresh.

  LeaveRequestService:
    create (validated, starts WAITING_FOR_APPROVAL), administrative update,
    status transitions, delete, list.

STATE MACHINE:
  WAITING_FOR_APPROVAL ──▶ APPROVED   (terminal; debits the balance)
                      └──▶ REJECTED   (re-openable; no transition guard
                                       blocks leaving REJECTED)

  Approval debits BusinessDaySpan(start, end) — the weekend-exclusive count,
  deliberately distinct from TotalLeaveDays — and persists the shared
  employee record before the request itself.

Within one operation, load -> validate -> mutate -> persist runs as a single
logical unit; the stores serialize concurrent writers.
*/
package leave

import (
	"context"
	"log"

	"github.com/warp/leave-engine/calendar"
)

// =============================================================================
// EMPLOYEE SERVICE
// =============================================================================

// EmployeeService manages employee records and their leave balances.
type EmployeeService struct {
	employees EmployeeStore
	requests  LeaveRequestStore
	clock     calendar.Clock
}

// NewEmployeeService wires an EmployeeService. The request store is needed
// for the delete cascade.
func NewEmployeeService(employees EmployeeStore, requests LeaveRequestStore, clock calendar.Clock) *EmployeeService {
	return &EmployeeService{employees: employees, requests: requests, clock: clock}
}

// EmployeeUpdate is a partial update; nil fields keep the stored value.
type EmployeeUpdate struct {
	Name               *string
	HireDate           *calendar.Date
	RemainingLeaveDays *int
}

// Create registers a new employee with an entitlement computed from tenure.
// A hire date in the future is rejected with ErrInvalidDate.
func (s *EmployeeService) Create(ctx context.Context, name string, hireDate calendar.Date) (*Employee, error) {
	years := calendar.YearsBetween(hireDate, s.clock.Today())
	entitlement, err := EntitlementForTenure(years)
	if err != nil {
		return nil, err
	}

	emp := &Employee{
		Name:               name,
		HireDate:           hireDate,
		RemainingLeaveDays: entitlement,
	}
	return s.employees.Save(ctx, emp)
}

// Get loads an employee by id.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*Employee, error) {
	return s.employees.Get(ctx, id)
}

// List returns all employees.
func (s *EmployeeService) List(ctx context.Context) ([]*Employee, error) {
	return s.employees.List(ctx)
}

// Update applies a partial update to an employee.
func (s *EmployeeService) Update(ctx context.Context, id int64, upd EmployeeUpdate) (*Employee, error) {
	emp, err := s.employees.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		emp.Name = *upd.Name
	}
	if upd.HireDate != nil {
		emp.HireDate = *upd.HireDate
	}
	if upd.RemainingLeaveDays != nil {
		emp.RemainingLeaveDays = *upd.RemainingLeaveDays
	}
	return s.employees.Save(ctx, emp)
}

// Delete removes an employee and cascades to all leave requests referencing
// it, so no orphan records remain.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	emp, err := s.employees.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requests.DeleteByEmployee(ctx, emp.ID); err != nil {
		return err
	}
	return s.employees.Delete(ctx, emp.ID)
}

// LeaveRequests returns all leave requests for the employee.
func (s *EmployeeService) LeaveRequests(ctx context.Context, id int64) ([]*LeaveRequest, error) {
	if _, err := s.employees.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.requests.ListByEmployee(ctx, id)
}

// RefreshEntitlements recomputes every employee's entitlement from current
// tenure and bulk-persists the result. The balance is OVERWRITTEN, not
// incremented: accrual is idempotent per tenure bracket, which also means
// mid-cycle debits from approved leave are discarded. Intended policy.
//
// An employee whose entitlement cannot be computed (hire date in the future)
// is logged and skipped; one bad record does not block the pass.
func (s *EmployeeService) RefreshEntitlements(ctx context.Context) error {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return err
	}

	today := s.clock.Today()
	updated := make([]*Employee, 0, len(employees))
	for _, emp := range employees {
		entitlement, err := EntitlementForTenure(calendar.YearsBetween(emp.HireDate, today))
		if err != nil {
			log.Printf("[Reaccrual] skipping employee %d: %v", emp.ID, err)
			continue
		}
		emp.RemainingLeaveDays = entitlement
		updated = append(updated, emp)
	}

	if len(updated) == 0 {
		return nil
	}
	_, err = s.employees.SaveAll(ctx, updated)
	return err
}

// =============================================================================
// LEAVE REQUEST SERVICE
// =============================================================================

// LeaveRequestService manages the leave-request lifecycle.
type LeaveRequestService struct {
	requests  LeaveRequestStore
	employees EmployeeStore
	validator *Validator
}

// NewLeaveRequestService wires a LeaveRequestService.
func NewLeaveRequestService(requests LeaveRequestStore, employees EmployeeStore, clock calendar.Clock) *LeaveRequestService {
	return &LeaveRequestService{
		requests:  requests,
		employees: employees,
		validator: &Validator{Clock: clock},
	}
}

// CreateLeaveRequest is the input to Create. When TotalLeaveDays is nil the
// inclusive calendar span of [StartDate, EndDate] is used.
type CreateLeaveRequest struct {
	EmployeeID     int64
	StartDate      calendar.Date
	EndDate        calendar.Date
	TotalLeaveDays *int
	Reason         Reason
	Note           string
}

// LeaveRequestUpdate is a partial update; nil fields keep the stored value.
// When either date changes, the total span is recomputed.
type LeaveRequestUpdate struct {
	Reason    *Reason
	StartDate *calendar.Date
	EndDate   *calendar.Date
	Note      *string
}

// Create validates and persists a new request in WAITING_FOR_APPROVAL.
// No balance debit occurs at creation time.
func (s *LeaveRequestService) Create(ctx context.Context, in CreateLeaveRequest) (*LeaveRequest, error) {
	emp, err := s.employees.Get(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	if err := validateDateOrder(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	totalDays := calendar.InclusiveDaySpan(in.StartDate, in.EndDate)
	if in.TotalLeaveDays != nil {
		totalDays = *in.TotalLeaveDays
	}

	if err := s.validator.ValidateCreate(emp, in.StartDate, in.EndDate, totalDays); err != nil {
		return nil, err
	}

	req := &LeaveRequest{
		EmployeeID:     emp.ID,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		TotalLeaveDays: totalDays,
		Status:         StatusWaitingForApproval,
		Reason:         in.Reason,
		Note:           in.Note,
	}
	return s.requests.Save(ctx, req)
}

// Get loads a leave request by id.
func (s *LeaveRequestService) Get(ctx context.Context, id int64) (*LeaveRequest, error) {
	return s.requests.Get(ctx, id)
}

// List returns all leave requests.
func (s *LeaveRequestService) List(ctx context.Context) ([]*LeaveRequest, error) {
	return s.requests.List(ctx)
}

// Update applies an administrative edit. Reason and note overwrite without a
// status guard; a date change recomputes the total span. Unlike Create, no
// balance or past-date re-validation happens here — approval re-checks both.
func (s *LeaveRequestService) Update(ctx context.Context, id int64, upd LeaveRequestUpdate) (*LeaveRequest, error) {
	req, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Reason != nil {
		req.Reason = *upd.Reason
	}
	if upd.Note != nil {
		req.Note = *upd.Note
	}

	start, end := req.StartDate, req.EndDate
	if upd.StartDate != nil {
		start = *upd.StartDate
	}
	if upd.EndDate != nil {
		end = *upd.EndDate
	}

	if !start.Equal(req.StartDate) || !end.Equal(req.EndDate) {
		if err := validateDateOrder(start, end); err != nil {
			return nil, err
		}
		req.StartDate = start
		req.EndDate = end
		req.TotalLeaveDays = calendar.InclusiveDaySpan(start, end)
	}

	return s.requests.Save(ctx, req)
}

// UpdateStatus moves a request through the state machine. APPROVED requests
// are locked. Approving re-runs the validation rules against the live
// balance, then debits the weekend-exclusive business-day count of the span
// and persists the shared employee record before the request.
func (s *LeaveRequestService) UpdateStatus(ctx context.Context, id int64, status Status) (*LeaveRequest, error) {
	if !status.Valid() {
		return nil, &InvalidRequestError{
			Rule:    RuleUnknownStatus,
			Message: "unknown leave request status",
		}
	}

	req, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status == StatusApproved {
		return nil, &InvalidRequestError{
			Rule:    RuleApprovedLocked,
			Message: "cannot update APPROVED leave requests",
		}
	}

	if status == StatusApproved {
		emp, err := s.employees.Get(ctx, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		if err := s.validator.ValidateApprove(emp, req); err != nil {
			return nil, err
		}

		debit := calendar.BusinessDaySpan(req.StartDate, req.EndDate)
		emp.RemainingLeaveDays -= debit
		if _, err := s.employees.Save(ctx, emp); err != nil {
			return nil, err
		}
	}

	req.Status = status
	return s.requests.Save(ctx, req)
}

// Delete removes a leave request regardless of its status.
func (s *LeaveRequestService) Delete(ctx context.Context, id int64) error {
	req, err := s.requests.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.requests.Delete(ctx, req.ID)
}
