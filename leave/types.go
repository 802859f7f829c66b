// Package leave implements the leave-request lifecycle and balance-accrual
// engine: employees with tenure-derived entitlements, leave requests moving
// through an approval state machine, and the nightly re-accrual that keeps
// balances aligned with tenure brackets.
package leave

import (
	"fmt"

	"github.com/warp/leave-engine/calendar"
)

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee carries the balance ledger: RemainingLeaveDays is mutated only by
// accrual (overwrite) and by approved-request debits.
type Employee struct {
	ID                 int64
	Name               string
	HireDate           calendar.Date
	RemainingLeaveDays int
}

// =============================================================================
// LEAVE REQUEST
// =============================================================================

// Status is the leave-request lifecycle state.
type Status string

const (
	StatusWaitingForApproval Status = "WAITING_FOR_APPROVAL"
	StatusApproved           Status = "APPROVED"
	StatusRejected           Status = "REJECTED"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusWaitingForApproval, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ParseStatus converts a wire string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown leave request status %q", s)
	}
	return st, nil
}

// Reason is the fixed enumeration of why leave is being taken.
type Reason string

const (
	ReasonSickness        Reason = "SICKNESS"
	ReasonVacation        Reason = "VACATION"
	ReasonFamilyEmergency Reason = "FAMILY_EMERGENCY"
	ReasonPersonalLeave   Reason = "PERSONAL_LEAVE"
	ReasonMaternityLeave  Reason = "MATERNITY_LEAVE"
	ReasonPaternityLeave  Reason = "PATERNITY_LEAVE"
	ReasonEducation       Reason = "EDUCATION"
)

// Valid reports whether r is one of the known reasons.
func (r Reason) Valid() bool {
	switch r {
	case ReasonSickness, ReasonVacation, ReasonFamilyEmergency,
		ReasonPersonalLeave, ReasonMaternityLeave, ReasonPaternityLeave,
		ReasonEducation:
		return true
	}
	return false
}

// ParseReason converts a wire string into a Reason.
func ParseReason(s string) (Reason, error) {
	r := Reason(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown leave request reason %q", s)
	}
	return r, nil
}

// LeaveRequest is a span of requested days owned by one employee.
// TotalLeaveDays is the inclusive calendar span (weekends included); the
// balance debit on approval is the weekend-exclusive business-day count.
type LeaveRequest struct {
	ID             int64
	EmployeeID     int64
	StartDate      calendar.Date
	EndDate        calendar.Date
	TotalLeaveDays int
	Status         Status
	Reason         Reason
	Note           string
}
