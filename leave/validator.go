/*
validator.go - Business rules for admitting leave requests

PURPOSE:
  The rule set that admits or rejects a leave-request creation or approval,
  given the employee's live balance and the request's dates. Each violation
  is an InvalidRequestError carrying a stable rule code and a human-readable
  message.

RULES:
  date_order           end date precedes start date
  newly_hired_cap      0 years tenure and more than 5 requested days
  past_start_date      start date before today
  insufficient_balance span exceeds the remaining balance
  weekend_only         both start AND end fall on a weekend (create only)
  approved_locked      status change attempted on an APPROVED request

Updates to dates/reason deliberately skip the balance and past-date rules:
edits are administrative and re-validation happens at approval time.

The weekend_only condition is two-sided and therefore almost never fires for
a multi-day span. It is kept literally as the captured business rule; see
the targeted test documenting the actual behavior.
*/
package leave

import "github.com/warp/leave-engine/calendar"

// Rule codes carried by InvalidRequestError.
const (
	RuleDateOrder           = "date_order"
	RuleNewlyHiredCap       = "newly_hired_cap"
	RulePastStartDate       = "past_start_date"
	RuleInsufficientBalance = "insufficient_balance"
	RuleWeekendOnly         = "weekend_only"
	RuleApprovedLocked      = "approved_locked"
	RuleUnknownStatus       = "unknown_status"
)

// NewlyHiredAdvanceCap is the most leave days an employee with less than one
// year of tenure may take in advance.
const NewlyHiredAdvanceCap = 5

// Validator checks leave requests against the business rules and the
// employee's live balance. "Today" comes from the injected Clock.
type Validator struct {
	Clock calendar.Clock
}

// ValidateCreate runs the creation rule set for a request of totalDays
// spanning [start, end] on behalf of emp.
func (v *Validator) ValidateCreate(emp *Employee, start, end calendar.Date, totalDays int) error {
	today := v.Clock.Today()

	if err := validateDateOrder(start, end); err != nil {
		return err
	}
	if err := validateTenureCap(emp, today, totalDays); err != nil {
		return err
	}
	if start.Before(today) {
		return &InvalidRequestError{
			Rule:    RulePastStartDate,
			Message: "cannot create a leave request for a past date",
		}
	}
	if totalDays > emp.RemainingLeaveDays {
		return &InvalidRequestError{
			Rule:    RuleInsufficientBalance,
			Message: "cannot create a leave request exceeding the remaining leave days of the employee",
		}
	}
	if start.IsWeekend() && end.IsWeekend() {
		return &InvalidRequestError{
			Rule:    RuleWeekendOnly,
			Message: "leave request should contain at least one weekend day",
		}
	}
	return nil
}

// ValidateApprove runs the approval rule set against the stored request.
// The weekend rule does not apply here; it is a creation-time constraint.
func (v *Validator) ValidateApprove(emp *Employee, req *LeaveRequest) error {
	today := v.Clock.Today()

	if err := validateTenureCap(emp, today, req.TotalLeaveDays); err != nil {
		return err
	}
	if req.StartDate.Before(today) {
		return &InvalidRequestError{
			Rule:    RulePastStartDate,
			Message: "cannot approve a leave request for a past date",
		}
	}
	if req.TotalLeaveDays > emp.RemainingLeaveDays {
		return &InvalidRequestError{
			Rule:    RuleInsufficientBalance,
			Message: "cannot approve a leave request exceeding the remaining leave days of the employee",
		}
	}
	return nil
}

func validateDateOrder(start, end calendar.Date) error {
	if end.Before(start) {
		return &InvalidRequestError{
			Rule:    RuleDateOrder,
			Message: "end date cannot be before start date",
		}
	}
	return nil
}

func validateTenureCap(emp *Employee, today calendar.Date, totalDays int) error {
	if calendar.YearsBetween(emp.HireDate, today) == 0 && totalDays > NewlyHiredAdvanceCap {
		return &InvalidRequestError{
			Rule:    RuleNewlyHiredCap,
			Message: "newly hired employees can only take 5 days of leave in advance",
		}
	}
	return nil
}
