/*
policy.go - Tenure-based accrual policy

PURPOSE:
  Maps an employee's tenure (whole years since hire) to an annual leave-day
  entitlement. Called at employee creation and by the nightly re-accrual job.

BRACKETS:
  years == 0     ->  5 days (newly hired, prorated minimum)
  1 <= years <= 5 -> 15 days
  5 < years <= 10 -> 18 days
  years > 10      -> 24 days

The nightly job OVERWRITES the balance with this entitlement; it does not add
to it. Accrual is idempotent per tenure bracket, not cumulative. That is the
intended policy, with the known consequence that mid-cycle debits from
approved leave are discarded on the next run.
*/
package leave

import "fmt"

// Entitlement brackets, in leave days per year.
const (
	EntitlementNewlyHired  = 5
	EntitlementUpTo5Years  = 15
	EntitlementUpTo10Years = 18
	EntitlementOver10Years = 24
)

// EntitlementForTenure returns the annual leave-day entitlement for the given
// whole-year tenure. Negative tenure means the hire date is in the future and
// is rejected with ErrInvalidDate.
func EntitlementForTenure(years int) (int, error) {
	switch {
	case years < 0:
		return 0, fmt.Errorf("%w: hire date cannot be in the future", ErrInvalidDate)
	case years == 0:
		return EntitlementNewlyHired, nil
	case years <= 5:
		return EntitlementUpTo5Years, nil
	case years <= 10:
		return EntitlementUpTo10Years, nil
	default:
		return EntitlementOver10Years, nil
	}
}
