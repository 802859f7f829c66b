package leave_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/store/memory"
)

// All service tests run against a fixed "today" of Monday 2025-03-10 so that
// tenure and weekend arithmetic stays deterministic.
var today = calendar.MustParse("2025-03-10")

func newServices(t *testing.T) (*leave.EmployeeService, *leave.LeaveRequestService, *memory.Store) {
	t.Helper()
	store := memory.New()
	clock := calendar.FixedClock{Date: today}
	employees := leave.NewEmployeeService(store.Employees, store.LeaveRequests, clock)
	requests := leave.NewLeaveRequestService(store.LeaveRequests, store.Employees, clock)
	return employees, requests, store
}

func createEmployee(t *testing.T, svc *leave.EmployeeService, name, hireDate string) *leave.Employee {
	t.Helper()
	emp, err := svc.Create(context.Background(), name, calendar.MustParse(hireDate))
	require.NoError(t, err)
	return emp
}

// =============================================================================
// EMPLOYEE LIFECYCLE
// =============================================================================

func TestEmployeeCreate_EntitlementFromTenure(t *testing.T) {
	employees, _, _ := newServices(t)

	tests := []struct {
		name     string
		hireDate string
		want     int
	}{
		{"hired this year", "2025-01-06", 5},
		{"five years of tenure", "2020-01-01", 15},
		{"seven years of tenure", "2018-01-01", 18},
		{"fifteen years of tenure", "2010-01-01", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := createEmployee(t, employees, "Alice", tt.hireDate)
			assert.Equal(t, tt.want, emp.RemainingLeaveDays)
			assert.NotZero(t, emp.ID)
		})
	}
}

func TestEmployeeCreate_FutureHireDateRejected(t *testing.T) {
	employees, _, _ := newServices(t)

	// GIVEN a hire date after today
	_, err := employees.Create(context.Background(), "Bob", calendar.MustParse("2025-06-01"))

	// THEN creation fails with an invalid-date error
	require.Error(t, err)
	assert.ErrorIs(t, err, leave.ErrInvalidDate)
}

func TestEmployeeGet_NotFound(t *testing.T) {
	employees, _, _ := newServices(t)

	_, err := employees.Get(context.Background(), 42)
	assert.ErrorIs(t, err, leave.ErrEmployeeNotFound)
	assert.True(t, leave.IsNotFound(err))
}

func TestEmployeeUpdate_Partial(t *testing.T) {
	employees, _, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01")

	// WHEN only the name is updated
	name := "Alice B."
	updated, err := employees.Update(context.Background(), emp.ID, leave.EmployeeUpdate{Name: &name})
	require.NoError(t, err)

	// THEN other fields are untouched
	assert.Equal(t, "Alice B.", updated.Name)
	assert.Equal(t, emp.HireDate, updated.HireDate)
	assert.Equal(t, emp.RemainingLeaveDays, updated.RemainingLeaveDays)

	// AND a balance override persists
	days := 3
	updated, err = employees.Update(context.Background(), emp.ID, leave.EmployeeUpdate{RemainingLeaveDays: &days})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.RemainingLeaveDays)
}

func TestEmployeeDelete_CascadesToLeaveRequests(t *testing.T) {
	employees, requests, store := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01")
	other := createEmployee(t, employees, "Bob", "2020-01-01")

	ctx := context.Background()
	_, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)
	kept, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: other.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)

	// WHEN the employee is deleted
	require.NoError(t, employees.Delete(ctx, emp.ID))

	// THEN the employee and their requests are gone
	_, err = employees.Get(ctx, emp.ID)
	assert.ErrorIs(t, err, leave.ErrEmployeeNotFound)

	remaining, err := store.LeaveRequests.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}

func TestEmployeeDelete_NotFound(t *testing.T) {
	employees, _, _ := newServices(t)
	err := employees.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, leave.ErrEmployeeNotFound)
}

func TestEmployeeLeaveRequests_FiltersByOwner(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01")
	other := createEmployee(t, employees, "Bob", "2020-01-01")

	ctx := context.Background()
	mine, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-18"),
		Reason:     leave.ReasonSickness,
	})
	require.NoError(t, err)
	_, err = requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: other.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-18"),
		Reason:     leave.ReasonSickness,
	})
	require.NoError(t, err)

	listed, err := employees.LeaveRequests(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, mine.ID, listed[0].ID)

	_, err = employees.LeaveRequests(ctx, 42)
	assert.ErrorIs(t, err, leave.ErrEmployeeNotFound)
}

// =============================================================================
// LEAVE REQUEST CREATION
// =============================================================================

func TestLeaveRequestCreate_DefaultsToInclusiveSpan(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01")

	// GIVEN a Monday-to-next-Monday request with no explicit day count
	req, err := requests.Create(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-24"),
		Reason:     leave.ReasonVacation,
		Note:       "spring trip",
	})
	require.NoError(t, err)

	// THEN the span counts both endpoints and the weekend in between
	assert.Equal(t, 8, req.TotalLeaveDays)
	assert.Equal(t, leave.StatusWaitingForApproval, req.Status)
	assert.Equal(t, "spring trip", req.Note)

	// AND creation never touches the balance
	emp, err = employees.Get(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, emp.RemainingLeaveDays)
}

func TestLeaveRequestCreate_ExplicitTotalDays(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01")

	days := 3
	req, err := requests.Create(context.Background(), leave.CreateLeaveRequest{
		EmployeeID:     emp.ID,
		StartDate:      calendar.MustParse("2025-03-17"),
		EndDate:        calendar.MustParse("2025-03-21"),
		TotalLeaveDays: &days,
		Reason:         leave.ReasonPersonalLeave,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, req.TotalLeaveDays)
}

func TestLeaveRequestCreate_UnknownEmployee(t *testing.T) {
	_, requests, _ := newServices(t)

	_, err := requests.Create(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: 42,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	assert.ErrorIs(t, err, leave.ErrEmployeeNotFound)
}

func TestLeaveRequestCreate_RuleViolations(t *testing.T) {
	employees, requests, _ := newServices(t)
	veteran := createEmployee(t, employees, "Alice", "2020-01-01") // 15 days
	rookie := createEmployee(t, employees, "Bob", "2025-01-06")    // 5 days, 0y tenure

	tests := []struct {
		name       string
		employeeID int64
		start, end string
		wantRule   string
	}{
		{"end before start", veteran.ID, "2025-03-21", "2025-03-17", leave.RuleDateOrder},
		{"newly hired over the cap", rookie.ID, "2025-03-17", "2025-03-24", leave.RuleNewlyHiredCap},
		{"start in the past", veteran.ID, "2025-03-03", "2025-03-07", leave.RulePastStartDate},
		{"exceeds balance", veteran.ID, "2025-03-17", "2025-04-11", leave.RuleInsufficientBalance},
		{"weekend endpoints", veteran.ID, "2025-03-15", "2025-03-16", leave.RuleWeekendOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := requests.Create(context.Background(), leave.CreateLeaveRequest{
				EmployeeID: tt.employeeID,
				StartDate:  calendar.MustParse(tt.start),
				EndDate:    calendar.MustParse(tt.end),
				Reason:     leave.ReasonVacation,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, leave.ErrInvalidRequest)

			var ire *leave.InvalidRequestError
			require.ErrorAs(t, err, &ire)
			assert.Equal(t, tt.wantRule, ire.Rule)
		})
	}
}

// The weekend rule fires only when BOTH endpoints are weekend days: a span
// that starts Saturday and ends the following Friday sails through even
// though it contains a full weekend. This documents the captured rule and
// its exact message.
func TestLeaveRequestCreate_WeekendRuleIsTwoSided(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01")

	ctx := context.Background()

	// Saturday -> Friday passes: the end is a weekday
	_, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-15"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)

	// Saturday -> Sunday is rejected with the literal rule message
	_, err = requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-15"),
		EndDate:    calendar.MustParse("2025-03-16"),
		Reason:     leave.ReasonVacation,
	})
	require.Error(t, err)
	assert.EqualError(t, err, "leave request should contain at least one weekend day")
}

// =============================================================================
// LEAVE REQUEST UPDATE
// =============================================================================

func TestLeaveRequestUpdate_ReasonOverwritesRegardlessOfStatus(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01")

	ctx := context.Background()
	req, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)

	_, err = requests.UpdateStatus(ctx, req.ID, leave.StatusApproved)
	require.NoError(t, err)

	// An APPROVED request still takes an administrative reason edit; only
	// status transitions are locked.
	reason := leave.ReasonSickness
	updated, err := requests.Update(ctx, req.ID, leave.LeaveRequestUpdate{Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, leave.ReasonSickness, updated.Reason)
	assert.Equal(t, leave.StatusApproved, updated.Status)
}

func TestLeaveRequestUpdate_DateChangeRecomputesSpan(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01")

	ctx := context.Background()
	req, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)
	require.Equal(t, 5, req.TotalLeaveDays)

	end := calendar.MustParse("2025-03-24")
	updated, err := requests.Update(ctx, req.ID, leave.LeaveRequestUpdate{EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.TotalLeaveDays)

	// Reversed dates are still rejected on edit
	badEnd := calendar.MustParse("2025-03-10")
	_, err = requests.Update(ctx, req.ID, leave.LeaveRequestUpdate{EndDate: &badEnd})
	assert.ErrorIs(t, err, leave.ErrInvalidRequest)
}

func TestLeaveRequestUpdate_SkipsBalanceAndPastDateChecks(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01") // 15 days

	ctx := context.Background()
	req, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)

	// Stretching the span far beyond the balance is allowed on edit;
	// approval re-validates.
	end := calendar.MustParse("2025-04-30")
	updated, err := requests.Update(ctx, req.ID, leave.LeaveRequestUpdate{EndDate: &end})
	require.NoError(t, err)
	assert.Greater(t, updated.TotalLeaveDays, emp.RemainingLeaveDays)

	// But that request can no longer be approved
	_, err = requests.UpdateStatus(ctx, req.ID, leave.StatusApproved)
	require.Error(t, err)
	var ire *leave.InvalidRequestError
	require.ErrorAs(t, err, &ire)
	assert.Equal(t, leave.RuleInsufficientBalance, ire.Rule)
}

func TestUpdateStatus_ApproveRechecksPastStartDate(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01") // 15 days

	ctx := context.Background()
	req, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)

	// An administrative edit may move the span into the past
	start := calendar.MustParse("2025-03-03")
	end := calendar.MustParse("2025-03-07")
	_, err = requests.Update(ctx, req.ID, leave.LeaveRequestUpdate{StartDate: &start, EndDate: &end})
	require.NoError(t, err)

	// But approval re-checks the start date
	_, err = requests.UpdateStatus(ctx, req.ID, leave.StatusApproved)
	require.Error(t, err)
	var ire *leave.InvalidRequestError
	require.ErrorAs(t, err, &ire)
	assert.Equal(t, leave.RulePastStartDate, ire.Rule)

	// And the balance is untouched
	emp, err = employees.Get(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, emp.RemainingLeaveDays)
}

func TestUpdateStatus_ApproveRechecksNewlyHiredCap(t *testing.T) {
	employees, requests, _ := newServices(t)
	rookie := createEmployee(t, employees, "Bob", "2025-01-06") // 5 days, 0y tenure

	ctx := context.Background()
	// A 3-day request is under the rookie cap at creation
	req, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: rookie.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-19"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)

	// Stretching it to 8 days passes the administrative edit
	end := calendar.MustParse("2025-03-24")
	updated, err := requests.Update(ctx, req.ID, leave.LeaveRequestUpdate{EndDate: &end})
	require.NoError(t, err)
	require.Equal(t, 8, updated.TotalLeaveDays)

	// But approval re-checks the cap
	_, err = requests.UpdateStatus(ctx, req.ID, leave.StatusApproved)
	require.Error(t, err)
	var ire *leave.InvalidRequestError
	require.ErrorAs(t, err, &ire)
	assert.Equal(t, leave.RuleNewlyHiredCap, ire.Rule)

	// And the balance is untouched
	rookie, err = employees.Get(ctx, rookie.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, rookie.RemainingLeaveDays)
}

// =============================================================================
// STATUS TRANSITIONS
// =============================================================================

func TestUpdateStatus_ApproveDebitsBusinessDays(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01") // 15 days

	ctx := context.Background()
	// Monday to next Monday: 8 calendar days, 6 business days
	req, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-24"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)

	approved, err := requests.UpdateStatus(ctx, req.ID, leave.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)

	// The debit is the weekend-exclusive count, not TotalLeaveDays
	emp, err = employees.Get(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 15-6, emp.RemainingLeaveDays)
}

func TestUpdateStatus_ApprovedIsLocked(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01")

	ctx := context.Background()
	req, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)

	_, err = requests.UpdateStatus(ctx, req.ID, leave.StatusApproved)
	require.NoError(t, err)

	// Any further transition is rejected, including rejection
	for _, next := range []leave.Status{leave.StatusRejected, leave.StatusWaitingForApproval, leave.StatusApproved} {
		_, err = requests.UpdateStatus(ctx, req.ID, next)
		require.Error(t, err)

		var ire *leave.InvalidRequestError
		require.ErrorAs(t, err, &ire)
		assert.Equal(t, leave.RuleApprovedLocked, ire.Rule)
	}
}

func TestUpdateStatus_RejectedCanBeReopened(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01")

	ctx := context.Background()
	req, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)

	rejected, err := requests.UpdateStatus(ctx, req.ID, leave.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, rejected.Status)

	// No debit happened on rejection
	emp, err = employees.Get(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, emp.RemainingLeaveDays)

	// REJECTED is not terminal: it can be approved later
	approved, err := requests.UpdateStatus(ctx, req.ID, leave.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01")

	ctx := context.Background()
	req, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)

	_, err = requests.UpdateStatus(ctx, req.ID, leave.Status("CANCELLED"))
	require.Error(t, err)
	assert.ErrorIs(t, err, leave.ErrInvalidRequest)
}

func TestLeaveRequestDelete(t *testing.T) {
	employees, requests, _ := newServices(t)
	emp := createEmployee(t, employees, "Alice", "2020-01-01")

	ctx := context.Background()
	req, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)

	require.NoError(t, requests.Delete(ctx, req.ID))

	_, err = requests.Get(ctx, req.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	err = requests.Delete(ctx, req.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

// =============================================================================
// NIGHTLY RE-ACCRUAL
// =============================================================================

func TestRefreshEntitlements_OverwritesBalances(t *testing.T) {
	employees, requests, _ := newServices(t)
	veteran := createEmployee(t, employees, "Alice", "2020-01-01") // 15 days
	rookie := createEmployee(t, employees, "Bob", "2025-01-06")    // 5 days

	ctx := context.Background()

	// GIVEN a mid-cycle debit from an approved request (Mon-Fri, 5 days)
	req, err := requests.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: veteran.ID,
		StartDate:  calendar.MustParse("2025-03-17"),
		EndDate:    calendar.MustParse("2025-03-21"),
		Reason:     leave.ReasonVacation,
	})
	require.NoError(t, err)
	_, err = requests.UpdateStatus(ctx, req.ID, leave.StatusApproved)
	require.NoError(t, err)

	veteranAfterDebit, err := employees.Get(ctx, veteran.ID)
	require.NoError(t, err)
	require.Equal(t, 10, veteranAfterDebit.RemainingLeaveDays)

	// WHEN the nightly refresh runs
	require.NoError(t, employees.RefreshEntitlements(ctx))

	// THEN every balance is overwritten with the bracket entitlement,
	// discarding the debit
	veteranAfter, err := employees.Get(ctx, veteran.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, veteranAfter.RemainingLeaveDays)

	rookieAfter, err := employees.Get(ctx, rookie.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, rookieAfter.RemainingLeaveDays)
}

func TestRefreshEntitlements_SkipsBadRecords(t *testing.T) {
	employees, _, store := newServices(t)
	ok := createEmployee(t, employees, "Alice", "2020-01-01")

	// GIVEN a stored employee whose hire date has drifted into the future
	ctx := context.Background()
	broken, err := store.Employees.Save(ctx, &leave.Employee{
		Name:               "Mallory",
		HireDate:           calendar.MustParse("2026-01-01"),
		RemainingLeaveDays: 7,
	})
	require.NoError(t, err)

	// WHEN the refresh runs, THEN the pass succeeds
	require.NoError(t, employees.RefreshEntitlements(ctx))

	// AND the bad record is skipped, not zeroed
	brokenAfter, err := employees.Get(ctx, broken.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, brokenAfter.RemainingLeaveDays)

	okAfter, err := employees.Get(ctx, ok.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, okAfter.RemainingLeaveDays)
}

func TestRefreshEntitlements_EmptyStore(t *testing.T) {
	employees, _, _ := newServices(t)
	assert.NoError(t, employees.RefreshEntitlements(context.Background()))
}
