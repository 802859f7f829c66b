/*
errors.go - Centralized error types for the leave engine

PURPOSE:
  All error kinds in one place. Callers classify with errors.Is/As and the
  helpers below; the HTTP layer maps classes to status codes.

ERROR CATEGORIES:
  1. Not-found errors    - identifier does not resolve
  2. Invalid request     - a business rule rejected the operation
  3. Invalid date        - hire date in the future / negative tenure
  4. Storage errors      - the backing store failed; never masked as a
                           business-rule rejection
*/
package leave

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEmployeeNotFound is returned when an employee id does not resolve.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrLeaveRequestNotFound is returned when a leave request id does not resolve.
	ErrLeaveRequestNotFound = errors.New("leave request not found")

	// ErrInvalidRequest is the base error for business-rule violations.
	// Concrete violations are InvalidRequestError values wrapping this.
	ErrInvalidRequest = errors.New("invalid leave request")

	// ErrInvalidDate is returned for hire dates in the future (negative tenure).
	ErrInvalidDate = errors.New("invalid date")
)

// =============================================================================
// STRUCTURED ERRORS - Carry the violated rule
// =============================================================================

// InvalidRequestError identifies which business rule rejected the operation.
// Rule is a stable machine-readable code; Message explains it to a human.
type InvalidRequestError struct {
	Rule    string
	Message string
}

func (e *InvalidRequestError) Error() string { return e.Message }

func (e *InvalidRequestError) Unwrap() error { return ErrInvalidRequest }

// StorageError wraps a failure in the backing store with the operation that
// triggered it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound reports whether the error is a missing employee or leave request.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrLeaveRequestNotFound)
}

// IsClientError reports whether the error was caused by invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidDate)
}

// IsStorageError reports whether the error originated in the backing store.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
