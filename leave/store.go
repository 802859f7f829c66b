/*
store.go - Persistence interfaces consumed by the leave engine

PURPOSE:
  Defines what the engine needs from its backing store and nothing more:
  load/save by identifier, atomic save of a single entity and of an entity
  collection, and the cascading queries the lifecycle requires.

CONTRACT:
  - Save assigns the identifier when the entity's ID is zero and returns the
    persisted entity.
  - SaveAll persists the whole collection in one atomic operation (the
    nightly re-accrual bulk write).
  - Get returns ErrEmployeeNotFound / ErrLeaveRequestNotFound when the id
    does not resolve; any other failure is a StorageError.

IMPLEMENTATIONS:
  - store/sqlite: production SQLite store
  - store/memory: in-memory store for tests
*/
package leave

import "context"

// EmployeeStore persists employees.
type EmployeeStore interface {
	// Get loads an employee by id. Returns ErrEmployeeNotFound if absent.
	Get(ctx context.Context, id int64) (*Employee, error)

	// Save persists the employee, assigning an id when ID is zero.
	Save(ctx context.Context, emp *Employee) (*Employee, error)

	// SaveAll persists the collection atomically.
	SaveAll(ctx context.Context, emps []*Employee) ([]*Employee, error)

	// Delete removes the employee. Returns ErrEmployeeNotFound if absent.
	Delete(ctx context.Context, id int64) error

	// List returns all employees ordered by id.
	List(ctx context.Context) ([]*Employee, error)
}

// LeaveRequestStore persists leave requests.
type LeaveRequestStore interface {
	// Get loads a leave request by id. Returns ErrLeaveRequestNotFound if absent.
	Get(ctx context.Context, id int64) (*LeaveRequest, error)

	// Save persists the request, assigning an id when ID is zero.
	Save(ctx context.Context, req *LeaveRequest) (*LeaveRequest, error)

	// List returns all leave requests ordered by id.
	List(ctx context.Context) ([]*LeaveRequest, error)

	// ListByEmployee returns all requests referencing the employee.
	ListByEmployee(ctx context.Context, employeeID int64) ([]*LeaveRequest, error)

	// Delete removes the request. Returns ErrLeaveRequestNotFound if absent.
	Delete(ctx context.Context, id int64) error

	// DeleteByEmployee removes every request referencing the employee.
	// Used by the employee-delete cascade.
	DeleteByEmployee(ctx context.Context, employeeID int64) error
}
