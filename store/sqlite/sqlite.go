/*
Package sqlite provides the SQLite-backed implementation of the leave
engine's storage interfaces.

PURPOSE:
  Implements leave.EmployeeStore and leave.LeaveRequestStore over a single
  database handle. The same SQL applies to PostgreSQL with minor dialect
  changes.

KEY TABLES:
  employees:       id, name, hire_date, remaining_leave_days
  leave_requests:  id, employee_id, start_date, end_date, total_leave_days,
                   status, reason, note

IDENTIFIERS:
  Integer primary keys assigned by SQLite on insert. Save with a zero ID
  inserts and fills in the generated id; a non-zero ID updates in place.

CONCURRENCY:
  A sync.RWMutex serializes individual store calls on top of SQLite's
  single-writer model. The lock covers one call, not a whole service
  operation: an approval's load and save are separate critical sections, so
  the nightly refresh can overwrite a balance between them. SaveAll runs in
  one database transaction.

WAL MODE:
  The database is opened with WAL so readers don't block behind the writer.

USAGE:
  store, err := sqlite.New("./leave.db")
  if err != nil { ... }
  defer store.Close()
  svc := leave.NewEmployeeService(store.Employees, store.LeaveRequests, clock)

SEE ALSO:
  - leave/store.go: interface definitions
  - store/memory: in-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/leave"
)

// Store owns the database handle and exposes the two typed stores.
type Store struct {
	db *sql.DB
	mu sync.RWMutex

	Employees     *EmployeeStore
	LeaveRequests *LeaveRequestStore
}

// New opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	s.Employees = &EmployeeStore{s: s}
	s.LeaveRequests = &LeaveRequestStore{s: s}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		hire_date TEXT NOT NULL,
		remaining_leave_days INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS leave_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL REFERENCES employees(id),
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		total_leave_days INTEGER NOT NULL,
		status TEXT NOT NULL,
		reason TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_leave_requests_employee
		ON leave_requests(employee_id);
	CREATE INDEX IF NOT EXISTS idx_leave_requests_status
		ON leave_requests(status);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEE STORE
// =============================================================================

type EmployeeStore struct {
	s *Store
}

var _ leave.EmployeeStore = (*EmployeeStore)(nil)

func (es *EmployeeStore) Get(ctx context.Context, id int64) (*leave.Employee, error) {
	es.s.mu.RLock()
	defer es.s.mu.RUnlock()

	row := es.s.db.QueryRowContext(ctx,
		`SELECT id, name, hire_date, remaining_leave_days FROM employees WHERE id = ?`, id)
	return scanEmployee(row)
}

func (es *EmployeeStore) Save(ctx context.Context, emp *leave.Employee) (*leave.Employee, error) {
	es.s.mu.Lock()
	defer es.s.mu.Unlock()
	return saveEmployee(ctx, es.s.db, emp)
}

func (es *EmployeeStore) SaveAll(ctx context.Context, emps []*leave.Employee) ([]*leave.Employee, error) {
	es.s.mu.Lock()
	defer es.s.mu.Unlock()

	tx, err := es.s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &leave.StorageError{Op: "save all employees", Err: err}
	}
	defer tx.Rollback()

	saved := make([]*leave.Employee, len(emps))
	for i, emp := range emps {
		saved[i], err = saveEmployee(ctx, tx, emp)
		if err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, &leave.StorageError{Op: "save all employees", Err: err}
	}
	return saved, nil
}

func (es *EmployeeStore) Delete(ctx context.Context, id int64) error {
	es.s.mu.Lock()
	defer es.s.mu.Unlock()

	res, err := es.s.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return &leave.StorageError{Op: "delete employee", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return leave.ErrEmployeeNotFound
	}
	return nil
}

func (es *EmployeeStore) List(ctx context.Context) ([]*leave.Employee, error) {
	es.s.mu.RLock()
	defer es.s.mu.RUnlock()

	rows, err := es.s.db.QueryContext(ctx,
		`SELECT id, name, hire_date, remaining_leave_days FROM employees ORDER BY id`)
	if err != nil {
		return nil, &leave.StorageError{Op: "list employees", Err: err}
	}
	defer rows.Close()

	var result []*leave.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, &leave.StorageError{Op: "list employees", Err: err}
	}
	return result, nil
}

// execer covers both *sql.DB and *sql.Tx so saveEmployee works inside and
// outside an explicit transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveEmployee(ctx context.Context, db execer, emp *leave.Employee) (*leave.Employee, error) {
	saved := *emp
	if saved.ID == 0 {
		res, err := db.ExecContext(ctx,
			`INSERT INTO employees (name, hire_date, remaining_leave_days) VALUES (?, ?, ?)`,
			saved.Name, saved.HireDate.String(), saved.RemainingLeaveDays)
		if err != nil {
			return nil, &leave.StorageError{Op: "insert employee", Err: err}
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, &leave.StorageError{Op: "insert employee", Err: err}
		}
		saved.ID = id
		return &saved, nil
	}

	res, err := db.ExecContext(ctx,
		`UPDATE employees SET name = ?, hire_date = ?, remaining_leave_days = ? WHERE id = ?`,
		saved.Name, saved.HireDate.String(), saved.RemainingLeaveDays, saved.ID)
	if err != nil {
		return nil, &leave.StorageError{Op: "update employee", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, leave.ErrEmployeeNotFound
	}
	return &saved, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*leave.Employee, error) {
	var (
		emp      leave.Employee
		hireDate string
	)
	if err := row.Scan(&emp.ID, &emp.Name, &hireDate, &emp.RemainingLeaveDays); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, leave.ErrEmployeeNotFound
		}
		return nil, &leave.StorageError{Op: "scan employee", Err: err}
	}
	d, err := calendar.Parse(hireDate)
	if err != nil {
		return nil, &leave.StorageError{Op: "scan employee", Err: err}
	}
	emp.HireDate = d
	return &emp, nil
}

// =============================================================================
// LEAVE REQUEST STORE
// =============================================================================

type LeaveRequestStore struct {
	s *Store
}

var _ leave.LeaveRequestStore = (*LeaveRequestStore)(nil)

const leaveRequestColumns = `id, employee_id, start_date, end_date, total_leave_days, status, reason, note`

func (rs *LeaveRequestStore) Get(ctx context.Context, id int64) (*leave.LeaveRequest, error) {
	rs.s.mu.RLock()
	defer rs.s.mu.RUnlock()

	row := rs.s.db.QueryRowContext(ctx,
		`SELECT `+leaveRequestColumns+` FROM leave_requests WHERE id = ?`, id)
	return scanLeaveRequest(row)
}

func (rs *LeaveRequestStore) Save(ctx context.Context, req *leave.LeaveRequest) (*leave.LeaveRequest, error) {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()

	saved := *req
	if saved.ID == 0 {
		res, err := rs.s.db.ExecContext(ctx,
			`INSERT INTO leave_requests (employee_id, start_date, end_date, total_leave_days, status, reason, note)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			saved.EmployeeID, saved.StartDate.String(), saved.EndDate.String(),
			saved.TotalLeaveDays, string(saved.Status), string(saved.Reason), saved.Note)
		if err != nil {
			return nil, &leave.StorageError{Op: "insert leave request", Err: err}
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, &leave.StorageError{Op: "insert leave request", Err: err}
		}
		saved.ID = id
		return &saved, nil
	}

	res, err := rs.s.db.ExecContext(ctx,
		`UPDATE leave_requests
		 SET employee_id = ?, start_date = ?, end_date = ?, total_leave_days = ?, status = ?, reason = ?, note = ?
		 WHERE id = ?`,
		saved.EmployeeID, saved.StartDate.String(), saved.EndDate.String(),
		saved.TotalLeaveDays, string(saved.Status), string(saved.Reason), saved.Note, saved.ID)
	if err != nil {
		return nil, &leave.StorageError{Op: "update leave request", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, leave.ErrLeaveRequestNotFound
	}
	return &saved, nil
}

func (rs *LeaveRequestStore) List(ctx context.Context) ([]*leave.LeaveRequest, error) {
	return rs.list(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests ORDER BY id`)
}

func (rs *LeaveRequestStore) ListByEmployee(ctx context.Context, employeeID int64) ([]*leave.LeaveRequest, error) {
	return rs.list(ctx,
		`SELECT `+leaveRequestColumns+` FROM leave_requests WHERE employee_id = ? ORDER BY id`,
		employeeID)
}

func (rs *LeaveRequestStore) list(ctx context.Context, query string, args ...any) ([]*leave.LeaveRequest, error) {
	rs.s.mu.RLock()
	defer rs.s.mu.RUnlock()

	rows, err := rs.s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &leave.StorageError{Op: "list leave requests", Err: err}
	}
	defer rows.Close()

	var result []*leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, &leave.StorageError{Op: "list leave requests", Err: err}
	}
	return result, nil
}

func (rs *LeaveRequestStore) Delete(ctx context.Context, id int64) error {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()

	res, err := rs.s.db.ExecContext(ctx, `DELETE FROM leave_requests WHERE id = ?`, id)
	if err != nil {
		return &leave.StorageError{Op: "delete leave request", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (rs *LeaveRequestStore) DeleteByEmployee(ctx context.Context, employeeID int64) error {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()

	_, err := rs.s.db.ExecContext(ctx,
		`DELETE FROM leave_requests WHERE employee_id = ?`, employeeID)
	if err != nil {
		return &leave.StorageError{Op: "delete leave requests by employee", Err: err}
	}
	return nil
}

func scanLeaveRequest(row rowScanner) (*leave.LeaveRequest, error) {
	var (
		req            leave.LeaveRequest
		startDate      string
		endDate        string
		status, reason string
	)
	if err := row.Scan(&req.ID, &req.EmployeeID, &startDate, &endDate,
		&req.TotalLeaveDays, &status, &reason, &req.Note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, leave.ErrLeaveRequestNotFound
		}
		return nil, &leave.StorageError{Op: "scan leave request", Err: err}
	}

	start, err := calendar.Parse(startDate)
	if err != nil {
		return nil, &leave.StorageError{Op: "scan leave request", Err: err}
	}
	end, err := calendar.Parse(endDate)
	if err != nil {
		return nil, &leave.StorageError{Op: "scan leave request", Err: err}
	}
	req.StartDate = start
	req.EndDate = end
	req.Status = leave.Status(status)
	req.Reason = leave.Reason(reason)
	return &req, nil
}
