// Package memory provides in-memory store implementations for testing and
// development. Entities are copied on the way in and out so callers never
// share state with the store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/warp/leave-engine/leave"
)

// Store holds both entity collections behind one lock so the employee-delete
// cascade is atomic.
type Store struct {
	mu        sync.RWMutex
	employees map[int64]leave.Employee
	requests  map[int64]leave.LeaveRequest
	nextEmpID int64
	nextReqID int64

	Employees     *EmployeeStore
	LeaveRequests *LeaveRequestStore
}

// New creates an empty in-memory store.
func New() *Store {
	s := &Store{
		employees: make(map[int64]leave.Employee),
		requests:  make(map[int64]leave.LeaveRequest),
		nextEmpID: 1,
		nextReqID: 1,
	}
	s.Employees = &EmployeeStore{s: s}
	s.LeaveRequests = &LeaveRequestStore{s: s}
	return s
}

// =============================================================================
// EMPLOYEE STORE
// =============================================================================

type EmployeeStore struct {
	s *Store
}

var _ leave.EmployeeStore = (*EmployeeStore)(nil)

func (es *EmployeeStore) Get(_ context.Context, id int64) (*leave.Employee, error) {
	es.s.mu.RLock()
	defer es.s.mu.RUnlock()

	emp, ok := es.s.employees[id]
	if !ok {
		return nil, leave.ErrEmployeeNotFound
	}
	return &emp, nil
}

func (es *EmployeeStore) Save(_ context.Context, emp *leave.Employee) (*leave.Employee, error) {
	es.s.mu.Lock()
	defer es.s.mu.Unlock()
	return es.s.saveEmployeeLocked(emp), nil
}

func (es *EmployeeStore) SaveAll(_ context.Context, emps []*leave.Employee) ([]*leave.Employee, error) {
	es.s.mu.Lock()
	defer es.s.mu.Unlock()

	saved := make([]*leave.Employee, len(emps))
	for i, emp := range emps {
		saved[i] = es.s.saveEmployeeLocked(emp)
	}
	return saved, nil
}

func (es *EmployeeStore) Delete(_ context.Context, id int64) error {
	es.s.mu.Lock()
	defer es.s.mu.Unlock()

	if _, ok := es.s.employees[id]; !ok {
		return leave.ErrEmployeeNotFound
	}
	delete(es.s.employees, id)
	return nil
}

func (es *EmployeeStore) List(_ context.Context) ([]*leave.Employee, error) {
	es.s.mu.RLock()
	defer es.s.mu.RUnlock()

	result := make([]*leave.Employee, 0, len(es.s.employees))
	for _, emp := range es.s.employees {
		e := emp
		result = append(result, &e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *Store) saveEmployeeLocked(emp *leave.Employee) *leave.Employee {
	stored := *emp
	if stored.ID == 0 {
		stored.ID = s.nextEmpID
		s.nextEmpID++
	}
	s.employees[stored.ID] = stored
	out := stored
	return &out
}

// =============================================================================
// LEAVE REQUEST STORE
// =============================================================================

type LeaveRequestStore struct {
	s *Store
}

var _ leave.LeaveRequestStore = (*LeaveRequestStore)(nil)

func (rs *LeaveRequestStore) Get(_ context.Context, id int64) (*leave.LeaveRequest, error) {
	rs.s.mu.RLock()
	defer rs.s.mu.RUnlock()

	req, ok := rs.s.requests[id]
	if !ok {
		return nil, leave.ErrLeaveRequestNotFound
	}
	return &req, nil
}

func (rs *LeaveRequestStore) Save(_ context.Context, req *leave.LeaveRequest) (*leave.LeaveRequest, error) {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()

	stored := *req
	if stored.ID == 0 {
		stored.ID = rs.s.nextReqID
		rs.s.nextReqID++
	}
	rs.s.requests[stored.ID] = stored
	out := stored
	return &out, nil
}

func (rs *LeaveRequestStore) List(_ context.Context) ([]*leave.LeaveRequest, error) {
	rs.s.mu.RLock()
	defer rs.s.mu.RUnlock()

	result := make([]*leave.LeaveRequest, 0, len(rs.s.requests))
	for _, req := range rs.s.requests {
		r := req
		result = append(result, &r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (rs *LeaveRequestStore) ListByEmployee(_ context.Context, employeeID int64) ([]*leave.LeaveRequest, error) {
	rs.s.mu.RLock()
	defer rs.s.mu.RUnlock()

	var result []*leave.LeaveRequest
	for _, req := range rs.s.requests {
		if req.EmployeeID == employeeID {
			r := req
			result = append(result, &r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (rs *LeaveRequestStore) Delete(_ context.Context, id int64) error {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()

	if _, ok := rs.s.requests[id]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	delete(rs.s.requests, id)
	return nil
}

func (rs *LeaveRequestStore) DeleteByEmployee(_ context.Context, employeeID int64) error {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()

	for id, req := range rs.s.requests {
		if req.EmployeeID == employeeID {
			delete(rs.s.requests, id)
		}
	}
	return nil
}
