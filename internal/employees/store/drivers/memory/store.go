// Package memory is a map-backed store used by tests and for running the
// service without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aussiebroadwan/employees/internal/employees/domain"
	"github.com/aussiebroadwan/employees/internal/employees/store"
)

type Store struct {
	mu        sync.RWMutex
	employees map[int64]domain.Employee
	nextID    int64

	// PingErr, when set, is returned by Ping. Tests use it to simulate an
	// unreachable database.
	PingErr error
}

func NewStore() *Store {
	return &Store{
		employees: make(map[int64]domain.Employee),
		nextID:    1,
	}
}

func (s *Store) Employees() store.Employees { return &employeesRepo{s: s} }

func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error { return nil }

func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.PingErr
}

type employeesRepo struct {
	s *Store
}

func (r *employeesRepo) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Employee, 0, len(r.s.employees))
	for _, e := range r.s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *employeesRepo) GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok {
		return domain.Employee{}, store.ErrNotFound
	}
	return e, nil
}

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.Employee) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if e.ID > 0 {
		if _, exists := r.s.employees[e.ID]; exists {
			return 0, store.ErrAlreadyExists
		}
	} else {
		e.ID = r.s.nextID
	}

	// Keep the counter ahead of explicit ids, like AUTO_INCREMENT does.
	if e.ID >= r.s.nextID {
		r.s.nextID = e.ID + 1
	}

	r.s.employees[e.ID] = e
	return e.ID, nil
}

func (r *employeesRepo) UpdateEmployeeName(ctx context.Context, id int64, name string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.employees[id]
	if !ok {
		return false, nil
	}
	e.Name = name
	r.s.employees[id] = e
	return true, nil
}

func (r *employeesRepo) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return false, nil
	}
	delete(r.s.employees, id)
	return true, nil
}
