package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/employees/internal/employees/domain"
	"github.com/aussiebroadwan/employees/internal/employees/store"
	"github.com/aussiebroadwan/employees/pkg/slogx"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrStorage wraps every persistence failure. The underlying driver error
	// stays reachable through errors.Unwrap for logging.
	ErrStorage = errors.New("employee storage failure")
)

// EmployeeService runs one employee use case per call against the store.
// Every method returns nil, ErrEmployeeNotFound, or an error wrapping
// ErrStorage; nothing is retried.
type EmployeeService struct {
	Store store.Store
}

// ListEmployees returns all employees ordered by id.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.Store.Employees().ListEmployees(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list employees", "error", err)
		return nil, storageError(err)
	}
	return employees, nil
}

// GetEmployee fetches a single employee by id.
func (s *EmployeeService) GetEmployee(ctx context.Context, id int64) (domain.Employee, error) {
	e, err := s.Store.Employees().GetEmployeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Employee{}, ErrEmployeeNotFound
		}
		slogx.FromContext(ctx).Error("failed to load employee", "error", err, "employee_id", id)
		return domain.Employee{}, storageError(err)
	}
	return e, nil
}

// CreateEmployee stores a new employee and returns it with the id the store
// assigned.
func (s *EmployeeService) CreateEmployee(ctx context.Context, name string) (domain.Employee, error) {
	l := slogx.FromContext(ctx)

	id, err := s.Store.Employees().CreateEmployee(ctx, domain.Employee{Name: name})
	if err != nil {
		l.Error("failed to create employee", "error", err)
		return domain.Employee{}, storageError(err)
	}

	l.Info("employee created", "employee_id", id)
	return domain.Employee{ID: id, Name: name}, nil
}

// UpdateEmployee replaces the name of the employee identified by e.ID.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	l := slogx.FromContext(ctx)

	if _, err := s.GetEmployee(ctx, e.ID); err != nil {
		return domain.Employee{}, err
	}

	ok, err := s.Store.Employees().UpdateEmployeeName(ctx, e.ID, e.Name)
	if err != nil {
		l.Error("failed to update employee", "error", err, "employee_id", e.ID)
		return domain.Employee{}, storageError(err)
	}
	if !ok {
		// Removed by a concurrent request after the lookup.
		return domain.Employee{}, ErrEmployeeNotFound
	}

	l.Info("employee updated", "employee_id", e.ID)
	return e, nil
}

// DeleteEmployee removes the employee with the given id.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	l := slogx.FromContext(ctx)

	if _, err := s.GetEmployee(ctx, id); err != nil {
		return err
	}

	ok, err := s.Store.Employees().DeleteEmployee(ctx, id)
	if err != nil {
		l.Error("failed to delete employee", "error", err, "employee_id", id)
		return storageError(err)
	}
	if !ok {
		return ErrEmployeeNotFound
	}

	l.Info("employee deleted", "employee_id", id)
	return nil
}

func storageError(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
