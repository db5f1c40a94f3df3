// Package sqlrepo implements store.Employees on top of the generated queries.
// The mysql and sqlite drivers share it and differ only in how they classify
// constraint violations.
package sqlrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/employees/internal/employees/domain"
	"github.com/aussiebroadwan/employees/internal/employees/store"
	"github.com/aussiebroadwan/employees/internal/employees/store/drivers/gen"
)

// ErrorMapper translates a driver error into a store sentinel, or returns it
// unchanged.
type ErrorMapper func(error) error

type employeesRepo struct {
	q         *gen.Queries
	duplicate ErrorMapper
}

// NewEmployees returns a store.Employees backed by q. duplicate is applied to
// insert errors so drivers can report store.ErrAlreadyExists.
func NewEmployees(q *gen.Queries, duplicate ErrorMapper) store.Employees {
	if duplicate == nil {
		duplicate = func(err error) error { return err }
	}
	return &employeesRepo{q: q, duplicate: duplicate}
}

func (r *employeesRepo) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.q.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	employees := make([]domain.Employee, len(rows))
	for i, row := range rows {
		employees[i] = mapEmployee(row)
	}
	return employees, nil
}

func (r *employeesRepo) GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, error) {
	row, err := r.q.GetEmployee(ctx, id)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return mapEmployee(row), nil
}

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.Employee) (int64, error) {
	if e.ID > 0 {
		_, err := r.q.CreateEmployeeWithID(ctx, gen.CreateEmployeeWithIDParams{
			EmployeeId: e.ID,
			Name:       e.Name,
		})
		if err != nil {
			return 0, r.duplicate(err)
		}
		return e.ID, nil
	}

	res, err := r.q.CreateEmployee(ctx, e.Name)
	if err != nil {
		return 0, r.duplicate(err)
	}
	return res.LastInsertId()
}

func (r *employeesRepo) UpdateEmployeeName(ctx context.Context, id int64, name string) (bool, error) {
	n, err := r.q.UpdateEmployeeName(ctx, gen.UpdateEmployeeNameParams{
		Name:       name,
		EmployeeId: id,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *employeesRepo) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	n, err := r.q.DeleteEmployee(ctx, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapEmployee(row gen.Employee) domain.Employee {
	return domain.Employee{
		ID:   row.EmployeeId,
		Name: row.Name,
	}
}
