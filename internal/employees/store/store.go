package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/employees/internal/employees/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (mysql, sqlite,
// memory) implement this. Records are reached through the Employees()
// sub-repository so new tables can get their own repo without growing this
// interface.
type Store interface {
	Employees() Employees

	// ApplyMigrations brings the schema up to date. Drivers without a schema
	// treat this as a no-op.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Employees interface {
	// ListEmployees returns every employee ordered by id.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// GetEmployeeByID returns ErrNotFound when no row matches.
	GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, error)

	// CreateEmployee inserts e and returns its id. A zero e.ID lets the
	// database assign one; a duplicate explicit id yields ErrAlreadyExists.
	CreateEmployee(ctx context.Context, e domain.Employee) (int64, error)

	// UpdateEmployeeName reports false when no row has the given id.
	UpdateEmployeeName(ctx context.Context, id int64, name string) (bool, error)

	// DeleteEmployee reports false when no row has the given id.
	DeleteEmployee(ctx context.Context, id int64) (bool, error)
}
