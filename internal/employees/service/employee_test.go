package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/employees/internal/employees/domain"
	"github.com/aussiebroadwan/employees/internal/employees/store"
	"github.com/aussiebroadwan/employees/internal/employees/store/drivers/memory"
	"github.com/aussiebroadwan/employees/internal/employees/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

var errBroken = errors.New("connection reset by peer")

// brokenStore fails every repository call after an optional successful
// lookup, to exercise the storage failure paths.
type brokenStore struct {
	memory.Store
	lookupOK bool
}

func (b *brokenStore) Employees() store.Employees { return brokenEmployees{lookupOK: b.lookupOK} }

type brokenEmployees struct {
	lookupOK bool
}

func (brokenEmployees) ListEmployees(context.Context) ([]domain.Employee, error) {
	return nil, errBroken
}

func (b brokenEmployees) GetEmployeeByID(_ context.Context, id int64) (domain.Employee, error) {
	if b.lookupOK {
		return domain.Employee{ID: id, Name: "Existing"}, nil
	}
	return domain.Employee{}, errBroken
}

func (brokenEmployees) CreateEmployee(context.Context, domain.Employee) (int64, error) {
	return 0, errBroken
}

func (brokenEmployees) UpdateEmployeeName(context.Context, int64, string) (bool, error) {
	return false, errBroken
}

func (brokenEmployees) DeleteEmployee(context.Context, int64) (bool, error) {
	return false, errBroken
}

func newService() *EmployeeService {
	return &EmployeeService{Store: memory.NewStore()}
}

func TestCreateAndGetEmployee(t *testing.T) {
	ctx := t.Context()
	svc := newService()

	created, err := svc.CreateEmployee(ctx, "Alice")
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, "Alice", created.Name)

	got, err := svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestCreatedIDsAreUnique(t *testing.T) {
	ctx := t.Context()
	svc := newService()

	seen := make(map[int64]bool)
	for range 20 {
		e, err := svc.CreateEmployee(ctx, "Same Name")
		require.NoError(t, err)
		require.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
}

func TestListEmployees(t *testing.T) {
	ctx := t.Context()
	svc := newService()

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = svc.CreateEmployee(ctx, "Alice")
	require.NoError(t, err)
	_, err = svc.CreateEmployee(ctx, "Bob")
	require.NoError(t, err)

	list, err = svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.Employee{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, list)
}

func TestGetEmployeeNotFound(t *testing.T) {
	_, err := newService().GetEmployee(t.Context(), 99)
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestUpdateEmployee(t *testing.T) {
	ctx := t.Context()

	t.Run("renames existing employee", func(t *testing.T) {
		svc := newService()
		created, err := svc.CreateEmployee(ctx, "Alice")
		require.NoError(t, err)

		updated, err := svc.UpdateEmployee(ctx, domain.Employee{ID: created.ID, Name: "Alicia"})
		require.NoError(t, err)
		require.Equal(t, domain.Employee{ID: created.ID, Name: "Alicia"}, updated)

		got, err := svc.GetEmployee(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Alicia", got.Name)
	})

	t.Run("missing id leaves store unchanged", func(t *testing.T) {
		svc := newService()
		created, err := svc.CreateEmployee(ctx, "Alice")
		require.NoError(t, err)

		_, err = svc.UpdateEmployee(ctx, domain.Employee{ID: 42, Name: "Ghost"})
		require.ErrorIs(t, err, ErrEmployeeNotFound)

		list, err := svc.ListEmployees(ctx)
		require.NoError(t, err)
		require.Equal(t, []domain.Employee{created}, list)
	})
}

func TestDeleteEmployee(t *testing.T) {
	ctx := t.Context()

	t.Run("delete then get is not found", func(t *testing.T) {
		svc := newService()
		created, err := svc.CreateEmployee(ctx, "Alice")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteEmployee(ctx, created.ID))

		_, err = svc.GetEmployee(ctx, created.ID)
		require.ErrorIs(t, err, ErrEmployeeNotFound)
	})

	t.Run("second delete is not found, not a storage error", func(t *testing.T) {
		svc := newService()
		created, err := svc.CreateEmployee(ctx, "Alice")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteEmployee(ctx, created.ID))

		err = svc.DeleteEmployee(ctx, created.ID)
		require.ErrorIs(t, err, ErrEmployeeNotFound)
		require.NotErrorIs(t, err, ErrStorage)
	})

	t.Run("missing id leaves store unchanged", func(t *testing.T) {
		svc := newService()
		created, err := svc.CreateEmployee(ctx, "Alice")
		require.NoError(t, err)

		require.ErrorIs(t, svc.DeleteEmployee(ctx, created.ID+1), ErrEmployeeNotFound)

		list, err := svc.ListEmployees(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})
}

func TestStorageFailuresAreDistinguishable(t *testing.T) {
	ctx := t.Context()

	t.Run("lookup failures", func(t *testing.T) {
		svc := &EmployeeService{Store: &brokenStore{}}

		_, err := svc.ListEmployees(ctx)
		require.ErrorIs(t, err, ErrStorage)
		require.ErrorIs(t, err, errBroken)

		_, err = svc.GetEmployee(ctx, 1)
		require.ErrorIs(t, err, ErrStorage)
		require.NotErrorIs(t, err, ErrEmployeeNotFound)

		_, err = svc.CreateEmployee(ctx, "Alice")
		require.ErrorIs(t, err, ErrStorage)

		_, err = svc.UpdateEmployee(ctx, domain.Employee{ID: 1, Name: "x"})
		require.ErrorIs(t, err, ErrStorage)

		require.ErrorIs(t, svc.DeleteEmployee(ctx, 1), ErrStorage)
	})

	t.Run("write failures after successful lookup", func(t *testing.T) {
		svc := &EmployeeService{Store: &brokenStore{lookupOK: true}}

		_, err := svc.UpdateEmployee(ctx, domain.Employee{ID: 1, Name: "x"})
		require.ErrorIs(t, err, ErrStorage)
		require.NotErrorIs(t, err, ErrEmployeeNotFound)

		err = svc.DeleteEmployee(ctx, 1)
		require.ErrorIs(t, err, ErrStorage)
		require.NotErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestEmployeeLifecycleOnSQLite(t *testing.T) {
	ctx := t.Context()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	svc := &EmployeeService{Store: st}

	created, err := svc.CreateEmployee(ctx, "Alice")
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	_, err = svc.UpdateEmployee(ctx, domain.Employee{ID: created.ID, Name: "Alicia"})
	require.NoError(t, err)

	got, err := svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Alicia", got.Name)

	require.NoError(t, svc.DeleteEmployee(ctx, created.ID))
	require.ErrorIs(t, svc.DeleteEmployee(ctx, created.ID), ErrEmployeeNotFound)
}
