// Package storetest holds behaviour checks every store driver must pass.
package storetest

import (
	"testing"

	"github.com/aussiebroadwan/employees/internal/employees/domain"
	"github.com/aussiebroadwan/employees/internal/employees/store"
	"github.com/stretchr/testify/require"
)

// Run executes the employee repository checks. newStore must return an empty,
// migrated store; it is called once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("create assigns unique ids", func(t *testing.T) {
		repo := newStore(t).Employees()
		ctx := t.Context()

		seen := make(map[int64]struct{})
		for _, name := range []string{"Alice", "Bob", "Carol", "Alice"} {
			id, err := repo.CreateEmployee(ctx, domain.Employee{Name: name})
			require.NoError(t, err)
			require.Positive(t, id)

			_, dup := seen[id]
			require.False(t, dup, "id %d assigned twice", id)
			seen[id] = struct{}{}
		}
	})

	t.Run("get returns created record", func(t *testing.T) {
		repo := newStore(t).Employees()
		ctx := t.Context()

		id, err := repo.CreateEmployee(ctx, domain.Employee{Name: "Alice"})
		require.NoError(t, err)

		got, err := repo.GetEmployeeByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, domain.Employee{ID: id, Name: "Alice"}, got)
	})

	t.Run("get missing returns ErrNotFound", func(t *testing.T) {
		repo := newStore(t).Employees()

		_, err := repo.GetEmployeeByID(t.Context(), 404)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		repo := newStore(t).Employees()
		ctx := t.Context()

		list, err := repo.ListEmployees(ctx)
		require.NoError(t, err)
		require.Empty(t, list)

		_, err = repo.CreateEmployee(ctx, domain.Employee{ID: 7, Name: "Grace"})
		require.NoError(t, err)
		_, err = repo.CreateEmployee(ctx, domain.Employee{ID: 3, Name: "Ada"})
		require.NoError(t, err)

		list, err = repo.ListEmployees(ctx)
		require.NoError(t, err)
		require.Equal(t, []domain.Employee{
			{ID: 3, Name: "Ada"},
			{ID: 7, Name: "Grace"},
		}, list)
	})

	t.Run("explicit id is kept and duplicates rejected", func(t *testing.T) {
		repo := newStore(t).Employees()
		ctx := t.Context()

		id, err := repo.CreateEmployee(ctx, domain.Employee{ID: 42, Name: "Linus"})
		require.NoError(t, err)
		require.Equal(t, int64(42), id)

		_, err = repo.CreateEmployee(ctx, domain.Employee{ID: 42, Name: "Other"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		next, err := repo.CreateEmployee(ctx, domain.Employee{Name: "Next"})
		require.NoError(t, err)
		require.Greater(t, next, int64(42))
	})

	t.Run("update changes name", func(t *testing.T) {
		repo := newStore(t).Employees()
		ctx := t.Context()

		id, err := repo.CreateEmployee(ctx, domain.Employee{Name: "Alice"})
		require.NoError(t, err)

		ok, err := repo.UpdateEmployeeName(ctx, id, "Alicia")
		require.NoError(t, err)
		require.True(t, ok)

		// Writing the same value again still finds the row.
		ok, err = repo.UpdateEmployeeName(ctx, id, "Alicia")
		require.NoError(t, err)
		require.True(t, ok)

		got, err := repo.GetEmployeeByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Alicia", got.Name)
	})

	t.Run("update missing reports false and changes nothing", func(t *testing.T) {
		repo := newStore(t).Employees()
		ctx := t.Context()

		id, err := repo.CreateEmployee(ctx, domain.Employee{Name: "Alice"})
		require.NoError(t, err)

		ok, err := repo.UpdateEmployeeName(ctx, id+100, "Ghost")
		require.NoError(t, err)
		require.False(t, ok)

		list, err := repo.ListEmployees(ctx)
		require.NoError(t, err)
		require.Equal(t, []domain.Employee{{ID: id, Name: "Alice"}}, list)
	})

	t.Run("delete removes once", func(t *testing.T) {
		repo := newStore(t).Employees()
		ctx := t.Context()

		id, err := repo.CreateEmployee(ctx, domain.Employee{Name: "Alice"})
		require.NoError(t, err)

		ok, err := repo.DeleteEmployee(ctx, id)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = repo.GetEmployeeByID(ctx, id)
		require.ErrorIs(t, err, store.ErrNotFound)

		ok, err = repo.DeleteEmployee(ctx, id)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, newStore(t).Ping(t.Context()))
	})
}
