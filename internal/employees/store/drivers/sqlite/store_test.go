package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/employees/internal/employees/domain"
	"github.com/aussiebroadwan/employees/internal/employees/store"
	"github.com/aussiebroadwan/employees/internal/employees/store/drivers/sqlite"
	"github.com/aussiebroadwan/employees/internal/employees/store/storetest"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, newMemoryStore)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newMemoryStore(t)

	// Second run has nothing to apply and must not fail.
	require.NoError(t, s.ApplyMigrations())
}

func TestRecordsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.db")
	ctx := t.Context()

	first, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.ApplyMigrations())

	id, err := first.Employees().CreateEmployee(ctx, domain.Employee{Name: "Alice"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := sqlite.NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
	require.NoError(t, second.ApplyMigrations())

	got, err := second.Employees().GetEmployeeByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Name)
}
