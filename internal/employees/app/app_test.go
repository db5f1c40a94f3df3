package app

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/employees/internal/employees/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func testConfig(driver string) Config {
	return Config{
		DBDriver:            driver,
		DBConnectTimeout:    time.Second,
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                8080,
		ShutdownGracePeriod: time.Second,
	}
}

func TestNewWiresRoutes(t *testing.T) {
	for _, driver := range []string{DriverMemory, DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := testConfig(driver)
			cfg.DBFile = filepath.Join(t.TempDir(), "employees.db")

			application, err := New(cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = application.Shutdown() })

			srv := httptest.NewServer(application.Handler())
			t.Cleanup(srv.Close)

			resp, err := http.Post(srv.URL+"/employees", "application/json", strings.NewReader(`{"name":"Alice"}`))
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			require.Equal(t, http.StatusCreated, resp.StatusCode)
			require.JSONEq(t, `{"employeeId":1,"name":"Alice"}`, string(body))

			resp, err = http.Get(srv.URL + "/readyz")
			require.NoError(t, err)
			_ = resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestWaitForDatabaseGivesUp(t *testing.T) {
	application := &Application{
		cfg:    Config{DBDriver: DriverMemory, DBConnectTimeout: 50 * time.Millisecond},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	db := memory.NewStore()
	db.PingErr = errors.New("connection refused")

	err := application.waitForDatabase(t.Context(), db)
	require.ErrorContains(t, err, "connection refused")
}
