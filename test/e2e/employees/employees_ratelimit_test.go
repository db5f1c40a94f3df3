package employees_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/employees/pkg/employeesdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitWrites verifies that writes are limited per client IP. The
// limit is lowered through the environment to keep the test fast.
func TestRateLimitWrites(t *testing.T) {
	baseURL := setupService(t, map[string]string{
		"RATELIMIT_MODERATE_REQUESTS": "3",
		"RATELIMIT_MODERATE_BURST":    "3",
	})
	client := employeesdk.NewClient(baseURL)
	ctx := t.Context()

	for i := range 3 {
		_, err := client.CreateEmployee(ctx, employeesdk.EmployeeRequest{Name: "Burst"})
		require.NoError(t, err, "request %d should not be rate limited", i+1)
	}

	_, err := client.CreateEmployee(ctx, employeesdk.EmployeeRequest{Name: "Burst"})
	var apiErr *employeesdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	require.Equal(t, employeesdk.ErrorCodeRateLimited, apiErr.Code)

	// Reads use a separate, more lenient limiter.
	employees, err := client.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 3)
}
