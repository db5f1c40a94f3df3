package employeesdk

// ============================================================================
// Employee Types
// ============================================================================

// Employee is the JSON representation of a stored employee.
type Employee struct {
	EmployeeID int64  `json:"employeeId" example:"1"`
	Name       string `json:"name" example:"Alice"`
}

// EmployeeRequest is the body accepted by create and update.
// Any id in the body is ignored; update takes its id from the path.
type EmployeeRequest struct {
	Name string `json:"name" example:"Alice"`
}

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error            string `json:"error" example:"not_found"`
	ErrorDescription string `json:"error_description,omitempty" example:"employee 7 not found"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
