/*
Package employeesdk provides a client SDK for the employee directory service.

# Overview

A Client wraps the service's HTTP API. Every method takes a context and maps
non-2xx responses onto *APIError:

	client := employeesdk.NewClient("http://localhost:8080")

	created, err := client.CreateEmployee(ctx, employeesdk.EmployeeRequest{Name: "Alice"})
	if err != nil {
		return err
	}

	emp, err := client.GetEmployee(ctx, created.EmployeeID)

# Error Handling

	_, err := client.GetEmployee(ctx, 42)
	var apiErr *employeesdk.APIError
	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
		// no employee with id 42
	}

The same wire types and APIError values are used by the server to write its
responses, so the client and server always agree on the JSON shapes.
*/
package employeesdk
