package employeesdk

import (
	"context"
	"net/http"
	"strconv"
)

func employeePath(id int64) string {
	return "/employees/" + strconv.FormatInt(id, 10)
}

// ListEmployees returns every employee ordered by id.
func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/employees", nil)
	if err != nil {
		return nil, err
	}

	var employees []Employee
	if err := decodeJSON(resp, &employees, http.StatusOK); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetEmployee returns the employee with the given id.
func (c *Client) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, employeePath(id), nil)
	if err != nil {
		return nil, err
	}

	var emp Employee
	if err := decodeJSON(resp, &emp, http.StatusOK); err != nil {
		return nil, err
	}

	return &emp, nil
}

// CreateEmployee creates an employee and returns it with its assigned id.
func (c *Client) CreateEmployee(ctx context.Context, req EmployeeRequest) (*Employee, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/employees", req)
	if err != nil {
		return nil, err
	}

	var emp Employee
	if err := decodeJSON(resp, &emp, http.StatusCreated); err != nil {
		return nil, err
	}

	return &emp, nil
}

// UpdateEmployee replaces the name of the employee with the given id.
func (c *Client) UpdateEmployee(ctx context.Context, id int64, req EmployeeRequest) (*Employee, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, employeePath(id), req)
	if err != nil {
		return nil, err
	}

	var emp Employee
	if err := decodeJSON(resp, &emp, http.StatusOK); err != nil {
		return nil, err
	}

	return &emp, nil
}

// DeleteEmployee removes the employee with the given id.
func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, employeePath(id), nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
