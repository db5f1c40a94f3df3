package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/employees/internal/employees/domain"
	"github.com/aussiebroadwan/employees/internal/employees/service"
	"github.com/aussiebroadwan/employees/pkg/employeesdk"
	"github.com/aussiebroadwan/employees/pkg/httpx"
	"github.com/aussiebroadwan/employees/pkg/slogx"
)

// maxBodyBytes caps create and update payloads.
const maxBodyBytes = 1 << 20

// EmployeesHandler handles the /employees endpoints.
type EmployeesHandler struct {
	EmployeeService *service.EmployeeService
}

// HandleList handles GET /employees
//
//	@Summary		List employees
//	@Description	Returns every employee ordered by id. An empty directory yields an empty array.
//	@Tags			Employees
//	@Produce		json
//	@Success		200	{array}		employeesdk.Employee	"All employees"
//	@Failure		500	{object}	employeesdk.ErrorResponse	"error, error_description"
//	@Router			/employees [get].
func (h *EmployeesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.EmployeeService.ListEmployees(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := make([]employeesdk.Employee, len(employees))
	for i, e := range employees {
		response[i] = toResponse(e)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet handles GET /employees/{id}
//
//	@Summary		Get employee
//	@Description	Returns the employee with the given id.
//	@Tags			Employees
//	@Produce		json
//	@Param			id	path		int						true	"Employee ID"
//	@Success		200	{object}	employeesdk.Employee		"The employee"
//	@Failure		400	{object}	employeesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	employeesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	employeesdk.ErrorResponse	"error, error_description"
//	@Router			/employees/{id} [get].
func (h *EmployeesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	e, err := h.EmployeeService.GetEmployee(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toResponse(e))
}

// HandleCreate handles POST /employees
//
//	@Summary		Create employee
//	@Description	Creates an employee. The id is assigned by the store and returned in the body and the Location header.
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Param			request	body		employeesdk.EmployeeRequest	true	"Employee to create"
//	@Success		201		{object}	employeesdk.Employee			"The created employee"
//	@Header			201		{string}	Location						"/employees/{id}"
//	@Failure		400		{object}	employeesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	employeesdk.ErrorResponse		"error, error_description"
//	@Router			/employees [post].
func (h *EmployeesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEmployeeRequest(w, r)
	if !ok {
		return
	}

	e, err := h.EmployeeService.CreateEmployee(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/employees/%d", e.ID))
	httpx.WriteJSON(w, http.StatusCreated, toResponse(e))
}

// HandleUpdate handles PUT /employees/{id}
//
//	@Summary		Update employee
//	@Description	Replaces the name of an existing employee. The id always comes from the path.
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Employee ID"
//	@Param			request	body		employeesdk.EmployeeRequest	true	"New employee data"
//	@Success		200		{object}	employeesdk.Employee			"The updated employee"
//	@Failure		400		{object}	employeesdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	employeesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	employeesdk.ErrorResponse		"error, error_description"
//	@Router			/employees/{id} [put].
func (h *EmployeesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if id <= 0 {
		employeesdk.NewAPIError(http.StatusBadRequest, employeesdk.ErrorCodeInvalidRequest,
			"employee id must be positive").WriteError(w)
		return
	}

	req, ok := decodeEmployeeRequest(w, r)
	if !ok {
		return
	}

	e, err := h.EmployeeService.UpdateEmployee(r.Context(), domain.Employee{ID: id, Name: req.Name})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toResponse(e))
}

// HandleDelete handles DELETE /employees/{id}
//
//	@Summary		Delete employee
//	@Description	Removes the employee with the given id.
//	@Tags			Employees
//	@Produce		json
//	@Param			id	path	int	true	"Employee ID"
//	@Success		204	"Employee deleted"
//	@Failure		400	{object}	employeesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	employeesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	employeesdk.ErrorResponse	"error, error_description"
//	@Router			/employees/{id} [delete].
func (h *EmployeesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.EmployeeService.DeleteEmployee(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toResponse(e domain.Employee) employeesdk.Employee {
	return employeesdk.Employee{EmployeeID: e.ID, Name: e.Name}
}

// pathID parses the {id} path segment, writing a 400 when it is not an integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		employeesdk.NewAPIError(http.StatusBadRequest, employeesdk.ErrorCodeInvalidRequest,
			fmt.Sprintf("invalid employee id %q", raw)).WriteError(w)
		return 0, false
	}
	return id, true
}

// decodeEmployeeRequest reads the JSON body. An empty body and the literal
// null both count as a missing payload.
func decodeEmployeeRequest(w http.ResponseWriter, r *http.Request) (*employeesdk.EmployeeRequest, bool) {
	var req *employeesdk.EmployeeRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	switch {
	case errors.Is(err, io.EOF) || (err == nil && req == nil):
		employeesdk.NewAPIError(http.StatusBadRequest, employeesdk.ErrorCodeInvalidRequest,
			"request body is required").WriteError(w)
		return nil, false
	case err != nil:
		slogx.FromContext(r.Context()).Debug("rejected employee payload", "error", err)
		employeesdk.NewAPIError(http.StatusBadRequest, employeesdk.ErrorCodeInvalidRequest,
			"invalid JSON in request body").WriteError(w)
		return nil, false
	}
	return req, true
}

// writeServiceError maps service errors onto the error envelope. Storage
// failures were already logged by the service and are never echoed back.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		employeesdk.ErrNotFound.WriteError(w)
	default:
		employeesdk.ErrServerError.WriteError(w)
	}
}
