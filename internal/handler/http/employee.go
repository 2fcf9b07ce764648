package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/employee-service/internal/domain/employee"
	"github.com/cmlabs-hris/employee-service/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	LookupEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.NewEmployeeResponses(employees))
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := employeeIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, found, err := h.employeeService.GetEmployeeByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !found {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}

	response.Success(w, employee.NewEmployeeResponse(result))
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	newEmployee, err := req.ToEmployee()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), newEmployee)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", employee.NewEmployeeResponse(result))
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := employeeIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	// Validate request
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	current, found, err := h.employeeService.GetEmployeeByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !found {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}

	merged, err := req.Merge(current)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.UpdateEmployee(r.Context(), merged)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", employee.NewEmployeeResponse(result))
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := employeeIDParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// LookupEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) LookupEmployee(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := employee.LookupRequest{
		Email:     employee.NormalizeEmail(query.Get("email")),
		FirstName: strings.TrimSpace(query.Get("first_name")),
		LastName:  strings.TrimSpace(query.Get("last_name")),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	var (
		result employee.Employee
		found  bool
		err    error
	)
	if req.ByEmail() {
		result, found, err = h.employeeService.FindEmployeeByEmail(r.Context(), req.Email)
	} else {
		result, found, err = h.employeeService.FindEmployeeByName(r.Context(), req.FirstName, req.LastName)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !found {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}

	response.Success(w, employee.NewEmployeeResponse(result))
}

func employeeIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, employee.ErrInvalidEmployeeID
	}
	return id, nil
}
