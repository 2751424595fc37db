package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/payroll"
	"github.com/transwerk/personal-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Jahresuebersicht(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
	payrollService  payroll.PayrollService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, payrollService payroll.PayrollService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		payrollService:  payrollService,
	}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")
	employees, err := h.employeeService.ListEmployees(r.Context(), search)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	e, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, e)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created successfully", created)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.employeeService.UpdateEmployee(r.Context(), id, req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// Jahresuebersicht implements EmployeeHandler. jahr defaults to the current
// year.
func (h *EmployeeHandlerImpl) Jahresuebersicht(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	jahr := time.Now().Year()
	if raw := r.URL.Query().Get("jahr"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "jahr must be a number", nil)
			return
		}
		jahr = parsed
	}

	summary, err := h.payrollService.Jahresuebersicht(r.Context(), id, jahr)
	if err != nil {
		slog.Error("Jahresuebersicht service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
