package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/transwerk/personal-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, search string) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e := employee.Employee{
		Vorname:           req.Vorname,
		Nachname:          req.Nachname,
		Telefon:           req.Telefon,
		Email:             req.Email,
		Adresse:           req.Adresse,
		Position:          req.Position,
		Grundgehalt:       req.Grundgehalt,
		MonatlichesGehalt: employee.MonthlySalaries(req.MonatlichesGehalt),
		Aktiv:             true,
		Notizen:           req.Notizen,
	}
	if req.Aktiv != nil {
		e.Aktiv = *req.Aktiv
	}

	// Dates are validated already; parse errors here would be programming
	// errors.
	e.Eintrittsdatum, _ = time.Parse("2006-01-02", req.Eintrittsdatum)
	if req.Geburtsdatum != nil && *req.Geburtsdatum != "" {
		geburtsdatum, _ := time.Parse("2006-01-02", *req.Geburtsdatum)
		e.Geburtsdatum = &geburtsdatum
	}

	created, err := s.EmployeeRepository.Create(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee.ToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.EmployeeRepository.Update(ctx, id, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}
