package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists employees, optionally filtered by a search term
	// matched against name and position.
	ListEmployees(ctx context.Context, search string) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee replaces every editable field of an employee
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and, via the schema, all their
	// payments, documents and leave requests
	DeleteEmployee(ctx context.Context, id string) error
}
