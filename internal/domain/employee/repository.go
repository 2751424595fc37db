package employee

import "context"

type EmployeeRepository interface {
	// List returns all employees ordered by nachname. An empty search term
	// returns everything; otherwise name and position are matched
	// case-insensitively.
	List(ctx context.Context, search string) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	// Delete removes the employee; payments, documents and leave requests
	// cascade at the schema level.
	Delete(ctx context.Context, id string) error
}
