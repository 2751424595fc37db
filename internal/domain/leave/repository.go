package leave

import "context"

type LeaveRequestRepository interface {
	// ListByYear returns requests whose startdatum falls in the given year,
	// newest first. An optional status narrows the result.
	ListByYear(ctx context.Context, year int, status string) ([]LeaveRequest, error)
	ListByEmployeeAndYear(ctx context.Context, mitarbeiterID string, year int) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	// UpdateStatus overwrites the status unconditionally; flipping between
	// the two terminal states is allowed.
	UpdateStatus(ctx context.Context, id string, status LeaveStatus) error
	Delete(ctx context.Context, id string) error
}
