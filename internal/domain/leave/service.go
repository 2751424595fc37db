package leave

import "context"

// LeaveService defines business logic for leave request operations
type LeaveService interface {
	// ListByYear lists the requests starting in a year, optionally narrowed
	// to one status.
	ListByYear(ctx context.Context, year int, status string) ([]LeaveRequestResponse, error)

	// GetStats tallies the year's requests per status.
	GetStats(ctx context.Context, year int) (LeaveStats, error)

	// CreateLeaveRequest records a request; gesamttage is computed here and
	// stored, the request starts out ausstehend.
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// UpdateStatus decides a request. Re-deciding an already decided request
	// is allowed.
	UpdateStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) (LeaveRequestResponse, error)

	// DeleteLeaveRequest removes a request regardless of status.
	DeleteLeaveRequest(ctx context.Context, id string) error
}
