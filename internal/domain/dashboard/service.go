package dashboard

import "context"

// DashboardService assembles the snapshot and reduces it to the summary.
type DashboardService interface {
	GetSummary(ctx context.Context) (Summary, error)
}
