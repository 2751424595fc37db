package payroll

import "context"

// PayrollService composes the stored employees and payments into the payroll
// views. The arithmetic itself lives in the pure functions of this package.
type PayrollService interface {
	// Monatsuebersicht returns the per-employee payout cards of one payroll
	// month (YYYY-MM), active employees only, ordered by name.
	Monatsuebersicht(ctx context.Context, monat string) ([]MitarbeiterMonatsUebersicht, error)

	// MonatsTotale returns the organization-wide totals of one payroll month.
	MonatsTotale(ctx context.Context, monat string) (MonatsTotaleResponse, error)

	// Jahresuebersicht returns one employee's annual summary: projected
	// yearly figures, twelve monthly rows, and approved leave day totals.
	Jahresuebersicht(ctx context.Context, mitarbeiterID string, jahr int) (JahresUebersichtResponse, error)
}
