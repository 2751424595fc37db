package payment

import "context"

type PaymentRepository interface {
	// ListByMonth returns every payment attributed to a payroll month
	// (zahlungsmonat), newest zahlungsdatum first.
	ListByMonth(ctx context.Context, monat string) ([]Payment, error)
	// ListByDateRange returns payments whose zahlungsdatum falls inside the
	// inclusive range, newest first. Used for yearly views.
	ListByDateRange(ctx context.Context, from, to string) ([]Payment, error)
	// ListByEmployeeAndDateRange scopes ListByDateRange to one employee.
	// Inactive employees keep their history here.
	ListByEmployeeAndDateRange(ctx context.Context, mitarbeiterID, from, to string) ([]Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)
	Create(ctx context.Context, p Payment) (Payment, error)
	// Payments are immutable after creation; there is no update.
	Delete(ctx context.Context, id string) error
}
