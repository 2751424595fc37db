package payment

import "context"

// PaymentService defines business logic for payment operations
type PaymentService interface {
	// ListByMonth lists the payments attributed to a payroll month (YYYY-MM).
	ListByMonth(ctx context.Context, monat string) ([]PaymentResponse, error)

	// CreatePayment records a payment; payments are immutable afterwards.
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error)

	// DeletePayment removes a mistakenly entered payment.
	DeletePayment(ctx context.Context, id string) error
}
