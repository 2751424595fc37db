package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/payment"
)

type PaymentServiceImpl struct {
	payment.PaymentRepository
	employee.EmployeeRepository
}

func NewPaymentService(paymentRepository payment.PaymentRepository, employeeRepository employee.EmployeeRepository) payment.PaymentService {
	return &PaymentServiceImpl{
		PaymentRepository:  paymentRepository,
		EmployeeRepository: employeeRepository,
	}
}

// ListByMonth implements payment.PaymentService.
func (s *PaymentServiceImpl) ListByMonth(ctx context.Context, monat string) ([]payment.PaymentResponse, error) {
	payments, err := s.PaymentRepository.ListByMonth(ctx, monat)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, payment.ToResponse(p))
	}
	return responses, nil
}

// CreatePayment implements payment.PaymentService. The referenced employee
// must exist; the foreign key would catch it anyway, but resolving it here
// produces a proper not-found instead of a constraint error.
func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req payment.CreatePaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	e, err := s.EmployeeRepository.GetByID(ctx, req.MitarbeiterID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	zahlungsdatum, _ := time.Parse("2006-01-02", req.Zahlungsdatum)
	p := payment.Payment{
		MitarbeiterID: req.MitarbeiterID,
		Zahlungsart:   payment.Zahlungsart(req.Zahlungsart),
		Betrag:        req.Betrag,
		Zahlungsdatum: zahlungsdatum,
		Zahlungsmonat: req.Zahlungsmonat,
		Beschreibung:  req.Beschreibung,
	}

	created, err := s.PaymentRepository.Create(ctx, p)
	if err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("failed to create payment: %w", err)
	}

	name := e.FullName()
	created.MitarbeiterName = &name
	return payment.ToResponse(created), nil
}

// DeletePayment implements payment.PaymentService.
func (s *PaymentServiceImpl) DeletePayment(ctx context.Context, id string) error {
	return s.PaymentRepository.Delete(ctx, id)
}
