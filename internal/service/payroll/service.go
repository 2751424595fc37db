package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/leave"
	"github.com/transwerk/personal-backend-go/internal/domain/payment"
	"github.com/transwerk/personal-backend-go/internal/domain/payroll"
	"github.com/transwerk/personal-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	employee.EmployeeRepository
	payment.PaymentRepository
	leave.LeaveRequestRepository
}

func NewPayrollService(employeeRepository employee.EmployeeRepository, paymentRepository payment.PaymentRepository, leaveRepository leave.LeaveRequestRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		EmployeeRepository:     employeeRepository,
		PaymentRepository:      paymentRepository,
		LeaveRequestRepository: leaveRepository,
	}
}

// Monatsuebersicht implements payroll.PayrollService.
func (s *PayrollServiceImpl) Monatsuebersicht(ctx context.Context, monat string) ([]payroll.MitarbeiterMonatsUebersicht, error) {
	parsed, ok := validator.IsValidMonthKey(monat)
	if !ok {
		return nil, payroll.ErrInvalidMonth
	}

	employees, err := s.EmployeeRepository.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	monthPayments, err := s.PaymentRepository.ListByMonth(ctx, monat)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	// Employees come ordered by name from the repository; only active ones
	// get a card.
	cards := make([]payroll.MitarbeiterMonatsUebersicht, 0, len(employees))
	for _, e := range employees {
		if !e.Aktiv {
			continue
		}
		payout := payroll.CalculateMonthlyPayout(e, parsed.Month(), monthPayments)
		cards = append(cards, payroll.MitarbeiterMonatsUebersicht{
			MitarbeiterID:   e.ID,
			MitarbeiterName: e.FullName(),
			Position:        e.Position,
			Gehalt:          payout.Gehalt,
			Vorschuesse:     payout.Vorschuesse,
			Boni:            payout.Boni,
			Auszahlung:      payout.Auszahlung,
		})
	}
	return cards, nil
}

// MonatsTotale implements payroll.PayrollService.
func (s *PayrollServiceImpl) MonatsTotale(ctx context.Context, monat string) (payroll.MonatsTotaleResponse, error) {
	parsed, ok := validator.IsValidMonthKey(monat)
	if !ok {
		return payroll.MonatsTotaleResponse{}, payroll.ErrInvalidMonth
	}

	employees, err := s.EmployeeRepository.List(ctx, "")
	if err != nil {
		return payroll.MonatsTotaleResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	monthPayments, err := s.PaymentRepository.ListByMonth(ctx, monat)
	if err != nil {
		return payroll.MonatsTotaleResponse{}, fmt.Errorf("failed to list payments: %w", err)
	}

	org := payroll.CalculateOrgMonthlyTotal(employees, parsed.Month(), monthPayments)
	return payroll.MonatsTotaleResponse{
		Monat:       monat,
		Gehaelter:   org.Gehaelter,
		Vorschuesse: org.Vorschuesse,
		Boni:        org.Boni,
		Auszahlung:  org.Auszahlung,
	}, nil
}

// Jahresuebersicht implements payroll.PayrollService.
func (s *PayrollServiceImpl) Jahresuebersicht(ctx context.Context, mitarbeiterID string, jahr int) (payroll.JahresUebersichtResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, mitarbeiterID)
	if err != nil {
		return payroll.JahresUebersichtResponse{}, err
	}

	from := fmt.Sprintf("%04d-01-01", jahr)
	to := fmt.Sprintf("%04d-12-31", jahr)
	yearPayments, err := s.PaymentRepository.ListByEmployeeAndDateRange(ctx, mitarbeiterID, from, to)
	if err != nil {
		return payroll.JahresUebersichtResponse{}, fmt.Errorf("failed to list payments: %w", err)
	}

	leaveRequests, err := s.LeaveRequestRepository.ListByEmployeeAndYear(ctx, mitarbeiterID, jahr)
	if err != nil {
		return payroll.JahresUebersichtResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	annual := payroll.CalculateAnnualNet(e, yearPayments)

	monate := make([]payroll.MonatsUebersicht, 0, 12)
	for i := 1; i <= 12; i++ {
		monat := fmt.Sprintf("%04d-%02d", jahr, i)
		monthPayments := payroll.FilterByMonth(yearPayments, monat)
		payout := payroll.CalculateMonthlyPayout(e, time.Month(i), monthPayments)
		monate = append(monate, payroll.MonatsUebersicht{
			Monat:       monat,
			Gehalt:      payout.Gehalt,
			Vorschuesse: payout.Vorschuesse,
			Boni:        payout.Boni,
			Auszahlung:  payout.Auszahlung,
		})
	}

	return payroll.JahresUebersichtResponse{
		MitarbeiterID:  e.ID,
		Jahr:           jahr,
		JahresGehalt:   annual.JahresGehalt,
		Vorschuesse:    annual.Vorschuesse,
		Boni:           annual.Boni,
		JahresNetto:    annual.Netto,
		Monate:         monate,
		Urlaubstage:    leave.ApprovedDaysByType(leaveRequests, leave.UrlaubsartJahresurlaub),
		Krankheitstage: leave.ApprovedDaysByType(leaveRequests, leave.UrlaubsartKrankheit),
	}, nil
}
