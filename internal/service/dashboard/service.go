package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/transwerk/personal-backend-go/internal/domain/dashboard"
	"github.com/transwerk/personal-backend-go/internal/domain/document"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/leave"
	"github.com/transwerk/personal-backend-go/internal/domain/payment"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	employee.EmployeeRepository
	payment.PaymentRepository
	leave.LeaveRequestRepository
	document.DocumentRepository
	now func() time.Time
}

func NewDashboardService(
	employeeRepository employee.EmployeeRepository,
	paymentRepository payment.PaymentRepository,
	leaveRepository leave.LeaveRequestRepository,
	documentRepository document.DocumentRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		EmployeeRepository:     employeeRepository,
		PaymentRepository:      paymentRepository,
		LeaveRequestRepository: leaveRepository,
		DocumentRepository:     documentRepository,
		now:                    time.Now,
	}
}

// GetSummary implements dashboard.DashboardService. The five queries are
// independent, so they run concurrently; the reduction itself is pure.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (dashboard.Summary, error) {
	today := s.now()
	snapshot := dashboard.Snapshot{Today: today}

	monat := today.Format("2006-01")
	from := fmt.Sprintf("%04d-01-01", today.Year())
	to := fmt.Sprintf("%04d-12-31", today.Year())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot.Mitarbeiter, err = s.EmployeeRepository.List(gctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.MonatsZahlungen, err = s.PaymentRepository.ListByMonth(gctx, monat)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.JahresZahlungen, err = s.PaymentRepository.ListByDateRange(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Urlaube, err = s.LeaveRequestRepository.ListByYear(gctx, today.Year(), "")
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Dokumente, err = s.DocumentRepository.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	return dashboard.Aggregate(snapshot), nil
}
