package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transwerk/personal-backend-go/internal/domain/document"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/leave"
	"github.com/transwerk/personal-backend-go/internal/domain/payment"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
	err       error
}

func (f *fakeEmployeeRepo) List(ctx context.Context, search string) ([]employee.Employee, error) {
	return f.employees, f.err
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

type fakePaymentRepo struct {
	payments []payment.Payment
}

func (f *fakePaymentRepo) ListByMonth(ctx context.Context, monat string) ([]payment.Payment, error) {
	var out []payment.Payment
	for _, p := range f.payments {
		if p.Zahlungsmonat == monat {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByDateRange(ctx context.Context, from, to string) ([]payment.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) ListByEmployeeAndDateRange(ctx context.Context, mitarbeiterID, from, to string) ([]payment.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	return payment.Payment{}, payment.ErrPaymentNotFound
}

func (f *fakePaymentRepo) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	return p, nil
}

func (f *fakePaymentRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
}

func (f *fakeLeaveRepo) ListByYear(ctx context.Context, year int, status string) ([]leave.LeaveRequest, error) {
	return f.requests, nil
}

func (f *fakeLeaveRepo) ListByEmployeeAndYear(ctx context.Context, mitarbeiterID string, year int) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	return request, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	return nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeDocumentRepo struct {
	documents []document.Document
}

func (f *fakeDocumentRepo) List(ctx context.Context) ([]document.Document, error) {
	return f.documents, nil
}

func (f *fakeDocumentRepo) ListByEmployee(ctx context.Context, mitarbeiterID string) ([]document.Document, error) {
	return nil, nil
}

func (f *fakeDocumentRepo) GetByID(ctx context.Context, id string) (document.Document, error) {
	return document.Document{}, document.ErrDocumentNotFound
}

func (f *fakeDocumentRepo) GetFile(ctx context.Context, id string) (string, string, error) {
	return "", "", document.ErrDocumentNotFound
}

func (f *fakeDocumentRepo) Create(ctx context.Context, d document.Document) (document.Document, error) {
	return d, nil
}

func (f *fakeDocumentRepo) Delete(ctx context.Context, id string) error { return nil }

func TestGetSummary(t *testing.T) {
	now := time.Now()
	monat := now.Format("2006-01")

	employees := []employee.Employee{
		{ID: "emp-1", Vorname: "Max", Nachname: "Mustermann", Grundgehalt: decimal.NewFromInt(3000), Aktiv: true},
		{ID: "emp-2", Vorname: "Erika", Nachname: "Musterfrau", Grundgehalt: decimal.NewFromInt(2500), Aktiv: false},
	}
	payments := []payment.Payment{
		{ID: "p1", MitarbeiterID: "emp-1", Zahlungsart: payment.ZahlungsartVorschuss, Betrag: decimal.NewFromInt(500), Zahlungsmonat: monat},
	}
	expired := now.AddDate(0, 0, -1)
	soon := now.AddDate(0, 0, 20)
	documents := []document.Document{
		{ID: "d1", MitarbeiterID: "emp-1", Dokumenttyp: document.DokumenttypFuehrerschein, Ablaufdatum: &expired},
		{ID: "d2", MitarbeiterID: "emp-1", Dokumenttyp: document.DokumenttypSRC, Ablaufdatum: &soon},
		{ID: "d3", MitarbeiterID: "emp-1", Dokumenttyp: document.DokumenttypSonstiges},
	}
	leaves := []leave.LeaveRequest{
		{ID: "l1", MitarbeiterID: "emp-1", Status: leave.LeaveStatusGenehmigt, Startdatum: now.AddDate(0, 0, -2), Enddatum: now.AddDate(0, 0, 2)},
		{ID: "l2", MitarbeiterID: "emp-2", Status: leave.LeaveStatusAusstehend, Startdatum: now, Enddatum: now},
	}

	svc := NewDashboardService(
		&fakeEmployeeRepo{employees: employees},
		&fakePaymentRepo{payments: payments},
		&fakeLeaveRepo{requests: leaves},
		&fakeDocumentRepo{documents: documents},
	)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.MitarbeiterGesamt)
	assert.Equal(t, 1, summary.MitarbeiterAktiv)
	assert.Equal(t, 1, summary.HeuteImUrlaub)
	assert.Equal(t, 1, summary.AusstehendeAntraege)
	assert.Equal(t, 1, summary.AbgelaufeneDokumente)
	assert.Equal(t, 1, summary.AblaufendeDokumente)
	assert.True(t, summary.MonatsAuszahlung.Auszahlung.Equal(decimal.NewFromInt(2500)))
	assert.Len(t, summary.Monatsverlauf, 12)
}

func TestGetSummary_RepositoryErrorPropagates(t *testing.T) {
	svc := NewDashboardService(
		&fakeEmployeeRepo{err: errors.New("connection lost")},
		&fakePaymentRepo{},
		&fakeLeaveRepo{},
		&fakeDocumentRepo{},
	)

	_, err := svc.GetSummary(context.Background())
	require.Error(t, err)
}
