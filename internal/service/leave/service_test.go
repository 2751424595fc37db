package leave

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) ListByYear(ctx context.Context, year int, status string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.Startdatum.Year() != year {
			continue
		}
		if status != "" && string(r.Status) != status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByEmployeeAndYear(ctx context.Context, mitarbeiterID string, year int) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.MitarbeiterID == mitarbeiterID && r.Startdatum.Year() == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r, nil
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = string(rune('a' + f.nextID))
	request.ErstelltAm = time.Now()
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	r, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	r.Status = status
	f.requests[id] = r
	return nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) List(ctx context.Context, search string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func testEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:          "emp-1",
			Vorname:     "Max",
			Nachname:    "Mustermann",
			Position:    "Fahrer",
			Grundgehalt: decimal.NewFromInt(3000),
			Aktiv:       true,
		},
	}}
}

func TestCreateLeaveRequest_ComputesTotalDays(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo(), testEmployeeRepo())

	created, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		MitarbeiterID: "emp-1",
		Urlaubsart:    "jahresurlaub",
		Startdatum:    "2025-06-10",
		Enddatum:      "2025-06-12",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, created.Gesamttage)
	assert.Equal(t, string(leave.LeaveStatusAusstehend), created.Status)
	require.NotNil(t, created.MitarbeiterName)
	assert.Equal(t, "Max Mustermann", *created.MitarbeiterName)
}

func TestCreateLeaveRequest_SingleDay(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo(), testEmployeeRepo())

	created, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		MitarbeiterID: "emp-1",
		Urlaubsart:    "krankheit",
		Startdatum:    "2025-03-05",
		Enddatum:      "2025-03-05",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Gesamttage)
}

func TestCreateLeaveRequest_EndBeforeStartRejected(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo(), testEmployeeRepo())

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		MitarbeiterID: "emp-1",
		Urlaubsart:    "jahresurlaub",
		Startdatum:    "2025-06-12",
		Enddatum:      "2025-06-10",
	})
	require.Error(t, err)
}

func TestCreateLeaveRequest_UnknownEmployee(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo(), testEmployeeRepo())

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		MitarbeiterID: "missing",
		Urlaubsart:    "jahresurlaub",
		Startdatum:    "2025-06-10",
		Enddatum:      "2025-06-12",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateStatus_OverwritesDecision(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, testEmployeeRepo())

	created, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		MitarbeiterID: "emp-1",
		Urlaubsart:    "jahresurlaub",
		Startdatum:    "2025-06-10",
		Enddatum:      "2025-06-12",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID, leave.UpdateLeaveStatusRequest{Status: "genehmigt"})
	require.NoError(t, err)
	assert.Equal(t, "genehmigt", updated.Status)

	// A decided request can be re-decided.
	updated, err = svc.UpdateStatus(context.Background(), created.ID, leave.UpdateLeaveStatusRequest{Status: "abgelehnt"})
	require.NoError(t, err)
	assert.Equal(t, "abgelehnt", updated.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo(), testEmployeeRepo())

	_, err := svc.UpdateStatus(context.Background(), "any", leave.UpdateLeaveStatusRequest{Status: "vielleicht"})
	require.Error(t, err)
}

func TestGetStats_CountsByStatus(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, testEmployeeRepo())

	for _, dates := range [][2]string{
		{"2025-01-02", "2025-01-03"},
		{"2025-02-10", "2025-02-11"},
		{"2025-03-01", "2025-03-01"},
	} {
		_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
			MitarbeiterID: "emp-1",
			Urlaubsart:    "jahresurlaub",
			Startdatum:    dates[0],
			Enddatum:      dates[1],
		})
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Gesamt)
	assert.Equal(t, 3, stats.Ausstehend)
	assert.Equal(t, 0, stats.Genehmigt)
}
