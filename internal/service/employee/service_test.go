package employee

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
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
	f.nextID++
	e.ID = string(rune('a' + f.nextID))
	e.ErstelltAm = time.Now()
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Vorname = req.Vorname
	e.Nachname = req.Nachname
	e.Position = req.Position
	e.Grundgehalt = req.Grundgehalt
	e.MonatlichesGehalt = employee.MonthlySalaries(req.MonatlichesGehalt)
	e.Aktiv = req.Aktiv
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Vorname:        "Max",
		Nachname:       "Mustermann",
		Position:       "Fahrer",
		Eintrittsdatum: "2023-04-01",
		Grundgehalt:    decimal.NewFromInt(3000),
	}
}

func TestCreateEmployee_DefaultsActive(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	created, err := svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.True(t, created.Aktiv)
	assert.Equal(t, "2023-04-01", created.Eintrittsdatum)
}

func TestCreateEmployee_ExplicitInactive(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	req := validCreateRequest()
	inactive := false
	req.Aktiv = &inactive

	created, err := svc.CreateEmployee(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, created.Aktiv)
}

func TestCreateEmployee_ValidationRejects(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	tests := []struct {
		name   string
		mutate func(*employee.CreateEmployeeRequest)
	}{
		{"missing vorname", func(r *employee.CreateEmployeeRequest) { r.Vorname = "" }},
		{"missing nachname", func(r *employee.CreateEmployeeRequest) { r.Nachname = "" }},
		{"missing position", func(r *employee.CreateEmployeeRequest) { r.Position = "" }},
		{"bad eintrittsdatum", func(r *employee.CreateEmployeeRequest) { r.Eintrittsdatum = "01.04.2023" }},
		{"negative grundgehalt", func(r *employee.CreateEmployeeRequest) { r.Grundgehalt = decimal.NewFromInt(-1) }},
		{"unknown override key", func(r *employee.CreateEmployeeRequest) {
			r.MonatlichesGehalt = map[string]decimal.Decimal{"januar": decimal.NewFromInt(100)}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			_, err := svc.CreateEmployee(context.Background(), req)
			require.Error(t, err)
		})
	}
}

func TestUpdateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	created, err := svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateEmployee(context.Background(), created.ID, employee.UpdateEmployeeRequest{
		Vorname:        "Max",
		Nachname:       "Mustermann",
		Position:       "Disponent",
		Eintrittsdatum: "2023-04-01",
		Grundgehalt:    decimal.NewFromInt(3200),
		Aktiv:          false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Disponent", updated.Position)
	assert.False(t, updated.Aktiv)
}

func TestGetEmployee_NotFound(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.GetEmployee(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	created, err := svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(context.Background(), created.ID))
	_, err = svc.GetEmployee(context.Background(), created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
