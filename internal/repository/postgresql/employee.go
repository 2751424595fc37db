package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, vorname, nachname, geburtsdatum, telefon, email, adresse,
	position, eintrittsdatum, grundgehalt, monatliches_gehalt,
	aktiv, notizen, erstellt_am
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Vorname,
		&e.Nachname,
		&e.Geburtsdatum,
		&e.Telefon,
		&e.Email,
		&e.Adresse,
		&e.Position,
		&e.Eintrittsdatum,
		&e.Grundgehalt,
		&e.MonatlichesGehalt,
		&e.Aktiv,
		&e.Notizen,
		&e.ErstelltAm,
	)
	return e, err
}

func (r *employeeRepositoryImpl) List(ctx context.Context, search string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM mitarbeiter
	`
	var args []interface{}
	if search != "" {
		query += `
		WHERE vorname ILIKE '%' || $1 || '%'
		   OR nachname ILIKE '%' || $1 || '%'
		   OR position ILIKE '%' || $1 || '%'
		`
		args = append(args, search)
	}
	query += ` ORDER BY nachname ASC, vorname ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM mitarbeiter
		WHERE id = $1
	`
	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO mitarbeiter (
			id, vorname, nachname, geburtsdatum, telefon, email, adresse,
			position, eintrittsdatum, grundgehalt, monatliches_gehalt,
			aktiv, notizen, erstellt_am
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, NOW()
		) RETURNING id, erstellt_am
	`

	newEmployee.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.Vorname, newEmployee.Nachname, newEmployee.Geburtsdatum,
		newEmployee.Telefon, newEmployee.Email, newEmployee.Adresse,
		newEmployee.Position, newEmployee.Eintrittsdatum, newEmployee.Grundgehalt, newEmployee.MonatlichesGehalt,
		newEmployee.Aktiv, newEmployee.Notizen,
	).Scan(&newEmployee.ID, &newEmployee.ErstelltAm)

	if err != nil {
		return employee.Employee{}, err
	}
	return newEmployee, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	var geburtsdatum *time.Time
	if req.Geburtsdatum != nil && *req.Geburtsdatum != "" {
		parsed, err := time.Parse("2006-01-02", *req.Geburtsdatum)
		if err != nil {
			return fmt.Errorf("parse geburtsdatum: %w", err)
		}
		geburtsdatum = &parsed
	}
	eintrittsdatum, err := time.Parse("2006-01-02", req.Eintrittsdatum)
	if err != nil {
		return fmt.Errorf("parse eintrittsdatum: %w", err)
	}

	query := `
		UPDATE mitarbeiter
		SET vorname = $1, nachname = $2, geburtsdatum = $3, telefon = $4,
		    email = $5, adresse = $6, position = $7, eintrittsdatum = $8,
		    grundgehalt = $9, monatliches_gehalt = $10, aktiv = $11, notizen = $12
		WHERE id = $13
	`
	commandTag, err := q.Exec(ctx, query,
		req.Vorname, req.Nachname, geburtsdatum, req.Telefon,
		req.Email, req.Adresse, req.Position, eintrittsdatum,
		req.Grundgehalt, employee.MonthlySalaries(req.MonatlichesGehalt), req.Aktiv, req.Notizen,
		id,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Dependent zahlungen, dokumente and urlaub rows cascade via their
	// foreign keys.
	commandTag, err := q.Exec(ctx, `DELETE FROM mitarbeiter WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
