package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/transwerk/personal-backend-go/internal/domain/payment"
	"github.com/transwerk/personal-backend-go/internal/pkg/database"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

const paymentSelect = `
	SELECT z.id, z.mitarbeiter_id, z.zahlungsart, z.betrag, z.zahlungsdatum,
	       z.zahlungsmonat, z.beschreibung, z.erstellt_am,
	       m.vorname || ' ' || m.nachname AS mitarbeiter_name
	FROM zahlungen z
	JOIN mitarbeiter m ON m.id = z.mitarbeiter_id
`

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var p payment.Payment
	err := row.Scan(
		&p.ID,
		&p.MitarbeiterID,
		&p.Zahlungsart,
		&p.Betrag,
		&p.Zahlungsdatum,
		&p.Zahlungsmonat,
		&p.Beschreibung,
		&p.ErstelltAm,
		&p.MitarbeiterName,
	)
	return p, err
}

func collectPayments(rows pgx.Rows) ([]payment.Payment, error) {
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepositoryImpl) ListByMonth(ctx context.Context, monat string) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := paymentSelect + `
	WHERE z.zahlungsmonat = $1
	ORDER BY z.zahlungsdatum DESC, z.erstellt_am DESC
	`
	rows, err := q.Query(ctx, query, monat)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

func (r *paymentRepositoryImpl) ListByDateRange(ctx context.Context, from, to string) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := paymentSelect + `
	WHERE z.zahlungsdatum BETWEEN $1 AND $2
	ORDER BY z.zahlungsdatum DESC, z.erstellt_am DESC
	`
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

func (r *paymentRepositoryImpl) ListByEmployeeAndDateRange(ctx context.Context, mitarbeiterID, from, to string) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := paymentSelect + `
	WHERE z.mitarbeiter_id = $1 AND z.zahlungsdatum BETWEEN $2 AND $3
	ORDER BY z.zahlungsdatum DESC, z.erstellt_am DESC
	`
	rows, err := q.Query(ctx, query, mitarbeiterID, from, to)
	if err != nil {
		return nil, err
	}
	return collectPayments(rows)
}

func (r *paymentRepositoryImpl) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := paymentSelect + ` WHERE z.id = $1`
	p, err := scanPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, err
	}
	return p, nil
}

func (r *paymentRepositoryImpl) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO zahlungen (
			id, mitarbeiter_id, zahlungsart, betrag, zahlungsdatum,
			zahlungsmonat, beschreibung, erstellt_am
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING erstellt_am
	`

	p.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		p.ID, p.MitarbeiterID, p.Zahlungsart, p.Betrag, p.Zahlungsdatum,
		p.Zahlungsmonat, p.Beschreibung,
	).Scan(&p.ErstelltAm)

	if err != nil {
		return payment.Payment{}, err
	}
	return p, nil
}

func (r *paymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM zahlungen WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return payment.ErrPaymentNotFound
	}
	return nil
}
