package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/transwerk/personal-backend-go/internal/domain/leave"
	"github.com/transwerk/personal-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestSelect = `
	SELECT u.id, u.mitarbeiter_id, u.urlaubsart, u.startdatum, u.enddatum,
	       u.gesamttage, u.status, u.notizen, u.erstellt_am,
	       m.vorname || ' ' || m.nachname AS mitarbeiter_name
	FROM urlaub u
	JOIN mitarbeiter m ON m.id = u.mitarbeiter_id
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID,
		&l.MitarbeiterID,
		&l.Urlaubsart,
		&l.Startdatum,
		&l.Enddatum,
		&l.Gesamttage,
		&l.Status,
		&l.Notizen,
		&l.ErstelltAm,
		&l.MitarbeiterName,
	)
	return l, err
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, l)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) ListByYear(ctx context.Context, year int, status string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect + ` WHERE EXTRACT(YEAR FROM u.startdatum) = $1`
	args := []interface{}{year}
	if status != "" {
		query += ` AND u.status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY u.startdatum DESC, u.erstellt_am DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListByEmployeeAndYear(ctx context.Context, mitarbeiterID string, year int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect + `
	WHERE u.mitarbeiter_id = $1 AND EXTRACT(YEAR FROM u.startdatum) = $2
	ORDER BY u.startdatum DESC, u.erstellt_am DESC
	`
	rows, err := q.Query(ctx, query, mitarbeiterID, year)
	if err != nil {
		return nil, err
	}
	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect + ` WHERE u.id = $1`
	l, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return l, nil
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO urlaub (
			id, mitarbeiter_id, urlaubsart, startdatum, enddatum,
			gesamttage, status, notizen, erstellt_am
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING erstellt_am
	`

	request.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		request.ID, request.MitarbeiterID, request.Urlaubsart, request.Startdatum, request.Enddatum,
		request.Gesamttage, request.Status, request.Notizen,
	).Scan(&request.ErstelltAm)

	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE urlaub SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM urlaub WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
