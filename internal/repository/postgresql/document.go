package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/transwerk/personal-backend-go/internal/domain/document"
	"github.com/transwerk/personal-backend-go/internal/pkg/database"
)

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

// documentSelect intentionally leaves out datei_inhalt; inline payloads can
// be megabytes and list views never need them.
const documentSelect = `
	SELECT d.id, d.mitarbeiter_id, d.dokumenttyp, d.dokumentname,
	       d.ablaufdatum, d.notizen, d.datei_typ,
	       d.datei_inhalt IS NOT NULL AS hat_datei, d.erstellt_am,
	       m.vorname || ' ' || m.nachname AS mitarbeiter_name
	FROM dokumente d
	JOIN mitarbeiter m ON m.id = d.mitarbeiter_id
`

func scanDocument(row pgx.Row) (document.Document, error) {
	var d document.Document
	err := row.Scan(
		&d.ID,
		&d.MitarbeiterID,
		&d.Dokumenttyp,
		&d.Dokumentname,
		&d.Ablaufdatum,
		&d.Notizen,
		&d.DateiTyp,
		&d.HatDatei,
		&d.ErstelltAm,
		&d.MitarbeiterName,
	)
	return d, err
}

func collectDocuments(rows pgx.Rows) ([]document.Document, error) {
	defer rows.Close()

	var documents []document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}
	return documents, rows.Err()
}

func (r *documentRepositoryImpl) List(ctx context.Context) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := documentSelect + ` ORDER BY d.ablaufdatum ASC NULLS LAST, d.erstellt_am DESC`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectDocuments(rows)
}

func (r *documentRepositoryImpl) ListByEmployee(ctx context.Context, mitarbeiterID string) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := documentSelect + `
	WHERE d.mitarbeiter_id = $1
	ORDER BY d.ablaufdatum ASC NULLS LAST, d.erstellt_am DESC
	`
	rows, err := q.Query(ctx, query, mitarbeiterID)
	if err != nil {
		return nil, err
	}
	return collectDocuments(rows)
}

func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := documentSelect + ` WHERE d.id = $1`
	d, err := scanDocument(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, err
	}
	return d, nil
}

func (r *documentRepositoryImpl) GetFile(ctx context.Context, id string) (string, string, error) {
	q := GetQuerier(ctx, r.db)

	var inhalt, typ *string
	query := `SELECT datei_inhalt, datei_typ FROM dokumente WHERE id = $1`
	err := q.QueryRow(ctx, query, id).Scan(&inhalt, &typ)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", document.ErrDocumentNotFound
		}
		return "", "", err
	}
	if inhalt == nil {
		return "", "", document.ErrNoFileAttached
	}

	contentType := "application/octet-stream"
	if typ != nil && *typ != "" {
		contentType = *typ
	}
	return *inhalt, contentType, nil
}

func (r *documentRepositoryImpl) Create(ctx context.Context, d document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO dokumente (
			id, mitarbeiter_id, dokumenttyp, dokumentname, ablaufdatum,
			notizen, datei_inhalt, datei_typ, erstellt_am
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING erstellt_am
	`

	d.ID = uuid.NewString()
	d.HatDatei = d.DateiInhalt != nil
	err := q.QueryRow(ctx, query,
		d.ID, d.MitarbeiterID, d.Dokumenttyp, d.Dokumentname, d.Ablaufdatum,
		d.Notizen, d.DateiInhalt, d.DateiTyp,
	).Scan(&d.ErstelltAm)

	if err != nil {
		return document.Document{}, err
	}
	return d, nil
}

func (r *documentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM dokumente WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return document.ErrDocumentNotFound
	}
	return nil
}
