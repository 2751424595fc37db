package document

import (
	"strings"
	"time"

	"github.com/transwerk/personal-backend-go/internal/pkg/validator"
)

// MaxFileSize limits the inline payload, checked against the decoded data URL
// at creation only.
const MaxFileSize = 5 * 1024 * 1024

type CreateDocumentRequest struct {
	MitarbeiterID string  `json:"mitarbeiter_id"`
	Dokumenttyp   string  `json:"dokumenttyp"`
	Dokumentname  *string `json:"dokumentname,omitempty"`
	Ablaufdatum   *string `json:"ablaufdatum,omitempty"`
	Notizen       *string `json:"notizen,omitempty"`
	// DateiInhalt is a base64 data URL; DateiTyp its content type.
	DateiInhalt *string `json:"datei_inhalt,omitempty"`
	DateiTyp    *string `json:"datei_typ,omitempty"`
}

func (r *CreateDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MitarbeiterID) {
		errs = append(errs, validator.ValidationError{Field: "mitarbeiter_id", Message: "mitarbeiter_id is required"})
	}
	if !validator.IsInSlice(r.Dokumenttyp, Dokumenttypen) {
		errs = append(errs, validator.ValidationError{Field: "dokumenttyp", Message: "unknown dokumenttyp"})
	}
	if r.Ablaufdatum != nil && *r.Ablaufdatum != "" {
		if _, ok := validator.IsValidDate(*r.Ablaufdatum); !ok {
			errs = append(errs, validator.ValidationError{Field: "ablaufdatum", Message: "ablaufdatum must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.DateiInhalt != nil && decodedSize(*r.DateiInhalt) > MaxFileSize {
		errs = append(errs, validator.ValidationError{Field: "datei_inhalt", Message: "file exceeds the 5 MB limit"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// decodedSize estimates the byte size of a base64 data URL payload. The
// prefix up to the comma is metadata, the rest decodes to 3 bytes per 4
// characters.
func decodedSize(dataURL string) int {
	payload := dataURL
	if i := strings.IndexByte(dataURL, ','); i >= 0 {
		payload = dataURL[i+1:]
	}
	return len(payload) / 4 * 3
}

type DocumentResponse struct {
	ID              string    `json:"id"`
	MitarbeiterID   string    `json:"mitarbeiter_id"`
	MitarbeiterName *string   `json:"mitarbeiter_name,omitempty"`
	Dokumenttyp     string    `json:"dokumenttyp"`
	Dokumentname    string    `json:"dokumentname"`
	Ablaufdatum     *string   `json:"ablaufdatum,omitempty"`
	Notizen         *string   `json:"notizen,omitempty"`
	HatDatei        bool      `json:"hat_datei"`
	DateiTyp        *string   `json:"datei_typ,omitempty"`
	ErstelltAm      time.Time `json:"erstellt_am"`

	// Expiry classification, evaluated against the request date.
	Status        string `json:"status"`
	TageVerbleibt *int   `json:"tage_verbleibend,omitempty"`
}

// ToResponse attaches the expiry tier for the given evaluation date.
func ToResponse(d Document, today time.Time) DocumentResponse {
	resp := DocumentResponse{
		ID:              d.ID,
		MitarbeiterID:   d.MitarbeiterID,
		MitarbeiterName: d.MitarbeiterName,
		Dokumenttyp:     string(d.Dokumenttyp),
		Dokumentname:    d.Dokumentname,
		Notizen:         d.Notizen,
		HatDatei:        d.HatDatei || d.DateiInhalt != nil,
		DateiTyp:        d.DateiTyp,
		ErstelltAm:      d.ErstelltAm,
		Status:          string(ClassifyExpiry(d.Ablaufdatum, today)),
	}
	if d.Ablaufdatum != nil {
		formatted := d.Ablaufdatum.Format("2006-01-02")
		resp.Ablaufdatum = &formatted
		days := DaysUntilExpiry(*d.Ablaufdatum, today)
		resp.TageVerbleibt = &days
	}
	return resp
}
