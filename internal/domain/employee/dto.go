package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/transwerk/personal-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Vorname           string                     `json:"vorname"`
	Nachname          string                     `json:"nachname"`
	Geburtsdatum      *string                    `json:"geburtsdatum,omitempty"`
	Telefon           *string                    `json:"telefon,omitempty"`
	Email             *string                    `json:"email,omitempty"`
	Adresse           *string                    `json:"adresse,omitempty"`
	Position          string                     `json:"position"`
	Eintrittsdatum    string                     `json:"eintrittsdatum"`
	Grundgehalt       decimal.Decimal            `json:"grundgehalt"`
	MonatlichesGehalt map[string]decimal.Decimal `json:"monatliches_gehalt,omitempty"`
	Aktiv             *bool                      `json:"aktiv,omitempty"`
	Notizen           *string                    `json:"notizen,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validateEmployeeFields(r.Vorname, r.Nachname, r.Geburtsdatum, r.Email, r.Position, r.Eintrittsdatum, r.Grundgehalt, r.MonatlichesGehalt)
}

// UpdateEmployeeRequest replaces every editable field, including the aktiv
// flag and the override map.
type UpdateEmployeeRequest struct {
	Vorname           string                     `json:"vorname"`
	Nachname          string                     `json:"nachname"`
	Geburtsdatum      *string                    `json:"geburtsdatum,omitempty"`
	Telefon           *string                    `json:"telefon,omitempty"`
	Email             *string                    `json:"email,omitempty"`
	Adresse           *string                    `json:"adresse,omitempty"`
	Position          string                     `json:"position"`
	Eintrittsdatum    string                     `json:"eintrittsdatum"`
	Grundgehalt       decimal.Decimal            `json:"grundgehalt"`
	MonatlichesGehalt map[string]decimal.Decimal `json:"monatliches_gehalt,omitempty"`
	Aktiv             bool                       `json:"aktiv"`
	Notizen           *string                    `json:"notizen,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validateEmployeeFields(r.Vorname, r.Nachname, r.Geburtsdatum, r.Email, r.Position, r.Eintrittsdatum, r.Grundgehalt, r.MonatlichesGehalt)
}

func validateEmployeeFields(vorname, nachname string, geburtsdatum, email *string, position, eintrittsdatum string, grundgehalt decimal.Decimal, overrides map[string]decimal.Decimal) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(vorname) {
		errs = append(errs, validator.ValidationError{Field: "vorname", Message: "vorname is required"})
	}
	if validator.IsEmpty(nachname) {
		errs = append(errs, validator.ValidationError{Field: "nachname", Message: "nachname is required"})
	}
	if validator.IsEmpty(position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if _, ok := validator.IsValidDate(eintrittsdatum); !ok {
		errs = append(errs, validator.ValidationError{Field: "eintrittsdatum", Message: "eintrittsdatum must be a valid date (YYYY-MM-DD)"})
	}
	if geburtsdatum != nil && *geburtsdatum != "" {
		if _, ok := validator.IsValidDate(*geburtsdatum); !ok {
			errs = append(errs, validator.ValidationError{Field: "geburtsdatum", Message: "geburtsdatum must be a valid date (YYYY-MM-DD)"})
		}
	}
	if email != nil && *email != "" && !validator.IsValidEmail(*email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if grundgehalt.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "grundgehalt", Message: "grundgehalt must not be negative"})
	}
	for key, amount := range overrides {
		if !validator.IsInSlice(key, MonthKeys[:]) {
			errs = append(errs, validator.ValidationError{Field: "monatliches_gehalt", Message: "unknown month key: " + key})
			continue
		}
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "monatliches_gehalt", Message: "override for " + key + " must not be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                string                     `json:"id"`
	Vorname           string                     `json:"vorname"`
	Nachname          string                     `json:"nachname"`
	Geburtsdatum      *string                    `json:"geburtsdatum,omitempty"`
	Telefon           *string                    `json:"telefon,omitempty"`
	Email             *string                    `json:"email,omitempty"`
	Adresse           *string                    `json:"adresse,omitempty"`
	Position          string                     `json:"position"`
	Eintrittsdatum    string                     `json:"eintrittsdatum"`
	Grundgehalt       decimal.Decimal            `json:"grundgehalt"`
	MonatlichesGehalt map[string]decimal.Decimal `json:"monatliches_gehalt,omitempty"`
	Aktiv             bool                       `json:"aktiv"`
	Notizen           *string                    `json:"notizen,omitempty"`
	ErstelltAm        time.Time                  `json:"erstellt_am"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                e.ID,
		Vorname:           e.Vorname,
		Nachname:          e.Nachname,
		Telefon:           e.Telefon,
		Email:             e.Email,
		Adresse:           e.Adresse,
		Position:          e.Position,
		Eintrittsdatum:    e.Eintrittsdatum.Format("2006-01-02"),
		Grundgehalt:       e.Grundgehalt,
		MonatlichesGehalt: e.MonatlichesGehalt,
		Aktiv:             e.Aktiv,
		Notizen:           e.Notizen,
		ErstelltAm:        e.ErstelltAm,
	}
	if e.Geburtsdatum != nil {
		formatted := e.Geburtsdatum.Format("2006-01-02")
		resp.Geburtsdatum = &formatted
	}
	return resp
}
