package payment

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/transwerk/personal-backend-go/internal/pkg/validator"
)

type CreatePaymentRequest struct {
	MitarbeiterID string          `json:"mitarbeiter_id"`
	Zahlungsart   string          `json:"zahlungsart"`
	Betrag        decimal.Decimal `json:"betrag"`
	Zahlungsdatum string          `json:"zahlungsdatum"`
	// Zahlungsmonat is the payroll month the payment is attributed to; the
	// payment form scopes it to the currently selected month.
	Zahlungsmonat string  `json:"zahlungsmonat"`
	Beschreibung  *string `json:"beschreibung,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MitarbeiterID) {
		errs = append(errs, validator.ValidationError{Field: "mitarbeiter_id", Message: "mitarbeiter_id is required"})
	}
	if !validator.IsInSlice(r.Zahlungsart, Zahlungsarten) {
		errs = append(errs, validator.ValidationError{Field: "zahlungsart", Message: "zahlungsart must be one of gehalt, vorschuss, bonus, sonstiges"})
	}
	if !validator.IsPositiveAmount(r.Betrag) {
		errs = append(errs, validator.ValidationError{Field: "betrag", Message: "betrag must be greater than zero"})
	}
	if _, ok := validator.IsValidDate(r.Zahlungsdatum); !ok {
		errs = append(errs, validator.ValidationError{Field: "zahlungsdatum", Message: "zahlungsdatum must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidMonthKey(r.Zahlungsmonat); !ok {
		errs = append(errs, validator.ValidationError{Field: "zahlungsmonat", Message: "zahlungsmonat must be a valid month (YYYY-MM)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentResponse struct {
	ID              string          `json:"id"`
	MitarbeiterID   string          `json:"mitarbeiter_id"`
	MitarbeiterName *string         `json:"mitarbeiter_name,omitempty"`
	Zahlungsart     string          `json:"zahlungsart"`
	Betrag          decimal.Decimal `json:"betrag"`
	Zahlungsdatum   string          `json:"zahlungsdatum"`
	Zahlungsmonat   string          `json:"zahlungsmonat"`
	Beschreibung    *string         `json:"beschreibung,omitempty"`
	ErstelltAm      time.Time       `json:"erstellt_am"`
}

func ToResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		MitarbeiterID:   p.MitarbeiterID,
		MitarbeiterName: p.MitarbeiterName,
		Zahlungsart:     string(p.Zahlungsart),
		Betrag:          p.Betrag,
		Zahlungsdatum:   p.Zahlungsdatum.Format("2006-01-02"),
		Zahlungsmonat:   p.Zahlungsmonat,
		Beschreibung:    p.Beschreibung,
		ErstelltAm:      p.ErstelltAm,
	}
}
