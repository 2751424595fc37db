package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Zahlungsart enum, matching the zahlungsart column.
type Zahlungsart string

const (
	ZahlungsartGehalt    Zahlungsart = "gehalt"
	ZahlungsartVorschuss Zahlungsart = "vorschuss"
	ZahlungsartBonus     Zahlungsart = "bonus"
	ZahlungsartSonstiges Zahlungsart = "sonstiges"
)

var Zahlungsarten = []string{
	string(ZahlungsartGehalt),
	string(ZahlungsartVorschuss),
	string(ZahlungsartBonus),
	string(ZahlungsartSonstiges),
}

// Payment entity, persisted in the zahlungen table. Zahlungsmonat is the
// payroll month (YYYY-MM) the payment counts against and may legitimately
// diverge from Zahlungsdatum: a late-dated payment can still be attributed to
// an earlier payroll month. Monthly aggregation keys on Zahlungsmonat, yearly
// aggregation and display ordering key on Zahlungsdatum.
type Payment struct {
	ID            string
	MitarbeiterID string
	Zahlungsart   Zahlungsart
	Betrag        decimal.Decimal
	Zahlungsdatum time.Time
	Zahlungsmonat string
	Beschreibung  *string
	ErstelltAm    time.Time

	// Joined for responses
	MitarbeiterName *string
}
