package payroll

import "github.com/shopspring/decimal"

// MonatsUebersicht is one row of the employee year view: the month's
// effective salary and net payout.
type MonatsUebersicht struct {
	Monat       string          `json:"monat"`
	Gehalt      decimal.Decimal `json:"gehalt"`
	Vorschuesse decimal.Decimal `json:"vorschuesse"`
	Boni        decimal.Decimal `json:"boni"`
	Auszahlung  decimal.Decimal `json:"auszahlung"`
}

// JahresUebersichtResponse is the annual summary of one employee: projected
// annual figures, the month-by-month breakdown, and approved leave totals.
type JahresUebersichtResponse struct {
	MitarbeiterID  string             `json:"mitarbeiter_id"`
	Jahr           int                `json:"jahr"`
	JahresGehalt   decimal.Decimal    `json:"jahres_gehalt"`
	Vorschuesse    decimal.Decimal    `json:"vorschuesse"`
	Boni           decimal.Decimal    `json:"boni"`
	JahresNetto    decimal.Decimal    `json:"jahres_netto"`
	Monate         []MonatsUebersicht `json:"monate"`
	Urlaubstage    int                `json:"urlaubstage"`
	Krankheitstage int                `json:"krankheitstage"`
}

// MitarbeiterMonatsUebersicht is the per-employee card of the payment month
// view: base salary and the month's advances, bonuses and payout.
type MitarbeiterMonatsUebersicht struct {
	MitarbeiterID   string          `json:"mitarbeiter_id"`
	MitarbeiterName string          `json:"mitarbeiter_name"`
	Position        string          `json:"position"`
	Gehalt          decimal.Decimal `json:"gehalt"`
	Vorschuesse     decimal.Decimal `json:"vorschuesse"`
	Boni            decimal.Decimal `json:"boni"`
	Auszahlung      decimal.Decimal `json:"auszahlung"`
}

// MonatsTotaleResponse is the header block of the payment month view.
type MonatsTotaleResponse struct {
	Monat       string          `json:"monat"`
	Gehaelter   decimal.Decimal `json:"gehaelter"`
	Vorschuesse decimal.Decimal `json:"vorschuesse"`
	Boni        decimal.Decimal `json:"boni"`
	Auszahlung  decimal.Decimal `json:"auszahlung"`
}
