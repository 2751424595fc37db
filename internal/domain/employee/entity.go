package employee

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Employee entity, persisted in the mitarbeiter table. Column names keep the
// German keys of the original store for compatibility.
type Employee struct {
	ID           string
	Vorname      string
	Nachname     string
	Geburtsdatum *time.Time
	Telefon      *string
	Email        *string
	Adresse      *string

	// Position is free text; the UI offers suggestions ("Fahrer", ...) but
	// nothing is enforced here.
	Position       string
	Eintrittsdatum time.Time

	// Grundgehalt is the default monthly salary; MonatlichesGehalt carries
	// per-month overrides keyed jan..dez and supersedes Grundgehalt for that
	// month's payout only.
	Grundgehalt       decimal.Decimal
	MonatlichesGehalt MonthlySalaries

	Aktiv   bool
	Notizen *string

	ErstelltAm time.Time
}

// MonthKeys are the JSONB keys of the per-month salary override map, index 0
// = January.
var MonthKeys = [12]string{"jan", "feb", "mar", "apr", "mai", "jun", "jul", "aug", "sep", "okt", "nov", "dez"}

// MonthKey returns the override key for a calendar month (1..12).
func MonthKey(month time.Month) string {
	return MonthKeys[int(month)-1]
}

// MonthlySalaries represents the JSONB monatliches_gehalt override map.
type MonthlySalaries map[string]decimal.Decimal

// Value implements driver.Valuer for database storage
func (m MonthlySalaries) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for database retrieval
func (m *MonthlySalaries) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan MonthlySalaries: invalid type")
	}

	return json.Unmarshal(bytes, m)
}

// EffectiveSalary resolves the salary for a calendar month: the override when
// one is present, else Grundgehalt.
func (e Employee) EffectiveSalary(month time.Month) decimal.Decimal {
	if override, ok := e.MonatlichesGehalt[MonthKey(month)]; ok {
		return override
	}
	return e.Grundgehalt
}

// FullName returns "Vorname Nachname" for display and report rendering.
func (e Employee) FullName() string {
	return e.Vorname + " " + e.Nachname
}
