package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/transwerk/personal-backend-go/internal/domain/document"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/leave"
	"github.com/transwerk/personal-backend-go/internal/domain/payment"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func testSnapshot() Snapshot {
	expired := today.AddDate(0, 0, -10)
	critical := today.AddDate(0, 0, 20)
	warning := today.AddDate(0, 0, 60)
	valid := today.AddDate(0, 0, 200)

	return Snapshot{
		Today: today,
		Mitarbeiter: []employee.Employee{
			{ID: "m1", Grundgehalt: decimal.NewFromInt(3000), Aktiv: true},
			{ID: "m2", Grundgehalt: decimal.NewFromInt(2500), Aktiv: true},
			{ID: "m3", Grundgehalt: decimal.NewFromInt(4000), Aktiv: false},
		},
		MonatsZahlungen: []payment.Payment{
			{MitarbeiterID: "m1", Zahlungsart: payment.ZahlungsartVorschuss, Betrag: decimal.NewFromInt(500), Zahlungsmonat: "2025-06"},
			{MitarbeiterID: "m2", Zahlungsart: payment.ZahlungsartBonus, Betrag: decimal.NewFromInt(200), Zahlungsmonat: "2025-06"},
		},
		JahresZahlungen: []payment.Payment{
			{MitarbeiterID: "m1", Zahlungsart: payment.ZahlungsartVorschuss, Betrag: decimal.NewFromInt(500), Zahlungsmonat: "2025-06"},
		},
		Urlaube: []leave.LeaveRequest{
			// Approved, spans today.
			{ID: "u1", MitarbeiterID: "m1", Status: leave.LeaveStatusGenehmigt, Startdatum: today.AddDate(0, 0, -2), Enddatum: today.AddDate(0, 0, 2)},
			// Second approved request of the same employee, also spanning
			// today: counts once.
			{ID: "u2", MitarbeiterID: "m1", Status: leave.LeaveStatusGenehmigt, Startdatum: today, Enddatum: today},
			// Pending, not spanning today.
			{ID: "u3", MitarbeiterID: "m2", Status: leave.LeaveStatusAusstehend, Startdatum: today.AddDate(0, 1, 0), Enddatum: today.AddDate(0, 1, 3)},
			// Approved but in the past.
			{ID: "u4", MitarbeiterID: "m2", Status: leave.LeaveStatusGenehmigt, Startdatum: today.AddDate(0, -2, 0), Enddatum: today.AddDate(0, -2, 4)},
		},
		Dokumente: []document.Document{
			{ID: "d1", Ablaufdatum: &expired},
			{ID: "d2", Ablaufdatum: &critical},
			{ID: "d3", Ablaufdatum: &warning},
			{ID: "d4", Ablaufdatum: &valid},
			{ID: "d5", Ablaufdatum: nil},
		},
	}
}

func TestAggregate(t *testing.T) {
	summary := Aggregate(testSnapshot())

	assert.Equal(t, 3, summary.MitarbeiterGesamt)
	assert.Equal(t, 2, summary.MitarbeiterAktiv)
	assert.Equal(t, 1, summary.HeuteImUrlaub, "m1 counts once despite two overlapping requests")
	assert.Equal(t, 1, summary.AusstehendeAntraege)
	assert.Equal(t, 1, summary.AbgelaufeneDokumente)
	assert.Equal(t, 2, summary.AblaufendeDokumente, "critical and warning tiers, expired and valid excluded")

	// 3000 + 2500 active salaries − 500 + 200
	assert.True(t, summary.MonatsAuszahlung.Gehaelter.Equal(decimal.NewFromInt(5500)))
	assert.True(t, summary.MonatsAuszahlung.Auszahlung.Equal(decimal.NewFromInt(5200)))
}

func TestAggregate_Idempotent(t *testing.T) {
	snapshot := testSnapshot()
	first := Aggregate(snapshot)
	second := Aggregate(snapshot)
	assert.Equal(t, first, second)
}

func TestAggregate_EmptySnapshot(t *testing.T) {
	summary := Aggregate(Snapshot{Today: today})

	assert.Zero(t, summary.MitarbeiterGesamt)
	assert.Zero(t, summary.HeuteImUrlaub)
	assert.Zero(t, summary.AusstehendeAntraege)
	assert.True(t, summary.MonatsAuszahlung.Auszahlung.IsZero())
	assert.Len(t, summary.Monatsverlauf, 12)
}

func TestAggregate_Monatsverlauf(t *testing.T) {
	summary := Aggregate(testSnapshot())

	assert.Len(t, summary.Monatsverlauf, 12)
	assert.Equal(t, "2025-01", summary.Monatsverlauf[0].Monat)
	assert.Equal(t, "2025-12", summary.Monatsverlauf[11].Monat)

	// Only June carries the advance from the yearly payment slice.
	june := summary.Monatsverlauf[5]
	assert.Equal(t, "2025-06", june.Monat)
	assert.True(t, june.Vorschuesse.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.Monatsverlauf[0].Vorschuesse.IsZero())
}
