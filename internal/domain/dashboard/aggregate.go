package dashboard

import (
	"fmt"
	"time"

	"github.com/transwerk/personal-backend-go/internal/domain/document"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/leave"
	"github.com/transwerk/personal-backend-go/internal/domain/payment"
	"github.com/transwerk/personal-backend-go/internal/domain/payroll"
)

// Snapshot is the immutable data a dashboard render works on: everything
// fetched once per view activation. Aggregate is a pure function of it, so
// repeated invocation on an unchanged snapshot yields identical output.
type Snapshot struct {
	Today           time.Time
	Mitarbeiter     []employee.Employee
	MonatsZahlungen []payment.Payment
	JahresZahlungen []payment.Payment
	Urlaube         []leave.LeaveRequest
	Dokumente       []document.Document
}

// Aggregate computes the dashboard summary from a snapshot.
func Aggregate(s Snapshot) Summary {
	aktiv := 0
	for _, m := range s.Mitarbeiter {
		if m.Aktiv {
			aktiv++
		}
	}

	// Approved requests spanning today; an employee with several matching
	// requests counts once.
	onLeave := make(map[string]bool)
	ausstehend := 0
	for _, u := range s.Urlaube {
		if u.Status == leave.LeaveStatusAusstehend {
			ausstehend++
		}
		if u.Status == leave.LeaveStatusGenehmigt && u.SpansDate(s.Today) {
			onLeave[u.MitarbeiterID] = true
		}
	}

	abgelaufen := 0
	laeuftAb := 0
	for _, d := range s.Dokumente {
		switch document.ClassifyExpiry(d.Ablaufdatum, s.Today) {
		case document.ExpiryExpired:
			abgelaufen++
		case document.ExpiryCritical, document.ExpiryWarning:
			laeuftAb++
		}
	}

	org := payroll.CalculateOrgMonthlyTotal(s.Mitarbeiter, s.Today.Month(), s.MonatsZahlungen)

	return Summary{
		MitarbeiterGesamt:    len(s.Mitarbeiter),
		MitarbeiterAktiv:     aktiv,
		HeuteImUrlaub:        len(onLeave),
		AusstehendeAntraege:  ausstehend,
		AbgelaufeneDokumente: abgelaufen,
		AblaufendeDokumente:  laeuftAb,
		MonatsAuszahlung:     org,
		Monatsverlauf:        buildMonatsverlauf(s),
	}
}

// buildMonatsverlauf produces the twelve chart rows of the current year: per
// payroll month the active effective salaries, advances, bonuses and
// resulting payout.
func buildMonatsverlauf(s Snapshot) []payroll.MonatsUebersicht {
	rows := make([]payroll.MonatsUebersicht, 0, 12)
	for i := 1; i <= 12; i++ {
		monat := fmt.Sprintf("%04d-%02d", s.Today.Year(), i)
		monthPayments := payroll.FilterByMonth(s.JahresZahlungen, monat)
		org := payroll.CalculateOrgMonthlyTotal(s.Mitarbeiter, time.Month(i), monthPayments)

		rows = append(rows, payroll.MonatsUebersicht{
			Monat:       monat,
			Gehalt:      org.Gehaelter,
			Vorschuesse: org.Vorschuesse,
			Boni:        org.Boni,
			Auszahlung:  org.Auszahlung,
		})
	}
	return rows
}
