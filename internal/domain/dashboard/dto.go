package dashboard

import "github.com/transwerk/personal-backend-go/internal/domain/payroll"

// Summary is the dashboard payload: headline counts, the month's
// organization-wide payout, and the yearly chart series.
type Summary struct {
	MitarbeiterGesamt    int                        `json:"mitarbeiter_gesamt"`
	MitarbeiterAktiv     int                        `json:"mitarbeiter_aktiv"`
	HeuteImUrlaub        int                        `json:"heute_im_urlaub"`
	AusstehendeAntraege  int                        `json:"ausstehende_antraege"`
	AbgelaufeneDokumente int                        `json:"abgelaufene_dokumente"`
	AblaufendeDokumente  int                        `json:"ablaufende_dokumente"`
	MonatsAuszahlung     payroll.OrgMonthlyTotal    `json:"monats_auszahlung"`
	Monatsverlauf        []payroll.MonatsUebersicht `json:"monatsverlauf"`
}
