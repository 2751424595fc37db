package leave

import "time"

// Urlaubsart enum, matching the urlaubsart column.
type Urlaubsart string

const (
	UrlaubsartJahresurlaub Urlaubsart = "jahresurlaub"
	UrlaubsartKrankheit    Urlaubsart = "krankheit"
	UrlaubsartSonderurlaub Urlaubsart = "sonderurlaub"
	UrlaubsartUnbezahlt    Urlaubsart = "unbezahlt"
	UrlaubsartSonstiges    Urlaubsart = "sonstiges"
)

var Urlaubsarten = []string{
	string(UrlaubsartJahresurlaub),
	string(UrlaubsartKrankheit),
	string(UrlaubsartSonderurlaub),
	string(UrlaubsartUnbezahlt),
	string(UrlaubsartSonstiges),
}

type LeaveStatus string

const (
	LeaveStatusAusstehend LeaveStatus = "ausstehend"
	LeaveStatusGenehmigt  LeaveStatus = "genehmigt"
	LeaveStatusAbgelehnt  LeaveStatus = "abgelehnt"
)

// LeaveRequest entity, persisted in the urlaub table. Gesamttage is computed
// once at creation (inclusive of both endpoints) and stored; it is never
// recomputed when the request is viewed in a different year context. The
// status update deliberately allows overwriting genehmigt with abgelehnt and
// vice versa, as an override for mistaken decisions.
type LeaveRequest struct {
	ID            string
	MitarbeiterID string
	Urlaubsart    Urlaubsart
	Startdatum    time.Time
	Enddatum      time.Time
	Gesamttage    int
	Status        LeaveStatus
	Notizen       *string
	ErstelltAm    time.Time

	// Joined for responses
	MitarbeiterName *string
}

// SpansDate reports whether the request covers the given calendar date,
// inclusive of both endpoints.
func (l LeaveRequest) SpansDate(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(l.Startdatum.Year(), l.Startdatum.Month(), l.Startdatum.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(l.Enddatum.Year(), l.Enddatum.Month(), l.Enddatum.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}
