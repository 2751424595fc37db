package leave

import (
	"time"

	"github.com/transwerk/personal-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	MitarbeiterID string  `json:"mitarbeiter_id"`
	Urlaubsart    string  `json:"urlaubsart"`
	Startdatum    string  `json:"startdatum"`
	Enddatum      string  `json:"enddatum"`
	Notizen       *string `json:"notizen,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MitarbeiterID) {
		errs = append(errs, validator.ValidationError{Field: "mitarbeiter_id", Message: "mitarbeiter_id is required"})
	}
	if !validator.IsInSlice(r.Urlaubsart, Urlaubsarten) {
		errs = append(errs, validator.ValidationError{Field: "urlaubsart", Message: "unknown urlaubsart"})
	}

	start, startOK := validator.IsValidDate(r.Startdatum)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "startdatum", Message: "startdatum must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.Enddatum)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "enddatum", Message: "enddatum must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "enddatum", Message: "enddatum must not be before startdatum"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(LeaveStatusGenehmigt) && r.Status != string(LeaveStatusAbgelehnt) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be genehmigt or abgelehnt"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID              string    `json:"id"`
	MitarbeiterID   string    `json:"mitarbeiter_id"`
	MitarbeiterName *string   `json:"mitarbeiter_name,omitempty"`
	Urlaubsart      string    `json:"urlaubsart"`
	Startdatum      string    `json:"startdatum"`
	Enddatum        string    `json:"enddatum"`
	Gesamttage      int       `json:"gesamttage"`
	Status          string    `json:"status"`
	Notizen         *string   `json:"notizen,omitempty"`
	ErstelltAm      time.Time `json:"erstellt_am"`
}

func ToResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              l.ID,
		MitarbeiterID:   l.MitarbeiterID,
		MitarbeiterName: l.MitarbeiterName,
		Urlaubsart:      string(l.Urlaubsart),
		Startdatum:      l.Startdatum.Format("2006-01-02"),
		Enddatum:        l.Enddatum.Format("2006-01-02"),
		Gesamttage:      l.Gesamttage,
		Status:          string(l.Status),
		Notizen:         l.Notizen,
		ErstelltAm:      l.ErstelltAm,
	}
}

// LeaveStats mirrors the status counters of the leave overview.
type LeaveStats struct {
	Ausstehend int `json:"ausstehend"`
	Genehmigt  int `json:"genehmigt"`
	Abgelehnt  int `json:"abgelehnt"`
	Gesamt     int `json:"gesamt"`
}

// CountByStatus tallies requests per status for the overview header.
func CountByStatus(requests []LeaveRequest) LeaveStats {
	stats := LeaveStats{Gesamt: len(requests)}
	for _, r := range requests {
		switch r.Status {
		case LeaveStatusAusstehend:
			stats.Ausstehend++
		case LeaveStatusGenehmigt:
			stats.Genehmigt++
		case LeaveStatusAbgelehnt:
			stats.Abgelehnt++
		}
	}
	return stats
}

// ApprovedDaysByType sums gesamttage of approved requests of one type, the
// per-employee summary the leave and detail views show.
func ApprovedDaysByType(requests []LeaveRequest, art Urlaubsart) int {
	total := 0
	for _, r := range requests {
		if r.Status == LeaveStatusGenehmigt && r.Urlaubsart == art {
			total += r.Gesamttage
		}
	}
	return total
}
