package document

import "time"

// ExpiryStatus is the validity tier of a document's remaining window.
type ExpiryStatus string

const (
	// ExpiryNone: no expiry date set, the document never expires.
	ExpiryNone ExpiryStatus = "keine"
	// ExpiryExpired: the expiry date lies in the past.
	ExpiryExpired ExpiryStatus = "abgelaufen"
	// ExpiryCritical: 0..30 days remaining. Expiring today is critical, not
	// expired.
	ExpiryCritical ExpiryStatus = "warnung"
	// ExpiryWarning: 31..90 days remaining.
	ExpiryWarning ExpiryStatus = "bald"
	// ExpiryValid: more than 90 days remaining.
	ExpiryValid ExpiryStatus = "ok"
)

const (
	criticalWindowDays = 30
	warningWindowDays  = 90
)

// midnight truncates a timestamp to its calendar date. Working on date-only
// values keeps the day difference stable across DST boundaries.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntilExpiry returns the number of whole calendar days from today until
// the expiry date, negative when already expired. Time of day is ignored.
func DaysUntilExpiry(ablaufdatum, today time.Time) int {
	diff := midnight(ablaufdatum).Sub(midnight(today))
	return int(diff.Hours() / 24)
}

// ClassifyExpiry classifies an optional expiry date against the given
// evaluation date. It is a pure function; callers must re-evaluate per
// request because "today" moves.
func ClassifyExpiry(ablaufdatum *time.Time, today time.Time) ExpiryStatus {
	if ablaufdatum == nil {
		return ExpiryNone
	}

	days := DaysUntilExpiry(*ablaufdatum, today)
	switch {
	case days < 0:
		return ExpiryExpired
	case days <= criticalWindowDays:
		return ExpiryCritical
	case days <= warningWindowDays:
		return ExpiryWarning
	default:
		return ExpiryValid
	}
}

// IsExpiringSoon reports whether the document sits in the critical or warning
// tier: still valid but 90 days or less remaining. The dashboard's "expiring
// soon" bucket uses this single canonical window.
func IsExpiringSoon(ablaufdatum *time.Time, today time.Time) bool {
	status := ClassifyExpiry(ablaufdatum, today)
	return status == ExpiryCritical || status == ExpiryWarning
}
