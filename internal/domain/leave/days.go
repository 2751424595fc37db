package leave

import "time"

// TotalDays computes the inclusive day span of a leave request: a single-day
// request (start == end) counts as 1. Both dates are normalized to midnight
// UTC before differencing so the count stays correct across daylight-saving
// boundaries.
//
// end must not precede start; the original UI enforced this only at the form
// level and silently computed an absolute difference for reversed input,
// which masked swapped dates. Here the ordering is validated.
func TotalDays(start, end time.Time) (int, error) {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	if endDay.Before(startDay) {
		return 0, ErrEndBeforeStart
	}

	return int(endDay.Sub(startDay).Hours()/24) + 1, nil
}
