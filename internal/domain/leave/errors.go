package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrEndBeforeStart       = errors.New("enddatum must not be before startdatum")
)
