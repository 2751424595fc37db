package payroll

import "errors"

var (
	ErrInvalidMonth = errors.New("monat must be a valid month (YYYY-MM)")
)
