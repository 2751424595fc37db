package report

import "context"

// ReportService renders downloadable exports from stored data.
type ReportService interface {
	// YearlyPaymentsXLSX renders all of a year's payments as a spreadsheet
	// and returns the file bytes with a suggested filename.
	YearlyPaymentsXLSX(ctx context.Context, jahr int) (data []byte, filename string, err error)

	// PayslipPDF renders one employee's payslip for a payroll month
	// (YYYY-MM) and returns the file bytes with a suggested filename.
	PayslipPDF(ctx context.Context, mitarbeiterID string, monat string) (data []byte, filename string, err error)
}
