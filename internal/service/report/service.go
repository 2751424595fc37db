package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/payment"
	"github.com/transwerk/personal-backend-go/internal/domain/payroll"
	"github.com/transwerk/personal-backend-go/internal/domain/report"
	"github.com/transwerk/personal-backend-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

type ReportServiceImpl struct {
	employee.EmployeeRepository
	payment.PaymentRepository
}

func NewReportService(employeeRepository employee.EmployeeRepository, paymentRepository payment.PaymentRepository) report.ReportService {
	return &ReportServiceImpl{
		EmployeeRepository: employeeRepository,
		PaymentRepository:  paymentRepository,
	}
}

var zahlungsartLabels = map[payment.Zahlungsart]string{
	payment.ZahlungsartGehalt:    "Gehalt",
	payment.ZahlungsartVorschuss: "Vorschuss",
	payment.ZahlungsartBonus:     "Bonus",
	payment.ZahlungsartSonstiges: "Sonstiges",
}

// YearlyPaymentsXLSX implements report.ReportService. One sheet per payment
// type, headed and column-sized like the in-app tables.
func (s *ReportServiceImpl) YearlyPaymentsXLSX(ctx context.Context, jahr int) ([]byte, string, error) {
	from := fmt.Sprintf("%04d-01-01", jahr)
	to := fmt.Sprintf("%04d-12-31", jahr)
	payments, err := s.PaymentRepository.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list payments: %w", err)
	}

	byType := make(map[payment.Zahlungsart][]payment.Payment)
	for _, p := range payments {
		byType[p.Zahlungsart] = append(byType[p.Zahlungsart], p)
	}

	file := excelize.NewFile()
	defer file.Close()

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center", Horizontal: "center"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	// Sheets come in the fixed type order, empty types skipped.
	for _, art := range []payment.Zahlungsart{
		payment.ZahlungsartGehalt,
		payment.ZahlungsartVorschuss,
		payment.ZahlungsartBonus,
		payment.ZahlungsartSonstiges,
	} {
		rows := byType[art]
		if len(rows) == 0 {
			continue
		}

		sheetName := zahlungsartLabels[art]
		if _, err := file.NewSheet(sheetName); err != nil {
			return nil, "", fmt.Errorf("failed to create sheet '%s': %w", sheetName, err)
		}

		headers := []string{"Mitarbeiter", "Betrag", "Zahlungsdatum", "Monat", "Beschreibung"}
		if err := file.SetSheetRow(sheetName, "A1", &headers); err != nil {
			return nil, "", fmt.Errorf("failed to write headers: %w", err)
		}
		if err := file.SetCellStyle(sheetName, "A1", "E1", headerStyle); err != nil {
			return nil, "", fmt.Errorf("failed to style headers: %w", err)
		}
		for col, width := range map[string]float64{"A": 30, "B": 14, "C": 16, "D": 12, "E": 40} {
			if err := file.SetColWidth(sheetName, col, col, width); err != nil {
				return nil, "", fmt.Errorf("failed to set column width: %w", err)
			}
		}

		for i, p := range rows {
			name := ""
			if p.MitarbeiterName != nil {
				name = *p.MitarbeiterName
			}
			beschreibung := ""
			if p.Beschreibung != nil {
				beschreibung = *p.Beschreibung
			}
			betrag, _ := p.Betrag.Float64()
			cell := fmt.Sprintf("A%d", i+2)
			row := []interface{}{name, betrag, p.Zahlungsdatum.Format("2006-01-02"), p.Zahlungsmonat, beschreibung}
			if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
				return nil, "", fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	file.SetActiveSheet(0)
	if sheetIndex, _ := file.GetSheetIndex("Sheet1"); sheetIndex != -1 && file.SheetCount > 1 {
		if err := file.DeleteSheet("Sheet1"); err != nil {
			return nil, "", fmt.Errorf("failed to delete default sheet: %w", err)
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render spreadsheet: %w", err)
	}
	return buffer.Bytes(), fmt.Sprintf("zahlungen-%04d.xlsx", jahr), nil
}

// PayslipPDF implements report.ReportService.
func (s *ReportServiceImpl) PayslipPDF(ctx context.Context, mitarbeiterID string, monat string) ([]byte, string, error) {
	parsed, ok := validator.IsValidMonthKey(monat)
	if !ok {
		return nil, "", payroll.ErrInvalidMonth
	}

	e, err := s.EmployeeRepository.GetByID(ctx, mitarbeiterID)
	if err != nil {
		return nil, "", err
	}
	monthPayments, err := s.PaymentRepository.ListByMonth(ctx, monat)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list payments: %w", err)
	}

	payout := payroll.CalculateMonthlyPayout(e, parsed.Month(), monthPayments)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Gehaltsabrechnung")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Mitarbeiter: %s", e.FullName()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s", e.Position))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Monat: %s", monat))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gehalt: %s EUR", payout.Gehalt.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Vorschuesse: -%s EUR", payout.Vorschuesse.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Boni: +%s EUR", payout.Boni.StringFixed(2)))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Auszahlung: %s EUR", payout.Auszahlung.StringFixed(2)))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Erstellt am %s", time.Now().Format("2006-01-02")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("gehaltsabrechnung-%s-%s.pdf", e.Nachname, monat), nil
}
