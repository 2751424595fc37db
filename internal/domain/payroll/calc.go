package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/payment"
)

// The functions in this package are pure reductions over payment snapshots.
// Callers pass in the slice they already fetched for the relevant window;
// nothing here touches storage or caches results.

// SumByType adds up the betrag of every payment of one zahlungsart. Empty
// input sums to zero; duplicate records all count.
func SumByType(payments []payment.Payment, art payment.Zahlungsart) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.Zahlungsart == art {
			sum = sum.Add(p.Betrag)
		}
	}
	return sum
}

// SumByTypeForEmployee scopes SumByType to a single employee.
func SumByTypeForEmployee(payments []payment.Payment, mitarbeiterID string, art payment.Zahlungsart) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.MitarbeiterID == mitarbeiterID && p.Zahlungsart == art {
			sum = sum.Add(p.Betrag)
		}
	}
	return sum
}

// FilterByMonth keeps the payments attributed to a payroll month
// (zahlungsmonat, not zahlungsdatum).
func FilterByMonth(payments []payment.Payment, monat string) []payment.Payment {
	var filtered []payment.Payment
	for _, p := range payments {
		if p.Zahlungsmonat == monat {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterByEmployee keeps one employee's payments.
func FilterByEmployee(payments []payment.Payment, mitarbeiterID string) []payment.Payment {
	var filtered []payment.Payment
	for _, p := range payments {
		if p.MitarbeiterID == mitarbeiterID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// MonthlyPayout holds one employee's net for one payroll month.
type MonthlyPayout struct {
	Gehalt      decimal.Decimal
	Vorschuesse decimal.Decimal
	Boni        decimal.Decimal
	Auszahlung  decimal.Decimal
}

// CalculateMonthlyPayout computes effective salary − advances + bonuses for
// one employee and month. monthPayments must already be the month's slice;
// they are scoped to the employee here. Salary- and sonstiges-category
// payments never enter the arithmetic. The result is deliberately unclamped:
// advances exceeding the salary yield a negative payout, which is reported
// as-is.
func CalculateMonthlyPayout(e employee.Employee, month time.Month, monthPayments []payment.Payment) MonthlyPayout {
	vorschuesse := SumByTypeForEmployee(monthPayments, e.ID, payment.ZahlungsartVorschuss)
	boni := SumByTypeForEmployee(monthPayments, e.ID, payment.ZahlungsartBonus)
	gehalt := e.EffectiveSalary(month)

	return MonthlyPayout{
		Gehalt:      gehalt,
		Vorschuesse: vorschuesse,
		Boni:        boni,
		Auszahlung:  gehalt.Sub(vorschuesse).Add(boni),
	}
}

// AnnualSalary is the projected yearly baseline: grundgehalt × 12. It
// intentionally ignores per-month overrides; the monthly payout path applies
// them, this one reports the contractual base. The two formulas stay
// separate because they answer different questions.
func AnnualSalary(e employee.Employee) decimal.Decimal {
	return e.Grundgehalt.Mul(decimal.NewFromInt(12))
}

// AnnualNet holds one employee's realized yearly figures.
type AnnualNet struct {
	JahresGehalt decimal.Decimal
	Vorschuesse  decimal.Decimal
	Boni         decimal.Decimal
	Netto        decimal.Decimal
}

// CalculateAnnualNet computes annual salary − yearly advances + yearly
// bonuses. yearPayments is the employee's payment slice selected by
// zahlungsdatum over the calendar year.
func CalculateAnnualNet(e employee.Employee, yearPayments []payment.Payment) AnnualNet {
	vorschuesse := SumByTypeForEmployee(yearPayments, e.ID, payment.ZahlungsartVorschuss)
	boni := SumByTypeForEmployee(yearPayments, e.ID, payment.ZahlungsartBonus)
	jahresGehalt := AnnualSalary(e)

	return AnnualNet{
		JahresGehalt: jahresGehalt,
		Vorschuesse:  vorschuesse,
		Boni:         boni,
		Netto:        jahresGehalt.Sub(vorschuesse).Add(boni),
	}
}

// OrgMonthlyTotal holds the organization-wide figures for one payroll month.
type OrgMonthlyTotal struct {
	Gehaelter   decimal.Decimal `json:"gehaelter"`
	Vorschuesse decimal.Decimal `json:"vorschuesse"`
	Boni        decimal.Decimal `json:"boni"`
	Auszahlung  decimal.Decimal `json:"auszahlung"`
}

// CalculateOrgMonthlyTotal sums effective salaries over active employees
// only, then subtracts all advances and adds all bonuses attributed to the
// month. Inactive employees contribute no salary; their historical payments
// remain reachable through employee-scoped queries but months they are
// inactive in simply no longer carry their salary line.
func CalculateOrgMonthlyTotal(employees []employee.Employee, month time.Month, monthPayments []payment.Payment) OrgMonthlyTotal {
	gehaelter := decimal.Zero
	for _, e := range employees {
		if e.Aktiv {
			gehaelter = gehaelter.Add(e.EffectiveSalary(month))
		}
	}

	vorschuesse := SumByType(monthPayments, payment.ZahlungsartVorschuss)
	boni := SumByType(monthPayments, payment.ZahlungsartBonus)

	return OrgMonthlyTotal{
		Gehaelter:   gehaelter,
		Vorschuesse: vorschuesse,
		Boni:        boni,
		Auszahlung:  gehaelter.Sub(vorschuesse).Add(boni),
	}
}
