package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/payment"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func pay(mitarbeiterID string, art payment.Zahlungsart, betrag float64, monat string) payment.Payment {
	return payment.Payment{
		ID:            "z-" + mitarbeiterID + "-" + monat,
		MitarbeiterID: mitarbeiterID,
		Zahlungsart:   art,
		Betrag:        dec(betrag),
		Zahlungsmonat: monat,
	}
}

func TestSumByType_Empty(t *testing.T) {
	assert.True(t, SumByType(nil, payment.ZahlungsartVorschuss).IsZero())
	assert.True(t, SumByType([]payment.Payment{}, payment.ZahlungsartBonus).IsZero())
}

func TestSumByType_DuplicatesAllCount(t *testing.T) {
	payments := []payment.Payment{
		pay("m1", payment.ZahlungsartVorschuss, 100, "2025-06"),
		pay("m1", payment.ZahlungsartVorschuss, 100, "2025-06"),
		pay("m1", payment.ZahlungsartBonus, 50, "2025-06"),
	}
	assert.True(t, SumByType(payments, payment.ZahlungsartVorschuss).Equal(dec(200)))
	assert.True(t, SumByType(payments, payment.ZahlungsartBonus).Equal(dec(50)))
}

func TestSumByTypeForEmployee(t *testing.T) {
	payments := []payment.Payment{
		pay("m1", payment.ZahlungsartVorschuss, 300, "2025-06"),
		pay("m2", payment.ZahlungsartVorschuss, 150, "2025-06"),
		pay("m1", payment.ZahlungsartGehalt, 3000, "2025-06"),
	}
	assert.True(t, SumByTypeForEmployee(payments, "m1", payment.ZahlungsartVorschuss).Equal(dec(300)))
	assert.True(t, SumByTypeForEmployee(payments, "m2", payment.ZahlungsartVorschuss).Equal(dec(150)))
	assert.True(t, SumByTypeForEmployee(payments, "m3", payment.ZahlungsartVorschuss).IsZero())
}

func TestCalculateMonthlyPayout(t *testing.T) {
	// Base salary 3000, one advance of 500, one bonus of 200 -> 2700.
	emp := employee.Employee{ID: "m1", Grundgehalt: dec(3000), Aktiv: true}
	payments := []payment.Payment{
		pay("m1", payment.ZahlungsartVorschuss, 500, "2025-06"),
		pay("m1", payment.ZahlungsartBonus, 200, "2025-06"),
	}

	result := CalculateMonthlyPayout(emp, time.June, payments)
	assert.True(t, result.Gehalt.Equal(dec(3000)))
	assert.True(t, result.Vorschuesse.Equal(dec(500)))
	assert.True(t, result.Boni.Equal(dec(200)))
	assert.True(t, result.Auszahlung.Equal(dec(2700)))
}

func TestCalculateMonthlyPayout_OverrideWins(t *testing.T) {
	// March override 3200, no payments -> payout 3200.
	emp := employee.Employee{
		ID:          "m1",
		Grundgehalt: dec(3000),
		MonatlichesGehalt: employee.MonthlySalaries{
			"mar": dec(3200),
		},
	}

	result := CalculateMonthlyPayout(emp, time.March, nil)
	assert.True(t, result.Auszahlung.Equal(dec(3200)))

	// Other months still use the base salary.
	result = CalculateMonthlyPayout(emp, time.April, nil)
	assert.True(t, result.Auszahlung.Equal(dec(3000)))
}

func TestCalculateMonthlyPayout_NegativeNotClamped(t *testing.T) {
	emp := employee.Employee{ID: "m1", Grundgehalt: dec(1000)}
	payments := []payment.Payment{
		pay("m1", payment.ZahlungsartVorschuss, 1500, "2025-06"),
	}

	result := CalculateMonthlyPayout(emp, time.June, payments)
	assert.True(t, result.Auszahlung.Equal(dec(-500)))
}

func TestCalculateMonthlyPayout_IgnoresSalaryAndOtherCategories(t *testing.T) {
	emp := employee.Employee{ID: "m1", Grundgehalt: dec(3000)}
	payments := []payment.Payment{
		pay("m1", payment.ZahlungsartGehalt, 3000, "2025-06"),
		pay("m1", payment.ZahlungsartSonstiges, 99, "2025-06"),
	}

	result := CalculateMonthlyPayout(emp, time.June, payments)
	assert.True(t, result.Auszahlung.Equal(dec(3000)))
}

func TestAnnualSalary_IgnoresOverrides(t *testing.T) {
	emp := employee.Employee{
		Grundgehalt: dec(2000),
		MonatlichesGehalt: employee.MonthlySalaries{
			"jan": dec(9999),
		},
	}
	assert.True(t, AnnualSalary(emp).Equal(dec(24000)))
}

func TestCalculateAnnualNet(t *testing.T) {
	// 2000×12 − 1000 + 300 = 23300.
	emp := employee.Employee{ID: "m1", Grundgehalt: dec(2000)}
	payments := []payment.Payment{
		pay("m1", payment.ZahlungsartVorschuss, 600, "2025-02"),
		pay("m1", payment.ZahlungsartVorschuss, 400, "2025-07"),
		pay("m1", payment.ZahlungsartBonus, 300, "2025-12"),
		pay("m2", payment.ZahlungsartVorschuss, 5000, "2025-03"),
	}

	result := CalculateAnnualNet(emp, payments)
	assert.True(t, result.JahresGehalt.Equal(dec(24000)))
	assert.True(t, result.Vorschuesse.Equal(dec(1000)))
	assert.True(t, result.Boni.Equal(dec(300)))
	assert.True(t, result.Netto.Equal(dec(23300)))
}

func TestCalculateOrgMonthlyTotal(t *testing.T) {
	employees := []employee.Employee{
		{ID: "m1", Grundgehalt: dec(3000), Aktiv: true},
		{ID: "m2", Grundgehalt: dec(2500), Aktiv: true, MonatlichesGehalt: employee.MonthlySalaries{"jun": dec(2600)}},
		{ID: "m3", Grundgehalt: dec(4000), Aktiv: false}, // excluded
	}
	payments := []payment.Payment{
		pay("m1", payment.ZahlungsartVorschuss, 500, "2025-06"),
		pay("m2", payment.ZahlungsartBonus, 100, "2025-06"),
	}

	result := CalculateOrgMonthlyTotal(employees, time.June, payments)
	assert.True(t, result.Gehaelter.Equal(dec(5600)), "3000 + 2600 override, inactive excluded")
	assert.True(t, result.Vorschuesse.Equal(dec(500)))
	assert.True(t, result.Boni.Equal(dec(100)))
	assert.True(t, result.Auszahlung.Equal(dec(5200)))
}

func TestFilterByMonth(t *testing.T) {
	payments := []payment.Payment{
		pay("m1", payment.ZahlungsartVorschuss, 100, "2025-05"),
		pay("m1", payment.ZahlungsartVorschuss, 200, "2025-06"),
	}

	june := FilterByMonth(payments, "2025-06")
	assert.Len(t, june, 1)
	assert.True(t, june[0].Betrag.Equal(dec(200)))

	assert.Empty(t, FilterByMonth(payments, "2025-07"))
}

func TestFilterByEmployee(t *testing.T) {
	payments := []payment.Payment{
		pay("m1", payment.ZahlungsartBonus, 100, "2025-06"),
		pay("m2", payment.ZahlungsartBonus, 200, "2025-06"),
	}

	assert.Len(t, FilterByEmployee(payments, "m1"), 1)
	assert.Empty(t, FilterByEmployee(payments, "m9"))
}
