package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var expiryToday = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestClassifyExpiry_NoDate(t *testing.T) {
	assert.Equal(t, ExpiryNone, ClassifyExpiry(nil, expiryToday))
}

func TestClassifyExpiry_Tiers(t *testing.T) {
	tests := []struct {
		name     string
		daysOut  int
		expected ExpiryStatus
	}{
		{"long expired", -365, ExpiryExpired},
		{"expired yesterday", -1, ExpiryExpired},
		{"expires today", 0, ExpiryCritical},
		{"one day left", 1, ExpiryCritical},
		{"upper critical bound", 30, ExpiryCritical},
		{"lower warning bound", 31, ExpiryWarning},
		{"mid warning", 60, ExpiryWarning},
		{"upper warning bound", 90, ExpiryWarning},
		{"just valid", 91, ExpiryValid},
		{"far future", 400, ExpiryValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expiry := expiryToday.AddDate(0, 0, tt.daysOut)
			assert.Equal(t, tt.expected, ClassifyExpiry(&expiry, expiryToday))
		})
	}
}

func TestClassifyExpiry_IgnoresTimeOfDay(t *testing.T) {
	// Late in the evening 30 days out is still 30 whole calendar days away.
	expiry := expiryToday.AddDate(0, 0, 30).Add(23 * time.Hour)
	now := expiryToday.Add(8 * time.Hour)
	assert.Equal(t, ExpiryCritical, ClassifyExpiry(&expiry, now))
}

func TestDaysUntilExpiry(t *testing.T) {
	assert.Equal(t, 0, DaysUntilExpiry(expiryToday, expiryToday))
	assert.Equal(t, 7, DaysUntilExpiry(expiryToday.AddDate(0, 0, 7), expiryToday))
	assert.Equal(t, -3, DaysUntilExpiry(expiryToday.AddDate(0, 0, -3), expiryToday))
}

func TestIsExpiringSoon(t *testing.T) {
	assert.False(t, IsExpiringSoon(nil, expiryToday))
	assert.False(t, IsExpiringSoon(datePtr(expiryToday.AddDate(0, 0, -1)), expiryToday), "expired is not expiring")
	assert.True(t, IsExpiringSoon(datePtr(expiryToday), expiryToday))
	assert.True(t, IsExpiringSoon(datePtr(expiryToday.AddDate(0, 0, 45)), expiryToday))
	assert.True(t, IsExpiringSoon(datePtr(expiryToday.AddDate(0, 0, 90)), expiryToday))
	assert.False(t, IsExpiringSoon(datePtr(expiryToday.AddDate(0, 0, 91)), expiryToday))
}

func TestDokumenttypLabel(t *testing.T) {
	assert.Equal(t, "Führerschein", DokumenttypFuehrerschein.Label())
	assert.Equal(t, "SRC-Karte", DokumenttypSRC.Label())
	assert.Equal(t, "irgendwas", Dokumenttyp("irgendwas").Label())
}
