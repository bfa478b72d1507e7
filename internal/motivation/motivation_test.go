package motivation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDailyMessage_StableWithinDay(t *testing.T) {
	morning := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)
	night := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, DailyMessage(morning, decimal.Zero), DailyMessage(night, decimal.Zero))
	assert.Contains(t, Messages, DailyMessage(morning, decimal.Zero))
}

func TestDailyMessage_RotatesAcrossDays(t *testing.T) {
	seen := make(map[string]bool)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		seen[DailyMessage(start.AddDate(0, 0, i), decimal.NewFromInt(1000))] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestDailyMessage_Thresholds(t *testing.T) {
	today := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, RareMessages[0], DailyMessage(today, FireThreshold))
	assert.Equal(t, RareMessages[0], DailyMessage(today, decimal.RequireFromString("24999999.99")))
	assert.Contains(t, RareMessages[1:], DailyMessage(today, FatFireThreshold))
	assert.Contains(t, Messages, DailyMessage(today, decimal.RequireFromString("9999999.99")))
}
