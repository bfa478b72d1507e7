// Package motivation picks the daily encouragement line shown with the balance.
package motivation

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// FireThreshold is the projected wealth at which the first rare message is shown.
	FireThreshold = decimal.NewFromInt(10_000_000)
	// FatFireThreshold is the projected wealth at which the remaining rare messages are shown.
	FatFireThreshold = decimal.NewFromInt(25_000_000)
)

// Messages is the regular daily rotation.
var Messages = []string{
	"Brick by brick, day by day. Keep laying them.",
	"Opening the app again already puts you ahead of most people.",
	"Future you is looking back at today and nodding.",
	"Small monthly deposits plus time beat big plans that never start.",
	"A slow month is not a stop. Log it and move on.",
	"Discipline compounds faster than any interest rate.",
	"You don't need a perfect budget, you need a tracked one.",
	"Every rand you write down is a rand you control.",
	"Stay the course. The curve bends upward late.",
}

// RareMessages are reserved for large projected wealth.
var RareMessages = []string{
	"Projected wealth just crossed R10,000,000. That's financial independence on paper.",
	"R25,000,000 projected. The snowball is an avalanche now.",
	"Your projections outgrew your goals. Time to set bigger ones.",
	"Most people never get here. You kept logging and you did.",
}

// DailyMessage returns the message for the calendar day of date. The choice is
// stable for the whole day and changes from one day to the next.
func DailyMessage(date time.Time, totalProjected decimal.Decimal) string {
	r := rand.New(rand.NewPCG(dayNumber(date), 0))

	if totalProjected.GreaterThanOrEqual(FatFireThreshold) {
		rare := RareMessages[1:]
		return rare[r.IntN(len(rare))]
	}
	if totalProjected.GreaterThanOrEqual(FireThreshold) {
		return RareMessages[0]
	}

	return Messages[r.IntN(len(Messages))]
}

func dayNumber(date time.Time) uint64 {
	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return uint64(midnight.Unix() / 86400)
}
