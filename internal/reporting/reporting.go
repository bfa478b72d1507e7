// Package reporting aggregates ledger entries into balances, running balances,
// monthly income/expense rollups and per-tag totals.
package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/morningmoney/internal/money"
)

// DefaultMonthLimit is the number of months MonthlySummary keeps when no limit is given.
const DefaultMonthLimit = 24

// MonthLayout is the key format of a MonthSummary.
const MonthLayout = "2006-01"

// Entry is the part of a ledger transaction the aggregations read.
type Entry struct {
	ID     int64
	Date   time.Time
	Amount decimal.Decimal
	Tags   string
}

// BalancedEntry is an Entry annotated with the cumulative balance up to and including it.
type BalancedEntry struct {
	Entry
	RunningBalance decimal.Decimal
}

// MonthSummary holds the income and expense totals of one calendar month.
// Expenses is the absolute value of the negative amounts.
type MonthSummary struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Net is income minus expenses.
func (m MonthSummary) Net() decimal.Decimal {
	return m.Income.Sub(m.Expenses)
}

// TagTotal is one row of a sorted tag summary.
type TagTotal struct {
	Tag   string
	Total decimal.Decimal
}

// Balance sums every amount and rounds to cents.
func Balance(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return money.Round(total)
}

// SortChronological orders entries oldest first by (date, id) in place.
func SortChronological(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].ID < entries[j].ID
	})
}

// RunningBalance accumulates amounts oldest first by (date, id), then returns
// the annotated entries newest first. The input slice is not modified.
func RunningBalance(entries []Entry) []BalancedEntry {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	SortChronological(ordered)

	result := make([]BalancedEntry, len(ordered))
	running := decimal.Zero
	for i, e := range ordered {
		running = running.Add(e.Amount)
		// newest first
		result[len(ordered)-1-i] = BalancedEntry{
			Entry:          e,
			RunningBalance: money.Round(running),
		}
	}
	return result
}

// MonthlySummary groups entries by calendar month, most recent month first,
// keeping at most limit months. A non-positive limit means DefaultMonthLimit.
func MonthlySummary(entries []Entry, limit int) []MonthSummary {
	if limit <= 0 {
		limit = DefaultMonthLimit
	}

	byMonth := make(map[string]*MonthSummary)
	for _, e := range entries {
		key := e.Date.Format(MonthLayout)
		summary, ok := byMonth[key]
		if !ok {
			summary = &MonthSummary{Month: key, Income: decimal.Zero, Expenses: decimal.Zero}
			byMonth[key] = summary
		}
		switch e.Amount.Sign() {
		case 1:
			summary.Income = summary.Income.Add(e.Amount)
		case -1:
			summary.Expenses = summary.Expenses.Add(e.Amount.Abs())
		}
	}

	months := make([]MonthSummary, 0, len(byMonth))
	for _, summary := range byMonth {
		months = append(months, *summary)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month > months[j].Month
	})

	if len(months) > limit {
		months = months[:limit]
	}
	return months
}

// SplitTags breaks a comma-separated tag string into trimmed, non-empty tags.
func SplitTags(tags string) []string {
	var result []string
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			result = append(result, tag)
		}
	}
	return result
}

// TagSummary totals the signed amounts per tag. An entry contributes its full
// amount to each of its tags.
func TagSummary(entries []Entry) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range entries {
		for _, tag := range SplitTags(e.Tags) {
			totals[tag] = totals[tag].Add(e.Amount)
		}
	}
	return totals
}

// SortedTags flattens a tag summary into rows ordered by tag name.
func SortedTags(totals map[string]decimal.Decimal) []TagTotal {
	rows := make([]TagTotal, 0, len(totals))
	for tag, total := range totals {
		rows = append(rows, TagTotal{Tag: tag, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Tag < rows[j].Tag
	})
	return rows
}
