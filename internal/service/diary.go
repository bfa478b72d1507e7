package service

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/morningmoney/internal/apperrors"
	"github.com/carson-networks/morningmoney/internal/storage/transaction"
)

const (
	diaryIncomeCategory  = "Salary"
	diaryExpenseCategory = "Expense"
)

type diaryEntry struct {
	Date    string      `json:"date"`
	Income  json.Number `json:"income"`
	Expense json.Number `json:"expense"`
	Notes   string      `json:"notes"`
}

// parseDiary converts diary entries into ledger rows. Entries with a bad
// date are skipped and counted; one entry can yield an income and an
// expense row.
func parseDiary(r io.Reader, account string) ([]*transaction.TransactionCreate, int, error) {
	var entries []diaryEntry
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(&entries); err != nil {
		return nil, 0, fmt.Errorf("decode diary: %w", err)
	}

	var creates []*transaction.TransactionCreate
	skipped := 0
	for _, entry := range entries {
		date, err := time.Parse(transaction.DateLayout, entry.Date)
		if err != nil {
			skipped++
			continue
		}

		income, err := diaryAmount(entry.Income)
		if err != nil {
			return nil, 0, err
		}
		expense, err := diaryAmount(entry.Expense)
		if err != nil {
			return nil, 0, err
		}

		if income.IsPositive() {
			creates = append(creates, &transaction.TransactionCreate{
				Date:        date,
				Category:    diaryIncomeCategory,
				Amount:      income,
				Description: entry.Notes,
				Account:     account,
			})
		}
		if expense.IsPositive() {
			creates = append(creates, &transaction.TransactionCreate{
				Date:        date,
				Category:    diaryExpenseCategory,
				Amount:      expense.Neg(),
				Description: entry.Notes,
				Account:     account,
			})
		}
	}

	return creates, skipped, nil
}

func diaryAmount(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrInvalidNumber, n)
	}
	return d, nil
}
