package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/morningmoney/internal/reporting"
	"github.com/carson-networks/morningmoney/internal/storage/transaction"
)

// DefaultCategory is used when a transaction is added without one.
const DefaultCategory = "Uncategorized"

// Transaction represents a ledger entry in the service layer.
type Transaction struct {
	ID          int64
	Date        time.Time
	Category    string
	Amount      decimal.Decimal
	Description string
	Tags        string
	Account     string
	CreatedAt   time.Time
}

// TransactionCreate is the input of AddTransaction. A zero Date means today.
type TransactionCreate struct {
	Date        time.Time
	Category    string
	Amount      decimal.Decimal
	Description string
	Tags        string
	Account     string
}

// TransactionUpdate carries the fields to change; unset fields are kept.
type TransactionUpdate struct {
	Date        omit.Val[time.Time]
	Category    omit.Val[string]
	Amount      omit.Val[decimal.Decimal]
	Description omit.Val[string]
	Tags        omit.Val[string]
	Account     omit.Val[string]
}

// RunningBalanceEntry is a transaction with the cumulative balance up to and
// including it.
type RunningBalanceEntry struct {
	Transaction
	RunningBalance decimal.Decimal
}

// DateRange is an inclusive date range. Nil bounds are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Date:        row.Date,
		Category:    row.Category,
		Amount:      row.Amount,
		Description: row.Description,
		Tags:        row.Tags,
		Account:     row.Account,
		CreatedAt:   row.CreatedAt,
	}
}

func (u TransactionUpdate) toStorage() *transaction.TransactionUpdate {
	return &transaction.TransactionUpdate{
		Date:        u.Date,
		Category:    u.Category,
		Amount:      u.Amount,
		Description: u.Description,
		Tags:        u.Tags,
		Account:     u.Account,
	}
}

func toReportingEntries(rows []*transaction.Transaction) []reporting.Entry {
	entries := make([]reporting.Entry, len(rows))
	for i, row := range rows {
		entries[i] = reporting.Entry{
			ID:     row.ID,
			Date:   row.Date,
			Amount: row.Amount,
			Tags:   row.Tags,
		}
	}
	return entries
}
