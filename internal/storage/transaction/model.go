package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// TableName is the ledger table.
const TableName = "transactions"

// DateLayout is the storage format of the date column.
const DateLayout = "2006-01-02"

const createdAtLayout = "2006-01-02T15:04:05Z"

// Transaction represents a ledger row.
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

// TransactionCreate is the input for inserting a ledger row.
type TransactionCreate struct {
	Date        time.Time
	Category    string
	Amount      decimal.Decimal
	Description string
	Tags        string
	Account     string
}

// TransactionUpdate lists the fields that may change on an existing row.
// Unset fields are left untouched.
type TransactionUpdate struct {
	Date        omit.Val[time.Time]
	Category    omit.Val[string]
	Amount      omit.Val[decimal.Decimal]
	Description omit.Val[string]
	Tags        omit.Val[string]
	Account     omit.Val[string]
}

// IsEmpty reports whether no field is set.
func (u TransactionUpdate) IsEmpty() bool {
	return u.Date.IsUnset() &&
		u.Category.IsUnset() &&
		u.Amount.IsUnset() &&
		u.Description.IsUnset() &&
		u.Tags.IsUnset() &&
		u.Account.IsUnset()
}

// TransactionFilter restricts a listing to an inclusive date range. Nil bounds are open.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
}

// Order selects the listing order.
type Order int8

const (
	// OrderNewestFirst sorts by date then id, descending.
	OrderNewestFirst Order = iota
	// OrderOldestFirst sorts by date then id, ascending.
	OrderOldestFirst
)

// ITransactionTable defines the ledger operations the services depend on.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go --structname MockITransactionTable
type ITransactionTable interface {
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter, order Order) ([]*Transaction, error)
}

var columns = []any{"id", "date", "category", "amount", "description", "tags", "account", "created_at"}

type transactionRow struct {
	ID          int64           `db:"id"`
	Date        string          `db:"date"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	Tags        string          `db:"tags"`
	Account     string          `db:"account"`
	CreatedAt   string          `db:"created_at"`
}

func rowToTransaction(row transactionRow) (*Transaction, error) {
	date, err := time.Parse(DateLayout, row.Date)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: parse date %q: %w", row.ID, row.Date, err)
	}
	createdAt, _ := time.Parse(createdAtLayout, row.CreatedAt)
	return &Transaction{
		ID:          row.ID,
		Date:        date,
		Category:    row.Category,
		Amount:      row.Amount,
		Description: row.Description,
		Tags:        row.Tags,
		Account:     row.Account,
		CreatedAt:   createdAt,
	}, nil
}

// FormatDate renders the date part of t for the date column.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
