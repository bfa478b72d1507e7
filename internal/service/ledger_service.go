package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/morningmoney/internal/apperrors"
	"github.com/carson-networks/morningmoney/internal/logging"
	"github.com/carson-networks/morningmoney/internal/operator/actions"
	"github.com/carson-networks/morningmoney/internal/reporting"
	"github.com/carson-networks/morningmoney/internal/storage"
	"github.com/carson-networks/morningmoney/internal/storage/transaction"
)

// LedgerService handles transaction business logic.
type LedgerService struct {
	storage        *storage.Storage
	operator       IOperator
	defaultAccount string
}

func NewLedgerService(store *storage.Storage, op IOperator, defaultAccount string) *LedgerService {
	return &LedgerService{
		storage:        store,
		operator:       op,
		defaultAccount: defaultAccount,
	}
}

// AddTransaction records a transaction and returns its id. Amounts are not
// validated here; zero is allowed.
func (s *LedgerService) AddTransaction(ctx context.Context, create TransactionCreate) (int64, error) {
	action := &actions.CreateTransaction{Create: s.storageCreate(create)}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}

	logging.GetLogData(ctx).AddData("transactionID", action.ID)
	return action.ID, nil
}

// UpdateTransaction changes the set fields of a transaction. It returns
// false when no transaction has that id.
func (s *LedgerService) UpdateTransaction(ctx context.Context, id int64, update TransactionUpdate) (bool, error) {
	action := &actions.UpdateTransaction{ID: id, Update: update.toStorage()}
	if err := s.operator.Process(ctx, action); err != nil {
		return false, err
	}
	return action.Found, nil
}

// DeleteTransaction removes a transaction. Unknown ids are ignored.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id int64) error {
	return s.operator.Process(ctx, &actions.DeleteTransaction{ID: id})
}

// ListTransactions returns every transaction, newest first.
func (s *LedgerService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, nil, transaction.OrderNewestFirst)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted, nil
}

// GetBalance is the sum of all amounts, rounded to cents.
func (s *LedgerService) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	endTimer := logging.GetLogData(ctx).AddTiming("balanceQuery")
	defer endTimer()

	rows, err := s.storage.Transactions.List(ctx, nil, transaction.OrderOldestFirst)
	if err != nil {
		return decimal.Zero, err
	}
	return reporting.Balance(toReportingEntries(rows)), nil
}

// GetTransactionsWithRunningBalance lists the transactions in dateRange newest
// first, each with the balance accumulated from the oldest one in the range.
func (s *LedgerService) GetTransactionsWithRunningBalance(ctx context.Context, dateRange DateRange) ([]RunningBalanceEntry, error) {
	if dateRange.From != nil && dateRange.To != nil && dateRange.From.After(*dateRange.To) {
		return nil, apperrors.ErrInvalidDateRange
	}

	filter := &transaction.TransactionFilter{FromDate: dateRange.From, ToDate: dateRange.To}
	rows, err := s.storage.Transactions.List(ctx, filter, transaction.OrderOldestFirst)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*transaction.Transaction, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	balanced := reporting.RunningBalance(toReportingEntries(rows))
	result := make([]RunningBalanceEntry, len(balanced))
	for i, entry := range balanced {
		result[i] = RunningBalanceEntry{
			Transaction:    transactionFromStorage(byID[entry.ID]),
			RunningBalance: entry.RunningBalance,
		}
	}
	return result, nil
}

// ImportDiary loads a legacy JSON diary into the ledger in one transaction
// and returns how many transactions were created.
func (s *LedgerService) ImportDiary(ctx context.Context, r io.Reader) (int, error) {
	creates, skipped, err := parseDiary(r, s.defaultAccount)
	if err != nil {
		return 0, err
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("diarySkipped", skipped)
	if len(creates) == 0 {
		return 0, nil
	}

	action := &actions.ImportDiary{Creates: creates}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}

	logData.AddData("diaryImported", action.Count)
	return action.Count, nil
}

func (s *LedgerService) storageCreate(create TransactionCreate) *transaction.TransactionCreate {
	account := strings.TrimSpace(create.Account)
	if account == "" {
		account = s.defaultAccount
	}
	category := strings.TrimSpace(create.Category)
	if category == "" {
		category = DefaultCategory
	}

	return &transaction.TransactionCreate{
		Date:        create.Date,
		Category:    category,
		Amount:      create.Amount,
		Description: create.Description,
		Tags:        create.Tags,
		Account:     account,
	}
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	parsed, err := time.Parse(transaction.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, s)
	}
	return parsed, nil
}

// ParseDateRange builds a DateRange from optional YYYY-MM-DD bounds. An
// empty bound is open.
func ParseDateRange(from, to string) (DateRange, error) {
	var dateRange DateRange

	if strings.TrimSpace(from) != "" {
		parsed, err := ParseDate(from)
		if err != nil {
			return DateRange{}, err
		}
		dateRange.From = &parsed
	}
	if strings.TrimSpace(to) != "" {
		parsed, err := ParseDate(to)
		if err != nil {
			return DateRange{}, err
		}
		dateRange.To = &parsed
	}

	if dateRange.From != nil && dateRange.To != nil && dateRange.From.After(*dateRange.To) {
		return DateRange{}, fmt.Errorf("%w: %s is after %s", apperrors.ErrInvalidDateRange, from, to)
	}
	return dateRange, nil
}
