package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID returns the row with the given id, or nil when there is none.
func (r *Reader) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	query := sqlite.Select(
		sm.Columns(columns...),
		sm.From(TableName),
		sm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[transactionRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToTransaction(row)
}

// List returns rows inside the filter's date range. Nil filter returns all.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter, order Order) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(TableName),
	}
	if filter != nil {
		if filter.FromDate != nil {
			queryMods = append(queryMods, sm.Where(sqlite.Quote("date").GTE(sqlite.Arg(FormatDate(*filter.FromDate)))))
		}
		if filter.ToDate != nil {
			queryMods = append(queryMods, sm.Where(sqlite.Quote("date").LTE(sqlite.Arg(FormatDate(*filter.ToDate)))))
		}
	}
	if order == OrderOldestFirst {
		queryMods = append(queryMods,
			sm.OrderBy(sqlite.Quote("date")).Asc(),
			sm.OrderBy(sqlite.Quote("id")).Asc(),
		)
	} else {
		queryMods = append(queryMods,
			sm.OrderBy(sqlite.Quote("date")).Desc(),
			sm.OrderBy(sqlite.Quote("id")).Desc(),
		)
	}

	rows, err := bob.All(ctx, r.exec, sqlite.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		tx, err := rowToTransaction(row)
		if err != nil {
			return nil, err
		}
		result[i] = tx
	}
	return result, nil
}
