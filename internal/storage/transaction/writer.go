package transaction

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Executor
	Reader
}

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a ledger row and returns its id. A zero date means today.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	date := create.Date
	if date.IsZero() {
		date = today()
	}
	query := sqlite.Insert(
		im.Into(TableName, "date", "category", "amount", "description", "tags", "account"),
		im.Values(sqlite.Arg(
			FormatDate(date),
			create.Category,
			create.Amount,
			create.Description,
			create.Tags,
			create.Account,
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, w.tx, query, scan.SingleColumnMapper[int64])
}

// Update applies the set fields of update to row id. It reports false when no
// row has that id.
func (w *Writer) Update(ctx context.Context, id int64, update *TransactionUpdate) (bool, error) {
	existing, err := w.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if update == nil || update.IsEmpty() {
		return true, nil
	}

	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(TableName),
	}
	if date, ok := update.Date.Get(); ok {
		queryMods = append(queryMods, um.SetCol("date").ToArg(FormatDate(date)))
	}
	if category, ok := update.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category").ToArg(category))
	}
	if amount, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(amount))
	}
	if description, ok := update.Description.Get(); ok {
		queryMods = append(queryMods, um.SetCol("description").ToArg(description))
	}
	if tags, ok := update.Tags.Get(); ok {
		queryMods = append(queryMods, um.SetCol("tags").ToArg(tags))
	}
	if account, ok := update.Account.Get(); ok {
		queryMods = append(queryMods, um.SetCol("account").ToArg(account))
	}
	queryMods = append(queryMods, um.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))))

	if _, err := bob.Exec(ctx, w.tx, sqlite.Update(queryMods...)); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes row id. A missing row is not an error.
func (w *Writer) Delete(ctx context.Context, id int64) error {
	query := sqlite.Delete(
		dm.From(TableName),
		dm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

// InsertMany inserts every create and returns how many rows were written.
func (w *Writer) InsertMany(ctx context.Context, creates []*TransactionCreate) (int, error) {
	for i, create := range creates {
		if _, err := w.Insert(ctx, create); err != nil {
			return i, err
		}
	}
	return len(creates), nil
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
