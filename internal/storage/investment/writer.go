package investment

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
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

// Create inserts a new investment and returns its id.
func (w *Writer) Create(ctx context.Context, save *InvestmentSave) (int64, error) {
	query := sqlite.Insert(
		im.Into(TableName,
			"name", "current_value", "monthly_contribution",
			"expected_annual_return", "target_year", "notes",
		),
		im.Values(sqlite.Arg(
			save.Name,
			save.CurrentValue,
			save.MonthlyContribution,
			save.ExpectedAnnualReturn,
			save.TargetYear,
			save.Notes,
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, w.tx, query, scan.SingleColumnMapper[int64])
}

// Overwrite replaces every stored field of investment id with save. The name is kept.
func (w *Writer) Overwrite(ctx context.Context, id int64, save *InvestmentSave) error {
	query := sqlite.Update(
		um.Table(TableName),
		um.SetCol("current_value").ToArg(save.CurrentValue),
		um.SetCol("monthly_contribution").ToArg(save.MonthlyContribution),
		um.SetCol("expected_annual_return").ToArg(save.ExpectedAnnualReturn),
		um.SetCol("target_year").ToArg(save.TargetYear),
		um.SetCol("notes").ToArg(save.Notes),
		um.SetCol("updated_at").ToArg(time.Now().UTC().Format(updatedAtLayout)),
		um.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

// Upsert looks the investment up by exact name inside the writer's transaction,
// then overwrites it or creates it. It returns the record id and whether a new
// record was created.
func (w *Writer) Upsert(ctx context.Context, save *InvestmentSave) (int64, bool, error) {
	existing, err := w.FindByName(ctx, save.Name)
	if err != nil {
		return 0, false, err
	}
	if existing != nil {
		if err := w.Overwrite(ctx, existing.ID, save); err != nil {
			return 0, false, err
		}
		return existing.ID, false, nil
	}

	id, err := w.Create(ctx, save)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// Delete removes investment id. A missing record is not an error.
func (w *Writer) Delete(ctx context.Context, id int64) error {
	query := sqlite.Delete(
		dm.From(TableName),
		dm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}
