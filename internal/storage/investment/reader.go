package investment

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

var _ IInvestmentTable = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) List(ctx context.Context) ([]*Investment, error) {
	query := sqlite.Select(
		sm.Columns(columns...),
		sm.From(TableName),
		sm.OrderBy(sqlite.Quote("name")).Asc(),
		sm.OrderBy(sqlite.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[investmentRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*Investment, len(rows))
	for i, row := range rows {
		result[i] = rowToInvestment(row)
	}
	return result, nil
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Investment, error) {
	return r.findOne(ctx, sm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))))
}

// FindByName matches name exactly. It returns nil when no record has that name.
func (r *Reader) FindByName(ctx context.Context, name string) (*Investment, error) {
	return r.findOne(ctx, sm.Where(sqlite.Quote("name").EQ(sqlite.Arg(name))))
}

func (r *Reader) findOne(ctx context.Context, where bob.Mod[*dialect.SelectQuery]) (*Investment, error) {
	query := sqlite.Select(
		sm.Columns(columns...),
		sm.From(TableName),
		where,
	)
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[investmentRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToInvestment(row), nil
}
