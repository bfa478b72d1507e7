package actions

import (
	"context"

	"github.com/carson-networks/morningmoney/internal/storage"
	"github.com/carson-networks/morningmoney/internal/storage/transaction"
)

// CreateTransaction inserts one ledger row. ID holds the new row id after Perform.
type CreateTransaction struct {
	Create *transaction.TransactionCreate

	ID int64
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Transaction.Insert(ctx, c.Create)
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}

// UpdateTransaction applies a partial update. Found is false when the row
// does not exist.
type UpdateTransaction struct {
	ID     int64
	Update *transaction.TransactionUpdate

	Found bool
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	found, err := writer.Transaction.Update(ctx, u.ID, u.Update)
	if err != nil {
		return err
	}

	u.Found = found
	return nil
}

type DeleteTransaction struct {
	ID int64
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transaction.Delete(ctx, d.ID)
}

// ImportDiary inserts converted diary rows all-or-nothing.
type ImportDiary struct {
	Creates []*transaction.TransactionCreate

	Count int
}

func (i *ImportDiary) Perform(ctx context.Context, writer *storage.Writer) error {
	count, err := writer.Transaction.InsertMany(ctx, i.Creates)
	if err != nil {
		return err
	}

	i.Count = count
	return nil
}
