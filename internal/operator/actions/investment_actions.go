package actions

import (
	"context"

	"github.com/carson-networks/morningmoney/internal/storage"
	"github.com/carson-networks/morningmoney/internal/storage/investment"
)

// UpsertInvestment saves an investment keyed by its exact name. The lookup
// and the write share the operator's transaction.
type UpsertInvestment struct {
	Save *investment.InvestmentSave

	ID      int64
	Created bool
}

func (u *UpsertInvestment) Perform(ctx context.Context, writer *storage.Writer) error {
	id, created, err := writer.Investment.Upsert(ctx, u.Save)
	if err != nil {
		return err
	}

	u.ID = id
	u.Created = created
	return nil
}

type DeleteInvestment struct {
	ID int64
}

func (d *DeleteInvestment) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Investment.Delete(ctx, d.ID)
}
