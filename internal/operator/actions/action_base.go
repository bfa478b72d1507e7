package actions

import (
	"context"

	"github.com/carson-networks/morningmoney/internal/storage"
)

// IAction is one unit of work. Perform runs inside a single database
// transaction owned by the operator; returning an error rolls it back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
