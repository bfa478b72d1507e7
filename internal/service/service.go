package service

import (
	"context"

	"github.com/carson-networks/morningmoney/internal/config"
	"github.com/carson-networks/morningmoney/internal/operator/actions"
	"github.com/carson-networks/morningmoney/internal/projection"
	"github.com/carson-networks/morningmoney/internal/storage"
)

// IOperator runs write actions one transaction at a time.
// *operator.OperatorDelegator satisfies it.
type IOperator interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Ledger     *LedgerService
	Investment *InvestmentService
	Report     *ReportService
}

// NewService wires the services over one storage and one operator. Reads go
// straight to storage; writes go through the operator.
func NewService(store *storage.Storage, op IOperator, env *config.Config) *Service {
	projector := projection.NewProjector()
	ledger := NewLedgerService(store, op, env.DefaultAccount)
	investments := NewInvestmentService(store, op, projector)

	return &Service{
		Ledger:     ledger,
		Investment: investments,
		Report:     NewReportService(store, investments, projector.Now),
	}
}
