package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/morningmoney/internal/apperrors"
	"github.com/carson-networks/morningmoney/internal/logging"
	"github.com/carson-networks/morningmoney/internal/operator/actions"
	"github.com/carson-networks/morningmoney/internal/projection"
	"github.com/carson-networks/morningmoney/internal/storage"
)

// InvestmentService handles investment records and their projections.
type InvestmentService struct {
	storage   *storage.Storage
	operator  IOperator
	projector *projection.Projector
}

func NewInvestmentService(store *storage.Storage, op IOperator, projector *projection.Projector) *InvestmentService {
	return &InvestmentService{
		storage:   store,
		operator:  op,
		projector: projector,
	}
}

// AddOrUpdateInvestment overwrites the investment with the same name or
// creates it, and returns its id.
func (s *InvestmentService) AddOrUpdateInvestment(ctx context.Context, save InvestmentSave) (int64, error) {
	save.Name = strings.TrimSpace(save.Name)
	if save.Name == "" {
		return 0, apperrors.ErrInvalidName
	}

	action := &actions.UpsertInvestment{Save: save.toStorage()}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("investmentID", action.ID)
	logData.AddData("investmentCreated", action.Created)
	return action.ID, nil
}

func (s *InvestmentService) DeleteInvestment(ctx context.Context, id int64) error {
	return s.operator.Process(ctx, &actions.DeleteInvestment{ID: id})
}

// ListInvestments returns all investments ordered by name.
func (s *InvestmentService) ListInvestments(ctx context.Context) ([]Investment, error) {
	rows, err := s.storage.Investments.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Investment, len(rows))
	for i, row := range rows {
		converted[i] = investmentFromStorage(row)
	}
	return converted, nil
}

// GetInvestmentByName returns nil when no investment has that exact name.
func (s *InvestmentService) GetInvestmentByName(ctx context.Context, name string) (*Investment, error) {
	row, err := s.storage.Investments.FindByName(ctx, strings.TrimSpace(name))
	if err != nil || row == nil {
		return nil, err
	}

	converted := investmentFromStorage(row)
	return &converted, nil
}

// CalculateFutureValue projects inv to its target year with extraMonthly
// added to its monthly contribution.
func (s *InvestmentService) CalculateFutureValue(inv Investment, extraMonthly decimal.Decimal) decimal.Decimal {
	return s.projector.FutureValue(inv.projectionInputs(), extraMonthly)
}

// GetTotalProjectedWealth sums the projections of every investment, or only
// of those targeting *targetYear when it is given.
func (s *InvestmentService) GetTotalProjectedWealth(ctx context.Context, targetYear *int) (decimal.Decimal, error) {
	invs, err := s.ListInvestments(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	inputs := make([]projection.Inputs, len(invs))
	for i, inv := range invs {
		inputs[i] = inv.projectionInputs()
	}
	return s.projector.TotalProjectedWealth(inputs, targetYear), nil
}

// ProjectInvestments lists every investment with its projection.
func (s *InvestmentService) ProjectInvestments(ctx context.Context, extraMonthly decimal.Decimal) ([]ProjectedInvestment, error) {
	invs, err := s.ListInvestments(ctx)
	if err != nil {
		return nil, err
	}

	now := s.projector.Now()
	projected := make([]ProjectedInvestment, len(invs))
	for i, inv := range invs {
		projected[i] = ProjectedInvestment{
			Investment:      inv,
			MonthsRemaining: projection.MonthsUntil(inv.TargetYear, now),
			FutureValue:     s.CalculateFutureValue(inv, extraMonthly),
		}
	}
	return projected, nil
}
