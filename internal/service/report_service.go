package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/morningmoney/internal/logging"
	"github.com/carson-networks/morningmoney/internal/motivation"
	"github.com/carson-networks/morningmoney/internal/reporting"
	"github.com/carson-networks/morningmoney/internal/storage"
	"github.com/carson-networks/morningmoney/internal/storage/transaction"
)

const dashboardMonths = 6

// ReportService builds summaries over the ledger and the investments.
type ReportService struct {
	storage     *storage.Storage
	investments *InvestmentService
	now         func() time.Time
}

// Dashboard is the landing view: balance, projected wealth, recent months
// and the message of the day.
type Dashboard struct {
	Balance         decimal.Decimal
	ProjectedWealth decimal.Decimal
	Months          []reporting.MonthSummary
	Message         string
}

func NewReportService(store *storage.Storage, investments *InvestmentService, now func() time.Time) *ReportService {
	return &ReportService{
		storage:     store,
		investments: investments,
		now:         now,
	}
}

// GetMonthlySummary returns income and expenses per month, most recent
// first. A non-positive limit means reporting.DefaultMonthLimit.
func (s *ReportService) GetMonthlySummary(ctx context.Context, limit int) ([]reporting.MonthSummary, error) {
	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}
	return reporting.MonthlySummary(entries, limit), nil
}

// GetTagSummary returns the signed total per tag.
func (s *ReportService) GetTagSummary(ctx context.Context) (map[string]decimal.Decimal, error) {
	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}
	return reporting.TagSummary(entries), nil
}

// GetDailyMessage picks today's message from the total projected wealth.
func (s *ReportService) GetDailyMessage(ctx context.Context) (string, error) {
	total, err := s.investments.GetTotalProjectedWealth(ctx, nil)
	if err != nil {
		return "", err
	}
	return motivation.DailyMessage(s.now(), total), nil
}

// GetDashboard loads the dashboard parts concurrently.
func (s *ReportService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	endTimer := logging.GetLogData(ctx).AddTiming("dashboard")
	defer endTimer()

	dashboard := &Dashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := s.entries(gctx)
		if err != nil {
			return err
		}
		dashboard.Balance = reporting.Balance(entries)
		dashboard.Months = reporting.MonthlySummary(entries, dashboardMonths)
		return nil
	})
	g.Go(func() error {
		total, err := s.investments.GetTotalProjectedWealth(gctx, nil)
		if err != nil {
			return err
		}
		dashboard.ProjectedWealth = total
		dashboard.Message = motivation.DailyMessage(s.now(), total)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}

func (s *ReportService) entries(ctx context.Context) ([]reporting.Entry, error) {
	rows, err := s.storage.Transactions.List(ctx, nil, transaction.OrderOldestFirst)
	if err != nil {
		return nil, err
	}
	return toReportingEntries(rows), nil
}
