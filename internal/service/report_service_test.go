package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/morningmoney/internal/motivation"
	"github.com/carson-networks/morningmoney/internal/storage"
	"github.com/carson-networks/morningmoney/internal/storage/investment"
	"github.com/carson-networks/morningmoney/internal/storage/transaction"
)

func newReportTestService(t *testing.T) (*ReportService, *transaction.MockITransactionTable, *investment.MockIInvestmentTable) {
	t.Helper()
	txTable := transaction.NewMockITransactionTable(t)
	invTable := investment.NewMockIInvestmentTable(t)
	store := &storage.Storage{Transactions: txTable, Investments: invTable}
	projector := fixedProjector()
	investments := NewInvestmentService(store, newMockOperator(t), projector)
	return NewReportService(store, investments, projector.Now), txTable, invTable
}

func TestGetMonthlySummary(t *testing.T) {
	svc, txTable, _ := newReportTestService(t)

	rows := append(scenarioRows(), &transaction.Transaction{ID: 4, Date: day(2025, 4, 10), Amount: d("-30.25")})
	txTable.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)

	months, err := svc.GetMonthlySummary(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, months, 2)

	assert.Equal(t, "2025-04", months[0].Month)
	assert.True(t, months[0].Income.IsZero())
	assert.Equal(t, "30.25", months[0].Expenses.StringFixed(2))

	assert.Equal(t, "2025-03", months[1].Month)
	assert.Equal(t, "550.00", months[1].Income.StringFixed(2))
	assert.Equal(t, "200.00", months[1].Expenses.StringFixed(2))
	assert.Equal(t, "350.00", months[1].Net().StringFixed(2))
}

func TestGetMonthlySummary_Limit(t *testing.T) {
	svc, txTable, _ := newReportTestService(t)

	rows := append(scenarioRows(), &transaction.Transaction{ID: 4, Date: day(2025, 4, 10), Amount: d("-30.25")})
	txTable.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)

	months, err := svc.GetMonthlySummary(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, months, 1)
	assert.Equal(t, "2025-04", months[0].Month)
}

func TestGetTagSummary(t *testing.T) {
	svc, txTable, _ := newReportTestService(t)

	txTable.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(scenarioRows(), nil)

	tags, err := svc.GetTagSummary(context.Background())
	require.NoError(t, err)
	assert.Len(t, tags, 3)
	assert.Equal(t, "500.00", tags["work"].StringFixed(2))
	assert.Equal(t, "-150.00", tags["food"].StringFixed(2))
	assert.Equal(t, "-200.00", tags["weekly"].StringFixed(2))
}

func TestGetDailyMessage(t *testing.T) {
	svc, _, invTable := newReportTestService(t)

	invTable.EXPECT().List(mock.Anything).Return(storedInvestments(), nil)

	msg, err := svc.GetDailyMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, motivation.DailyMessage(fixedNow, d("18247.13")), msg)
}

func TestGetDashboard(t *testing.T) {
	svc, txTable, invTable := newReportTestService(t)

	txTable.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(scenarioRows(), nil)
	invTable.EXPECT().List(mock.Anything).Return(storedInvestments(), nil)

	dashboard, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "350.00", dashboard.Balance.StringFixed(2))
	assert.Equal(t, "18247.13", dashboard.ProjectedWealth.StringFixed(2))
	require.Len(t, dashboard.Months, 1)
	assert.NotEmpty(t, dashboard.Message)
}

func TestGetDashboard_Error(t *testing.T) {
	svc, txTable, invTable := newReportTestService(t)

	txTable.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("disk I/O error"))
	invTable.EXPECT().List(mock.Anything).Return(storedInvestments(), nil).Maybe()

	dashboard, err := svc.GetDashboard(context.Background())
	assert.EqualError(t, err, "disk I/O error")
	assert.Nil(t, dashboard)
}
