package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/morningmoney/internal/apperrors"
	"github.com/carson-networks/morningmoney/internal/operator/actions"
	"github.com/carson-networks/morningmoney/internal/storage"
	"github.com/carson-networks/morningmoney/internal/storage/investment"
)

func newInvestmentTestService(t *testing.T) (*InvestmentService, *investment.MockIInvestmentTable, *mockOperator) {
	t.Helper()
	mockTable := investment.NewMockIInvestmentTable(t)
	op := newMockOperator(t)
	store := &storage.Storage{Investments: mockTable}
	return NewInvestmentService(store, op, fixedProjector()), mockTable, op
}

func storedInvestments() []*investment.Investment {
	nextYear := fixedNow.Year() + 1
	return []*investment.Investment{
		{ID: 1, Name: "Emergency", CurrentValue: d("10000.00"), MonthlyContribution: d("0"), ExpectedAnnualReturn: d("10.00"), TargetYear: nextYear},
		{ID: 2, Name: "Savings", CurrentValue: d("1000.00"), MonthlyContribution: d("100.00"), ExpectedAnnualReturn: d("0"), TargetYear: nextYear},
		{ID: 3, Name: "Stash", CurrentValue: d("5000.00"), MonthlyContribution: d("0"), ExpectedAnnualReturn: d("10.00"), TargetYear: fixedNow.Year() - 1},
	}
}

// -- AddOrUpdateInvestment tests --

func TestAddOrUpdateInvestment_Success(t *testing.T) {
	svc, _, op := newInvestmentTestService(t)

	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.UpsertInvestment) bool {
		return a.Save.Name == "RA" &&
			a.Save.CurrentValue.Equal(d("136479.00")) &&
			a.Save.TargetYear == 2050
	})).Run(func(args mock.Arguments) {
		a := args.Get(1).(*actions.UpsertInvestment)
		a.ID = 11
		a.Created = true
	}).Return(nil)

	id, err := svc.AddOrUpdateInvestment(context.Background(), InvestmentSave{
		Name:                 " RA ",
		CurrentValue:         d("136479.00"),
		MonthlyContribution:  d("399.00"),
		ExpectedAnnualReturn: d("8.00"),
		TargetYear:           2050,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestAddOrUpdateInvestment_EmptyName(t *testing.T) {
	svc, _, _ := newInvestmentTestService(t)

	_, err := svc.AddOrUpdateInvestment(context.Background(), InvestmentSave{Name: "   "})
	assert.ErrorIs(t, err, apperrors.ErrInvalidName)
}

func TestAddOrUpdateInvestment_OperatorError(t *testing.T) {
	svc, _, op := newInvestmentTestService(t)

	op.On("Process", mock.Anything, mock.Anything).Return(errors.New("UNIQUE constraint failed"))

	id, err := svc.AddOrUpdateInvestment(context.Background(), InvestmentSave{Name: "RA"})
	assert.Error(t, err)
	assert.Zero(t, id)
}

func TestDeleteInvestment(t *testing.T) {
	svc, _, op := newInvestmentTestService(t)

	op.On("Process", mock.Anything, &actions.DeleteInvestment{ID: 9}).Return(nil)
	assert.NoError(t, svc.DeleteInvestment(context.Background(), 9))
}

// -- read tests --

func TestListInvestments(t *testing.T) {
	svc, mockTable, _ := newInvestmentTestService(t)

	rows := storedInvestments()
	mockTable.EXPECT().List(mock.Anything).Return(rows, nil)

	invs, err := svc.ListInvestments(context.Background())
	require.NoError(t, err)
	require.Len(t, invs, 3)
	assert.Equal(t, rows[0].Name, invs[0].Name)
	assert.True(t, rows[0].CurrentValue.Equal(invs[0].CurrentValue))
	assert.Equal(t, rows[2].TargetYear, invs[2].TargetYear)
}

func TestGetInvestmentByName(t *testing.T) {
	svc, mockTable, _ := newInvestmentTestService(t)

	mockTable.EXPECT().FindByName(mock.Anything, "Emergency").Return(storedInvestments()[0], nil)
	mockTable.EXPECT().FindByName(mock.Anything, "Missing").Return(nil, nil)

	inv, err := svc.GetInvestmentByName(context.Background(), "Emergency")
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, int64(1), inv.ID)

	inv, err = svc.GetInvestmentByName(context.Background(), "Missing")
	require.NoError(t, err)
	assert.Nil(t, inv)
}

// -- projection tests --

func TestCalculateFutureValue(t *testing.T) {
	svc, _, _ := newInvestmentTestService(t)

	inv := investmentFromStorage(storedInvestments()[0])
	assert.Equal(t, "11047.13", svc.CalculateFutureValue(inv, decimal.Zero).StringFixed(2))

	contrib := Investment{
		CurrentValue:         decimal.Zero,
		MonthlyContribution:  d("600.00"),
		ExpectedAnnualReturn: d("12.00"),
		TargetYear:           fixedNow.Year() + 1,
	}
	assert.Equal(t, "12682.50", svc.CalculateFutureValue(contrib, d("400.00")).StringFixed(2))
}

func TestGetTotalProjectedWealth(t *testing.T) {
	svc, mockTable, _ := newInvestmentTestService(t)

	mockTable.EXPECT().List(mock.Anything).Return(storedInvestments(), nil)

	total, err := svc.GetTotalProjectedWealth(context.Background(), nil)
	require.NoError(t, err)
	// 11047.13 + 2200.00 + 5000.00 (past target keeps its current value)
	assert.Equal(t, "18247.13", total.StringFixed(2))

	year := fixedNow.Year() + 1
	total, err = svc.GetTotalProjectedWealth(context.Background(), &year)
	require.NoError(t, err)
	assert.Equal(t, "13247.13", total.StringFixed(2))
}

func TestGetTotalProjectedWealth_StorageError(t *testing.T) {
	svc, mockTable, _ := newInvestmentTestService(t)

	mockTable.EXPECT().List(mock.Anything).Return(nil, errors.New("locked"))

	_, err := svc.GetTotalProjectedWealth(context.Background(), nil)
	assert.EqualError(t, err, "locked")
}

func TestProjectInvestments(t *testing.T) {
	svc, mockTable, _ := newInvestmentTestService(t)

	mockTable.EXPECT().List(mock.Anything).Return(storedInvestments(), nil)

	projected, err := svc.ProjectInvestments(context.Background(), decimal.Zero)
	require.NoError(t, err)
	require.Len(t, projected, 3)
	assert.Equal(t, 12, projected[0].MonthsRemaining)
	assert.Equal(t, "11047.13", projected[0].FutureValue.StringFixed(2))
	assert.Equal(t, 0, projected[2].MonthsRemaining)
	assert.Equal(t, "5000.00", projected[2].FutureValue.StringFixed(2))
}
