package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/morningmoney/internal/operator/actions"
	"github.com/carson-networks/morningmoney/internal/projection"
)

var fixedNow = time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newMockOperator(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockOperator {
	op := &mockOperator{}
	op.Test(t)
	t.Cleanup(func() { op.AssertExpectations(t) })
	return op
}

func fixedProjector() *projection.Projector {
	return &projection.Projector{Now: func() time.Time { return fixedNow }}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}
