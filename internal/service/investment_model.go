package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/morningmoney/internal/projection"
	"github.com/carson-networks/morningmoney/internal/storage/investment"
)

// Defaults applied by callers when an investment field is not given.
const DefaultTargetYear = 2050

var (
	DefaultMonthlyContribution  = decimal.Zero
	DefaultExpectedAnnualReturn = decimal.RequireFromString("10.00")
)

// Investment represents a named investment account in the service layer.
type Investment struct {
	ID                   int64
	Name                 string
	CurrentValue         decimal.Decimal
	MonthlyContribution  decimal.Decimal
	ExpectedAnnualReturn decimal.Decimal
	TargetYear           int
	Notes                string
	UpdatedAt            time.Time
}

// InvestmentSave is the input of AddOrUpdateInvestment. Name is the key.
type InvestmentSave struct {
	Name                 string
	CurrentValue         decimal.Decimal
	MonthlyContribution  decimal.Decimal
	ExpectedAnnualReturn decimal.Decimal
	TargetYear           int
	Notes                string
}

// ProjectedInvestment is an investment with its projection at its own target year.
type ProjectedInvestment struct {
	Investment
	MonthsRemaining int
	FutureValue     decimal.Decimal
}

func (i Investment) projectionInputs() projection.Inputs {
	return projection.Inputs{
		CurrentValue:         i.CurrentValue,
		MonthlyContribution:  i.MonthlyContribution,
		ExpectedAnnualReturn: i.ExpectedAnnualReturn,
		TargetYear:           i.TargetYear,
	}
}

func investmentFromStorage(row *investment.Investment) Investment {
	return Investment{
		ID:                   row.ID,
		Name:                 row.Name,
		CurrentValue:         row.CurrentValue,
		MonthlyContribution:  row.MonthlyContribution,
		ExpectedAnnualReturn: row.ExpectedAnnualReturn,
		TargetYear:           row.TargetYear,
		Notes:                row.Notes,
		UpdatedAt:            row.UpdatedAt,
	}
}

func (s InvestmentSave) toStorage() *investment.InvestmentSave {
	return &investment.InvestmentSave{
		Name:                 s.Name,
		CurrentValue:         s.CurrentValue,
		MonthlyContribution:  s.MonthlyContribution,
		ExpectedAnnualReturn: s.ExpectedAnnualReturn,
		TargetYear:           s.TargetYear,
		Notes:                s.Notes,
	}
}
