package investment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TableName is the investments table.
const TableName = "investments"

const updatedAtLayout = "2006-01-02T15:04:05Z"

// Investment represents a named projection account.
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

// InvestmentSave is the input for the add-or-update-by-name operation.
type InvestmentSave struct {
	Name                 string
	CurrentValue         decimal.Decimal
	MonthlyContribution  decimal.Decimal
	ExpectedAnnualReturn decimal.Decimal
	TargetYear           int
	Notes                string
}

// IInvestmentTable defines the investment read operations the services depend on.
//
//go:generate mockery --name IInvestmentTable --inpackage --with-expecter --filename mock_IInvestmentTable.go --structname MockIInvestmentTable
type IInvestmentTable interface {
	FindByID(ctx context.Context, id int64) (*Investment, error)
	FindByName(ctx context.Context, name string) (*Investment, error)
	List(ctx context.Context) ([]*Investment, error)
}

var columns = []any{
	"id", "name", "current_value", "monthly_contribution",
	"expected_annual_return", "target_year", "notes", "updated_at",
}

type investmentRow struct {
	ID                   int64           `db:"id"`
	Name                 string          `db:"name"`
	CurrentValue         decimal.Decimal `db:"current_value"`
	MonthlyContribution  decimal.Decimal `db:"monthly_contribution"`
	ExpectedAnnualReturn decimal.Decimal `db:"expected_annual_return"`
	TargetYear           int64           `db:"target_year"`
	Notes                string          `db:"notes"`
	UpdatedAt            string          `db:"updated_at"`
}

func rowToInvestment(row investmentRow) *Investment {
	updatedAt, _ := time.Parse(updatedAtLayout, row.UpdatedAt)
	return &Investment{
		ID:                   row.ID,
		Name:                 row.Name,
		CurrentValue:         row.CurrentValue,
		MonthlyContribution:  row.MonthlyContribution,
		ExpectedAnnualReturn: row.ExpectedAnnualReturn,
		TargetYear:           int(row.TargetYear),
		Notes:                row.Notes,
		UpdatedAt:            updatedAt,
	}
}
