package report

import (
	"time"

	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyFinancialReport accumulates a tenant's manufacturing expense and
// sales revenue for one calendar month. One row per (tenant, year, month).
//
// Both totals are monotonic: deltas only ever add. Voiding a sale restores
// stock but does not subtract its revenue here.
type MonthlyFinancialReport struct {
	shared.BaseAggregateRoot
	TenantID                  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_monthly_report_tenant_period,priority:1"`
	Year                      int             `gorm:"not null;uniqueIndex:idx_monthly_report_tenant_period,priority:2"`
	Month                     int             `gorm:"not null;uniqueIndex:idx_monthly_report_tenant_period,priority:3"`
	TotalManufacturingExpense decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TotalSalesRevenue         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (MonthlyFinancialReport) TableName() string {
	return "monthly_financial_reports"
}

// NewMonthlyFinancialReport creates a zeroed report for the given period
func NewMonthlyFinancialReport(tenantID uuid.UUID, year, month int) (*MonthlyFinancialReport, error) {
	if month < 1 || month > 12 {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Month must be between 1 and 12")
	}
	if year < 1 {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Year must be positive")
	}

	return &MonthlyFinancialReport{
		BaseAggregateRoot:         shared.NewBaseAggregateRoot(),
		TenantID:                  tenantID,
		Year:                      year,
		Month:                     month,
		TotalManufacturingExpense: decimal.Zero,
		TotalSalesRevenue:         decimal.Zero,
	}, nil
}

// AddExpense adds a manufacturing expense to the month's total
func (r *MonthlyFinancialReport) AddExpense(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
	}

	r.TotalManufacturingExpense = r.TotalManufacturingExpense.Add(amount)
	r.touch()
	return nil
}

// AddRevenue adds sales revenue to the month's total
func (r *MonthlyFinancialReport) AddRevenue(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Revenue amount cannot be negative")
	}

	r.TotalSalesRevenue = r.TotalSalesRevenue.Add(amount)
	r.touch()
	return nil
}

func (r *MonthlyFinancialReport) touch() {
	r.UpdatedAt = time.Now().UTC()
	r.IncrementVersion()
}

// PeriodOf returns the (year, month) report period a timestamp falls into
func PeriodOf(t time.Time) (year, month int) {
	u := t.UTC()
	return u.Year(), int(u.Month())
}
