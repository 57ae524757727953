package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyReportRepository defines persistence operations for monthly reports.
type MonthlyReportRepository interface {
	FindForTenant(ctx context.Context, tenantID uuid.UUID, year *int) ([]MonthlyFinancialReport, error)
	FindByPeriod(ctx context.Context, tenantID uuid.UUID, year, month int) (*MonthlyFinancialReport, error)
	// AccumulateExpense adds expenseDelta to the period's expense total,
	// inserting the row if it does not exist yet. Implementations use an
	// insert-or-accumulate upsert so concurrent deltas are never lost.
	AccumulateExpense(ctx context.Context, tenantID uuid.UUID, year, month int, expenseDelta decimal.Decimal) error
	// AccumulateRevenue adds revenueDelta to the period's revenue total,
	// inserting the row if it does not exist yet.
	AccumulateRevenue(ctx context.Context, tenantID uuid.UUID, year, month int, revenueDelta decimal.Decimal) error
}
