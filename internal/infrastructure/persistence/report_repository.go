package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/emprendia/backend/internal/domain/report"
	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMonthlyReportRepository implements MonthlyReportRepository using GORM.
// Accumulation uses INSERT ... ON CONFLICT DO UPDATE so concurrent deltas on
// the same period row are never lost.
type GormMonthlyReportRepository struct {
	db *gorm.DB
}

// NewGormMonthlyReportRepository creates a new GormMonthlyReportRepository
func NewGormMonthlyReportRepository(db *gorm.DB) *GormMonthlyReportRepository {
	return &GormMonthlyReportRepository{db: db}
}

// FindForTenant finds a tenant's reports ordered by year then month
func (r *GormMonthlyReportRepository) FindForTenant(ctx context.Context, tenantID uuid.UUID, year *int) ([]report.MonthlyFinancialReport, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("year ASC, month ASC")
	if year != nil {
		query = query.Where("year = ?", *year)
	}

	var rows []report.MonthlyFinancialReport
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByPeriod finds the report for one period
func (r *GormMonthlyReportRepository) FindByPeriod(ctx context.Context, tenantID uuid.UUID, year, month int) (*report.MonthlyFinancialReport, error) {
	var row report.MonthlyFinancialReport
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND year = ? AND month = ?", tenantID, year, month).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// AccumulateExpense adds expenseDelta to the period's expense total,
// inserting the row if needed.
func (r *GormMonthlyReportRepository) AccumulateExpense(ctx context.Context, tenantID uuid.UUID, year, month int, expenseDelta decimal.Decimal) error {
	return r.accumulate(ctx, tenantID, year, month, expenseDelta, decimal.Zero,
		"total_manufacturing_expense")
}

// AccumulateRevenue adds revenueDelta to the period's revenue total,
// inserting the row if needed.
func (r *GormMonthlyReportRepository) AccumulateRevenue(ctx context.Context, tenantID uuid.UUID, year, month int, revenueDelta decimal.Decimal) error {
	return r.accumulate(ctx, tenantID, year, month, decimal.Zero, revenueDelta,
		"total_sales_revenue")
}

func (r *GormMonthlyReportRepository) accumulate(ctx context.Context, tenantID uuid.UUID, year, month int, expenseDelta, revenueDelta decimal.Decimal, column string) error {
	if expenseDelta.IsNegative() || revenueDelta.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Accumulated amounts cannot be negative")
	}

	row, err := report.NewMonthlyFinancialReport(tenantID, year, month)
	if err != nil {
		return err
	}
	row.TotalManufacturingExpense = expenseDelta
	row.TotalSalesRevenue = revenueDelta

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			column:       gorm.Expr(column + " + excluded." + column),
			"version":    gorm.Expr("monthly_financial_reports.version + 1"),
			"updated_at": time.Now().UTC(),
		}),
	}).Create(row).Error
}

var _ report.MonthlyReportRepository = (*GormMonthlyReportRepository)(nil)
