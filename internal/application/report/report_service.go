package report

import (
	"context"

	"github.com/emprendia/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService exposes read access to the monthly financial rollups.
// The rollups themselves are written from inside the sales and catalog
// transactions.
type ReportService struct {
	reportRepo report.MonthlyReportRepository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo report.MonthlyReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// MonthlyReportResponse is the output representation of a monthly report
type MonthlyReportResponse struct {
	ID                        uuid.UUID       `json:"id"`
	Year                      int             `json:"year"`
	Month                     int             `json:"month"`
	TotalManufacturingExpense decimal.Decimal `json:"total_manufacturing_expense"`
	TotalSalesRevenue         decimal.Decimal `json:"total_sales_revenue"`
}

// GetMonthly retrieves a tenant's monthly reports ordered by year then month.
// When year is non-nil only that year's rows are returned.
func (s *ReportService) GetMonthly(ctx context.Context, tenantID uuid.UUID, year *int) ([]MonthlyReportResponse, error) {
	rows, err := s.reportRepo.FindForTenant(ctx, tenantID, year)
	if err != nil {
		return nil, err
	}

	responses := make([]MonthlyReportResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, MonthlyReportResponse{
			ID:                        rows[i].ID,
			Year:                      rows[i].Year,
			Month:                     rows[i].Month,
			TotalManufacturingExpense: rows[i].TotalManufacturingExpense,
			TotalSalesRevenue:         rows[i].TotalSalesRevenue,
		})
	}
	return responses, nil
}
