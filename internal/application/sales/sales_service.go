package sales

import (
	"context"
	"errors"

	"github.com/emprendia/backend/internal/domain/report"
	"github.com/emprendia/backend/internal/domain/sales"
	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SalesService handles sale registration and voiding. Every multi-write
// operation runs inside a single transaction scope so a failure at any step
// leaves stock, sales and monthly reports exactly as they were.
type SalesService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewSalesService creates a new SalesService
func NewSalesService(scope TransactionScope, logger *zap.Logger) *SalesService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesService{
		scope:  scope,
		logger: logger,
	}
}

// RegisterSale atomically validates stock, decrements inventory, records the
// sale with price snapshots and accumulates the month's sales revenue.
// Stock is taken per line via a conditional UPDATE, so two concurrent sales
// of the last unit cannot both succeed.
func (s *SalesService) RegisterSale(ctx context.Context, tenantID uuid.UUID, req RegisterSaleRequest) (*SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sale must contain at least one item")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_INPUT", "Item quantity must be at least 1")
		}
	}

	var response *SaleResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.TenantRepo().Exists(ctx, tenantID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.ErrUnauthorized
		}

		sale := sales.NewSale(tenantID)
		for _, item := range req.Items {
			product, err := repos.ProductRepo().FindByIDForTenant(ctx, tenantID, item.ProductID)
			if err != nil {
				return err
			}

			matched, err := repos.InventoryRepo().DecrementQuantity(
				ctx, tenantID, product.ID, item.Quantity, product.ManufacturingCost)
			if err != nil {
				return err
			}
			if !matched {
				// Zero rows matched: either no entry exists for the product
				// or the guarded quantity check failed. Re-read to tell the
				// two apart.
				entry, err := repos.InventoryRepo().FindByProduct(ctx, tenantID, product.ID)
				if err != nil {
					if errors.Is(err, shared.ErrNotFound) {
						return shared.NewDomainError("NOT_FOUND", "No inventory entry exists for product "+product.Name)
					}
					return err
				}
				return shared.NewInsufficientStockError(product.Name, entry.QuantityOnHand)
			}

			if err := sale.AddLine(product.ID, product.Name, item.Quantity, product.SalePrice); err != nil {
				return err
			}
		}

		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}

		year, month := report.PeriodOf(sale.OccurredAt)
		if err := repos.ReportRepo().AccumulateRevenue(ctx, tenantID, year, month, sale.TotalAmount); err != nil {
			return err
		}

		resp := ToSaleResponse(sale)
		response = &resp
		return nil
	})
	if err != nil {
		return nil, shared.WrapPersistence(err)
	}

	s.logger.Info("sale registered",
		zap.String("tenant_id", tenantID.String()),
		zap.String("sale_id", response.ID.String()),
		zap.String("total_amount", response.TotalAmount.String()),
		zap.Int("line_count", len(response.Lines)))
	return response, nil
}

// VoidSale deletes a sale and re-credits the sold quantities back into
// inventory. Monthly revenue already accumulated by the sale is deliberately
// left untouched. Missing products or inventory entries are logged and
// skipped so a partially degraded catalog never blocks the void.
func (s *SalesService) VoidSale(ctx context.Context, tenantID, saleID uuid.UUID) error {
	return shared.WrapPersistence(s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err := repos.SaleRepo().FindByIDForTenant(ctx, tenantID, saleID)
		if err != nil {
			return err
		}

		for _, line := range sale.Lines {
			product, err := repos.ProductRepo().FindByIDForTenant(ctx, tenantID, line.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					s.logger.Warn("voiding sale: product no longer exists, stock not re-credited",
						zap.String("sale_id", saleID.String()),
						zap.String("product_id", line.ProductID.String()))
					continue
				}
				return err
			}

			matched, err := repos.InventoryRepo().IncrementQuantity(
				ctx, tenantID, line.ProductID, line.Quantity, product.ManufacturingCost)
			if err != nil {
				return err
			}
			if !matched {
				s.logger.Warn("voiding sale: inventory entry missing, stock not re-credited",
					zap.String("sale_id", saleID.String()),
					zap.String("product_id", line.ProductID.String()))
			}
		}

		if err := repos.SaleRepo().DeleteForTenant(ctx, tenantID, saleID); err != nil {
			return err
		}

		s.logger.Info("sale voided",
			zap.String("tenant_id", tenantID.String()),
			zap.String("sale_id", saleID.String()))
		return nil
	}))
}

// GetByID retrieves a sale with its lines
func (s *SalesService) GetByID(ctx context.Context, tenantID, saleID uuid.UUID) (*SaleResponse, error) {
	var response *SaleResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err := repos.SaleRepo().FindByIDForTenant(ctx, tenantID, saleID)
		if err != nil {
			return err
		}
		resp := ToSaleResponse(sale)
		response = &resp
		return nil
	})
	if err != nil {
		return nil, shared.WrapPersistence(err)
	}
	return response, nil
}

// List retrieves sales for a tenant, newest first, paginated
func (s *SalesService) List(ctx context.Context, tenantID uuid.UUID, filter SaleListFilter) ([]SaleResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "occurred_at",
		OrderDir: "desc",
	}

	var (
		items []sales.Sale
		total int64
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		items, err = repos.SaleRepo().FindAllForTenant(ctx, tenantID, domainFilter)
		if err != nil {
			return err
		}
		total, err = repos.SaleRepo().CountForTenant(ctx, tenantID, domainFilter)
		return err
	})
	if err != nil {
		return nil, 0, shared.WrapPersistence(err)
	}

	responses := make([]SaleResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToSaleResponse(&items[i]))
	}
	return responses, total, nil
}
