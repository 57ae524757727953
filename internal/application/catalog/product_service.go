package catalog

import (
	"context"

	"github.com/emprendia/backend/internal/domain/catalog"
	"github.com/emprendia/backend/internal/domain/inventory"
	"github.com/emprendia/backend/internal/domain/report"
	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductService handles catalog operations. Creation and cost changes span
// product, inventory and monthly report writes, so they run inside a
// transaction scope.
type ProductService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(scope TransactionScope, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		scope:  scope,
		logger: logger,
	}
}

// Create atomically creates a product, its inventory entry with the initial
// quantity, and accumulates the manufacturing expense (quantity times cost)
// on the current month's report.
func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	if req.InitialQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Initial quantity cannot be negative")
	}

	var response *ProductResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := catalog.NewProduct(tenantID, req.Name, req.Description, req.ManufacturingCost, req.SalePrice)
		if err != nil {
			return err
		}
		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}

		entry, err := inventory.NewInventoryEntry(tenantID, product.ID, req.InitialQuantity, product.ManufacturingCost)
		if err != nil {
			return err
		}
		if err := repos.InventoryRepo().Create(ctx, entry); err != nil {
			return err
		}

		expense := product.ManufacturingCost.Mul(decimal.NewFromInt(req.InitialQuantity))
		year, month := report.PeriodOf(product.CreatedAt)
		if err := repos.ReportRepo().AccumulateExpense(ctx, tenantID, year, month, expense); err != nil {
			return err
		}

		resp := ToProductResponse(product)
		response = &resp
		return nil
	})
	if err != nil {
		return nil, shared.WrapPersistence(err)
	}

	s.logger.Info("product created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("product_id", response.ID.String()),
		zap.Int64("initial_quantity", req.InitialQuantity))
	return response, nil
}

// Update applies field changes to a product. A manufacturing cost change
// revalues the product's inventory entry within the same transaction;
// expense already recorded on past monthly reports stays as it was.
func (s *ProductService) Update(ctx context.Context, tenantID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	var response *ProductResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByIDForTenant(ctx, tenantID, productID)
		if err != nil {
			return err
		}

		if req.Name != nil {
			description := product.Description
			if req.Description != nil {
				description = *req.Description
			}
			if err := product.Rename(*req.Name, description); err != nil {
				return err
			}
		} else if req.Description != nil {
			if err := product.Rename(product.Name, *req.Description); err != nil {
				return err
			}
		}

		if req.SalePrice != nil {
			if err := product.SetSalePrice(*req.SalePrice); err != nil {
				return err
			}
		}

		costChanged := false
		if req.ManufacturingCost != nil {
			costChanged, err = product.SetManufacturingCost(*req.ManufacturingCost)
			if err != nil {
				return err
			}
		}

		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}

		if costChanged {
			if err := repos.InventoryRepo().RevalueForCostChange(ctx, tenantID, productID, product.ManufacturingCost); err != nil {
				return err
			}
			s.logger.Info("manufacturing cost changed, stock revalued",
				zap.String("tenant_id", tenantID.String()),
				zap.String("product_id", productID.String()),
				zap.String("new_cost", product.ManufacturingCost.String()))
		}

		resp := ToProductResponse(product)
		response = &resp
		return nil
	})
	if err != nil {
		return nil, shared.WrapPersistence(err)
	}
	return response, nil
}

// GetByID retrieves a product
func (s *ProductService) GetByID(ctx context.Context, tenantID, productID uuid.UUID) (*ProductResponse, error) {
	var response *ProductResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByIDForTenant(ctx, tenantID, productID)
		if err != nil {
			return err
		}
		resp := ToProductResponse(product)
		response = &resp
		return nil
	})
	if err != nil {
		return nil, shared.WrapPersistence(err)
	}
	return response, nil
}

// List retrieves products for a tenant, paginated
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, filter ProductListFilter) ([]ProductResponse, int64, error) {
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
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
	if filter.Name != "" {
		domainFilter.Filters = map[string]interface{}{"name": filter.Name}
	}

	var (
		items []catalog.Product
		total int64
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		items, err = repos.ProductRepo().FindAllForTenant(ctx, tenantID, domainFilter)
		if err != nil {
			return err
		}
		total, err = repos.ProductRepo().CountForTenant(ctx, tenantID, domainFilter)
		return err
	})
	if err != nil {
		return nil, 0, shared.WrapPersistence(err)
	}

	responses := make([]ProductResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToProductResponse(&items[i]))
	}
	return responses, total, nil
}

// Delete removes a product and its inventory entry. Products referenced by
// committed sale line items cannot be deleted.
func (s *ProductService) Delete(ctx context.Context, tenantID, productID uuid.UUID) error {
	return shared.WrapPersistence(s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.ProductRepo().FindByIDForTenant(ctx, tenantID, productID); err != nil {
			return err
		}

		referenced, err := repos.SaleRepo().ExistsForProduct(ctx, tenantID, productID)
		if err != nil {
			return err
		}
		if referenced {
			return shared.NewDomainError("CONFLICT", "Product is referenced by existing sales and cannot be deleted")
		}

		if err := repos.InventoryRepo().DeleteForProduct(ctx, tenantID, productID); err != nil {
			return err
		}
		return repos.ProductRepo().DeleteForTenant(ctx, tenantID, productID)
	}))
}
