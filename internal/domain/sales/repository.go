package sales

import (
	"context"

	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SaleRepository defines persistence operations for sales.
// Reads always load the line items alongside the sale.
type SaleRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Sale, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Sale, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, sale *Sale) error
	// DeleteForTenant removes a sale; line items cascade.
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	// ExistsForProduct reports whether any line item references the product.
	ExistsForProduct(ctx context.Context, tenantID, productID uuid.UUID) (bool, error)
}
