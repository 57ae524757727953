package catalog

import (
	"time"

	"github.com/emprendia/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the input for creating a product with its
// initial stock.
type CreateProductRequest struct {
	Name              string          `json:"name" binding:"required,max=200"`
	Description       string          `json:"description"`
	ManufacturingCost decimal.Decimal `json:"manufacturing_cost"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	InitialQuantity   int64           `json:"initial_quantity" binding:"min=0"`
}

// UpdateProductRequest carries the updatable product fields. Nil fields are
// left unchanged.
type UpdateProductRequest struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	ManufacturingCost *decimal.Decimal `json:"manufacturing_cost"`
	SalePrice         *decimal.Decimal `json:"sale_price"`
}

// ProductListFilter carries pagination for product listings
type ProductListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Name     string `form:"name"`
}

// ProductResponse is the output representation of a product
type ProductResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	ManufacturingCost decimal.Decimal `json:"manufacturing_cost"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to its response representation
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                product.ID,
		Name:              product.Name,
		Description:       product.Description,
		ManufacturingCost: product.ManufacturingCost,
		SalePrice:         product.SalePrice,
		CreatedAt:         product.CreatedAt,
		UpdatedAt:         product.UpdatedAt,
	}
}
