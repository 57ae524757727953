package catalog

import (
	"strings"
	"time"

	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents an item a tenant manufactures and sells. Manufacturing
// cost drives inventory valuation; sale price is snapshotted onto sale line
// items at sale time so later price changes never rewrite history.
type Product struct {
	shared.TenantAggregateRoot
	Name              string          `gorm:"type:varchar(200);not null"`
	Description       string          `gorm:"type:text"`
	ManufacturingCost decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	SalePrice         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product for a tenant
func NewProduct(tenantID uuid.UUID, name, description string, manufacturingCost, salePrice decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if manufacturingCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Manufacturing cost cannot be negative")
	}
	if salePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}

	return &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Description:         strings.TrimSpace(description),
		ManufacturingCost:   manufacturingCost,
		SalePrice:           salePrice,
	}, nil
}

// Rename changes the product name and description
func (p *Product) Rename(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}

	p.Name = name
	p.Description = strings.TrimSpace(description)
	p.touch()
	return nil
}

// SetManufacturingCost updates the cost and reports whether it changed.
// A change obligates the caller to revalue the product's inventory entries
// within the same transaction.
func (p *Product) SetManufacturingCost(cost decimal.Decimal) (changed bool, err error) {
	if cost.IsNegative() {
		return false, shared.NewDomainError("INVALID_COST", "Manufacturing cost cannot be negative")
	}
	if p.ManufacturingCost.Equal(cost) {
		return false, nil
	}

	p.ManufacturingCost = cost
	p.touch()
	return true, nil
}

// SetSalePrice updates the sale price. Already-committed sale line items keep
// the price snapshotted when they were created.
func (p *Product) SetSalePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}

	p.SalePrice = price
	p.touch()
	return nil
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now().UTC()
	p.IncrementVersion()
}
