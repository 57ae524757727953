package inventory

import (
	"time"

	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryEntry tracks the on-hand stock of one product for one tenant.
// The (TenantID, ProductID) pair is unique: a tenant holds a single
// inventory, so each product has at most one entry.
//
// Invariants: QuantityOnHand never goes negative, and StockValuation always
// equals QuantityOnHand times the product's current manufacturing cost
// immediately after any write touching either factor.
type InventoryEntry struct {
	shared.BaseAggregateRoot
	TenantID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_entry_tenant_product,priority:1"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_entry_tenant_product,priority:2"`
	QuantityOnHand int64           `gorm:"not null;default:0"`
	StockValuation decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (InventoryEntry) TableName() string {
	return "inventory_entries"
}

// NewInventoryEntry creates an entry with an initial quantity, valued at the
// product's manufacturing cost.
func NewInventoryEntry(tenantID, productID uuid.UUID, initialQuantity int64, unitCost decimal.Decimal) (*InventoryEntry, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if initialQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Initial quantity cannot be negative")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	return &InventoryEntry{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TenantID:          tenantID,
		ProductID:         productID,
		QuantityOnHand:    initialQuantity,
		StockValuation:    valuation(initialQuantity, unitCost),
	}, nil
}

// Adjust applies a quantity delta and recomputes the valuation at the given
// unit cost. This is the only quantity mutator; a delta that would drive the
// quantity negative is rejected with INSUFFICIENT_STOCK and leaves the entry
// untouched.
func (e *InventoryEntry) Adjust(delta int64, unitCost decimal.Decimal) error {
	result := e.QuantityOnHand + delta
	if result < 0 {
		return shared.ErrInsufficientStock
	}

	e.QuantityOnHand = result
	e.StockValuation = valuation(result, unitCost)
	e.UpdatedAt = time.Now().UTC()
	e.IncrementVersion()
	return nil
}

// Revalue recomputes the valuation after a manufacturing cost change without
// touching the quantity.
func (e *InventoryEntry) Revalue(unitCost decimal.Decimal) error {
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	e.StockValuation = valuation(e.QuantityOnHand, unitCost)
	e.UpdatedAt = time.Now().UTC()
	e.IncrementVersion()
	return nil
}

// CanFulfill reports whether the requested quantity is available
func (e *InventoryEntry) CanFulfill(quantity int64) bool {
	return quantity >= 0 && e.QuantityOnHand >= quantity
}

func valuation(quantity int64, unitCost decimal.Decimal) decimal.Decimal {
	return unitCost.Mul(decimal.NewFromInt(quantity))
}
