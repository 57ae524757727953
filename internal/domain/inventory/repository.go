package inventory

import (
	"context"

	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryEntryRepository defines persistence operations for inventory entries.
//
// Quantity changes on persisted entries go through DecrementQuantity and
// IncrementQuantity, which issue a single conditional UPDATE so that a
// concurrent check-and-decrement on the same row cannot oversell: the
// quantity guard lives in the statement's WHERE clause, not in application
// code.
type InventoryEntryRepository interface {
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*InventoryEntry, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]InventoryEntry, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	// Create inserts a new entry; a duplicate (tenant, product) pair yields
	// ALREADY_EXISTS. Callers must use IncrementQuantity for existing entries.
	Create(ctx context.Context, entry *InventoryEntry) error
	// DecrementQuantity atomically subtracts quantity and recomputes the
	// valuation at unitCost, guarded by quantity_on_hand >= quantity.
	// Returns false when no row matched (missing entry or not enough stock).
	DecrementQuantity(ctx context.Context, tenantID, productID uuid.UUID, quantity int64, unitCost decimal.Decimal) (bool, error)
	// IncrementQuantity atomically adds quantity and recomputes the valuation
	// at unitCost. Returns false when the entry does not exist.
	IncrementQuantity(ctx context.Context, tenantID, productID uuid.UUID, quantity int64, unitCost decimal.Decimal) (bool, error)
	// RevalueForCostChange recomputes stock_valuation for the product's entry
	// after a manufacturing cost change.
	RevalueForCostChange(ctx context.Context, tenantID, productID uuid.UUID, unitCost decimal.Decimal) error
	DeleteForProduct(ctx context.Context, tenantID, productID uuid.UUID) error
}
