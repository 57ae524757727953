package inventory

import (
	"time"

	"github.com/emprendia/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestockRequest is the input for adding stock to an existing entry
type RestockRequest struct {
	Quantity int64 `json:"quantity" binding:"required,min=1"`
}

// CreateEntryRequest is the input for creating a standalone inventory entry
type CreateEntryRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"min=0"`
}

// EntryListFilter carries pagination for inventory listings
type EntryListFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// EntryResponse is the output representation of an inventory entry
type EntryResponse struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      uuid.UUID       `json:"product_id"`
	QuantityOnHand int64           `json:"quantity_on_hand"`
	StockValuation decimal.Decimal `json:"stock_valuation"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToEntryResponse converts a domain entry to its response representation
func ToEntryResponse(entry *inventory.InventoryEntry) EntryResponse {
	return EntryResponse{
		ID:             entry.ID,
		ProductID:      entry.ProductID,
		QuantityOnHand: entry.QuantityOnHand,
		StockValuation: entry.StockValuation,
		UpdatedAt:      entry.UpdatedAt,
	}
}
