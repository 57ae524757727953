package sales

import (
	"time"

	"github.com/emprendia/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterSaleRequest is the input for registering a sale
type RegisterSaleRequest struct {
	Items []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleItemRequest is one cart position of a sale request
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,min=1"`
}

// SaleListFilter carries pagination for sale listings
type SaleListFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// SaleLineResponse is one line of a sale response
type SaleLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// SaleResponse is the output representation of a sale
type SaleResponse struct {
	ID          uuid.UUID          `json:"id"`
	OccurredAt  time.Time          `json:"occurred_at"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Lines       []SaleLineResponse `json:"lines"`
	CreatedAt   time.Time          `json:"created_at"`
}

// ToSaleResponse converts a domain sale to its response representation
func ToSaleResponse(sale *sales.Sale) SaleResponse {
	lines := make([]SaleLineResponse, 0, len(sale.Lines))
	for _, line := range sale.Lines {
		lines = append(lines, SaleLineResponse{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal(),
		})
	}
	return SaleResponse{
		ID:          sale.ID,
		OccurredAt:  sale.OccurredAt,
		TotalAmount: sale.TotalAmount,
		Lines:       lines,
		CreatedAt:   sale.CreatedAt,
	}
}
