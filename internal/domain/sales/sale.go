package sales

import (
	"time"

	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a committed sale for a tenant. It owns its line items; TotalAmount
// always equals the sum of quantity times unit price over the lines.
type Sale struct {
	shared.TenantAggregateRoot
	OccurredAt  time.Time       `gorm:"not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Lines       []SaleLineItem  `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleLineItem records one product position of a sale. UnitPrice and
// ProductName are snapshots taken at sale time; later catalog edits never
// rewrite committed sales.
type SaleLineItem struct {
	shared.BaseEntity
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (SaleLineItem) TableName() string {
	return "sale_line_items"
}

// LineTotal returns quantity times the snapshotted unit price
func (l *SaleLineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// NewSale creates an empty sale for a tenant, timestamped now
func NewSale(tenantID uuid.UUID) *Sale {
	return &Sale{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		OccurredAt:          time.Now().UTC(),
		TotalAmount:         decimal.Zero,
	}
}

// AddLine appends a line item with price and name snapshots and re-totals
// the sale.
func (s *Sale) AddLine(productID uuid.UUID, productName string, quantity int64, unitPrice decimal.Decimal) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	line := SaleLineItem{
		BaseEntity:  shared.NewBaseEntity(),
		SaleID:      s.ID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	s.Lines = append(s.Lines, line)
	s.TotalAmount = s.TotalAmount.Add(line.LineTotal())
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// IsEmpty reports whether the sale has no line items
func (s *Sale) IsEmpty() bool {
	return len(s.Lines) == 0
}
