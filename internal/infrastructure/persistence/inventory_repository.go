package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/emprendia/backend/internal/domain/inventory"
	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInventoryEntryRepository implements InventoryEntryRepository using GORM.
// The quantity mutators are single conditional UPDATE statements; the guard
// lives in the WHERE clause so concurrent decrements cannot oversell.
type GormInventoryEntryRepository struct {
	db *gorm.DB
}

// NewGormInventoryEntryRepository creates a new GormInventoryEntryRepository
func NewGormInventoryEntryRepository(db *gorm.DB) *GormInventoryEntryRepository {
	return &GormInventoryEntryRepository{db: db}
}

// FindByProduct finds the entry for a product within a tenant
func (r *GormInventoryEntryRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*inventory.InventoryEntry, error) {
	var entry inventory.InventoryEntry
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindAllForTenant finds all entries for a tenant
func (r *GormInventoryEntryRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]inventory.InventoryEntry, error) {
	var entries []inventory.InventoryEntry
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.InventoryEntry{}).Where("tenant_id = ?", tenantID), filter)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// CountForTenant counts entries for a tenant
func (r *GormInventoryEntryRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, _ shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.InventoryEntry{}).
		Where("tenant_id = ?", tenantID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a new entry; a duplicate (tenant, product) pair yields ALREADY_EXISTS
func (r *GormInventoryEntryRepository) Create(ctx context.Context, entry *inventory.InventoryEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.NewDomainError("ALREADY_EXISTS", "An inventory entry for this product already exists")
		}
		return err
	}
	return nil
}

// DecrementQuantity atomically subtracts quantity and recomputes the
// valuation at unitCost, guarded by quantity_on_hand >= quantity. Returns
// false when no row matched.
func (r *GormInventoryEntryRepository) DecrementQuantity(ctx context.Context, tenantID, productID uuid.UUID, quantity int64, unitCost decimal.Decimal) (bool, error) {
	result := r.db.WithContext(ctx).Model(&inventory.InventoryEntry{}).
		Where("tenant_id = ? AND product_id = ? AND quantity_on_hand >= ?", tenantID, productID, quantity).
		Updates(map[string]interface{}{
			"quantity_on_hand": gorm.Expr("quantity_on_hand - ?", quantity),
			"stock_valuation":  gorm.Expr("(quantity_on_hand - ?) * ?", quantity, unitCost),
			"version":          gorm.Expr("version + 1"),
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IncrementQuantity atomically adds quantity and recomputes the valuation at
// unitCost. Returns false when the entry does not exist.
func (r *GormInventoryEntryRepository) IncrementQuantity(ctx context.Context, tenantID, productID uuid.UUID, quantity int64, unitCost decimal.Decimal) (bool, error) {
	result := r.db.WithContext(ctx).Model(&inventory.InventoryEntry{}).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Updates(map[string]interface{}{
			"quantity_on_hand": gorm.Expr("quantity_on_hand + ?", quantity),
			"stock_valuation":  gorm.Expr("(quantity_on_hand + ?) * ?", quantity, unitCost),
			"version":          gorm.Expr("version + 1"),
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RevalueForCostChange recomputes stock_valuation for the product's entry
func (r *GormInventoryEntryRepository) RevalueForCostChange(ctx context.Context, tenantID, productID uuid.UUID, unitCost decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&inventory.InventoryEntry{}).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Updates(map[string]interface{}{
			"stock_valuation": gorm.Expr("quantity_on_hand * ?", unitCost),
			"version":         gorm.Expr("version + 1"),
			"updated_at":      time.Now().UTC(),
		}).Error
}

// DeleteForProduct removes the entry for a product
func (r *GormInventoryEntryRepository) DeleteForProduct(ctx context.Context, tenantID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Delete(&inventory.InventoryEntry{}).Error
}

func (r *GormInventoryEntryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("updated_at DESC")
	}

	return query
}

var _ inventory.InventoryEntryRepository = (*GormInventoryEntryRepository)(nil)
