package persistence

import (
	"context"

	appsales "github.com/emprendia/backend/internal/application/sales"
	"github.com/emprendia/backend/internal/domain/catalog"
	"github.com/emprendia/backend/internal/domain/identity"
	"github.com/emprendia/backend/internal/domain/inventory"
	"github.com/emprendia/backend/internal/domain/report"
	"github.com/emprendia/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormSaleTransactionScope implements the sales TransactionScope using GORM
// transactions. Every repository handed to the callback shares the same tx,
// so the stock decrement, the sale insert and the report upsert commit or
// roll back together.
type GormSaleTransactionScope struct {
	db *gorm.DB
}

// NewGormSaleTransactionScope creates a new GormSaleTransactionScope
func NewGormSaleTransactionScope(db *gorm.DB) *GormSaleTransactionScope {
	return &GormSaleTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormSaleTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSaleTransactionalRepositories{tx: tx})
	})
}

type gormSaleTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormSaleTransactionalRepositories) TenantRepo() identity.TenantRepository {
	return NewGormTenantRepository(r.tx)
}

func (r *gormSaleTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormSaleTransactionalRepositories) InventoryRepo() inventory.InventoryEntryRepository {
	return NewGormInventoryEntryRepository(r.tx)
}

func (r *gormSaleTransactionalRepositories) SaleRepo() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

func (r *gormSaleTransactionalRepositories) ReportRepo() report.MonthlyReportRepository {
	return NewGormMonthlyReportRepository(r.tx)
}

var _ appsales.TransactionScope = (*GormSaleTransactionScope)(nil)
var _ appsales.TransactionalRepositories = (*gormSaleTransactionalRepositories)(nil)
