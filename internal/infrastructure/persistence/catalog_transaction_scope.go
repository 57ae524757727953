package persistence

import (
	"context"

	appcatalog "github.com/emprendia/backend/internal/application/catalog"
	"github.com/emprendia/backend/internal/domain/catalog"
	"github.com/emprendia/backend/internal/domain/inventory"
	"github.com/emprendia/backend/internal/domain/report"
	"github.com/emprendia/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormCatalogTransactionScope implements the catalog TransactionScope using
// GORM transactions.
type GormCatalogTransactionScope struct {
	db *gorm.DB
}

// NewGormCatalogTransactionScope creates a new GormCatalogTransactionScope
func NewGormCatalogTransactionScope(db *gorm.DB) *GormCatalogTransactionScope {
	return &GormCatalogTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormCatalogTransactionScope) Execute(ctx context.Context, fn func(repos appcatalog.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCatalogTransactionalRepositories{tx: tx})
	})
}

type gormCatalogTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormCatalogTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormCatalogTransactionalRepositories) InventoryRepo() inventory.InventoryEntryRepository {
	return NewGormInventoryEntryRepository(r.tx)
}

func (r *gormCatalogTransactionalRepositories) SaleRepo() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

func (r *gormCatalogTransactionalRepositories) ReportRepo() report.MonthlyReportRepository {
	return NewGormMonthlyReportRepository(r.tx)
}

var _ appcatalog.TransactionScope = (*GormCatalogTransactionScope)(nil)
var _ appcatalog.TransactionalRepositories = (*gormCatalogTransactionalRepositories)(nil)
