package sales

import (
	"context"

	"github.com/emprendia/backend/internal/domain/catalog"
	"github.com/emprendia/backend/internal/domain/identity"
	"github.com/emprendia/backend/internal/domain/inventory"
	"github.com/emprendia/backend/internal/domain/report"
	"github.com/emprendia/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories a sale
// touches. When a function executes within a scope, every repository
// operation joins the same database transaction and commits or rolls back
// atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories participating
// in a sale transaction. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	TenantRepo() identity.TenantRepository
	ProductRepo() catalog.ProductRepository
	InventoryRepo() inventory.InventoryEntryRepository
	SaleRepo() sales.SaleRepository
	ReportRepo() report.MonthlyReportRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful in tests where the repositories are mocks.
type NoOpTransactionScope struct {
	tenantRepo    identity.TenantRepository
	productRepo   catalog.ProductRepository
	inventoryRepo inventory.InventoryEntryRepository
	saleRepo      sales.SaleRepository
	reportRepo    report.MonthlyReportRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	tenantRepo identity.TenantRepository,
	productRepo catalog.ProductRepository,
	inventoryRepo inventory.InventoryEntryRepository,
	saleRepo sales.SaleRepository,
	reportRepo report.MonthlyReportRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		tenantRepo:    tenantRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		saleRepo:      saleRepo,
		reportRepo:    reportRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) TenantRepo() identity.TenantRepository         { return s.tenantRepo }
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository        { return s.productRepo }
func (s *NoOpTransactionScope) InventoryRepo() inventory.InventoryEntryRepository {
	return s.inventoryRepo
}
func (s *NoOpTransactionScope) SaleRepo() sales.SaleRepository          { return s.saleRepo }
func (s *NoOpTransactionScope) ReportRepo() report.MonthlyReportRepository { return s.reportRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
