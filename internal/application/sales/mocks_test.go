package sales

import (
	"context"

	"github.com/emprendia/backend/internal/domain/catalog"
	"github.com/emprendia/backend/internal/domain/identity"
	"github.com/emprendia/backend/internal/domain/inventory"
	"github.com/emprendia/backend/internal/domain/report"
	"github.com/emprendia/backend/internal/domain/sales"
	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTenantRepository is a mock implementation of identity.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *identity.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockInventoryEntryRepository is a mock implementation of inventory.InventoryEntryRepository
type MockInventoryEntryRepository struct {
	mock.Mock
}

func (m *MockInventoryEntryRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) (*inventory.InventoryEntry, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryEntry), args.Error(1)
}

func (m *MockInventoryEntryRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]inventory.InventoryEntry, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryEntry), args.Error(1)
}

func (m *MockInventoryEntryRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryEntryRepository) Create(ctx context.Context, entry *inventory.InventoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockInventoryEntryRepository) DecrementQuantity(ctx context.Context, tenantID, productID uuid.UUID, quantity int64, unitCost decimal.Decimal) (bool, error) {
	args := m.Called(ctx, tenantID, productID, quantity, unitCost)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryEntryRepository) IncrementQuantity(ctx context.Context, tenantID, productID uuid.UUID, quantity int64, unitCost decimal.Decimal) (bool, error) {
	args := m.Called(ctx, tenantID, productID, quantity, unitCost)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryEntryRepository) RevalueForCostChange(ctx context.Context, tenantID, productID uuid.UUID, unitCost decimal.Decimal) error {
	args := m.Called(ctx, tenantID, productID, unitCost)
	return args.Error(0)
}

func (m *MockInventoryEntryRepository) DeleteForProduct(ctx context.Context, tenantID, productID uuid.UUID) error {
	args := m.Called(ctx, tenantID, productID)
	return args.Error(0)
}

// MockSaleRepository is a mock implementation of sales.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*sales.Sale, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]sales.Sale, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockSaleRepository) ExistsForProduct(ctx context.Context, tenantID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, productID)
	return args.Bool(0), args.Error(1)
}

// MockMonthlyReportRepository is a mock implementation of report.MonthlyReportRepository
type MockMonthlyReportRepository struct {
	mock.Mock
}

func (m *MockMonthlyReportRepository) FindForTenant(ctx context.Context, tenantID uuid.UUID, year *int) ([]report.MonthlyFinancialReport, error) {
	args := m.Called(ctx, tenantID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.MonthlyFinancialReport), args.Error(1)
}

func (m *MockMonthlyReportRepository) FindByPeriod(ctx context.Context, tenantID uuid.UUID, year, month int) (*report.MonthlyFinancialReport, error) {
	args := m.Called(ctx, tenantID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.MonthlyFinancialReport), args.Error(1)
}

func (m *MockMonthlyReportRepository) AccumulateExpense(ctx context.Context, tenantID uuid.UUID, year, month int, expenseDelta decimal.Decimal) error {
	args := m.Called(ctx, tenantID, year, month, expenseDelta)
	return args.Error(0)
}

func (m *MockMonthlyReportRepository) AccumulateRevenue(ctx context.Context, tenantID uuid.UUID, year, month int, revenueDelta decimal.Decimal) error {
	args := m.Called(ctx, tenantID, year, month, revenueDelta)
	return args.Error(0)
}
