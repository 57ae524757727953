package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/emprendia/backend/internal/domain/inventory"
	"github.com/emprendia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockInventoryEntryRepository creates a GormInventoryEntryRepository with a mocked SQL connection
func newMockInventoryEntryRepository(t *testing.T) (*GormInventoryEntryRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormInventoryEntryRepository(gormDB), mock, mockDB
}

func TestGormInventoryEntryRepository_FindByProduct(t *testing.T) {
	t.Run("finds entry for product within tenant", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryEntryRepository(t)
		defer mockDB.Close()

		entryID := uuid.New()
		tenantID := uuid.New()
		productID := uuid.New()

		rows := sqlmock.NewRows([]string{
			"id", "tenant_id", "product_id", "quantity_on_hand", "stock_valuation", "version",
		}).AddRow(
			entryID, tenantID, productID, int64(25), decimal.NewFromFloat(87.50), 1,
		)

		mock.ExpectQuery(`SELECT \* FROM "inventory_entries" WHERE tenant_id = \$1 AND product_id = \$2`).
			WithArgs(tenantID, productID, 1).
			WillReturnRows(rows)

		entry, err := repo.FindByProduct(context.Background(), tenantID, productID)

		assert.NoError(t, err)
		assert.NotNil(t, entry)
		assert.Equal(t, productID, entry.ProductID)
		assert.Equal(t, int64(25), entry.QuantityOnHand)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing entry", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryEntryRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		productID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "inventory_entries" WHERE tenant_id = \$1 AND product_id = \$2`).
			WithArgs(tenantID, productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		entry, err := repo.FindByProduct(context.Background(), tenantID, productID)

		assert.Error(t, err)
		assert.Nil(t, entry)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryEntryRepository_Create(t *testing.T) {
	t.Run("inserts new entry", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryEntryRepository(t)
		defer mockDB.Close()

		entry, err := inventory.NewInventoryEntry(uuid.New(), uuid.New(), 10, decimal.NewFromFloat(3.50))
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "inventory_entries"`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err = repo.Create(context.Background(), entry)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryEntryRepository_DecrementQuantity(t *testing.T) {
	t.Run("matches when stock is sufficient", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryEntryRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		productID := uuid.New()

		mock.ExpectExec(`UPDATE "inventory_entries" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		matched, err := repo.DecrementQuantity(context.Background(), tenantID, productID, 3, decimal.NewFromFloat(3.50))

		assert.NoError(t, err)
		assert.True(t, matched)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("does not match when guard rejects the row", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryEntryRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		productID := uuid.New()

		mock.ExpectExec(`UPDATE "inventory_entries" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		matched, err := repo.DecrementQuantity(context.Background(), tenantID, productID, 99, decimal.NewFromFloat(3.50))

		assert.NoError(t, err)
		assert.False(t, matched)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates database errors", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryEntryRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "inventory_entries" SET`).
			WillReturnError(assert.AnError)

		matched, err := repo.DecrementQuantity(context.Background(), uuid.New(), uuid.New(), 1, decimal.NewFromFloat(1.00))

		assert.Error(t, err)
		assert.False(t, matched)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryEntryRepository_IncrementQuantity(t *testing.T) {
	t.Run("matches existing entry", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryEntryRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "inventory_entries" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		matched, err := repo.IncrementQuantity(context.Background(), uuid.New(), uuid.New(), 5, decimal.NewFromFloat(3.50))

		assert.NoError(t, err)
		assert.True(t, matched)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("does not match missing entry", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryEntryRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "inventory_entries" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		matched, err := repo.IncrementQuantity(context.Background(), uuid.New(), uuid.New(), 5, decimal.NewFromFloat(3.50))

		assert.NoError(t, err)
		assert.False(t, matched)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryEntryRepository_RevalueForCostChange(t *testing.T) {
	t.Run("recomputes valuation for entry", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryEntryRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "inventory_entries" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.RevalueForCostChange(context.Background(), uuid.New(), uuid.New(), decimal.NewFromFloat(4.25))

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryEntryRepository_DeleteForProduct(t *testing.T) {
	t.Run("deletes entry for product", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryEntryRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		productID := uuid.New()

		mock.ExpectExec(`DELETE FROM "inventory_entries" WHERE tenant_id = \$1 AND product_id = \$2`).
			WithArgs(tenantID, productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteForProduct(context.Background(), tenantID, productID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryEntryRepository_CountForTenant(t *testing.T) {
	t.Run("counts entries for tenant", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryEntryRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "inventory_entries" WHERE tenant_id = \$1`).
			WithArgs(tenantID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.CountForTenant(context.Background(), tenantID, shared.Filter{})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryEntryRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements InventoryEntryRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockInventoryEntryRepository(t)
		defer mockDB.Close()

		var _ inventory.InventoryEntryRepository = repo
	})
}
