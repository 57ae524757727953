package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProduct(t *testing.T) *Product {
	t.Helper()
	product, err := NewProduct(uuid.New(), "Hand-poured candle", "Soy wax, 200g",
		decimal.NewFromFloat(3.50), decimal.NewFromFloat(9.99))
	require.NoError(t, err)
	return product
}

func TestNewProduct(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates product successfully", func(t *testing.T) {
		product, err := NewProduct(tenantID, "Hand-poured candle", "Soy wax",
			decimal.NewFromFloat(3.50), decimal.NewFromFloat(9.99))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.Equal(t, tenantID, product.TenantID)
		assert.Equal(t, "Hand-poured candle", product.Name)
		assert.True(t, product.ManufacturingCost.Equal(decimal.NewFromFloat(3.50)))
		assert.True(t, product.SalePrice.Equal(decimal.NewFromFloat(9.99)))
	})

	t.Run("trims whitespace from name", func(t *testing.T) {
		product, err := NewProduct(tenantID, "  Candle  ", "", decimal.Zero, decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, "Candle", product.Name)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		product, err := NewProduct(tenantID, "   ", "", decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.Nil(t, product)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("fails with negative cost", func(t *testing.T) {
		product, err := NewProduct(tenantID, "Candle", "", decimal.NewFromInt(-1), decimal.Zero)

		require.Error(t, err)
		assert.Nil(t, product)
	})

	t.Run("fails with negative price", func(t *testing.T) {
		product, err := NewProduct(tenantID, "Candle", "", decimal.Zero, decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.Nil(t, product)
	})
}

func TestProduct_SetManufacturingCost(t *testing.T) {
	t.Run("reports change when cost differs", func(t *testing.T) {
		product := createTestProduct(t)

		changed, err := product.SetManufacturingCost(decimal.NewFromFloat(4.25))

		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, product.ManufacturingCost.Equal(decimal.NewFromFloat(4.25)))
		assert.Equal(t, 2, product.Version)
	})

	t.Run("reports no change for equal cost", func(t *testing.T) {
		product := createTestProduct(t)

		changed, err := product.SetManufacturingCost(decimal.NewFromFloat(3.50))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 1, product.Version)
	})

	t.Run("treats different scales of the same value as equal", func(t *testing.T) {
		product := createTestProduct(t)

		changed, err := product.SetManufacturingCost(decimal.RequireFromString("3.5000"))

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("rejects negative cost", func(t *testing.T) {
		product := createTestProduct(t)

		changed, err := product.SetManufacturingCost(decimal.NewFromInt(-2))

		require.Error(t, err)
		assert.False(t, changed)
		assert.True(t, product.ManufacturingCost.Equal(decimal.NewFromFloat(3.50)))
	})
}

func TestProduct_SetSalePrice(t *testing.T) {
	t.Run("updates price", func(t *testing.T) {
		product := createTestProduct(t)

		err := product.SetSalePrice(decimal.NewFromFloat(12.50))

		require.NoError(t, err)
		assert.True(t, product.SalePrice.Equal(decimal.NewFromFloat(12.50)))
	})

	t.Run("rejects negative price", func(t *testing.T) {
		product := createTestProduct(t)

		err := product.SetSalePrice(decimal.NewFromInt(-1))

		require.Error(t, err)
	})
}

func TestProduct_Rename(t *testing.T) {
	t.Run("renames product", func(t *testing.T) {
		product := createTestProduct(t)

		err := product.Rename("Scented candle", "Lavender")

		require.NoError(t, err)
		assert.Equal(t, "Scented candle", product.Name)
		assert.Equal(t, "Lavender", product.Description)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		product := createTestProduct(t)

		err := product.Rename("", "desc")

		require.Error(t, err)
		assert.Equal(t, "Hand-poured candle", product.Name)
	})
}
