package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emprendia/backend/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportHandler_GetMonthly(t *testing.T) {
	t.Run("returns the accumulated month", func(t *testing.T) {
		tenantID := uuid.New()
		engine, db := setupAPIRouter(t, tenantID)
		productID := createTestProduct(t, db, tenantID, "Lavender Soap", 10)

		w := postJSON(t, engine, "/api/v1/sales", map[string]interface{}{
			"items": []map[string]interface{}{
				{"product_id": productID.String(), "quantity": 2},
			},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/monthly", nil)
		w2 := httptest.NewRecorder()
		engine.ServeHTTP(w2, req)

		assert.Equal(t, http.StatusOK, w2.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
		rows := resp.Data.([]interface{})
		require.Len(t, rows, 1)

		row := rows[0].(map[string]interface{})
		// 2 units at 10.00 sold, 10 units at 2.50 manufactured
		assert.Equal(t, "20", row["total_sales_revenue"])
		assert.Equal(t, "25", row["total_manufacturing_expense"])
	})

	t.Run("filters by year", func(t *testing.T) {
		tenantID := uuid.New()
		engine, _ := setupAPIRouter(t, tenantID)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/monthly?year=1999", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Data)
	})

	t.Run("rejects a malformed year", func(t *testing.T) {
		tenantID := uuid.New()
		engine, _ := setupAPIRouter(t, tenantID)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/monthly?year=abc", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
