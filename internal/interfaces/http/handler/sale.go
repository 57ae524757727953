package handler

import (
	"github.com/emprendia/backend/internal/application/sales"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleHandler handles sale endpoints
type SaleHandler struct {
	BaseHandler
	salesService *sales.SalesService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(salesService *sales.SalesService) *SaleHandler {
	return &SaleHandler{salesService: salesService}
}

// RegisterRoutes registers sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	salesGroup := rg.Group("/sales")
	{
		salesGroup.POST("", h.Register)
		salesGroup.GET("", h.List)
		salesGroup.GET("/:id", h.GetByID)
		salesGroup.DELETE("/:id", h.Void)
	}
}

// Register records a sale. Stock validation, inventory decrements, the sale
// record and the monthly revenue accrual all commit or roll back together.
func (h *SaleHandler) Register(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	var req sales.RegisterSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.salesService.RegisterSale(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns the tenant's sales with pagination
func (h *SaleHandler) List(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	var filter sales.SaleListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	saleList, total, err := h.salesService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, saleList, total, page, pageSize)
}

// GetByID returns a single sale with its line items
func (h *SaleHandler) GetByID(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	resp, err := h.salesService.GetByID(c.Request.Context(), tenantID, saleID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Void deletes a sale and restores its stock. Monthly revenue already
// accrued is intentionally left untouched.
func (h *SaleHandler) Void(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	if err := h.salesService.VoidSale(c.Request.Context(), tenantID, saleID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
