package handler

import (
	"strconv"

	"github.com/emprendia/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles financial report endpoints
type ReportHandler struct {
	BaseHandler
	reportService *report.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *report.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.GetMonthly)
	}
}

// GetMonthly returns the tenant's monthly reports, optionally filtered by year
func (h *ReportHandler) GetMonthly(c *gin.Context) {
	tenantID, ok := h.getTenantID(c)
	if !ok {
		return
	}

	var year *int
	if raw := c.Query("year"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			h.BadRequest(c, "Invalid year format")
			return
		}
		year = &value
	}

	reports, err := h.reportService.GetMonthly(c.Request.Context(), tenantID, year)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reports)
}
