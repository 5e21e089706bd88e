package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/enrollpay/enrollpay-backend/services"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// DashboardHandler handles business-office dashboard and export requests
type DashboardHandler struct {
	dashboardService *services.DashboardService
	excelService     *services.ExcelService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService, excelService *services.ExcelService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		excelService:     excelService,
	}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, stats)
}

// ExportReport handles GET /reports/export, streaming the workbook
func (h *DashboardHandler) ExportReport(c *gin.Context) {
	excelFile, filename, err := h.excelService.ExportFinancialReport()
	if err != nil {
		utils.HandleError(c, utils.NewInternalError("Failed to export report: "+err.Error()))
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", utils.CleanFileName(filename)))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		utils.HandleError(c, utils.NewInternalError("Failed to write Excel file: "+err.Error()))
		return
	}
}
