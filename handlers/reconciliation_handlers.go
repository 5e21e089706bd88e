package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/enrollpay/enrollpay-backend/services"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// ReconciliationHandler handles bank reconciliation HTTP requests
type ReconciliationHandler struct {
	reconciliationService *services.ReconciliationService
}

// NewReconciliationHandler creates a new reconciliation handler
func NewReconciliationHandler(reconciliationService *services.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationService: reconciliationService}
}

// ImportStatement handles POST /reconciliation/import with a multipart
// XLSX statement under the "statement" field
func (h *ReconciliationHandler) ImportStatement(c *gin.Context) {
	fileHeader, err := c.FormFile("statement")
	if err != nil {
		utils.HandleError(c, utils.NewBadRequestError("statement file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Could not open statement file"))
		return
	}
	defer file.Close()

	txns, skipped, err := h.reconciliationService.ImportStatement(file)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"imported": len(txns), "skipped": skipped, "transactions": txns})
}

// AutoMatch handles POST /reconciliation/match
func (h *ReconciliationHandler) AutoMatch(c *gin.Context) {
	result, err := h.reconciliationService.AutoMatch()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// Summary handles GET /reconciliation/summary
func (h *ReconciliationHandler) Summary(c *gin.Context) {
	summary, err := h.reconciliationService.Summary()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, summary)
}
