package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/enrollpay/enrollpay-backend/middleware"
	"github.com/enrollpay/enrollpay-backend/services"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// ReceiptHandler handles receipt HTTP requests
type ReceiptHandler struct {
	receiptService *services.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// GetReceiptByPayment handles GET /receipts/payment/:id
func (h *ReceiptHandler) GetReceiptByPayment(c *gin.Context) {
	receipt, err := h.receiptService.GetReceiptByPayment(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, receipt)
}

// ListReceipts handles GET /receipts
func (h *ReceiptHandler) ListReceipts(c *gin.Context) {
	receipts, err := h.receiptService.ListReceipts()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, receipts)
}

// ListMyReceipts handles GET /receipts/mine
func (h *ReceiptHandler) ListMyReceipts(c *gin.Context) {
	receipts, err := h.receiptService.ListReceiptsByStudent(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, receipts)
}
