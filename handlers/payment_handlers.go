package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrollpay/enrollpay-backend/middleware"
	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/services"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService      *services.PaymentService
	verificationService *services.VerificationService
	balanceService      *services.BalanceService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService, verificationService *services.VerificationService, balanceService *services.BalanceService) *PaymentHandler {
	return &PaymentHandler{
		paymentService:      paymentService,
		verificationService: verificationService,
		balanceService:      balanceService,
	}
}

// InitiatePayment handles POST /payments; the student comes from the token
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var request models.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	payment, err := h.paymentService.InitiatePayment(c.GetString(middleware.ContextUserID), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// RecordCounterPayment handles POST /payments/counter
func (h *PaymentHandler) RecordCounterPayment(c *gin.Context) {
	var request models.CounterPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	payment, err := h.paymentService.RecordCounterPayment(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayment handles GET /payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPayment(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// GetMyPayments handles GET /payments/mine
func (h *PaymentHandler) GetMyPayments(c *gin.Context) {
	payments, err := h.paymentService.GetPaymentsByStudent(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payments)
}

// GetStudentPayments handles GET /payments/student/:id
func (h *PaymentHandler) GetStudentPayments(c *gin.Context) {
	payments, err := h.paymentService.GetPaymentsByStudent(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payments)
}

// GetPendingPayments handles GET /payments/pending
func (h *PaymentHandler) GetPendingPayments(c *gin.Context) {
	payments, err := h.paymentService.GetPendingPayments()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payments)
}

// VerifyPayment handles POST /payments/:id/verify
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	receipt, err := h.verificationService.VerifyPayment(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, receipt)
}

// ReissueReceipt handles POST /payments/:id/receipt for payments that
// completed without one
func (h *PaymentHandler) ReissueReceipt(c *gin.Context) {
	receipt, err := h.verificationService.ReissueReceipt(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, receipt)
}

// GetStudentBalance handles GET /students/:id/balance
func (h *PaymentHandler) GetStudentBalance(c *gin.Context) {
	planID := c.Query("planId")
	if planID == "" {
		utils.HandleError(c, utils.NewBadRequestError("planId query parameter is required"))
		return
	}

	balance, err := h.balanceService.GetStudentBalance(c.Param("id"), planID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, balance)
}

// GetMyBalance handles GET /balance for the authenticated student
func (h *PaymentHandler) GetMyBalance(c *gin.Context) {
	planID := c.Query("planId")
	if planID == "" {
		utils.HandleError(c, utils.NewBadRequestError("planId query parameter is required"))
		return
	}

	balance, err := h.balanceService.GetStudentBalance(c.GetString(middleware.ContextUserID), planID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, balance)
}
