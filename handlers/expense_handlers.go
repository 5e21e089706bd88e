package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/services"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// ExpenseHandler handles expense and budget HTTP requests
type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpense handles POST /expenses
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var request models.ExpenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	expense, err := h.expenseService.CreateExpense(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// UpdateExpense handles PUT /expenses/:id
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var request models.ExpenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expense)
}

// DeleteExpense handles DELETE /expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Expense deleted successfully"})
}

// ListExpenses handles GET /expenses
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.expenseService.ListExpenses()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expenses)
}

// CreateBudget handles POST /budgets
func (h *ExpenseHandler) CreateBudget(c *gin.Context) {
	var request models.BudgetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	budget, err := h.expenseService.CreateBudget(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// ListBudgets handles GET /budgets
func (h *ExpenseHandler) ListBudgets(c *gin.Context) {
	utilization, err := h.expenseService.ListBudgetUtilization()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, utilization)
}
