package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/enrollpay/enrollpay-backend/handlers"
	"github.com/enrollpay/enrollpay-backend/middleware"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// Handlers aggregates all handler dependencies for route registration
type Handlers struct {
	Auth           *handlers.AuthHandler
	FeePlan        *handlers.FeePlanHandler
	Payment        *handlers.PaymentHandler
	Receipt        *handlers.ReceiptHandler
	Reconciliation *handlers.ReconciliationHandler
	Expense        *handlers.ExpenseHandler
	Dashboard      *handlers.DashboardHandler
	Preference     *handlers.PreferenceHandler
}

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, h *Handlers, jwtSecret string) {
	v1 := router.Group("/api/v1")

	// Public endpoints
	v1.POST("/auth/register", h.Auth.Register)
	v1.POST("/auth/login", h.Auth.Login)

	authed := v1.Group("")
	authed.Use(middleware.RequireAuth(jwtSecret))
	{
		// Any authenticated user
		authed.GET("/feeplans", h.FeePlan.ListFeePlans)
		authed.GET("/feeplans/:id", h.FeePlan.GetFeePlan)
		authed.GET("/feeplans/:id/totals", h.FeePlan.GetFeePlanTotals)

		authed.GET("/preferences/:key", h.Preference.GetPreference)
		authed.PUT("/preferences/:key", h.Preference.SetPreference)
		authed.DELETE("/preferences/:key", h.Preference.ClearPreference)
	}

	student := v1.Group("")
	student.Use(middleware.RequireAuth(jwtSecret), middleware.RequireRole(utils.RoleStudent))
	{
		student.POST("/payments", h.Payment.InitiatePayment)
		student.GET("/payments/mine", h.Payment.GetMyPayments)
		student.GET("/receipts/mine", h.Receipt.ListMyReceipts)
		student.GET("/balance", h.Payment.GetMyBalance)
	}

	cashier := v1.Group("")
	cashier.Use(middleware.RequireAuth(jwtSecret), middleware.RequireRole(utils.RoleCashier, utils.RoleAdmin))
	{
		cashier.POST("/payments/counter", h.Payment.RecordCounterPayment)
		cashier.GET("/payments/pending", h.Payment.GetPendingPayments)
		cashier.GET("/payments/student/:id", h.Payment.GetStudentPayments)
		cashier.GET("/payments/:id", h.Payment.GetPayment)
		cashier.POST("/payments/:id/verify", h.Payment.VerifyPayment)
		cashier.POST("/payments/:id/receipt", h.Payment.ReissueReceipt)
		cashier.GET("/receipts", h.Receipt.ListReceipts)
		cashier.GET("/receipts/payment/:id", h.Receipt.GetReceiptByPayment)
		cashier.GET("/students/:id/balance", h.Payment.GetStudentBalance)
	}

	admin := v1.Group("")
	admin.Use(middleware.RequireAuth(jwtSecret), middleware.RequireRole(utils.RoleAdmin))
	{
		admin.POST("/feeplans", h.FeePlan.CreateFeePlan)
		admin.PUT("/feeplans/:id", h.FeePlan.UpdateFeePlan)
		admin.POST("/feeplans/:id/items", h.FeePlan.AddFeeItem)
		admin.DELETE("/feeplans/:id/items/:index", h.FeePlan.RemoveFeeItem)

		admin.POST("/reconciliation/import", h.Reconciliation.ImportStatement)
		admin.POST("/reconciliation/match", h.Reconciliation.AutoMatch)
		admin.GET("/reconciliation/summary", h.Reconciliation.Summary)

		admin.GET("/expenses", h.Expense.ListExpenses)
		admin.POST("/expenses", h.Expense.CreateExpense)
		admin.PUT("/expenses/:id", h.Expense.UpdateExpense)
		admin.DELETE("/expenses/:id", h.Expense.DeleteExpense)
		admin.GET("/budgets", h.Expense.ListBudgets)
		admin.POST("/budgets", h.Expense.CreateBudget)

		admin.GET("/dashboard/stats", h.Dashboard.GetStats)
		admin.GET("/reports/export", h.Dashboard.ExportReport)
	}
}
