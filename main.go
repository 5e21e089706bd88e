package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/enrollpay/enrollpay-backend/handlers"
	"github.com/enrollpay/enrollpay-backend/repository"
	"github.com/enrollpay/enrollpay-backend/routes"
	"github.com/enrollpay/enrollpay-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("EnrollPay API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize New Relic: %v", err)
	}

	// Initialize database and run migrations
	if err := repository.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repository.CloseDB()

	db := repository.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	feePlanRepo := repository.NewFeePlanRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	bankRepo := repository.NewBankTransactionRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, jwtSecret)
	feePlanService := services.NewFeePlanService(feePlanRepo)
	paymentService := services.NewPaymentService(paymentRepo, feePlanRepo)
	receiptService := services.NewReceiptService(receiptRepo)
	verificationService := services.NewVerificationService(paymentRepo, receiptService)
	balanceService := services.NewBalanceService(paymentRepo, feePlanRepo)
	reconciliationService := services.NewReconciliationService(bankRepo, paymentRepo)
	expenseService := services.NewExpenseService(expenseRepo)
	dashboardService := services.NewDashboardService(paymentRepo, expenseRepo)
	excelService := services.NewExcelService(receiptService, expenseService, dashboardService, reconciliationService)

	// Handlers
	h := &routes.Handlers{
		Auth:           handlers.NewAuthHandler(authService),
		FeePlan:        handlers.NewFeePlanHandler(feePlanService),
		Payment:        handlers.NewPaymentHandler(paymentService, verificationService, balanceService),
		Receipt:        handlers.NewReceiptHandler(receiptService),
		Reconciliation: handlers.NewReconciliationHandler(reconciliationService),
		Expense:        handlers.NewExpenseHandler(expenseService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService, excelService),
		Preference:     handlers.NewPreferenceHandler(preferenceRepo),
	}

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, h, jwtSecret)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
