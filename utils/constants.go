package utils

const (
	// Payment statuses
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"

	// Payment methods
	MethodCash         = "cash"
	MethodCard         = "card"
	MethodEWallet      = "e_wallet"
	MethodBankTransfer = "bank_transfer"
	MethodOnline       = "online"

	// Fixed fee categories
	CategoryTuition       = "tuition"
	CategoryLaboratory    = "laboratory"
	CategoryLibrary       = "library"
	CategoryMiscellaneous = "miscellaneous"

	// Roles
	RoleStudent = "student"
	RoleCashier = "cashier"
	RoleAdmin   = "admin"

	// Receipt and student number generation
	ReceiptNumberPrefix = "OR"
	StudentNumberPrefix = "SN"
	NumberCharset       = "0123456789"
	NumberLength        = 10

	// HTTP status messages
	ErrInvalidRequest     = "Invalid request"
	ErrFeePlanNotFound    = "Fee plan not found"
	ErrPaymentNotFound    = "Payment not found"
	ErrReceiptNotFound    = "Receipt not found"
	ErrExpenseNotFound    = "Expense not found"
	ErrPaymentNotPending  = "Payment is not pending"
	ErrReceiptExists      = "Receipt already issued for this payment"
	ErrEmailTaken         = "An account with this email already exists"
	ErrInvalidCredentials = "Invalid email or password"
	ErrFailedToStore      = "Failed to store data"
	ErrFailedToRetrieve   = "Failed to retrieve data"

	// Currency display
	CurrencyGlyph = "₱"

	// Precision for monetary calculations
	MoneyPrecision = 100.0

	// Postgres unique violation, matched for conflict translation
	PgUniqueViolation = "23505"
)

// FeeCategories lists the four fixed categories in display order.
var FeeCategories = []string{
	CategoryTuition,
	CategoryLaboratory,
	CategoryLibrary,
	CategoryMiscellaneous,
}

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []string{
	MethodCash,
	MethodCard,
	MethodEWallet,
	MethodBankTransfer,
	MethodOnline,
}

// IsTerminalSuccess reports whether a payment status counts toward paid totals.
func IsTerminalSuccess(status string) bool {
	return status == StatusCompleted || status == StatusSucceeded
}
