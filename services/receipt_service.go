package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/repository"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// ReceiptService handles receipt issuance and retrieval
type ReceiptService struct {
	receiptRepo *repository.ReceiptRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo *repository.ReceiptRepository) *ReceiptService {
	return &ReceiptService{receiptRepo: receiptRepo}
}

// BuildReceiptItems derives the receipt line items from a payment using
// the even-split rule: the amount is divided equally among the tagged
// categories. A payment with no categories yields a single miscellaneous
// line carrying the full amount. Line items always sum to the payment
// amount; any rounding remainder lands on the last line.
func BuildReceiptItems(amount float64, fees []string) []models.ReceiptItem {
	amount = utils.Round(utils.SanitizeAmount(amount))

	categories := utils.NormalizeCategories(fees)
	if len(categories) == 0 {
		categories = []string{utils.CategoryMiscellaneous}
	}

	share := utils.Round(amount / float64(len(categories)))

	items := make([]models.ReceiptItem, len(categories))
	var allocated float64
	for i, category := range categories {
		itemAmount := share
		if i == len(categories)-1 {
			itemAmount = utils.Round(amount - allocated)
		}
		items[i] = models.ReceiptItem{
			Label:  utils.FormatCategoryForDisplay(category),
			Amount: itemAmount,
		}
		allocated += itemAmount
	}
	return items
}

// IssueReceipt synthesizes and stores the receipt for a completed
// payment. The unique constraint on the payment reference turns a
// concurrent duplicate issuance into a conflict.
func (s *ReceiptService) IssueReceipt(payment *models.Payment) (*models.Receipt, error) {
	receipt := &models.Receipt{
		ID:            uuid.NewString(),
		ReceiptNumber: utils.GenerateReceiptNumber(),
		PaymentID:     payment.ID,
		StudentID:     payment.StudentID,
		Items:         BuildReceiptItems(payment.Amount, payment.Fees),
		Total:         utils.Round(payment.Amount),
		Method:        payment.Method,
		IssuedAt:      time.Now(),
	}

	if err := s.receiptRepo.CreateReceipt(receipt); err != nil {
		return nil, utils.TranslateConflict(err, utils.ErrReceiptExists)
	}
	return receipt, nil
}

// GetReceiptByPayment retrieves the receipt issued for a payment
func (s *ReceiptService) GetReceiptByPayment(paymentID string) (*models.Receipt, error) {
	receipt, err := s.receiptRepo.GetReceiptByPaymentID(paymentID)
	if err != nil {
		return nil, utils.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// HasReceipt reports whether a receipt exists for the payment. The
// absence of a receipt on a completed payment is how callers detect an
// interrupted verification.
func (s *ReceiptService) HasReceipt(paymentID string) bool {
	_, err := s.receiptRepo.GetReceiptByPaymentID(paymentID)
	return err == nil
}

// ListReceipts retrieves all receipts
func (s *ReceiptService) ListReceipts() ([]models.Receipt, error) {
	receipts, err := s.receiptRepo.ListReceipts()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return receipts, nil
}

// ListReceiptsByStudent retrieves a student's receipts
func (s *ReceiptService) ListReceiptsByStudent(studentID string) ([]models.Receipt, error) {
	receipts, err := s.receiptRepo.ListReceiptsByStudent(studentID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return receipts, nil
}
