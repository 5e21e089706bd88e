package services

import (
	"time"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// paymentStore is the slice of the payment repository the verification
// flow needs.
type paymentStore interface {
	GetPaymentByID(paymentID string) (*models.Payment, error)
	CompletePending(paymentID string, paidAt time.Time) (bool, error)
}

// receiptIssuer issues and looks up receipts for payments.
type receiptIssuer interface {
	IssueReceipt(payment *models.Payment) (*models.Receipt, error)
	HasReceipt(paymentID string) bool
}

// VerificationService runs the cashier verification flow: flip a pending
// payment to completed, then issue the receipt.
type VerificationService struct {
	payments paymentStore
	receipts receiptIssuer
}

// NewVerificationService creates a new verification service
func NewVerificationService(payments paymentStore, receipts receiptIssuer) *VerificationService {
	return &VerificationService{
		payments: payments,
		receipts: receipts,
	}
}

// VerifyPayment transitions a pending payment to completed and issues its
// receipt. The status flip is a conditional update on the pending state,
// so of two concurrent verifications exactly one wins; the loser gets a
// conflict. If the receipt insert fails after the flip, the payment stays
// completed without a receipt and ReissueReceipt recovers it; the status
// step never re-runs.
func (s *VerificationService) VerifyPayment(paymentID string) (*models.Receipt, error) {
	payment, err := s.payments.GetPaymentByID(paymentID)
	if err != nil {
		return nil, utils.NewNotFoundError("Payment")
	}

	paidAt := time.Now()
	flipped, err := s.payments.CompletePending(payment.ID, paidAt)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	if !flipped {
		return nil, utils.NewConflictError(utils.ErrPaymentNotPending)
	}

	payment.Status = utils.StatusCompleted
	payment.PaidAt = &paidAt

	return s.receipts.IssueReceipt(payment)
}

// ReissueReceipt creates the receipt for a payment that completed without
// one. Rejects payments that are not in a terminal successful state and
// payments that already have a receipt.
func (s *VerificationService) ReissueReceipt(paymentID string) (*models.Receipt, error) {
	payment, err := s.payments.GetPaymentByID(paymentID)
	if err != nil {
		return nil, utils.NewNotFoundError("Payment")
	}
	if !utils.IsTerminalSuccess(payment.Status) {
		return nil, utils.NewConflictError("Payment has not completed")
	}
	if s.receipts.HasReceipt(payment.ID) {
		return nil, utils.NewConflictError(utils.ErrReceiptExists)
	}

	return s.receipts.IssueReceipt(payment)
}
