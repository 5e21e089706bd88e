package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/utils"
)

type memoryPaymentStore struct {
	payments map[string]*models.Payment
}

func newMemoryPaymentStore(payments ...*models.Payment) *memoryPaymentStore {
	store := &memoryPaymentStore{payments: make(map[string]*models.Payment)}
	for _, p := range payments {
		store.payments[p.ID] = p
	}
	return store
}

func (s *memoryPaymentStore) GetPaymentByID(paymentID string) (*models.Payment, error) {
	payment, ok := s.payments[paymentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *payment
	return &clone, nil
}

func (s *memoryPaymentStore) CompletePending(paymentID string, paidAt time.Time) (bool, error) {
	payment, ok := s.payments[paymentID]
	if !ok || payment.Status != utils.StatusPending {
		return false, nil
	}
	payment.Status = utils.StatusCompleted
	payment.PaidAt = &paidAt
	return true, nil
}

type memoryReceiptStore struct {
	issued map[string]*models.Receipt
}

func newMemoryReceiptStore() *memoryReceiptStore {
	return &memoryReceiptStore{issued: make(map[string]*models.Receipt)}
}

func (s *memoryReceiptStore) IssueReceipt(payment *models.Payment) (*models.Receipt, error) {
	if _, exists := s.issued[payment.ID]; exists {
		return nil, utils.NewConflictError(utils.ErrReceiptExists)
	}
	receipt := &models.Receipt{
		PaymentID: payment.ID,
		StudentID: payment.StudentID,
		Items:     BuildReceiptItems(payment.Amount, payment.Fees),
		Total:     utils.Round(payment.Amount),
		Method:    payment.Method,
		IssuedAt:  time.Now(),
	}
	s.issued[payment.ID] = receipt
	return receipt, nil
}

func (s *memoryReceiptStore) HasReceipt(paymentID string) bool {
	_, exists := s.issued[paymentID]
	return exists
}

func pendingPayment(id string, amount float64, fees []string) *models.Payment {
	return &models.Payment{
		ID:        id,
		StudentID: "student-1",
		Amount:    amount,
		Method:    utils.MethodCash,
		Status:    utils.StatusPending,
		Fees:      fees,
		CreatedAt: time.Now(),
	}
}

func TestVerifyPaymentCompletesAndIssuesReceipt(t *testing.T) {
	payments := newMemoryPaymentStore(pendingPayment("pay-1", 5000, []string{"tuition"}))
	receipts := newMemoryReceiptStore()
	service := NewVerificationService(payments, receipts)

	receipt, err := service.VerifyPayment("pay-1")

	assert.NoError(t, err)
	assert.Equal(t, utils.StatusCompleted, payments.payments["pay-1"].Status)
	assert.NotNil(t, payments.payments["pay-1"].PaidAt)
	assert.Len(t, receipt.Items, 1)
	assert.Equal(t, "Tuition", receipt.Items[0].Label)
	assert.Equal(t, 5000.0, receipt.Items[0].Amount)
	assert.Equal(t, 5000.0, receipt.Total)
	assert.Len(t, receipts.issued, 1)
}

func TestVerifyPaymentRejectsSecondVerification(t *testing.T) {
	payments := newMemoryPaymentStore(pendingPayment("pay-1", 5000, []string{"tuition"}))
	receipts := newMemoryReceiptStore()
	service := NewVerificationService(payments, receipts)

	_, err := service.VerifyPayment("pay-1")
	assert.NoError(t, err)

	_, err = service.VerifyPayment("pay-1")

	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.ErrPaymentNotPending, appErr.Message)
	assert.Len(t, receipts.issued, 1)
}

func TestVerifyPaymentRejectsNonPendingStatuses(t *testing.T) {
	for _, status := range []string{utils.StatusFailed, utils.StatusCancelled, utils.StatusSucceeded} {
		payment := pendingPayment("pay-1", 1000, nil)
		payment.Status = status
		payments := newMemoryPaymentStore(payment)
		service := NewVerificationService(payments, newMemoryReceiptStore())

		_, err := service.VerifyPayment("pay-1")

		appErr, ok := err.(*utils.AppError)
		assert.True(t, ok, status)
		assert.Equal(t, utils.ErrPaymentNotPending, appErr.Message, status)
		assert.Equal(t, status, payments.payments["pay-1"].Status)
	}
}

func TestVerifyPaymentUnknownPayment(t *testing.T) {
	service := NewVerificationService(newMemoryPaymentStore(), newMemoryReceiptStore())

	_, err := service.VerifyPayment("missing")

	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, "Payment not found", appErr.Message)
}

func TestReissueReceiptAfterInterruptedVerification(t *testing.T) {
	// Completed payment with no receipt, the state a crash between the
	// status flip and the receipt insert leaves behind.
	paidAt := time.Now()
	payment := pendingPayment("pay-1", 1000, []string{"tuition", "library"})
	payment.Status = utils.StatusCompleted
	payment.PaidAt = &paidAt
	payments := newMemoryPaymentStore(payment)
	receipts := newMemoryReceiptStore()
	service := NewVerificationService(payments, receipts)

	receipt, err := service.ReissueReceipt("pay-1")

	assert.NoError(t, err)
	assert.Len(t, receipt.Items, 2)
	assert.Equal(t, 500.0, receipt.Items[0].Amount)
	assert.Equal(t, 500.0, receipt.Items[1].Amount)
	assert.True(t, receipts.HasReceipt("pay-1"))
}

func TestReissueReceiptRefusesWhenReceiptExists(t *testing.T) {
	payments := newMemoryPaymentStore(pendingPayment("pay-1", 5000, []string{"tuition"}))
	receipts := newMemoryReceiptStore()
	service := NewVerificationService(payments, receipts)

	_, err := service.VerifyPayment("pay-1")
	assert.NoError(t, err)

	_, err = service.ReissueReceipt("pay-1")

	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.ErrReceiptExists, appErr.Message)
	assert.Len(t, receipts.issued, 1)
}

func TestReissueReceiptRejectsPendingPayment(t *testing.T) {
	payments := newMemoryPaymentStore(pendingPayment("pay-1", 5000, []string{"tuition"}))
	service := NewVerificationService(payments, newMemoryReceiptStore())

	_, err := service.ReissueReceipt("pay-1")

	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, "Payment has not completed", appErr.Message)
}
