package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/repository"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// PaymentService handles payment business logic
type PaymentService struct {
	paymentRepo *repository.PaymentRepository
	feePlanRepo *repository.FeePlanRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo *repository.PaymentRepository, feePlanRepo *repository.FeePlanRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		feePlanRepo: feePlanRepo,
	}
}

// InitiatePayment records a student-initiated payment in pending state.
// A cashier verifies it later; nothing here touches terminal statuses.
func (s *PaymentService) InitiatePayment(studentID string, req *models.InitiatePaymentRequest) (*models.Payment, error) {
	return s.createPayment(studentID, req.Amount, req.Method, req.FeePlanID, req.Fees)
}

// RecordCounterPayment records an over-the-counter transaction taken by a
// cashier. It enters the same pending state as a student-initiated
// payment; verification is the only path to completed.
func (s *PaymentService) RecordCounterPayment(req *models.CounterPaymentRequest) (*models.Payment, error) {
	return s.createPayment(req.StudentID, req.Amount, req.Method, req.FeePlanID, req.Fees)
}

func (s *PaymentService) createPayment(studentID string, amount float64, method, feePlanID string, fees []string) (*models.Payment, error) {
	if err := utils.ValidateRequired(studentID, "student id"); err != nil {
		return nil, err
	}
	if err := utils.ValidatePositive(amount, "amount"); err != nil {
		return nil, err
	}
	if err := utils.ValidatePaymentMethod(method); err != nil {
		return nil, err
	}
	if err := utils.ValidateCategories(fees); err != nil {
		return nil, err
	}
	if feePlanID != "" {
		if _, err := s.feePlanRepo.GetFeePlanByID(feePlanID); err != nil {
			return nil, utils.NewNotFoundError("Fee plan")
		}
	}

	payment := &models.Payment{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Amount:    utils.Round(amount),
		Method:    method,
		Status:    utils.StatusPending,
		FeePlanID: feePlanID,
		Fees:      utils.NormalizeCategories(fees),
		CreatedAt: time.Now(),
	}

	if err := s.paymentRepo.CreatePayment(payment); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return payment, nil
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(paymentID string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetPaymentByID(paymentID)
	if err != nil {
		return nil, utils.NewNotFoundError("Payment")
	}
	return payment, nil
}

// GetPaymentsByStudent retrieves a student's payment history
func (s *PaymentService) GetPaymentsByStudent(studentID string) ([]models.Payment, error) {
	payments, err := s.paymentRepo.GetPaymentsByStudent(studentID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return payments, nil
}

// GetPendingPayments retrieves the cashier verification queue
func (s *PaymentService) GetPendingPayments() ([]models.Payment, error) {
	payments, err := s.paymentRepo.GetPaymentsByStatus(utils.StatusPending)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return payments, nil
}
