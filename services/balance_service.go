package services

import (
	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/repository"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// BalanceService derives a student's outstanding balance from their
// payment history and a fee plan. Balances are computed, never stored.
type BalanceService struct {
	paymentRepo *repository.PaymentRepository
	feePlanRepo *repository.FeePlanRepository
}

// NewBalanceService creates a new balance service
func NewBalanceService(paymentRepo *repository.PaymentRepository, feePlanRepo *repository.FeePlanRepository) *BalanceService {
	return &BalanceService{
		paymentRepo: paymentRepo,
		feePlanRepo: feePlanRepo,
	}
}

// GetStudentBalance fetches the student's completed payments and the plan,
// then computes the per-category breakdown
func (s *BalanceService) GetStudentBalance(studentID, planID string) (*models.StudentBalance, error) {
	plan, err := s.feePlanRepo.GetFeePlanByID(planID)
	if err != nil {
		return nil, utils.NewNotFoundError("Fee plan")
	}

	payments, err := s.paymentRepo.GetCompletedPaymentsByStudent(studentID)
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	balance := ComputeBalance(plan, payments)
	balance.StudentID = studentID
	return balance, nil
}

// ComputeBalance aggregates completed payments against a plan's category
// amounts. A payment's amount is split evenly across the categories it is
// tagged with; a payment with no categories counts wholly as
// miscellaneous. Per-category balances and the total are floored at zero,
// so overpayment is absorbed rather than surfaced as credit.
func ComputeBalance(plan *models.FeePlan, payments []models.Payment) *models.StudentBalance {
	paidByCategory := make(map[string]float64)
	for _, category := range utils.FeeCategories {
		paidByCategory[category] = 0
	}

	var paidTotal float64
	for _, payment := range payments {
		if !utils.IsTerminalSuccess(payment.Status) {
			continue
		}

		amount := utils.SanitizeAmount(payment.Amount)
		paidTotal += amount

		categories := utils.NormalizeCategories(payment.Fees)
		if len(categories) == 0 {
			categories = []string{utils.CategoryMiscellaneous}
		}

		share := amount / float64(len(categories))
		for _, category := range categories {
			paidByCategory[category] += share
		}
	}

	balances := make(map[string]float64)
	var planTotal float64
	for _, category := range utils.FeeCategories {
		planAmount := utils.SanitizeAmount(plan.CategoryAmounts[category])
		planTotal += planAmount
		balances[category] = utils.Round(utils.FloorZero(planAmount - paidByCategory[category]))
		paidByCategory[category] = utils.Round(paidByCategory[category])
	}

	return &models.StudentBalance{
		PlanID:         plan.ID,
		PaidTotal:      utils.Round(paidTotal),
		PaidByCategory: paidByCategory,
		Balances:       balances,
		BalanceTotal:   utils.Round(utils.FloorZero(planTotal - paidTotal)),
	}
}
