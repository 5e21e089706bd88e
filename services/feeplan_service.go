package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/repository"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// FeePlanService handles fee plan management and totals calculation
type FeePlanService struct {
	feePlanRepo *repository.FeePlanRepository
}

// NewFeePlanService creates a new fee plan service
func NewFeePlanService(feePlanRepo *repository.FeePlanRepository) *FeePlanService {
	return &FeePlanService{feePlanRepo: feePlanRepo}
}

// CalculateTotals computes the derived totals for a plan. Pure: inputs are
// coerced (NaN and infinities count as zero), nothing is stored, and
// running it twice on an unmodified plan yields identical results.
func (s *FeePlanService) CalculateTotals(plan *models.FeePlan) models.FeePlanTotals {
	units := plan.Units
	if units < 0 {
		units = 0
	}

	tuition := float64(units) * utils.SanitizeAmount(plan.TuitionPerUnit)

	var others float64
	for _, item := range plan.FeeItems {
		others += utils.SanitizeAmount(item.Amount)
	}

	registration := utils.SanitizeAmount(plan.RegistrationFee)

	return models.FeePlanTotals{
		Tuition: utils.Round(tuition),
		Others:  utils.Round(others),
		Total:   utils.Round(registration + tuition + others),
	}
}

// CreateFeePlan creates a new plan
func (s *FeePlanService) CreateFeePlan(req *models.CreateFeePlanRequest) (*models.FeePlan, error) {
	if err := utils.ValidateRequired(req.Program, "program"); err != nil {
		return nil, err
	}
	if err := validatePlanAmounts(req.TuitionPerUnit, req.RegistrationFee, req.FeeItems); err != nil {
		return nil, err
	}

	now := time.Now()
	plan := &models.FeePlan{
		ID:              uuid.NewString(),
		Program:         req.Program,
		Units:           req.Units,
		TuitionPerUnit:  req.TuitionPerUnit,
		RegistrationFee: req.RegistrationFee,
		FeeItems:        normalizeFeeItems(req.FeeItems),
		CategoryAmounts: normalizeCategoryAmounts(req.CategoryAmounts),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.feePlanRepo.CreateFeePlan(plan); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return plan, nil
}

// UpdateFeePlan mutates a plan in place. Edits silently change historical
// totals for any computation performed afterwards; plans are not versioned.
func (s *FeePlanService) UpdateFeePlan(planID string, req *models.UpdateFeePlanRequest) (*models.FeePlan, error) {
	plan, err := s.GetFeePlan(planID)
	if err != nil {
		return nil, err
	}
	if err := validatePlanAmounts(req.TuitionPerUnit, req.RegistrationFee, nil); err != nil {
		return nil, err
	}

	plan.Program = req.Program
	plan.Units = req.Units
	plan.TuitionPerUnit = req.TuitionPerUnit
	plan.RegistrationFee = req.RegistrationFee
	if req.CategoryAmounts != nil {
		plan.CategoryAmounts = normalizeCategoryAmounts(req.CategoryAmounts)
	}

	if err := s.feePlanRepo.UpdateFeePlan(plan); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return plan, nil
}

// AddFeeItem appends a fee item to a plan
func (s *FeePlanService) AddFeeItem(planID string, req *models.AddFeeItemRequest) (*models.FeePlan, error) {
	plan, err := s.GetFeePlan(planID)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(req.Amount, "fee item amount"); err != nil {
		return nil, err
	}

	plan.FeeItems = append(plan.FeeItems, models.FeeItem{Name: req.Name, Amount: req.Amount})
	plan.FeeItems = normalizeFeeItems(plan.FeeItems)

	if err := s.feePlanRepo.UpdateFeePlan(plan); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return plan, nil
}

// RemoveFeeItem removes the fee item at the given index
func (s *FeePlanService) RemoveFeeItem(planID string, index int) (*models.FeePlan, error) {
	plan, err := s.GetFeePlan(planID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(plan.FeeItems) {
		return nil, utils.NewBadRequestError("fee item index out of range")
	}

	plan.FeeItems = append(plan.FeeItems[:index], plan.FeeItems[index+1:]...)

	if err := s.feePlanRepo.UpdateFeePlan(plan); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return plan, nil
}

// GetFeePlan retrieves a plan by ID
func (s *FeePlanService) GetFeePlan(planID string) (*models.FeePlan, error) {
	plan, err := s.feePlanRepo.GetFeePlanByID(planID)
	if err != nil {
		return nil, utils.NewNotFoundError("Fee plan")
	}
	return plan, nil
}

// ListFeePlans retrieves all plans
func (s *FeePlanService) ListFeePlans() ([]models.FeePlan, error) {
	plans, err := s.feePlanRepo.ListFeePlans()
	if err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}
	return plans, nil
}

func validatePlanAmounts(tuitionPerUnit, registrationFee float64, items []models.FeeItem) error {
	if err := utils.ValidateNonNegative(tuitionPerUnit, "tuition per unit"); err != nil {
		return err
	}
	if err := utils.ValidateNonNegative(registrationFee, "registration fee"); err != nil {
		return err
	}
	for i, item := range items {
		if item.Amount < 0 {
			return utils.NewValidationError(fmt.Sprintf("fee item %d amount cannot be negative", i+1))
		}
	}
	return nil
}

// normalizeFeeItems fills blank item names with a placeholder
func normalizeFeeItems(items []models.FeeItem) []models.FeeItem {
	normalized := make([]models.FeeItem, len(items))
	for i, item := range items {
		normalized[i] = item
		if item.Name == "" {
			normalized[i].Name = fmt.Sprintf("Fee %d", i+1)
		}
	}
	return normalized
}

// normalizeCategoryAmounts keeps only the four fixed categories; a plan
// with an undefined category amount is treated as zero for that category
func normalizeCategoryAmounts(amounts map[string]float64) map[string]float64 {
	byKey := make(map[string]float64)
	for key, value := range amounts {
		byKey[utils.NormalizeCategory(key)] = value
	}

	normalized := make(map[string]float64)
	for _, category := range utils.FeeCategories {
		normalized[category] = utils.SanitizeAmount(byKey[category])
	}
	return normalized
}
