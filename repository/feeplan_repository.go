package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/enrollpay/enrollpay-backend/models"
)

// FeePlanRepository handles fee plan data operations
type FeePlanRepository struct {
	db *sql.DB
}

// NewFeePlanRepository creates a new fee plan repository
func NewFeePlanRepository(db *sql.DB) *FeePlanRepository {
	return &FeePlanRepository{db: db}
}

// CreateFeePlan inserts a new plan
func (r *FeePlanRepository) CreateFeePlan(plan *models.FeePlan) error {
	items, err := json.Marshal(plan.FeeItems)
	if err != nil {
		return err
	}
	amounts, err := json.Marshal(plan.CategoryAmounts)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO fee_plans (id, program, units, tuition_per_unit, registration_fee, fee_items, category_amounts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.Exec(query, plan.ID, plan.Program, plan.Units, plan.TuitionPerUnit,
		plan.RegistrationFee, items, amounts, plan.CreatedAt, plan.UpdatedAt)
	return err
}

// UpdateFeePlan updates a plan in place. Plans are never versioned, so
// computations performed after the edit see the new figures.
func (r *FeePlanRepository) UpdateFeePlan(plan *models.FeePlan) error {
	items, err := json.Marshal(plan.FeeItems)
	if err != nil {
		return err
	}
	amounts, err := json.Marshal(plan.CategoryAmounts)
	if err != nil {
		return err
	}

	query := `
		UPDATE fee_plans
		SET program = $2, units = $3, tuition_per_unit = $4, registration_fee = $5,
		    fee_items = $6, category_amounts = $7, updated_at = now()
		WHERE id = $1
	`
	_, err = r.db.Exec(query, plan.ID, plan.Program, plan.Units, plan.TuitionPerUnit,
		plan.RegistrationFee, items, amounts)
	return err
}

// GetFeePlanByID retrieves a plan by its ID
func (r *FeePlanRepository) GetFeePlanByID(planID string) (*models.FeePlan, error) {
	query := `
		SELECT id, program, units, tuition_per_unit, registration_fee, fee_items, category_amounts, created_at, updated_at
		FROM fee_plans
		WHERE id = $1
	`
	return scanFeePlan(r.db.QueryRow(query, planID))
}

// ListFeePlans retrieves all plans, newest first
func (r *FeePlanRepository) ListFeePlans() ([]models.FeePlan, error) {
	query := `
		SELECT id, program, units, tuition_per_unit, registration_fee, fee_items, category_amounts, created_at, updated_at
		FROM fee_plans
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.FeePlan
	for rows.Next() {
		plan, err := scanFeePlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}

func scanFeePlan(row rowScanner) (*models.FeePlan, error) {
	var plan models.FeePlan
	var items, amounts []byte
	err := row.Scan(&plan.ID, &plan.Program, &plan.Units, &plan.TuitionPerUnit,
		&plan.RegistrationFee, &items, &amounts, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &plan.FeeItems); err != nil {
			return nil, err
		}
	}
	plan.CategoryAmounts = make(map[string]float64)
	if len(amounts) > 0 {
		if err := json.Unmarshal(amounts, &plan.CategoryAmounts); err != nil {
			return nil, err
		}
	}
	return &plan, nil
}
