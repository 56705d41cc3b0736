package repository

import (
	"time"

	"pantry-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealPlanRepository handles database operations for meal plans
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Create creates a new meal plan
func (r *MealPlanRepository) Create(plan *models.MealPlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a meal plan by ID
func (r *MealPlanRepository) GetByID(id uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByUserAndDateRange retrieves a user's meal plans with dates inside
// [start, end], ordered by date. Meal type filtering happens in the service
// layer.
func (r *MealPlanRepository) GetByUserAndDateRange(userID uuid.UUID, start, end time.Time) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := r.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// Update updates a meal plan
func (r *MealPlanRepository) Update(plan *models.MealPlan) error {
	return r.db.Save(plan).Error
}

// Delete deletes a meal plan
func (r *MealPlanRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MealPlan{}, "id = ?", id).Error
}
