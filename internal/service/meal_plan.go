package service

import (
	"fmt"
	"time"

	"pantry-planner-backend/internal/database/models"
	apperrors "pantry-planner-backend/internal/errors"
	"pantry-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MealPlanService handles business logic for meal plans. Plans are private
// per user; a date and meal type may carry several entries.
type MealPlanService struct {
	mealPlanRepo repository.MealPlanRepositoryInterface
	recipeRepo   repository.RecipeRepositoryInterface
	validator    *validator.Validate
}

// NewMealPlanService creates a new meal plan service
func NewMealPlanService(mealPlanRepo repository.MealPlanRepositoryInterface, recipeRepo repository.RecipeRepositoryInterface, validator *validator.Validate) *MealPlanService {
	return &MealPlanService{
		mealPlanRepo: mealPlanRepo,
		recipeRepo:   recipeRepo,
		validator:    validator,
	}
}

// CreateMealPlanRequest represents the request to plan a meal
type CreateMealPlanRequest struct {
	Date     time.Time       `json:"date" validate:"required"`
	MealType models.MealType `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	RecipeID *uuid.UUID      `json:"recipe_id,omitempty"`
	Notes    string          `json:"notes" validate:"max=1000"`
}

// UpdateMealPlanRequest represents the request to update a meal plan
type UpdateMealPlanRequest struct {
	Date        *time.Time       `json:"date,omitempty"`
	MealType    *models.MealType `json:"meal_type,omitempty" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	RecipeID    *uuid.UUID       `json:"recipe_id,omitempty"`
	Notes       *string          `json:"notes,omitempty" validate:"omitempty,max=1000"`
	IsCompleted *bool            `json:"is_completed,omitempty"`
}

// MealPlanResponse represents the response for meal plan operations
type MealPlanResponse struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Date        string          `json:"date"`
	MealType    models.MealType `json:"meal_type"`
	RecipeID    *uuid.UUID      `json:"recipe_id,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	IsCompleted bool            `json:"is_completed"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// Create plans a meal for the caller. A referenced recipe must belong to the
// caller.
func (s *MealPlanService) Create(userID uuid.UUID, req *CreateMealPlanRequest) (*MealPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	if req.RecipeID != nil {
		if err := s.checkRecipeOwnership(*req.RecipeID, userID); err != nil {
			return nil, err
		}
	}

	plan := &models.MealPlan{
		UserID:   userID,
		Date:     req.Date,
		MealType: req.MealType,
		RecipeID: req.RecipeID,
		Notes:    req.Notes,
	}

	if err := s.mealPlanRepo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create meal plan: %w", err)
	}
	return toMealPlanResponse(plan), nil
}

// GetByID retrieves one of the caller's meal plans
func (s *MealPlanService) GetByID(planID, userID uuid.UUID) (*MealPlanResponse, error) {
	plan, err := s.getOwned(planID, userID)
	if err != nil {
		return nil, err
	}
	return toMealPlanResponse(plan), nil
}

// GetRange retrieves the caller's meal plans in a date range, optionally
// narrowed to one meal type.
func (s *MealPlanService) GetRange(userID uuid.UUID, start, end time.Time, mealType *models.MealType) ([]MealPlanResponse, error) {
	if start.After(end) {
		return nil, apperrors.ErrInvalidDateRange
	}

	plans, err := s.mealPlanRepo.GetByUserAndDateRange(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal plans: %w", err)
	}

	responses := make([]MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		if mealType != nil && plan.MealType != *mealType {
			continue
		}
		responses = append(responses, *toMealPlanResponse(&plan))
	}
	return responses, nil
}

// Update updates one of the caller's meal plans
func (s *MealPlanService) Update(planID, userID uuid.UUID, req *UpdateMealPlanRequest) (*MealPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	plan, err := s.getOwned(planID, userID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		plan.Date = *req.Date
	}
	if req.MealType != nil {
		plan.MealType = *req.MealType
	}
	if req.RecipeID != nil {
		if err := s.checkRecipeOwnership(*req.RecipeID, userID); err != nil {
			return nil, err
		}
		plan.RecipeID = req.RecipeID
	}
	if req.Notes != nil {
		plan.Notes = *req.Notes
	}
	if req.IsCompleted != nil {
		plan.IsCompleted = *req.IsCompleted
	}

	if err := s.mealPlanRepo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to update meal plan: %w", err)
	}
	return toMealPlanResponse(plan), nil
}

// Delete deletes one of the caller's meal plans
func (s *MealPlanService) Delete(planID, userID uuid.UUID) error {
	if _, err := s.getOwned(planID, userID); err != nil {
		return err
	}
	if err := s.mealPlanRepo.Delete(planID); err != nil {
		return fmt.Errorf("failed to delete meal plan: %w", err)
	}
	return nil
}

func (s *MealPlanService) getOwned(planID, userID uuid.UUID) (*models.MealPlan, error) {
	plan, err := s.mealPlanRepo.GetByID(planID)
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrMealPlanNotFound, "failed to get meal plan")
	}
	if plan.UserID != userID {
		return nil, apperrors.ErrMealPlanNotFound
	}
	return plan, nil
}

func (s *MealPlanService) checkRecipeOwnership(recipeID, userID uuid.UUID) error {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return notFoundAs(err, apperrors.ErrRecipeNotFound, "failed to get recipe")
	}
	if recipe.UserID != userID {
		return apperrors.ErrRecipeNotFound
	}
	return nil
}

func toMealPlanResponse(plan *models.MealPlan) *MealPlanResponse {
	return &MealPlanResponse{
		ID:          plan.ID,
		UserID:      plan.UserID,
		Date:        plan.Date.Format("2006-01-02"),
		MealType:    plan.MealType,
		RecipeID:    plan.RecipeID,
		Notes:       plan.Notes,
		IsCompleted: plan.IsCompleted,
		CreatedAt:   plan.CreatedAt.Format(timeFormat),
		UpdatedAt:   plan.UpdatedAt.Format(timeFormat),
	}
}
