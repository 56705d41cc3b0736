package service

import (
	"fmt"
	"strings"
	"time"

	"pantry-planner-backend/internal/access"
	"pantry-planner-backend/internal/categorizer"
	"pantry-planner-backend/internal/database/models"
	apperrors "pantry-planner-backend/internal/errors"
	"pantry-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AggregatorService builds a shopping list from the recipes of a date range
// of meal plans, merging same-named ingredient quantities.
type AggregatorService struct {
	mealPlanRepo repository.MealPlanRepositoryInterface
	recipeRepo   repository.RecipeRepositoryInterface
	listRepo     repository.ShoppingListRepositoryInterface
	validator    *validator.Validate
}

// NewAggregatorService creates a new aggregator service
func NewAggregatorService(mealPlanRepo repository.MealPlanRepositoryInterface, recipeRepo repository.RecipeRepositoryInterface, listRepo repository.ShoppingListRepositoryInterface, validator *validator.Validate) *AggregatorService {
	return &AggregatorService{
		mealPlanRepo: mealPlanRepo,
		recipeRepo:   recipeRepo,
		listRepo:     listRepo,
		validator:    validator,
	}
}

// GenerateListRequest represents the request to generate a shopping list
// from meal plans
type GenerateListRequest struct {
	StartDate time.Time        `json:"start_date" validate:"required"`
	EndDate   time.Time        `json:"end_date" validate:"required"`
	MealType  *models.MealType `json:"meal_type,omitempty" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	ListName  *string          `json:"list_name,omitempty" validate:"omitempty,min=1,max=200"`
}

// mergeEntry accumulates the quantity of one (name, unit) bucket
type mergeEntry struct {
	name     string
	unit     string
	quantity float64
}

// Generate fetches the caller's meal plans inside the date range, collects
// each referenced recipe's ingredients once, merges quantities by lowercased
// name, and commits the new list with all items in a single transaction.
// Same name with a different unit becomes a second entry under a
// name-plus-unit key; no unit conversion is attempted.
func (s *AggregatorService) Generate(userID uuid.UUID, req *GenerateListRequest) (*ListResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	if req.StartDate.After(req.EndDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	plans, err := s.mealPlanRepo.GetByUserAndDateRange(userID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get meal plans: %w", err)
	}

	// The date filter runs in the repository; the meal type filter runs here
	// because the underlying query handles one type at a time.
	if req.MealType != nil {
		filtered := plans[:0]
		for _, plan := range plans {
			if plan.MealType == *req.MealType {
				filtered = append(filtered, plan)
			}
		}
		plans = filtered
	}

	// Each recipe is fetched once even when it appears on several days.
	// Plans without a recipe contribute nothing.
	seen := make(map[uuid.UUID]bool)
	var recipeIDs []uuid.UUID
	for _, plan := range plans {
		if plan.RecipeID == nil || seen[*plan.RecipeID] {
			continue
		}
		seen[*plan.RecipeID] = true
		recipeIDs = append(recipeIDs, *plan.RecipeID)
	}

	entries := make(map[string]*mergeEntry)
	var order []string
	for _, recipeID := range recipeIDs {
		recipe, err := s.recipeRepo.GetByID(recipeID)
		if err != nil {
			return nil, fmt.Errorf("failed to get recipe %s: %w", recipeID, err)
		}
		for _, ingredient := range recipe.Ingredients {
			name := strings.ToLower(ingredient.Name)
			key := name
			if existing, ok := entries[key]; ok && existing.unit != ingredient.Unit {
				// Never merge across units; keep both quantities under
				// visibly different keys.
				key = name + "_" + ingredient.Unit
			}
			if existing, ok := entries[key]; ok {
				existing.quantity = round2(existing.quantity + ingredient.Quantity)
			} else {
				entries[key] = &mergeEntry{
					name:     name,
					unit:     ingredient.Unit,
					quantity: round2(ingredient.Quantity),
				}
				order = append(order, key)
			}
		}
	}

	name := fmt.Sprintf("Meal Plan: %s - %s",
		req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	if req.ListName != nil {
		name = *req.ListName
	}

	list := &models.ShoppingList{
		Name:    name,
		OwnerID: userID,
		Status:  models.ListStatusActive,
	}

	items := make([]models.ListItem, len(order))
	for i, key := range order {
		entry := entries[key]
		category := ""
		if slug, ok := categorizer.Classify(entry.name); ok {
			category = slug
		}
		items[i] = models.ListItem{
			Name:        entry.name,
			Quantity:    entry.quantity,
			Unit:        entry.unit,
			Category:    category,
			SortOrder:   i + 1,
			CreatedByID: userID,
		}
	}

	if err := s.listRepo.CreateWithItems(list, items); err != nil {
		return nil, fmt.Errorf("failed to create generated list: %w", err)
	}

	// Items are re-fetched by the caller; the response carries the list only.
	return toListResponse(list, access.RoleOwner), nil
}
