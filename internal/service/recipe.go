package service

import (
	"fmt"

	"pantry-planner-backend/internal/database/models"
	apperrors "pantry-planner-backend/internal/errors"
	"pantry-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RecipeService handles business logic for recipes. Recipes are private to
// their owner; cross-tenant reads surface as not-found.
type RecipeService struct {
	recipeRepo repository.RecipeRepositoryInterface
	validator  *validator.Validate
}

// NewRecipeService creates a new recipe service
func NewRecipeService(recipeRepo repository.RecipeRepositoryInterface, validator *validator.Validate) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		validator:  validator,
	}
}

// IngredientInput represents one ingredient line in a recipe request
type IngredientInput struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
	Unit     string  `json:"unit" validate:"max=50"`
}

// CreateRecipeRequest represents the request to create a recipe
type CreateRecipeRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=200"`
	Description string            `json:"description" validate:"max=2000"`
	Servings    int               `json:"servings" validate:"omitempty,gt=0"`
	Ingredients []IngredientInput `json:"ingredients" validate:"dive"`
}

// UpdateRecipeRequest represents the request to update a recipe. A non-nil
// ingredient slice replaces the whole ingredient list.
type UpdateRecipeRequest struct {
	Name        *string            `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string            `json:"description,omitempty" validate:"omitempty,max=2000"`
	Servings    *int               `json:"servings,omitempty" validate:"omitempty,gt=0"`
	Ingredients *[]IngredientInput `json:"ingredients,omitempty" validate:"omitempty,dive"`
}

// IngredientResponse represents one ingredient line of a recipe
type IngredientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit,omitempty"`
	SortOrder int       `json:"sort_order"`
}

// RecipeResponse represents the response for recipe operations
type RecipeResponse struct {
	ID          uuid.UUID            `json:"id"`
	UserID      uuid.UUID            `json:"user_id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Servings    int                  `json:"servings"`
	Ingredients []IngredientResponse `json:"ingredients,omitempty"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// Create creates a recipe with its ingredients for the caller
func (s *RecipeService) Create(userID uuid.UUID, req *CreateRecipeRequest) (*RecipeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	servings := req.Servings
	if servings == 0 {
		servings = 1
	}

	recipe := &models.Recipe{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Servings:    servings,
		Ingredients: toIngredientModels(req.Ingredients),
	}

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return toRecipeResponse(recipe), nil
}

// GetByID retrieves one of the caller's recipes with its ingredients
func (s *RecipeService) GetByID(recipeID, userID uuid.UUID) (*RecipeResponse, error) {
	recipe, err := s.getOwned(recipeID, userID)
	if err != nil {
		return nil, err
	}
	return toRecipeResponse(recipe), nil
}

// GetByUser retrieves all of the caller's recipes
func (s *RecipeService) GetByUser(userID uuid.UUID) ([]RecipeResponse, error) {
	recipes, err := s.recipeRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes: %w", err)
	}

	responses := make([]RecipeResponse, len(recipes))
	for i, recipe := range recipes {
		responses[i] = *toRecipeResponse(&recipe)
	}
	return responses, nil
}

// Update updates a recipe; replacing ingredients is transactional
func (s *RecipeService) Update(recipeID, userID uuid.UUID, req *UpdateRecipeRequest) (*RecipeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	recipe, err := s.getOwned(recipeID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}

	if err := s.recipeRepo.Update(recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	if req.Ingredients != nil {
		ingredients := toIngredientModels(*req.Ingredients)
		if err := s.recipeRepo.ReplaceIngredients(recipe.ID, ingredients); err != nil {
			return nil, fmt.Errorf("failed to replace ingredients: %w", err)
		}
		recipe.Ingredients = ingredients
	}

	return toRecipeResponse(recipe), nil
}

// Delete deletes one of the caller's recipes
func (s *RecipeService) Delete(recipeID, userID uuid.UUID) error {
	if _, err := s.getOwned(recipeID, userID); err != nil {
		return err
	}
	if err := s.recipeRepo.Delete(recipeID); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

func (s *RecipeService) getOwned(recipeID, userID uuid.UUID) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrRecipeNotFound, "failed to get recipe")
	}
	if recipe.UserID != userID {
		return nil, apperrors.ErrRecipeNotFound
	}
	return recipe, nil
}

func toIngredientModels(inputs []IngredientInput) []models.RecipeIngredient {
	ingredients := make([]models.RecipeIngredient, len(inputs))
	for i, input := range inputs {
		ingredients[i] = models.RecipeIngredient{
			Name:      input.Name,
			Quantity:  round2(input.Quantity),
			Unit:      input.Unit,
			SortOrder: i + 1,
		}
	}
	return ingredients
}

func toRecipeResponse(recipe *models.Recipe) *RecipeResponse {
	ingredients := make([]IngredientResponse, len(recipe.Ingredients))
	for i, ingredient := range recipe.Ingredients {
		ingredients[i] = IngredientResponse{
			ID:        ingredient.ID,
			Name:      ingredient.Name,
			Quantity:  ingredient.Quantity,
			Unit:      ingredient.Unit,
			SortOrder: ingredient.SortOrder,
		}
	}
	return &RecipeResponse{
		ID:          recipe.ID,
		UserID:      recipe.UserID,
		Name:        recipe.Name,
		Description: recipe.Description,
		Servings:    recipe.Servings,
		Ingredients: ingredients,
		CreatedAt:   recipe.CreatedAt.Format(timeFormat),
		UpdatedAt:   recipe.UpdatedAt.Format(timeFormat),
	}
}
