package repository

import (
	"pantry-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository handles database operations for recipes and their ingredients
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a recipe together with its ingredients
func (r *RecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

// GetByID retrieves a recipe with its ingredients in recipe order
func (r *RecipeRepository) GetByID(id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("recipe_ingredients.sort_order ASC")
	}).First(&recipe, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetByUserID retrieves all recipes of a user
func (r *RecipeRepository) GetByUserID(userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Update updates a recipe's own columns (not its ingredients)
func (r *RecipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Omit("Ingredients").Save(recipe).Error
}

// ReplaceIngredients swaps the recipe's ingredient list in one transaction
func (r *RecipeRepository) ReplaceIngredients(recipeID uuid.UUID, ingredients []models.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.RecipeIngredient{}, "recipe_id = ?", recipeID).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].RecipeID = recipeID
			if err := tx.Create(&ingredients[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a recipe. Ingredients cascade; meal plans referencing the
// recipe keep their row with the reference cleared.
func (r *RecipeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Recipe{}, "id = ?", id).Error
}
