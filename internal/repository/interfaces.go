package repository

import (
	"time"

	"pantry-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ShoppingListRepositoryInterface defines the interface for shopping list repository operations
type ShoppingListRepositoryInterface interface {
	Create(list *models.ShoppingList) error
	GetByID(id uuid.UUID) (*models.ShoppingList, error)
	GetAccessibleByUser(userID uuid.UUID) ([]models.ShoppingList, error)
	Update(list *models.ShoppingList) error
	Delete(id uuid.UUID) error
	CreateWithItems(list *models.ShoppingList, items []models.ListItem) error
}

// ListItemRepositoryInterface defines the interface for list item repository operations
type ListItemRepositoryInterface interface {
	Create(item *models.ListItem) error
	GetByID(id uuid.UUID) (*models.ListItem, error)
	GetByListID(listID uuid.UUID) ([]models.ListItem, error)
	Update(item *models.ListItem) error
	Delete(id uuid.UUID) error
	CountByListID(listID uuid.UUID) (int64, error)
	MaxSortOrder(listID uuid.UUID) (int, error)
	UpdateSortOrders(listID uuid.UUID, orders map[uuid.UUID]int) error
}

// CollaboratorRepositoryInterface defines the interface for collaborator repository operations
type CollaboratorRepositoryInterface interface {
	Create(collaborator *models.Collaborator) error
	GetByListAndUser(listID, userID uuid.UUID) (*models.Collaborator, error)
	GetByListID(listID uuid.UUID) ([]models.Collaborator, error)
	Update(collaborator *models.Collaborator) error
	Delete(listID, userID uuid.UUID) error
}

// RecipeRepositoryInterface defines the interface for recipe repository operations
type RecipeRepositoryInterface interface {
	Create(recipe *models.Recipe) error
	GetByID(id uuid.UUID) (*models.Recipe, error)
	GetByUserID(userID uuid.UUID) ([]models.Recipe, error)
	Update(recipe *models.Recipe) error
	ReplaceIngredients(recipeID uuid.UUID, ingredients []models.RecipeIngredient) error
	Delete(id uuid.UUID) error
}

// MealPlanRepositoryInterface defines the interface for meal plan repository operations
type MealPlanRepositoryInterface interface {
	Create(plan *models.MealPlan) error
	GetByID(id uuid.UUID) (*models.MealPlan, error)
	GetByUserAndDateRange(userID uuid.UUID, start, end time.Time) ([]models.MealPlan, error)
	Update(plan *models.MealPlan) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
