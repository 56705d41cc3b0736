package testutils

import (
	"time"

	"pantry-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Unique email per user to satisfy the unique index
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:       id.String()[:8] + "@test.com",
		DisplayName: "Test User",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// ShoppingListFactory provides methods to create test ShoppingList data
type ShoppingListFactory struct{}

// NewShoppingListFactory creates a new ShoppingListFactory
func NewShoppingListFactory() *ShoppingListFactory {
	return &ShoppingListFactory{}
}

// Create creates a test ShoppingList with default values
func (f *ShoppingListFactory) Create() *models.ShoppingList {
	return &models.ShoppingList{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Test List",
		OwnerID:    uuid.New(),
		Status:     models.ListStatusActive,
		IsTemplate: false,
	}
}

// WithOwner sets the owner ID for the list
func (f *ShoppingListFactory) WithOwner(ownerID uuid.UUID) *models.ShoppingList {
	list := f.Create()
	list.OwnerID = ownerID
	return list
}

// WithName sets a custom name for the list
func (f *ShoppingListFactory) WithName(name string) *models.ShoppingList {
	list := f.Create()
	list.Name = name
	return list
}

// AsTemplate marks the list as a template
func (f *ShoppingListFactory) AsTemplate(ownerID uuid.UUID) *models.ShoppingList {
	list := f.Create()
	list.OwnerID = ownerID
	list.IsTemplate = true
	return list
}

// ListItemFactory provides methods to create test ListItem data
type ListItemFactory struct{}

// NewListItemFactory creates a new ListItemFactory
func NewListItemFactory() *ListItemFactory {
	return &ListItemFactory{}
}

// Create creates a test ListItem with default values
func (f *ListItemFactory) Create() *models.ListItem {
	return &models.ListItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ListID:      uuid.New(),
		Name:        "Test Item",
		Quantity:    1,
		Unit:        "pcs",
		Category:    "pantry",
		SortOrder:   1,
		CreatedByID: uuid.New(),
	}
}

// WithList sets the list ID for the item
func (f *ListItemFactory) WithList(listID uuid.UUID) *models.ListItem {
	item := f.Create()
	item.ListID = listID
	return item
}

// WithName sets a custom name for the item
func (f *ListItemFactory) WithName(name string) *models.ListItem {
	item := f.Create()
	item.Name = name
	return item
}

// WithSortOrder sets the sort order for the item
func (f *ListItemFactory) WithSortOrder(listID uuid.UUID, order int) *models.ListItem {
	item := f.Create()
	item.ListID = listID
	item.SortOrder = order
	return item
}

// CollaboratorFactory provides methods to create test Collaborator data
type CollaboratorFactory struct{}

// NewCollaboratorFactory creates a new CollaboratorFactory
func NewCollaboratorFactory() *CollaboratorFactory {
	return &CollaboratorFactory{}
}

// Create creates a test Collaborator with default values
func (f *CollaboratorFactory) Create() *models.Collaborator {
	return &models.Collaborator{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ListID: uuid.New(),
		UserID: uuid.New(),
		Role:   "viewer",
	}
}

// WithListAndUser sets the list and user for the collaborator
func (f *CollaboratorFactory) WithListAndUser(listID, userID uuid.UUID) *models.Collaborator {
	collaborator := f.Create()
	collaborator.ListID = listID
	collaborator.UserID = userID
	return collaborator
}

// WithRole sets the collaborator role
func (f *CollaboratorFactory) WithRole(listID, userID uuid.UUID, role string) *models.Collaborator {
	collaborator := f.Create()
	collaborator.ListID = listID
	collaborator.UserID = userID
	collaborator.Role = role
	return collaborator
}

// RecipeFactory provides methods to create test Recipe data
type RecipeFactory struct{}

// NewRecipeFactory creates a new RecipeFactory
func NewRecipeFactory() *RecipeFactory {
	return &RecipeFactory{}
}

// Create creates a test Recipe with default values
func (f *RecipeFactory) Create() *models.Recipe {
	return &models.Recipe{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:      uuid.New(),
		Name:        "Test Recipe",
		Description: "A test recipe",
		Servings:    2,
	}
}

// WithUser sets the owning user for the recipe
func (f *RecipeFactory) WithUser(userID uuid.UUID) *models.Recipe {
	recipe := f.Create()
	recipe.UserID = userID
	return recipe
}

// WithIngredients sets the recipe's ingredients
func (f *RecipeFactory) WithIngredients(userID uuid.UUID, ingredients ...models.RecipeIngredient) *models.Recipe {
	recipe := f.Create()
	recipe.UserID = userID
	recipe.Ingredients = ingredients
	return recipe
}

// Ingredient creates a single ingredient line
func (f *RecipeFactory) Ingredient(name string, quantity float64, unit string, order int) models.RecipeIngredient {
	return models.RecipeIngredient{
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		SortOrder: order,
	}
}

// MealPlanFactory provides methods to create test MealPlan data
type MealPlanFactory struct{}

// NewMealPlanFactory creates a new MealPlanFactory
func NewMealPlanFactory() *MealPlanFactory {
	return &MealPlanFactory{}
}

// Create creates a test MealPlan with default values
func (f *MealPlanFactory) Create() *models.MealPlan {
	return &models.MealPlan{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:   uuid.New(),
		Date:     time.Now().Truncate(24 * time.Hour),
		MealType: models.MealTypeDinner,
	}
}

// WithUserAndDate sets the user and date for the plan
func (f *MealPlanFactory) WithUserAndDate(userID uuid.UUID, date time.Time) *models.MealPlan {
	plan := f.Create()
	plan.UserID = userID
	plan.Date = date
	return plan
}

// WithRecipe sets the referenced recipe for the plan
func (f *MealPlanFactory) WithRecipe(userID uuid.UUID, date time.Time, recipeID uuid.UUID) *models.MealPlan {
	plan := f.Create()
	plan.UserID = userID
	plan.Date = date
	plan.RecipeID = &recipeID
	return plan
}
