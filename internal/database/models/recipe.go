package models

import (
	"github.com/google/uuid"
)

// Recipe represents a user's recipe with an ordered ingredient list.
// Ingredients have no existence outside their recipe.
type Recipe struct {
	BaseModel
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string    `json:"description" gorm:"size:2000"`
	Servings    int       `json:"servings" gorm:"not null;default:1"`

	// Relationships
	Ingredients []RecipeIngredient `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient is a single ingredient line of a recipe
type RecipeIngredient struct {
	BaseModel
	RecipeID  uuid.UUID `json:"recipe_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Quantity  float64   `json:"quantity" gorm:"type:numeric(10,2);not null;default:1" validate:"gt=0"`
	Unit      string    `json:"unit" gorm:"size:50"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0"`
}

// TableName returns the table name for RecipeIngredient
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
