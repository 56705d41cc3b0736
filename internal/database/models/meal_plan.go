package models

import (
	"time"

	"github.com/google/uuid"
)

// MealPlan represents a planned meal on a date. The recipe reference is
// optional (a plain note is a valid plan) and the same date+meal type may
// carry multiple entries.
type MealPlan struct {
	BaseModel
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date        time.Time  `json:"date" gorm:"type:date;not null;index" validate:"required"`
	MealType    MealType   `json:"meal_type" gorm:"not null;size:20" validate:"required,oneof=breakfast lunch dinner snack"`
	RecipeID    *uuid.UUID `json:"recipe_id,omitempty" gorm:"type:uuid;index"`
	Notes       string     `json:"notes" gorm:"size:1000"`
	IsCompleted bool       `json:"is_completed" gorm:"not null;default:false"`

	// Relationships
	Recipe *Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for MealPlan
func (MealPlan) TableName() string {
	return "meal_plans"
}
