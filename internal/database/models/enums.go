package models

// ListStatus represents the lifecycle status of a shopping list
type ListStatus string

const (
	ListStatusActive    ListStatus = "active"
	ListStatusCompleted ListStatus = "completed"
	ListStatusArchived  ListStatus = "archived"
)

// MealType represents the slot a meal plan occupies on a day
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)
