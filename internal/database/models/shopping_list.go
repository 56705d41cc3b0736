package models

import (
	"github.com/google/uuid"
)

// ShoppingList represents a shopping list. The owner is fixed at creation;
// items and collaborator rows are owned by the list and go away with it.
type ShoppingList struct {
	BaseModel
	Name       string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	OwnerID    uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Budget     *float64   `json:"budget,omitempty"`
	Status     ListStatus `json:"status" gorm:"not null;size:20;default:active"`
	IsTemplate bool       `json:"is_template" gorm:"not null;default:false"`

	// Relationships
	Items         []ListItem     `json:"items,omitempty" gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
	Collaborators []Collaborator `json:"collaborators,omitempty" gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShoppingList
func (ShoppingList) TableName() string {
	return "shopping_lists"
}
