package models

import (
	"time"

	"github.com/google/uuid"
)

// ListItem represents a single entry on a shopping list. Sort order is
// monotonically increasing per list; freed slots are never reused.
type ListItem struct {
	BaseModel
	ListID         uuid.UUID  `json:"list_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Quantity       float64    `json:"quantity" gorm:"type:numeric(10,2);not null;default:1" validate:"gt=0"`
	Unit           string     `json:"unit" gorm:"size:50"`
	Category       string     `json:"category" gorm:"size:50"`
	IsChecked      bool       `json:"is_checked" gorm:"not null;default:false"`
	CheckedAt      *time.Time `json:"checked_at,omitempty"`
	EstimatedPrice *float64   `json:"estimated_price,omitempty"`
	SortOrder      int        `json:"sort_order" gorm:"not null;default:0"`
	CreatedByID    uuid.UUID  `json:"created_by_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for ListItem
func (ListItem) TableName() string {
	return "list_items"
}
