package models

import (
	"github.com/google/uuid"
)

// Collaborator grants a non-owner user access to a shopping list. The role
// column holds viewer, editor or admin; the owner never appears as a row here
// (ownership is derived from the list itself).
type Collaborator struct {
	BaseModel
	ListID uuid.UUID `json:"list_id" gorm:"type:uuid;not null;uniqueIndex:idx_collaborators_list_user" validate:"required"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_collaborators_list_user;index" validate:"required"`
	Role   string    `json:"role" gorm:"not null;size:20" validate:"required,oneof=viewer editor admin"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Collaborator
func (Collaborator) TableName() string {
	return "collaborators"
}
