package models

// User represents an authenticated account. Credential verification happens
// upstream; this table only backs identity lookups such as share-by-email.
type User struct {
	BaseModel
	Email       string `json:"email" gorm:"not null;size:255;uniqueIndex" validate:"required,email"`
	DisplayName string `json:"display_name" gorm:"size:100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
