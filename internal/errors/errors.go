package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found. It is also
// returned when the caller has no access to the entity, so cross-tenant reads
// cannot be distinguished from missing rows.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this list and user"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthorizationError represents an action the caller's role does not permit.
// It is only used when the caller already has some relationship to the
// resource; callers with no relationship get a NotFoundError instead.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrListNotFound         = &NotFoundError{Entity: "shopping list"}
	ErrItemNotFound         = &NotFoundError{Entity: "list item"}
	ErrCollaboratorNotFound = &NotFoundError{Entity: "collaborator"}
	ErrRecipeNotFound       = &NotFoundError{Entity: "recipe"}
	ErrMealPlanNotFound     = &NotFoundError{Entity: "meal plan"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrCollaboratorExists = &AlreadyExistsError{Entity: "collaborator", Context: "for this list and user"}
)

// Authorization Errors
var (
	ErrRoleTooLow       = &AuthorizationError{Message: "the caller's role does not permit this action"}
	ErrOwnerCannotLeave = &AuthorizationError{Message: "the list owner cannot leave the list"}
)

// Business Logic Errors
var (
	ErrItemLimitReached    = &ValidationError{Field: "items", Message: "list already holds the maximum number of items"}
	ErrInvalidRole         = &ValidationError{Field: "role", Message: "role must be one of viewer, editor, admin"}
	ErrInvalidDateRange    = &ValidationError{Field: "date_range", Message: "start date must not be after end date"}
	ErrOwnerAsCollaborator = &ValidationError{Field: "email", Message: "the list owner cannot be added as a collaborator"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
