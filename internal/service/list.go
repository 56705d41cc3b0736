package service

import (
	"errors"
	"fmt"

	"pantry-planner-backend/internal/access"
	"pantry-planner-backend/internal/database/models"
	apperrors "pantry-planner-backend/internal/errors"
	"pantry-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxItemsPerList caps the number of items a single list may hold.
const maxItemsPerList = 500

const timeFormat = "2006-01-02T15:04:05Z07:00"

// ListService handles business logic for shopping lists
type ListService struct {
	listRepo  repository.ShoppingListRepositoryInterface
	itemRepo  repository.ListItemRepositoryInterface
	guard     *access.Guard
	validator *validator.Validate
}

// NewListService creates a new list service
func NewListService(listRepo repository.ShoppingListRepositoryInterface, itemRepo repository.ListItemRepositoryInterface, guard *access.Guard, validator *validator.Validate) *ListService {
	return &ListService{
		listRepo:  listRepo,
		itemRepo:  itemRepo,
		guard:     guard,
		validator: validator,
	}
}

// CreateListRequest represents the request to create a shopping list
type CreateListRequest struct {
	Name       string   `json:"name" validate:"required,min=1,max=200"`
	Budget     *float64 `json:"budget,omitempty" validate:"omitempty,gt=0"`
	IsTemplate bool     `json:"is_template"`
}

// UpdateListRequest represents the request to update a shopping list
type UpdateListRequest struct {
	Name       *string            `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Budget     *float64           `json:"budget,omitempty" validate:"omitempty,gt=0"`
	Status     *models.ListStatus `json:"status,omitempty" validate:"omitempty,oneof=active completed archived"`
	IsTemplate *bool              `json:"is_template,omitempty"`
}

// DuplicateListRequest represents the request to duplicate a list or
// instantiate a template
type DuplicateListRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
}

// ListResponse represents the response for shopping list operations
type ListResponse struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	OwnerID    uuid.UUID         `json:"owner_id"`
	Budget     *float64          `json:"budget,omitempty"`
	Status     models.ListStatus `json:"status"`
	IsTemplate bool              `json:"is_template"`
	Role       string            `json:"role,omitempty"`
	IsOwner    bool              `json:"is_owner"`
	CreatedAt  string            `json:"created_at"`
	UpdatedAt  string            `json:"updated_at"`
}

// Create creates a new shopping list owned by the caller
func (s *ListService) Create(userID uuid.UUID, req *CreateListRequest) (*ListResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	list := &models.ShoppingList{
		Name:       req.Name,
		OwnerID:    userID,
		Budget:     req.Budget,
		Status:     models.ListStatusActive,
		IsTemplate: req.IsTemplate,
	}

	if err := s.listRepo.Create(list); err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	return toListResponse(list, access.RoleOwner), nil
}

// GetByID retrieves a list the caller can view. Callers without any
// relationship to the list get a not-found error, never a forbidden one.
func (s *ListService) GetByID(listID, userID uuid.UUID) (*ListResponse, error) {
	role, err := s.guard.ResolveRole(listID, userID)
	if err != nil {
		return nil, err
	}
	if !role.CanView() {
		return nil, apperrors.ErrListNotFound
	}

	list, err := s.listRepo.GetByID(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	return toListResponse(list, role), nil
}

// GetAccessible retrieves all lists the caller owns or collaborates on
func (s *ListService) GetAccessible(userID uuid.UUID) ([]ListResponse, error) {
	lists, err := s.listRepo.GetAccessibleByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lists: %w", err)
	}

	responses := make([]ListResponse, len(lists))
	for i, list := range lists {
		role := access.RoleNoAccess
		if list.OwnerID == userID {
			role = access.RoleOwner
		}
		responses[i] = *toListResponse(&list, role)
		if role == access.RoleNoAccess {
			// Collaborator role is resolved lazily by GetByID; the
			// listing only distinguishes owned from shared.
			responses[i].Role = ""
		}
	}
	return responses, nil
}

// Update updates list details. Requires Admin or Owner.
func (s *ListService) Update(listID, userID uuid.UUID, req *UpdateListRequest) (*ListResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	role, err := s.requireRole(listID, userID, access.Role.CanEditListDetails)
	if err != nil {
		return nil, err
	}

	list, err := s.listRepo.GetByID(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	if req.Name != nil {
		list.Name = *req.Name
	}
	if req.Budget != nil {
		list.Budget = req.Budget
	}
	if req.Status != nil {
		list.Status = *req.Status
	}
	if req.IsTemplate != nil {
		list.IsTemplate = *req.IsTemplate
	}

	if err := s.listRepo.Update(list); err != nil {
		return nil, fmt.Errorf("failed to update list: %w", err)
	}

	return toListResponse(list, role), nil
}

// Delete deletes a list with its items and collaborator rows. Requires Admin
// or Owner. Non-empty lists delete the same as empty ones; the cascade is
// the documented semantics.
func (s *ListService) Delete(listID, userID uuid.UUID) error {
	if _, err := s.requireRole(listID, userID, access.Role.CanDeleteList); err != nil {
		return err
	}

	if err := s.listRepo.Delete(listID); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return nil
}

// Duplicate copies a list's items into a new list owned by the caller.
// Collaborators and checked state are not copied. The new list and all item
// copies are created in a single transaction.
func (s *ListService) Duplicate(listID, userID uuid.UUID, req *DuplicateListRequest) (*ListResponse, error) {
	return s.copyList(listID, userID, req, false)
}

// CreateFromTemplate instantiates a template list for the caller. A source
// that is not flagged as a template is reported as not found.
func (s *ListService) CreateFromTemplate(templateID, userID uuid.UUID, req *DuplicateListRequest) (*ListResponse, error) {
	return s.copyList(templateID, userID, req, true)
}

func (s *ListService) copyList(sourceID, userID uuid.UUID, req *DuplicateListRequest, fromTemplate bool) (*ListResponse, error) {
	if req == nil {
		req = &DuplicateListRequest{}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	role, err := s.guard.ResolveRole(sourceID, userID)
	if err != nil {
		return nil, err
	}
	if !role.CanView() {
		return nil, apperrors.ErrListNotFound
	}

	source, err := s.listRepo.GetByID(sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	if fromTemplate && !source.IsTemplate {
		return nil, apperrors.ErrListNotFound
	}

	items, err := s.itemRepo.GetByListID(sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list items: %w", err)
	}

	name := source.Name
	if !fromTemplate {
		name = source.Name + " (Copy)"
	}
	if req.Name != nil {
		name = *req.Name
	}

	list := &models.ShoppingList{
		Name:    name,
		OwnerID: userID,
		Budget:  source.Budget,
		Status:  models.ListStatusActive,
	}

	copies := make([]models.ListItem, len(items))
	for i, item := range items {
		copies[i] = models.ListItem{
			Name:           item.Name,
			Quantity:       item.Quantity,
			Unit:           item.Unit,
			Category:       item.Category,
			EstimatedPrice: item.EstimatedPrice,
			SortOrder:      item.SortOrder,
			CreatedByID:    userID,
		}
	}

	if err := s.listRepo.CreateWithItems(list, copies); err != nil {
		return nil, fmt.Errorf("failed to copy list: %w", err)
	}

	return toListResponse(list, access.RoleOwner), nil
}

// requireRole resolves the caller's role and checks the given predicate.
// No relationship at all surfaces as not-found; an existing relationship
// that is too weak surfaces as an authorization error.
func (s *ListService) requireRole(listID, userID uuid.UUID, allowed func(access.Role) bool) (access.Role, error) {
	role, err := s.guard.ResolveRole(listID, userID)
	if err != nil {
		return role, err
	}
	if role == access.RoleNoAccess {
		return role, apperrors.ErrListNotFound
	}
	if !allowed(role) {
		return role, apperrors.ErrRoleTooLow
	}
	return role, nil
}

func toListResponse(list *models.ShoppingList, role access.Role) *ListResponse {
	return &ListResponse{
		ID:         list.ID,
		Name:       list.Name,
		OwnerID:    list.OwnerID,
		Budget:     list.Budget,
		Status:     list.Status,
		IsTemplate: list.IsTemplate,
		Role:       role.String(),
		IsOwner:    role.IsOwner(),
		CreatedAt:  list.CreatedAt.Format(timeFormat),
		UpdatedAt:  list.UpdatedAt.Format(timeFormat),
	}
}

// validationFailed converts validator.Struct failures into the Validation
// error kind so handlers answer them with 400, not 500.
func validationFailed(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return apperrors.NewValidationError(first.Field(), fmt.Sprintf("failed on the %s rule", first.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// notFoundAs maps gorm's record-not-found onto the given sentinel, keeping
// other errors wrapped.
func notFoundAs(err error, sentinel error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("%s: %w", action, err)
}
