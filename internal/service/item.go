package service

import (
	"fmt"
	"math"
	"time"

	"pantry-planner-backend/internal/access"
	"pantry-planner-backend/internal/categorizer"
	"pantry-planner-backend/internal/database/models"
	apperrors "pantry-planner-backend/internal/errors"
	"pantry-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ItemService handles business logic for list items
type ItemService struct {
	itemRepo  repository.ListItemRepositoryInterface
	guard     *access.Guard
	validator *validator.Validate
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ListItemRepositoryInterface, guard *access.Guard, validator *validator.Validate) *ItemService {
	return &ItemService{
		itemRepo:  itemRepo,
		guard:     guard,
		validator: validator,
	}
}

// CreateItemRequest represents the request to add an item to a list
type CreateItemRequest struct {
	Name           string   `json:"name" validate:"required,min=1,max=200"`
	Quantity       float64  `json:"quantity" validate:"required,gt=0"`
	Unit           string   `json:"unit" validate:"max=50"`
	Category       *string  `json:"category,omitempty" validate:"omitempty,max=50"`
	EstimatedPrice *float64 `json:"estimated_price,omitempty" validate:"omitempty,gte=0"`
}

// UpdateItemRequest represents the request to update an item
type UpdateItemRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Quantity       *float64 `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Unit           *string  `json:"unit,omitempty" validate:"omitempty,max=50"`
	Category       *string  `json:"category,omitempty" validate:"omitempty,max=50"`
	EstimatedPrice *float64 `json:"estimated_price,omitempty" validate:"omitempty,gte=0"`
}

// ToggleCheckRequest represents the request to check or uncheck an item. An
// actual price supplied while checking replaces the estimate.
type ToggleCheckRequest struct {
	ActualPrice *float64 `json:"actual_price,omitempty" validate:"omitempty,gte=0"`
}

// MoveItemRequest represents the request to move an item to another list
type MoveItemRequest struct {
	TargetListID uuid.UUID `json:"target_list_id" validate:"required"`
}

// ReorderItemsRequest carries the full item ordering for a list
type ReorderItemsRequest struct {
	ItemIDs []uuid.UUID `json:"item_ids" validate:"required,min=1"`
}

// ItemResponse represents the response for item operations
type ItemResponse struct {
	ID             uuid.UUID  `json:"id"`
	ListID         uuid.UUID  `json:"list_id"`
	Name           string     `json:"name"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit,omitempty"`
	Category       string     `json:"category,omitempty"`
	IsChecked      bool       `json:"is_checked"`
	CheckedAt      *time.Time `json:"checked_at,omitempty"`
	EstimatedPrice *float64   `json:"estimated_price,omitempty"`
	SortOrder      int        `json:"sort_order"`
	CreatedByID    uuid.UUID  `json:"created_by_id"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// CreateItemResponse wraps the created item with the categorizer outcome so
// the UI can surface the suggestion instead of hiding it.
type CreateItemResponse struct {
	Item              ItemResponse `json:"item"`
	AutoCategorized   bool         `json:"auto_categorized"`
	SuggestedCategory string       `json:"suggested_category,omitempty"`
}

// Create adds an item to a list. Requires Editor or above. When the caller
// omits a category, the categorizer is consulted and a hit is auto-assigned
// and reported.
func (s *ItemService) Create(listID, userID uuid.UUID, req *CreateItemRequest) (*CreateItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	if _, err := s.requireListRole(listID, userID, access.Role.CanEditItems); err != nil {
		return nil, err
	}

	count, err := s.itemRepo.CountByListID(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to count list items: %w", err)
	}
	if count >= maxItemsPerList {
		return nil, apperrors.ErrItemLimitReached
	}

	category := ""
	autoCategorized := false
	if req.Category != nil && *req.Category != "" {
		category = *req.Category
	} else if slug, ok := categorizer.Classify(req.Name); ok {
		category = slug
		autoCategorized = true
	}

	maxOrder, err := s.itemRepo.MaxSortOrder(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get max sort order: %w", err)
	}

	item := &models.ListItem{
		ListID:         listID,
		Name:           req.Name,
		Quantity:       round2(req.Quantity),
		Unit:           req.Unit,
		Category:       category,
		EstimatedPrice: req.EstimatedPrice,
		SortOrder:      maxOrder + 1,
		CreatedByID:    userID,
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	resp := &CreateItemResponse{
		Item:            *toItemResponse(item),
		AutoCategorized: autoCategorized,
	}
	if autoCategorized {
		resp.SuggestedCategory = category
	}
	return resp, nil
}

// GetByID retrieves an item the caller can view
func (s *ItemService) GetByID(itemID, userID uuid.UUID) (*ItemResponse, error) {
	role, item, err := s.guard.ResolveItemRole(itemID, userID)
	if err != nil {
		return nil, err
	}
	if !role.CanView() {
		return nil, apperrors.ErrItemNotFound
	}
	return toItemResponse(item), nil
}

// GetByListID retrieves all items of a list in sort order
func (s *ItemService) GetByListID(listID, userID uuid.UUID) ([]ItemResponse, error) {
	role, err := s.guard.ResolveRole(listID, userID)
	if err != nil {
		return nil, err
	}
	if !role.CanView() {
		return nil, apperrors.ErrListNotFound
	}

	items, err := s.itemRepo.GetByListID(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list items: %w", err)
	}

	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = *toItemResponse(&item)
	}
	return responses, nil
}

// Update updates an item's fields. Requires Editor or above.
func (s *ItemService) Update(itemID, userID uuid.UUID, req *UpdateItemRequest) (*ItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	item, err := s.requireItemRole(itemID, userID, access.Role.CanEditItems)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Quantity != nil {
		item.Quantity = round2(*req.Quantity)
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.EstimatedPrice != nil {
		item.EstimatedPrice = req.EstimatedPrice
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return toItemResponse(item), nil
}

// Delete deletes an item. Requires Editor or above.
func (s *ItemService) Delete(itemID, userID uuid.UUID) error {
	if _, err := s.requireItemRole(itemID, userID, access.Role.CanDeleteItems); err != nil {
		return err
	}
	if err := s.itemRepo.Delete(itemID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// ToggleCheck flips the item's checked flag, setting or clearing the checked
// timestamp together with it. Checking with an actual price overwrites the
// estimated price, which doubles as the last known price.
func (s *ItemService) ToggleCheck(itemID, userID uuid.UUID, req *ToggleCheckRequest) (*ItemResponse, error) {
	if req == nil {
		req = &ToggleCheckRequest{}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	item, err := s.requireItemRole(itemID, userID, access.Role.CanToggleItems)
	if err != nil {
		return nil, err
	}

	if item.IsChecked {
		item.IsChecked = false
		item.CheckedAt = nil
	} else {
		now := time.Now()
		item.IsChecked = true
		item.CheckedAt = &now
		if req.ActualPrice != nil {
			price := round2(*req.ActualPrice)
			item.EstimatedPrice = &price
		}
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return toItemResponse(item), nil
}

// MoveToList moves an item to another list. Requires Editor or above on both
// the source and the target list. The item always arrives unchecked.
func (s *ItemService) MoveToList(itemID, userID uuid.UUID, req *MoveItemRequest) (*ItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	item, err := s.requireItemRole(itemID, userID, access.Role.CanEditItems)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireListRole(req.TargetListID, userID, access.Role.CanEditItems); err != nil {
		return nil, err
	}

	maxOrder, err := s.itemRepo.MaxSortOrder(req.TargetListID)
	if err != nil {
		return nil, fmt.Errorf("failed to get max sort order: %w", err)
	}

	item.ListID = req.TargetListID
	item.IsChecked = false
	item.CheckedAt = nil
	item.SortOrder = maxOrder + 1

	if err := s.itemRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to move item: %w", err)
	}
	return toItemResponse(item), nil
}

// Reorder applies a complete new ordering to a list's items in a single
// transaction. Every referenced item must belong to the list.
func (s *ItemService) Reorder(listID, userID uuid.UUID, req *ReorderItemsRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationFailed(err)
	}

	if _, err := s.requireListRole(listID, userID, access.Role.CanEditItems); err != nil {
		return err
	}

	items, err := s.itemRepo.GetByListID(listID)
	if err != nil {
		return fmt.Errorf("failed to get list items: %w", err)
	}
	onList := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		onList[item.ID] = true
	}

	orders := make(map[uuid.UUID]int, len(req.ItemIDs))
	for i, itemID := range req.ItemIDs {
		if !onList[itemID] {
			return apperrors.NewValidationError("item_ids", fmt.Sprintf("item %s does not belong to the list", itemID))
		}
		if _, seen := orders[itemID]; seen {
			return apperrors.NewValidationError("item_ids", fmt.Sprintf("item %s appears more than once", itemID))
		}
		orders[itemID] = i + 1
	}

	if err := s.itemRepo.UpdateSortOrders(listID, orders); err != nil {
		return fmt.Errorf("failed to reorder items: %w", err)
	}
	return nil
}

// requireListRole resolves the caller's role on a list and checks the given
// predicate, with the same not-found/forbidden split as the list service.
func (s *ItemService) requireListRole(listID, userID uuid.UUID, allowed func(access.Role) bool) (access.Role, error) {
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

// requireItemRole resolves the caller's role via the item's parent list.
// Missing items and no-access items are indistinguishable to the caller.
func (s *ItemService) requireItemRole(itemID, userID uuid.UUID, allowed func(access.Role) bool) (*models.ListItem, error) {
	role, item, err := s.guard.ResolveItemRole(itemID, userID)
	if err != nil {
		return nil, err
	}
	if role == access.RoleNoAccess {
		return nil, apperrors.ErrItemNotFound
	}
	if !allowed(role) {
		return nil, apperrors.ErrRoleTooLow
	}
	return item, nil
}

func toItemResponse(item *models.ListItem) *ItemResponse {
	return &ItemResponse{
		ID:             item.ID,
		ListID:         item.ListID,
		Name:           item.Name,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		Category:       item.Category,
		IsChecked:      item.IsChecked,
		CheckedAt:      item.CheckedAt,
		EstimatedPrice: item.EstimatedPrice,
		SortOrder:      item.SortOrder,
		CreatedByID:    item.CreatedByID,
		CreatedAt:      item.CreatedAt.Format(timeFormat),
		UpdatedAt:      item.UpdatedAt.Format(timeFormat),
	}
}

// round2 keeps quantities and prices at two-decimal precision
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
