package access

import (
	"errors"
	"fmt"

	"pantry-planner-backend/internal/database/models"
	apperrors "pantry-planner-backend/internal/errors"
	"pantry-planner-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guard resolves a user's effective role for a list. Every call is a fresh
// read so share/remove/updateRole take effect on the next request; roles are
// never cached across requests.
type Guard struct {
	listRepo         repository.ShoppingListRepositoryInterface
	itemRepo         repository.ListItemRepositoryInterface
	collaboratorRepo repository.CollaboratorRepositoryInterface
}

// NewGuard creates a new access guard
func NewGuard(listRepo repository.ShoppingListRepositoryInterface, itemRepo repository.ListItemRepositoryInterface, collaboratorRepo repository.CollaboratorRepositoryInterface) *Guard {
	return &Guard{
		listRepo:         listRepo,
		itemRepo:         itemRepo,
		collaboratorRepo: collaboratorRepo,
	}
}

// ResolveRole returns the user's role for the list: Owner when the list's
// owner column matches, else the collaborator row's role, else NoAccess.
// A missing list yields ErrListNotFound.
func (g *Guard) ResolveRole(listID, userID uuid.UUID) (Role, error) {
	list, err := g.listRepo.GetByID(listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleNoAccess, apperrors.ErrListNotFound
		}
		return RoleNoAccess, fmt.Errorf("failed to get list: %w", err)
	}

	// Ownership is immutable after creation, so checking it before the
	// collaborator lookup cannot race with a role change.
	if list.OwnerID == userID {
		return RoleOwner, nil
	}

	collaborator, err := g.collaboratorRepo.GetByListAndUser(listID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleNoAccess, nil
		}
		return RoleNoAccess, fmt.Errorf("failed to get collaborator: %w", err)
	}

	role, err := ParseRole(collaborator.Role)
	if err != nil {
		return RoleNoAccess, fmt.Errorf("stored collaborator role is malformed: %w", err)
	}
	return role, nil
}

// ResolveItemRole resolves the item's parent list and delegates to
// ResolveRole. A missing item yields ErrItemNotFound, the same error an
// unauthorized caller sees, so item existence is never leaked. The loaded
// item is returned so callers do not re-read it.
func (g *Guard) ResolveItemRole(itemID, userID uuid.UUID) (Role, *models.ListItem, error) {
	item, err := g.itemRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleNoAccess, nil, apperrors.ErrItemNotFound
		}
		return RoleNoAccess, nil, fmt.Errorf("failed to get item: %w", err)
	}

	role, err := g.ResolveRole(item.ListID, userID)
	if err != nil {
		return RoleNoAccess, nil, err
	}
	return role, item, nil
}
