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

// CollaboratorService handles sharing lists and managing collaborator roles
type CollaboratorService struct {
	collaboratorRepo repository.CollaboratorRepositoryInterface
	listRepo         repository.ShoppingListRepositoryInterface
	userRepo         repository.UserRepositoryInterface
	guard            *access.Guard
	validator        *validator.Validate
}

// NewCollaboratorService creates a new collaborator service
func NewCollaboratorService(collaboratorRepo repository.CollaboratorRepositoryInterface, listRepo repository.ShoppingListRepositoryInterface, userRepo repository.UserRepositoryInterface, guard *access.Guard, validator *validator.Validate) *CollaboratorService {
	return &CollaboratorService{
		collaboratorRepo: collaboratorRepo,
		listRepo:         listRepo,
		userRepo:         userRepo,
		guard:            guard,
		validator:        validator,
	}
}

// ShareListRequest represents the request to share a list with a user
type ShareListRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// UpdateCollaboratorRoleRequest represents the request to change a collaborator's role
type UpdateCollaboratorRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// CollaboratorResponse represents the response for collaborator operations
type CollaboratorResponse struct {
	ListID      uuid.UUID `json:"list_id"`
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   string    `json:"created_at"`
}

// Share grants a user access to a list. Requires Admin or Owner on the list.
// The owner can never be added as a collaborator and a user can hold at most
// one role per list.
func (s *CollaboratorService) Share(listID, actorID uuid.UUID, req *ShareListRequest) (*CollaboratorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	role, err := access.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	if err := s.requireRole(listID, actorID, access.Role.CanManageCollaborators); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrUserNotFound, "failed to get user")
	}

	list, err := s.listRepo.GetByID(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	if list.OwnerID == user.ID {
		return nil, apperrors.ErrOwnerAsCollaborator
	}

	existing, err := s.collaboratorRepo.GetByListAndUser(listID, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing collaborator: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCollaboratorExists
	}

	collaborator := &models.Collaborator{
		ListID: listID,
		UserID: user.ID,
		Role:   role.String(),
	}
	if err := s.collaboratorRepo.Create(collaborator); err != nil {
		return nil, fmt.Errorf("failed to create collaborator: %w", err)
	}

	resp := toCollaboratorResponse(collaborator)
	resp.Email = user.Email
	resp.DisplayName = user.DisplayName
	return resp, nil
}

// List retrieves the collaborators of a list the caller can view
func (s *CollaboratorService) List(listID, actorID uuid.UUID) ([]CollaboratorResponse, error) {
	role, err := s.guard.ResolveRole(listID, actorID)
	if err != nil {
		return nil, err
	}
	if !role.CanView() {
		return nil, apperrors.ErrListNotFound
	}

	collaborators, err := s.collaboratorRepo.GetByListID(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get collaborators: %w", err)
	}

	responses := make([]CollaboratorResponse, len(collaborators))
	for i, collaborator := range collaborators {
		responses[i] = *toCollaboratorResponse(&collaborator)
		if collaborator.User != nil {
			responses[i].Email = collaborator.User.Email
			responses[i].DisplayName = collaborator.User.DisplayName
		}
	}
	return responses, nil
}

// UpdateRole changes a collaborator's role. Requires Admin or Owner.
func (s *CollaboratorService) UpdateRole(listID, actorID, userID uuid.UUID, req *UpdateCollaboratorRoleRequest) (*CollaboratorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	role, err := access.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	if err := s.requireRole(listID, actorID, access.Role.CanChangeRoles); err != nil {
		return nil, err
	}

	collaborator, err := s.collaboratorRepo.GetByListAndUser(listID, userID)
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrCollaboratorNotFound, "failed to get collaborator")
	}

	collaborator.Role = role.String()
	if err := s.collaboratorRepo.Update(collaborator); err != nil {
		return nil, fmt.Errorf("failed to update collaborator: %w", err)
	}
	return toCollaboratorResponse(collaborator), nil
}

// Remove revokes a collaborator's access. Requires Admin or Owner.
func (s *CollaboratorService) Remove(listID, actorID, userID uuid.UUID) error {
	if err := s.requireRole(listID, actorID, access.Role.CanManageCollaborators); err != nil {
		return err
	}

	if err := s.collaboratorRepo.Delete(listID, userID); err != nil {
		return notFoundAs(err, apperrors.ErrCollaboratorNotFound, "failed to remove collaborator")
	}
	return nil
}

// Leave removes the caller's own collaborator row. The owner cannot leave,
// and a caller without access learns nothing about the list.
func (s *CollaboratorService) Leave(listID, actorID uuid.UUID) error {
	role, err := s.guard.ResolveRole(listID, actorID)
	if err != nil {
		return err
	}
	if role == access.RoleNoAccess {
		return apperrors.ErrListNotFound
	}
	if !role.CanLeave() {
		return apperrors.ErrOwnerCannotLeave
	}

	if err := s.collaboratorRepo.Delete(listID, actorID); err != nil {
		return notFoundAs(err, apperrors.ErrCollaboratorNotFound, "failed to leave list")
	}
	return nil
}

func (s *CollaboratorService) requireRole(listID, actorID uuid.UUID, allowed func(access.Role) bool) error {
	role, err := s.guard.ResolveRole(listID, actorID)
	if err != nil {
		return err
	}
	if role == access.RoleNoAccess {
		return apperrors.ErrListNotFound
	}
	if !allowed(role) {
		return apperrors.ErrRoleTooLow
	}
	return nil
}

func toCollaboratorResponse(collaborator *models.Collaborator) *CollaboratorResponse {
	return &CollaboratorResponse{
		ListID:    collaborator.ListID,
		UserID:    collaborator.UserID,
		Role:      collaborator.Role,
		CreatedAt: collaborator.CreatedAt.Format(timeFormat),
	}
}
