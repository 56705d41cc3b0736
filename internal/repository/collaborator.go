package repository

import (
	"pantry-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollaboratorRepository handles database operations for collaborators
type CollaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository creates a new collaborator repository
func NewCollaboratorRepository(db *gorm.DB) *CollaboratorRepository {
	return &CollaboratorRepository{db: db}
}

// Create creates a new collaborator row
func (r *CollaboratorRepository) Create(collaborator *models.Collaborator) error {
	return r.db.Create(collaborator).Error
}

// GetByListAndUser retrieves the collaborator row for a (list, user) pair
func (r *CollaboratorRepository) GetByListAndUser(listID, userID uuid.UUID) (*models.Collaborator, error) {
	var collaborator models.Collaborator
	err := r.db.First(&collaborator, "list_id = ? AND user_id = ?", listID, userID).Error
	if err != nil {
		return nil, err
	}
	return &collaborator, nil
}

// GetByListID retrieves all collaborators of a list with their users
func (r *CollaboratorRepository) GetByListID(listID uuid.UUID) ([]models.Collaborator, error) {
	var collaborators []models.Collaborator
	err := r.db.Preload("User").Where("list_id = ?", listID).Order("created_at ASC").Find(&collaborators).Error
	if err != nil {
		return nil, err
	}
	return collaborators, nil
}

// Update updates a collaborator row
func (r *CollaboratorRepository) Update(collaborator *models.Collaborator) error {
	return r.db.Save(collaborator).Error
}

// Delete removes the collaborator row for a (list, user) pair
func (r *CollaboratorRepository) Delete(listID, userID uuid.UUID) error {
	result := r.db.Delete(&models.Collaborator{}, "list_id = ? AND user_id = ?", listID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
