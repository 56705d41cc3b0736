package repository

import (
	"pantry-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListItemRepository handles database operations for list items
type ListItemRepository struct {
	db *gorm.DB
}

// NewListItemRepository creates a new list item repository
func NewListItemRepository(db *gorm.DB) *ListItemRepository {
	return &ListItemRepository{db: db}
}

// Create creates a new list item
func (r *ListItemRepository) Create(item *models.ListItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a list item by ID
func (r *ListItemRepository) GetByID(id uuid.UUID) (*models.ListItem, error) {
	var item models.ListItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByListID retrieves all items of a list ordered by sort order
func (r *ListItemRepository) GetByListID(listID uuid.UUID) ([]models.ListItem, error) {
	var items []models.ListItem
	err := r.db.Where("list_id = ?", listID).Order("sort_order ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update updates a list item
func (r *ListItemRepository) Update(item *models.ListItem) error {
	return r.db.Save(item).Error
}

// Delete deletes a list item
func (r *ListItemRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ListItem{}, "id = ?", id).Error
}

// CountByListID returns the number of items on a list
func (r *ListItemRepository) CountByListID(listID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ListItem{}).Where("list_id = ?", listID).Count(&count).Error
	return count, err
}

// MaxSortOrder returns the highest sort order on a list, or 0 when the list
// is empty. Sort orders grow monotonically; deletions never free a slot.
func (r *ListItemRepository) MaxSortOrder(listID uuid.UUID) (int, error) {
	var max int
	err := r.db.Model(&models.ListItem{}).
		Where("list_id = ?", listID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	return max, err
}

// UpdateSortOrders applies a new sort order per item in one transaction so a
// failure partway never leaves the list with a mixed ordering.
func (r *ListItemRepository) UpdateSortOrders(listID uuid.UUID, orders map[uuid.UUID]int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for itemID, order := range orders {
			result := tx.Model(&models.ListItem{}).
				Where("id = ? AND list_id = ?", itemID, listID).
				Update("sort_order", order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
