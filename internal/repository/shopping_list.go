package repository

import (
	"pantry-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingListRepository handles database operations for shopping lists
type ShoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new shopping list repository
func NewShoppingListRepository(db *gorm.DB) *ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// Create creates a new shopping list
func (r *ShoppingListRepository) Create(list *models.ShoppingList) error {
	return r.db.Create(list).Error
}

// GetByID retrieves a shopping list by ID
func (r *ShoppingListRepository) GetByID(id uuid.UUID) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := r.db.First(&list, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// GetAccessibleByUser retrieves all lists the user owns or collaborates on,
// most recently updated first.
func (r *ShoppingListRepository) GetAccessibleByUser(userID uuid.UUID) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	err := r.db.
		Joins("LEFT JOIN collaborators ON collaborators.list_id = shopping_lists.id AND collaborators.user_id = ?", userID).
		Where("shopping_lists.owner_id = ? OR collaborators.id IS NOT NULL", userID).
		Order("shopping_lists.updated_at DESC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// Update updates a shopping list
func (r *ShoppingListRepository) Update(list *models.ShoppingList) error {
	return r.db.Save(list).Error
}

// Delete deletes a shopping list. Items and collaborator rows cascade.
func (r *ShoppingListRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ShoppingList{}, "id = ?", id).Error
}

// CreateWithItems creates a list and all of its items in a single
// transaction; either everything is committed or nothing is.
func (r *ShoppingListRepository) CreateWithItems(list *models.ShoppingList, items []models.ListItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(list).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ListID = list.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
