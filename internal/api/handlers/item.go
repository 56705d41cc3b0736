package handlers

import (
	"net/http"

	"pantry-planner-backend/internal/auth"
	"pantry-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ItemHandler handles HTTP requests for list items
type ItemHandler struct {
	service *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(service *service.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// CreateItem handles POST /api/v1/lists/:id/items
func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.Create(listID, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to create item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ListItems handles GET /api/v1/lists/:id/items
func (h *ItemHandler) ListItems(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	items, err := h.service.GetByListID(listID, userID)
	if err != nil {
		respondError(c, err, "Failed to get items")
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetItem handles GET /api/v1/items/:id
func (h *ItemHandler) GetItem(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetByID(itemID, userID)
	if err != nil {
		respondError(c, err, "Failed to get item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateItem handles PUT /api/v1/items/:id
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.Update(itemID, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to update item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /api/v1/items/:id
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(itemID, userID); err != nil {
		respondError(c, err, "Failed to delete item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// ToggleCheck handles POST /api/v1/items/:id/toggle
func (h *ItemHandler) ToggleCheck(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	// The body is optional; toggling without a price sends none.
	var req service.ToggleCheckRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	item, err := h.service.ToggleCheck(itemID, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to toggle item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// MoveItem handles POST /api/v1/items/:id/move
func (h *ItemHandler) MoveItem(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	itemID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.MoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.MoveToList(itemID, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to move item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// ReorderItems handles PUT /api/v1/lists/:id/items/reorder
func (h *ItemHandler) ReorderItems(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ReorderItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Reorder(listID, userID, &req); err != nil {
		respondError(c, err, "Failed to reorder items")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Items reordered successfully"})
}
