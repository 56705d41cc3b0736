package handlers

import (
	"net/http"

	"pantry-planner-backend/internal/auth"
	"pantry-planner-backend/internal/logger"
	"pantry-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ListHandler handles HTTP requests for shopping lists
type ListHandler struct {
	service *service.ListService
}

// NewListHandler creates a new list handler
func NewListHandler(service *service.ListService) *ListHandler {
	return &ListHandler{service: service}
}

// CreateList handles POST /api/v1/lists
func (h *ListHandler) CreateList(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	list, err := h.service.Create(userID, &req)
	if err != nil {
		respondError(c, err, "Failed to create list")
		return
	}

	c.JSON(http.StatusCreated, list)
}

// ListLists handles GET /api/v1/lists
func (h *ListHandler) ListLists(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	lists, err := h.service.GetAccessible(userID)
	if err != nil {
		respondError(c, err, "Failed to get lists")
		return
	}

	c.JSON(http.StatusOK, lists)
}

// GetList handles GET /api/v1/lists/:id
func (h *ListHandler) GetList(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	list, err := h.service.GetByID(listID, userID)
	if err != nil {
		respondError(c, err, "Failed to get list")
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateList handles PUT /api/v1/lists/:id
func (h *ListHandler) UpdateList(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	list, err := h.service.Update(listID, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to update list")
		return
	}

	c.JSON(http.StatusOK, list)
}

// DeleteList handles DELETE /api/v1/lists/:id
func (h *ListHandler) DeleteList(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(listID, userID); err != nil {
		respondError(c, err, "Failed to delete list")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "List deleted successfully"})
}

// DuplicateList handles POST /api/v1/lists/:id/duplicate
func (h *ListHandler) DuplicateList(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	// The body is optional; an empty one takes the default name.
	var req service.DuplicateListRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	list, err := h.service.Duplicate(listID, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to duplicate list")
		return
	}

	logger.WithContext(c).WithFields(map[string]interface{}{
		"source_list_id": listID,
		"list_id":        list.ID,
	}).Info("duplicated shopping list")

	c.JSON(http.StatusCreated, list)
}

// CreateFromTemplate handles POST /api/v1/lists/:id/instantiate
func (h *ListHandler) CreateFromTemplate(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	templateID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	// The body is optional; an empty one takes the default name.
	var req service.DuplicateListRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	list, err := h.service.CreateFromTemplate(templateID, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to create list from template")
		return
	}

	c.JSON(http.StatusCreated, list)
}
