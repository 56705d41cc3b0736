package handlers

import (
	"net/http"

	"pantry-planner-backend/internal/auth"
	"pantry-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CollaboratorHandler handles HTTP requests for list collaborators
type CollaboratorHandler struct {
	service *service.CollaboratorService
}

// NewCollaboratorHandler creates a new collaborator handler
func NewCollaboratorHandler(service *service.CollaboratorService) *CollaboratorHandler {
	return &CollaboratorHandler{service: service}
}

// ShareList handles POST /api/v1/lists/:id/collaborators
func (h *CollaboratorHandler) ShareList(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ShareListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	collaborator, err := h.service.Share(listID, actorID, &req)
	if err != nil {
		respondError(c, err, "Failed to share list")
		return
	}

	c.JSON(http.StatusCreated, collaborator)
}

// ListCollaborators handles GET /api/v1/lists/:id/collaborators
func (h *CollaboratorHandler) ListCollaborators(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	collaborators, err := h.service.List(listID, actorID)
	if err != nil {
		respondError(c, err, "Failed to get collaborators")
		return
	}

	c.JSON(http.StatusOK, collaborators)
}

// UpdateCollaboratorRole handles PUT /api/v1/lists/:id/collaborators/:userId
func (h *CollaboratorHandler) UpdateCollaboratorRole(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	var req service.UpdateCollaboratorRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	collaborator, err := h.service.UpdateRole(listID, actorID, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to update collaborator role")
		return
	}

	c.JSON(http.StatusOK, collaborator)
}

// RemoveCollaborator handles DELETE /api/v1/lists/:id/collaborators/:userId
func (h *CollaboratorHandler) RemoveCollaborator(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.service.Remove(listID, actorID, userID); err != nil {
		respondError(c, err, "Failed to remove collaborator")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Collaborator removed successfully"})
}

// LeaveList handles POST /api/v1/lists/:id/leave
func (h *CollaboratorHandler) LeaveList(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	listID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Leave(listID, actorID); err != nil {
		respondError(c, err, "Failed to leave list")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left list successfully"})
}
