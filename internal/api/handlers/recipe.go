package handlers

import (
	"net/http"

	"pantry-planner-backend/internal/auth"
	"pantry-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecipeHandler handles HTTP requests for recipes
type RecipeHandler struct {
	service *service.RecipeService
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(service *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// CreateRecipe handles POST /api/v1/recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	recipe, err := h.service.Create(userID, &req)
	if err != nil {
		respondError(c, err, "Failed to create recipe")
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// ListRecipes handles GET /api/v1/recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	recipes, err := h.service.GetByUser(userID)
	if err != nil {
		respondError(c, err, "Failed to get recipes")
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// GetRecipe handles GET /api/v1/recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	recipeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	recipe, err := h.service.GetByID(recipeID, userID)
	if err != nil {
		respondError(c, err, "Failed to get recipe")
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// UpdateRecipe handles PUT /api/v1/recipes/:id
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	recipeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	recipe, err := h.service.Update(recipeID, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to update recipe")
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe handles DELETE /api/v1/recipes/:id
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	recipeID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(recipeID, userID); err != nil {
		respondError(c, err, "Failed to delete recipe")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
