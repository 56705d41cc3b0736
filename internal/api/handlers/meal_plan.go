package handlers

import (
	"net/http"
	"time"

	"pantry-planner-backend/internal/auth"
	"pantry-planner-backend/internal/database/models"
	"pantry-planner-backend/internal/logger"
	"pantry-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const dateFormat = "2006-01-02"

// MealPlanHandler handles HTTP requests for meal plans
type MealPlanHandler struct {
	service    *service.MealPlanService
	aggregator *service.AggregatorService
}

// NewMealPlanHandler creates a new meal plan handler
func NewMealPlanHandler(service *service.MealPlanService, aggregator *service.AggregatorService) *MealPlanHandler {
	return &MealPlanHandler{service: service, aggregator: aggregator}
}

// CreateMealPlan handles POST /api/v1/meal-plans
func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.Create(userID, &req)
	if err != nil {
		respondError(c, err, "Failed to create meal plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ListMealPlans handles GET /api/v1/meal-plans?start=...&end=...&meal_type=...
func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	start, err := time.Parse(dateFormat, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dateFormat, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date, expected YYYY-MM-DD"})
		return
	}

	var mealType *models.MealType
	if mt := c.Query("meal_type"); mt != "" {
		parsed := models.MealType(mt)
		mealType = &parsed
	}

	plans, err := h.service.GetRange(userID, start, end, mealType)
	if err != nil {
		respondError(c, err, "Failed to get meal plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetMealPlan handles GET /api/v1/meal-plans/:id
func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	planID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	plan, err := h.service.GetByID(planID, userID)
	if err != nil {
		respondError(c, err, "Failed to get meal plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// UpdateMealPlan handles PUT /api/v1/meal-plans/:id
func (h *MealPlanHandler) UpdateMealPlan(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	planID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.Update(planID, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to update meal plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeleteMealPlan handles DELETE /api/v1/meal-plans/:id
func (h *MealPlanHandler) DeleteMealPlan(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	planID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(planID, userID); err != nil {
		respondError(c, err, "Failed to delete meal plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal plan deleted successfully"})
}

// GenerateShoppingList handles POST /api/v1/meal-plans/generate-list
func (h *MealPlanHandler) GenerateShoppingList(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.GenerateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	list, err := h.aggregator.Generate(userID, &req)
	if err != nil {
		respondError(c, err, "Failed to generate shopping list")
		return
	}

	logger.WithContext(c).WithFields(map[string]interface{}{
		"list_id": list.ID,
		"start":   req.StartDate.Format(dateFormat),
		"end":     req.EndDate.Format(dateFormat),
	}).Info("generated shopping list from meal plans")

	c.JSON(http.StatusCreated, list)
}
