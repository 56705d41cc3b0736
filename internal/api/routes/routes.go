package routes

import (
	"pantry-planner-backend/internal/access"
	"pantry-planner-backend/internal/api/handlers"
	"pantry-planner-backend/internal/api/middleware"
	"pantry-planner-backend/internal/auth"
	"pantry-planner-backend/internal/config"
	"pantry-planner-backend/internal/repository"
	"pantry-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	listRepo := repository.NewShoppingListRepository(db)
	itemRepo := repository.NewListItemRepository(db)
	collaboratorRepo := repository.NewCollaboratorRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	mealPlanRepo := repository.NewMealPlanRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize access guard
	guard := access.NewGuard(listRepo, itemRepo, collaboratorRepo)

	// Initialize services
	listService := service.NewListService(listRepo, itemRepo, guard, validator)
	itemService := service.NewItemService(itemRepo, guard, validator)
	collaboratorService := service.NewCollaboratorService(collaboratorRepo, listRepo, userRepo, guard, validator)
	recipeService := service.NewRecipeService(recipeRepo, validator)
	mealPlanService := service.NewMealPlanService(mealPlanRepo, recipeRepo, validator)
	aggregatorService := service.NewAggregatorService(mealPlanRepo, recipeRepo, listRepo, validator)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret, 0)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	listHandler := handlers.NewListHandler(listService)
	itemHandler := handlers.NewItemHandler(itemService)
	collaboratorHandler := handlers.NewCollaboratorHandler(collaboratorService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, aggregatorService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Shopping list routes
		lists := v1.Group("/lists")
		{
			lists.GET("", listHandler.ListLists)
			lists.POST("", listHandler.CreateList)
			lists.GET("/:id", listHandler.GetList)
			lists.PUT("/:id", listHandler.UpdateList)
			lists.DELETE("/:id", listHandler.DeleteList)
			lists.POST("/:id/duplicate", listHandler.DuplicateList)
			lists.POST("/:id/instantiate", listHandler.CreateFromTemplate)

			// Item routes scoped to a list
			lists.GET("/:id/items", itemHandler.ListItems)
			lists.POST("/:id/items", itemHandler.CreateItem)
			lists.PUT("/:id/items/reorder", itemHandler.ReorderItems)

			// Collaborator routes
			lists.GET("/:id/collaborators", collaboratorHandler.ListCollaborators)
			lists.POST("/:id/collaborators", collaboratorHandler.ShareList)
			lists.PUT("/:id/collaborators/:userId", collaboratorHandler.UpdateCollaboratorRole)
			lists.DELETE("/:id/collaborators/:userId", collaboratorHandler.RemoveCollaborator)
			lists.POST("/:id/leave", collaboratorHandler.LeaveList)
		}

		// Item routes addressed by item id
		items := v1.Group("/items")
		{
			items.GET("/:id", itemHandler.GetItem)
			items.PUT("/:id", itemHandler.UpdateItem)
			items.DELETE("/:id", itemHandler.DeleteItem)
			items.POST("/:id/toggle", itemHandler.ToggleCheck)
			items.POST("/:id/move", itemHandler.MoveItem)
		}

		// Recipe routes
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", recipeHandler.ListRecipes)
			recipes.POST("", recipeHandler.CreateRecipe)
			recipes.GET("/:id", recipeHandler.GetRecipe)
			recipes.PUT("/:id", recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
		}

		// Meal plan routes
		mealPlans := v1.Group("/meal-plans")
		{
			mealPlans.GET("", mealPlanHandler.ListMealPlans)
			mealPlans.POST("", mealPlanHandler.CreateMealPlan)
			mealPlans.GET("/:id", mealPlanHandler.GetMealPlan)
			mealPlans.PUT("/:id", mealPlanHandler.UpdateMealPlan)
			mealPlans.DELETE("/:id", mealPlanHandler.DeleteMealPlan)
			mealPlans.POST("/generate-list", mealPlanHandler.GenerateShoppingList)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
