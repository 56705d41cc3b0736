package service_test

import (
	"testing"
	"time"

	"pantry-planner-backend/internal/database/models"
	apperrors "pantry-planner-backend/internal/errors"
	"pantry-planner-backend/internal/mocks"
	"pantry-planner-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AggregatorServiceTestSuite defines the test suite for AggregatorService
type AggregatorServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockMealPlanRepo  *mocks.MockMealPlanRepositoryInterface
	mockRecipeRepo    *mocks.MockRecipeRepositoryInterface
	mockListRepo      *mocks.MockShoppingListRepositoryInterface
	aggregatorService *service.AggregatorService
	validator         *validator.Validate
}

// SetupTest sets up the test suite
func (suite *AggregatorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMealPlanRepo = mocks.NewMockMealPlanRepositoryInterface(suite.ctrl)
	suite.mockRecipeRepo = mocks.NewMockRecipeRepositoryInterface(suite.ctrl)
	suite.mockListRepo = mocks.NewMockShoppingListRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.aggregatorService = service.NewAggregatorService(suite.mockMealPlanRepo, suite.mockRecipeRepo, suite.mockListRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *AggregatorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func date(day int) time.Time {
	return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
}

func plan(userID uuid.UUID, day int, mealType models.MealType, recipeID *uuid.UUID) models.MealPlan {
	return models.MealPlan{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		Date:      date(day),
		MealType:  mealType,
		RecipeID:  recipeID,
	}
}

func recipe(userID uuid.UUID, name string, ingredients ...models.RecipeIngredient) *models.Recipe {
	return &models.Recipe{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		UserID:      userID,
		Name:        name,
		Servings:    2,
		Ingredients: ingredients,
	}
}

func ingredient(name string, quantity float64, unit string) models.RecipeIngredient {
	return models.RecipeIngredient{Name: name, Quantity: quantity, Unit: unit}
}

// TestGenerateMergesSameUnit tests that same-named same-unit ingredients add up
func (suite *AggregatorServiceTestSuite) TestGenerateMergesSameUnit() {
	userID := uuid.New()
	pasta := recipe(userID, "Pasta", ingredient("Tomato", 2, "pcs"))
	salad := recipe(userID, "Salad", ingredient("tomato", 3, "pcs"))
	plans := []models.MealPlan{
		plan(userID, 5, models.MealTypeDinner, &pasta.ID),
		plan(userID, 6, models.MealTypeLunch, &salad.ID),
	}

	suite.mockMealPlanRepo.EXPECT().
		GetByUserAndDateRange(userID, date(5), date(11)).
		Return(plans, nil).
		Times(1)
	suite.mockRecipeRepo.EXPECT().GetByID(pasta.ID).Return(pasta, nil).Times(1)
	suite.mockRecipeRepo.EXPECT().GetByID(salad.ID).Return(salad, nil).Times(1)
	suite.mockListRepo.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(list *models.ShoppingList, items []models.ListItem) error {
			assert.Len(suite.T(), items, 1)
			assert.Equal(suite.T(), "tomato", items[0].Name)
			assert.Equal(suite.T(), 5.0, items[0].Quantity)
			assert.Equal(suite.T(), "pcs", items[0].Unit)
			return nil
		}).
		Times(1)

	response, err := suite.aggregatorService.Generate(userID, &service.GenerateListRequest{
		StartDate: date(5),
		EndDate:   date(11),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Meal Plan: 2026-01-05 - 2026-01-11", response.Name)
	assert.True(suite.T(), response.IsOwner)
}

// TestGenerateKeepsUnitsApart tests that different units never merge
func (suite *AggregatorServiceTestSuite) TestGenerateKeepsUnitsApart() {
	userID := uuid.New()
	soup := recipe(userID, "Soup",
		ingredient("Milk", 200, "ml"),
		ingredient("Milk", 1, "l"),
	)
	plans := []models.MealPlan{plan(userID, 5, models.MealTypeDinner, &soup.ID)}

	suite.mockMealPlanRepo.EXPECT().
		GetByUserAndDateRange(userID, date(5), date(5)).
		Return(plans, nil)
	suite.mockRecipeRepo.EXPECT().GetByID(soup.ID).Return(soup, nil)
	suite.mockListRepo.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(list *models.ShoppingList, items []models.ListItem) error {
			assert.Len(suite.T(), items, 2)
			assert.Equal(suite.T(), "ml", items[0].Unit)
			assert.Equal(suite.T(), 200.0, items[0].Quantity)
			assert.Equal(suite.T(), "l", items[1].Unit)
			assert.Equal(suite.T(), 1.0, items[1].Quantity)
			for _, item := range items {
				assert.Equal(suite.T(), "milk", item.Name)
				assert.Equal(suite.T(), "dairy", item.Category)
			}
			return nil
		})

	_, err := suite.aggregatorService.Generate(userID, &service.GenerateListRequest{
		StartDate: date(5),
		EndDate:   date(5),
	})

	assert.NoError(suite.T(), err)
}

// TestGenerateFetchesRepeatedRecipeOnce tests recipe de-duplication across plans
func (suite *AggregatorServiceTestSuite) TestGenerateFetchesRepeatedRecipeOnce() {
	userID := uuid.New()
	porridge := recipe(userID, "Porridge", ingredient("Oats", 50, "g"))
	plans := []models.MealPlan{
		plan(userID, 5, models.MealTypeBreakfast, &porridge.ID),
		plan(userID, 6, models.MealTypeBreakfast, &porridge.ID),
		plan(userID, 7, models.MealTypeBreakfast, nil),
	}

	suite.mockMealPlanRepo.EXPECT().
		GetByUserAndDateRange(userID, date(5), date(7)).
		Return(plans, nil)
	suite.mockRecipeRepo.EXPECT().
		GetByID(porridge.ID).
		Return(porridge, nil).
		Times(1)
	suite.mockListRepo.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(list *models.ShoppingList, items []models.ListItem) error {
			assert.Len(suite.T(), items, 1)
			assert.Equal(suite.T(), 50.0, items[0].Quantity)
			return nil
		})

	_, err := suite.aggregatorService.Generate(userID, &service.GenerateListRequest{
		StartDate: date(5),
		EndDate:   date(7),
	})

	assert.NoError(suite.T(), err)
}

// TestGenerateFiltersMealType tests the optional meal type filter
func (suite *AggregatorServiceTestSuite) TestGenerateFiltersMealType() {
	userID := uuid.New()
	pancakes := recipe(userID, "Pancakes", ingredient("Flour", 200, "g"))
	pasta := recipe(userID, "Pasta", ingredient("Tomato", 2, "pcs"))
	plans := []models.MealPlan{
		plan(userID, 5, models.MealTypeBreakfast, &pancakes.ID),
		plan(userID, 5, models.MealTypeDinner, &pasta.ID),
	}
	breakfast := models.MealTypeBreakfast

	suite.mockMealPlanRepo.EXPECT().
		GetByUserAndDateRange(userID, date(5), date(5)).
		Return(plans, nil)
	suite.mockRecipeRepo.EXPECT().GetByID(pancakes.ID).Return(pancakes, nil).Times(1)
	suite.mockListRepo.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(list *models.ShoppingList, items []models.ListItem) error {
			assert.Len(suite.T(), items, 1)
			assert.Equal(suite.T(), "flour", items[0].Name)
			return nil
		})

	_, err := suite.aggregatorService.Generate(userID, &service.GenerateListRequest{
		StartDate: date(5),
		EndDate:   date(5),
		MealType:  &breakfast,
	})

	assert.NoError(suite.T(), err)
}

// TestGenerateInvalidDateRange tests that a reversed range is rejected
func (suite *AggregatorServiceTestSuite) TestGenerateInvalidDateRange() {
	response, err := suite.aggregatorService.Generate(uuid.New(), &service.GenerateListRequest{
		StartDate: date(11),
		EndDate:   date(5),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDateRange)
	assert.Nil(suite.T(), response)
}

// TestGenerateCustomListName tests overriding the default list name
func (suite *AggregatorServiceTestSuite) TestGenerateCustomListName() {
	userID := uuid.New()
	listName := "Week 2 Groceries"

	suite.mockMealPlanRepo.EXPECT().
		GetByUserAndDateRange(userID, date(5), date(11)).
		Return([]models.MealPlan{}, nil)
	suite.mockListRepo.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(list *models.ShoppingList, items []models.ListItem) error {
			assert.Equal(suite.T(), "Week 2 Groceries", list.Name)
			assert.Empty(suite.T(), items)
			return nil
		})

	response, err := suite.aggregatorService.Generate(userID, &service.GenerateListRequest{
		StartDate: date(5),
		EndDate:   date(11),
		ListName:  &listName,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Week 2 Groceries", response.Name)
}

// TestGenerateAssignsSortOrder tests that generated items are numbered in merge order
func (suite *AggregatorServiceTestSuite) TestGenerateAssignsSortOrder() {
	userID := uuid.New()
	stew := recipe(userID, "Stew",
		ingredient("Carrot", 3, "pcs"),
		ingredient("Beef", 500, "g"),
		ingredient("Onion", 2, "pcs"),
	)
	plans := []models.MealPlan{plan(userID, 5, models.MealTypeDinner, &stew.ID)}

	suite.mockMealPlanRepo.EXPECT().
		GetByUserAndDateRange(userID, date(5), date(5)).
		Return(plans, nil)
	suite.mockRecipeRepo.EXPECT().GetByID(stew.ID).Return(stew, nil)
	suite.mockListRepo.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(list *models.ShoppingList, items []models.ListItem) error {
			assert.Len(suite.T(), items, 3)
			for i, item := range items {
				assert.Equal(suite.T(), i+1, item.SortOrder)
				assert.Equal(suite.T(), userID, item.CreatedByID)
			}
			return nil
		})

	_, err := suite.aggregatorService.Generate(userID, &service.GenerateListRequest{
		StartDate: date(5),
		EndDate:   date(5),
	})

	assert.NoError(suite.T(), err)
}

// TestAggregatorServiceTestSuite runs the test suite
func TestAggregatorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AggregatorServiceTestSuite))
}
