package service_test

import (
	"testing"

	"pantry-planner-backend/internal/database/models"
	apperrors "pantry-planner-backend/internal/errors"
	"pantry-planner-backend/internal/mocks"
	"pantry-planner-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RecipeServiceTestSuite defines the test suite for RecipeService
type RecipeServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRecipeRepo *mocks.MockRecipeRepositoryInterface
	recipeService  *service.RecipeService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *RecipeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRecipeRepo = mocks.NewMockRecipeRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.recipeService = service.NewRecipeService(suite.mockRecipeRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *RecipeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateRecipe tests creating a recipe with ingredients
func (suite *RecipeServiceTestSuite) TestCreateRecipe() {
	userID := uuid.New()

	suite.mockRecipeRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(recipe *models.Recipe) error {
			assert.Equal(suite.T(), userID, recipe.UserID)
			assert.Equal(suite.T(), "Pasta", recipe.Name)
			assert.Equal(suite.T(), 1, recipe.Servings)
			assert.Len(suite.T(), recipe.Ingredients, 2)
			assert.Equal(suite.T(), 1, recipe.Ingredients[0].SortOrder)
			assert.Equal(suite.T(), 2, recipe.Ingredients[1].SortOrder)
			return nil
		}).
		Times(1)

	response, err := suite.recipeService.Create(userID, &service.CreateRecipeRequest{
		Name: "Pasta",
		Ingredients: []service.IngredientInput{
			{Name: "Spaghetti", Quantity: 500, Unit: "g"},
			{Name: "Tomato", Quantity: 3, Unit: "pcs"},
		},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Pasta", response.Name)
	assert.Len(suite.T(), response.Ingredients, 2)
}

// TestCreateRecipeValidationError tests that a bad ingredient line is rejected
func (suite *RecipeServiceTestSuite) TestCreateRecipeValidationError() {
	response, err := suite.recipeService.Create(uuid.New(), &service.CreateRecipeRequest{
		Name: "Pasta",
		Ingredients: []service.IngredientInput{
			{Name: "", Quantity: 1},
		},
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
}

// TestGetRecipeForeignOwner tests that another user's recipe reads as missing
func (suite *RecipeServiceTestSuite) TestGetRecipeForeignOwner() {
	foreign := recipe(uuid.New(), "Pasta", ingredient("Tomato", 2, "pcs"))

	suite.mockRecipeRepo.EXPECT().GetByID(foreign.ID).Return(foreign, nil)

	response, err := suite.recipeService.GetByID(foreign.ID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrRecipeNotFound)
	assert.Nil(suite.T(), response)
}

// TestUpdateRecipeReplacesIngredients tests the full ingredient replacement path
func (suite *RecipeServiceTestSuite) TestUpdateRecipeReplacesIngredients() {
	userID := uuid.New()
	existing := recipe(userID, "Pasta", ingredient("Tomato", 2, "pcs"))
	replacement := []service.IngredientInput{
		{Name: "Penne", Quantity: 400, Unit: "g"},
	}

	suite.mockRecipeRepo.EXPECT().GetByID(existing.ID).Return(existing, nil)
	suite.mockRecipeRepo.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockRecipeRepo.EXPECT().
		ReplaceIngredients(existing.ID, gomock.Any()).
		DoAndReturn(func(recipeID uuid.UUID, ingredients []models.RecipeIngredient) error {
			assert.Len(suite.T(), ingredients, 1)
			assert.Equal(suite.T(), "Penne", ingredients[0].Name)
			return nil
		}).
		Times(1)

	response, err := suite.recipeService.Update(existing.ID, userID, &service.UpdateRecipeRequest{
		Ingredients: &replacement,
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Ingredients, 1)
	assert.Equal(suite.T(), "Penne", response.Ingredients[0].Name)
}

// TestDeleteRecipeMissing tests deleting a recipe that does not exist
func (suite *RecipeServiceTestSuite) TestDeleteRecipeMissing() {
	recipeID := uuid.New()

	suite.mockRecipeRepo.EXPECT().
		GetByID(recipeID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.recipeService.Delete(recipeID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrRecipeNotFound)
}

// TestListRecipes tests listing the caller's recipes
func (suite *RecipeServiceTestSuite) TestListRecipes() {
	userID := uuid.New()
	recipes := []models.Recipe{
		*recipe(userID, "Pasta", ingredient("Tomato", 2, "pcs")),
		*recipe(userID, "Salad"),
	}

	suite.mockRecipeRepo.EXPECT().
		GetByUserID(userID).
		Return(recipes, nil).
		Times(1)

	responses, err := suite.recipeService.GetByUser(userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), "Pasta", responses[0].Name)
}

// TestRecipeServiceTestSuite runs the test suite
func TestRecipeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeServiceTestSuite))
}
