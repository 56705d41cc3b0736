package repository

import (
	"testing"

	"pantry-planner-backend/internal/database/models"
	"pantry-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RecipeRepositoryTestSuite tests the RecipeRepository
type RecipeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RecipeRepository
	users         *testutils.UserFactory
	recipes       *testutils.RecipeFactory
}

// SetupSuite runs before all tests in the suite
func (suite *RecipeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRecipeRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
	suite.recipes = testutils.NewRecipeFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *RecipeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RecipeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RecipeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RecipeRepositoryTestSuite) createUser() *models.User {
	user := suite.users.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

// TestCreateWithIngredients tests that ingredients are persisted with the recipe
func (suite *RecipeRepositoryTestSuite) TestCreateWithIngredients() {
	user := suite.createUser()
	recipe := suite.recipes.WithIngredients(user.ID,
		suite.recipes.Ingredient("Flour", 200, "g", 1),
		suite.recipes.Ingredient("Milk", 300, "ml", 2),
	)

	err := suite.repo.Create(recipe)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(recipe.ID)
	suite.NoError(err)
	suite.Len(retrieved.Ingredients, 2)
	suite.Equal("Flour", retrieved.Ingredients[0].Name)
	suite.Equal("Milk", retrieved.Ingredients[1].Name)
}

// TestGetByIDOrdersIngredients tests the sort order preload
func (suite *RecipeRepositoryTestSuite) TestGetByIDOrdersIngredients() {
	user := suite.createUser()
	recipe := suite.recipes.WithIngredients(user.ID,
		suite.recipes.Ingredient("Second", 1, "pcs", 2),
		suite.recipes.Ingredient("First", 1, "pcs", 1),
	)
	suite.NoError(suite.repo.Create(recipe))

	retrieved, err := suite.repo.GetByID(recipe.ID)

	suite.NoError(err)
	suite.Equal("First", retrieved.Ingredients[0].Name)
	suite.Equal("Second", retrieved.Ingredients[1].Name)
}

// TestReplaceIngredients tests the transactional ingredient swap
func (suite *RecipeRepositoryTestSuite) TestReplaceIngredients() {
	user := suite.createUser()
	recipe := suite.recipes.WithIngredients(user.ID,
		suite.recipes.Ingredient("Old", 1, "pcs", 1),
	)
	suite.NoError(suite.repo.Create(recipe))

	err := suite.repo.ReplaceIngredients(recipe.ID, []models.RecipeIngredient{
		{Name: "New A", Quantity: 2, Unit: "pcs", SortOrder: 1},
		{Name: "New B", Quantity: 3, Unit: "g", SortOrder: 2},
	})
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(recipe.ID)
	suite.NoError(err)
	suite.Len(retrieved.Ingredients, 2)
	suite.Equal("New A", retrieved.Ingredients[0].Name)
	suite.Equal("New B", retrieved.Ingredients[1].Name)
}

// TestDeleteCascadesToIngredients tests that ingredients never outlive their recipe
func (suite *RecipeRepositoryTestSuite) TestDeleteCascadesToIngredients() {
	user := suite.createUser()
	recipe := suite.recipes.WithIngredients(user.ID,
		suite.recipes.Ingredient("Flour", 200, "g", 1),
	)
	suite.NoError(suite.repo.Create(recipe))

	suite.NoError(suite.repo.Delete(recipe.ID))

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.RecipeIngredient{}).
		Where("recipe_id = ?", recipe.ID).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestGetByUserID tests listing a user's recipes by name
func (suite *RecipeRepositoryTestSuite) TestGetByUserID() {
	user := suite.createUser()
	other := suite.createUser()
	banana := suite.recipes.WithUser(user.ID)
	banana.Name = "Banana Bread"
	apple := suite.recipes.WithUser(user.ID)
	apple.Name = "Apple Pie"
	foreign := suite.recipes.WithUser(other.ID)
	for _, r := range []*models.Recipe{banana, apple, foreign} {
		suite.NoError(suite.repo.Create(r))
	}

	recipes, err := suite.repo.GetByUserID(user.ID)

	suite.NoError(err)
	suite.Len(recipes, 2)
	suite.Equal("Apple Pie", recipes[0].Name)
	suite.Equal("Banana Bread", recipes[1].Name)
}

// TestGetByIDNotFound tests retrieving a non-existent recipe
func (suite *RecipeRepositoryTestSuite) TestGetByIDNotFound() {
	recipe, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(recipe)
}

// TestRecipeRepositoryTestSuite runs the test suite
func TestRecipeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeRepositoryTestSuite))
}
