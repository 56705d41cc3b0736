package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pantry-planner-backend/internal/access"
	"pantry-planner-backend/internal/api/handlers"
	"pantry-planner-backend/internal/database/models"
	"pantry-planner-backend/internal/mocks"
	"pantry-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ListHandlerTestSuite defines the test suite for ListHandler
type ListHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockListRepo         *mocks.MockShoppingListRepositoryInterface
	mockItemRepo         *mocks.MockListItemRepositoryInterface
	mockCollaboratorRepo *mocks.MockCollaboratorRepositoryInterface
	handler              *handlers.ListHandler
	router               *gin.Engine
	userID               uuid.UUID
}

func (suite *ListHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockListRepo = mocks.NewMockShoppingListRepositoryInterface(suite.ctrl)
	suite.mockItemRepo = mocks.NewMockListItemRepositoryInterface(suite.ctrl)
	suite.mockCollaboratorRepo = mocks.NewMockCollaboratorRepositoryInterface(suite.ctrl)
	suite.userID = uuid.New()

	guard := access.NewGuard(suite.mockListRepo, suite.mockItemRepo, suite.mockCollaboratorRepo)
	listService := service.NewListService(suite.mockListRepo, suite.mockItemRepo, guard, validator.New())
	suite.handler = handlers.NewListHandler(listService)

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
	})
	suite.router.POST("/lists/:id/duplicate", suite.handler.DuplicateList)
	suite.router.POST("/lists/:id/instantiate", suite.handler.CreateFromTemplate)
}

func (suite *ListHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ListHandlerTestSuite) expectCopySource(name string, isTemplate bool) *models.ShoppingList {
	source := &models.ShoppingList{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       name,
		OwnerID:    suite.userID,
		IsTemplate: isTemplate,
		Status:     models.ListStatusActive,
	}
	suite.mockListRepo.EXPECT().GetByID(source.ID).Return(source, nil).Times(2)
	suite.mockItemRepo.EXPECT().GetByListID(source.ID).Return([]models.ListItem{
		{Name: "Milk", Quantity: 1, SortOrder: 1, IsChecked: true},
	}, nil)
	suite.mockListRepo.EXPECT().CreateWithItems(gomock.Any(), gomock.Any()).Return(nil)
	return source
}

// TestDuplicateList_EmptyBody_Success tests duplicating without a request body
func (suite *ListHandlerTestSuite) TestDuplicateList_EmptyBody_Success() {
	source := suite.expectCopySource("Groceries", false)

	req := httptest.NewRequest(http.MethodPost, "/lists/"+source.ID.String()+"/duplicate", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.ListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Groceries (Copy)", got.Name)
}

// TestCreateFromTemplate_EmptyBody_Success tests instantiating a template without a request body
func (suite *ListHandlerTestSuite) TestCreateFromTemplate_EmptyBody_Success() {
	source := suite.expectCopySource("Weekly Staples", true)

	req := httptest.NewRequest(http.MethodPost, "/lists/"+source.ID.String()+"/instantiate", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.ListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Weekly Staples", got.Name)
}

// TestListHandlerTestSuite runs the test suite
func TestListHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListHandlerTestSuite))
}
