package service_test

import (
	"testing"

	"pantry-planner-backend/internal/access"
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

// ListServiceTestSuite defines the test suite for ListService
type ListServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockListRepo         *mocks.MockShoppingListRepositoryInterface
	mockItemRepo         *mocks.MockListItemRepositoryInterface
	mockCollaboratorRepo *mocks.MockCollaboratorRepositoryInterface
	listService          *service.ListService
	validator            *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ListServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockListRepo = mocks.NewMockShoppingListRepositoryInterface(suite.ctrl)
	suite.mockItemRepo = mocks.NewMockListItemRepositoryInterface(suite.ctrl)
	suite.mockCollaboratorRepo = mocks.NewMockCollaboratorRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	guard := access.NewGuard(suite.mockListRepo, suite.mockItemRepo, suite.mockCollaboratorRepo)
	suite.listService = service.NewListService(suite.mockListRepo, suite.mockItemRepo, guard, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ListServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ListServiceTestSuite) list(ownerID uuid.UUID) *models.ShoppingList {
	return &models.ShoppingList{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Groceries",
		OwnerID:   ownerID,
		Status:    models.ListStatusActive,
	}
}

func (suite *ListServiceTestSuite) expectRole(list *models.ShoppingList, userID uuid.UUID, role string) {
	suite.mockListRepo.EXPECT().
		GetByID(list.ID).
		Return(list, nil)
	if list.OwnerID != userID {
		if role == "" {
			suite.mockCollaboratorRepo.EXPECT().
				GetByListAndUser(list.ID, userID).
				Return(nil, gorm.ErrRecordNotFound)
		} else {
			suite.mockCollaboratorRepo.EXPECT().
				GetByListAndUser(list.ID, userID).
				Return(&models.Collaborator{ListID: list.ID, UserID: userID, Role: role}, nil)
		}
	}
}

// TestCreateList tests creating a list
func (suite *ListServiceTestSuite) TestCreateList() {
	userID := uuid.New()
	req := &service.CreateListRequest{Name: "Weekly Shop"}

	suite.mockListRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.listService.Create(userID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Weekly Shop", response.Name)
	assert.Equal(suite.T(), userID, response.OwnerID)
	assert.Equal(suite.T(), "owner", response.Role)
	assert.True(suite.T(), response.IsOwner)
	assert.Equal(suite.T(), models.ListStatusActive, response.Status)
}

// TestCreateListValidationError tests name validation on create
func (suite *ListServiceTestSuite) TestCreateListValidationError() {
	response, err := suite.listService.Create(uuid.New(), &service.CreateListRequest{Name: ""})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetListAsOwner tests reading an owned list
func (suite *ListServiceTestSuite) TestGetListAsOwner() {
	userID := uuid.New()
	list := suite.list(userID)

	// Once for role resolution, once for the read itself
	suite.mockListRepo.EXPECT().
		GetByID(list.ID).
		Return(list, nil).
		Times(2)

	response, err := suite.listService.GetByID(list.ID, userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), list.ID, response.ID)
	assert.True(suite.T(), response.IsOwner)
}

// TestGetListUnrelatedUserSeesNotFound tests that strangers cannot probe lists
func (suite *ListServiceTestSuite) TestGetListUnrelatedUserSeesNotFound() {
	userID := uuid.New()
	list := suite.list(uuid.New())

	suite.expectRole(list, userID, "")

	response, err := suite.listService.GetByID(list.ID, userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrListNotFound)
	assert.Nil(suite.T(), response)
}

// TestGetAccessible tests listing owned and shared lists
func (suite *ListServiceTestSuite) TestGetAccessible() {
	userID := uuid.New()
	owned := suite.list(userID)
	shared := suite.list(uuid.New())

	suite.mockListRepo.EXPECT().
		GetAccessibleByUser(userID).
		Return([]models.ShoppingList{*owned, *shared}, nil).
		Times(1)

	responses, err := suite.listService.GetAccessible(userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.True(suite.T(), responses[0].IsOwner)
	assert.False(suite.T(), responses[1].IsOwner)
}

// TestUpdateListAsAdmin tests updating details with an admin role
func (suite *ListServiceTestSuite) TestUpdateListAsAdmin() {
	userID := uuid.New()
	list := suite.list(uuid.New())
	newName := "Renamed"

	suite.expectRole(list, userID, "admin")
	suite.mockListRepo.EXPECT().
		GetByID(list.ID).
		Return(list, nil)
	suite.mockListRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.listService.Update(list.ID, userID, &service.UpdateListRequest{Name: &newName})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Renamed", response.Name)
	assert.Equal(suite.T(), "admin", response.Role)
}

// TestUpdateListAsEditorForbidden tests that editors cannot change list details
func (suite *ListServiceTestSuite) TestUpdateListAsEditorForbidden() {
	userID := uuid.New()
	list := suite.list(uuid.New())
	newName := "Renamed"

	suite.expectRole(list, userID, "editor")

	response, err := suite.listService.Update(list.ID, userID, &service.UpdateListRequest{Name: &newName})

	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleTooLow)
	assert.Nil(suite.T(), response)
}

// TestDeleteListAsViewerForbidden tests that viewers cannot delete
func (suite *ListServiceTestSuite) TestDeleteListAsViewerForbidden() {
	userID := uuid.New()
	list := suite.list(uuid.New())

	suite.expectRole(list, userID, "viewer")

	err := suite.listService.Delete(list.ID, userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleTooLow)
}

// TestDeleteListUnrelatedUserSeesNotFound tests the stranger case on delete
func (suite *ListServiceTestSuite) TestDeleteListUnrelatedUserSeesNotFound() {
	userID := uuid.New()
	list := suite.list(uuid.New())

	suite.expectRole(list, userID, "")

	err := suite.listService.Delete(list.ID, userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrListNotFound)
}

// TestDeleteListAsOwner tests a successful delete
func (suite *ListServiceTestSuite) TestDeleteListAsOwner() {
	userID := uuid.New()
	list := suite.list(userID)

	suite.mockListRepo.EXPECT().
		GetByID(list.ID).
		Return(list, nil)
	suite.mockListRepo.EXPECT().
		Delete(list.ID).
		Return(nil).
		Times(1)

	err := suite.listService.Delete(list.ID, userID)

	assert.NoError(suite.T(), err)
}

// TestDuplicateListCopiesItemsUnchecked tests the duplicate semantics
func (suite *ListServiceTestSuite) TestDuplicateListCopiesItemsUnchecked() {
	userID := uuid.New()
	source := suite.list(uuid.New())
	checked := true

	items := []models.ListItem{
		{BaseModel: models.BaseModel{ID: uuid.New()}, ListID: source.ID, Name: "Milk", Quantity: 1, SortOrder: 1, IsChecked: checked},
		{BaseModel: models.BaseModel{ID: uuid.New()}, ListID: source.ID, Name: "Bread", Quantity: 2, SortOrder: 2},
	}

	suite.expectRole(source, userID, "viewer")
	suite.mockListRepo.EXPECT().
		GetByID(source.ID).
		Return(source, nil)
	suite.mockItemRepo.EXPECT().
		GetByListID(source.ID).
		Return(items, nil).
		Times(1)

	suite.mockListRepo.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(list *models.ShoppingList, copies []models.ListItem) error {
			assert.Equal(suite.T(), "Groceries (Copy)", list.Name)
			assert.Equal(suite.T(), userID, list.OwnerID)
			assert.Len(suite.T(), copies, 2)
			for _, copy := range copies {
				assert.False(suite.T(), copy.IsChecked)
				assert.Nil(suite.T(), copy.CheckedAt)
				assert.Equal(suite.T(), userID, copy.CreatedByID)
			}
			return nil
		}).
		Times(1)

	response, err := suite.listService.Duplicate(source.ID, userID, &service.DuplicateListRequest{})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Groceries (Copy)", response.Name)
	assert.True(suite.T(), response.IsOwner)
}

// TestCreateFromTemplateRejectsNonTemplate tests that plain lists cannot be instantiated
func (suite *ListServiceTestSuite) TestCreateFromTemplateRejectsNonTemplate() {
	userID := uuid.New()
	source := suite.list(userID)

	suite.mockListRepo.EXPECT().
		GetByID(source.ID).
		Return(source, nil).
		Times(2)

	response, err := suite.listService.CreateFromTemplate(source.ID, userID, nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrListNotFound)
	assert.Nil(suite.T(), response)
}

// TestCreateFromTemplate tests instantiating a template
func (suite *ListServiceTestSuite) TestCreateFromTemplate() {
	userID := uuid.New()
	template := suite.list(userID)
	template.IsTemplate = true
	template.Name = "Camping Trip"

	suite.mockListRepo.EXPECT().
		GetByID(template.ID).
		Return(template, nil).
		Times(2)
	suite.mockItemRepo.EXPECT().
		GetByListID(template.ID).
		Return([]models.ListItem{{Name: "Tent", Quantity: 1, SortOrder: 1}}, nil).
		Times(1)
	suite.mockListRepo.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(list *models.ShoppingList, copies []models.ListItem) error {
			assert.Equal(suite.T(), "Camping Trip", list.Name)
			assert.False(suite.T(), list.IsTemplate)
			assert.Len(suite.T(), copies, 1)
			return nil
		}).
		Times(1)

	response, err := suite.listService.CreateFromTemplate(template.ID, userID, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Camping Trip", response.Name)
	assert.False(suite.T(), response.IsTemplate)
}

// TestListServiceTestSuite runs the test suite
func TestListServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ListServiceTestSuite))
}
