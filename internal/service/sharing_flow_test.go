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

// SharingFlowTestSuite walks a list through the full sharing lifecycle:
// shared as viewer, blocked from editing, upgraded to editor, then editing.
type SharingFlowTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockListRepo         *mocks.MockShoppingListRepositoryInterface
	mockItemRepo         *mocks.MockListItemRepositoryInterface
	mockCollaboratorRepo *mocks.MockCollaboratorRepositoryInterface
	mockUserRepo         *mocks.MockUserRepositoryInterface
	collaboratorService  *service.CollaboratorService
	itemService          *service.ItemService
}

// SetupTest sets up the test suite
func (suite *SharingFlowTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockListRepo = mocks.NewMockShoppingListRepositoryInterface(suite.ctrl)
	suite.mockItemRepo = mocks.NewMockListItemRepositoryInterface(suite.ctrl)
	suite.mockCollaboratorRepo = mocks.NewMockCollaboratorRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	v := validator.New()

	guard := access.NewGuard(suite.mockListRepo, suite.mockItemRepo, suite.mockCollaboratorRepo)
	suite.collaboratorService = service.NewCollaboratorService(suite.mockCollaboratorRepo, suite.mockListRepo, suite.mockUserRepo, guard, v)
	suite.itemService = service.NewItemService(suite.mockItemRepo, guard, v)
}

// TearDownTest cleans up after each test
func (suite *SharingFlowTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestViewerUpgradedToEditorCanAddItems tests the viewer-to-editor upgrade path
func (suite *SharingFlowTestSuite) TestViewerUpgradedToEditorCanAddItems() {
	owner := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "anna@example.com"}
	guest := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "ben@example.com"}
	list := &models.ShoppingList{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Weekend Groceries",
		OwnerID:   owner.ID,
	}

	// The owner shares the list with the guest as a viewer.
	suite.mockListRepo.EXPECT().GetByID(list.ID).Return(list, nil).Times(2)
	suite.mockUserRepo.EXPECT().GetByEmail(guest.Email).Return(guest, nil)
	suite.mockCollaboratorRepo.EXPECT().
		GetByListAndUser(list.ID, guest.ID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockCollaboratorRepo.EXPECT().Create(gomock.Any()).Return(nil)

	shared, err := suite.collaboratorService.Share(list.ID, owner.ID, &service.ShareListRequest{
		Email: guest.Email,
		Role:  "viewer",
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "viewer", shared.Role)

	// The guest tries to add an item and is refused.
	suite.mockListRepo.EXPECT().GetByID(list.ID).Return(list, nil)
	suite.mockCollaboratorRepo.EXPECT().
		GetByListAndUser(list.ID, guest.ID).
		Return(&models.Collaborator{ListID: list.ID, UserID: guest.ID, Role: "viewer"}, nil)

	_, err = suite.itemService.Create(list.ID, guest.ID, &service.CreateItemRequest{
		Name:     "Milk",
		Quantity: 1,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleTooLow)

	// The owner upgrades the guest to editor.
	suite.mockListRepo.EXPECT().GetByID(list.ID).Return(list, nil)
	suite.mockCollaboratorRepo.EXPECT().
		GetByListAndUser(list.ID, guest.ID).
		Return(&models.Collaborator{ListID: list.ID, UserID: guest.ID, Role: "viewer"}, nil)
	suite.mockCollaboratorRepo.EXPECT().Update(gomock.Any()).Return(nil)

	upgraded, err := suite.collaboratorService.UpdateRole(list.ID, owner.ID, guest.ID, &service.UpdateCollaboratorRoleRequest{Role: "editor"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "editor", upgraded.Role)

	// The same request now succeeds and the item is auto-categorized.
	suite.mockListRepo.EXPECT().GetByID(list.ID).Return(list, nil)
	suite.mockCollaboratorRepo.EXPECT().
		GetByListAndUser(list.ID, guest.ID).
		Return(&models.Collaborator{ListID: list.ID, UserID: guest.ID, Role: "editor"}, nil)
	suite.mockItemRepo.EXPECT().CountByListID(list.ID).Return(int64(0), nil)
	suite.mockItemRepo.EXPECT().MaxSortOrder(list.ID).Return(0, nil)
	suite.mockItemRepo.EXPECT().Create(gomock.Any()).Return(nil)

	created, err := suite.itemService.Create(list.ID, guest.ID, &service.CreateItemRequest{
		Name:     "Milk",
		Quantity: 1,
	})
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), created.AutoCategorized)
	assert.Equal(suite.T(), "dairy", created.Item.Category)
	assert.Equal(suite.T(), guest.ID, created.Item.CreatedByID)
}

// TestSharingFlowTestSuite runs the test suite
func TestSharingFlowTestSuite(t *testing.T) {
	suite.Run(t, new(SharingFlowTestSuite))
}
