package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"gtm-crm-backend/internal/auth"
	"gtm-crm-backend/internal/database/models"
	apperrors "gtm-crm-backend/internal/errors"
	"gtm-crm-backend/internal/export"
	"gtm-crm-backend/internal/mocks"
	"gtm-crm-backend/internal/repository"
	"gtm-crm-backend/internal/service"
	"gtm-crm-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type ProjectionServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	contactRepo *mocks.MockEntityRepositoryInterface
	session     auth.Session
	ctx         context.Context
}

func (suite *ProjectionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.contactRepo = mocks.NewMockEntityRepositoryInterface(suite.ctrl)
	suite.contactRepo.EXPECT().Kind().Return(models.KindContact).AnyTimes()
	suite.session = newSession()
	suite.ctx = context.Background()
}

func (suite *ProjectionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectionServiceTestSuite) newService(lists repository.ListRepositoryInterface) *service.ProjectionService {
	return service.NewProjectionService(lists, repository.NewEntityRepositoriesFrom(suite.contactRepo), time.Second)
}

func (suite *ProjectionServiceTestSuite) contact(id uuid.UUID, name string) *models.Contact {
	c := &models.Contact{Name: name, Email: name + "@example.com"}
	c.ID = id
	c.SetOwnership(suite.session.WorkspaceID, suite.session.UserID)
	return c
}

func (suite *ProjectionServiceTestSuite) TestResolveMembers_SkipsDeletedEntity() {
	one, two, three := uuid.New(), uuid.New(), uuid.New()
	list := newList(suite.session, models.KindContact, one, two, three)

	suite.contactRepo.EXPECT().
		GetByIDs(gomock.Any(), suite.session.WorkspaceID, []uuid.UUID{one, two, three}).
		Return([]models.Entity{suite.contact(three, "carol"), suite.contact(one, "alice")}, nil)

	projection, err := suite.newService(newListStoreStub()).ResolveMembers(suite.ctx, list)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), projection.Members, 2)
	assert.Equal(suite.T(), one, projection.Members[0].GetID())
	assert.Equal(suite.T(), three, projection.Members[1].GetID())
	assert.Equal(suite.T(), []string{two.String()}, projection.Orphaned)
}

func (suite *ProjectionServiceTestSuite) TestResolveMembers_MalformedIDIsOrphaned() {
	one := uuid.New()
	list := newList(suite.session, models.KindContact, one)
	list.MemberIDs = append(list.MemberIDs, "not-a-uuid")

	suite.contactRepo.EXPECT().
		GetByIDs(gomock.Any(), suite.session.WorkspaceID, []uuid.UUID{one}).
		Return([]models.Entity{suite.contact(one, "alice")}, nil)

	projection, err := suite.newService(newListStoreStub()).ResolveMembers(suite.ctx, list)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), projection.Members, 1)
	assert.Equal(suite.T(), []string{"not-a-uuid"}, projection.Orphaned)
}

func (suite *ProjectionServiceTestSuite) TestResolveMembers_EmptyList() {
	list := newList(suite.session, models.KindContact)

	projection, err := suite.newService(newListStoreStub()).ResolveMembers(suite.ctx, list)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), projection.Members)
	assert.Empty(suite.T(), projection.Orphaned)
}

func (suite *ProjectionServiceTestSuite) TestResolveMembers_ReadFailure() {
	list := newList(suite.session, models.KindContact, uuid.New())
	suite.contactRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

	_, err := suite.newService(newListStoreStub()).ResolveMembers(suite.ctx, list)

	assert.True(suite.T(), apperrors.IsTransient(err))
}

func (suite *ProjectionServiceTestSuite) TestCreateThenResolve_IsEmpty() {
	store := newListStoreStub()
	lists := service.NewListService(store, validation.New(), nil, time.Second)

	created, err := lists.CreateList(suite.ctx, suite.session, &service.CreateListRequest{Name: "Q4 Targets", Type: "Contact", Access: "Private"})
	require.NoError(suite.T(), err)

	resp, err := suite.newService(store).GetMembers(suite.ctx, suite.session, created.ID)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), resp.Members)
	assert.Empty(suite.T(), resp.Orphaned)
	assert.Equal(suite.T(), created.ID, resp.List.ID)
}

func (suite *ProjectionServiceTestSuite) TestGetMembers_HiddenList() {
	other := auth.Session{UserID: uuid.New(), WorkspaceID: suite.session.WorkspaceID}
	list := newList(other, models.KindContact)
	store := newListStoreStub(list)

	_, err := suite.newService(store).GetMembers(suite.ctx, suite.session, list.ID)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrListNotFound))
}

func (suite *ProjectionServiceTestSuite) TestGetMembers_FlattensFields() {
	one := uuid.New()
	list := newList(suite.session, models.KindContact, one)
	store := newListStoreStub(list)
	suite.contactRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Entity{suite.contact(one, "alice")}, nil)

	resp, err := suite.newService(store).GetMembers(suite.ctx, suite.session, list.ID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp.Members, 1)
	assert.Equal(suite.T(), one.String(), resp.Members[0]["id"])
	assert.Equal(suite.T(), "Contact", resp.Members[0]["kind"])
	assert.Equal(suite.T(), "alice", resp.Members[0][models.FieldName])
}

func (suite *ProjectionServiceTestSuite) TestExportMembers() {
	one := uuid.New()
	list := newList(suite.session, models.KindContact, one, uuid.New())
	store := newListStoreStub(list)
	suite.contactRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Entity{suite.contact(one, "alice")}, nil)

	file, err := suite.newService(store).ExportMembers(suite.ctx, suite.session, list.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Q4_Targets.xlsx", file.Name)
	assert.Equal(suite.T(), export.ContentType, file.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(suite.T(), err)
	defer f.Close()
	rows, err := f.GetRows("Q4 Targets")
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), rows, 2)
}

func TestProjectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectionServiceTestSuite))
}
