//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"gtm-crm-backend/internal/database/models"
	apperrors "gtm-crm-backend/internal/errors"
	"gtm-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ListRepositoryTestSuite tests the ListRepository
type ListRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ListRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	workspaceID   uuid.UUID
	ownerID       uuid.UUID
}

func (suite *ListRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewListRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *ListRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ListRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.workspaceID = uuid.New()
	suite.ownerID = uuid.New()
}

func (suite *ListRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ListRepositoryTestSuite) TestCreateDefaults() {
	list := suite.factories.List.Create(suite.workspaceID, suite.ownerID, models.KindCompany)
	list.MemberIDs = nil
	list.Version = 0

	suite.NoError(suite.repo.Create(suite.ctx, list))

	found, err := suite.repo.GetByID(suite.ctx, suite.workspaceID, list.ID)
	suite.NoError(err)
	suite.Equal(int64(1), found.Version)
	suite.NotNil(found.MemberIDs)
	suite.Empty(found.MemberIDs)
	suite.Equal(models.ListAccessPrivate, found.Access)
}

func (suite *ListRepositoryTestSuite) TestGetVisible() {
	otherUser := uuid.New()

	own := suite.factories.List.Create(suite.workspaceID, suite.ownerID, models.KindContact)
	public := suite.factories.List.Public(suite.workspaceID, otherUser, models.KindContact)
	hidden := suite.factories.List.Create(suite.workspaceID, otherUser, models.KindContact)
	companies := suite.factories.List.Public(suite.workspaceID, otherUser, models.KindCompany)
	foreign := suite.factories.List.Public(uuid.New(), otherUser, models.KindContact)
	for _, list := range []*models.List{own, public, hidden, companies, foreign} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, list))
	}

	lists, total, err := suite.repo.GetVisible(suite.ctx, suite.workspaceID, suite.ownerID, models.KindContact, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	ids := []uuid.UUID{lists[0].ID, lists[1].ID}
	suite.ElementsMatch([]uuid.UUID{own.ID, public.ID}, ids)

	_, total, err = suite.repo.GetVisible(suite.ctx, suite.workspaceID, suite.ownerID, "", 20, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
}

func (suite *ListRepositoryTestSuite) TestUpdateMembersBumpsVersion() {
	list := suite.factories.List.Create(suite.workspaceID, suite.ownerID, models.KindLead)
	suite.Require().NoError(suite.repo.Create(suite.ctx, list))

	member := uuid.New()
	updated, err := suite.repo.UpdateMembers(suite.ctx, list.ID, []string{member.String()}, list.Version)
	suite.NoError(err)
	suite.Equal(list.Version+1, updated.Version)
	suite.True(updated.HasMember(member))
}

func (suite *ListRepositoryTestSuite) TestUpdateMembersStaleVersion() {
	list := suite.factories.List.Create(suite.workspaceID, suite.ownerID, models.KindLead)
	suite.Require().NoError(suite.repo.Create(suite.ctx, list))

	_, err := suite.repo.UpdateMembers(suite.ctx, list.ID, []string{uuid.NewString()}, list.Version)
	suite.Require().NoError(err)

	_, err = suite.repo.UpdateMembers(suite.ctx, list.ID, []string{uuid.NewString()}, list.Version)
	suite.ErrorIs(err, apperrors.ErrListConflict)

	found, err := suite.repo.GetByID(suite.ctx, suite.workspaceID, list.ID)
	suite.NoError(err)
	suite.Len(found.MemberIDs, 1)
}

func (suite *ListRepositoryTestSuite) TestUpdateMembersMissingList() {
	_, err := suite.repo.UpdateMembers(suite.ctx, uuid.New(), []string{}, 1)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ListRepositoryTestSuite) TestUpdateDetailsKeepsMembers() {
	member := uuid.New()
	list := suite.factories.List.WithMembers(suite.workspaceID, suite.ownerID, models.KindCompany, member)
	suite.Require().NoError(suite.repo.Create(suite.ctx, list))

	list.Name = "Renamed"
	list.Access = models.ListAccessPublic
	updated, err := suite.repo.UpdateDetails(suite.ctx, list)
	suite.NoError(err)
	suite.Equal("Renamed", updated.Name)
	suite.Equal(models.ListAccessPublic, updated.Access)
	suite.True(updated.HasMember(member))
	suite.Equal(list.Version+1, updated.Version)
}

func (suite *ListRepositoryTestSuite) TestDelete() {
	list := suite.factories.List.Create(suite.workspaceID, suite.ownerID, models.KindCompany)
	suite.Require().NoError(suite.repo.Create(suite.ctx, list))

	suite.ErrorIs(suite.repo.Delete(suite.ctx, uuid.New(), list.ID), gorm.ErrRecordNotFound)
	suite.NoError(suite.repo.Delete(suite.ctx, suite.workspaceID, list.ID))

	_, err := suite.repo.GetByID(suite.ctx, suite.workspaceID, list.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestListRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ListRepositoryTestSuite))
}
