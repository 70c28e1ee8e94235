//go:build integration
// +build integration

package repository

import (
	"context"
	"fmt"
	"testing"

	"gtm-crm-backend/internal/database/models"
	"gtm-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EntityRepositoryTestSuite tests the generic EntityRepository across kinds
type EntityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repos         EntityRepositories
	factories     *testutils.FactorySet
	ctx           context.Context
	workspaceID   uuid.UUID
	ownerID       uuid.UUID
}

func (suite *EntityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repos = NewEntityRepositories(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *EntityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *EntityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.workspaceID = uuid.New()
	suite.ownerID = uuid.New()
}

func (suite *EntityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EntityRepositoryTestSuite) TestRepositoriesCoverEveryKind() {
	for _, kind := range []models.EntityKind{models.KindCompany, models.KindContact, models.KindLead, models.KindDeal} {
		repo, ok := suite.repos[kind]
		suite.True(ok, "missing repository for %s", kind)
		suite.Equal(kind, repo.Kind())
	}
	_, ok := suite.repos[models.KindList]
	suite.False(ok)
}

func (suite *EntityRepositoryTestSuite) TestCreateAndGetByID() {
	records := []models.Entity{
		suite.factories.Company.Create(suite.workspaceID, suite.ownerID),
		suite.factories.Contact.Create(suite.workspaceID, suite.ownerID),
		suite.factories.Lead.Create(suite.workspaceID, suite.ownerID),
		suite.factories.Deal.Create(suite.workspaceID, suite.ownerID),
	}

	for _, record := range records {
		repo := suite.repos[record.Kind()]
		suite.Require().NoError(repo.Create(suite.ctx, record))

		found, err := repo.GetByID(suite.ctx, suite.workspaceID, record.GetID())
		suite.NoError(err)
		suite.Equal(record.Kind(), found.Kind())
		suite.Equal(record.DisplayName(), found.DisplayName())
		suite.Equal(suite.ownerID, found.GetOwnerID())
	}
}

func (suite *EntityRepositoryTestSuite) TestGetByIDIsWorkspaceScoped() {
	company := suite.factories.Company.Create(suite.workspaceID, suite.ownerID)
	repo := suite.repos[models.KindCompany]
	suite.Require().NoError(repo.Create(suite.ctx, company))

	_, err := repo.GetByID(suite.ctx, uuid.New(), company.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *EntityRepositoryTestSuite) TestGetByIDsSkipsMissing() {
	repo := suite.repos[models.KindContact]
	first := suite.factories.Contact.Create(suite.workspaceID, suite.ownerID)
	second := suite.factories.Contact.Create(suite.workspaceID, suite.ownerID)
	suite.Require().NoError(repo.Create(suite.ctx, first))
	suite.Require().NoError(repo.Create(suite.ctx, second))

	found, err := repo.GetByIDs(suite.ctx, suite.workspaceID, []uuid.UUID{first.ID, uuid.New(), second.ID})
	suite.NoError(err)
	suite.Len(found, 2)

	empty, err := repo.GetByIDs(suite.ctx, suite.workspaceID, nil)
	suite.NoError(err)
	suite.Empty(empty)
}

func (suite *EntityRepositoryTestSuite) TestGetByWorkspaceFiltersAndPaginates() {
	repo := suite.repos[models.KindCompany]
	for i := 0; i < 5; i++ {
		company := suite.factories.Company.WithName(suite.workspaceID, suite.ownerID, fmt.Sprintf("Acme %d", i))
		suite.Require().NoError(repo.Create(suite.ctx, company))
	}
	other := suite.factories.Company.WithName(suite.workspaceID, suite.ownerID, "Globex")
	suite.Require().NoError(repo.Create(suite.ctx, other))
	foreign := suite.factories.Company.WithName(uuid.New(), suite.ownerID, "Acme Foreign")
	suite.Require().NoError(repo.Create(suite.ctx, foreign))

	page, total, err := repo.GetByWorkspace(suite.ctx, suite.workspaceID, "acme", 2, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(page, 2)

	all, total, err := repo.GetByWorkspace(suite.ctx, suite.workspaceID, "", 20, 0)
	suite.NoError(err)
	suite.Equal(int64(6), total)
	suite.Len(all, 6)
}

func (suite *EntityRepositoryTestSuite) TestGetByWorkspaceMatchesWildcardsLiterally() {
	repo := suite.repos[models.KindCompany]
	for _, name := range []string{"100% Growth", "1000 Growth", "a_b Labs", "axb Labs"} {
		company := suite.factories.Company.WithName(suite.workspaceID, suite.ownerID, name)
		suite.Require().NoError(repo.Create(suite.ctx, company))
	}

	percent, total, err := repo.GetByWorkspace(suite.ctx, suite.workspaceID, "100%", 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("100% Growth", percent[0].DisplayName())

	underscore, total, err := repo.GetByWorkspace(suite.ctx, suite.workspaceID, "a_b", 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("a_b Labs", underscore[0].DisplayName())
}

func (suite *EntityRepositoryTestSuite) TestUpdate() {
	repo := suite.repos[models.KindLead]
	lead := suite.factories.Lead.Create(suite.workspaceID, suite.ownerID)
	suite.Require().NoError(repo.Create(suite.ctx, lead))

	lead.Status = "Qualified"
	suite.NoError(repo.Update(suite.ctx, lead))

	found, err := repo.GetByID(suite.ctx, suite.workspaceID, lead.ID)
	suite.NoError(err)
	suite.Equal("Qualified", found.Fields()[models.FieldStatus])
}

func (suite *EntityRepositoryTestSuite) TestDelete() {
	repo := suite.repos[models.KindDeal]
	deal := suite.factories.Deal.Create(suite.workspaceID, suite.ownerID)
	suite.Require().NoError(repo.Create(suite.ctx, deal))

	suite.ErrorIs(repo.Delete(suite.ctx, uuid.New(), deal.ID), gorm.ErrRecordNotFound)
	suite.NoError(repo.Delete(suite.ctx, suite.workspaceID, deal.ID))
	suite.ErrorIs(repo.Delete(suite.ctx, suite.workspaceID, deal.ID), gorm.ErrRecordNotFound)
}

func TestEntityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EntityRepositoryTestSuite))
}
