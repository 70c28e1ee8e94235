package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"gtm-crm-backend/internal/auth"
	"gtm-crm-backend/internal/database/models"
	apperrors "gtm-crm-backend/internal/errors"
	"gtm-crm-backend/internal/metrics"
	"gtm-crm-backend/internal/mocks"
	"gtm-crm-backend/internal/notify"
	"gtm-crm-backend/internal/repository"
	"gtm-crm-backend/internal/service"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	companyRepo *mocks.MockEntityRepositoryInterface
	contactRepo *mocks.MockEntityRepositoryInterface
	entities    repository.EntityRepositories
	publisher   *recordingPublisher
	session     auth.Session
	ctx         context.Context
}

func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.companyRepo = mocks.NewMockEntityRepositoryInterface(suite.ctrl)
	suite.contactRepo = mocks.NewMockEntityRepositoryInterface(suite.ctrl)
	suite.companyRepo.EXPECT().Kind().Return(models.KindCompany).AnyTimes()
	suite.contactRepo.EXPECT().Kind().Return(models.KindContact).AnyTimes()
	suite.entities = repository.NewEntityRepositoriesFrom(suite.companyRepo, suite.contactRepo)
	suite.publisher = &recordingPublisher{}
	suite.session = newSession()
	suite.ctx = context.Background()
}

func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipServiceTestSuite) newService(lists repository.ListRepositoryInterface) *service.MembershipService {
	return service.NewMembershipService(lists, suite.entities, suite.publisher, time.Second).WithRetryDelay(time.Millisecond)
}

func (suite *MembershipServiceTestSuite) expectCompany(id uuid.UUID) *gomock.Call {
	company := &models.Company{Name: "Acme"}
	company.ID = id
	company.SetOwnership(suite.session.WorkspaceID, suite.session.UserID)
	return suite.companyRepo.EXPECT().GetByID(gomock.Any(), suite.session.WorkspaceID, id).Return(company, nil)
}

func (suite *MembershipServiceTestSuite) toggle(svc *service.MembershipService, listID, entityID uuid.UUID, kind models.EntityKind) (*service.MembershipResponse, error) {
	return svc.ToggleMembership(suite.ctx, suite.session, listID, &service.ToggleMembershipRequest{EntityID: entityID, EntityType: kind})
}

func (suite *MembershipServiceTestSuite) TestToggle_AddsThenRemoves() {
	list := newList(suite.session, models.KindCompany)
	store := newListStoreStub(list)
	svc := suite.newService(store)
	companyID := uuid.New()
	suite.expectCompany(companyID).Times(1)

	added, err := suite.toggle(svc, list.ID, companyID, models.KindCompany)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MembershipAdd, added.Op)
	assert.True(suite.T(), added.Changed)
	assert.Equal(suite.T(), []string{companyID.String()}, added.List.MemberIDs)
	assert.Equal(suite.T(), int64(2), added.List.Version)

	removed, err := suite.toggle(svc, list.ID, companyID, models.KindCompany)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MembershipRemove, removed.Op)
	assert.Empty(suite.T(), removed.List.MemberIDs)
	assert.Equal(suite.T(), int64(3), removed.List.Version)
}

func (suite *MembershipServiceTestSuite) TestToggle_TwiceRestoresMembership() {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	list := newList(suite.session, models.KindCompany, a, b)
	store := newListStoreStub(list)
	svc := suite.newService(store)
	suite.expectCompany(c)

	_, err := suite.toggle(svc, list.ID, c, models.KindCompany)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{a.String(), b.String(), c.String()}, []string(store.get(list.ID).MemberIDs))

	_, err = suite.toggle(svc, list.ID, c, models.KindCompany)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string(list.MemberIDs), []string(store.get(list.ID).MemberIDs))
}

func (suite *MembershipServiceTestSuite) TestMembersStayUnique() {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	list := newList(suite.session, models.KindCompany)
	store := newListStoreStub(list)
	svc := suite.newService(store)
	for _, id := range ids {
		suite.expectCompany(id).AnyTimes()
	}

	sequence := []int{0, 1, 0, 2, 2, 1, 0, 0, 1, 2, 2}
	for i, n := range sequence {
		var err error
		if i%3 == 0 {
			_, err = svc.AddMember(suite.ctx, suite.session, list.ID, ids[n], models.KindCompany)
		} else {
			_, err = suite.toggle(svc, list.ID, ids[n], models.KindCompany)
		}
		require.NoError(suite.T(), err)

		seen := map[string]bool{}
		for _, member := range store.get(list.ID).MemberIDs {
			assert.False(suite.T(), seen[member], "duplicate member %s after step %d", member, i)
			seen[member] = true
		}
	}
}

func (suite *MembershipServiceTestSuite) TestToggle_TypeMismatch() {
	existing := uuid.New()
	list := newList(suite.session, models.KindContact, existing)
	store := newListStoreStub(list)
	svc := suite.newService(store)

	resp, err := suite.toggle(svc, list.ID, uuid.New(), models.KindCompany)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsTypeMismatch(err))
	assert.Equal(suite.T(), 0, store.writes)
	assert.Equal(suite.T(), []string{existing.String()}, []string(store.get(list.ID).MemberIDs))
	assert.Equal(suite.T(), []notify.EventType{notify.EventListMembershipRejected}, suite.publisher.types())
}

func (suite *MembershipServiceTestSuite) TestAdd_EntityMissing() {
	list := newList(suite.session, models.KindCompany)
	store := newListStoreStub(list)
	svc := suite.newService(store)
	companyID := uuid.New()
	suite.companyRepo.EXPECT().GetByID(gomock.Any(), suite.session.WorkspaceID, companyID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AddMember(suite.ctx, suite.session, list.ID, companyID, models.KindCompany)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrCompanyNotFound))
	assert.Equal(suite.T(), 0, store.writes)
}

func (suite *MembershipServiceTestSuite) TestAdd_PresentIsNoOp() {
	companyID := uuid.New()
	list := newList(suite.session, models.KindCompany, companyID)
	store := newListStoreStub(list)
	svc := suite.newService(store)

	resp, err := svc.AddMember(suite.ctx, suite.session, list.ID, companyID, models.KindCompany)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Changed)
	assert.Equal(suite.T(), int64(1), resp.List.Version)
	assert.Equal(suite.T(), 0, store.writes)
}

func (suite *MembershipServiceTestSuite) TestRemove_TwiceIsNoOp() {
	companyID := uuid.New()
	list := newList(suite.session, models.KindCompany, companyID)
	store := newListStoreStub(list)
	svc := suite.newService(store)

	first, err := svc.RemoveMember(suite.ctx, suite.session, list.ID, companyID, models.KindCompany)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), first.Changed)
	assert.Empty(suite.T(), first.List.MemberIDs)

	second, err := svc.RemoveMember(suite.ctx, suite.session, list.ID, companyID, models.KindCompany)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), second.Changed)
	assert.Equal(suite.T(), first.List.MemberIDs, second.List.MemberIDs)
	assert.Equal(suite.T(), first.List.Version, second.List.Version)
	assert.Equal(suite.T(), 1, store.writes)
}

func (suite *MembershipServiceTestSuite) TestRemove_OrphanedMemberNeedsNoLookup() {
	orphan := uuid.New()
	list := newList(suite.session, models.KindCompany, orphan)
	store := newListStoreStub(list)
	svc := suite.newService(store)

	resp, err := svc.UpdateMembership(suite.ctx, suite.session, list.ID, &service.MembershipRequest{
		EntityID:   orphan,
		EntityType: models.KindCompany,
		Op:         models.MembershipRemove,
	})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Changed)
	assert.Empty(suite.T(), store.get(list.ID).MemberIDs)
}

func (suite *MembershipServiceTestSuite) TestListMissing() {
	svc := suite.newService(newListStoreStub())

	_, err := suite.toggle(svc, uuid.New(), uuid.New(), models.KindCompany)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrListNotFound))
}

func (suite *MembershipServiceTestSuite) TestPrivateListOfAnotherUserIsHidden() {
	other := auth.Session{UserID: uuid.New(), WorkspaceID: suite.session.WorkspaceID}
	list := newList(other, models.KindCompany)
	store := newListStoreStub(list)
	svc := suite.newService(store)

	_, err := suite.toggle(svc, list.ID, uuid.New(), models.KindCompany)

	assert.True(suite.T(), errors.Is(err, apperrors.ErrListNotFound))
	assert.Equal(suite.T(), 0, store.writes)
}

func (suite *MembershipServiceTestSuite) TestPublicListAcceptsWorkspaceMembers() {
	other := auth.Session{UserID: uuid.New(), WorkspaceID: suite.session.WorkspaceID}
	list := newList(other, models.KindCompany)
	list.Access = models.ListAccessPublic
	store := newListStoreStub(list)
	svc := suite.newService(store)
	companyID := uuid.New()
	suite.expectCompany(companyID)

	resp, err := svc.AddMember(suite.ctx, suite.session, list.ID, companyID, models.KindCompany)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{companyID.String()}, resp.List.MemberIDs)
}

func (suite *MembershipServiceTestSuite) TestConflict_RetriedOnceAgainstFreshRead() {
	list := newList(suite.session, models.KindCompany)
	store := newListStoreStub(list)
	store.failNext = apperrors.ErrListConflict
	svc := suite.newService(store)
	companyID := uuid.New()
	suite.expectCompany(companyID).Times(2)

	resp, err := suite.toggle(svc, list.ID, companyID, models.KindCompany)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{companyID.String()}, resp.List.MemberIDs)
	assert.Equal(suite.T(), 1, store.writes)
}

func (suite *MembershipServiceTestSuite) TestConflict_SurfacesAfterSecondFailure() {
	list := newList(suite.session, models.KindCompany)
	listRepo := mocks.NewMockListRepositoryInterface(suite.ctrl)
	svc := suite.newService(listRepo)
	companyID := uuid.New()

	listRepo.EXPECT().GetByID(gomock.Any(), suite.session.WorkspaceID, list.ID).Return(list, nil).Times(2)
	suite.expectCompany(companyID).Times(2)
	listRepo.EXPECT().UpdateMembers(gomock.Any(), list.ID, []string{companyID.String()}, int64(1)).
		Return(nil, apperrors.ErrListConflict).Times(2)

	_, err := svc.AddMember(suite.ctx, suite.session, list.ID, companyID, models.KindCompany)

	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *MembershipServiceTestSuite) TestConflict_FromConcurrentWriterElsewhere() {
	list := newList(suite.session, models.KindCompany)
	listRepo := mocks.NewMockListRepositoryInterface(suite.ctrl)
	svc := suite.newService(listRepo)
	companyID := uuid.New()

	stale := list
	fresh := newList(suite.session, models.KindCompany)
	fresh.ID = list.ID
	fresh.Version = 2
	updated := newList(suite.session, models.KindCompany, companyID)
	updated.ID = list.ID
	updated.Version = 3

	gomock.InOrder(
		listRepo.EXPECT().GetByID(gomock.Any(), suite.session.WorkspaceID, list.ID).Return(stale, nil),
		listRepo.EXPECT().UpdateMembers(gomock.Any(), list.ID, gomock.Any(), int64(1)).Return(nil, apperrors.ErrListConflict),
		listRepo.EXPECT().GetByID(gomock.Any(), suite.session.WorkspaceID, list.ID).Return(fresh, nil),
		listRepo.EXPECT().UpdateMembers(gomock.Any(), list.ID, []string{companyID.String()}, int64(2)).Return(updated, nil),
	)
	suite.expectCompany(companyID).Times(2)

	resp, err := svc.AddMember(suite.ctx, suite.session, list.ID, companyID, models.KindCompany)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), resp.List.Version)
}

func (suite *MembershipServiceTestSuite) TestTransient_ExplicitOpRetried() {
	list := newList(suite.session, models.KindCompany)
	store := newListStoreStub(list)
	store.failNext = context.DeadlineExceeded
	svc := suite.newService(store)
	companyID := uuid.New()
	suite.expectCompany(companyID).Times(2)

	resp, err := svc.AddMember(suite.ctx, suite.session, list.ID, companyID, models.KindCompany)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Changed)
}

func (suite *MembershipServiceTestSuite) TestTransient_CommittedWriteReportedAsChange() {
	list := newList(suite.session, models.KindCompany)
	store := newListStoreStub(list)
	store.loseReplyNext = context.DeadlineExceeded
	svc := suite.newService(store)
	companyID := uuid.New()
	suite.expectCompany(companyID)

	resp, err := svc.AddMember(suite.ctx, suite.session, list.ID, companyID, models.KindCompany)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Changed)
	assert.Equal(suite.T(), int64(2), resp.List.Version)
	assert.Equal(suite.T(), 1, store.writes)
	assert.Equal(suite.T(), []notify.EventType{notify.EventListMembershipUpdated}, suite.publisher.types())
}

func (suite *MembershipServiceTestSuite) TestRemove_AbsentPublishesNothing() {
	list := newList(suite.session, models.KindCompany)
	store := newListStoreStub(list)
	svc := suite.newService(store)

	resp, err := svc.RemoveMember(suite.ctx, suite.session, list.ID, uuid.New(), models.KindCompany)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Changed)
	assert.Empty(suite.T(), suite.publisher.types())
}

func (suite *MembershipServiceTestSuite) TestTransient_ToggleNotRetried() {
	list := newList(suite.session, models.KindCompany)
	store := newListStoreStub(list)
	store.failNext = context.DeadlineExceeded
	svc := suite.newService(store)
	companyID := uuid.New()
	suite.expectCompany(companyID).Times(1)

	_, err := suite.toggle(svc, list.ID, companyID, models.KindCompany)

	assert.True(suite.T(), apperrors.IsTransient(err))
	assert.Equal(suite.T(), 0, store.writes)
}

func (suite *MembershipServiceTestSuite) TestCancelledRequestStillWrites() {
	list := newList(suite.session, models.KindCompany)
	store := newListStoreStub(list)
	svc := suite.newService(store)
	companyID := uuid.New()
	suite.expectCompany(companyID)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	resp, err := svc.AddMember(ctx, suite.session, list.ID, companyID, models.KindCompany)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Changed)
	assert.Equal(suite.T(), []notify.EventType{notify.EventListMembershipUpdated}, suite.publisher.types())
}

func (suite *MembershipServiceTestSuite) TestConcurrentAddsAreSerialized() {
	list := newList(suite.session, models.KindCompany)
	store := newListStoreStub(list)
	svc := suite.newService(store)
	suite.companyRepo.EXPECT().GetByID(gomock.Any(), suite.session.WorkspaceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, id uuid.UUID) (models.Entity, error) {
			c := &models.Company{Name: "Acme"}
			c.ID = id
			return c, nil
		}).AnyTimes()

	const n = 25
	ids := make([]uuid.UUID, n)
	var wg sync.WaitGroup
	for i := range ids {
		ids[i] = uuid.New()
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := svc.AddMember(suite.ctx, suite.session, list.ID, id, models.KindCompany)
			assert.NoError(suite.T(), err)
		}(ids[i])
	}
	wg.Wait()

	final := store.get(list.ID)
	assert.Len(suite.T(), final.MemberIDs, n)
	assert.Equal(suite.T(), int64(n+1), final.Version)
	for _, id := range ids {
		assert.Contains(suite.T(), []string(final.MemberIDs), id.String())
	}
}

func (suite *MembershipServiceTestSuite) TestUpdateMembership_InvalidOp() {
	svc := suite.newService(newListStoreStub())

	_, err := svc.UpdateMembership(suite.ctx, suite.session, uuid.New(), &service.MembershipRequest{
		EntityID:   uuid.New(),
		EntityType: models.KindCompany,
		Op:         "replace",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Equal(suite.T(), map[string]string{"op": "Op must be add or remove"}, apperrors.FieldErrorsOf(err))
}

func (suite *MembershipServiceTestSuite) TestUpdateMembership_InvalidOpsShareOneSeries() {
	svc := suite.newService(newListStoreStub())

	// warm the fixed label so only unexpected series are counted below
	_, _ = svc.UpdateMembership(suite.ctx, suite.session, uuid.New(), &service.MembershipRequest{
		EntityID: uuid.New(), EntityType: models.KindCompany, Op: "warmup",
	})
	before := testutil.CollectAndCount(metrics.MembershipOps)

	for i := 0; i < 50; i++ {
		_, err := svc.UpdateMembership(suite.ctx, suite.session, uuid.New(), &service.MembershipRequest{
			EntityID:   uuid.New(),
			EntityType: models.KindCompany,
			Op:         models.MembershipOp(fmt.Sprintf("junk-%d", i)),
		})
		assert.True(suite.T(), apperrors.IsValidation(err))
	}

	assert.Equal(suite.T(), before, testutil.CollectAndCount(metrics.MembershipOps))
}

func (suite *MembershipServiceTestSuite) TestMissingSession() {
	svc := suite.newService(newListStoreStub())

	_, err := svc.ToggleMembership(suite.ctx, auth.Session{}, uuid.New(), &service.ToggleMembershipRequest{
		EntityID:   uuid.New(),
		EntityType: models.KindCompany,
	})

	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
