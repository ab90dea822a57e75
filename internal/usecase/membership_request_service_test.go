package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/teamforge-app/teamforge-backend/internal/domain/dto"
	domainErrors "github.com/teamforge-app/teamforge-backend/internal/domain/errors"
	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
	pkgerrors "github.com/teamforge-app/teamforge-backend/pkg/errors"
	"go.uber.org/zap"
)

type requestServiceEnv struct {
	userRepo    *MockUserRepository
	teamRepo    *MockTeamRepository
	requestRepo *MockMembershipRequestRepository
	notifier    *MockOfferNotifier
	locker      *fakeLocker
	service     *MembershipRequestService
}

func newRequestServiceEnv() *requestServiceEnv {
	env := &requestServiceEnv{
		userRepo:    new(MockUserRepository),
		teamRepo:    new(MockTeamRepository),
		requestRepo: new(MockMembershipRequestRepository),
		notifier:    new(MockOfferNotifier),
		locker:      &fakeLocker{},
	}
	chatRoomSvc := NewChatRoomService(new(MockChatRoomRepository), zap.NewNop())
	env.service = NewMembershipRequestService(
		&fakeTxManager{},
		env.userRepo,
		env.teamRepo,
		env.requestRepo,
		chatRoomSvc,
		env.notifier,
		env.locker,
		zap.NewNop(),
	)
	return env
}

func testTeam(id int64) *model.Team {
	return &model.Team{ID: id, TeamName: "billard", LeaderID: 100}
}

func testUser(id int64) *model.User {
	return &model.User{ID: id, UserName: "minsu", Email: "minsu@example.com"}
}

func TestMembershipRequestService_RequestTeamToMember(t *testing.T) {
	tests := []struct {
		name          string
		offer         dto.Offer
		setup         func(env *requestServiceEnv)
		expectedCode  string
		expectNotify  int
		expectCreated bool
	}{
		{
			name:  "successful invite notifies the invited user once",
			offer: dto.Offer{RequestType: "INVITE", UserID: 100, TeamID: 1, Message: "join us"},
			setup: func(env *requestServiceEnv) {
				env.teamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1), nil)
				env.userRepo.On("GetByID", mock.Anything, int64(100)).Return(testUser(100), nil)
				env.requestRepo.On("ListActiveByTeam", mock.Anything, int64(1), model.RequestTypeInvite).
					Return([]model.MembershipRequest{}, nil)
				env.requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MembershipRequest")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.MembershipRequest).ID = 10
					}).
					Return(nil)
				env.notifier.On("NotifyOffer", mock.Anything, int64(100), mock.AnythingOfType("*model.MembershipRequest")).
					Return(nil)
			},
			expectNotify:  1,
			expectCreated: true,
		},
		{
			name:  "active invite for same user blocks a second one",
			offer: dto.Offer{RequestType: "INVITE", UserID: 100, TeamID: 1, Message: "join us"},
			setup: func(env *requestServiceEnv) {
				env.teamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1), nil)
				env.userRepo.On("GetByID", mock.Anything, int64(100)).Return(testUser(100), nil)
				env.requestRepo.On("ListActiveByTeam", mock.Anything, int64(1), model.RequestTypeInvite).
					Return([]model.MembershipRequest{
						{ID: 9, UserID: 100, TeamID: 1, RequestType: model.RequestTypeInvite, Status: model.RequestStatusPending},
					}, nil)
			},
			expectedCode: domainErrors.CodeTeamRequestExists,
		},
		{
			name:  "active invite for a different user does not block",
			offer: dto.Offer{RequestType: "INVITE", UserID: 100, TeamID: 1},
			setup: func(env *requestServiceEnv) {
				env.teamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1), nil)
				env.userRepo.On("GetByID", mock.Anything, int64(100)).Return(testUser(100), nil)
				env.requestRepo.On("ListActiveByTeam", mock.Anything, int64(1), model.RequestTypeInvite).
					Return([]model.MembershipRequest{
						{ID: 9, UserID: 101, TeamID: 1, RequestType: model.RequestTypeInvite, Status: model.RequestStatusPending},
					}, nil)
				env.requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MembershipRequest")).Return(nil)
				env.notifier.On("NotifyOffer", mock.Anything, int64(100), mock.AnythingOfType("*model.MembershipRequest")).
					Return(nil)
			},
			expectNotify:  1,
			expectCreated: true,
		},
		{
			name:  "team not found",
			offer: dto.Offer{RequestType: "INVITE", UserID: 100, TeamID: 2},
			setup: func(env *requestServiceEnv) {
				env.teamRepo.On("GetByID", mock.Anything, int64(2)).Return(nil, nil)
			},
			expectedCode: domainErrors.CodeTeamNotFound,
		},
		{
			name:  "user not found",
			offer: dto.Offer{RequestType: "INVITE", UserID: 999, TeamID: 1},
			setup: func(env *requestServiceEnv) {
				env.teamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1), nil)
				env.userRepo.On("GetByID", mock.Anything, int64(999)).Return(nil, nil)
			},
			expectedCode: domainErrors.CodeUserNotFound,
		},
		{
			name:  "persistence failure sends no notification",
			offer: dto.Offer{RequestType: "INVITE", UserID: 100, TeamID: 1},
			setup: func(env *requestServiceEnv) {
				env.teamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1), nil)
				env.userRepo.On("GetByID", mock.Anything, int64(100)).Return(testUser(100), nil)
				env.requestRepo.On("ListActiveByTeam", mock.Anything, int64(1), model.RequestTypeInvite).
					Return([]model.MembershipRequest{}, nil)
				env.requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MembershipRequest")).
					Return(errors.New("connection reset"))
			},
			expectedCode: pkgerrors.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newRequestServiceEnv()
			tt.setup(env)

			err := env.service.RequestTeamToMember(context.Background(), tt.offer)

			if tt.expectedCode != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedCode, pkgerrors.CodeOf(err))
			} else {
				assert.NoError(t, err)
			}

			env.notifier.AssertNumberOfCalls(t, "NotifyOffer", tt.expectNotify)
			if !tt.expectCreated {
				env.requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			env.userRepo.AssertExpectations(t)
			env.teamRepo.AssertExpectations(t)
			env.requestRepo.AssertExpectations(t)
			env.notifier.AssertExpectations(t)
			assert.Equal(t, len(env.locker.acquired), env.locker.released)
		})
	}
}

func TestMembershipRequestService_RequestMemberToTeam(t *testing.T) {
	members := []model.User{
		{ID: 100, UserName: "leader"},
		{ID: 101, UserName: "member"},
	}

	tests := []struct {
		name         string
		offer        dto.Offer
		setup        func(env *requestServiceEnv)
		expectedCode string
		expectNotify []int64
	}{
		{
			name:  "successful join request notifies every member",
			offer: dto.Offer{RequestType: "JOIN_REQUEST", UserID: 200, TeamID: 1, Message: "let me in"},
			setup: func(env *requestServiceEnv) {
				env.teamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1), nil)
				env.userRepo.On("GetByID", mock.Anything, int64(200)).Return(testUser(200), nil)
				env.requestRepo.On("ListActiveByUser", mock.Anything, int64(200), model.RequestTypeJoinRequest).
					Return([]model.MembershipRequest{}, nil)
				env.requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MembershipRequest")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.MembershipRequest).ID = 11
					}).
					Return(nil)
				env.userRepo.On("ListByTeam", mock.Anything, int64(1)).Return(members, nil)
				env.notifier.On("NotifyOffer", mock.Anything, int64(100), mock.AnythingOfType("*model.MembershipRequest")).Return(nil)
				env.notifier.On("NotifyOffer", mock.Anything, int64(101), mock.AnythingOfType("*model.MembershipRequest")).Return(nil)
			},
			expectNotify: []int64{100, 101},
		},
		{
			name:  "active join request to same team blocks a second one",
			offer: dto.Offer{RequestType: "JOIN_REQUEST", UserID: 200, TeamID: 1},
			setup: func(env *requestServiceEnv) {
				env.teamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1), nil)
				env.userRepo.On("GetByID", mock.Anything, int64(200)).Return(testUser(200), nil)
				env.requestRepo.On("ListActiveByUser", mock.Anything, int64(200), model.RequestTypeJoinRequest).
					Return([]model.MembershipRequest{
						{ID: 9, UserID: 200, TeamID: 1, RequestType: model.RequestTypeJoinRequest, Status: model.RequestStatusAccepted},
					}, nil)
			},
			expectedCode: domainErrors.CodeTeamRequestExists,
		},
		{
			name:  "rejected earlier request allows a new offer",
			offer: dto.Offer{RequestType: "JOIN_REQUEST", UserID: 200, TeamID: 1},
			setup: func(env *requestServiceEnv) {
				env.teamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1), nil)
				env.userRepo.On("GetByID", mock.Anything, int64(200)).Return(testUser(200), nil)
				// The active scan filters out rejected rows at the store.
				env.requestRepo.On("ListActiveByUser", mock.Anything, int64(200), model.RequestTypeJoinRequest).
					Return([]model.MembershipRequest{}, nil)
				env.requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MembershipRequest")).Return(nil)
				env.userRepo.On("ListByTeam", mock.Anything, int64(1)).Return(members[:1], nil)
				env.notifier.On("NotifyOffer", mock.Anything, int64(100), mock.AnythingOfType("*model.MembershipRequest")).Return(nil)
			},
			expectNotify: []int64{100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newRequestServiceEnv()
			tt.setup(env)

			err := env.service.RequestMemberToTeam(context.Background(), tt.offer)

			if tt.expectedCode != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedCode, pkgerrors.CodeOf(err))
			} else {
				assert.NoError(t, err)
			}

			env.notifier.AssertNumberOfCalls(t, "NotifyOffer", len(tt.expectNotify))
			for _, id := range tt.expectNotify {
				env.notifier.AssertCalled(t, "NotifyOffer", mock.Anything, id, mock.AnythingOfType("*model.MembershipRequest"))
			}
			env.requestRepo.AssertExpectations(t)
			env.notifier.AssertExpectations(t)
		})
	}
}

func TestMembershipRequestService_SubmitOffer_Routing(t *testing.T) {
	t.Run("invite goes through the team's request list", func(t *testing.T) {
		env := newRequestServiceEnv()
		env.teamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1), nil)
		env.userRepo.On("GetByID", mock.Anything, int64(100)).Return(testUser(100), nil)
		env.requestRepo.On("ListActiveByTeam", mock.Anything, int64(1), model.RequestTypeInvite).
			Return([]model.MembershipRequest{}, nil)
		env.requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MembershipRequest")).Return(nil)
		env.notifier.On("NotifyOffer", mock.Anything, int64(100), mock.AnythingOfType("*model.MembershipRequest")).Return(nil)

		err := env.service.SubmitOffer(context.Background(), dto.Offer{RequestType: "INVITE", UserID: 100, TeamID: 1})

		assert.NoError(t, err)
		env.requestRepo.AssertNotCalled(t, "ListActiveByUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("join request goes through the user's request list", func(t *testing.T) {
		env := newRequestServiceEnv()
		env.teamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1), nil)
		env.userRepo.On("GetByID", mock.Anything, int64(200)).Return(testUser(200), nil)
		env.requestRepo.On("ListActiveByUser", mock.Anything, int64(200), model.RequestTypeJoinRequest).
			Return([]model.MembershipRequest{}, nil)
		env.requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.MembershipRequest")).Return(nil)
		env.userRepo.On("ListByTeam", mock.Anything, int64(1)).Return([]model.User{}, nil)

		err := env.service.SubmitOffer(context.Background(), dto.Offer{RequestType: "JOIN_REQUEST", UserID: 200, TeamID: 1})

		assert.NoError(t, err)
		env.requestRepo.AssertNotCalled(t, "ListActiveByTeam", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown request type is rejected before any lookup", func(t *testing.T) {
		env := newRequestServiceEnv()

		err := env.service.SubmitOffer(context.Background(), dto.Offer{RequestType: "FRIEND", UserID: 1, TeamID: 1})

		assert.Error(t, err)
		assert.Equal(t, pkgerrors.ErrInvalidArgument, pkgerrors.CodeOf(err))
		env.teamRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestMembershipRequestService_LockAcquireFailure(t *testing.T) {
	env := newRequestServiceEnv()
	env.locker.failWith = errors.New("lock wait timed out")

	err := env.service.SubmitOffer(context.Background(), dto.Offer{RequestType: "INVITE", UserID: 100, TeamID: 1})

	assert.Error(t, err)
	assert.Equal(t, domainErrors.CodeLockAcquireFailed, pkgerrors.CodeOf(err))

	// Nothing ran behind the failed lock: no lookup, no write, no send.
	env.teamRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	env.requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	env.notifier.AssertNotCalled(t, "NotifyOffer", mock.Anything, mock.Anything, mock.Anything)
}

func TestMembershipRequestService_AcceptRequest(t *testing.T) {
	pending := func() *model.MembershipRequest {
		return &model.MembershipRequest{
			ID: 10, UserID: 200, TeamID: 1,
			RequestType: model.RequestTypeJoinRequest,
			Status:      model.RequestStatusPending,
		}
	}

	tests := []struct {
		name         string
		setup        func(env *requestServiceEnv)
		expectedCode string
	}{
		{
			name: "accept joins the user and marks the request accepted",
			setup: func(env *requestServiceEnv) {
				env.requestRepo.On("GetByID", mock.Anything, int64(10)).Return(pending(), nil)
				env.userRepo.On("GetByID", mock.Anything, int64(200)).Return(testUser(200), nil)
				env.teamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1), nil)
				env.userRepo.On("SetTeam", mock.Anything, int64(200), mock.AnythingOfType("*int64")).Return(nil)
				env.requestRepo.On("UpdateStatus", mock.Anything, int64(10), model.RequestStatusAccepted).Return(nil)
			},
		},
		{
			name: "user who joined another team meanwhile is rejected",
			setup: func(env *requestServiceEnv) {
				otherTeam := int64(7)
				user := testUser(200)
				user.TeamID = &otherTeam
				env.requestRepo.On("GetByID", mock.Anything, int64(10)).Return(pending(), nil)
				env.userRepo.On("GetByID", mock.Anything, int64(200)).Return(user, nil)
			},
			expectedCode: domainErrors.CodeUserAlreadyHasTeam,
		},
		{
			name: "resolved request cannot be accepted again",
			setup: func(env *requestServiceEnv) {
				resolved := pending()
				resolved.Status = model.RequestStatusAccepted
				env.requestRepo.On("GetByID", mock.Anything, int64(10)).Return(resolved, nil)
			},
			expectedCode: domainErrors.CodeInvalidRequestStatus,
		},
		{
			name: "missing request",
			setup: func(env *requestServiceEnv) {
				env.requestRepo.On("GetByID", mock.Anything, int64(10)).Return(nil, nil)
			},
			expectedCode: domainErrors.CodeRequestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newRequestServiceEnv()
			tt.setup(env)

			err := env.service.AcceptRequest(context.Background(), 10)

			if tt.expectedCode != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedCode, pkgerrors.CodeOf(err))
			} else {
				assert.NoError(t, err)
			}
			env.requestRepo.AssertExpectations(t)
			env.userRepo.AssertExpectations(t)
		})
	}
}

func TestMembershipRequestService_RejectThenListKeepsRecord(t *testing.T) {
	env := newRequestServiceEnv()
	request := &model.MembershipRequest{
		ID: 10, UserID: 200, TeamID: 1,
		RequestType: model.RequestTypeJoinRequest,
		Status:      model.RequestStatusPending,
	}
	env.requestRepo.On("GetByID", mock.Anything, int64(10)).Return(request, nil)
	env.requestRepo.On("UpdateStatus", mock.Anything, int64(10), model.RequestStatusRejected).Return(nil)

	err := env.service.RejectRequest(context.Background(), 10)

	assert.NoError(t, err)
	env.requestRepo.AssertExpectations(t)
}

func TestMembershipRequestService_ListTeamRequests(t *testing.T) {
	env := newRequestServiceEnv()
	env.teamRepo.On("GetByID", mock.Anything, int64(1)).Return(testTeam(1), nil)
	env.requestRepo.On("ListByTeam", mock.Anything, int64(1)).Return([]model.MembershipRequest{
		{
			ID: 10, UserID: 200, TeamID: 1,
			RequestType: model.RequestTypeJoinRequest,
			Status:      model.RequestStatusPending,
			Message:     "let me in",
			User:        &model.User{ID: 200, UserName: "jihye"},
		},
	}, nil)

	summaries, err := env.service.ListTeamRequests(context.Background(), 1)

	assert.NoError(t, err)
	if assert.Len(t, summaries, 1) {
		assert.Equal(t, int64(10), summaries[0].RequestID)
		assert.Equal(t, "jihye", summaries[0].UserName)
		assert.Equal(t, "JOIN_REQUEST", summaries[0].RequestType)
		assert.Equal(t, "PENDING", summaries[0].Status)
	}
}
