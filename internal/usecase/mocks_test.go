package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
)

// fakeTxManager runs the unit of work directly; the repositories are mocks,
// so there is nothing to commit or roll back.
type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeLocker hands out the lock unless failWith is set, and records releases.
type fakeLocker struct {
	failWith error
	acquired []string
	released int
}

func (l *fakeLocker) Acquire(ctx context.Context, key string) (func(), error) {
	if l.failWith != nil {
		return nil, l.failWith
	}
	l.acquired = append(l.acquired, key)
	return func() { l.released++ }, nil
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetTeam(ctx context.Context, userID int64, teamID *int64) error {
	args := m.Called(ctx, userID, teamID)
	return args.Error(0)
}

func (m *MockUserRepository) ListByTeam(ctx context.Context, teamID int64) ([]model.User, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) ListTeamless(ctx context.Context, limit int) ([]model.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockTeamRepository is a mock implementation of repository.TeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int64) (*model.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamRepository) Create(ctx context.Context, team *model.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *model.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamRepository) MemberCount(ctx context.Context, teamID int64) (int64, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTeamRepository) ListOpen(ctx context.Context, maxMembers int, limit int) ([]model.Team, error) {
	args := m.Called(ctx, maxMembers, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

// MockMembershipRequestRepository is a mock implementation of
// repository.MembershipRequestRepository
type MockMembershipRequestRepository struct {
	mock.Mock
}

func (m *MockMembershipRequestRepository) Create(ctx context.Context, request *model.MembershipRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockMembershipRequestRepository) GetByID(ctx context.Context, id int64) (*model.MembershipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipRequest), args.Error(1)
}

func (m *MockMembershipRequestRepository) UpdateStatus(ctx context.Context, id int64, status model.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockMembershipRequestRepository) ListByTeam(ctx context.Context, teamID int64) ([]model.MembershipRequest, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MembershipRequest), args.Error(1)
}

func (m *MockMembershipRequestRepository) ListByUser(ctx context.Context, userID int64) ([]model.MembershipRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MembershipRequest), args.Error(1)
}

func (m *MockMembershipRequestRepository) ListActiveByTeam(ctx context.Context, teamID int64, requestType model.RequestType) ([]model.MembershipRequest, error) {
	args := m.Called(ctx, teamID, requestType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MembershipRequest), args.Error(1)
}

func (m *MockMembershipRequestRepository) ListActiveByUser(ctx context.Context, userID int64, requestType model.RequestType) ([]model.MembershipRequest, error) {
	args := m.Called(ctx, userID, requestType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MembershipRequest), args.Error(1)
}

// MockChatRoomRepository is a mock implementation of
// repository.ChatRoomRepository
type MockChatRoomRepository struct {
	mock.Mock
}

func (m *MockChatRoomRepository) Create(ctx context.Context, room *model.ChatRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockChatRoomRepository) GetByID(ctx context.Context, id int64) (*model.ChatRoom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChatRoom), args.Error(1)
}

func (m *MockChatRoomRepository) AddMember(ctx context.Context, roomID, userID int64) error {
	args := m.Called(ctx, roomID, userID)
	return args.Error(0)
}

// MockTeamLockRequestRepository is a mock implementation of
// repository.TeamLockRequestRepository
type MockTeamLockRequestRepository struct {
	mock.Mock
}

func (m *MockTeamLockRequestRepository) Create(ctx context.Context, request *model.TeamLockRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockTeamLockRequestRepository) GetPendingByTeam(ctx context.Context, teamID int64) (*model.TeamLockRequest, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamLockRequest), args.Error(1)
}

func (m *MockTeamLockRequestRepository) UpdateStatus(ctx context.Context, id int64, status model.LockStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockOfferNotifier is a mock implementation of OfferNotifier
type MockOfferNotifier struct {
	mock.Mock
}

func (m *MockOfferNotifier) NotifyOffer(ctx context.Context, recipientID int64, request *model.MembershipRequest) error {
	args := m.Called(ctx, recipientID, request)
	return args.Error(0)
}
