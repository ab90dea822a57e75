package repository

import (
	"context"

	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
)

// MembershipRequestRepository is the durable membership request store.
type MembershipRequestRepository interface {
	Create(ctx context.Context, request *model.MembershipRequest) error

	// GetByID returns the request, or nil when no row exists.
	GetByID(ctx context.Context, id int64) (*model.MembershipRequest, error)

	UpdateStatus(ctx context.Context, id int64, status model.RequestStatus) error

	// ListByTeam returns the team's requests ordered by creation time,
	// user preloaded.
	ListByTeam(ctx context.Context, teamID int64) ([]model.MembershipRequest, error)

	// ListByUser returns the user's requests ordered by creation time,
	// user preloaded.
	ListByUser(ctx context.Context, userID int64) ([]model.MembershipRequest, error)

	// ListActiveByTeam returns the team's non-rejected requests of the
	// given type. The duplicate scan for invites runs over this set.
	ListActiveByTeam(ctx context.Context, teamID int64, requestType model.RequestType) ([]model.MembershipRequest, error)

	// ListActiveByUser returns the user's non-rejected requests of the
	// given type. The duplicate scan for join requests runs over this set.
	ListActiveByUser(ctx context.Context, userID int64, requestType model.RequestType) ([]model.MembershipRequest, error)
}
