package repository

import (
	"context"

	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
)

// TeamLockRequestRepository stores team lock requests.
type TeamLockRequestRepository interface {
	Create(ctx context.Context, request *model.TeamLockRequest) error

	// GetPendingByTeam returns the team's pending lock request, or nil.
	GetPendingByTeam(ctx context.Context, teamID int64) (*model.TeamLockRequest, error)

	UpdateStatus(ctx context.Context, id int64, status model.LockStatus) error
}
