package repository

import (
	"context"

	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
)

// TeamRepository is the team side of the directory.
type TeamRepository interface {
	// GetByID returns the team, or nil when no row exists.
	GetByID(ctx context.Context, id int64) (*model.Team, error)

	Create(ctx context.Context, team *model.Team) error

	Update(ctx context.Context, team *model.Team) error

	Delete(ctx context.Context, id int64) error

	// MemberCount returns the current number of members.
	MemberCount(ctx context.Context, teamID int64) (int64, error)

	// ListOpen returns unlocked teams with fewer than maxMembers members.
	ListOpen(ctx context.Context, maxMembers int, limit int) ([]model.Team, error)
}
