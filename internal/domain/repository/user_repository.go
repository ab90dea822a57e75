package repository

import (
	"context"

	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
)

// UserRepository is the user side of the directory.
type UserRepository interface {
	// GetByID returns the user, or nil when no row exists.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	Create(ctx context.Context, user *model.User) error

	// SetTeam assigns or clears (teamID == nil) the user's team.
	SetTeam(ctx context.Context, userID int64, teamID *int64) error

	// ListByTeam returns the current members of a team.
	ListByTeam(ctx context.Context, teamID int64) ([]model.User, error)

	// ListTeamless returns users who belong to no team.
	ListTeamless(ctx context.Context, limit int) ([]model.User, error)
}
