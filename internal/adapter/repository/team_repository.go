package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
	"github.com/teamforge-app/teamforge-backend/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type teamRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB, logger *zap.Logger) repository.TeamRepository {
	return &teamRepository{
		db:     db,
		logger: logger,
	}
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*model.Team, error) {
	var team model.Team

	err := dbFrom(ctx, r.db).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get team by ID",
			zap.Int64("team_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &team, nil
}

func (r *teamRepository) Create(ctx context.Context, team *model.Team) error {
	err := dbFrom(ctx, r.db).Create(team).Error
	if err != nil {
		r.logger.Error("Failed to create team",
			zap.String("team_name", team.TeamName),
			zap.Error(err))
		return fmt.Errorf("failed to create team: %w", err)
	}

	return nil
}

func (r *teamRepository) Update(ctx context.Context, team *model.Team) error {
	err := dbFrom(ctx, r.db).Save(team).Error
	if err != nil {
		r.logger.Error("Failed to update team",
			zap.Int64("team_id", team.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update team: %w", err)
	}

	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	err := dbFrom(ctx, r.db).Delete(&model.Team{}, id).Error
	if err != nil {
		r.logger.Error("Failed to delete team",
			zap.Int64("team_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}

func (r *teamRepository) MemberCount(ctx context.Context, teamID int64) (int64, error) {
	var count int64

	err := dbFrom(ctx, r.db).
		Model(&model.User{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	if err != nil {
		r.logger.Error("Failed to count team members",
			zap.Int64("team_id", teamID),
			zap.Error(err))
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}

	return count, nil
}

func (r *teamRepository) ListOpen(ctx context.Context, maxMembers int, limit int) ([]model.Team, error) {
	var teams []model.Team

	// Teams below the member cap and not locked.
	err := dbFrom(ctx, r.db).
		Where("locked = ?", false).
		Where("(SELECT COUNT(*) FROM users WHERE users.team_id = teams.id) < ?", maxMembers).
		Order("id").
		Limit(limit).
		Find(&teams).Error
	if err != nil {
		r.logger.Error("Failed to list open teams", zap.Error(err))
		return nil, fmt.Errorf("failed to list open teams: %w", err)
	}

	return teams, nil
}
