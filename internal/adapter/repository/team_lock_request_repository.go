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

type teamLockRequestRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTeamLockRequestRepository creates a new team lock request repository
func NewTeamLockRequestRepository(db *gorm.DB, logger *zap.Logger) repository.TeamLockRequestRepository {
	return &teamLockRequestRepository{
		db:     db,
		logger: logger,
	}
}

func (r *teamLockRequestRepository) Create(ctx context.Context, request *model.TeamLockRequest) error {
	err := dbFrom(ctx, r.db).Create(request).Error
	if err != nil {
		r.logger.Error("Failed to create team lock request",
			zap.Int64("team_id", request.TeamID),
			zap.Error(err))
		return fmt.Errorf("failed to create team lock request: %w", err)
	}

	return nil
}

func (r *teamLockRequestRepository) GetPendingByTeam(ctx context.Context, teamID int64) (*model.TeamLockRequest, error) {
	var request model.TeamLockRequest

	err := dbFrom(ctx, r.db).
		Where("team_id = ? AND status = ?", teamID, model.LockStatusPending).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get pending lock request",
			zap.Int64("team_id", teamID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get pending lock request: %w", err)
	}

	return &request, nil
}

func (r *teamLockRequestRepository) UpdateStatus(ctx context.Context, id int64, status model.LockStatus) error {
	err := dbFrom(ctx, r.db).
		Model(&model.TeamLockRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		r.logger.Error("Failed to update lock request status",
			zap.Int64("lock_request_id", id),
			zap.String("status", string(status)),
			zap.Error(err))
		return fmt.Errorf("failed to update lock request status: %w", err)
	}

	return nil
}
