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

type membershipRequestRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewMembershipRequestRepository creates a new membership request repository
func NewMembershipRequestRepository(db *gorm.DB, logger *zap.Logger) repository.MembershipRequestRepository {
	return &membershipRequestRepository{
		db:     db,
		logger: logger,
	}
}

func (r *membershipRequestRepository) Create(ctx context.Context, request *model.MembershipRequest) error {
	err := dbFrom(ctx, r.db).Create(request).Error
	if err != nil {
		r.logger.Error("Failed to create membership request",
			zap.Int64("user_id", request.UserID),
			zap.Int64("team_id", request.TeamID),
			zap.String("request_type", string(request.RequestType)),
			zap.Error(err))
		return fmt.Errorf("failed to create membership request: %w", err)
	}

	return nil
}

func (r *membershipRequestRepository) GetByID(ctx context.Context, id int64) (*model.MembershipRequest, error) {
	var request model.MembershipRequest

	err := dbFrom(ctx, r.db).First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get membership request by ID",
			zap.Int64("request_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get membership request: %w", err)
	}

	return &request, nil
}

func (r *membershipRequestRepository) UpdateStatus(ctx context.Context, id int64, status model.RequestStatus) error {
	err := dbFrom(ctx, r.db).
		Model(&model.MembershipRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err != nil {
		r.logger.Error("Failed to update membership request status",
			zap.Int64("request_id", id),
			zap.String("status", string(status)),
			zap.Error(err))
		return fmt.Errorf("failed to update membership request status: %w", err)
	}

	return nil
}

func (r *membershipRequestRepository) ListByTeam(ctx context.Context, teamID int64) ([]model.MembershipRequest, error) {
	var requests []model.MembershipRequest

	err := dbFrom(ctx, r.db).
		Preload("User").
		Where("team_id = ?", teamID).
		Order("created_at").
		Find(&requests).Error
	if err != nil {
		r.logger.Error("Failed to list membership requests by team",
			zap.Int64("team_id", teamID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list membership requests: %w", err)
	}

	return requests, nil
}

func (r *membershipRequestRepository) ListByUser(ctx context.Context, userID int64) ([]model.MembershipRequest, error) {
	var requests []model.MembershipRequest

	err := dbFrom(ctx, r.db).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&requests).Error
	if err != nil {
		r.logger.Error("Failed to list membership requests by user",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list membership requests: %w", err)
	}

	return requests, nil
}

func (r *membershipRequestRepository) ListActiveByTeam(ctx context.Context, teamID int64, requestType model.RequestType) ([]model.MembershipRequest, error) {
	var requests []model.MembershipRequest

	err := dbFrom(ctx, r.db).
		Where("team_id = ? AND request_type = ? AND status <> ?", teamID, requestType, model.RequestStatusRejected).
		Order("created_at").
		Find(&requests).Error
	if err != nil {
		r.logger.Error("Failed to list active requests by team",
			zap.Int64("team_id", teamID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list active requests: %w", err)
	}

	return requests, nil
}

func (r *membershipRequestRepository) ListActiveByUser(ctx context.Context, userID int64, requestType model.RequestType) ([]model.MembershipRequest, error) {
	var requests []model.MembershipRequest

	err := dbFrom(ctx, r.db).
		Where("user_id = ? AND request_type = ? AND status <> ?", userID, requestType, model.RequestStatusRejected).
		Order("created_at").
		Find(&requests).Error
	if err != nil {
		r.logger.Error("Failed to list active requests by user",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list active requests: %w", err)
	}

	return requests, nil
}
