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

type userRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger *zap.Logger) repository.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User

	err := dbFrom(ctx, r.db).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get user by ID",
			zap.Int64("user_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	err := dbFrom(ctx, r.db).Create(user).Error
	if err != nil {
		r.logger.Error("Failed to create user",
			zap.String("email", user.Email),
			zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) SetTeam(ctx context.Context, userID int64, teamID *int64) error {
	err := dbFrom(ctx, r.db).
		Model(&model.User{}).
		Where("id = ?", userID).
		Update("team_id", teamID).Error
	if err != nil {
		r.logger.Error("Failed to set user team",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return fmt.Errorf("failed to set user team: %w", err)
	}

	return nil
}

func (r *userRepository) ListByTeam(ctx context.Context, teamID int64) ([]model.User, error) {
	var users []model.User

	err := dbFrom(ctx, r.db).
		Where("team_id = ?", teamID).
		Order("id").
		Find(&users).Error
	if err != nil {
		r.logger.Error("Failed to list team members",
			zap.Int64("team_id", teamID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	return users, nil
}

func (r *userRepository) ListTeamless(ctx context.Context, limit int) ([]model.User, error) {
	var users []model.User

	err := dbFrom(ctx, r.db).
		Where("team_id IS NULL").
		Order("id").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		r.logger.Error("Failed to list teamless users", zap.Error(err))
		return nil, fmt.Errorf("failed to list teamless users: %w", err)
	}

	return users, nil
}
