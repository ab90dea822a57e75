package database

import (
	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.MembershipRequest{},
		&model.ChatRoom{},
		&model.ChatRoomMember{},
		&model.TeamLockRequest{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes creates indexes GORM doesn't handle automatically.
func createCustomIndexes(db *gorm.DB) error {
	// Storage-level backstop for the duplicate-offer rule: at most one
	// non-rejected request per (user, team, direction).
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS unique_active_membership_request ON membership_requests (user_id, team_id, request_type) WHERE status <> 'REJECTED'`).Error; err != nil {
		return err
	}

	// One pending lock request per team.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS unique_pending_lock_request ON team_lock_requests (team_id) WHERE status = 'PENDING'`).Error; err != nil {
		return err
	}

	// One member row per user and room.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS unique_chat_room_member ON chat_room_members (chat_room_id, user_id)`).Error; err != nil {
		return err
	}

	return nil
}
