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

type chatRoomRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewChatRoomRepository creates a new chat room repository
func NewChatRoomRepository(db *gorm.DB, logger *zap.Logger) repository.ChatRoomRepository {
	return &chatRoomRepository{
		db:     db,
		logger: logger,
	}
}

func (r *chatRoomRepository) Create(ctx context.Context, room *model.ChatRoom) error {
	err := dbFrom(ctx, r.db).Create(room).Error
	if err != nil {
		r.logger.Error("Failed to create chat room",
			zap.String("room_type", string(room.RoomType)),
			zap.Error(err))
		return fmt.Errorf("failed to create chat room: %w", err)
	}

	return nil
}

func (r *chatRoomRepository) GetByID(ctx context.Context, id int64) (*model.ChatRoom, error) {
	var room model.ChatRoom

	err := dbFrom(ctx, r.db).First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get chat room by ID",
			zap.Int64("room_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get chat room: %w", err)
	}

	return &room, nil
}

func (r *chatRoomRepository) AddMember(ctx context.Context, roomID, userID int64) error {
	member := model.ChatRoomMember{
		ChatRoomID: roomID,
		UserID:     userID,
	}

	err := dbFrom(ctx, r.db).Create(&member).Error
	if err != nil {
		r.logger.Error("Failed to add chat room member",
			zap.Int64("room_id", roomID),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return fmt.Errorf("failed to add chat room member: %w", err)
	}

	return nil
}
