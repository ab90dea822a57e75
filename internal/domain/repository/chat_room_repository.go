package repository

import (
	"context"

	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
)

// ChatRoomRepository backs the chat-room collaborator.
type ChatRoomRepository interface {
	Create(ctx context.Context, room *model.ChatRoom) error

	// GetByID returns the room, or nil when no row exists.
	GetByID(ctx context.Context, id int64) (*model.ChatRoom, error)

	AddMember(ctx context.Context, roomID, userID int64) error
}
