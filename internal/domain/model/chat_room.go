package model

import (
	"time"
)

// ChatRoom is the room collaborator entity. Only room creation and member
// addition are handled here; message persistence lives elsewhere.
type ChatRoom struct {
	ID       int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomType RoomType `gorm:"size:20;not null" json:"room_type"`
	TeamID   *int64   `gorm:"index" json:"team_id,omitempty"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM
func (ChatRoom) TableName() string {
	return "chat_rooms"
}

// ChatRoomMember links a user into a room.
type ChatRoomMember struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ChatRoomID int64     `gorm:"not null;index" json:"chat_room_id"`
	UserID     int64     `gorm:"not null;index" json:"user_id"`
	JoinedAt   time.Time `gorm:"default:now()" json:"joined_at"`
}

// TableName specifies the table name for GORM
func (ChatRoomMember) TableName() string {
	return "chat_room_members"
}
