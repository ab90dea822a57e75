package model

import (
	"time"
)

// TeamLockRequest records a request to lock a team against further
// membership changes. A team holds at most one pending lock request.
type TeamLockRequest struct {
	ID     int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID int64      `gorm:"not null;index" json:"team_id"`
	Status LockStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (TeamLockRequest) TableName() string {
	return "team_lock_requests"
}
