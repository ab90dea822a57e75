package model

import (
	"time"
)

// Team is the aggregate root for membership. Member and request views are
// repository queries over the user/request tables rather than cached
// back-references, so there is no bidirectional collection to keep in sync.
type Team struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamName        string `gorm:"size:20;unique;not null" json:"team_name"`
	TeamDomain      string `gorm:"size:50" json:"team_domain"`
	MemberWanted    TagSet `gorm:"type:text" json:"member_wanted"`
	TeamDescription string `gorm:"type:text" json:"team_description"`
	ProjectGoal     TagSet `gorm:"type:text" json:"project_goal"`
	ProjectVibe     TagSet `gorm:"type:text" json:"project_vibe"`

	// Capacity targets per role.
	BackendCount  int `gorm:"default:0" json:"backend_count"`
	FrontendCount int `gorm:"default:0" json:"frontend_count"`
	AICount       int `gorm:"default:0" json:"ai_count"`
	PMCount       int `gorm:"default:0" json:"pm_count"`
	DesignCount   int `gorm:"default:0" json:"design_count"`

	LeaderID   int64  `gorm:"not null;index" json:"leader_id"`
	ChatRoomID *int64 `json:"chat_room_id,omitempty"`
	Locked     bool   `gorm:"default:false" json:"locked"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Team) TableName() string {
	return "teams"
}
