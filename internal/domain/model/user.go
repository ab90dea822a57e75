package model

import (
	"time"
)

// User is a directory participant. Identity is the id; attribute content
// never participates in equality.
type User struct {
	ID             int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName       string   `gorm:"size:50;not null" json:"user_name"`
	Email          string   `gorm:"size:100;unique;not null" json:"email"`
	Position       Position `gorm:"size:20" json:"position"`
	IsMajor        bool     `gorm:"default:false" json:"is_major"`
	LastClass      string   `gorm:"size:50" json:"last_class"`
	WantedPosition TagSet   `gorm:"type:text" json:"wanted_position"`
	TechStack      TagSet   `gorm:"type:text" json:"tech_stack"`
	ProjectGoal    TagSet   `gorm:"type:text" json:"project_goal"`
	ProjectVibe    TagSet   `gorm:"type:text" json:"project_vibe"`
	Introduction   string   `gorm:"type:text" json:"introduction,omitempty"`

	// A user belongs to at most one team at a time.
	TeamID *int64 `gorm:"index" json:"team_id,omitempty"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// HasTeam reports whether the user currently belongs to a team.
func (u *User) HasTeam() bool {
	return u.TeamID != nil
}
