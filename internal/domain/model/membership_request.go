package model

import (
	"time"
)

// MembershipRequest is the durable record of one offer between a user and a
// team. The row is the single source of truth for the association; team-side
// and user-side listings are computed by query.
type MembershipRequest struct {
	ID          int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestType RequestType   `gorm:"size:20;not null;index:idx_requests_user_type;index:idx_requests_team_type" json:"request_type"`
	Status      RequestStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	Message     string        `gorm:"size:500" json:"message,omitempty"`

	UserID int64 `gorm:"not null;index:idx_requests_user_type" json:"user_id"`
	TeamID int64 `gorm:"not null;index:idx_requests_team_type" json:"team_id"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// TableName specifies the table name for GORM
func (MembershipRequest) TableName() string {
	return "membership_requests"
}

// Active reports whether the request still blocks a duplicate offer.
func (r *MembershipRequest) Active() bool {
	return r.Status.Active()
}

// HasActiveRequest is the duplicate predicate: does an equivalent active
// request already exist in the given collection? counterpartUser selects
// which side identifies the counterpart (true matches on the user id, false
// on the team id).
func HasActiveRequest(requests []MembershipRequest, counterpartID int64, requestType RequestType, counterpartUser bool) bool {
	for i := range requests {
		r := &requests[i]
		if r.RequestType != requestType || !r.Active() {
			continue
		}
		if counterpartUser && r.UserID == counterpartID {
			return true
		}
		if !counterpartUser && r.TeamID == counterpartID {
			return true
		}
	}
	return false
}
