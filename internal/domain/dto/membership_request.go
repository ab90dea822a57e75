package dto

import (
	"time"

	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
)

// Offer is a client submission to open a membership request in either
// direction. RequestType routes the offer: INVITE is team-initiated,
// anything else is treated as a join request.
type Offer struct {
	RequestType string `json:"request_type" validate:"required"`
	UserID      int64  `json:"user_id" validate:"required,gt=0"`
	TeamID      int64  `json:"team_id" validate:"required,gt=0"`
	Message     string `json:"message" validate:"max=500"`
}

// MembershipRequestSummary is the listing shape for team and user request
// views.
type MembershipRequestSummary struct {
	RequestID   int64     `json:"request_id"`
	UserID      int64     `json:"user_id"`
	UserName    string    `json:"user_name"`
	TeamID      int64     `json:"team_id"`
	RequestType string    `json:"request_type"`
	Status      string    `json:"status"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewMembershipRequestSummary flattens a request row and its user.
func NewMembershipRequestSummary(r *model.MembershipRequest) MembershipRequestSummary {
	summary := MembershipRequestSummary{
		RequestID:   r.ID,
		UserID:      r.UserID,
		TeamID:      r.TeamID,
		RequestType: string(r.RequestType),
		Status:      string(r.Status),
		Message:     r.Message,
		CreatedAt:   r.CreatedAt,
	}
	if r.User != nil {
		summary.UserName = r.User.UserName
	}
	return summary
}
