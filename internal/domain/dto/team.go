package dto

import "github.com/teamforge-app/teamforge-backend/internal/domain/model"

// CreateTeamInput is the payload for creating a team.
type CreateTeamInput struct {
	TeamName        string   `json:"team_name" validate:"required,min=2,max=20"`
	TeamDomain      string   `json:"team_domain" validate:"max=50"`
	MemberWanted    []string `json:"member_wanted"`
	TeamDescription string   `json:"team_description" validate:"max=2000"`
	ProjectGoal     []string `json:"project_goal"`
	ProjectVibe     []string `json:"project_vibe"`
	BackendCount    int      `json:"backend_count" validate:"gte=0"`
	FrontendCount   int      `json:"frontend_count" validate:"gte=0"`
	AICount         int      `json:"ai_count" validate:"gte=0"`
	PMCount         int      `json:"pm_count" validate:"gte=0"`
	DesignCount     int      `json:"design_count" validate:"gte=0"`
}

// TeamSummary is the listing shape for recommendation results.
type TeamSummary struct {
	TeamID          int64    `json:"team_id"`
	TeamName        string   `json:"team_name"`
	TeamDomain      string   `json:"team_domain"`
	MemberWanted    []string `json:"member_wanted"`
	TeamDescription string   `json:"team_description"`
	Score           int      `json:"score"`
}

// NewTeamSummary flattens a team row with its recommendation score.
func NewTeamSummary(t *model.Team, score int) TeamSummary {
	return TeamSummary{
		TeamID:          t.ID,
		TeamName:        t.TeamName,
		TeamDomain:      t.TeamDomain,
		MemberWanted:    t.MemberWanted.Tags(),
		TeamDescription: t.TeamDescription,
		Score:           score,
	}
}

// UserSummary is the listing shape for member enumeration and candidate
// recommendation.
type UserSummary struct {
	UserID         int64    `json:"user_id"`
	UserName       string   `json:"user_name"`
	Position       string   `json:"position"`
	WantedPosition []string `json:"wanted_position,omitempty"`
	TechStack      []string `json:"tech_stack,omitempty"`
	Score          int      `json:"score,omitempty"`
}

// NewUserSummary flattens a user row with an optional recommendation score.
func NewUserSummary(u *model.User, score int) UserSummary {
	return UserSummary{
		UserID:         u.ID,
		UserName:       u.UserName,
		Position:       string(u.Position),
		WantedPosition: u.WantedPosition.Tags(),
		TechStack:      u.TechStack.Tags(),
		Score:          score,
	}
}
