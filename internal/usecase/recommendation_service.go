package usecase

import (
	"context"
	"sort"

	"github.com/teamforge-app/teamforge-backend/internal/domain/dto"
	domainErrors "github.com/teamforge-app/teamforge-backend/internal/domain/errors"
	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
	domainRepo "github.com/teamforge-app/teamforge-backend/internal/domain/repository"
	"go.uber.org/zap"
)

// candidatePoolFactor widens the fetch beyond the requested limit so ranking
// has something to choose from.
const candidatePoolFactor = 5

// RecommendationService proposes candidate teams for a user and candidate
// users for a team.
type RecommendationService struct {
	userRepo domainRepo.UserRepository
	teamRepo domainRepo.TeamRepository
	// maxTeamSize caps team size for eligibility; teams at or above the
	// cap are never proposed.
	maxTeamSize int
	logger      *zap.Logger
}

// NewRecommendationService creates a new recommendation service instance
func NewRecommendationService(
	userRepo domainRepo.UserRepository,
	teamRepo domainRepo.TeamRepository,
	maxTeamSize int,
	logger *zap.Logger,
) *RecommendationService {
	if maxTeamSize <= 0 {
		maxTeamSize = 6
	}
	return &RecommendationService{
		userRepo:    userRepo,
		teamRepo:    teamRepo,
		maxTeamSize: maxTeamSize,
		logger:      logger,
	}
}

// RecommendTeamsForUser returns open teams ranked by preference overlap with
// the user, excluding the user's own team.
func (s *RecommendationService) RecommendTeamsForUser(ctx context.Context, userID int64, limit int) ([]dto.TeamSummary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainErrors.NewUserNotFound(userID)
	}

	teams, err := s.teamRepo.ListOpen(ctx, s.maxTeamSize, limit*candidatePoolFactor)
	if err != nil {
		return nil, err
	}

	type scored struct {
		team  *model.Team
		score int
	}
	candidates := make([]scored, 0, len(teams))
	for i := range teams {
		t := &teams[i]
		if user.TeamID != nil && *user.TeamID == t.ID {
			continue
		}
		candidates = append(candidates, scored{team: t, score: teamMatchScore(user, t)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	summaries := make([]dto.TeamSummary, 0, len(candidates))
	for _, c := range candidates {
		summaries = append(summaries, dto.NewTeamSummary(c.team, c.score))
	}
	return summaries, nil
}

// RecommendUsersForTeam returns teamless users ranked by how well they match
// the team's wanted roles and preferences.
func (s *RecommendationService) RecommendUsersForTeam(ctx context.Context, teamID int64, limit int) ([]dto.UserSummary, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domainErrors.NewTeamNotFound(teamID)
	}

	users, err := s.userRepo.ListTeamless(ctx, limit*candidatePoolFactor)
	if err != nil {
		return nil, err
	}

	type scored struct {
		user  *model.User
		score int
	}
	candidates := make([]scored, 0, len(users))
	for i := range users {
		u := &users[i]
		candidates = append(candidates, scored{user: u, score: teamMatchScore(u, team)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	summaries := make([]dto.UserSummary, 0, len(candidates))
	for _, c := range candidates {
		summaries = append(summaries, dto.NewUserSummary(c.user, c.score))
	}
	return summaries, nil
}

// teamMatchScore weighs wanted-role fit above shared goals and vibes.
func teamMatchScore(user *model.User, team *model.Team) int {
	score := 0
	if team.MemberWanted.Contains(string(user.Position)) {
		score += 4
	}
	score += 2 * team.MemberWanted.Overlap(user.WantedPosition)
	score += team.ProjectGoal.Overlap(user.ProjectGoal)
	score += team.ProjectVibe.Overlap(user.ProjectVibe)
	return score
}
