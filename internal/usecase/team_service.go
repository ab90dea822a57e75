package usecase

import (
	"context"

	adapterRepo "github.com/teamforge-app/teamforge-backend/internal/adapter/repository"
	"github.com/teamforge-app/teamforge-backend/internal/domain/dto"
	domainErrors "github.com/teamforge-app/teamforge-backend/internal/domain/errors"
	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
	domainRepo "github.com/teamforge-app/teamforge-backend/internal/domain/repository"
	"go.uber.org/zap"
)

// TeamService owns team lifecycle and the capacity/state guards around it.
type TeamService struct {
	txManager    adapterRepo.TxManager
	userRepo     domainRepo.UserRepository
	teamRepo     domainRepo.TeamRepository
	lockRepo     domainRepo.TeamLockRequestRepository
	chatRoomSvc  *ChatRoomService
	logger       *zap.Logger
}

// NewTeamService creates a new team service instance
func NewTeamService(
	txManager adapterRepo.TxManager,
	userRepo domainRepo.UserRepository,
	teamRepo domainRepo.TeamRepository,
	lockRepo domainRepo.TeamLockRequestRepository,
	chatRoomSvc *ChatRoomService,
	logger *zap.Logger,
) *TeamService {
	return &TeamService{
		txManager:   txManager,
		userRepo:    userRepo,
		teamRepo:    teamRepo,
		lockRepo:    lockRepo,
		chatRoomSvc: chatRoomSvc,
		logger:      logger,
	}
}

// CreateTeam creates a team with the leader as its first member and the team
// chat room, all in one transaction. A leader who already has a team is
// rejected.
func (s *TeamService) CreateTeam(ctx context.Context, leaderID int64, input dto.CreateTeamInput) (*model.Team, error) {
	var created *model.Team

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		leader, err := s.userRepo.GetByID(ctx, leaderID)
		if err != nil {
			return err
		}
		if leader == nil {
			return domainErrors.NewUserNotFound(leaderID)
		}
		if leader.HasTeam() {
			return domainErrors.NewUserAlreadyHasTeam()
		}

		team := &model.Team{
			TeamName:        input.TeamName,
			TeamDomain:      input.TeamDomain,
			MemberWanted:    model.NewTagSet(input.MemberWanted),
			TeamDescription: input.TeamDescription,
			ProjectGoal:     model.NewTagSet(input.ProjectGoal),
			ProjectVibe:     model.NewTagSet(input.ProjectVibe),
			BackendCount:    input.BackendCount,
			FrontendCount:   input.FrontendCount,
			AICount:         input.AICount,
			PMCount:         input.PMCount,
			DesignCount:     input.DesignCount,
			LeaderID:        leader.ID,
		}
		if err := s.teamRepo.Create(ctx, team); err != nil {
			return err
		}

		if err := s.userRepo.SetTeam(ctx, leader.ID, &team.ID); err != nil {
			return err
		}

		roomID, err := s.chatRoomSvc.CreateTeamChatRoom(ctx, team.ID, leader.ID)
		if err != nil {
			return err
		}
		team.ChatRoomID = &roomID
		if err := s.teamRepo.Update(ctx, team); err != nil {
			return err
		}

		created = team
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Team created",
		zap.Int64("team_id", created.ID),
		zap.String("team_name", created.TeamName),
		zap.Int64("leader_id", created.LeaderID))

	return created, nil
}

// AddMember joins a user to a team and to its chat room. A user who already
// belongs to a team must leave before joining another.
func (s *TeamService) AddMember(ctx context.Context, teamID, userID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return domainErrors.NewTeamNotFound(teamID)
		}

		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domainErrors.NewUserNotFound(userID)
		}
		if user.HasTeam() {
			return domainErrors.NewUserAlreadyHasTeam()
		}

		if err := s.userRepo.SetTeam(ctx, user.ID, &team.ID); err != nil {
			return err
		}

		if team.ChatRoomID != nil {
			return s.chatRoomSvc.AddMemberToTeamChatRoom(ctx, *team.ChatRoomID, user.ID)
		}
		return nil
	})
}

// ListMembers enumerates the team's current members.
func (s *TeamService) ListMembers(ctx context.Context, teamID int64) ([]dto.UserSummary, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domainErrors.NewTeamNotFound(teamID)
	}

	members, err := s.userRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.UserSummary, 0, len(members))
	for i := range members {
		summaries = append(summaries, dto.NewUserSummary(&members[i], 0))
	}
	return summaries, nil
}

// DeleteTeam detaches all members first, then removes the team.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return domainErrors.NewTeamNotFound(teamID)
		}

		members, err := s.userRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return err
		}
		for _, m := range members {
			if err := s.userRepo.SetTeam(ctx, m.ID, nil); err != nil {
				return err
			}
		}

		return s.teamRepo.Delete(ctx, teamID)
	})
}

// RequestLock opens a lock request for the team. A locked team and a team
// with a pending lock request are both rejected.
func (s *TeamService) RequestLock(ctx context.Context, teamID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return domainErrors.NewTeamNotFound(teamID)
		}
		if team.Locked {
			return domainErrors.NewTeamAlreadyLocked()
		}

		pending, err := s.lockRepo.GetPendingByTeam(ctx, teamID)
		if err != nil {
			return err
		}
		if pending != nil {
			return domainErrors.NewLockRequestExists()
		}

		return s.lockRepo.Create(ctx, &model.TeamLockRequest{
			TeamID: teamID,
			Status: model.LockStatusPending,
		})
	})
}

// ApproveLock resolves the team's pending lock request and locks the team.
func (s *TeamService) ApproveLock(ctx context.Context, teamID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return domainErrors.NewTeamNotFound(teamID)
		}

		pending, err := s.lockRepo.GetPendingByTeam(ctx, teamID)
		if err != nil {
			return err
		}
		if pending == nil {
			return domainErrors.NewRequestNotFound(0)
		}

		team.Locked = true
		if err := s.teamRepo.Update(ctx, team); err != nil {
			return err
		}

		return s.lockRepo.UpdateStatus(ctx, pending.ID, model.LockStatusApproved)
	})
}
