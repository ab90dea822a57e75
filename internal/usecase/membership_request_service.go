package usecase

import (
	"context"
	"fmt"

	adapterRepo "github.com/teamforge-app/teamforge-backend/internal/adapter/repository"
	"github.com/teamforge-app/teamforge-backend/internal/domain/dto"
	domainErrors "github.com/teamforge-app/teamforge-backend/internal/domain/errors"
	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
	domainRepo "github.com/teamforge-app/teamforge-backend/internal/domain/repository"
	pkgerrors "github.com/teamforge-app/teamforge-backend/pkg/errors"
	"go.uber.org/zap"
)

// MembershipRequestService is the single authority for creating membership
// requests and fanning out their notifications.
type MembershipRequestService struct {
	txManager    adapterRepo.TxManager
	userRepo     domainRepo.UserRepository
	teamRepo     domainRepo.TeamRepository
	requestRepo  domainRepo.MembershipRequestRepository
	chatRoomSvc  *ChatRoomService
	notifier     OfferNotifier
	locker       OfferLocker
	logger       *zap.Logger
}

// NewMembershipRequestService creates a new membership request service instance
func NewMembershipRequestService(
	txManager adapterRepo.TxManager,
	userRepo domainRepo.UserRepository,
	teamRepo domainRepo.TeamRepository,
	requestRepo domainRepo.MembershipRequestRepository,
	chatRoomSvc *ChatRoomService,
	notifier OfferNotifier,
	locker OfferLocker,
	logger *zap.Logger,
) *MembershipRequestService {
	return &MembershipRequestService{
		txManager:   txManager,
		userRepo:    userRepo,
		teamRepo:    teamRepo,
		requestRepo: requestRepo,
		chatRoomSvc: chatRoomSvc,
		notifier:    notifier,
		locker:      locker,
		logger:      logger,
	}
}

// SubmitOffer routes an offer to the matching direction. The request type is
// the sole dispatch key: INVITE goes team-to-member, everything else is a
// join request.
func (s *MembershipRequestService) SubmitOffer(ctx context.Context, offer dto.Offer) error {
	requestType, err := model.ParseRequestType(offer.RequestType)
	if err != nil {
		return pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "invalid request type", err)
	}

	if requestType != model.RequestTypeInvite {
		return s.RequestMemberToTeam(ctx, offer)
	}
	return s.RequestTeamToMember(ctx, offer)
}

// RequestTeamToMember handles a team inviting a user. On success exactly one
// request row is written and one notification is sent to the invited user.
func (s *MembershipRequestService) RequestTeamToMember(ctx context.Context, offer dto.Offer) error {
	release, err := s.acquireOfferLock(ctx, offer.TeamID, model.RequestTypeInvite)
	if err != nil {
		return err
	}
	defer release()

	var created *model.MembershipRequest

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		team, user, err := s.loadParties(ctx, offer.TeamID, offer.UserID)
		if err != nil {
			return err
		}

		// Scan the team's existing invites for an active one to this user.
		existing, err := s.requestRepo.ListActiveByTeam(ctx, team.ID, model.RequestTypeInvite)
		if err != nil {
			return err
		}
		if model.HasActiveRequest(existing, user.ID, model.RequestTypeInvite, true) {
			return domainErrors.NewTeamRequestExists()
		}

		request := &model.MembershipRequest{
			RequestType: model.RequestTypeInvite,
			Status:      model.RequestStatusPending,
			Message:     offer.Message,
			UserID:      user.ID,
			TeamID:      team.ID,
		}
		if err := s.requestRepo.Create(ctx, request); err != nil {
			return err
		}

		created = request
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Invite created",
		zap.Int64("request_id", created.ID),
		zap.Int64("team_id", created.TeamID),
		zap.Int64("user_id", created.UserID))

	// Notify only after the write committed.
	s.notify(ctx, []int64{created.UserID}, created)

	return nil
}

// RequestMemberToTeam handles a user asking to join a team. On success one
// request row is written and every current team member is notified.
func (s *MembershipRequestService) RequestMemberToTeam(ctx context.Context, offer dto.Offer) error {
	release, err := s.acquireOfferLock(ctx, offer.TeamID, model.RequestTypeJoinRequest)
	if err != nil {
		return err
	}
	defer release()

	var (
		created   *model.MembershipRequest
		memberIDs []int64
	)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		team, user, err := s.loadParties(ctx, offer.TeamID, offer.UserID)
		if err != nil {
			return err
		}

		// Scan the user's existing join requests for an active one to this team.
		existing, err := s.requestRepo.ListActiveByUser(ctx, user.ID, model.RequestTypeJoinRequest)
		if err != nil {
			return err
		}
		if model.HasActiveRequest(existing, team.ID, model.RequestTypeJoinRequest, false) {
			return domainErrors.NewTeamRequestExists()
		}

		request := &model.MembershipRequest{
			RequestType: model.RequestTypeJoinRequest,
			Status:      model.RequestStatusPending,
			Message:     offer.Message,
			UserID:      user.ID,
			TeamID:      team.ID,
		}
		if err := s.requestRepo.Create(ctx, request); err != nil {
			return err
		}

		// Capture the member list inside the transaction so the fan-out
		// matches the membership the request was validated against.
		members, err := s.userRepo.ListByTeam(ctx, team.ID)
		if err != nil {
			return err
		}
		memberIDs = make([]int64, 0, len(members))
		for _, m := range members {
			memberIDs = append(memberIDs, m.ID)
		}

		created = request
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Join request created",
		zap.Int64("request_id", created.ID),
		zap.Int64("team_id", created.TeamID),
		zap.Int64("user_id", created.UserID),
		zap.Int("member_count", len(memberIDs)))

	// Every current member sees the incoming join request, not just the
	// leader.
	s.notify(ctx, memberIDs, created)

	return nil
}

// ListTeamRequests returns the team's requests ordered by creation time.
func (s *MembershipRequestService) ListTeamRequests(ctx context.Context, teamID int64) ([]dto.MembershipRequestSummary, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domainErrors.NewTeamNotFound(teamID)
	}

	requests, err := s.requestRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return toSummaries(requests), nil
}

// ListUserRequests returns the user's requests ordered by creation time.
func (s *MembershipRequestService) ListUserRequests(ctx context.Context, userID int64) ([]dto.MembershipRequestSummary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainErrors.NewUserNotFound(userID)
	}

	requests, err := s.requestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toSummaries(requests), nil
}

// AcceptRequest resolves a pending request by joining the user to the team.
// The one-team-per-user guard runs again here: the user may have joined
// another team while the request was pending.
func (s *MembershipRequestService) AcceptRequest(ctx context.Context, requestID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.pendingRequest(ctx, requestID)
		if err != nil {
			return err
		}

		user, err := s.userRepo.GetByID(ctx, request.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domainErrors.NewUserNotFound(request.UserID)
		}
		if user.HasTeam() {
			return domainErrors.NewUserAlreadyHasTeam()
		}

		team, err := s.teamRepo.GetByID(ctx, request.TeamID)
		if err != nil {
			return err
		}
		if team == nil {
			return domainErrors.NewTeamNotFound(request.TeamID)
		}

		if err := s.userRepo.SetTeam(ctx, user.ID, &team.ID); err != nil {
			return err
		}

		if team.ChatRoomID != nil {
			if err := s.chatRoomSvc.AddMemberToTeamChatRoom(ctx, *team.ChatRoomID, user.ID); err != nil {
				return err
			}
		}

		return s.requestRepo.UpdateStatus(ctx, request.ID, model.RequestStatusAccepted)
	})
}

// RejectRequest marks a pending request rejected, which frees the
// (user, team, direction) slot for a later offer.
func (s *MembershipRequestService) RejectRequest(ctx context.Context, requestID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.pendingRequest(ctx, requestID)
		if err != nil {
			return err
		}
		return s.requestRepo.UpdateStatus(ctx, request.ID, model.RequestStatusRejected)
	})
}

// CancelRequest marks a pending request canceled.
func (s *MembershipRequestService) CancelRequest(ctx context.Context, requestID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.pendingRequest(ctx, requestID)
		if err != nil {
			return err
		}
		return s.requestRepo.UpdateStatus(ctx, request.ID, model.RequestStatusCanceled)
	})
}

func (s *MembershipRequestService) pendingRequest(ctx context.Context, requestID int64) (*model.MembershipRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domainErrors.NewRequestNotFound(requestID)
	}
	if request.Status != model.RequestStatusPending {
		return nil, domainErrors.NewInvalidRequestStatus(string(request.Status))
	}
	return request, nil
}

func (s *MembershipRequestService) loadParties(ctx context.Context, teamID, userID int64) (*model.Team, *model.User, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}
	if team == nil {
		return nil, nil, domainErrors.NewTeamNotFound(teamID)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domainErrors.NewUserNotFound(userID)
	}

	return team, user, nil
}

func (s *MembershipRequestService) acquireOfferLock(ctx context.Context, teamID int64, requestType model.RequestType) (func(), error) {
	key := fmt.Sprintf("offer:%d:%s", teamID, requestType)

	release, err := s.locker.Acquire(ctx, key)
	if err != nil {
		s.logger.Warn("Failed to acquire offer lock",
			zap.String("key", key),
			zap.Error(err))
		return nil, domainErrors.NewLockAcquireFailed(err)
	}
	return release, nil
}

// notify fans one message out, one send per recipient channel. Failures are
// logged and dropped.
func (s *MembershipRequestService) notify(ctx context.Context, recipientIDs []int64, request *model.MembershipRequest) {
	for _, id := range recipientIDs {
		if err := s.notifier.NotifyOffer(ctx, id, request); err != nil {
			pkgerrors.LogError(s.logger, err, "Failed to send offer notification",
				zap.Int64("recipient_id", id),
				zap.Int64("request_id", request.ID))
		}
	}
}

func toSummaries(requests []model.MembershipRequest) []dto.MembershipRequestSummary {
	summaries := make([]dto.MembershipRequestSummary, 0, len(requests))
	for i := range requests {
		summaries = append(summaries, dto.NewMembershipRequestSummary(&requests[i]))
	}
	return summaries
}
