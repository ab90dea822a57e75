package usecase

import (
	"context"

	domainErrors "github.com/teamforge-app/teamforge-backend/internal/domain/errors"
	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
	domainRepo "github.com/teamforge-app/teamforge-backend/internal/domain/repository"
	pkgerrors "github.com/teamforge-app/teamforge-backend/pkg/errors"
	"go.uber.org/zap"
)

// ChatRoomService covers the room operations the membership flows need:
// creating a team room and adding members to one.
type ChatRoomService struct {
	chatRoomRepo domainRepo.ChatRoomRepository
	logger       *zap.Logger
}

// NewChatRoomService creates a new chat room service instance
func NewChatRoomService(chatRoomRepo domainRepo.ChatRoomRepository, logger *zap.Logger) *ChatRoomService {
	return &ChatRoomService{
		chatRoomRepo: chatRoomRepo,
		logger:       logger,
	}
}

// CreateTeamChatRoom creates the team's room with the creator as its first
// member and returns the room id.
func (s *ChatRoomService) CreateTeamChatRoom(ctx context.Context, teamID, userID int64) (int64, error) {
	room := &model.ChatRoom{
		RoomType: model.RoomTypeTeam,
		TeamID:   &teamID,
	}

	if err := s.chatRoomRepo.Create(ctx, room); err != nil {
		return 0, err
	}

	if err := s.chatRoomRepo.AddMember(ctx, room.ID, userID); err != nil {
		return 0, err
	}

	s.logger.Info("Team chat room created",
		zap.Int64("room_id", room.ID),
		zap.Int64("team_id", teamID))

	return room.ID, nil
}

// AddMemberToTeamChatRoom adds a user to a team room. Private 1:1 rooms are
// rejected so membership flows cannot leak members into them.
func (s *ChatRoomService) AddMemberToTeamChatRoom(ctx context.Context, roomID, userID int64) error {
	room, err := s.chatRoomRepo.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return pkgerrors.NewAppError(pkgerrors.ErrNotFound, "chat room not found", nil)
	}
	if room.RoomType != model.RoomTypeTeam {
		return domainErrors.NewInvalidChatRoomType()
	}

	return s.chatRoomRepo.AddMember(ctx, roomID, userID)
}
