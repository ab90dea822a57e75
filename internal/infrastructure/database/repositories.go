package database

import (
	adapterRepo "github.com/teamforge-app/teamforge-backend/internal/adapter/repository"
	domainRepo "github.com/teamforge-app/teamforge-backend/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories aggregates every repository implementation plus the
// transaction manager.
type Repositories struct {
	Tx                adapterRepo.TxManager
	User              domainRepo.UserRepository
	Team              domainRepo.TeamRepository
	MembershipRequest domainRepo.MembershipRequestRepository
	ChatRoom          domainRepo.ChatRoomRepository
	TeamLockRequest   domainRepo.TeamLockRequestRepository
}

// NewRepositories wires all repositories to one database handle.
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Tx:                adapterRepo.NewTxManager(db),
		User:              adapterRepo.NewUserRepository(db, logger),
		Team:              adapterRepo.NewTeamRepository(db, logger),
		MembershipRequest: adapterRepo.NewMembershipRequestRepository(db, logger),
		ChatRoom:          adapterRepo.NewChatRoomRepository(db, logger),
		TeamLockRequest:   adapterRepo.NewTeamLockRequestRepository(db, logger),
	}
}
