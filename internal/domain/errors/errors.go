// Package errors defines the business error kinds surfaced by the
// team-matching core. Every kind carries a stable code mapped to an HTTP
// status through pkg/errors.
package errors

import (
	pkgerrors "github.com/teamforge-app/teamforge-backend/pkg/errors"
)

const (
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeTeamNotFound         = "TEAM_NOT_FOUND"
	CodeRequestNotFound      = "REQUEST_NOT_FOUND"
	CodeTeamRequestExists    = "TEAM_REQUEST_ALREADY_EXIST"
	CodeUserAlreadyHasTeam   = "USER_ALLREADY_HAS_TEAM"
	CodeTeamAlreadyLocked    = "TEAM_ALLREADY_LOCKED"
	CodeLockRequestExists    = "LOCKREQUEST_ALLREADY_HAS"
	CodeInvalidChatRoomType  = "INVALID_CHAT_ROOM_TYPE"
	CodeLockAcquireFailed    = "LOCK_ACQUIRE_FAILED"
	CodeInvalidRequestStatus = "INVALID_REQUEST_STATUS"
)

func init() {
	// Lookup failures.
	pkgerrors.Register(CodeUserNotFound, 404, 5)
	pkgerrors.Register(CodeTeamNotFound, 404, 5)
	pkgerrors.Register(CodeRequestNotFound, 404, 5)

	// Business-rule violations surface as client errors.
	pkgerrors.Register(CodeTeamRequestExists, 400, 6)
	pkgerrors.Register(CodeUserAlreadyHasTeam, 400, 9)
	pkgerrors.Register(CodeTeamAlreadyLocked, 400, 9)
	pkgerrors.Register(CodeLockRequestExists, 400, 6)
	pkgerrors.Register(CodeInvalidChatRoomType, 400, 3)
	pkgerrors.Register(CodeInvalidRequestStatus, 400, 9)

	// Transient; the caller may retry with backoff.
	pkgerrors.Register(CodeLockAcquireFailed, 409, 10)
}

func NewUserNotFound(userID int64) error {
	return pkgerrors.NewAppError(CodeUserNotFound, "user not found", nil)
}

func NewTeamNotFound(teamID int64) error {
	return pkgerrors.NewAppError(CodeTeamNotFound, "team not found", nil)
}

func NewRequestNotFound(requestID int64) error {
	return pkgerrors.NewAppError(CodeRequestNotFound, "membership request not found", nil)
}

// NewTeamRequestExists signals the dedup invariant: an equivalent
// non-rejected request already exists for the (user, team, direction) pair.
func NewTeamRequestExists() error {
	return pkgerrors.NewAppError(CodeTeamRequestExists, "an active request already exists between this user and team", nil)
}

func NewUserAlreadyHasTeam() error {
	return pkgerrors.NewAppError(CodeUserAlreadyHasTeam, "user already belongs to a team", nil)
}

func NewTeamAlreadyLocked() error {
	return pkgerrors.NewAppError(CodeTeamAlreadyLocked, "team is already locked", nil)
}

func NewLockRequestExists() error {
	return pkgerrors.NewAppError(CodeLockRequestExists, "team already has a pending lock request", nil)
}

func NewInvalidChatRoomType() error {
	return pkgerrors.NewAppError(CodeInvalidChatRoomType, "chat room is not a team room", nil)
}

func NewInvalidRequestStatus(current string) error {
	return pkgerrors.NewAppError(CodeInvalidRequestStatus, "request is not pending", nil)
}

// NewLockAcquireFailed wraps a mutex acquisition failure; retryable.
func NewLockAcquireFailed(err error) error {
	return pkgerrors.NewAppError(CodeLockAcquireFailed, "could not acquire offer lock", err)
}

// Is reports whether err carries the given business code.
func Is(err error, code string) bool {
	return pkgerrors.CodeOf(err) == code
}
