package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/teamforge-app/teamforge-backend/internal/domain/dto"
	"github.com/teamforge-app/teamforge-backend/internal/usecase"
	pkgerrors "github.com/teamforge-app/teamforge-backend/pkg/errors"
	"go.uber.org/zap"
)

type TeamHandler struct {
	teamSvc *usecase.TeamService
	logger  *zap.Logger
}

func NewTeamHandler(teamSvc *usecase.TeamService, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{
		teamSvc: teamSvc,
		logger:  logger,
	}
}

type createTeamRequest struct {
	LeaderID int64 `json:"leader_id" validate:"required,gt=0"`
	dto.CreateTeamInput
}

type addMemberRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// CreateTeam handles POST /api/v1/teams
func (h *TeamHandler) CreateTeam(c echo.Context) error {
	var req createTeamRequest
	if err := c.Bind(&req); err != nil {
		return pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "invalid team payload", err)
	}
	if err := c.Validate(&req); err != nil {
		return pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "invalid team payload", err)
	}

	team, err := h.teamSvc.CreateTeam(c.Request().Context(), req.LeaderID, req.CreateTeamInput)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, team)
}

// DeleteTeam handles DELETE /api/v1/teams/:teamId
func (h *TeamHandler) DeleteTeam(c echo.Context) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}

	if err := h.teamSvc.DeleteTeam(c.Request().Context(), teamID); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

// AddMember handles POST /api/v1/teams/:teamId/members
func (h *TeamHandler) AddMember(c echo.Context) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}

	var req addMemberRequest
	if err := c.Bind(&req); err != nil {
		return pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "invalid member payload", err)
	}
	if err := c.Validate(&req); err != nil {
		return pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "invalid member payload", err)
	}

	if err := h.teamSvc.AddMember(c.Request().Context(), teamID, req.UserID); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

// ListMembers handles GET /api/v1/teams/:teamId/members
func (h *TeamHandler) ListMembers(c echo.Context) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}

	members, err := h.teamSvc.ListMembers(c.Request().Context(), teamID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, members)
}

// RequestLock handles POST /api/v1/teams/:teamId/lock-requests
func (h *TeamHandler) RequestLock(c echo.Context) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}

	if err := h.teamSvc.RequestLock(c.Request().Context(), teamID); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

// ApproveLock handles POST /api/v1/teams/:teamId/lock-requests/approve
func (h *TeamHandler) ApproveLock(c echo.Context) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}

	if err := h.teamSvc.ApproveLock(c.Request().Context(), teamID); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}
