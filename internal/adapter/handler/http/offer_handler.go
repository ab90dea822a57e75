package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/teamforge-app/teamforge-backend/internal/domain/dto"
	"github.com/teamforge-app/teamforge-backend/internal/usecase"
	pkgerrors "github.com/teamforge-app/teamforge-backend/pkg/errors"
	"go.uber.org/zap"
)

type OfferHandler struct {
	requestSvc *usecase.MembershipRequestService
	logger     *zap.Logger
}

func NewOfferHandler(requestSvc *usecase.MembershipRequestService, logger *zap.Logger) *OfferHandler {
	return &OfferHandler{
		requestSvc: requestSvc,
		logger:     logger,
	}
}

// SubmitOffer handles POST /api/v1/offers
func (h *OfferHandler) SubmitOffer(c echo.Context) error {
	var offer dto.Offer
	if err := c.Bind(&offer); err != nil {
		return pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "invalid offer payload", err)
	}
	if err := c.Validate(&offer); err != nil {
		return pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "invalid offer payload", err)
	}

	if err := h.requestSvc.SubmitOffer(c.Request().Context(), offer); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

// ListTeamRequests handles GET /api/v1/teams/:teamId/requests
func (h *OfferHandler) ListTeamRequests(c echo.Context) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}

	summaries, err := h.requestSvc.ListTeamRequests(c.Request().Context(), teamID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summaries)
}

// ListUserRequests handles GET /api/v1/users/:userId/requests
func (h *OfferHandler) ListUserRequests(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	summaries, err := h.requestSvc.ListUserRequests(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summaries)
}

// AcceptRequest handles POST /api/v1/requests/:requestId/accept
func (h *OfferHandler) AcceptRequest(c echo.Context) error {
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}

	if err := h.requestSvc.AcceptRequest(c.Request().Context(), requestID); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

// RejectRequest handles POST /api/v1/requests/:requestId/reject
func (h *OfferHandler) RejectRequest(c echo.Context) error {
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}

	if err := h.requestSvc.RejectRequest(c.Request().Context(), requestID); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

// CancelRequest handles POST /api/v1/requests/:requestId/cancel
func (h *OfferHandler) CancelRequest(c echo.Context) error {
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}

	if err := h.requestSvc.CancelRequest(c.Request().Context(), requestID); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "invalid "+name, err)
	}
	return id, nil
}
