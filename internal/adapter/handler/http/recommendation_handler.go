package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/teamforge-app/teamforge-backend/internal/usecase"
	"go.uber.org/zap"
)

const defaultRecommendationLimit = 10

type RecommendationHandler struct {
	recommendationSvc *usecase.RecommendationService
	logger            *zap.Logger
}

func NewRecommendationHandler(recommendationSvc *usecase.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationSvc: recommendationSvc,
		logger:            logger,
	}
}

// RecommendedTeams handles GET /api/v1/users/:userId/recommended-teams
func (h *RecommendationHandler) RecommendedTeams(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	teams, err := h.recommendationSvc.RecommendTeamsForUser(c.Request().Context(), userID, queryLimit(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, teams)
}

// RecommendedUsers handles GET /api/v1/teams/:teamId/recommended-users
func (h *RecommendationHandler) RecommendedUsers(c echo.Context) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}

	users, err := h.recommendationSvc.RecommendUsersForTeam(c.Request().Context(), teamID, queryLimit(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

func queryLimit(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 || limit > 100 {
		return defaultRecommendationLimit
	}
	return limit
}
