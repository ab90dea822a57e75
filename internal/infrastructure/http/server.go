package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	handlers "github.com/teamforge-app/teamforge-backend/internal/adapter/handler/http"
	"github.com/teamforge-app/teamforge-backend/internal/config"
	"github.com/teamforge-app/teamforge-backend/internal/infrastructure/database"
	"github.com/teamforge-app/teamforge-backend/internal/usecase"
	pkgerrors "github.com/teamforge-app/teamforge-backend/pkg/errors"
	pkglogger "github.com/teamforge-app/teamforge-backend/pkg/logger"
	"go.uber.org/zap"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	repos    *database.Repositories
	notifier usecase.OfferNotifier
	locker   usecase.OfferLocker
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories, notifier usecase.OfferNotifier, locker usecase.OfferLocker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.HTTPErrorHandler = newErrorHandler(logger)

	// Middleware
	e.Use(pkglogger.NewEchoRequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config:   cfg,
		logger:   logger,
		echo:     e,
		repos:    repos,
		notifier: notifier,
		locker:   locker,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Initialize services
	chatRoomSvc := usecase.NewChatRoomService(s.repos.ChatRoom, s.logger)
	requestSvc := usecase.NewMembershipRequestService(s.repos.Tx, s.repos.User, s.repos.Team, s.repos.MembershipRequest, chatRoomSvc, s.notifier, s.locker, s.logger)
	teamSvc := usecase.NewTeamService(s.repos.Tx, s.repos.User, s.repos.Team, s.repos.TeamLockRequest, chatRoomSvc, s.logger)
	recommendationSvc := usecase.NewRecommendationService(s.repos.User, s.repos.Team, s.config.Service.RecommendationMaxTeamSize, s.logger)

	// Initialize handlers
	offerHandler := handlers.NewOfferHandler(requestSvc, s.logger)
	teamHandler := handlers.NewTeamHandler(teamSvc, s.logger)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationSvc, s.logger)

	// API v1 routes
	v1 := s.echo.Group("/api/v1")

	// Offers and membership requests
	v1.POST("/offers", offerHandler.SubmitOffer)
	v1.GET("/teams/:teamId/requests", offerHandler.ListTeamRequests)
	v1.GET("/users/:userId/requests", offerHandler.ListUserRequests)
	v1.POST("/requests/:requestId/accept", offerHandler.AcceptRequest)
	v1.POST("/requests/:requestId/reject", offerHandler.RejectRequest)
	v1.POST("/requests/:requestId/cancel", offerHandler.CancelRequest)

	// Teams
	v1.POST("/teams", teamHandler.CreateTeam)
	v1.DELETE("/teams/:teamId", teamHandler.DeleteTeam)
	v1.POST("/teams/:teamId/members", teamHandler.AddMember)
	v1.GET("/teams/:teamId/members", teamHandler.ListMembers)
	v1.POST("/teams/:teamId/lock-requests", teamHandler.RequestLock)
	v1.POST("/teams/:teamId/lock-requests/approve", teamHandler.ApproveLock)

	// Recommendations
	v1.GET("/teams/:teamId/recommended-users", recommendationHandler.RecommendedUsers)
	v1.GET("/users/:userId/recommended-teams", recommendationHandler.RecommendedTeams)
}

// newErrorHandler maps business errors onto stable (status, code, message)
// responses through the pkg/errors code table.
func newErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status  int
			code    string
			message string
		)

		var appErr *pkgerrors.AppError
		if pkgerrors.As(err, &appErr) {
			status = pkgerrors.ToHTTPStatus(appErr.Code())
			code = appErr.Code()
			message = appErr.Message()
		} else if echoErr, ok := err.(*echo.HTTPError); ok {
			status = echoErr.Code
			code = pkgerrors.ErrInternal
			message = fmt.Sprintf("%v", echoErr.Message)
		} else {
			status = http.StatusInternalServerError
			code = pkgerrors.ErrInternal
			message = "internal server error"
		}

		if status >= http.StatusInternalServerError {
			pkgerrors.LogError(logger, err, "Request failed",
				zap.String("path", c.Path()))
		}

		if jsonErr := c.JSON(status, map[string]string{
			"error": message,
			"code":  code,
		}); jsonErr != nil {
			logger.Error("Failed to write error response", zap.Error(jsonErr))
		}
	}
}
