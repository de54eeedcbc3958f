package api

import (
	"net/http"
	"time"

	"github.com/hackhub-team/hackhub/internal/auth"
	"github.com/hackhub-team/hackhub/internal/config"
	"github.com/hackhub-team/hackhub/internal/metrics"
	"github.com/hackhub-team/hackhub/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type Service struct {
	config   *config.Config
	storage  storage.Storage
	provider auth.Provider

	now func() time.Time
}

func NewService(cfg *config.Config, store storage.Storage, provider auth.Provider) *Service {
	return &Service{
		config:   cfg,
		storage:  store,
		provider: provider,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	authed := auth.Middleware(s.provider)

	api := e.Group("/api")
	api.GET("/protected", s.HandleProtected(), authed)
	api.GET("/users", s.HandleListUsers())
	api.GET("/ratings", s.HandleListRatings())
	api.GET("/hackathons", s.HandleListHackathons())
	api.GET("/user-joined-hackathons/:userId", s.HandleJoinedHackathons(), authed)
	api.POST("/join-hackathon", s.HandleJoinHackathon(), authed)
	api.POST("/register", s.HandleRegister())
	api.POST("/update-project-status", s.HandleUpdateProjectStatus(), authed)
}

func (s *Service) internalError(c echo.Context, msg string, err error) error {
	logrus.Errorf("%s: %v", msg, err)
	metrics.StoreErrors.Inc()
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"message": msg,
		"error":   err.Error(),
	})
}
