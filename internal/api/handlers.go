package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/hackhub-team/hackhub/internal/auth"
	"github.com/hackhub-team/hackhub/internal/metrics"
	"github.com/hackhub-team/hackhub/internal/models"
	"github.com/hackhub-team/hackhub/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func (s *Service) HandleProtected() echo.HandlerFunc {
	return func(c echo.Context) error {
		ident, ok := auth.IdentityFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"message": "You have accessed a protected route!",
			"user":    ident,
		})
	}
}

func (s *Service) HandleListUsers() echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := s.storage.ListUsers(c.Request().Context())
		if err != nil {
			return s.internalError(c, "Failed to fetch users", err)
		}
		if users == nil {
			users = []*models.User{}
		}
		return c.JSON(http.StatusOK, users)
	}
}

func (s *Service) HandleListRatings() echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := s.storage.ListUsers(c.Request().Context())
		if err != nil {
			return s.internalError(c, "Failed to fetch ratings", err)
		}
		if users == nil {
			users = []*models.User{}
		}
		// Descending by total score, ties broken by document id so the
		// order is deterministic.
		sort.Slice(users, func(i, j int) bool {
			if users[i].Rating.TotalScore != users[j].Rating.TotalScore {
				return users[i].Rating.TotalScore > users[j].Rating.TotalScore
			}
			return users[i].ID < users[j].ID
		})
		return c.JSON(http.StatusOK, users)
	}
}

func (s *Service) HandleListHackathons() echo.HandlerFunc {
	return func(c echo.Context) error {
		hackathons, err := s.storage.ListHackathons(c.Request().Context())
		if err != nil {
			return s.internalError(c, "Failed to fetch hackathons", err)
		}
		if hackathons == nil {
			hackathons = []*models.Hackathon{}
		}
		return c.JSON(http.StatusOK, hackathons)
	}
}

func (s *Service) HandleJoinedHackathons() echo.HandlerFunc {
	return func(c echo.Context) error {
		ident, ok := auth.IdentityFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
		}

		userID := c.Param("userId")
		if ident.UID != userID {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden: You can only access your own data"})
		}

		joined, err := s.storage.ListJoined(c.Request().Context(), userID)
		if err != nil {
			return s.internalError(c, "Failed to fetch joined hackathons", err)
		}
		if joined == nil {
			joined = []*models.JoinedHackathon{}
		}
		return c.JSON(http.StatusOK, joined)
	}
}

type joinHackathonRequest struct {
	// The frontend sends both string and numeric ids, so accept either and
	// coerce below.
	HackathonID any `json:"hackathonId"`
}

func coerceID(v any) string {
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func (s *Service) HandleJoinHackathon() echo.HandlerFunc {
	return func(c echo.Context) error {
		ident, ok := auth.IdentityFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
		}

		var req joinHackathonRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing hackathonId"})
		}
		if req.HackathonID == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing hackathonId"})
		}
		hackathonID := coerceID(req.HackathonID)
		if hackathonID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid hackathonId: must be a non-empty string"})
		}

		ctx := c.Request().Context()

		hackathon, err := s.storage.GetHackathon(ctx, hackathonID)
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Hackathon not found"})
		}
		if err != nil {
			return s.internalError(c, "Failed to join hackathon", err)
		}

		if _, err := s.storage.GetJoined(ctx, ident.UID, hackathonID); err == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "You have already joined this hackathon"})
		} else if !errors.Is(err, storage.ErrNotFound) {
			return s.internalError(c, "Failed to join hackathon", err)
		}

		// The writes below are independent; a failure partway through leaves
		// the earlier ones in place.
		if err := s.storage.AddParticipant(ctx, hackathonID); err != nil {
			return s.internalError(c, "Failed to join hackathon", err)
		}

		now := s.now()
		joined := &models.JoinedHackathon{HackathonID: hackathonID, JoinedAt: now}
		if err := s.storage.CreateJoined(ctx, ident.UID, joined); err != nil {
			return s.internalError(c, "Failed to join hackathon", err)
		}

		project := models.ProjectForJoin(ident.UID, hackathon, now)
		if err := s.storage.SetProject(ctx, project); err != nil {
			return s.internalError(c, "Failed to join hackathon", err)
		}

		if err := s.storage.RecordParticipation(ctx, ident.UID, now); err != nil {
			return s.internalError(c, "Failed to join hackathon", err)
		}

		metrics.HackathonJoins.Inc()
		logrus.Infof("user %s joined hackathon %s", ident.UID, hackathonID)

		return c.JSON(http.StatusOK, echo.Map{
			"message":      "Successfully joined hackathon",
			"participants": hackathon.Participants + 1,
		})
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
}

func (s *Service) HandleRegister() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req registerRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required fields"})
		}
		if req.Email == "" || req.Password == "" || req.Name == "" || req.Surname == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required fields"})
		}

		ctx := c.Request().Context()
		displayName := fmt.Sprintf("%s %s", req.Name, req.Surname)

		uid, err := s.provider.CreateAccount(ctx, req.Email, req.Password, displayName)
		if err != nil {
			return s.internalError(c, "Failed to register user", err)
		}

		user := models.NewUser(uid, req.Email, req.Name, req.Surname, s.config.DefaultTeam, s.now())
		if err := s.storage.CreateUser(ctx, user); err != nil {
			// Drop the orphaned account so the email can register again.
			if delErr := s.provider.DeleteAccount(ctx, uid); delErr != nil {
				logrus.Errorf("cleaning up account %s after failed profile write: %v", uid, delErr)
			}
			return s.internalError(c, "Failed to register user", err)
		}

		metrics.Registrations.Inc()
		logrus.Infof("registered user %s", uid)

		return c.JSON(http.StatusCreated, echo.Map{
			"message": "User registered successfully",
			"uid":     uid,
		})
	}
}

type updateProjectStatusRequest struct {
	ProjectID string `json:"projectId"`
	NewStatus string `json:"newStatus"`
}

func (s *Service) HandleUpdateProjectStatus() echo.HandlerFunc {
	return func(c echo.Context) error {
		ident, ok := auth.IdentityFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
		}

		var req updateProjectStatusRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing projectId or newStatus"})
		}
		if req.ProjectID == "" || req.NewStatus == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing projectId or newStatus"})
		}

		newStatus := models.Status(req.NewStatus)
		if !newStatus.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid newStatus value"})
		}

		ctx := c.Request().Context()

		project, err := s.storage.GetProject(ctx, req.ProjectID)
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Project not found"})
		}
		if err != nil {
			return s.internalError(c, "Failed to update project status", err)
		}

		if project.UserID != ident.UID {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden: You can only update your own projects"})
		}

		upd, ok := models.UpdateForStatus(newStatus, project)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid newStatus value"})
		}

		if err := s.storage.UpdateProjectStatus(ctx, req.ProjectID, upd); err != nil {
			return s.internalError(c, "Failed to update project status", err)
		}

		upd.Apply(project)

		return c.JSON(http.StatusOK, echo.Map{
			"message": "Project status updated successfully",
			"project": project,
		})
	}
}
