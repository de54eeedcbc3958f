package storage

import (
	"context"
	"errors"
	"time"

	"github.com/hackhub-team/hackhub/internal/models"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("document not found")

const (
	UsersCollection    = "users"
	HackathonsColl     = "hackathons"
	JoinedSubcoll      = "joinedHackathons"
	ProjectsCollection = "my_projects"
)

// Storage is the document-store surface the handlers run against. All state
// lives behind it; handlers never share in-process mutable state.
type Storage interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, uid string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	// RecordParticipation atomically bumps rating.participations and stamps
	// rating.lastUpdated.
	RecordParticipation(ctx context.Context, uid string, at time.Time) error

	ListHackathons(ctx context.Context) ([]*models.Hackathon, error)
	GetHackathon(ctx context.Context, id string) (*models.Hackathon, error)
	// AddParticipant atomically increments the hackathon's participant count.
	AddParticipant(ctx context.Context, id string) error

	ListJoined(ctx context.Context, uid string) ([]*models.JoinedHackathon, error)
	GetJoined(ctx context.Context, uid, hackathonID string) (*models.JoinedHackathon, error)
	CreateJoined(ctx context.Context, uid string, rec *models.JoinedHackathon) error

	GetProject(ctx context.Context, id string) (*models.Project, error)
	SetProject(ctx context.Context, project *models.Project) error
	// UpdateProjectStatus merges the given fields into the project document,
	// leaving everything else untouched.
	UpdateProjectStatus(ctx context.Context, id string, upd *models.ProjectUpdate) error
}
