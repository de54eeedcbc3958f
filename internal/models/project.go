package models

import (
	"fmt"
	"time"
)

const (
	DefaultProjectImage = "default-image"

	StatusTextInProgress = "In progress"
	StatusTextDraft      = "Draft"
	StatusTextCompleted  = "Completed"

	ProgressTextOngoing   = "In progress"
	ProgressTextCompleted = "Completed"

	TimeStatusCompleted = "Completed"
	TimeStatusUpcoming  = "Starting soon"
)

// Project is a document in the "my_projects" collection, keyed by
// "<userId>_<hackathonId>" so a (user, hackathon) pair maps to exactly one
// project.
type Project struct {
	ID           string    `firestore:"id" json:"id"`
	Title        string    `firestore:"title" json:"title"`
	Description  string    `firestore:"description" json:"description"`
	Image        string    `firestore:"image" json:"image"`
	Status       Status    `firestore:"status" json:"status"`
	StatusText   string    `firestore:"statusText" json:"statusText"`
	HackathonID  string    `firestore:"hackathonId" json:"hackathonId"`
	TimeStatus   string    `firestore:"timeStatus" json:"timeStatus"`
	Progress     string    `firestore:"progress" json:"progress"`
	ProgressText string    `firestore:"progressText" json:"progressText"`
	Actions      []string  `firestore:"actions" json:"actions"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UserID       string    `firestore:"userId" json:"userId"`
}

func ProjectID(userID, hackathonID string) string {
	return fmt.Sprintf("%s_%s", userID, hackathonID)
}

// ActionsForStatus maps a hackathon status to the project action labels.
// Unknown statuses intentionally fall through to the active pair.
func ActionsForStatus(s Status) []string {
	switch s {
	case StatusActive:
		return []string{"Edit", "Submit"}
	case StatusDraft:
		return []string{"View", "Delete"}
	case StatusCompleted:
		return []string{"View", "Share"}
	default:
		return []string{"Edit", "Submit"}
	}
}

// ProjectForJoin builds the project created when a user joins a hackathon.
// The project starts "active" regardless of the hackathon's own status; the
// display fields only distinguish completed hackathons from everything else.
func ProjectForJoin(userID string, h *Hackathon, now time.Time) *Project {
	completed := h.Status == StatusCompleted

	image := h.Image
	if image == "" {
		image = DefaultProjectImage
	}

	statusText := StatusTextInProgress
	timeStatus := h.TimeLeft
	progress := "50%"
	progressText := ProgressTextOngoing
	if completed {
		statusText = StatusTextCompleted
		timeStatus = TimeStatusCompleted
		progress = "100%"
		progressText = ProgressTextCompleted
	} else if timeStatus == "" {
		timeStatus = TimeStatusUpcoming
	}

	return &Project{
		ID:           ProjectID(userID, h.ID),
		Title:        h.Title,
		Description:  h.Description,
		Image:        image,
		Status:       StatusActive,
		StatusText:   statusText,
		HackathonID:  h.ID,
		TimeStatus:   timeStatus,
		Progress:     progress,
		ProgressText: progressText,
		Actions:      ActionsForStatus(h.Status),
		CreatedAt:    now,
		UserID:       userID,
	}
}

// ProjectUpdate is the partial-merge write applied by the status-update
// operation. TimeStatus is only set for the completed transition.
type ProjectUpdate struct {
	Status       Status   `firestore:"status" json:"status"`
	StatusText   string   `firestore:"statusText" json:"statusText"`
	Progress     string   `firestore:"progress" json:"progress"`
	ProgressText string   `firestore:"progressText" json:"progressText"`
	Actions      []string `firestore:"actions" json:"actions"`
	TimeStatus   string   `firestore:"timeStatus,omitempty" json:"timeStatus,omitempty"`
}

func UpdateForStatus(s Status, current *Project) (*ProjectUpdate, bool) {
	switch s {
	case StatusActive:
		return &ProjectUpdate{
			Status:       StatusActive,
			StatusText:   StatusTextInProgress,
			Progress:     current.Progress,
			ProgressText: ProgressTextOngoing,
			Actions:      ActionsForStatus(StatusActive),
		}, true
	case StatusDraft:
		return &ProjectUpdate{
			Status:       StatusDraft,
			StatusText:   StatusTextDraft,
			Progress:     current.Progress,
			ProgressText: ProgressTextOngoing,
			Actions:      ActionsForStatus(StatusDraft),
		}, true
	case StatusCompleted:
		return &ProjectUpdate{
			Status:       StatusCompleted,
			StatusText:   StatusTextCompleted,
			Progress:     current.Progress,
			ProgressText: ProgressTextCompleted,
			Actions:      ActionsForStatus(StatusCompleted),
			TimeStatus:   TimeStatusCompleted,
		}, true
	default:
		return nil, false
	}
}

// Apply merges the update into p, producing the view returned to the client.
func (u *ProjectUpdate) Apply(p *Project) {
	p.Status = u.Status
	p.StatusText = u.StatusText
	p.Progress = u.Progress
	p.ProgressText = u.ProgressText
	p.Actions = u.Actions
	if u.TimeStatus != "" {
		p.TimeStatus = u.TimeStatus
	}
}
