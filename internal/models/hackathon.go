package models

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusDraft, StatusCompleted:
		return true
	}
	return false
}

type Hackathon struct {
	ID           string `firestore:"-" json:"id"`
	Title        string `firestore:"title" json:"title"`
	Description  string `firestore:"description" json:"description"`
	Image        string `firestore:"image" json:"image"`
	Status       Status `firestore:"status" json:"status"`
	Participants int    `firestore:"participants" json:"participants"`
	TimeLeft     string `firestore:"timeLeft" json:"timeLeft"`
}

// JoinedHackathon lives in the "joinedHackathons" subcollection of a user
// document, keyed by the hackathon id.
type JoinedHackathon struct {
	ID          string    `firestore:"-" json:"id"`
	HackathonID string    `firestore:"hackathonId" json:"hackathonId"`
	JoinedAt    time.Time `firestore:"joinedAt" json:"joinedAt"`
}
