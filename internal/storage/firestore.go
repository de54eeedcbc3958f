package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/hackhub-team/hackhub/internal/models"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

func (s *Firestore) users() *firestore.CollectionRef {
	return s.client.Collection(UsersCollection)
}

func (s *Firestore) hackathons() *firestore.CollectionRef {
	return s.client.Collection(HackathonsColl)
}

func (s *Firestore) joined(uid string) *firestore.CollectionRef {
	return s.users().Doc(uid).Collection(JoinedSubcoll)
}

func (s *Firestore) projects() *firestore.CollectionRef {
	return s.client.Collection(ProjectsCollection)
}

func (s *Firestore) ListUsers(ctx context.Context) ([]*models.User, error) {
	iter := s.users().Documents(ctx)
	defer iter.Stop()

	var users []*models.User
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating users: %w", err)
		}
		var u models.User
		if err := doc.DataTo(&u); err != nil {
			return nil, fmt.Errorf("decoding user %s: %w", doc.Ref.ID, err)
		}
		u.ID = doc.Ref.ID
		users = append(users, &u)
	}
	return users, nil
}

func (s *Firestore) GetUser(ctx context.Context, uid string) (*models.User, error) {
	doc, err := s.users().Doc(uid).Get(ctx)
	if err != nil {
		return nil, wrapGet("user", err)
	}
	var u models.User
	if err := doc.DataTo(&u); err != nil {
		return nil, fmt.Errorf("decoding user %s: %w", uid, err)
	}
	u.ID = doc.Ref.ID
	return &u, nil
}

func (s *Firestore) CreateUser(ctx context.Context, user *models.User) error {
	if _, err := s.users().Doc(user.UID).Set(ctx, user); err != nil {
		return fmt.Errorf("creating user %s: %w", user.UID, err)
	}
	return nil
}

func (s *Firestore) RecordParticipation(ctx context.Context, uid string, at time.Time) error {
	_, err := s.users().Doc(uid).Update(ctx, []firestore.Update{
		{Path: "rating.participations", Value: firestore.Increment(1)},
		{Path: "rating.lastUpdated", Value: at},
	})
	if err != nil {
		return fmt.Errorf("recording participation for %s: %w", uid, err)
	}
	return nil
}

func (s *Firestore) ListHackathons(ctx context.Context) ([]*models.Hackathon, error) {
	iter := s.hackathons().Documents(ctx)
	defer iter.Stop()

	var hackathons []*models.Hackathon
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating hackathons: %w", err)
		}
		var h models.Hackathon
		if err := doc.DataTo(&h); err != nil {
			return nil, fmt.Errorf("decoding hackathon %s: %w", doc.Ref.ID, err)
		}
		h.ID = doc.Ref.ID
		hackathons = append(hackathons, &h)
	}
	return hackathons, nil
}

func (s *Firestore) GetHackathon(ctx context.Context, id string) (*models.Hackathon, error) {
	doc, err := s.hackathons().Doc(id).Get(ctx)
	if err != nil {
		return nil, wrapGet("hackathon", err)
	}
	var h models.Hackathon
	if err := doc.DataTo(&h); err != nil {
		return nil, fmt.Errorf("decoding hackathon %s: %w", id, err)
	}
	h.ID = doc.Ref.ID
	return &h, nil
}

func (s *Firestore) AddParticipant(ctx context.Context, id string) error {
	_, err := s.hackathons().Doc(id).Update(ctx, []firestore.Update{
		{Path: "participants", Value: firestore.Increment(1)},
	})
	if err != nil {
		return fmt.Errorf("incrementing participants of %s: %w", id, err)
	}
	return nil
}

func (s *Firestore) ListJoined(ctx context.Context, uid string) ([]*models.JoinedHackathon, error) {
	iter := s.joined(uid).Documents(ctx)
	defer iter.Stop()

	var joined []*models.JoinedHackathon
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating joined hackathons of %s: %w", uid, err)
		}
		var j models.JoinedHackathon
		if err := doc.DataTo(&j); err != nil {
			return nil, fmt.Errorf("decoding joined hackathon %s: %w", doc.Ref.ID, err)
		}
		j.ID = doc.Ref.ID
		joined = append(joined, &j)
	}
	return joined, nil
}

func (s *Firestore) GetJoined(ctx context.Context, uid, hackathonID string) (*models.JoinedHackathon, error) {
	doc, err := s.joined(uid).Doc(hackathonID).Get(ctx)
	if err != nil {
		return nil, wrapGet("joined hackathon", err)
	}
	var j models.JoinedHackathon
	if err := doc.DataTo(&j); err != nil {
		return nil, fmt.Errorf("decoding joined hackathon %s: %w", hackathonID, err)
	}
	j.ID = doc.Ref.ID
	return &j, nil
}

func (s *Firestore) CreateJoined(ctx context.Context, uid string, rec *models.JoinedHackathon) error {
	if _, err := s.joined(uid).Doc(rec.HackathonID).Set(ctx, rec); err != nil {
		return fmt.Errorf("creating joined hackathon %s for %s: %w", rec.HackathonID, uid, err)
	}
	return nil
}

func (s *Firestore) GetProject(ctx context.Context, id string) (*models.Project, error) {
	doc, err := s.projects().Doc(id).Get(ctx)
	if err != nil {
		return nil, wrapGet("project", err)
	}
	var p models.Project
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decoding project %s: %w", id, err)
	}
	return &p, nil
}

func (s *Firestore) SetProject(ctx context.Context, project *models.Project) error {
	if _, err := s.projects().Doc(project.ID).Set(ctx, project); err != nil {
		return fmt.Errorf("setting project %s: %w", project.ID, err)
	}
	return nil
}

func (s *Firestore) UpdateProjectStatus(ctx context.Context, id string, upd *models.ProjectUpdate) error {
	updates := []firestore.Update{
		{Path: "status", Value: upd.Status},
		{Path: "statusText", Value: upd.StatusText},
		{Path: "progress", Value: upd.Progress},
		{Path: "progressText", Value: upd.ProgressText},
		{Path: "actions", Value: upd.Actions},
	}
	if upd.TimeStatus != "" {
		updates = append(updates, firestore.Update{Path: "timeStatus", Value: upd.TimeStatus})
	}
	if _, err := s.projects().Doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("updating project %s: %w", id, err)
	}
	return nil
}

func wrapGet(kind string, err error) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s: %w", kind, ErrNotFound)
	}
	return fmt.Errorf("getting %s: %w", kind, err)
}
