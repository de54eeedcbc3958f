package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hackhub-team/hackhub/internal/models"
)

func TestMemoryNotFound(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	if _, err := s.GetUser(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUser err = %v, want ErrNotFound", err)
	}
	if _, err := s.GetHackathon(ctx, "h1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetHackathon err = %v, want ErrNotFound", err)
	}
	if _, err := s.GetJoined(ctx, "u1", "h1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetJoined err = %v, want ErrNotFound", err)
	}
	if _, err := s.GetProject(ctx, "p1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetProject err = %v, want ErrNotFound", err)
	}
	if err := s.AddParticipant(ctx, "h1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddParticipant err = %v, want ErrNotFound", err)
	}
}

func TestMemoryAddParticipantConcurrent(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	s.PutHackathon(&models.Hackathon{ID: "h1", Status: models.StatusActive})

	const joins = 50
	var wg sync.WaitGroup
	for i := 0; i < joins; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.AddParticipant(ctx, "h1"); err != nil {
				t.Errorf("AddParticipant: %v", err)
			}
		}()
	}
	wg.Wait()

	h, err := s.GetHackathon(ctx, "h1")
	if err != nil {
		t.Fatal(err)
	}
	if h.Participants != joins {
		t.Errorf("participants = %d, want %d (lost updates)", h.Participants, joins)
	}
}

func TestMemoryCopiesOnRead(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	s.PutHackathon(&models.Hackathon{ID: "h1", Participants: 1})

	h, err := s.GetHackathon(ctx, "h1")
	if err != nil {
		t.Fatal(err)
	}
	h.Participants = 99

	again, _ := s.GetHackathon(ctx, "h1")
	if again.Participants != 1 {
		t.Errorf("mutation leaked into the store: %d", again.Participants)
	}
}

func TestMemoryJoinedRoundTrip(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	rec := &models.JoinedHackathon{HackathonID: "h1", JoinedAt: at}
	if err := s.CreateJoined(ctx, "u1", rec); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetJoined(ctx, "u1", "h1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "h1" || got.HackathonID != "h1" || !got.JoinedAt.Equal(at) {
		t.Errorf("joined = %+v", got)
	}

	// Other users see nothing.
	if list, _ := s.ListJoined(ctx, "u2"); len(list) != 0 {
		t.Errorf("u2 joined = %v", list)
	}
}

func TestMemoryUpdateProjectStatusMerges(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	project := &models.Project{
		ID: "u1_h1", Title: "Jam", Status: models.StatusActive,
		Progress: "50%", TimeStatus: "2 days", UserID: "u1",
	}
	if err := s.SetProject(ctx, project); err != nil {
		t.Fatal(err)
	}

	upd, _ := models.UpdateForStatus(models.StatusDraft, project)
	if err := s.UpdateProjectStatus(ctx, "u1_h1", upd); err != nil {
		t.Fatal(err)
	}

	got, _ := s.GetProject(ctx, "u1_h1")
	if got.Status != models.StatusDraft || got.Title != "Jam" || got.TimeStatus != "2 days" {
		t.Errorf("merged project = %+v", got)
	}
}

func TestMemoryRecordParticipation(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	if err := s.CreateUser(ctx, models.NewUser("u1", "a@b.com", "Ann", "Lee", "T", now)); err != nil {
		t.Fatal(err)
	}

	later := now.Add(time.Hour)
	if err := s.RecordParticipation(ctx, "u1", later); err != nil {
		t.Fatal(err)
	}

	u, _ := s.GetUser(ctx, "u1")
	if u.Rating.Participations != 1 || !u.Rating.LastUpdated.Equal(later) {
		t.Errorf("rating = %+v", u.Rating)
	}
}
