package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hackhub-team/hackhub/internal/models"
)

// Memory is a Storage backed by in-process maps. It exists for tests and
// for dev mode, where the API runs without Google credentials.
type Memory struct {
	mu         sync.Mutex
	users      map[string]*models.User
	hackathons map[string]*models.Hackathon
	joined     map[string]map[string]*models.JoinedHackathon
	projects   map[string]*models.Project
}

func NewMemory() *Memory {
	return &Memory{
		users:      make(map[string]*models.User),
		hackathons: make(map[string]*models.Hackathon),
		joined:     make(map[string]map[string]*models.JoinedHackathon),
		projects:   make(map[string]*models.Project),
	}
}

// PutHackathon seeds a hackathon document, overwriting any existing one.
func (s *Memory) PutHackathon(h *models.Hackathon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *h
	s.hackathons[h.ID] = &cp
}

func (s *Memory) ListUsers(ctx context.Context) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		users = append(users, &cp)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *Memory) GetUser(ctx context.Context, uid string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[uid]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", uid, ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (s *Memory) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *user
	s.users[user.UID] = &cp
	return nil
}

func (s *Memory) RecordParticipation(ctx context.Context, uid string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[uid]
	if !ok {
		return fmt.Errorf("user %s: %w", uid, ErrNotFound)
	}
	u.Rating.Participations++
	u.Rating.LastUpdated = at
	return nil
}

func (s *Memory) ListHackathons(ctx context.Context) ([]*models.Hackathon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hackathons := make([]*models.Hackathon, 0, len(s.hackathons))
	for _, h := range s.hackathons {
		cp := *h
		hackathons = append(hackathons, &cp)
	}
	sort.Slice(hackathons, func(i, j int) bool { return hackathons[i].ID < hackathons[j].ID })
	return hackathons, nil
}

func (s *Memory) GetHackathon(ctx context.Context, id string) (*models.Hackathon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hackathons[id]
	if !ok {
		return nil, fmt.Errorf("hackathon %s: %w", id, ErrNotFound)
	}
	cp := *h
	return &cp, nil
}

func (s *Memory) AddParticipant(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hackathons[id]
	if !ok {
		return fmt.Errorf("hackathon %s: %w", id, ErrNotFound)
	}
	h.Participants++
	return nil
}

func (s *Memory) ListJoined(ctx context.Context, uid string) ([]*models.JoinedHackathon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	joined := make([]*models.JoinedHackathon, 0, len(s.joined[uid]))
	for _, j := range s.joined[uid] {
		cp := *j
		joined = append(joined, &cp)
	}
	sort.Slice(joined, func(i, j int) bool { return joined[i].ID < joined[j].ID })
	return joined, nil
}

func (s *Memory) GetJoined(ctx context.Context, uid, hackathonID string) (*models.JoinedHackathon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.joined[uid][hackathonID]
	if !ok {
		return nil, fmt.Errorf("joined hackathon %s: %w", hackathonID, ErrNotFound)
	}
	cp := *j
	return &cp, nil
}

func (s *Memory) CreateJoined(ctx context.Context, uid string, rec *models.JoinedHackathon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.joined[uid] == nil {
		s.joined[uid] = make(map[string]*models.JoinedHackathon)
	}
	cp := *rec
	cp.ID = rec.HackathonID
	s.joined[uid][rec.HackathonID] = &cp
	return nil
}

func (s *Memory) GetProject(ctx context.Context, id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (s *Memory) SetProject(ctx context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *project
	s.projects[project.ID] = &cp
	return nil
}

func (s *Memory) UpdateProjectStatus(ctx context.Context, id string, upd *models.ProjectUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	upd.Apply(p)
	return nil
}
