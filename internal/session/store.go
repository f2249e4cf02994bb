// Package session provides per-browser storage for quiz progress
package session

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/legalneuro/backend/internal/models"
)

// ErrSessionNotFound is returned when no quiz is stored for a session id or it has expired
var ErrSessionNotFound = errors.New("session not found")

type memoryEntry struct {
	quiz      models.QuizSession
	expiresAt time.Time
}

// memoryStore keeps quiz sessions in process memory
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates a store which forgets sessions ttl after their last update
func NewMemoryStore(ttl time.Duration) *memoryStore {
	return &memoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns a copy of the stored quiz or ErrSessionNotFound
func (s *memoryStore) Get(ctx context.Context, sessionID string) (*models.QuizSession, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok || !s.now().Before(entry.expiresAt) {
		return nil, ErrSessionNotFound
	}
	return copyQuiz(&entry.quiz), nil
}

// Set stores a copy of the quiz replacing any previous one, expired sessions are dropped on the way
func (s *memoryStore) Set(ctx context.Context, sessionID string, quiz *models.QuizSession) error {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, id)
		}
	}
	s.sessions[sessionID] = memoryEntry{
		quiz:      *copyQuiz(quiz),
		expiresAt: now.Add(s.ttl),
	}
	return nil
}

func copyQuiz(quiz *models.QuizSession) *models.QuizSession {
	c := *quiz
	c.Items = slices.Clone(quiz.Items)
	return &c
}
