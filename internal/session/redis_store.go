package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/legalneuro/backend/internal/models"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "quiz_session:"

// redisStore keeps quiz sessions in Redis as JSON documents with an expiry
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, ttl time.Duration) *redisStore {
	return &redisStore{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the stored quiz or ErrSessionNotFound
func (s *redisStore) Get(ctx context.Context, sessionID string) (*models.QuizSession, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var quiz models.QuizSession
	if err := json.Unmarshal(data, &quiz); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &quiz, nil
}

// Set stores the quiz replacing any previous one and refreshes the expiry
func (s *redisStore) Set(ctx context.Context, sessionID string, quiz *models.QuizSession) error {
	data, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}
