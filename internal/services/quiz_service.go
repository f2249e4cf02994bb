package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/legalneuro/backend/internal/models"
	"github.com/legalneuro/backend/internal/session"
	"go.uber.org/zap"
)

// QuizSessionStore is the interface that wraps methods for per-browser quiz storage
type QuizSessionStore interface {
	// Method Get retrieves the quiz of a session.
	//
	// session.ErrSessionNotFound is returned if the session has no quiz.
	Get(ctx context.Context, sessionID string) (*models.QuizSession, error)
	// Method Set stores the quiz of a session replacing the previous one.
	Set(ctx context.Context, sessionID string, quiz *models.QuizSession) error
}

type quizService struct {
	repo     WordsRepository
	sessions QuizSessionStore
	logger   *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(repo WordsRepository, sessions QuizSessionStore, logger *zap.Logger) *quizService {
	return &quizService{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

// Start begins a new quiz over all words of a category, overwriting any quiz of the session.
//
// models.ErrCategoryNotFound is returned if the category is absent or has no words.
func (s *quizService) Start(ctx context.Context, sessionID, category string) (*models.QuizSession, error) {
	dataset, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load dataset", zap.Error(err))
		return nil, fmt.Errorf("failed to load words: %w", err)
	}

	words, err := dataset.Words(category)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrCategoryNotFound, category)
	}

	quiz := models.NewQuizSession(category, words)
	if err := s.sessions.Set(ctx, sessionID, quiz); err != nil {
		s.logger.Error("failed to store quiz session", zap.Error(err))
		return nil, fmt.Errorf("failed to start quiz: %w", err)
	}

	return quiz, nil
}

// SubmitAnswer checks the answer to the current question of the session's quiz.
//
// If the quiz is finished or was never started, a result with Exhausted set is returned and nothing is stored.
func (s *quizService) SubmitAnswer(ctx context.Context, sessionID, answer string) (*models.AnswerResult, error) {
	quiz, err := s.getQuiz(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := quiz.Answer(answer)
	if result.Exhausted {
		return &result, nil
	}

	if err := s.sessions.Set(ctx, sessionID, quiz); err != nil {
		s.logger.Error("failed to store quiz session", zap.Error(err))
		return nil, fmt.Errorf("failed to submit answer: %w", err)
	}

	return &result, nil
}

// Results summarizes the session's quiz, an unknown session yields zero results
func (s *quizService) Results(ctx context.Context, sessionID string) (*models.QuizResults, error) {
	quiz, err := s.getQuiz(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	results := quiz.Results()
	return &results, nil
}

// getQuiz reads the quiz of a session, a missing quiz is returned as nil
func (s *quizService) getQuiz(ctx context.Context, sessionID string) (*models.QuizSession, error) {
	quiz, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, session.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("failed to read quiz session", zap.Error(err))
		return nil, fmt.Errorf("failed to read quiz session: %w", err)
	}
	return quiz, nil
}
