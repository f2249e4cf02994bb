package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/legalneuro/backend/internal/models"
	"go.uber.org/zap"
)

// Validation messages shown to the user
const (
	msgRequiredFields   = "Все поля обязательны для заполнения"
	msgCategoryRequired = "Необходимо выбрать или создать категорию"
)

// WordsRepository is the interface that wraps methods for vocabulary dataset storage
type WordsRepository interface {
	// Method Load reads the whole dataset from storage.
	//
	// If storage is empty or corrupt, the default dataset is returned instead.
	// An error is returned only if storage can not be initialized.
	Load(ctx context.Context) (*models.Dataset, error)
	// Method Save overwrites storage with the whole dataset.
	//
	// If some error occurs during the write, the error will be returned.
	Save(ctx context.Context, dataset *models.Dataset) error
}

// ValidationError is returned for user input which can not be stored
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type wordsService struct {
	repo   WordsRepository
	logger *zap.Logger
}

// NewWordsService creates a new words service
func NewWordsService(repo WordsRepository, logger *zap.Logger) *wordsService {
	return &wordsService{
		repo:   repo,
		logger: logger,
	}
}

// GetAll retrieves the whole dataset
func (s *wordsService) GetAll(ctx context.Context) (*models.Dataset, error) {
	dataset, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load dataset", zap.Error(err))
		return nil, fmt.Errorf("failed to load words: %w", err)
	}
	return dataset, nil
}

// GetCategories retrieves category names in their stored order
func (s *wordsService) GetCategories(ctx context.Context) ([]string, error) {
	dataset, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.Categories(), nil
}

// AddWord inserts or updates a word.
//
// English and Russian must not be blank, the category is NewCategory if set, otherwise Category.
// The English term is stored lower-cased and a missing category is created.
// A *ValidationError is returned for invalid input, nothing is stored in that case.
func (s *wordsService) AddWord(ctx context.Context, req models.WordRequest) (*models.WordEntry, error) {
	entry, err := validateWordRequest(req)
	if err != nil {
		return nil, err
	}

	dataset, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dataset.UpsertWord(entry.Category, entry.Term, entry.Translation)

	if err := s.repo.Save(ctx, dataset); err != nil {
		s.logger.Error("failed to save dataset", zap.Error(err), zap.String("category", entry.Category))
		return nil, fmt.Errorf("failed to save word: %w", err)
	}

	return entry, nil
}

// DeleteWord removes a word, its category is removed as well when it becomes empty.
// Missing categories and words are ignored.
func (s *wordsService) DeleteWord(ctx context.Context, category, english string) error {
	dataset, err := s.GetAll(ctx)
	if err != nil {
		return err
	}

	dataset.DeleteWord(category, english)

	if err := s.repo.Save(ctx, dataset); err != nil {
		s.logger.Error("failed to save dataset", zap.Error(err), zap.String("category", category))
		return fmt.Errorf("failed to delete word: %w", err)
	}
	return nil
}

// DeleteCategory removes a category with all of its words, a missing category is ignored
func (s *wordsService) DeleteCategory(ctx context.Context, category string) error {
	dataset, err := s.GetAll(ctx)
	if err != nil {
		return err
	}

	dataset.DeleteCategory(category)

	if err := s.repo.Save(ctx, dataset); err != nil {
		s.logger.Error("failed to save dataset", zap.Error(err), zap.String("category", category))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// validateWordRequest normalizes the request and checks the required fields
func validateWordRequest(req models.WordRequest) (*models.WordEntry, error) {
	english := strings.ToLower(strings.TrimSpace(req.English))
	russian := strings.TrimSpace(req.Russian)
	if english == "" || russian == "" {
		return nil, &ValidationError{Message: msgRequiredFields}
	}

	category := strings.TrimSpace(req.NewCategory)
	if category == "" {
		category = strings.TrimSpace(req.Category)
	}
	if category == "" {
		return nil, &ValidationError{Message: msgCategoryRequired}
	}

	return &models.WordEntry{
		Category:    category,
		Term:        english,
		Translation: russian,
	}, nil
}
