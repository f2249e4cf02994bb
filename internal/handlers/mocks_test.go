package handlers

import (
	"context"

	"github.com/legalneuro/backend/internal/models"
)

// mockWordsService is a mock implementation of WordsService
type mockWordsService struct {
	dataset    *models.Dataset
	entry      *models.WordEntry
	err        error
	addErr     error
	deleteErr  error
	lastReq    models.WordRequest
	deletedCat string
	deletedEng string
	calls      []string
}

func (m *mockWordsService) GetAll(ctx context.Context) (*models.Dataset, error) {
	m.calls = append(m.calls, "GetAll")
	if m.err != nil {
		return nil, m.err
	}
	return m.dataset, nil
}

func (m *mockWordsService) GetCategories(ctx context.Context) ([]string, error) {
	m.calls = append(m.calls, "GetCategories")
	if m.err != nil {
		return nil, m.err
	}
	return m.dataset.Categories(), nil
}

func (m *mockWordsService) AddWord(ctx context.Context, req models.WordRequest) (*models.WordEntry, error) {
	m.calls = append(m.calls, "AddWord")
	m.lastReq = req
	if m.addErr != nil {
		return nil, m.addErr
	}
	return m.entry, nil
}

func (m *mockWordsService) DeleteWord(ctx context.Context, category, english string) error {
	m.calls = append(m.calls, "DeleteWord")
	m.deletedCat = category
	m.deletedEng = english
	return m.deleteErr
}

func (m *mockWordsService) DeleteCategory(ctx context.Context, category string) error {
	m.calls = append(m.calls, "DeleteCategory")
	m.deletedCat = category
	return m.deleteErr
}

// mockQuizService is a mock implementation of QuizService
type mockQuizService struct {
	quiz       *models.QuizSession
	result     *models.AnswerResult
	results    *models.QuizResults
	err        error
	sessionIDs []string
	category   string
	answer     string
}

func (m *mockQuizService) Start(ctx context.Context, sessionID, category string) (*models.QuizSession, error) {
	m.sessionIDs = append(m.sessionIDs, sessionID)
	m.category = category
	if m.err != nil {
		return nil, m.err
	}
	return m.quiz, nil
}

func (m *mockQuizService) SubmitAnswer(ctx context.Context, sessionID, answer string) (*models.AnswerResult, error) {
	m.sessionIDs = append(m.sessionIDs, sessionID)
	m.answer = answer
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockQuizService) Results(ctx context.Context, sessionID string) (*models.QuizResults, error) {
	m.sessionIDs = append(m.sessionIDs, sessionID)
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func testDataset() *models.Dataset {
	return models.NewDataset(
		models.Category{Name: "Уголовное право", Words: []models.Word{
			{Term: "crime", Translation: "преступление"},
			{Term: "penalty", Translation: "наказание"},
		}},
		models.Category{Name: "Contract Law", Words: []models.Word{
			{Term: "offer", Translation: "оферта"},
		}},
	)
}
