package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/legalneuro/backend/internal/middleware"
	"github.com/legalneuro/backend/internal/models"
	"go.uber.org/zap"
)

// QuizService is the interface that wraps methods for quiz business logic.
type QuizService interface {
	// Method Start begin a new quiz over all words of "category" for the browser session "sessionID".
	//
	// A previous quiz of the session is replaced.
	// If the category is absent or empty, models.ErrCategoryNotFound is returned.
	Start(ctx context.Context, sessionID, category string) (*models.QuizSession, error)
	// Method SubmitAnswer check "answer" against the current question of the session's quiz.
	//
	// If the quiz is finished or was never started, the result has Exhausted set.
	SubmitAnswer(ctx context.Context, sessionID, answer string) (*models.AnswerResult, error)
	// Method Results summarize the session's quiz, a session without a quiz yields zero results.
	Results(ctx context.Context, sessionID string) (*models.QuizResults, error)
}

// QuizHandler handles quiz pages and answers
type QuizHandler struct {
	BaseHandler
	service QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(svc QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all quiz routes behind the session middleware
func (h *QuizHandler) RegisterRoutes(r chi.Router, sessionMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Get("/test/{category}", h.StartTest)
		r.Post("/check_answer", h.CheckAnswer)
		r.Get("/results", h.Results)
	})
}

// StartTest handles GET /test/{category}
//
// An unknown or empty category redirects back to the category picker.
func (h *QuizHandler) StartTest(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	category := pathParam(r, "category")

	quiz, err := h.service.Start(r.Context(), sessionID, category)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			http.Redirect(w, r, "/testing", http.StatusFound)
			return
		}
		h.logger.Error("failed to start quiz", zap.Error(err), zap.String("category", category))
		http.Error(w, "failed to start quiz", http.StatusInternalServerError)
		return
	}

	terms := make([]string, 0, len(quiz.Items))
	for _, item := range quiz.Items {
		terms = append(terms, item.Term)
	}

	h.renderPage(w, http.StatusOK, pageTest, testPage{
		Category: quiz.Category,
		Total:    quiz.Total(),
		Current:  quiz.Current(),
		Terms:    terms,
	})
}

// CheckAnswer handles POST /check_answer
// @Summary Check a quiz answer
// @Description Check the answer to the current question of the browser session's quiz. Answers are compared ignoring case and surrounding spaces. When there is nothing left to answer only {"finished": true} is returned.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body models.AnswerRequest true "Answer"
// @Success 200 {object} models.AnswerResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /check_answer [post]
func (h *QuizHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req models.AnswerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), sessionID, req.Answer)
	if err != nil {
		h.logger.Error("failed to check answer", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to check answer")
		return
	}

	if result.Exhausted {
		h.respondJSON(w, http.StatusOK, map[string]bool{"finished": true})
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// Results handles GET /results
func (h *QuizHandler) Results(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	results, err := h.service.Results(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to get results", zap.Error(err))
		http.Error(w, "failed to get results", http.StatusInternalServerError)
		return
	}

	h.renderPage(w, http.StatusOK, pageResults, results)
}

// sessionID reads the browser session set by the session middleware
func (h *QuizHandler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("request without session", zap.String("path", r.URL.Path))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
	return id, ok
}

// pathParam returns a decoded URL parameter, chi matches on the raw path when it holds escapes like %2F
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(value); err == nil {
			return unescaped
		}
	}
	return value
}
