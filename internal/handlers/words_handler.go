package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/legalneuro/backend/internal/models"
	"github.com/legalneuro/backend/internal/services"
	"go.uber.org/zap"
)

// WordsService is the interface that wraps methods for vocabulary business logic.
type WordsService interface {
	// Method GetAll retrieve the whole vocabulary using configured repository.
	//
	// Categories and words keep their stored order.
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) (*models.Dataset, error)
	// Method GetCategories retrieve category names in their stored order.
	//
	// Please reference GetAll method for more information about error values.
	GetCategories(ctx context.Context) ([]string, error)
	// Method AddWord insert a new word or update the translation of an existing one.
	//
	// "req" must carry English and Russian values and a category (NewCategory takes precedence over Category).
	// If validation fails, *services.ValidationError with a user facing message is returned and nothing is stored.
	// On success the normalized entry is returned.
	AddWord(ctx context.Context, req models.WordRequest) (*models.WordEntry, error)
	// Method DeleteWord remove a word from a category, the category is removed when it becomes empty.
	//
	// Missing categories and words are not an error.
	DeleteWord(ctx context.Context, category, english string) error
	// Method DeleteCategory remove a category with all of its words.
	//
	// A missing category is not an error.
	DeleteCategory(ctx context.Context, category string) error
}

// WordsHandler handles the JSON vocabulary API
type WordsHandler struct {
	BaseHandler
	service WordsService
}

// NewWordsHandler creates a new words API handler
func NewWordsHandler(svc WordsService, logger *zap.Logger) *WordsHandler {
	return &WordsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all words API routes
func (h *WordsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/words", func(r chi.Router) {
		r.Get("/", h.GetWords)
		r.Post("/", h.UpsertWord)
		r.Delete("/", h.DeleteWord)
	})
}

// GetWords handles GET /api/words
// @Summary Get all words
// @Description Get the whole vocabulary as an object of categories, each mapping English terms to Russian translations
// @Tags words
// @Produce json
// @Success 200 {object} map[string]map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/words [get]
func (h *WordsHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	dataset, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to get words", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get words")
		return
	}

	h.respondJSON(w, http.StatusOK, dataset)
}

// UpsertWord handles POST /api/words
// @Summary Add or update a word
// @Description Add a word to a category or replace the translation of an existing word, a missing category is created
// @Tags words
// @Accept json
// @Produce json
// @Param request body models.WordRequest true "Word to store"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/words [post]
func (h *WordsHandler) UpsertWord(w http.ResponseWriter, r *http.Request) {
	var req models.WordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.service.AddWord(r.Context(), req); err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			h.respondError(w, http.StatusBadRequest, validationErr.Message)
			return
		}
		h.logger.Error("failed to save word", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to save word")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteWord handles DELETE /api/words
// @Summary Delete a word or a category
// @Description Delete a word when "english" is set, otherwise delete the whole category. Missing entries are ignored.
// @Tags words
// @Accept json
// @Produce json
// @Param request body models.DeleteWordRequest true "Entry to delete"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/words [delete]
func (h *WordsHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteWordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	var err error
	if req.English != "" {
		err = h.service.DeleteWord(r.Context(), req.Category, req.English)
	} else {
		err = h.service.DeleteCategory(r.Context(), req.Category)
	}
	if err != nil {
		h.logger.Error("failed to delete", zap.Error(err), zap.String("category", req.Category))
		h.respondError(w, http.StatusInternalServerError, "failed to delete")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
