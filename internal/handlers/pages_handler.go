package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/legalneuro/backend/internal/models"
	"github.com/legalneuro/backend/internal/services"
	"go.uber.org/zap"
)

// PagesHandler serves the browsing and editing pages
type PagesHandler struct {
	BaseHandler
	service WordsService
}

// NewPagesHandler creates a new pages handler
func NewPagesHandler(svc WordsService, logger *zap.Logger) *PagesHandler {
	return &PagesHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all page routes
func (h *PagesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/encyclopedia", h.Encyclopedia)
	r.Get("/testing", h.Testing)
	r.Get("/add_word", h.AddWordForm)
	r.Post("/add_word", h.AddWord)
	r.Get("/edit_words", h.EditWords)
}

// Index handles GET /
func (h *PagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, pageIndex, nil)
}

// Encyclopedia handles GET /encyclopedia
func (h *PagesHandler) Encyclopedia(w http.ResponseWriter, r *http.Request) {
	h.renderDataset(w, r, pageEncyclopedia)
}

// EditWords handles GET /edit_words
func (h *PagesHandler) EditWords(w http.ResponseWriter, r *http.Request) {
	h.renderDataset(w, r, pageEditWords)
}

// Testing handles GET /testing
func (h *PagesHandler) Testing(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to get categories", zap.Error(err))
		http.Error(w, "failed to get categories", http.StatusInternalServerError)
		return
	}

	h.renderPage(w, http.StatusOK, pageTesting, testingPage{Categories: categories})
}

// AddWordForm handles GET /add_word
func (h *PagesHandler) AddWordForm(w http.ResponseWriter, r *http.Request) {
	h.renderAddWord(w, r, addWordPage{})
}

// AddWord handles POST /add_word
//
// Validation problems are shown on the form, a stored word is confirmed with a success message.
func (h *PagesHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	req := models.WordRequest{
		English:     r.PostFormValue("english"),
		Russian:     r.PostFormValue("russian"),
		Category:    r.PostFormValue("category"),
		NewCategory: r.PostFormValue("new_category"),
	}

	entry, err := h.service.AddWord(r.Context(), req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			h.renderAddWord(w, r, addWordPage{Error: validationErr.Message})
			return
		}
		h.logger.Error("failed to add word", zap.Error(err))
		http.Error(w, "failed to save word", http.StatusInternalServerError)
		return
	}

	h.renderAddWord(w, r, addWordPage{
		Success: fmt.Sprintf("Слово '%s' добавлено в категорию '%s'", entry.Term, entry.Category),
	})
}

func (h *PagesHandler) renderAddWord(w http.ResponseWriter, r *http.Request, data addWordPage) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to get categories", zap.Error(err))
		http.Error(w, "failed to get categories", http.StatusInternalServerError)
		return
	}

	data.Categories = categories
	h.renderPage(w, http.StatusOK, pageAddWord, data)
}

func (h *PagesHandler) renderDataset(w http.ResponseWriter, r *http.Request, page string) {
	dataset, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to get words", zap.Error(err))
		http.Error(w, "failed to get words", http.StatusInternalServerError)
		return
	}

	h.renderPage(w, http.StatusOK, page, encyclopediaPage{Categories: dataset.All()})
}
