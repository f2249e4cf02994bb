package handlers

import (
	"errors"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/legalneuro/backend/internal/middleware"
	"github.com/legalneuro/backend/internal/models"
	"github.com/legalneuro/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPagesRouter(svc WordsService) chi.Router {
	r := chi.NewRouter()
	NewPagesHandler(svc, zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestPagesHandler_Render(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		err            error
		expectedStatus int
		contains       []string
	}{
		{
			name:           "index",
			path:           "/",
			expectedStatus: http.StatusOK,
			contains:       []string{"Legal Neuro Trainer", `href="/testing"`},
		},
		{
			name:           "encyclopedia",
			path:           "/encyclopedia",
			expectedStatus: http.StatusOK,
			contains:       []string{"Уголовное право", "crime", "преступление", "Contract Law", "оферта"},
		},
		{
			name:           "testing",
			path:           "/testing",
			expectedStatus: http.StatusOK,
			contains:       []string{`href="/test/` + url.PathEscape("Уголовное право") + `"`, `href="/test/Contract%20Law"`},
		},
		{
			name:           "add word form",
			path:           "/add_word",
			expectedStatus: http.StatusOK,
			contains:       []string{`<option value="Contract Law">`, `name="new_category"`},
		},
		{
			name:           "edit words",
			path:           "/edit_words",
			expectedStatus: http.StatusOK,
			contains:       []string{`data-english="penalty"`, `value="наказание"`, "/api/words"},
		},
		{
			name:           "encyclopedia service error",
			path:           "/encyclopedia",
			err:            errors.New("disk failure"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "testing service error",
			path:           "/testing",
			err:            errors.New("disk failure"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPagesRouter(&mockWordsService{dataset: testDataset(), err: tt.err})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			}
			for _, s := range tt.contains {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestPagesHandler_Encyclopedia_KeepsOrder(t *testing.T) {
	router := newPagesRouter(&mockWordsService{dataset: testDataset()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/encyclopedia", nil))

	body := w.Body.String()
	require.Equal(t, http.StatusOK, w.Code)
	assert.Less(t, strings.Index(body, "Уголовное право"), strings.Index(body, "Contract Law"))
	assert.Less(t, strings.Index(body, "crime"), strings.Index(body, "penalty"))
}

func TestPagesHandler_Encyclopedia_Empty(t *testing.T) {
	router := newPagesRouter(&mockWordsService{dataset: models.NewDataset()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/encyclopedia", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Словарь пуст.")
}

func TestPagesHandler_AddWord(t *testing.T) {
	tests := []struct {
		name           string
		form           url.Values
		addErr         error
		expectedStatus int
		contains       string
	}{
		{
			name:           "success",
			form:           url.Values{"english": {"Verdict"}, "russian": {"вердикт"}, "category": {"Уголовное право"}},
			expectedStatus: http.StatusOK,
			contains:       html.EscapeString("Слово 'verdict' добавлено в категорию 'Уголовное право'"),
		},
		{
			name:           "missing fields",
			form:           url.Values{"english": {""}, "russian": {"вердикт"}, "category": {"Уголовное право"}},
			addErr:         &services.ValidationError{Message: "Все поля обязательны для заполнения"},
			expectedStatus: http.StatusOK,
			contains:       "Все поля обязательны для заполнения",
		},
		{
			name:           "missing category",
			form:           url.Values{"english": {"verdict"}, "russian": {"вердикт"}},
			addErr:         &services.ValidationError{Message: "Необходимо выбрать или создать категорию"},
			expectedStatus: http.StatusOK,
			contains:       "Необходимо выбрать или создать категорию",
		},
		{
			name:           "save error",
			form:           url.Values{"english": {"verdict"}, "russian": {"вердикт"}, "category": {"Уголовное право"}},
			addErr:         errors.New("failed to save word: disk full"),
			expectedStatus: http.StatusInternalServerError,
			contains:       "failed to save word",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockWordsService{
				dataset: testDataset(),
				entry:   &models.WordEntry{Category: "Уголовное право", Term: "verdict", Translation: "вердикт"},
				addErr:  tt.addErr,
			}
			router := newPagesRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/add_word", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.Equal(t, tt.form.Get("english"), svc.lastReq.English)
			assert.Equal(t, tt.form.Get("category"), svc.lastReq.Category)
		})
	}
}

func TestPagesHandler_AddWord_OversizedChunkedForm(t *testing.T) {
	svc := &mockWordsService{dataset: testDataset()}
	router := middleware.RequestSizeLimitMiddleware(64)(newPagesRouter(svc))

	form := url.Values{"english": {strings.Repeat("a", 256)}, "russian": {"иск"}, "category": {"Law"}}
	req := chunkedRequest(http.MethodPost, "/add_word", form.Encode())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "request body too large")
	assert.NotContains(t, svc.calls, "AddWord")
}

func TestPagesHandler_AddWord_NewCategoryField(t *testing.T) {
	svc := &mockWordsService{
		dataset: testDataset(),
		entry:   &models.WordEntry{Category: "Налоговое право", Term: "tax", Translation: "налог"},
	}
	router := newPagesRouter(svc)

	form := url.Values{"english": {"tax"}, "russian": {"налог"}, "category": {"Contract Law"}, "new_category": {"Налоговое право"}}
	req := httptest.NewRequest(http.MethodPost, "/add_word", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Налоговое право", svc.lastReq.NewCategory)
	assert.Equal(t, "Contract Law", svc.lastReq.Category)
	assert.Contains(t, w.Body.String(), html.EscapeString("Слово 'tax' добавлено в категорию 'Налоговое право'"))
}
