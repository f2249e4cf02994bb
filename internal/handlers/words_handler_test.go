package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
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

func newWordsRouter(svc WordsService) chi.Router {
	r := chi.NewRouter()
	NewWordsHandler(svc, zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestWordsHandler_GetWords(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"Уголовное право":{"crime":"преступление","penalty":"наказание"},"Contract Law":{"offer":"оферта"}}`,
		},
		{
			name:           "service error",
			err:            errors.New("disk failure"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to get words"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockWordsService{dataset: testDataset(), err: tt.err}
			router := newWordsRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/words", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestWordsHandler_GetWords_KeepsOrder(t *testing.T) {
	router := newWordsRouter(&mockWordsService{dataset: testDataset()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/words", nil))

	body := w.Body.String()
	require.Equal(t, http.StatusOK, w.Code)
	assert.Less(t, strings.Index(body, "Уголовное право"), strings.Index(body, "Contract Law"))
	assert.Less(t, strings.Index(body, "crime"), strings.Index(body, "penalty"))
}

func TestWordsHandler_UpsertWord(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		addErr         error
		expectedStatus int
		expectedBody   string
		expectedCall   bool
	}{
		{
			name:           "success",
			body:           `{"english":"Verdict","russian":"вердикт","category":"Уголовное право"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true}`,
			expectedCall:   true,
		},
		{
			name:           "validation error",
			body:           `{"english":"","russian":"вердикт","category":"Уголовное право"}`,
			addErr:         &services.ValidationError{Message: "Все поля обязательны для заполнения"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Все поля обязательны для заполнения"}`,
			expectedCall:   true,
		},
		{
			name:           "save error",
			body:           `{"english":"verdict","russian":"вердикт","category":"Уголовное право"}`,
			addErr:         errors.New("failed to save word: disk full"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to save word"}`,
			expectedCall:   true,
		},
		{
			name:           "invalid json",
			body:           `{"english":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockWordsService{
				dataset: testDataset(),
				entry:   &models.WordEntry{Category: "Уголовное право", Term: "verdict", Translation: "вердикт"},
				addErr:  tt.addErr,
			}
			router := newWordsRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/words", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			if tt.expectedCall {
				assert.Equal(t, []string{"AddWord"}, svc.calls)
			} else {
				assert.Empty(t, svc.calls)
			}
		})
	}
}

func TestWordsHandler_UpsertWord_PassesRequest(t *testing.T) {
	svc := &mockWordsService{entry: &models.WordEntry{}}
	router := newWordsRouter(svc)

	body := `{"english":"Verdict","russian":"вердикт","category":"Old","new_category":"New"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/words", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.WordRequest{English: "Verdict", Russian: "вердикт", Category: "Old", NewCategory: "New"}, svc.lastReq)
}

func TestWordsHandler_DeleteWord(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		deleteErr        error
		expectedStatus   int
		expectedBody     string
		expectedCalls    []string
		expectedCategory string
		expectedEnglish  string
	}{
		{
			name:             "delete word",
			body:             `{"category":"Contract Law","english":"offer"}`,
			expectedStatus:   http.StatusOK,
			expectedBody:     `{"success":true}`,
			expectedCalls:    []string{"DeleteWord"},
			expectedCategory: "Contract Law",
			expectedEnglish:  "offer",
		},
		{
			name:             "delete category",
			body:             `{"category":"Contract Law"}`,
			expectedStatus:   http.StatusOK,
			expectedBody:     `{"success":true}`,
			expectedCalls:    []string{"DeleteCategory"},
			expectedCategory: "Contract Law",
		},
		{
			name:             "empty english deletes category",
			body:             `{"category":"Contract Law","english":""}`,
			expectedStatus:   http.StatusOK,
			expectedBody:     `{"success":true}`,
			expectedCalls:    []string{"DeleteCategory"},
			expectedCategory: "Contract Law",
		},
		{
			name:             "service error",
			body:             `{"category":"Contract Law","english":"offer"}`,
			deleteErr:        errors.New("disk full"),
			expectedStatus:   http.StatusInternalServerError,
			expectedBody:     `{"error":"failed to delete"}`,
			expectedCalls:    []string{"DeleteWord"},
			expectedCategory: "Contract Law",
			expectedEnglish:  "offer",
		},
		{
			name:           "invalid json",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockWordsService{deleteErr: tt.deleteErr}
			router := newWordsRouter(svc)

			req := httptest.NewRequest(http.MethodDelete, "/api/words", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, tt.expectedCalls, svc.calls)
			assert.Equal(t, tt.expectedCategory, svc.deletedCat)
			assert.Equal(t, tt.expectedEnglish, svc.deletedEng)
		})
	}
}

// chunkedRequest builds a request whose body length is not declared up front
func chunkedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Body = io.NopCloser(strings.NewReader(body))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	return req
}

func TestWordsHandler_OversizedChunkedBody(t *testing.T) {
	body := `{"english":"` + strings.Repeat("a", 512) + `","russian":"иск","category":"Law"}`

	tests := []struct {
		name   string
		method string
	}{
		{name: "upsert", method: http.MethodPost},
		{name: "delete", method: http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockWordsService{dataset: testDataset()}
			router := middleware.RequestSizeLimitMiddleware(64)(newWordsRouter(svc))

			req := chunkedRequest(tt.method, "/api/words", body)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
			assert.JSONEq(t, `{"error":"request body too large"}`, w.Body.String())
			assert.Empty(t, svc.calls)
		})
	}
}

func TestHealthHandler(t *testing.T) {
	r := chi.NewRouter()
	NewHealthHandler(zap.NewNop()).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
