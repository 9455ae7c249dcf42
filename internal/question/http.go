package question

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandler exposes the trivia REST endpoints.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs the trivia HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// Register mounts the trivia routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", h.ListCategories)
	mux.HandleFunc("GET /categories/{id}/questions", h.QuestionsByCategory)
	mux.HandleFunc("GET /questions", h.ListQuestions)
	mux.HandleFunc("POST /questions", h.CreateOrSearch)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("POST /quizzes", h.Quiz)
}

// ListCategories handles GET /categories
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.fail(r, err, "list categories failed")
		httperrors.RespondBadRequest(w)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

// ListQuestions handles GET /questions?page=N
func (h *HTTPHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.fail(r, err, "list questions failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":         true,
		"questions":       listing.Questions,
		"total_questions": listing.Total,
		"categories":      listing.Categories,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := intPathValue(r, "id")
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	deletion, err := h.svc.DeleteQuestion(r.Context(), id, pageParam(r))
	if err != nil {
		// unknown ids are reported as 422 like every other delete failure
		h.fail(r, err, "delete question failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":         true,
		"deleted":         deletion.Deleted,
		"questions":       deletion.Questions,
		"total_questions": deletion.Total,
	})
}

// CreateOrSearch handles POST /questions. A non-empty searchTerm searches;
// anything else creates.
func (h *HTTPHandler) CreateOrSearch(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(r, err, "invalid question payload")
		httperrors.RespondUnprocessable(w)
		return
	}

	page := pageParam(r)
	if req.SearchTerm != "" {
		found, err := h.svc.SearchQuestions(r.Context(), req.SearchTerm, page)
		if err != nil {
			h.fail(r, err, "search questions failed")
			httperrors.RespondUnprocessable(w)
			return
		}
		writeJSON(w, map[string]interface{}{
			"success":         true,
			"search":          true,
			"questions":       found.Questions,
			"total_questions": found.Total,
		})
		return
	}

	created, err := h.svc.CreateQuestion(r.Context(), req, page)
	if err != nil {
		h.fail(r, err, "create question failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":         true,
		"id":              created.ID,
		"questions":       created.Questions,
		"total_questions": created.Total,
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions
func (h *HTTPHandler) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := intPathValue(r, "id")
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	result, err := h.svc.QuestionsByCategory(r.Context(), categoryID, pageParam(r))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w)
			return
		}
		h.fail(r, err, "list category questions failed")
		httperrors.RespondUnprocessable(w)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
		"currentCategory": result.CurrentCategory,
	})
}

// Quiz handles POST /quizzes
func (h *HTTPHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(r, err, "invalid quiz payload")
		httperrors.RespondUnprocessable(w)
		return
	}
	if req.PreviousQuestions == nil || req.QuizCategory == nil {
		httperrors.RespondNotFound(w)
		return
	}

	previous := make([]int, 0, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		previous = append(previous, int(id))
	}

	pick, err := h.svc.NextQuizQuestion(r.Context(), previous, int(req.QuizCategory.ID))
	if err != nil {
		if !errors.Is(err, ErrNoEligibleQuestion) {
			h.fail(r, err, "quiz draw failed")
		}
		httperrors.RespondUnprocessable(w)
		return
	}
	writeJSON(w, map[string]interface{}{
		"success":            true,
		"question":           pick.Question,
		"previous_questions": pick.PreviousQuestions,
	})
}

func (h *HTTPHandler) fail(r *http.Request, err error, msg string) {
	logger := logging.FromContext(r.Context())
	if logger.GetLevel() == zerolog.Disabled {
		logger = h.logger
	}
	logger.Warn().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg(msg)
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func pageParam(r *http.Request) int {
	return ParsePage(r.URL.Query().Get("page"))
}

func intPathValue(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
