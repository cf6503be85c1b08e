package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/villacare/timekeeper-backend-go/internal/domain/pattern"
	"github.com/villacare/timekeeper-backend-go/internal/handler/http/response"
)

type PatternHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type patternHandlerImpl struct {
	catalog pattern.Catalog
}

func NewPatternHandler(catalog pattern.Catalog) PatternHandler {
	return &patternHandlerImpl{catalog: catalog}
}

// List handles GET /patterns
func (h *patternHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	patterns := h.catalog.List()

	responses := make([]pattern.ShiftPatternResponse, 0, len(patterns))
	for _, p := range patterns {
		responses = append(responses, pattern.MapToResponse(p))
	}

	response.Success(w, responses)
}

// Get handles GET /patterns/{id}
func (h *patternHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.catalog.Lookup(id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pattern.MapToResponse(p))
}
