package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/villacare/timekeeper-backend-go/internal/domain/punch"
	"github.com/villacare/timekeeper-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{punchService: punchService}
}

// Upsert handles PUT /punches
func (h *punchHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req punch.UpsertPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.punchService.UpsertPunch(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch recorded", result)
}

// Get handles GET /punches/{id}
func (h *punchHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	result, err := h.punchService.GetPunch(ctx, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List handles GET /punches
func (h *punchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id parameter is required", nil)
		return
	}

	result, err := h.punchService.ListPunches(ctx, employeeID,
		r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete handles DELETE /punches/{id}
func (h *punchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.punchService.DeletePunch(ctx, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch deleted", nil)
}
