package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/services"
)

type CoachHandler struct {
	coachService services.CoachService
}

func NewCoachHandler(coachService services.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

func (h *CoachHandler) List(w http.ResponseWriter, r *http.Request) {
	coaches, stats := h.coachService.List(r.URL.Query().Get("search"))
	writeJSON(w, http.StatusOK, jsonResponse{
		"coaches": coaches,
		"stats":   stats,
	}, nil)
}

func (h *CoachHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.CoachInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	coach, err := h.coachService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"coach": coach}, nil)
}

func (h *CoachHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input models.CoachInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	coach, err := h.coachService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"coach": coach}, nil)
}

func (h *CoachHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.coachService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"message": "coach deleted"}, nil)
}
