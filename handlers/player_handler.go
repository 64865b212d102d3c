package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(playerService services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// List serves the reconciled player view, narrowed by ?search=&status=&year=.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players := h.playerService.ListWithStatus(filterFromQuery(r))
	writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil)
}

func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.PlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil)
}

func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input models.PlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil)
}

func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.playerService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"message": "player deleted"}, nil)
}

func (h *PlayerHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.playerService.Refresh(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	players := h.playerService.ListWithStatus(filterFromQuery(r))
	writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil)
}
