package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/services"
)

type UniformHandler struct {
	uniformService services.UniformService
}

func NewUniformHandler(uniformService services.UniformService) *UniformHandler {
	return &UniformHandler{uniformService: uniformService}
}

func (h *UniformHandler) List(w http.ResponseWriter, r *http.Request) {
	uniforms, stats := h.uniformService.List(filterFromQuery(r))
	writeJSON(w, http.StatusOK, jsonResponse{
		"uniforms": uniforms,
		"stats":    stats,
	}, nil)
}

func (h *UniformHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.UniformInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	uniform, err := h.uniformService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"uniform": uniform}, nil)
}

func (h *UniformHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input models.UniformInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	uniform, err := h.uniformService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"uniform": uniform}, nil)
}

func (h *UniformHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.uniformService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"message": "uniform order deleted"}, nil)
}
