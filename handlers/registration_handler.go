package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/services"
)

type RegistrationHandler struct {
	registrationService services.RegistrationService
}

func NewRegistrationHandler(registrationService services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	regs, stats := h.registrationService.List(filterFromQuery(r))
	writeJSON(w, http.StatusOK, jsonResponse{
		"registrations": regs,
		"stats":         stats,
	}, nil)
}

func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.RegistrationInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	reg, err := h.registrationService.Save(r.Context(), input, "")
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"registration": reg}, nil)
}

func (h *RegistrationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input models.RegistrationInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	reg, err := h.registrationService.Save(r.Context(), input, id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"registration": reg}, nil)
}

func (h *RegistrationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.registrationService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"message": "registration deleted"}, nil)
}
