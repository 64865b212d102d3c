package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/services"
)

type SubscriptionHandler struct {
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, stats := h.subscriptionService.List(filterFromQuery(r))
	writeJSON(w, http.StatusOK, jsonResponse{
		"subscriptions": subs,
		"stats":         stats,
	}, nil)
}

func (h *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.SubscriptionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sub, err := h.subscriptionService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, jsonResponse{"subscription": sub}, nil)
}

func (h *SubscriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input models.SubscriptionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sub, err := h.subscriptionService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"subscription": sub}, nil)
}

func (h *SubscriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.subscriptionService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"message": "subscription deleted"}, nil)
}
