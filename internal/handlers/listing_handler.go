package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rentiBack/internal/models"
	"rentiBack/internal/repositories"
	"rentiBack/internal/services"
)

type ListingHandler struct {
	Service *services.ListingService
	CarRepo *repositories.CarRepository
}

func (h *ListingHandler) GetMyCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.CarRepo.ListMyCars(r.Context())
	if err != nil {
		http.Error(w, "Failed to load listings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(models.CarListResponse{Cars: cars, Total: len(cars)})
}

func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req services.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Brand == "" || req.Model == "" || req.PricePerDay <= 0 {
		http.Error(w, "brand, model and price_per_day are required", http.StatusBadRequest)
		return
	}

	car, err := h.Service.CreateListing(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(car)
}

func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	id, ok := listingID(w, r)
	if !ok {
		return
	}

	var patch models.ListingPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	car, err := h.Service.UpdateListing(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, models.ErrCarNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(car)
}

func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	id, ok := listingID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteListing(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrCarNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func listingID(w http.ResponseWriter, r *http.Request) (models.CarID, bool) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing listing ID", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return 0, false
	}
	return models.CarID(id), true
}
