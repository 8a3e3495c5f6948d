package handlers

import (
	"encoding/json"
	"net/http"

	"rentiBack/internal/models"
	"rentiBack/internal/services"
)

type FavoriteHandler struct {
	Service   *services.FavoriteService
	Inventory *services.InventoryService
}

// ToggleFavorite flips one car id in the ledger and returns the new set.
func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CarID models.CarID `json:"car_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.CarID == 0 {
		http.Error(w, "car_id is required", http.StatusBadRequest)
		return
	}

	set, err := h.Service.Toggle(r.Context(), req.CarID)
	if err != nil {
		http.Error(w, "Failed to update favorites", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(struct {
		Favorites []models.CarID `json:"favorites"`
	}{Favorites: set})
}

// GetFavorites resolves the ledger against the aggregated inventory.
func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.Inventory.AggregateInventory(r.Context())
	if err != nil {
		http.Error(w, "Failed to load inventory", http.StatusInternalServerError)
		return
	}
	cars, err := h.Service.Favorites(r.Context(), inventory)
	if err != nil {
		http.Error(w, "Failed to load favorites", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(models.CarListResponse{Cars: cars, Total: len(cars)})
}
