package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rentiBack/internal/models"
	"rentiBack/internal/services"
)

type CarHandler struct {
	Inventory *services.InventoryService
}

func (h *CarHandler) GetCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Inventory.AggregateInventory(r.Context())
	if err != nil {
		http.Error(w, "Failed to load inventory", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(models.CarListResponse{Cars: cars, Total: len(cars)})
}

func (h *CarHandler) GetFilteredCars(w http.ResponseWriter, r *http.Request) {
	var req models.CarFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cars, err := h.Inventory.AggregateInventory(r.Context())
	if err != nil {
		http.Error(w, "Failed to load inventory", http.StatusInternalServerError)
		return
	}
	filtered := services.FilterCars(cars, req)
	json.NewEncoder(w).Encode(models.CarListResponse{Cars: filtered, Total: len(filtered)})
}

func (h *CarHandler) GetCarByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	if idStr == "" {
		http.Error(w, "Missing car ID", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "Invalid car ID", http.StatusBadRequest)
		return
	}

	car, err := h.Inventory.CarByID(r.Context(), models.CarID(id))
	if err != nil {
		if errors.Is(err, models.ErrCarNotFound) {
			http.Error(w, "Car not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(car)
}

// GetMapCars serves the subset of the inventory that carries coordinates.
func (h *CarHandler) GetMapCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Inventory.MapCars(r.Context())
	if err != nil {
		http.Error(w, "Failed to load inventory", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(models.CarListResponse{Cars: cars, Total: len(cars)})
}
