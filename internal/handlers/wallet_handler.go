package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentiBack/internal/models"
	"rentiBack/internal/services"
)

type WalletHandler struct {
	Service *services.WalletService
}

type walletResponse struct {
	Balance float64 `json:"balance"`
}

func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.Service.Balance(r.Context())
	if err != nil {
		http.Error(w, "Failed to read balance", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(walletResponse{Balance: balance})
}

func (h *WalletHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	amount, ok := walletAmount(w, r)
	if !ok {
		return
	}
	balance, err := h.Service.TopUp(r.Context(), amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(walletResponse{Balance: balance})
}

func (h *WalletHandler) Charge(w http.ResponseWriter, r *http.Request) {
	amount, ok := walletAmount(w, r)
	if !ok {
		return
	}
	balance, err := h.Service.Charge(r.Context(), amount)
	if err != nil {
		if errors.Is(err, models.ErrInsufficientFunds) {
			http.Error(w, "Insufficient balance", http.StatusPaymentRequired)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(walletResponse{Balance: balance})
}

func walletAmount(w http.ResponseWriter, r *http.Request) (float64, bool) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return 0, false
	}
	if req.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return 0, false
	}
	return req.Amount, true
}
