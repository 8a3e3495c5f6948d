package repositories

import (
	"context"
	"fmt"
	"strconv"

	"rentiBack/internal/store"
)

// WalletRepository persists the simulated wallet balance as one JSON number.
type WalletRepository struct {
	Store store.Store
}

// Balance defaults to zero on missing or corrupt data.
func (r *WalletRepository) Balance(ctx context.Context) (float64, error) {
	raw, err := r.Store.Get(ctx, store.KeyWallet)
	if err != nil {
		return 0, nil
	}
	balance, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, nil
	}
	return balance, nil
}

func (r *WalletRepository) SaveBalance(ctx context.Context, balance float64) error {
	value := strconv.FormatFloat(balance, 'f', -1, 64)
	if err := r.Store.Set(ctx, store.KeyWallet, value); err != nil {
		return fmt.Errorf("wallet repository: write balance: %w", err)
	}
	return nil
}
