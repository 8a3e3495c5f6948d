package services

import (
	"context"
	"errors"

	"rentiBack/internal/models"
	"rentiBack/internal/repositories"
)

// WalletService manages the simulated wallet balance. No real payment
// processing happens here, the balance is plain persisted state.
type WalletService struct {
	WalletRepo *repositories.WalletRepository
}

var errNonPositiveAmount = errors.New("amount must be positive")

func (s *WalletService) Balance(ctx context.Context) (float64, error) {
	return s.WalletRepo.Balance(ctx)
}

func (s *WalletService) TopUp(ctx context.Context, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, errNonPositiveAmount
	}
	balance, err := s.WalletRepo.Balance(ctx)
	if err != nil {
		return 0, err
	}
	balance += amount
	if err := s.WalletRepo.SaveBalance(ctx, balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// Charge deducts the amount, failing without a write when the balance does
// not cover it.
func (s *WalletService) Charge(ctx context.Context, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, errNonPositiveAmount
	}
	balance, err := s.WalletRepo.Balance(ctx)
	if err != nil {
		return 0, err
	}
	if balance < amount {
		return balance, models.ErrInsufficientFunds
	}
	balance -= amount
	if err := s.WalletRepo.SaveBalance(ctx, balance); err != nil {
		return 0, err
	}
	return balance, nil
}
