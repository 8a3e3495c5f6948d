package services

import (
	"context"
	"errors"
	"testing"

	"rentiBack/internal/models"
	"rentiBack/internal/repositories"
	"rentiBack/internal/store"
)

func TestWalletService(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	svc := &WalletService{WalletRepo: &repositories.WalletRepository{Store: mem}}

	balance, err := svc.Balance(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if balance != 0 {
		t.Fatalf("fresh wallet should be empty, got %v", balance)
	}

	if _, err := svc.TopUp(ctx, -10); err == nil {
		t.Fatal("negative top-up must fail")
	}

	balance, err = svc.TopUp(ctx, 500)
	if err != nil {
		t.Fatal(err)
	}
	if balance != 500 {
		t.Fatalf("balance = %v, want 500", balance)
	}

	if _, err := svc.Charge(ctx, 600); !errors.Is(err, models.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	balance, err = svc.Charge(ctx, 200)
	if err != nil {
		t.Fatal(err)
	}
	if balance != 300 {
		t.Fatalf("balance = %v, want 300", balance)
	}
}

func TestWalletCorruptBalanceDefaultsToZero(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	if err := mem.Set(ctx, store.KeyWallet, `"oops"`); err != nil {
		t.Fatal(err)
	}
	svc := &WalletService{WalletRepo: &repositories.WalletRepository{Store: mem}}

	balance, err := svc.Balance(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if balance != 0 {
		t.Fatalf("corrupt balance should read as 0, got %v", balance)
	}
}
