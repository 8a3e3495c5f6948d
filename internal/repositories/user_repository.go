package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"rentiBack/internal/models"
	"rentiBack/internal/store"
)

// UserRepository persists the user profile and the auth flag.
type UserRepository struct {
	Store store.Store
}

func (r *UserRepository) GetProfile(ctx context.Context) (models.UserProfile, error) {
	raw, err := r.Store.Get(ctx, store.KeyUserProfile)
	if errors.Is(err, store.ErrNoKey) {
		return models.UserProfile{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("user repository: read profile: %w", err)
	}
	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return models.UserProfile{}, models.ErrUserNotFound
	}
	return profile, nil
}

func (r *UserRepository) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("user repository: encode profile: %w", err)
	}
	if err := r.Store.Set(ctx, store.KeyUserProfile, string(data)); err != nil {
		return fmt.Errorf("user repository: write profile: %w", err)
	}
	return nil
}

// AuthFlag reports the persisted auth gate. Anything but a stored "true" is
// treated as signed out.
func (r *UserRepository) AuthFlag(ctx context.Context) bool {
	raw, err := r.Store.Get(ctx, store.KeyAuthFlag)
	if err != nil {
		return false
	}
	var flag bool
	if err := json.Unmarshal([]byte(raw), &flag); err != nil {
		return false
	}
	return flag
}

func (r *UserRepository) SetAuthFlag(ctx context.Context, signedIn bool) error {
	if err := r.Store.Set(ctx, store.KeyAuthFlag, fmt.Sprintf("%t", signedIn)); err != nil {
		return fmt.Errorf("user repository: write auth flag: %w", err)
	}
	return nil
}
