// Package store provides the persistent key-value storage the marketplace
// state lives in. Values are JSON documents under a fixed set of logical
// keys; consumers decode defensively and treat missing or corrupt data as
// empty.
package store

import (
	"context"
	"errors"
)

// Logical keys. Everything the marketplace persists lives under one of these.
const (
	KeyAuthFlag    = "isAuthenticated"
	KeyUserProfile = "userProfile"
	KeyMyCars      = "myCars"
	KeyFavorites   = "favorites"
	KeyWallet      = "walletBalance"
)

// ErrNoKey is returned by Get when the key has never been written or was
// removed.
var ErrNoKey = errors.New("store: no such key")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
