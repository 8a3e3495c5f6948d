package models

import (
	"errors"
)

var (
	ErrCarNotFound        = errors.New("models: car not found")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrInvalidNationalID  = errors.New("models: invalid national id")
	ErrNotAuthenticated   = errors.New("models: not authenticated")
	ErrInsufficientFunds  = errors.New("models: insufficient wallet balance")
)
