package actions

import (
	"errors"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrAccountInactive   = errors.New("account is not active")
	ErrMissingRecipient  = errors.New("recipient is required")
)
