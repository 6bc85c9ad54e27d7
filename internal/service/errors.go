package service

import (
	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/operator/actions"
	"github.com/carson-networks/transfer-server/internal/pricing"
	"github.com/carson-networks/transfer-server/internal/storage/account"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

var (
	ErrAccountNotFound            = account.ErrNotFound
	ErrTransactionNotFound        = transaction.ErrNotFound
	ErrRecipientNotFound          = recipient.ErrNotFound
	ErrInsufficientFunds          = actions.ErrInsufficientFunds
	ErrInvalidAmount              = actions.ErrInvalidAmount
	ErrAccountInactive            = actions.ErrAccountInactive
	ErrMissingRecipient           = actions.ErrMissingRecipient
	ErrInvalidAuthorizationMethod = lifecycle.ErrInvalidAuthorizationMethod
	ErrInvalidTransition          = lifecycle.ErrInvalidTransition
	ErrUnsupportedCurrency        = pricing.ErrUnsupportedCurrency
)
