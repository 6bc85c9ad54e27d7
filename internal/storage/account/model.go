package account

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("account not found")

// Account represents an account record.
type Account struct {
	ID                uuid.UUID
	Type              AccountType
	Nickname          string
	MaskedNumber      string
	FullAccountNumber string
	Balance           decimal.Decimal
	Status            AccountStatus
	CreatedAt         time.Time
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	Limit  int
	Offset int
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// AccountListResult contains a page of accounts and an optional next cursor.
type AccountListResult struct {
	Accounts   []*Account
	NextCursor *AccountCursor
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Type              AccountType
	Nickname          string
	FullAccountNumber string
	Balance           decimal.Decimal
}

type AccountType int8

const (
	AccountTypeChecking AccountType = iota
	AccountTypeSavings
	AccountTypeExternalLinked
	AccountTypeBusiness
	AccountTypeInvestment
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeChecking:
		return "checking"
	case AccountTypeSavings:
		return "savings"
	case AccountTypeExternalLinked:
		return "external_linked"
	case AccountTypeBusiness:
		return "business"
	case AccountTypeInvestment:
		return "investment"
	default:
		return "unknown"
	}
}

type AccountStatus int8

const (
	AccountStatusActive AccountStatus = iota
	AccountStatusFrozen
	AccountStatusClosed
)

func (s AccountStatus) String() string {
	switch s {
	case AccountStatusActive:
		return "active"
	case AccountStatusFrozen:
		return "frozen"
	case AccountStatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}
