package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/storage/account"
)

// AccountType represents an account type in the service layer.
type AccountType string

const (
	AccountTypeChecking       AccountType = "checking"
	AccountTypeSavings        AccountType = "savings"
	AccountTypeExternalLinked AccountType = "external_linked"
	AccountTypeBusiness       AccountType = "business"
	AccountTypeInvestment     AccountType = "investment"
)

// Account represents an account in the service layer. The full account
// number stays in storage.
type Account struct {
	ID           uuid.UUID
	Type         AccountType
	Nickname     string
	MaskedNumber string
	Balance      decimal.Decimal
	Status       string
	CreatedAt    time.Time
}

// AccountCreate is the input for opening an account.
type AccountCreate struct {
	Type              AccountType
	Nickname          string
	FullAccountNumber string
	StartingBalance   decimal.Decimal
}

// AccountDebit is a withdrawal from one account. Title and Message become
// the in-app notification; empty values fall back to a generic payment note.
type AccountDebit struct {
	Amount  decimal.Decimal
	Title   string
	Message string
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

var accountTypes = map[AccountType]account.AccountType{
	AccountTypeChecking:       account.AccountTypeChecking,
	AccountTypeSavings:        account.AccountTypeSavings,
	AccountTypeExternalLinked: account.AccountTypeExternalLinked,
	AccountTypeBusiness:       account.AccountTypeBusiness,
	AccountTypeInvestment:     account.AccountTypeInvestment,
}

// ParseAccountType accepts an account type name in any case.
func ParseAccountType(raw string) (AccountType, error) {
	t := AccountType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := accountTypes[t]; !ok {
		return "", fmt.Errorf("unknown account type %q", raw)
	}
	return t, nil
}

func accountTypeToStorage(t AccountType) account.AccountType {
	return accountTypes[t]
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:           row.ID,
		Type:         AccountType(row.Type.String()),
		Nickname:     row.Nickname,
		MaskedNumber: row.MaskedNumber,
		Balance:      row.Balance,
		Status:       row.Status.String(),
		CreatedAt:    row.CreatedAt,
	}
}
