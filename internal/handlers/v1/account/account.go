package account

import (
	"time"

	"github.com/carson-networks/transfer-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID           string `json:"id" doc:"Account UUID"`
	Type         string `json:"type" doc:"Account type: checking, savings, external_linked, business, investment"`
	Nickname     string `json:"nickname" doc:"Account nickname"`
	MaskedNumber string `json:"maskedNumber" doc:"Account number showing only the last four digits"`
	Balance      string `json:"balance" doc:"Decimal balance"`
	Status       string `json:"status" doc:"Account status: active, frozen, closed"`
	CreatedAt    string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(acc *service.Account) Account {
	return Account{
		ID:           acc.ID.String(),
		Type:         string(acc.Type),
		Nickname:     acc.Nickname,
		MaskedNumber: acc.MaskedNumber,
		Balance:      acc.Balance.StringFixed(2),
		Status:       acc.Status,
		CreatedAt:    acc.CreatedAt.Format(time.RFC3339),
	}
}
