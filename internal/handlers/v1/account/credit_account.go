package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/transfer-server/internal/logging"
)

type CreditAccountInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body struct {
		Amount string `json:"amount" doc:"Decimal amount to deposit"`
	}
}

type CreditAccountOutput struct {
	Body struct {
		Balance string `json:"balance" doc:"Balance after the deposit"`
	}
}

type accountCreditor interface {
	CreditAccount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}

// CreditAccountHandler handles POST /v1/account/{id}/credit.
type CreditAccountHandler struct {
	AccountService accountCreditor
}

func NewCreditAccountHandler(svc accountCreditor) *CreditAccountHandler {
	return &CreditAccountHandler{AccountService: svc}
}

func (h *CreditAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "credit-account",
		Method:      http.MethodPost,
		Path:        "/v1/account/{id}/credit",
		Summary:     "Deposit funds",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *CreditAccountHandler) handle(ctx context.Context, input *CreditAccountInput) (*CreditAccountOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	logging.GetLogData(ctx).AddData("accountID", id.String())

	balance, err := h.AccountService.CreditAccount(ctx, id, amount)
	if err != nil {
		return nil, httperr.FromService(err, "failed to credit account")
	}

	out := &CreditAccountOutput{}
	out.Body.Balance = balance.StringFixed(2)
	return out, nil
}
