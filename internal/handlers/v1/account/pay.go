package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/transfer-server/internal/service"
)

type PayInput struct {
	Body struct {
		Amount string `json:"amount" doc:"Decimal amount to pay"`
		Payee  string `json:"payee" minLength:"1" doc:"Who is being paid, e.g. a subscription provider"`
	}
}

type PayOutput struct {
	Body Account
}

type anyAccountPayer interface {
	PayFromAnyAccount(ctx context.Context, amount decimal.Decimal, payee string) (*service.Account, error)
}

// PayHandler handles POST /v1/account/pay.
type PayHandler struct {
	AccountService anyAccountPayer
}

func NewPayHandler(svc anyAccountPayer) *PayHandler {
	return &PayHandler{AccountService: svc}
}

func (h *PayHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "pay-from-any-account",
		Method:      http.MethodPost,
		Path:        "/v1/account/pay",
		Summary:     "Pay from the first account that can cover the amount",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *PayHandler) handle(ctx context.Context, input *PayInput) (*PayOutput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	paid, err := h.AccountService.PayFromAnyAccount(ctx, amount, input.Body.Payee)
	if err != nil {
		return nil, httperr.FromService(err, "failed to pay")
	}
	return &PayOutput{Body: fromService(paid)}, nil
}
