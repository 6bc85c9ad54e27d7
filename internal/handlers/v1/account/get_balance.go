package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/handlers/v1/httperr"
)

type GetBalanceInput struct {
	ID string `path:"id" doc:"Account UUID"`
}

type GetBalanceOutput struct {
	Body struct {
		AccountID string `json:"accountId" doc:"Account UUID"`
		Balance   string `json:"balance" doc:"Decimal balance"`
	}
}

type balanceGetter interface {
	GetAccountBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
}

// GetBalanceHandler handles GET /v1/account/{id}/balance.
type GetBalanceHandler struct {
	AccountService balanceGetter
}

func NewGetBalanceHandler(svc balanceGetter) *GetBalanceHandler {
	return &GetBalanceHandler{AccountService: svc}
}

func (h *GetBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account-balance",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}/balance",
		Summary:     "Get account balance",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetBalanceHandler) handle(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	balance, err := h.AccountService.GetAccountBalance(ctx, id)
	if err != nil {
		return nil, httperr.FromService(err, "failed to get balance")
	}

	out := &GetBalanceOutput{}
	out.Body.AccountID = id.String()
	out.Body.Balance = balance.StringFixed(2)
	return out, nil
}
