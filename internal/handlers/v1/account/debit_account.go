package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/transfer-server/internal/logging"
	"github.com/carson-networks/transfer-server/internal/service"
)

type DebitAccountInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body struct {
		Amount  string `json:"amount" doc:"Decimal amount to withdraw"`
		Title   string `json:"title,omitempty" maxLength:"80" doc:"Notification title, e.g. Bill Paid"`
		Message string `json:"message,omitempty" maxLength:"280" doc:"Notification message"`
	}
}

type DebitAccountOutput struct {
	Body struct {
		Balance string `json:"balance" doc:"Balance after the withdrawal"`
	}
}

type accountDebitor interface {
	DebitAccount(ctx context.Context, id uuid.UUID, debit service.AccountDebit) (decimal.Decimal, error)
}

// DebitAccountHandler handles POST /v1/account/{id}/debit.
type DebitAccountHandler struct {
	AccountService accountDebitor
}

func NewDebitAccountHandler(svc accountDebitor) *DebitAccountHandler {
	return &DebitAccountHandler{AccountService: svc}
}

func (h *DebitAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "debit-account",
		Method:      http.MethodPost,
		Path:        "/v1/account/{id}/debit",
		Summary:     "Pay from an account",
		Description: "Withdraws from one account for bills, airtime, donations and similar payments. Fails with 422 when the balance cannot cover the amount.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DebitAccountHandler) handle(ctx context.Context, input *DebitAccountInput) (*DebitAccountOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	logging.GetLogData(ctx).AddData("accountID", id.String())

	balance, err := h.AccountService.DebitAccount(ctx, id, service.AccountDebit{
		Amount:  amount,
		Title:   input.Body.Title,
		Message: input.Body.Message,
	})
	if err != nil {
		return nil, httperr.FromService(err, "failed to debit account")
	}

	out := &DebitAccountOutput{}
	out.Body.Balance = balance.StringFixed(2)
	return out, nil
}
