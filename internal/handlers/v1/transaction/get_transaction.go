package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/transfer-server/internal/service"
)

type TransactionIDInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

type GetTransactionOutput struct {
	Body Transaction
}

type transactionGetter interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transaction/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}",
		Summary:     "Get a transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseTransactionID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	return id, nil
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *TransactionIDInput) (*GetTransactionOutput, error) {
	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.GetTransaction(ctx, id)
	if err != nil {
		return nil, httperr.FromService(err, "failed to get transaction")
	}
	return &GetTransactionOutput{Body: fromService(tx)}, nil
}
