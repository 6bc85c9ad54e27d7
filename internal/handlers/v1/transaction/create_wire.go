package transaction

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

type CreateWireInput struct {
	Body CreateWireBody
}

type CreateWireBody struct {
	AccountID   string `json:"accountID" doc:"Source account UUID"`
	RecipientID string `json:"recipientID" doc:"Recipient UUID from the registry"`
	Amount      string `json:"amount" doc:"Decimal USD amount"`
	Purpose     string `json:"purpose,omitempty" doc:"Purpose of the wire"`
	Description string `json:"description,omitempty" doc:"Display description"`
}

type wireCreator interface {
	CreateWireTransfer(ctx context.Context, create service.WireTransferCreate) (*service.Transaction, error)
}

// CreateWireHandler handles POST /v1/transaction/wire.
type CreateWireHandler struct {
	TransactionService wireCreator
}

func NewCreateWireHandler(svc wireCreator) *CreateWireHandler {
	return &CreateWireHandler{TransactionService: svc}
}

func (h *CreateWireHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-wire-transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/wire",
		Summary:     "Send a wire",
		Description: "Sends a USD wire. Domestic and international wires carry different flat fees.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CreateWireHandler) handle(ctx context.Context, input *CreateWireInput) (*CreateTransactionOutput, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}
	recipientID, err := uuid.FromString(input.Body.RecipientID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid recipientID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	logging.GetLogData(ctx).AddData("accountID", accountID.String())

	created, err := h.TransactionService.CreateWireTransfer(ctx, service.WireTransferCreate{
		AccountID:   accountID,
		RecipientID: recipientID,
		Amount:      amount,
		Purpose:     input.Body.Purpose,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, httperr.FromService(err, "failed to send wire")
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   fromService(created),
	}, nil
}
