package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/transfer-server/internal/logging"
	"github.com/carson-networks/transfer-server/internal/service"
)

// TransitionOutput reports what a lifecycle command did. A command that did
// not apply still answers 200 with the unchanged transaction.
type TransitionOutput struct {
	Body struct {
		Outcome     string      `json:"outcome" enum:"applied,not_eligible,not_due" doc:"What the command did"`
		Transaction Transaction `json:"transaction" doc:"Transaction after the command"`
	}
}

type AuthorizeInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body struct {
		Method string `json:"method" enum:"code,fee" doc:"How clearance was obtained"`
	}
}

type transactionTransitioner interface {
	AuthorizeTransaction(ctx context.Context, id uuid.UUID, method string) (*service.AuthorizationResult, error)
	FlagForClearance(ctx context.Context, id uuid.UUID) (*service.TransitionResult, error)
	Advance(ctx context.Context, id uuid.UUID) (*service.TransitionResult, error)
}

// LifecycleHandler serves the authorize, flag, and advance commands.
type LifecycleHandler struct {
	TransactionService transactionTransitioner
}

func NewLifecycleHandler(svc transactionTransitioner) *LifecycleHandler {
	return &LifecycleHandler{TransactionService: svc}
}

func (h *LifecycleHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "authorize-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/{id}/authorize",
		Summary:     "Grant clearance",
		Description: "Moves a transfer awaiting clearance to CLEARANCE_GRANTED. Any other status is left alone.",
		Tags:        []string{"Transactions"},
	}, h.authorize)

	huma.Register(api, huma.Operation{
		OperationID: "flag-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/{id}/flag",
		Summary:     "Hold for clearance",
		Description: "Moves an in-transit transfer to FLAGGED_AWAITING_CLEARANCE.",
		Tags:        []string{"Transactions"},
	}, h.flag)

	huma.Register(api, huma.Operation{
		OperationID: "advance-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/{id}/advance",
		Summary:     "Apply a due timed transition",
		Tags:        []string{"Transactions"},
	}, h.advance)
}

func toTransitionOutput(result *service.TransitionResult) *TransitionOutput {
	out := &TransitionOutput{}
	out.Body.Outcome = result.Outcome.String()
	out.Body.Transaction = fromService(result.Transaction)
	return out
}

func (h *LifecycleHandler) authorize(ctx context.Context, input *AuthorizeInput) (*TransitionOutput, error) {
	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	result, err := h.TransactionService.AuthorizeTransaction(ctx, id, input.Body.Method)
	if err != nil {
		return nil, httperr.FromService(err, "failed to authorize transaction")
	}
	logging.GetLogData(ctx).AddData("outcome", result.Outcome.String())
	return toTransitionOutput(result), nil
}

func (h *LifecycleHandler) flag(ctx context.Context, input *TransactionIDInput) (*TransitionOutput, error) {
	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	result, err := h.TransactionService.FlagForClearance(ctx, id)
	if err != nil {
		return nil, httperr.FromService(err, "failed to flag transaction")
	}
	return toTransitionOutput(result), nil
}

func (h *LifecycleHandler) advance(ctx context.Context, input *TransactionIDInput) (*TransitionOutput, error) {
	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	result, err := h.TransactionService.Advance(ctx, id)
	if err != nil {
		return nil, httperr.FromService(err, "failed to advance transaction")
	}
	return toTransitionOutput(result), nil
}
