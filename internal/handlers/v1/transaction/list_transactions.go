package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/logging"
	"github.com/carson-networks/transfer-server/internal/service"
)

// ListTransactionsCursor represents a pagination cursor in request and response bodies.
// It bundles position, limit, and maxCreationTime so subsequent pages use consistent parameters.
type ListTransactionsCursor struct {
	Position        int    `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit           int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
	MaxCreationTime string `json:"maxCreationTime" format:"date-time" doc:"Upper bound on createdAt locked in from the first page"`
	LastID          string `json:"lastId,omitempty" doc:"Last transaction already returned; the next page resumes after it"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	AccountID string                  `json:"accountID,omitempty" doc:"Only transfers from this account"`
	Statuses  []string                `json:"statuses,omitempty" doc:"Only transfers in one of these statuses"`
	Cursor    *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions, most recent first"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, filter *service.TransactionListFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns a paginated list of transactions using cursor-based pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListFilter(body ListTransactionsBody) (*service.TransactionListFilter, error) {
	if body.AccountID == "" && len(body.Statuses) == 0 {
		return nil, nil
	}

	filter := &service.TransactionListFilter{}
	if body.AccountID != "" {
		accountID, err := uuid.FromString(body.AccountID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
		}
		filter.AccountID = &accountID
	}
	for _, raw := range body.Statuses {
		status, err := lifecycle.ParseStatus(raw)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid status", err)
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	return filter, nil
}

// parseListTransactionsInput parses and validates the API input.
// When a cursor is provided, limit and maxCreationTime come from it.
// Without a cursor, the service uses its default limit.
func parseListTransactionsInput(input *ListTransactionsInput) (filter *service.TransactionListFilter, cursor *service.TransactionCursor, err error) {
	filter, err = parseListFilter(input.Body)
	if err != nil {
		return nil, nil, err
	}

	if input.Body.Cursor == nil {
		return filter, nil, nil
	}

	if input.Body.Cursor.Position < 0 {
		return nil, nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	maxCreationTime, parseErr := time.Parse(time.RFC3339, input.Body.Cursor.MaxCreationTime)
	if parseErr != nil {
		return nil, nil, huma.NewError(http.StatusBadRequest, "invalid cursor maxCreationTime", parseErr)
	}

	var lastID uuid.UUID
	if input.Body.Cursor.LastID != "" {
		lastID, parseErr = uuid.FromString(input.Body.Cursor.LastID)
		if parseErr != nil {
			return nil, nil, huma.NewError(http.StatusBadRequest, "invalid cursor lastId", parseErr)
		}
	}

	return filter, &service.TransactionCursor{
		Position:        input.Body.Cursor.Position,
		Limit:           input.Body.Cursor.Limit,
		MaxCreationTime: maxCreationTime,
		LastID:          lastID,
	}, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	filter, requestCursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listTransactionsMs")
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, filter, requestCursor)
	stopTimer()
	if err != nil {
		return nil, httperr.FromService(err, "failed to list transactions")
	}

	logData.AddData("transactionCount", len(transactions))

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i := range transactions {
		resp.Transactions[i] = fromService(&transactions[i])
	}

	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position:        nextCursor.Position,
			Limit:           nextCursor.Limit,
			MaxCreationTime: nextCursor.MaxCreationTime.Format(time.RFC3339),
			LastID:          nextCursor.LastID.String(),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
