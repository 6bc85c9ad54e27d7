package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/transfer-server/internal/logging"
	"github.com/carson-networks/transfer-server/internal/pricing"
	"github.com/carson-networks/transfer-server/internal/service"
)

const scheduleLayout = "2006-01-02"

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionBody is the request body fields for creating a transaction.
type CreateTransactionBody struct {
	AccountID       string `json:"accountID" doc:"Source account UUID"`
	RecipientID     string `json:"recipientID" doc:"Recipient UUID from the registry"`
	SendAmount      string `json:"sendAmount" doc:"Decimal amount to send in USD"`
	ReceiveCurrency string `json:"receiveCurrency,omitempty" doc:"Currency the recipient receives, defaults to USD"`
	DeliverySpeed   string `json:"deliverySpeed,omitempty" doc:"Standard or Express, defaults to Standard"`
	Purpose         string `json:"purpose,omitempty" doc:"Purpose of the transfer"`
	Frequency       string `json:"frequency,omitempty" doc:"Recurrence label such as Weekly or Monthly"`
	ScheduledFor    string `json:"scheduledFor,omitempty" doc:"Date the transfer should go out, YYYY-MM-DD"`
}

// CreateTransactionOutput is the response for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Send money",
		Description: "Prices the transfer, debits amount plus fee from the source account, and records it as SUBMITTED.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input and prices
// the transfer.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionCreate, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	recipientID, err := uuid.FromString(input.Body.RecipientID)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid recipientID", err)
	}

	sendAmount, err := decimal.NewFromString(input.Body.SendAmount)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid sendAmount", err)
	}

	speed, err := pricing.ParseDeliverySpeed(input.Body.DeliverySpeed)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid deliverySpeed", err)
	}

	currency := input.Body.ReceiveCurrency
	if currency == "" {
		currency = "USD"
	}

	quote, err := pricing.NewQuote(sendAmount, currency, speed)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid transfer", err)
	}

	var scheduledFor *time.Time
	if input.Body.ScheduledFor != "" {
		date, parseErr := time.Parse(scheduleLayout, input.Body.ScheduledFor)
		if parseErr != nil {
			return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid scheduledFor", parseErr)
		}
		scheduledFor = &date
	}

	return service.TransactionCreate{
		AccountID:       accountID,
		RecipientID:     recipientID,
		SendAmount:      quote.SendAmount,
		ReceiveAmount:   quote.ReceiveAmount,
		ReceiveCurrency: quote.ReceiveCurrency,
		Fee:             quote.Fee,
		ExchangeRate:    quote.ExchangeRate,
		DeliverySpeed:   string(quote.DeliverySpeed),
		Purpose:         input.Body.Purpose,
		Frequency:       input.Body.Frequency,
		ScheduledFor:    scheduledFor,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}
	logData.AddData("accountID", create.AccountID.String())

	created, err := h.TransactionService.CreateTransaction(ctx, create)
	if err != nil {
		return nil, httperr.FromService(err, "failed to create transaction")
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   fromService(created),
	}, nil
}
