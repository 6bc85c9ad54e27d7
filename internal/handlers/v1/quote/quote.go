package quote

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/pricing"
)

type GetQuoteInput struct {
	SendAmount      string `query:"sendAmount" required:"true" doc:"Decimal amount to send in USD"`
	ReceiveCurrency string `query:"receiveCurrency" default:"USD" doc:"Currency the recipient receives"`
	DeliverySpeed   string `query:"deliverySpeed" default:"Standard" doc:"Standard or Express"`
}

type GetQuoteOutput struct {
	Body struct {
		SendAmount      string `json:"sendAmount" doc:"Amount sent in USD"`
		ReceiveAmount   string `json:"receiveAmount" doc:"Amount received"`
		ReceiveCurrency string `json:"receiveCurrency" doc:"Currency received"`
		ExchangeRate    string `json:"exchangeRate" doc:"Units of receive currency per USD"`
		Fee             string `json:"fee" doc:"Fee in USD"`
		TotalDebit      string `json:"totalDebit" doc:"What leaves the source account"`
		DeliverySpeed   string `json:"deliverySpeed" doc:"Standard or Express"`
	}
}

// Handler prices a transfer without sending it.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quote",
		Method:      http.MethodGet,
		Path:        "/v1/quote",
		Summary:     "Price a transfer",
		Description: "Returns the fee, exchange rate, and received amount for a transfer.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, input *GetQuoteInput) (*GetQuoteOutput, error) {
	amount, err := decimal.NewFromString(input.SendAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid sendAmount", err)
	}
	speed, err := pricing.ParseDeliverySpeed(input.DeliverySpeed)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid deliverySpeed", err)
	}

	q, err := pricing.NewQuote(amount, input.ReceiveCurrency, speed)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "cannot price transfer", err)
	}

	out := &GetQuoteOutput{}
	out.Body.SendAmount = q.SendAmount.StringFixed(2)
	out.Body.ReceiveAmount = q.ReceiveAmount.StringFixed(2)
	out.Body.ReceiveCurrency = q.ReceiveCurrency
	out.Body.ExchangeRate = q.ExchangeRate.String()
	out.Body.Fee = q.Fee.StringFixed(2)
	out.Body.TotalDebit = q.TotalDebit().StringFixed(2)
	out.Body.DeliverySpeed = string(q.DeliverySpeed)
	return out, nil
}
