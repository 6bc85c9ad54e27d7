package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/transfer-server/internal/logging"
	"github.com/carson-networks/transfer-server/internal/service"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Nickname          string `json:"nickname" minLength:"1" doc:"Account nickname"`
	Type              string `json:"type" doc:"Account type: checking, savings, external_linked, business, investment"`
	FullAccountNumber string `json:"fullAccountNumber" minLength:"4" doc:"Full account number"`
	StartingBalance   string `json:"startingBalance,omitempty" doc:"Starting balance (e.g. '0' or '1234.56'), defaults to 0"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, create service.AccountCreate) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Opens a new account with the given nickname, type, number, and starting balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (service.AccountCreate, error) {
	startingBalanceStr := input.Body.StartingBalance
	if startingBalanceStr == "" {
		startingBalanceStr = "0"
	}
	startingBalance, err := decimal.NewFromString(startingBalanceStr)
	if err != nil {
		return service.AccountCreate{}, huma.NewError(http.StatusBadRequest, "invalid startingBalance", err)
	}

	accountType, err := service.ParseAccountType(input.Body.Type)
	if err != nil {
		return service.AccountCreate{}, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}

	return service.AccountCreate{
		Type:              accountType,
		Nickname:          input.Body.Nickname,
		FullAccountNumber: input.Body.FullAccountNumber,
		StartingBalance:   startingBalance,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("createAccountMs")
	created, err := h.AccountService.CreateAccount(ctx, create)
	stopTimer()
	if err != nil {
		return nil, httperr.FromService(err, "failed to create account")
	}

	logData.AddData("accountID", created.ID.String())

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   fromService(created),
	}, nil
}
