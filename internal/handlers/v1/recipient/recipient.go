package recipient

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/transfer-server/internal/logging"
	"github.com/carson-networks/transfer-server/internal/service"
)

// Recipient is the API response model for a payee. Unmasked banking details
// are never returned.
type Recipient struct {
	ID            string `json:"id" doc:"Recipient UUID"`
	FullName      string `json:"fullName" doc:"Payee name"`
	Nickname      string `json:"nickname,omitempty" doc:"Display nickname"`
	Phone         string `json:"phone,omitempty" doc:"Phone number"`
	BankName      string `json:"bankName" doc:"Payee bank"`
	AccountNumber string `json:"accountNumber" doc:"Masked account number"`
	Country       string `json:"country" doc:"ISO country code"`
	BankDeposit   bool   `json:"bankDeposit" doc:"Can receive bank deposits"`
	CashPickup    bool   `json:"cashPickup" doc:"Can collect cash"`
	City          string `json:"city,omitempty" doc:"City"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(r *service.Recipient) Recipient {
	return Recipient{
		ID:            r.ID.String(),
		FullName:      r.FullName,
		Nickname:      r.Nickname,
		Phone:         r.Phone,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		Country:       r.Country,
		BankDeposit:   r.DeliveryOptions.BankDeposit,
		CashPickup:    r.DeliveryOptions.CashPickup,
		City:          r.City,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

type recipientService interface {
	AddRecipient(ctx context.Context, create service.RecipientCreate) (*service.Recipient, error)
	UpdateRecipient(ctx context.Context, id uuid.UUID, update service.RecipientUpdate) (*service.Recipient, error)
	ListRecipients(ctx context.Context) ([]*service.Recipient, error)
}

// Handler serves the payee registry.
type Handler struct {
	RecipientService recipientService
}

func NewHandler(svc recipientService) *Handler {
	return &Handler{RecipientService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-recipients",
		Method:      http.MethodGet,
		Path:        "/v1/recipients",
		Summary:     "List recipients",
		Tags:        []string{"Recipients"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "create-recipient",
		Method:      http.MethodPost,
		Path:        "/v1/recipient",
		Summary:     "Add a recipient",
		Description: "Stores a payee. The account number is masked to its last four digits.",
		Tags:        []string{"Recipients"},
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "update-recipient",
		Method:      http.MethodPatch,
		Path:        "/v1/recipient/{id}",
		Summary:     "Edit a recipient",
		Description: "Edits a payee. Transfers already made keep the details they were sent with.",
		Tags:        []string{"Recipients"},
	}, h.update)
}

type ListOutput struct {
	Body struct {
		Recipients []Recipient `json:"recipients" doc:"Every stored recipient in the order added"`
	}
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListOutput, error) {
	rows, err := h.RecipientService.ListRecipients(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "failed to list recipients")
	}

	out := &ListOutput{}
	out.Body.Recipients = make([]Recipient, len(rows))
	for i, r := range rows {
		out.Body.Recipients[i] = fromService(r)
	}
	return out, nil
}

type CreateBody struct {
	FullName      string `json:"fullName" minLength:"1" doc:"Payee name"`
	Nickname      string `json:"nickname,omitempty" doc:"Display nickname"`
	Phone         string `json:"phone,omitempty" doc:"Phone number"`
	BankName      string `json:"bankName" minLength:"1" doc:"Payee bank"`
	AccountNumber string `json:"accountNumber" minLength:"4" doc:"Full account number"`
	SwiftBIC      string `json:"swiftBic,omitempty" doc:"SWIFT/BIC code"`
	Country       string `json:"country" minLength:"2" maxLength:"2" doc:"ISO country code"`
	CashPickup    bool   `json:"cashPickup,omitempty" doc:"Enable cash pickup"`
	City          string `json:"city,omitempty" doc:"City"`
}

type CreateInput struct {
	Body CreateBody
}

type RecipientOutput struct {
	Status int
	Body   Recipient
}

func (h *Handler) create(ctx context.Context, input *CreateInput) (*RecipientOutput, error) {
	created, err := h.RecipientService.AddRecipient(ctx, service.RecipientCreate{
		FullName:          input.Body.FullName,
		Nickname:          input.Body.Nickname,
		Phone:             input.Body.Phone,
		BankName:          input.Body.BankName,
		AccountNumber:     input.Body.AccountNumber,
		SwiftBIC:          input.Body.SwiftBIC,
		Country:           input.Body.Country,
		CashPickupEnabled: input.Body.CashPickup,
		City:              input.Body.City,
	})
	if err != nil {
		return nil, httperr.FromService(err, "failed to add recipient")
	}

	logging.GetLogData(ctx).AddData("recipientID", created.ID.String())
	return &RecipientOutput{Status: http.StatusCreated, Body: fromService(created)}, nil
}

type UpdateInput struct {
	ID   string `path:"id" doc:"Recipient UUID"`
	Body struct {
		FullName *string `json:"fullName,omitempty" doc:"Payee name"`
		Nickname *string `json:"nickname,omitempty" doc:"Display nickname"`
		Phone    *string `json:"phone,omitempty" doc:"Phone number"`
		BankName *string `json:"bankName,omitempty" doc:"Payee bank"`
		Country  *string `json:"country,omitempty" doc:"ISO country code"`
		City     *string `json:"city,omitempty" doc:"City"`
	}
}

func (h *Handler) update(ctx context.Context, input *UpdateInput) (*RecipientOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	updated, err := h.RecipientService.UpdateRecipient(ctx, id, service.RecipientUpdate{
		FullName: input.Body.FullName,
		Nickname: input.Body.Nickname,
		Phone:    input.Body.Phone,
		BankName: input.Body.BankName,
		Country:  input.Body.Country,
		City:     input.Body.City,
	})
	if err != nil {
		return nil, httperr.FromService(err, "failed to update recipient")
	}
	return &RecipientOutput{Status: http.StatusOK, Body: fromService(updated)}, nil
}
