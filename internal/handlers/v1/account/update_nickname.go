package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/handlers/v1/httperr"
)

type UpdateNicknameInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body struct {
		Nickname string `json:"nickname" minLength:"1" maxLength:"64" doc:"New nickname"`
	}
}

type nicknameUpdater interface {
	UpdateAccountNickname(ctx context.Context, id uuid.UUID, nickname string) error
}

// UpdateNicknameHandler handles PATCH /v1/account/{id}/nickname.
type UpdateNicknameHandler struct {
	AccountService nicknameUpdater
}

func NewUpdateNicknameHandler(svc nicknameUpdater) *UpdateNicknameHandler {
	return &UpdateNicknameHandler{AccountService: svc}
}

func (h *UpdateNicknameHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-account-nickname",
		Method:        http.MethodPatch,
		Path:          "/v1/account/{id}/nickname",
		Summary:       "Rename an account",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *UpdateNicknameHandler) handle(ctx context.Context, input *UpdateNicknameInput) (*struct{}, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	if err = h.AccountService.UpdateAccountNickname(ctx, id, input.Body.Nickname); err != nil {
		return nil, httperr.FromService(err, "failed to update nickname")
	}
	return nil, nil
}
