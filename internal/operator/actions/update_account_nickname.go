package actions

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/storage"
)

type UpdateAccountNickname struct {
	AccountID uuid.UUID
	Nickname  string
}

func (u *UpdateAccountNickname) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Account.UpdateNickname(ctx, u.AccountID, strings.TrimSpace(u.Nickname))
}
