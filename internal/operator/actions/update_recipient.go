package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
)

// UpdateRecipient edits a stored recipient. Snapshots already copied into
// transactions keep their original values.
type UpdateRecipient struct {
	RecipientID uuid.UUID
	Update      recipient.RecipientUpdate

	Result *recipient.Recipient
}

func (u *UpdateRecipient) Perform(ctx context.Context, writer *storage.Writer) error {
	updated, err := writer.Recipient.Update(ctx, u.RecipientID, &u.Update)
	if err != nil {
		return err
	}

	u.Result = updated
	return nil
}
