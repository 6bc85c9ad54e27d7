package actions

import (
	"context"
	"time"

	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
)

type CreateRecipient struct {
	Create recipient.RecipientCreate
	Now    time.Time

	Result *recipient.Recipient
}

func (c *CreateRecipient) Perform(ctx context.Context, writer *storage.Writer) error {
	if c.Create.FullName == "" {
		return ErrMissingRecipient
	}

	created, err := writer.Recipient.Insert(ctx, &c.Create, c.Now)
	if err != nil {
		return err
	}

	c.Result = created
	return nil
}
