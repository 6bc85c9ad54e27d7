package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

// Receipt is the rendered confirmation of a submitted transfer.
type Receipt struct {
	TransactionID string `json:"transactionId"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	SMS           string `json:"sms"`
	SendEmail     bool   `json:"sendEmail"`
	SendSMS       bool   `json:"sendSms"`
}

// ReceiptSettings are the user's privacy choices for transactional receipts.
type ReceiptSettings struct {
	Email bool
	SMS   bool
}

type ReceiptSender interface {
	SendReceipt(ctx context.Context, receipt Receipt) error
}

// RenderReceipt builds the email and SMS text for tx.
func RenderReceipt(tx *transaction.Transaction, userName string, settings ReceiptSettings) Receipt {
	shortID := strings.ToUpper(tx.ID.String()[:8])
	payee := tx.Recipient.DisplayName()

	var body strings.Builder
	fmt.Fprintf(&body, "Dear %s,\n\n", userName)
	fmt.Fprintf(&body, "Your transfer to %s has been submitted.\n\n", payee)
	fmt.Fprintf(&body, "Reference: %s\n", shortID)
	fmt.Fprintf(&body, "Amount sent: $%s\n", tx.SendAmount.StringFixed(2))
	fmt.Fprintf(&body, "Fee: $%s\n", tx.Fee.StringFixed(2))
	fmt.Fprintf(&body, "Total debited: $%s\n", tx.TotalDebit().StringFixed(2))
	if tx.ReceiveCurrency != "" {
		fmt.Fprintf(&body, "Recipient gets: %s %s\n", tx.ReceiveAmount.StringFixed(2), tx.ReceiveCurrency)
	}
	fmt.Fprintf(&body, "Estimated arrival: %s\n", tx.EstimatedArrival.Format("Jan 2, 2006"))

	return Receipt{
		TransactionID: tx.ID.String(),
		Subject:       fmt.Sprintf("Transfer receipt %s", shortID),
		Body:          body.String(),
		SMS: fmt.Sprintf("Transfer of $%s to %s submitted. Ref %s.",
			tx.SendAmount.StringFixed(2), payee, shortID),
		SendEmail: settings.Email,
		SendSMS:   settings.SMS,
	}
}

// LogReceiptSender writes receipts to the log instead of delivering them.
type LogReceiptSender struct {
	logger *logrus.Logger
}

func NewLogReceiptSender(logger *logrus.Logger) *LogReceiptSender {
	return &LogReceiptSender{logger: logger}
}

func (s *LogReceiptSender) SendReceipt(_ context.Context, receipt Receipt) error {
	entry := s.logger.WithField("transactionId", receipt.TransactionID)
	if receipt.SendEmail {
		entry.WithField("subject", receipt.Subject).Info("LogReceiptSender.SendReceipt.email")
	}
	if receipt.SendSMS {
		entry.WithField("sms", receipt.SMS).Info("LogReceiptSender.SendReceipt.sms")
	}
	return nil
}
