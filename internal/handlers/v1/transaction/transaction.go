package transaction

import (
	"time"

	"github.com/carson-networks/transfer-server/internal/service"
)

// Recipient is the payee snapshot carried by a transaction.
type Recipient struct {
	ID            string `json:"id,omitempty" doc:"Recipient UUID when the payee came from the registry"`
	FullName      string `json:"fullName" doc:"Payee name"`
	BankName      string `json:"bankName" doc:"Payee bank"`
	AccountNumber string `json:"accountNumber" doc:"Masked account number"`
	Country       string `json:"country" doc:"ISO country code"`
}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                  string            `json:"id" doc:"Transaction UUID"`
	AccountID           string            `json:"accountID" doc:"Source account UUID"`
	Recipient           Recipient         `json:"recipient" doc:"Payee as it was when the transfer was made"`
	SendAmount          string            `json:"sendAmount" doc:"Decimal amount sent in USD"`
	ReceiveAmount       string            `json:"receiveAmount" doc:"Decimal amount received"`
	ReceiveCurrency     string            `json:"receiveCurrency" doc:"Currency the recipient receives"`
	Fee                 string            `json:"fee" doc:"Decimal fee in USD"`
	ExchangeRate        string            `json:"exchangeRate" doc:"Units of receive currency per USD"`
	Status              string            `json:"status" doc:"Lifecycle status"`
	StatusTimestamps    map[string]string `json:"statusTimestamps" doc:"RFC3339 time each status was entered"`
	Type                string            `json:"type" doc:"debit or credit"`
	TransferMethod      string            `json:"transferMethod" doc:"standard or wire"`
	EstimatedArrival    string            `json:"estimatedArrival" doc:"RFC3339 estimated arrival"`
	Purpose             string            `json:"purpose,omitempty" doc:"Stated purpose"`
	DeliverySpeed       string            `json:"deliverySpeed,omitempty" doc:"Standard or Express"`
	Description         string            `json:"description,omitempty" doc:"Display description"`
	ClearanceFeePaid    *bool             `json:"clearanceFeePaid,omitempty" doc:"Set once clearance is granted"`
	AuthorizationMethod string            `json:"authorizationMethod,omitempty" doc:"code or fee, set once clearance is granted"`
	CreatedAt           string            `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tx *service.Transaction) Transaction {
	stamps := make(map[string]string, len(tx.StatusTimestamps))
	for status, at := range tx.StatusTimestamps {
		stamps[status.String()] = at.Format(time.RFC3339)
	}

	out := Transaction{
		ID:        tx.ID.String(),
		AccountID: tx.AccountID.String(),
		Recipient: Recipient{
			FullName:      tx.Recipient.FullName,
			BankName:      tx.Recipient.BankName,
			AccountNumber: tx.Recipient.AccountNumber,
			Country:       tx.Recipient.Country,
		},
		SendAmount:          tx.SendAmount.StringFixed(2),
		ReceiveAmount:       tx.ReceiveAmount.StringFixed(2),
		ReceiveCurrency:     tx.ReceiveCurrency,
		Fee:                 tx.Fee.StringFixed(2),
		ExchangeRate:        tx.ExchangeRate.String(),
		Status:              tx.Status.String(),
		StatusTimestamps:    stamps,
		Type:                string(tx.Type),
		TransferMethod:      string(tx.TransferMethod),
		EstimatedArrival:    tx.EstimatedArrival.Format(time.RFC3339),
		Purpose:             tx.Purpose,
		DeliverySpeed:       tx.DeliverySpeed,
		Description:         tx.Description,
		ClearanceFeePaid:    tx.ClearanceFeePaid,
		AuthorizationMethod: string(tx.AuthorizationMethod),
		CreatedAt:           tx.CreatedAt.Format(time.RFC3339),
	}
	if !tx.Recipient.ID.IsNil() {
		out.Recipient.ID = tx.Recipient.ID.String()
	}
	return out
}
