package seed

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/operator/actions"
	"github.com/carson-networks/transfer-server/internal/storage/account"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Session returns the starting state of a session relative to now.
func Session(now time.Time) *actions.LoadSession {
	checking := account.Account{
		ID:                uuid.Must(uuid.NewV4()),
		Type:              account.AccountTypeChecking,
		Nickname:          "Primary Checking",
		MaskedNumber:      recipient.MaskAccountNumber("0012345678"),
		FullAccountNumber: "0012345678",
		Balance:           decimal.RequireFromString("24850.75"),
		Status:            account.AccountStatusActive,
		CreatedAt:         now.AddDate(-3, 0, 0),
	}
	savings := account.Account{
		ID:                uuid.Must(uuid.NewV4()),
		Type:              account.AccountTypeSavings,
		Nickname:          "High-Yield Savings",
		MaskedNumber:      recipient.MaskAccountNumber("0098765432"),
		FullAccountNumber: "0098765432",
		Balance:           decimal.RequireFromString("150320.10"),
		Status:            account.AccountStatusActive,
		CreatedAt:         now.AddDate(-2, 0, 0),
	}
	business := account.Account{
		ID:                uuid.Must(uuid.NewV4()),
		Type:              account.AccountTypeBusiness,
		Nickname:          "Studio Operating",
		MaskedNumber:      recipient.MaskAccountNumber("5500112299"),
		FullAccountNumber: "5500112299",
		Balance:           decimal.RequireFromString("8200.00"),
		Status:            account.AccountStatusActive,
		CreatedAt:         now.AddDate(-1, 0, 0),
	}

	family := recipient.Recipient{
		ID:            uuid.Must(uuid.NewV4()),
		FullName:      "Adaeze Okonkwo",
		Nickname:      "Mum",
		Phone:         "+234 803 555 0142",
		BankName:      "Guaranty Trust Bank",
		AccountNumber: recipient.MaskAccountNumber("0234567891"),
		Country:       "NG",
		DeliveryOptions: recipient.DeliveryOptions{
			BankDeposit: true,
			CardDeposit: true,
			CashPickup:  true,
		},
		RealDetails: recipient.RealDetails{
			AccountNumber: "0234567891",
			SwiftBIC:      "GTBINGLA",
		},
		City:      "Lagos",
		CreatedAt: now.AddDate(0, -6, 0),
	}
	landlord := recipient.Recipient{
		ID:            uuid.Must(uuid.NewV4()),
		FullName:      "Marie Dubois",
		BankName:      "BNP Paribas",
		AccountNumber: recipient.MaskAccountNumber("FR7630004000031234567890143"),
		Country:       "FR",
		DeliveryOptions: recipient.DeliveryOptions{
			BankDeposit: true,
			CardDeposit: true,
		},
		RealDetails: recipient.RealDetails{
			AccountNumber: "FR7630004000031234567890143",
			SwiftBIC:      "BNPAFRPP",
		},
		StreetAddress: "12 Rue de Rivoli",
		City:          "Paris",
		PostalCode:    "75004",
		CreatedAt:     now.AddDate(0, -3, 0),
	}

	return &actions.LoadSession{
		Accounts:   []account.Account{checking, savings, business},
		Recipients: []recipient.Recipient{family, landlord},
		Transactions: []transaction.Transaction{
			arrived(checking.ID, landlord, "1200.00", "EUR", "0.92", "5.00", "Rent", now.AddDate(0, 0, -3)),
			arrived(checking.ID, family, "300.00", "NGN", "1550", "15.00", "Family support", now.AddDate(0, 0, -10)),
		},
	}
}

// Load stores the starting session through the write path.
func Load(ctx context.Context, p processor, now time.Time) error {
	return p.Process(ctx, Session(now))
}

func arrived(accountID uuid.UUID, payee recipient.Recipient, send, currency, rate, fee, purpose string, createdAt time.Time) transaction.Transaction {
	sendAmount := decimal.RequireFromString(send)
	exchangeRate := decimal.RequireFromString(rate)

	stamps := lifecycle.NewStatusTimestamps(createdAt)
	at := createdAt
	for _, step := range []struct {
		status lifecycle.Status
		after  time.Duration
	}{
		{lifecycle.StatusInTransit, 5 * time.Second},
		{lifecycle.StatusConverting, 30 * time.Second},
		{lifecycle.StatusFundsArrived, 30 * time.Second},
	} {
		at = at.Add(step.after)
		stamps, _ = stamps.With(step.status, at)
	}

	return transaction.Transaction{
		ID:               uuid.Must(uuid.NewV4()),
		AccountID:        accountID,
		Recipient:        payee,
		SendAmount:       sendAmount,
		ReceiveAmount:    sendAmount.Mul(exchangeRate).Round(2),
		ReceiveCurrency:  currency,
		Fee:              decimal.RequireFromString(fee),
		ExchangeRate:     exchangeRate,
		Status:           lifecycle.StatusFundsArrived,
		StatusTimestamps: stamps,
		Type:             transaction.DirectionDebit,
		TransferMethod:   lifecycle.TransferStandard,
		EstimatedArrival: lifecycle.EstimateArrival(lifecycle.TransferStandard, createdAt, nil),
		Purpose:          purpose,
		DeliverySpeed:    "Standard",
		Description:      purpose,
		CreatedAt:        createdAt,
	}
}
