package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
)

// DeliverySpeed selects the transfer fee.
type DeliverySpeed string

const (
	SpeedStandard DeliverySpeed = "Standard"
	SpeedExpress  DeliverySpeed = "Express"
)

// HomeCountry is the country wire transfers are domestic to.
const HomeCountry = "US"

var (
	StandardFee          = decimal.RequireFromString("5.00")
	ExpressFee           = decimal.RequireFromString("15.00")
	DomesticWireFee      = decimal.RequireFromString("25.00")
	InternationalWireFee = decimal.RequireFromString("45.00")
)

// ExchangeRates are units of each currency per one USD.
var ExchangeRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("0.92"),
	"GBP": decimal.RequireFromString("0.79"),
	"NGN": decimal.RequireFromString("1550"),
	"JPY": decimal.RequireFromString("157.5"),
	"CAD": decimal.RequireFromString("1.37"),
	"MXN": decimal.RequireFromString("17.05"),
	"INR": decimal.RequireFromString("83.3"),
}

// Quote is the priced form of a transfer.
type Quote struct {
	SendAmount      decimal.Decimal
	ReceiveAmount   decimal.Decimal
	ReceiveCurrency string
	ExchangeRate    decimal.Decimal
	Fee             decimal.Decimal
	DeliverySpeed   DeliverySpeed
}

// TotalDebit is what the sender pays.
func (q Quote) TotalDebit() decimal.Decimal {
	return q.SendAmount.Add(q.Fee)
}

// ParseDeliverySpeed accepts "standard" or "express" in any case. Empty means standard.
func ParseDeliverySpeed(raw string) (DeliverySpeed, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "standard":
		return SpeedStandard, nil
	case "express":
		return SpeedExpress, nil
	default:
		return "", fmt.Errorf("unknown delivery speed %q", raw)
	}
}

// Rate returns the USD based rate for currency.
func Rate(currency string) (decimal.Decimal, error) {
	rate, ok := ExchangeRates[strings.ToUpper(strings.TrimSpace(currency))]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
	}
	return rate, nil
}

// NewQuote prices a transfer of sendAmount USD into receiveCurrency.
func NewQuote(sendAmount decimal.Decimal, receiveCurrency string, speed DeliverySpeed) (*Quote, error) {
	if !sendAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	rate, err := Rate(receiveCurrency)
	if err != nil {
		return nil, err
	}

	fee := StandardFee
	if speed == SpeedExpress {
		fee = ExpressFee
	} else {
		speed = SpeedStandard
	}

	return &Quote{
		SendAmount:      sendAmount,
		ReceiveAmount:   sendAmount.Mul(rate).Round(2),
		ReceiveCurrency: strings.ToUpper(strings.TrimSpace(receiveCurrency)),
		ExchangeRate:    rate,
		Fee:             fee,
		DeliverySpeed:   speed,
	}, nil
}

// NewWireQuote prices a wire in USD. The fee depends on whether the
// recipient's country is the home country.
func NewWireQuote(sendAmount decimal.Decimal, recipientCountry string) (*Quote, error) {
	if !sendAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	fee := InternationalWireFee
	if strings.EqualFold(strings.TrimSpace(recipientCountry), HomeCountry) {
		fee = DomesticWireFee
	}

	return &Quote{
		SendAmount:      sendAmount,
		ReceiveAmount:   sendAmount,
		ReceiveCurrency: "USD",
		ExchangeRate:    decimal.NewFromInt(1),
		Fee:             fee,
		DeliverySpeed:   SpeedExpress,
	}, nil
}
