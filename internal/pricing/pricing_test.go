package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote_Standard(t *testing.T) {
	q, err := NewQuote(decimal.RequireFromString("100"), "eur", SpeedStandard)
	require.NoError(t, err)

	assert.Equal(t, "EUR", q.ReceiveCurrency)
	assert.True(t, q.ReceiveAmount.Equal(decimal.RequireFromString("92.00")))
	assert.True(t, q.Fee.Equal(StandardFee))
	assert.True(t, q.TotalDebit().Equal(decimal.RequireFromString("105.00")))
}

func TestNewQuote_ExpressRounds(t *testing.T) {
	q, err := NewQuote(decimal.RequireFromString("10.01"), "JPY", SpeedExpress)
	require.NoError(t, err)

	assert.True(t, q.Fee.Equal(ExpressFee))
	assert.True(t, q.ReceiveAmount.Equal(decimal.RequireFromString("1576.58")))
}

func TestNewQuote_Errors(t *testing.T) {
	_, err := NewQuote(decimal.RequireFromString("10"), "XYZ", SpeedStandard)
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)

	_, err = NewQuote(decimal.Zero, "USD", SpeedStandard)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNewWireQuote(t *testing.T) {
	domestic, err := NewWireQuote(decimal.RequireFromString("1000"), "us")
	require.NoError(t, err)
	assert.True(t, domestic.Fee.Equal(DomesticWireFee))

	international, err := NewWireQuote(decimal.RequireFromString("1000"), "NG")
	require.NoError(t, err)
	assert.True(t, international.Fee.Equal(InternationalWireFee))
	assert.True(t, international.ReceiveAmount.Equal(decimal.RequireFromString("1000")))
}

func TestParseDeliverySpeed(t *testing.T) {
	speed, err := ParseDeliverySpeed("EXPRESS")
	require.NoError(t, err)
	assert.Equal(t, SpeedExpress, speed)

	speed, err = ParseDeliverySpeed("")
	require.NoError(t, err)
	assert.Equal(t, SpeedStandard, speed)

	_, err = ParseDeliverySpeed("overnight")
	assert.Error(t, err)
}
