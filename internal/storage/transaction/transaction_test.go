package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
)

func makeTransaction(accountID uuid.UUID, createdAt time.Time) *Transaction {
	return &Transaction{
		ID:               uuid.Must(uuid.NewV4()),
		AccountID:        accountID,
		Recipient:        recipient.Recipient{ID: uuid.Must(uuid.NewV4()), FullName: "Ada Obi", AccountNumber: "•••• 4321"},
		SendAmount:       decimal.RequireFromString("100.00"),
		ReceiveAmount:    decimal.RequireFromString("92.00"),
		ReceiveCurrency:  "EUR",
		Fee:              decimal.RequireFromString("5.00"),
		ExchangeRate:     decimal.RequireFromString("0.92"),
		Status:           lifecycle.StatusSubmitted,
		StatusTimestamps: lifecycle.NewStatusTimestamps(createdAt),
		Type:             DirectionDebit,
		TransferMethod:   lifecycle.TransferStandard,
		EstimatedArrival: createdAt.Add(72 * time.Hour),
		CreatedAt:        createdAt,
	}
}

func TestWriter_InsertPrepends(t *testing.T) {
	w := NewWriter(NewTable())
	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV4())
	base := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	first := makeTransaction(accountID, base)
	second := makeTransaction(accountID, base.Add(time.Minute))
	require.NoError(t, w.Insert(ctx, first))
	require.NoError(t, w.Insert(ctx, second))

	rows, err := w.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, first.ID, rows[1].ID)
}

func TestWriter_UpdateUnknown(t *testing.T) {
	w := NewWriter(NewTable())
	err := w.Update(context.Background(), makeTransaction(uuid.Must(uuid.NewV4()), time.Now()))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReader_FindByIDReturnsCopy(t *testing.T) {
	w := NewWriter(NewTable())
	ctx := context.Background()
	tx := makeTransaction(uuid.Must(uuid.NewV4()), time.Now())
	require.NoError(t, w.Insert(ctx, tx))

	got, err := w.FindByID(ctx, tx.ID)
	require.NoError(t, err)
	got.StatusTimestamps[lifecycle.StatusFundsArrived] = time.Now()

	again, err := w.FindByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.Len(t, again.StatusTimestamps, 1)
}

func TestReader_ListFilters(t *testing.T) {
	w := NewWriter(NewTable())
	ctx := context.Background()
	base := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	accountA := uuid.Must(uuid.NewV4())
	accountB := uuid.Must(uuid.NewV4())

	for i := 0; i < 3; i++ {
		require.NoError(t, w.Insert(ctx, makeTransaction(accountA, base.Add(time.Duration(i)*time.Minute))))
	}
	flagged := makeTransaction(accountB, base.Add(10*time.Minute))
	flagged.Status = lifecycle.StatusFlagged
	require.NoError(t, w.Insert(ctx, flagged))

	rows, err := w.List(ctx, &TransactionFilter{AccountID: &accountA})
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	rows, err = w.List(ctx, &TransactionFilter{Statuses: []lifecycle.Status{lifecycle.StatusFlagged}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, flagged.ID, rows[0].ID)

	maxTime := base.Add(time.Minute)
	rows, err = w.List(ctx, &TransactionFilter{MaxCreationTime: &maxTime})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = w.List(ctx, &TransactionFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, rows, 2, "one extra row signals another page")
}

func TestReader_ListResumesAfterID(t *testing.T) {
	w := NewWriter(NewTable())
	ctx := context.Background()
	accountID := uuid.Must(uuid.NewV4())
	base := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	oldest := makeTransaction(accountID, base)
	middle := makeTransaction(accountID, base.Add(time.Minute))
	newest := makeTransaction(accountID, base.Add(2*time.Minute))
	for _, tx := range []*Transaction{oldest, middle, newest} {
		require.NoError(t, w.Insert(ctx, tx))
	}

	newest.Status = lifecycle.StatusInTransit
	require.NoError(t, w.Update(ctx, newest))

	rows, err := w.List(ctx, &TransactionFilter{
		Statuses: []lifecycle.Status{lifecycle.StatusSubmitted},
		AfterID:  &newest.ID,
		Offset:   1,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2, "offset is ignored once resuming after an id")
	assert.Equal(t, middle.ID, rows[0].ID)
	assert.Equal(t, oldest.ID, rows[1].ID)

	unknown := uuid.Must(uuid.NewV4())
	rows, err = w.List(ctx, &TransactionFilter{AfterID: &unknown})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestHistory_RoundTrip(t *testing.T) {
	base := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	accountID := uuid.Must(uuid.NewV4())
	older := makeTransaction(accountID, base)
	newer := makeTransaction(accountID, base.Add(time.Hour))
	newer.Status = lifecycle.StatusClearanceGranted
	newer.StatusTimestamps[lifecycle.StatusInTransit] = base.Add(time.Hour + 5*time.Second)
	newer.StatusTimestamps[lifecycle.StatusFlagged] = base.Add(time.Hour + 10*time.Second)
	newer.StatusTimestamps[lifecycle.StatusClearanceGranted] = base.Add(time.Hour + 20*time.Second)
	paid := true
	newer.ClearanceFeePaid = &paid
	newer.AuthorizationMethod = lifecycle.AuthorizationFee

	data, err := MarshalHistory([]*Transaction{newer, older})
	require.NoError(t, err)

	decoded, err := UnmarshalHistory(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, newer.ID, decoded[0].ID)
	assert.Equal(t, older.ID, decoded[1].ID)
	assert.Equal(t, lifecycle.StatusClearanceGranted, decoded[0].Status)
	assert.True(t, decoded[0].StatusTimestamps.Contains(newer.StatusTimestamps))
	assert.Len(t, decoded[0].StatusTimestamps, 4)
	assert.True(t, decoded[0].SendAmount.Equal(newer.SendAmount))
	require.NotNil(t, decoded[0].ClearanceFeePaid)
	assert.True(t, *decoded[0].ClearanceFeePaid)
	assert.Nil(t, decoded[1].ClearanceFeePaid)
}
