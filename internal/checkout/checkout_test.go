package checkout

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthbox-backend/internal/models"
	"healthbox-backend/internal/store"
)

type mockStore struct {
	lines    []models.CartLine
	linesErr error

	decrements   map[string]int
	failMedicine string
	decErr       error

	cleared  bool
	clearErr error

	inserted  *models.Payment
	insertErr error
}

func (m *mockStore) CartLinesByUser(context.Context, string) ([]models.CartLine, error) {
	return m.lines, m.linesErr
}

func (m *mockStore) DecrementStock(_ context.Context, medicineID string, quantity int) error {
	if m.decErr != nil {
		return m.decErr
	}
	if medicineID == m.failMedicine {
		return store.ErrNotFound
	}
	if m.decrements == nil {
		m.decrements = map[string]int{}
	}
	m.decrements[medicineID] += quantity
	return nil
}

func (m *mockStore) ClearCart(context.Context, string) error {
	m.cleared = true
	return m.clearErr
}

func (m *mockStore) InsertPayment(_ context.Context, p models.Payment) (*models.Payment, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	m.inserted = &p
	return &p, nil
}

func testService(s Store) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := NewService(s, log)
	svc.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func twoLines() []models.CartLine {
	return []models.CartLine{
		{UserUID: "u1", MedicineID: "aaaaaaaaaaaaaaaaaaaaaaaa", Name: "Aspirin", Quantity: 2, Price: 5},
		{UserUID: "u1", MedicineID: "bbbbbbbbbbbbbbbbbbbbbbbb", Name: "Ibuprofen", Quantity: 1, Price: 8},
	}
}

func TestRun_EmptyCart(t *testing.T) {
	m := &mockStore{}
	svc := testService(m)

	_, err := svc.Run(context.Background(), models.Payment{UserUID: "u1"})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, m.inserted)
	assert.False(t, m.cleared)
}

func TestRun_HappyPath(t *testing.T) {
	m := &mockStore{lines: twoLines()}
	svc := testService(m)

	payment, err := svc.Run(context.Background(), models.Payment{
		UserUID:       "u1",
		TransactionID: "tx-1",
		Amount:        18,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPending, payment.Status)
	assert.Len(t, payment.PurchasedItems, 2)
	assert.Equal(t, "tx-1", payment.TransactionID)
	assert.Equal(t, 2, m.decrements["aaaaaaaaaaaaaaaaaaaaaaaa"])
	assert.Equal(t, 1, m.decrements["bbbbbbbbbbbbbbbbbbbbbbbb"])
	assert.True(t, m.cleared)
	require.NotNil(t, m.inserted)
	assert.Equal(t, payment.Date, m.inserted.Date)
}

func TestRun_StockFailureAbortsWithoutRollback(t *testing.T) {
	m := &mockStore{
		lines:        twoLines(),
		failMedicine: "bbbbbbbbbbbbbbbbbbbbbbbb",
	}
	svc := testService(m)

	_, err := svc.Run(context.Background(), models.Payment{UserUID: "u1"})

	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Ibuprofen", stockErr.Name)
	// The first decrement stays applied.
	assert.Equal(t, 2, m.decrements["aaaaaaaaaaaaaaaaaaaaaaaa"])
	assert.Nil(t, m.inserted)
	assert.False(t, m.cleared)
}

func TestRun_DecrementStorageFailureIsNotStockError(t *testing.T) {
	m := &mockStore{
		lines:  twoLines(),
		decErr: errors.New("connection reset by peer"),
	}
	svc := testService(m)

	_, err := svc.Run(context.Background(), models.Payment{UserUID: "u1"})

	require.Error(t, err)
	var stockErr *StockError
	assert.False(t, errors.As(err, &stockErr))
	assert.ErrorContains(t, err, "connection reset by peer")
	assert.Nil(t, m.inserted)
	assert.False(t, m.cleared)
}

func TestRun_ClearCartFailureStillRecordsPayment(t *testing.T) {
	m := &mockStore{
		lines:    twoLines(),
		clearErr: errors.New("delete failed"),
	}
	svc := testService(m)

	payment, err := svc.Run(context.Background(), models.Payment{UserUID: "u1"})

	require.NoError(t, err)
	assert.NotNil(t, payment)
	require.NotNil(t, m.inserted)
}

func TestRun_InsertFailure(t *testing.T) {
	m := &mockStore{
		lines:     twoLines(),
		insertErr: errors.New("insert failed"),
	}
	svc := testService(m)

	_, err := svc.Run(context.Background(), models.Payment{UserUID: "u1"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyCart)
}
