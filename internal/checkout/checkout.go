// Package checkout converts a user's cart into a persisted order. The
// sequence (read cart, decrement stock, clear cart, insert payment) runs
// without a transaction, matching the source system: a decrement that fails
// mid-loop leaves earlier decrements applied.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"healthbox-backend/internal/models"
	"healthbox-backend/internal/store"
)

var ErrEmptyCart = errors.New("cart is empty, nothing to purchase")

// StockError reports a medicine whose stock decrement matched no document.
// Storage failures are not StockErrors; they propagate wrapped.
type StockError struct {
	Name string
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock update failed for %s", e.Name)
}

// Store is the slice of storage the workflow needs.
type Store interface {
	CartLinesByUser(ctx context.Context, userUID string) ([]models.CartLine, error)
	DecrementStock(ctx context.Context, medicineID string, quantity int) error
	ClearCart(ctx context.Context, userUID string) error
	InsertPayment(ctx context.Context, payment models.Payment) (*models.Payment, error)
}

type Service struct {
	store Store
	log   *logrus.Logger
	now   func() time.Time
}

func NewService(store Store, log *logrus.Logger) *Service {
	return &Service{store: store, log: log, now: time.Now}
}

// Run executes the checkout workflow for the paying user. The caller supplies
// transaction id, amount and identity; status and the purchased-items
// snapshot are set here.
func (s *Service) Run(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	lines, err := s.store.CartLinesByUser(ctx, payment.UserUID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	payment.Status = models.PaymentPending
	payment.Date = s.now()
	payment.PurchasedItems = lines

	for _, line := range lines {
		if err := s.store.DecrementStock(ctx, line.MedicineID, line.Quantity); err != nil {
			// Earlier decrements are not rolled back either way.
			if errors.Is(err, store.ErrNotFound) {
				return nil, &StockError{Name: line.Name}
			}
			return nil, fmt.Errorf("failed to decrement stock for %s: %w", line.Name, err)
		}
	}

	if err := s.store.ClearCart(ctx, payment.UserUID); err != nil {
		s.log.WithError(err).WithField("userUid", payment.UserUID).Error("failed to clear cart after checkout")
	}

	inserted, err := s.store.InsertPayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return inserted, nil
}
