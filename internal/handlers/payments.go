package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthbox-backend/internal/checkout"
	"healthbox-backend/internal/models"
	"healthbox-backend/internal/payments"
	"healthbox-backend/internal/store"
)

// CheckoutRunner executes the cart-to-order workflow.
type CheckoutRunner interface {
	Run(ctx context.Context, payment models.Payment) (*models.Payment, error)
}

type PaymentStore interface {
	PaymentByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	MarkPaid(ctx context.Context, id string) error
}

type PaymentHandler struct {
	checkout CheckoutRunner
	store    PaymentStore
	intents  payments.IntentCreator
	log      *logrus.Logger
}

func NewPaymentHandler(ch CheckoutRunner, s PaymentStore, intents payments.IntentCreator, log *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{checkout: ch, store: s, intents: intents, log: log}
}

// CreateIntent asks the payment processor for a client secret covering the
// given price.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}
	secret, err := h.intents.CreateIntent(c.Request.Context(), int64(math.Round(req.Price*100)))
	if err != nil {
		h.log.WithError(err).Error("payment intent creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// Checkout runs the full workflow: snapshot the cart into a pending payment,
// decrement stock, clear the cart, persist.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if payment.UserUID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user id"})
		return
	}
	inserted, err := h.checkout.Run(c.Request.Context(), payment)
	if err != nil {
		var stockErr *checkout.StockError
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		case errors.As(err, &stockErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": stockErr.Error()})
		default:
			h.log.WithError(err).Error("checkout failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, inserted)
}

func (h *PaymentHandler) ByTransactionID(c *gin.Context) {
	payment, err := h.store.PaymentByTransactionID(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// MarkPaid flips a payment to paid. Re-applying is a no-op on an already paid
// document.
func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	if err := h.store.MarkPaid(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.PaymentPaid})
}

var _ PaymentStore = (*store.Store)(nil)
var _ CheckoutRunner = (*checkout.Service)(nil)
