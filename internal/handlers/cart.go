package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthbox-backend/internal/models"
	"healthbox-backend/internal/store"
)

type CartStore interface {
	AddCartLine(ctx context.Context, line models.CartLine) (*models.CartLine, error)
	CartLinesByUser(ctx context.Context, userUID string) ([]models.CartLine, error)
	UpdateCartQuantity(ctx context.Context, id string, quantity int) error
	DeleteCartLine(ctx context.Context, id string) error
}

type CartHandler struct {
	store CartStore
	log   *logrus.Logger
}

func NewCartHandler(s CartStore, log *logrus.Logger) *CartHandler {
	return &CartHandler{store: s, log: log}
}

// Add inserts one cart line. Presence checks only; a zero price or stock is
// treated as missing, mirroring the source validation.
func (h *CartHandler) Add(c *gin.Context) {
	var line models.CartLine
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if line.Name == "" || line.Company == "" || line.Price == 0 || line.UserUID == "" ||
		line.Image == "" || line.Stock == 0 || line.SellerEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}
	if line.Quantity <= 0 {
		line.Quantity = 1
	}
	inserted, err := h.store.AddCartLine(c.Request.Context(), line)
	if err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, inserted)
}

func (h *CartHandler) List(c *gin.Context) {
	userUID := c.Param("userUid")
	if userUID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user id"})
		return
	}
	lines, err := h.store.CartLinesByUser(c.Request.Context(), userUID)
	if err != nil {
		h.log.WithError(err).Error("failed to list cart")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
		return
	}
	if err := h.store.UpdateCartQuantity(c.Request.Context(), c.Param("id"), req.Quantity); err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified": true})
}

func (h *CartHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteCartLine(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

var _ CartStore = (*store.Store)(nil)
