package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthbox-backend/internal/middleware"
	"healthbox-backend/internal/models"
	"healthbox-backend/internal/store"
)

type AdStore interface {
	AllAds(ctx context.Context) ([]models.Advertisement, error)
	SliderAds(ctx context.Context) ([]models.Advertisement, error)
	InsertAd(ctx context.Context, ad models.Advertisement) (*models.Advertisement, error)
	SetOnSlider(ctx context.Context, id string, onSlider bool) error
}

type AdHandler struct {
	store AdStore
	log   *logrus.Logger
}

func NewAdHandler(s AdStore, log *logrus.Logger) *AdHandler {
	return &AdHandler{store: s, log: log}
}

func (h *AdHandler) List(c *gin.Context) {
	ads, err := h.store.AllAds(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list advertisements")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (h *AdHandler) Slider(c *gin.Context) {
	ads, err := h.store.SliderAds(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list slider advertisements")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, ads)
}

func (h *AdHandler) Create(c *gin.Context) {
	var ad models.Advertisement
	if err := c.ShouldBindJSON(&ad); err != nil || ad.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing banner image"})
		return
	}
	if principal, ok := middleware.PrincipalFrom(c); ok {
		ad.SellerEmail = principal.Email
	}
	ad.OnSlider = false
	inserted, err := h.store.InsertAd(c.Request.Context(), ad)
	if err != nil {
		h.log.WithError(err).Error("failed to insert advertisement")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, inserted)
}

// ToggleSlider sets whether a banner shows on the home slider.
func (h *AdHandler) ToggleSlider(c *gin.Context) {
	var req struct {
		OnSlider bool `json:"onSlider"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.store.SetOnSlider(c.Request.Context(), c.Param("id"), req.OnSlider); err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"onSlider": req.OnSlider})
}

var _ AdStore = (*store.Store)(nil)
