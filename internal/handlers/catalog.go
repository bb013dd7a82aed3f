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

const topCategoryLimit = 6

// CatalogStore is the storage surface the catalog routes need.
type CatalogStore interface {
	TopCategories(ctx context.Context, limit int) ([]models.Category, error)
	DiscountedMedicines(ctx context.Context) ([]models.Medicine, error)
	AllMedicines(ctx context.Context) ([]models.Medicine, error)
	MedicineByID(ctx context.Context, id string) (*models.Medicine, error)
	MedicinesByCategory(ctx context.Context, category string) ([]models.Medicine, error)
	InsertMedicine(ctx context.Context, med models.Medicine) (*models.Medicine, error)
	UpdateMedicine(ctx context.Context, id string, med models.Medicine) error
	DeleteMedicine(ctx context.Context, id string) error
}

// CatalogCache caches the hot read-only catalog views. May be nil when no
// redis is configured; the handler then always reads through.
type CatalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
}

type CatalogHandler struct {
	store CatalogStore
	cache CatalogCache
	log   *logrus.Logger
}

func NewCatalogHandler(s CatalogStore, c CatalogCache, log *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{store: s, cache: c, log: log}
}

func (h *CatalogHandler) TopCategories(c *gin.Context) {
	ctx := c.Request.Context()
	if h.cache != nil {
		var cats []models.Category
		if err := h.cache.Get(ctx, "catalog:top-categories", &cats); err == nil {
			c.JSON(http.StatusOK, cats)
			return
		}
	}
	cats, err := h.store.TopCategories(ctx, topCategoryLimit)
	if err != nil {
		h.log.WithError(err).Error("failed to load top categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if h.cache != nil {
		if err := h.cache.Set(ctx, "catalog:top-categories", cats); err != nil {
			h.log.WithError(err).Warn("failed to cache top categories")
		}
	}
	c.JSON(http.StatusOK, cats)
}

func (h *CatalogHandler) DiscountedMedicines(c *gin.Context) {
	ctx := c.Request.Context()
	if h.cache != nil {
		var meds []models.Medicine
		if err := h.cache.Get(ctx, "catalog:discounted", &meds); err == nil {
			c.JSON(http.StatusOK, meds)
			return
		}
	}
	meds, err := h.store.DiscountedMedicines(ctx)
	if err != nil {
		h.log.WithError(err).Error("failed to load discounted medicines")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if h.cache != nil {
		if err := h.cache.Set(ctx, "catalog:discounted", meds); err != nil {
			h.log.WithError(err).Warn("failed to cache discounted medicines")
		}
	}
	c.JSON(http.StatusOK, meds)
}

func (h *CatalogHandler) AllMedicines(c *gin.Context) {
	meds, err := h.store.AllMedicines(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to load medicines")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, meds)
}

func (h *CatalogHandler) MedicineByID(c *gin.Context) {
	med, err := h.store.MedicineByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, med)
}

func (h *CatalogHandler) MedicinesByCategory(c *gin.Context) {
	meds, err := h.store.MedicinesByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.log.WithError(err).Error("failed to load medicines by category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, meds)
}

func (h *CatalogHandler) AddMedicine(c *gin.Context) {
	var med models.Medicine
	if err := c.ShouldBindJSON(&med); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if med.Name == "" || med.Company == "" || med.Price == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}
	if principal, ok := middleware.PrincipalFrom(c); ok {
		med.SellerEmail = principal.Email
	}
	inserted, err := h.store.InsertMedicine(c.Request.Context(), med)
	if err != nil {
		h.log.WithError(err).Error("failed to insert medicine")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, inserted)
}

func (h *CatalogHandler) UpdateMedicine(c *gin.Context) {
	var med models.Medicine
	if err := c.ShouldBindJSON(&med); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.store.UpdateMedicine(c.Request.Context(), c.Param("id"), med); err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified": true})
}

func (h *CatalogHandler) DeleteMedicine(c *gin.Context) {
	if err := h.store.DeleteMedicine(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ReviewStore serves the read-only review endpoint.
type ReviewStore interface {
	TopReviews(ctx context.Context, limit int) ([]models.Review, error)
}

type ReviewHandler struct {
	store ReviewStore
	log   *logrus.Logger
}

func NewReviewHandler(s ReviewStore, log *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{store: s, log: log}
}

func (h *ReviewHandler) TopReviews(c *gin.Context) {
	reviews, err := h.store.TopReviews(c.Request.Context(), topCategoryLimit)
	if err != nil {
		h.log.WithError(err).Error("failed to load reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

var _ CatalogStore = (*store.Store)(nil)
var _ ReviewStore = (*store.Store)(nil)
