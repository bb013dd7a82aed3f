package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthbox-backend/internal/models"
	"healthbox-backend/internal/store"
)

type CategoryStore interface {
	AllCategories(ctx context.Context) ([]models.Category, error)
	InsertCategory(ctx context.Context, cat models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, cat models.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

type CategoryHandler struct {
	store CategoryStore
	log   *logrus.Logger
}

func NewCategoryHandler(s CategoryStore, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{store: s, log: log}
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.store.AllCategories(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil || cat.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing category name"})
		return
	}
	inserted, err := h.store.InsertCategory(c.Request.Context(), cat)
	if err != nil {
		h.log.WithError(err).Error("failed to insert category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, inserted)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := h.store.UpdateCategory(c.Request.Context(), c.Param("id"), cat); err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified": true})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

var _ CategoryStore = (*store.Store)(nil)
