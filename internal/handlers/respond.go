package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthbox-backend/internal/store"
)

// respondStoreError maps store failures to the error taxonomy: missing
// document → 404, duplicate → 409, anything else → 500 with a generic body.
func respondStoreError(c *gin.Context, log *logrus.Logger, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrDuplicateCartLine):
		c.JSON(http.StatusConflict, gin.H{"error": "already in cart"})
	default:
		log.WithError(err).Error("storage operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
