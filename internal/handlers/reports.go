package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthbox-backend/internal/middleware"
	"healthbox-backend/internal/models"
	"healthbox-backend/internal/store"
)

const dateLayout = "2006-01-02"

type ReportStore interface {
	StatusOverview(ctx context.Context) ([]models.StatusReport, error)
	AllPayments(ctx context.Context) ([]models.Payment, error)
	PaymentsBetween(ctx context.Context, start, end time.Time) ([]models.Payment, error)
	SellerRevenue(ctx context.Context, sellerEmail string) ([]models.StatusReport, error)
}

type ReportHandler struct {
	store ReportStore
	log   *logrus.Logger
}

func NewReportHandler(s ReportStore, log *logrus.Logger) *ReportHandler {
	return &ReportHandler{store: s, log: log}
}

// Overview groups all payments by status with count and summed amount.
func (h *ReportHandler) Overview(c *gin.Context) {
	reports, err := h.store.StatusOverview(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("overview aggregation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

// Sales returns payments in the inclusive [start, end] calendar-day window.
// If either bound is omitted, every payment is returned.
func (h *ReportHandler) Sales(c *gin.Context) {
	startStr := c.Query("start")
	endStr := c.Query("end")

	if startStr == "" || endStr == "" {
		payments, err := h.store.AllPayments(c.Request.Context())
		if err != nil {
			h.log.WithError(err).Error("sales listing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, payments)
		return
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date"})
		return
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date"})
		return
	}
	// End bound is inclusive of its whole day.
	payments, err := h.store.PaymentsBetween(c.Request.Context(), start, end.AddDate(0, 0, 1))
	if err != nil {
		h.log.WithError(err).Error("sales window query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *ReportHandler) AllPayments(c *gin.Context) {
	payments, err := h.store.AllPayments(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("payments listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// SellerRevenue reports a seller's own sold lines grouped by payment status.
// The path email must match the authenticated principal.
func (h *ReportHandler) SellerRevenue(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok || principal.Email != c.Param("email") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "forbidden access"})
		return
	}
	reports, err := h.store.SellerRevenue(c.Request.Context(), principal.Email)
	if err != nil {
		h.log.WithError(err).Error("seller revenue aggregation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

var _ ReportStore = (*store.Store)(nil)
