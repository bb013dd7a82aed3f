package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthbox-backend/internal/models"
)

type reportStoreMock struct {
	overview []models.StatusReport
	payments []models.Payment
	revenue  []models.StatusReport

	windowStart time.Time
	windowEnd   time.Time
	windowUsed  bool
	sellerAsked string
}

func (m *reportStoreMock) StatusOverview(context.Context) ([]models.StatusReport, error) {
	return m.overview, nil
}

func (m *reportStoreMock) AllPayments(context.Context) ([]models.Payment, error) {
	return m.payments, nil
}

func (m *reportStoreMock) PaymentsBetween(_ context.Context, start, end time.Time) ([]models.Payment, error) {
	m.windowUsed = true
	m.windowStart = start
	m.windowEnd = end
	var out []models.Payment
	for _, p := range m.payments {
		if !p.Date.Before(start) && p.Date.Before(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *reportStoreMock) SellerRevenue(_ context.Context, email string) ([]models.StatusReport, error) {
	m.sellerAsked = email
	return m.revenue, nil
}

func reportRouter(m *reportStoreMock, principal string) *gin.Engine {
	r := newTestRouter()
	h := NewReportHandler(m, testLogger())
	r.GET("/admin/overview", h.Overview)
	r.GET("/sales", h.Sales)
	r.GET("/admin/payments", h.AllPayments)
	if principal != "" {
		r.GET("/seller/revenue/:email", asPrincipal(principal), h.SellerRevenue)
	}
	return r
}

func januaryPayments() []models.Payment {
	return []models.Payment{
		{TransactionID: "dec", Date: time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)},
		{TransactionID: "jan-1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{TransactionID: "jan-31", Date: time.Date(2024, 1, 31, 18, 30, 0, 0, time.UTC)},
		{TransactionID: "feb", Date: time.Date(2024, 2, 1, 1, 0, 0, 0, time.UTC)},
	}
}

func TestSales_InclusiveWindow(t *testing.T) {
	m := &reportStoreMock{payments: januaryPayments()}
	r := reportRouter(m, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sales?start=2024-01-01&end=2024-01-31", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, m.windowUsed)
	// The end bound covers the whole last day.
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), m.windowEnd)

	var got []models.Payment
	decodeBody(t, w, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "jan-1", got[0].TransactionID)
	assert.Equal(t, "jan-31", got[1].TransactionID)
}

func TestSales_MissingBoundReturnsAll(t *testing.T) {
	m := &reportStoreMock{payments: januaryPayments()}
	r := reportRouter(m, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sales?start=2024-01-01", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, m.windowUsed)
	var got []models.Payment
	decodeBody(t, w, &got)
	assert.Len(t, got, 4)
}

func TestSales_InvalidDateRejected(t *testing.T) {
	m := &reportStoreMock{}
	r := reportRouter(m, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sales?start=yesterday&end=2024-01-31", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOverview_GroupsByStatus(t *testing.T) {
	m := &reportStoreMock{overview: []models.StatusReport{
		{Status: models.PaymentPending, Count: 3, Total: 42.5},
		{Status: models.PaymentPaid, Count: 1, Total: 10},
	}}
	r := reportRouter(m, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/overview", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.StatusReport
	decodeBody(t, w, &got)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Count)
}

func TestSellerRevenue_OtherSellerRejected(t *testing.T) {
	m := &reportStoreMock{}
	r := reportRouter(m, "seller@example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/seller/revenue/rival@example.com", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, m.sellerAsked)
}

func TestSellerRevenue_UsesPrincipalEmail(t *testing.T) {
	m := &reportStoreMock{revenue: []models.StatusReport{{Status: models.PaymentPaid, Count: 2, Total: 20}}}
	r := reportRouter(m, "seller@example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/seller/revenue/seller@example.com", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "seller@example.com", m.sellerAsked)
}
