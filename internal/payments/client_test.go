package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntent_SendsAmountAndAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		var req struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(1999), req.Amount)
		assert.Equal(t, "usd", req.Currency)

		json.NewEncoder(w).Encode(map[string]string{"clientSecret": "pi_secret_abc"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_123")
	secret, err := client.CreateIntent(context.Background(), 1999)

	require.NoError(t, err)
	assert.Equal(t, "pi_secret_abc", secret)
}

func TestCreateIntent_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_123")
	_, err := client.CreateIntent(context.Background(), 500)

	assert.Error(t, err)
}

func TestCreateIntent_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "sk_test_123")
	_, err := client.CreateIntent(context.Background(), 500)

	assert.Error(t, err)
}
