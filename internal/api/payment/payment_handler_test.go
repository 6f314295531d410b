package payment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Techwolf78/Movie-App-Backend/internal/logger"
)

// Only the validation paths are covered here; creating an intent requires a
// live Stripe key.
func TestCreatePaymentIntent_InvalidInput(t *testing.T) {
	h := NewHandler("sk_test_unused", logger.New(8))

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", "{not json"},
		{"zero amount", `{"amount": 0}`},
		{"negative amount", `{"amount": -500}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(tt.body))
			h.CreatePaymentIntent(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp CreateIntentResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotEmpty(t, resp.Error)
			require.Empty(t, resp.ClientSecret)
		})
	}
}
