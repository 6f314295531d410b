package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Techwolf78/Movie-App-Backend/internal/logger"
)

type stubSender struct {
	to      string
	subject string
	body    string
	calls   int
}

func (s *stubSender) Send(_ context.Context, to, subject, body string) error {
	s.to = to
	s.subject = subject
	s.body = body
	s.calls++
	return nil
}

func confirm(t *testing.T, h *Handler, req ConfirmRequest) (*httptest.ResponseRecorder, ConfirmResponse) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(req))

	rec := httptest.NewRecorder()
	h.ConfirmBooking(rec, httptest.NewRequest(http.MethodPost, "/confirm-booking", &buf))

	var resp ConfirmResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestConfirmBooking(t *testing.T) {
	sender := &stubSender{}
	h := NewHandler(sender, logger.New(8))

	rec, resp := confirm(t, h, ConfirmRequest{
		Email: "ada@x.com",
		BookingDetails: &Details{
			SelectedMovie:    "Inception",
			SelectedScreen:   "Screen 2",
			SelectedShowtime: "19:30",
			SelectedSeats:    []string{"A1", "A2"},
			TotalPrice:       450,
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)
	require.Equal(t, 1, sender.calls)
	require.Equal(t, "ada@x.com", sender.to)
	require.Equal(t, "Booking Confirmation", sender.subject)
	require.Contains(t, sender.body, "Inception")
	require.Contains(t, sender.body, "A1, A2")
}

func TestConfirmBooking_IncompleteDetails(t *testing.T) {
	sender := &stubSender{}
	h := NewHandler(sender, logger.New(8))

	tests := []struct {
		name string
		req  ConfirmRequest
	}{
		{"missing email", ConfirmRequest{BookingDetails: &Details{SelectedMovie: "Inception"}}},
		{"missing details", ConfirmRequest{Email: "ada@x.com"}},
		{"missing seats", ConfirmRequest{
			Email: "ada@x.com",
			BookingDetails: &Details{
				SelectedMovie:    "Inception",
				SelectedScreen:   "Screen 2",
				SelectedShowtime: "19:30",
				TotalPrice:       450,
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := confirm(t, h, tt.req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.False(t, resp.Success)
		})
	}

	require.Equal(t, 0, sender.calls)
}
