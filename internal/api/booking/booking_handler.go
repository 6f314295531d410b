package booking

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Techwolf78/Movie-App-Backend/internal/logger"
	"github.com/Techwolf78/Movie-App-Backend/internal/mail"
)

// Details carries the booking a confirmation mail is sent for.
type Details struct {
	SelectedMovie    string   `json:"selectedMovie"`
	SelectedScreen   string   `json:"selectedScreen"`
	SelectedShowtime string   `json:"selectedShowtime"`
	SelectedSeats    []string `json:"selectedSeats"`
	TotalPrice       float64  `json:"totalPrice"`
}

type ConfirmRequest struct {
	Email          string   `json:"email"`
	BookingDetails *Details `json:"bookingDetails"`
}

type ConfirmResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Handler struct {
	mailer mail.Sender
	logger *logger.Logger
}

func NewHandler(mailer mail.Sender, log *logger.Logger) *Handler {
	return &Handler{
		mailer: mailer,
		logger: log,
	}
}

// ConfirmBooking godoc
// @Summary		Confirm a booking
// @Description	Validate booking details and send a confirmation email
// @Tags			booking
// @Accept			json
// @Produce		json
// @Param			booking	body		ConfirmRequest	true	"Booking confirmation data"
// @Success		200		{object}	ConfirmResponse	"Booking confirmed and email sent"
// @Failure		400		{object}	ConfirmResponse	"Bad request - incomplete booking details"
// @Failure		500		{object}	ConfirmResponse	"Internal server error"
// @Router			/confirm-booking [post]
func (h *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.send(w, http.StatusBadRequest, ConfirmResponse{Message: "invalid JSON body"})
		return
	}

	if req.Email == "" || req.BookingDetails == nil {
		h.send(w, http.StatusBadRequest, ConfirmResponse{Message: "email and booking details are required"})
		return
	}

	d := req.BookingDetails
	if d.SelectedMovie == "" || d.SelectedScreen == "" || d.SelectedShowtime == "" ||
		len(d.SelectedSeats) == 0 || d.TotalPrice <= 0 {
		h.send(w, http.StatusBadRequest, ConfirmResponse{Message: "incomplete booking details"})
		return
	}

	body := fmt.Sprintf(
		"Thank you for your booking! Here are the details:\n"+
			"Movie Name: %s\n"+
			"Screen Name: %s\n"+
			"Showtime: %s\n"+
			"Selected Seat Number: %s\n"+
			"Total Price: ₹%.2f",
		d.SelectedMovie, d.SelectedScreen, d.SelectedShowtime,
		strings.Join(d.SelectedSeats, ", "), d.TotalPrice,
	)

	if err := h.mailer.Send(r.Context(), req.Email, "Booking Confirmation", body); err != nil {
		h.logger.Error("failed to send confirmation email", "error", err)
		h.send(w, http.StatusInternalServerError, ConfirmResponse{Message: "error confirming booking"})
		return
	}

	h.send(w, http.StatusOK, ConfirmResponse{
		Success: true,
		Message: "booking confirmed and email sent",
	})
}

func (h *Handler) send(w http.ResponseWriter, statusCode int, resp ConfirmResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
