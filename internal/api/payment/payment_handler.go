package payment

import (
	"encoding/json"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/Techwolf78/Movie-App-Backend/internal/logger"
)

type CreateIntentRequest struct {
	Amount int64 `json:"amount" example:"50000"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret,omitempty"`
	Error        string `json:"error,omitempty"`
}

// Handler creates Stripe payment intents. It is thin glue around the Stripe
// SDK; amounts are in the smallest currency unit (paise).
type Handler struct {
	stripe *client.API
	logger *logger.Logger
}

func NewHandler(secretKey string, log *logger.Logger) *Handler {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &Handler{
		stripe: sc,
		logger: log,
	}
}

// CreatePaymentIntent godoc
// @Summary		Create a payment intent
// @Description	Create a Stripe payment intent for the given amount in INR
// @Tags			payment
// @Accept			json
// @Produce		json
// @Param			payment	body		CreateIntentRequest		true	"Payment amount in paise"
// @Success		200		{object}	CreateIntentResponse	"Client secret for the intent"
// @Failure		400		{object}	CreateIntentResponse	"Bad request - invalid amount"
// @Failure		500		{object}	CreateIntentResponse	"Internal server error"
// @Router			/create-payment-intent [post]
func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.send(w, http.StatusBadRequest, CreateIntentResponse{Error: "invalid JSON body"})
		return
	}

	if req.Amount <= 0 {
		h.send(w, http.StatusBadRequest, CreateIntentResponse{Error: "amount must be positive"})
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(string(stripe.CurrencyINR)),
	}

	intent, err := h.stripe.PaymentIntents.New(params)
	if err != nil {
		h.logger.Error("failed to create payment intent", "error", err)
		h.send(w, http.StatusInternalServerError, CreateIntentResponse{Error: "error creating payment intent"})
		return
	}

	h.send(w, http.StatusOK, CreateIntentResponse{ClientSecret: intent.ClientSecret})
}

func (h *Handler) send(w http.ResponseWriter, statusCode int, resp CreateIntentResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
