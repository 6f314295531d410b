package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Techwolf78/Movie-App-Backend/internal/api/user"
	"github.com/Techwolf78/Movie-App-Backend/internal/db"
	"github.com/Techwolf78/Movie-App-Backend/internal/logger"
)

// Request/Response structures

type RegisterRequest struct {
	Name     string `json:"name" example:"Ada Lovelace"`
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"password123"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email" example:"ada@example.com"`
	NewPassword string `json:"newPassword" example:"newpassword123"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty" example:"Ada L."`
	Password string `json:"password,omitempty" example:"newpassword123"`
}

// UserView is the public projection of a stored user. The password hash never
// crosses the HTTP boundary.
type UserView struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Ada Lovelace"`
	Email     string    `json:"email" example:"ada@example.com"`
	Role      db.Role   `json:"role" example:"standard"`
	CreatedAt time.Time `json:"createdAt"`
}

type Response struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    *UserView `json:"user,omitempty"`
	Token   string    `json:"token,omitempty"`
}

func viewOf(u *db.User) *UserView {
	return &UserView{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type Handler struct {
	service *Service
	logger  *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register godoc
// @Summary		Register a new user
// @Description	Register a new user account with name, email and password
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			user	body		RegisterRequest	true	"User registration data"
// @Success		201		{object}	Response		"User registered successfully"
// @Failure		400		{object}	Response		"Bad request - invalid input"
// @Failure		409		{object}	Response		"Conflict - email already registered"
// @Failure		500		{object}	Response		"Internal server error"
// @Router			/api/v1/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		h.sendError(w, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		h.sendError(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Password == "" {
		h.sendError(w, http.StatusBadRequest, "password is required")
		return
	}

	u, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrDuplicateEmail):
			h.sendError(w, http.StatusConflict, "already registered, please login")
		case errors.Is(err, ErrPasswordTooShort):
			h.sendError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("registration failed", "error", err)
			h.sendError(w, http.StatusInternalServerError, "error in registration")
		}
		return
	}

	h.sendJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "user registered successfully",
		User:    viewOf(u),
	})
}

// Login godoc
// @Summary		User login
// @Description	Authenticate user and return a bearer token
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			credentials	body		LoginRequest	true	"User login credentials"
// @Success		200			{object}	Response		"Login successful"
// @Failure		400			{object}	Response		"Bad request - invalid input"
// @Failure		401			{object}	Response		"Unauthorized - invalid credentials"
// @Failure		500			{object}	Response		"Internal server error"
// @Router			/api/v1/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Email == "" || req.Password == "" {
		h.sendError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	u, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			// Unknown email and wrong password are indistinguishable here.
			h.sendError(w, http.StatusUnauthorized, ErrInvalidCredentials.Error())
			return
		}
		h.logger.Error("login failed", "error", err)
		h.sendError(w, http.StatusInternalServerError, "error in login")
		return
	}

	h.sendJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "login successfully",
		User:    viewOf(u),
		Token:   token,
	})
}

// ForgotPassword godoc
// @Summary		Reset a forgotten password
// @Description	Replace the password for the account with the given email
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			reset	body		ForgotPasswordRequest	true	"Password reset data"
// @Success		200		{object}	Response				"Password reset"
// @Failure		400		{object}	Response				"Bad request - invalid input"
// @Failure		500		{object}	Response				"Internal server error"
// @Router			/api/v1/auth/forgot-password [post]
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Email == "" {
		h.sendError(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.NewPassword == "" {
		h.sendError(w, http.StatusBadRequest, "new password is required")
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email, req.NewPassword); err != nil {
		if errors.Is(err, ErrPasswordTooShort) {
			h.sendError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("password reset failed", "error", err)
		h.sendError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	h.sendJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "password reset successfully",
	})
}

// UpdateProfile godoc
// @Summary		Update the authenticated user's profile
// @Description	Merge a partial name/password change into the stored profile
// @Tags			auth
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Param			profile	body		UpdateProfileRequest	true	"Profile fields to change"
// @Success		200		{object}	Response				"Profile updated"
// @Failure		400		{object}	Response				"Bad request - invalid input"
// @Failure		401		{object}	Response				"Unauthorized"
// @Failure		500		{object}	Response				"Internal server error"
// @Router			/api/v1/auth/profile [put]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := UserFromContext(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), identity.ID, ProfileUpdate{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrPasswordTooShort):
			h.sendError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrUserNotFound):
			h.sendError(w, http.StatusUnauthorized, "unauthorized")
		default:
			h.logger.Error("profile update failed", "error", err)
			h.sendError(w, http.StatusInternalServerError, "error while updating profile")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "profile updated successfully",
		User:    viewOf(updated),
	})
}

// Me godoc
// @Summary		Get current user info
// @Description	Return the identity resolved from the bearer token
// @Tags			auth
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	Response	"User information"
// @Failure		401	{object}	Response	"Unauthorized"
// @Router			/api/v1/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := UserFromContext(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	h.sendJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "ok",
		User:    viewOf(identity),
	})
}

// Admin godoc
// @Summary		Admin check
// @Description	Returns a welcome message for administrators only
// @Tags			auth
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	Response	"Admin welcome message"
// @Failure		401	{object}	Response	"Unauthorized"
// @Failure		403	{object}	Response	"Forbidden - administrator role required"
// @Router			/api/v1/auth/admin [get]
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	identity, ok := UserFromContext(r.Context())
	if !ok {
		h.sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	h.sendJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "welcome to the admin area",
		User:    viewOf(identity),
	})
}

// Helpers

func (h *Handler) sendJSON(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, statusCode int, message string) {
	h.sendJSON(w, statusCode, Response{
		Success: false,
		Message: message,
	})
}
