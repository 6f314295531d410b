package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Techwolf78/Movie-App-Backend/internal/db"
	"github.com/Techwolf78/Movie-App-Backend/internal/logger"
)

func newTestHandler() *Handler {
	return NewHandler(newTestService(), logger.New(8))
}

func registerUser(t *testing.T, h *Handler, email string, role db.Role) (*db.User, string) {
	t.Helper()

	var u *db.User
	if role == db.RoleStandard {
		registered, err := h.service.Register(context.Background(), "Ada", email, "secret1")
		require.NoError(t, err)
		u = registered
	} else {
		// Role assignment is an operational concern, not an API operation, so
		// privileged users are seeded straight into the store.
		u = &db.User{
			ID:           uuid.New(),
			Name:         "Root",
			Email:        email,
			PasswordHash: "$2a$04$seeded",
			Role:         role,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		require.NoError(t, h.service.Store().Create(context.Background(), u))
	}

	token, err := h.service.Tokens().Issue(u.ID)
	require.NoError(t, err)
	return u, token
}

func TestRequireAuth_MissingToken(t *testing.T) {
	h := newTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	h.RequireAuth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	h := newTestHandler()
	u, _ := registerUser(t, h, "ada@x.com", db.RoleStandard)

	expired := NewTokenService("test-secret", -time.Minute)
	token, err := expired.Issue(u.ID)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.RequireAuth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_UnknownSubject(t *testing.T) {
	h := newTestHandler()

	// Token is valid but its subject was never stored.
	token, err := h.service.Tokens().Issue(uuid.New())
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an unknown subject")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.RequireAuth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ResolvesIdentity(t *testing.T) {
	h := newTestHandler()
	u, token := registerUser(t, h, "ada@x.com", db.RoleStandard)

	var seen *db.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := UserFromContext(r.Context())
		require.True(t, ok)
		seen = identity
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.RequireAuth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	require.Equal(t, u.ID, seen.ID)
}

func TestRequireRole_WrongRole(t *testing.T) {
	h := newTestHandler()
	_, token := registerUser(t, h, "ada@x.com", db.RoleStandard)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a non-admin")
	})

	protected := h.RequireAuth(h.RequireRole(db.RoleAdmin)(next))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protected.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_Admin(t *testing.T) {
	h := newTestHandler()
	u, token := registerUser(t, h, "root@x.com", db.RoleAdmin)

	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := UserFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, u.ID, identity.ID)
		called = true
	})

	protected := h.RequireAuth(h.RequireRole(db.RoleAdmin)(next))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protected.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
}

func TestRequireRole_NoIdentity(t *testing.T) {
	h := newTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without an identity")
	})

	// Role gate reached without the identity stage: unauthorized, not
	// forbidden.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	h.RequireRole(db.RoleAdmin)(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
