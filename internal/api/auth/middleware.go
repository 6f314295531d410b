package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Techwolf78/Movie-App-Backend/internal/db"
)

type contextKey string

const userContextKey contextKey = "auth_user"

// UserFromContext returns the identity resolved by RequireAuth.
func UserFromContext(ctx context.Context) (*db.User, bool) {
	u, ok := ctx.Value(userContextKey).(*db.User)
	return u, ok
}

// RequireAuth extracts the bearer token from Authorization, verifies it,
// resolves the subject through the credential store and injects the identity
// into the request context. Every failure mode (missing token, malformed,
// expired, bad signature, unknown subject) is surfaced uniformly as 401.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			h.sendError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			h.sendError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		userID, err := h.service.Tokens().Verify(parts[1])
		if err != nil {
			h.sendError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		u, err := h.service.Store().FindByID(r.Context(), userID)
		if err != nil {
			h.logger.Error("failed to resolve token subject", "error", err)
			h.sendError(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		if u == nil {
			h.sendError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route on the resolved identity's role. It must be
// composed after RequireAuth; a request that reaches it without an identity
// is unauthorized, a mismatched role is forbidden.
func (h *Handler) RequireRole(role db.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				h.sendError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if u.Role != role {
				h.sendError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
