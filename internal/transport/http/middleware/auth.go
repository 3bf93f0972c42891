package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
	"github.com/acmehq/dashboard/services/billing-service/internal/transport/http/response"
)

type ctxKey string

const ctxUserID ctxKey = "user_id"

// TokenVerifier is the part of the token signer the middleware needs.
type TokenVerifier interface {
	VerifyAccessToken(token string) (userID string, err error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuth(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (a *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearerToken(r)
		if tok == "" {
			response.WriteError(w, r, domain.ErrTokenMissing())
			return
		}

		userID, err := a.verifier.VerifyAccessToken(tok)
		if err != nil {
			response.WriteError(w, r, domain.ErrTokenInvalid())
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserID, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// UserID returns the authenticated user id set by Require.
func UserID(r *http.Request) string {
	if v, ok := r.Context().Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}
