package infra

import (
	"context"
	"net/http"
	"strings"

	"github.com/s21platform/messaging-service/internal/config"
)

// TokenVerifier resolves a bearer token to a user identity.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthInterceptorHTTP rejects requests without a valid bearer token and puts
// the resolved user id into the context under config.KeyUUID.
func AuthInterceptorHTTP(next http.Handler, verifier TokenVerifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			http.Error(w, "missing authorization token", http.StatusUnauthorized)
			return
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			http.Error(w, "invalid authorization token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}

	// websocket clients cannot set headers from the browser
	return r.URL.Query().Get("token")
}
