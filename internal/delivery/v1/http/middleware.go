package http

import (
	"net/http"
	"strings"

	"github.com/myapplevix/store-backend/internal/usecase"
	"github.com/myapplevix/store-backend/pkg/e"
	"github.com/myapplevix/store-backend/pkg/logger"
)

// requireAdmin guards the back-office routes behind the capability token.
func requireAdmin(verifier usecase.Authorizer, logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if err := verifier.Verify(token); err != nil {
				logger.Warnf("%s %s: unauthorized", r.Method, r.URL.Path)
				WriteError(w, e.ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimPrefix(header, prefix)
}
