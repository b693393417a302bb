package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/callhistory-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (string, error)
}

// Auth rejects requests without a valid operator bearer token and stores
// the operator name in the request context.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}
			operator, err := validator.ValidateToken(token)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := ctxutil.WithOperator(r.Context(), operator)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="callhistory"`)
	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
