package middleware

import (
	"net/http"
	"strings"

	"movie-review/pkg/token"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

// Authenticate attaches the caller of a valid access token to the request
// context. Requests without an Authorization header pass through anonymous;
// a header carrying a bad token is rejected.
func Authenticate(tokens *token.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !strings.HasPrefix(authHeader, bearerPrefix) {
				utils.ResponseUnauthorized(w, "Authorization header must contain two space-delimited values")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))

			claims, err := tokens.ValidateAccessToken(raw)
			if err != nil {
				logger.Debug("Access token rejected", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Given token not valid for any token type")
				return
			}

			userID, err := claims.UserUUID()
			if err != nil {
				logger.Warn("Access token with malformed subject", zap.String("user_id", claims.UserID))
				utils.ResponseUnauthorized(w, "Given token not valid for any token type")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests. It must run after Authenticate.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			utils.ResponseUnauthorized(w, "Authentication credentials were not provided.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
