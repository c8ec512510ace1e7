package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"media-review/internal/data/repository"
	"media-review/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookie is the cookie that carries the opaque session token.
const SessionCookie = "session_token"

// extractToken reads the session token from the cookie, falling back to
// an Authorization bearer header for non-browser clients.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// redirectToLogin sends the browser to the login page, preserving the
// requested path so login can bounce the user back.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Path
	if r.URL.RawQuery != "" {
		next += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, "/login/?next="+url.QueryEscape(next), http.StatusFound)
}

// AuthSession guards routes that require a logged-in user. Requests
// without a valid session are redirected to the login page.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				redirectToLogin(w, r)
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				redirectToLogin(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
