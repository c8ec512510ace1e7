package adaptor

import (
	"net/http"
	"strings"

	"media-review/internal/dto/request"
	"media-review/internal/usecase"
	"media-review/pkg/middleware"
	"media-review/pkg/utils"

	"go.uber.org/zap"
)

// loginFailedMessage is shown for every failed login attempt so the
// response never reveals whether the username exists.
const loginFailedMessage = "Invalid username or password. Please try again."

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// LoginForm handles GET /login/
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Login", map[string]string{
		"next": safeNext(r.URL.Query().Get("next")),
	})
}

// Login handles POST /login/
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    resp.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if isFormRequest(r) {
		http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusFound)
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// RegisterForm handles GET /register/
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Register", nil)
}

// Register handles POST /register/
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := decodeRequest(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	// A fresh account is not logged in; the user signs in themselves.
	if isFormRequest(r) {
		http.Redirect(w, r, "/login/", http.StatusFound)
		return
	}

	utils.ResponseCreated(w, "Registration successful", resp)
}

// Logout handles POST /logout/. A missing session is a no-op, not an
// error, so the route is not behind the auth guard.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		token = cookie.Value
	} else if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		token = strings.TrimPrefix(auth, "Bearer ")
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.handleServiceError(w, err, "logout")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	if isFormRequest(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// handleServiceError handles different types of errors
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "passwords do not match"):
		h.log.Warn(operation+" failed - password mismatch", zap.Error(err))
		utils.ResponseBadRequest(w, "Passwords do not match", nil)

	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, "Username already exists")

	case strings.Contains(errMsg, "invalid credentials"):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, loginFailedMessage)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
