package wire

import (
	"media-review/internal/adaptor"
	"media-review/internal/data/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Get("/login/", authHandler.LoginForm)
	r.Post("/login/", authHandler.Login)
	r.Get("/register/", authHandler.RegisterForm)
	r.Post("/register/", authHandler.Register)

	// Logout is deliberately unguarded: without a session it is a no-op
	// rather than a redirect to the login page.
	r.Post("/logout/", authHandler.Logout)
}
