package wire

import (
	"media-review/internal/adaptor"
	"media-review/internal/data/repository"
	"media-review/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGame(
	r chi.Router,
	gameHandler *adaptor.GameHandler,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/games/", gameHandler.GetGames)
	r.Get("/view-game-reviews/{id}", reviewHandler.GetGameReviews)

	// ==================== GUARDED ROUTES ====================
	r.Route("/games/add/", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Get("/", gameHandler.AddForm)
		r.Post("/", gameHandler.CreateGame)
	})

	r.Route("/games/review/{id}/", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Get("/", reviewHandler.GameReviewForm)
		r.Post("/", reviewHandler.CreateGameReview)
	})

	r.Route("/games/{id}/edit", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Get("/", gameHandler.EditForm)
		r.Post("/", gameHandler.UpdateGame)
	})

	// Registered after the literal prefixes so chi matches those first.
	r.Get("/games/{id}", gameHandler.GetGameByID)
}
