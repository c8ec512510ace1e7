package wire

import (
	"media-review/internal/adaptor"
	"media-review/internal/data/repository"
	"media-review/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/movies/", movieHandler.GetMovies)
	r.Get("/view-movie-reviews/{id}", reviewHandler.GetMovieReviews)

	// ==================== GUARDED ROUTES ====================
	r.Route("/movies/add/", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Get("/", movieHandler.AddForm)
		r.Post("/", movieHandler.CreateMovie)
	})

	r.Route("/movies/review/{id}", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Get("/", reviewHandler.MovieReviewForm)
		r.Post("/", reviewHandler.CreateMovieReview)
	})

	r.Route("/movies/{id}/edit", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Get("/", movieHandler.EditForm)
		r.Post("/", movieHandler.UpdateMovie)
	})

	// Registered after the literal prefixes so chi matches those first.
	r.Get("/movies/{id}", movieHandler.GetMovieByID)
}
