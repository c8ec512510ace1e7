package wire

import (
	"media-review/internal/adaptor"
	"media-review/internal/data/repository"
	"media-review/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(
	r chi.Router,
	genreHandler *adaptor.GenreHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/genre/add/", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Get("/", genreHandler.AddForm)
		r.Post("/", genreHandler.CreateGenre)
	})
}
