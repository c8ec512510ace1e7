package repository

import (
	"media-review/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Genre      GenreRepository
	Game       GameRepository
	Movie      MovieRepository
	GameGenre  GameGenreRepository
	MovieGenre MovieGenreRepository
	Review     ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Genre:      NewGenreRepository(db, log),
		Game:       NewGameRepository(db, log),
		Movie:      NewMovieRepository(db, log),
		GameGenre:  NewGameGenreRepository(db, log),
		MovieGenre: NewMovieGenreRepository(db, log),
		Review:     NewReviewRepository(db, log),
	}
}
