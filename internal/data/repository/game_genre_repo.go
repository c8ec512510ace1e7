package repository

import (
	"context"
	"fmt"

	"media-review/internal/data/entity"
	"media-review/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GameGenreRepository interface {
	CreateBatch(ctx context.Context, gameGenres []*entity.GameGenre) error
	DeleteByGameID(ctx context.Context, gameID uuid.UUID) error
}

type gameGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGameGenreRepository(db database.PgxIface, log *zap.Logger) GameGenreRepository {
	return &gameGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "game_genre")),
	}
}

func (r *gameGenreRepository) CreateBatch(ctx context.Context, gameGenres []*entity.GameGenre) error {
	if len(gameGenres) == 0 {
		return nil
	}

	query := `INSERT INTO game_genres (id, game_id, genre_id, created_at) VALUES `
	args := []interface{}{}

	for i, gg := range gameGenres {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d)",
			i*4+1, i*4+2, i*4+3, i*4+4)

		args = append(args, gg.ID, gg.GameID, gg.GenreID, gg.CreatedAt)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch game_genres",
			zap.Error(err),
			zap.Int("count", len(gameGenres)),
		)
		return fmt.Errorf("create batch game_genres: %w", err)
	}

	return nil
}

func (r *gameGenreRepository) DeleteByGameID(ctx context.Context, gameID uuid.UUID) error {
	query := `DELETE FROM game_genres WHERE game_id = $1`

	_, err := r.db.Exec(ctx, query, gameID)
	if err != nil {
		r.log.Error("Failed to delete game_genres by game ID",
			zap.Error(err),
			zap.String("game_id", gameID.String()),
		)
		return fmt.Errorf("delete game_genres: %w", err)
	}

	return nil
}
