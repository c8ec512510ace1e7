package repository

import (
	"context"
	"fmt"

	"media-review/internal/data/entity"
	"media-review/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// gameSortColumns whitelists the columns ORDER BY may use. Anything else
// falls back to title, so a bad sort parameter degrades instead of erroring.
var gameSortColumns = map[string]string{
	"title":        "title",
	"release_date": "release_date",
	"description":  "description",
	"created_at":   "created_at",
}

type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error)
	FindAll(ctx context.Context, sortBy string, limit, offset int) ([]*entity.Game, error)
	CountAll(ctx context.Context) (int64, error)
	SearchByTitle(ctx context.Context, query string) ([]*entity.Game, error)
	Update(ctx context.Context, game *entity.Game) error
}

type gameRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGameRepository(db database.PgxIface, log *zap.Logger) GameRepository {
	return &gameRepository{
		db:  db,
		log: log.With(zap.String("repository", "game")),
	}
}

func (r *gameRepository) Create(ctx context.Context, game *entity.Game) error {
	query := `
		INSERT INTO games (id, title, release_date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		game.ID,
		game.Title,
		game.ReleaseDate,
		game.Description,
		game.CreatedAt,
		game.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create game",
			zap.Error(err),
			zap.String("title", game.Title),
		)
		return fmt.Errorf("create game: %w", err)
	}

	return nil
}

func (r *gameRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	query := `
		SELECT id, title, release_date, description, created_at, updated_at
		FROM games
		WHERE id = $1
	`

	var game entity.Game
	err := r.db.QueryRow(ctx, query, id).Scan(
		&game.ID,
		&game.Title,
		&game.ReleaseDate,
		&game.Description,
		&game.CreatedAt,
		&game.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find game by ID",
			zap.Error(err),
			zap.String("game_id", id.String()),
		)
		return nil, fmt.Errorf("find game: %w", err)
	}

	return &game, nil
}

func (r *gameRepository) FindAll(ctx context.Context, sortBy string, limit, offset int) ([]*entity.Game, error) {
	column, ok := gameSortColumns[sortBy]
	if !ok {
		column = "title"
	}

	query := fmt.Sprintf(`
		SELECT id, title, release_date, description, created_at, updated_at
		FROM games
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2
	`, column)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all games",
			zap.Error(err),
			zap.String("sort_by", column),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

func (r *gameRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM games`

	var total int64
	err := r.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count games", zap.Error(err))
		return 0, fmt.Errorf("count games: %w", err)
	}

	return total, nil
}

func (r *gameRepository) SearchByTitle(ctx context.Context, query string) ([]*entity.Game, error) {
	sql := `
		SELECT id, title, release_date, description, created_at, updated_at
		FROM games
		WHERE title ILIKE $1
		ORDER BY title ASC
	`

	rows, err := r.db.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		r.log.Error("Failed to search games",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

func (r *gameRepository) Update(ctx context.Context, game *entity.Game) error {
	query := `
		UPDATE games
		SET title = $2, release_date = $3, description = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		game.ID,
		game.Title,
		game.ReleaseDate,
		game.Description,
		game.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update game",
			zap.Error(err),
			zap.String("game_id", game.ID.String()),
		)
		return fmt.Errorf("update game: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("game %s not found", game.ID.String())
	}

	return nil
}

func (r *gameRepository) scanGames(rows pgx.Rows) ([]*entity.Game, error) {
	var games []*entity.Game
	for rows.Next() {
		var game entity.Game
		err := rows.Scan(
			&game.ID,
			&game.Title,
			&game.ReleaseDate,
			&game.Description,
			&game.CreatedAt,
			&game.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan game row", zap.Error(err))
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, &game)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game rows: %w", err)
	}

	return games, nil
}
