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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Review, error)

	// Aggregates. Average is 0 when no reviews exist (COALESCE), so the
	// presentation layer never sees a null score.
	GetGameReviewStats(ctx context.Context, gameID uuid.UUID) (float64, int64, error)
	GetMovieReviewStats(ctx context.Context, movieID uuid.UUID) (float64, int64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	// Re-check invariants here as well: a review persisted outside the
	// form flow must still satisfy the exclusivity and rating rules.
	if errs := review.Validate(); errs != nil {
		return fmt.Errorf("validation failed: review is invalid: %v", errs)
	}

	query := `
		INSERT INTO reviews (id, user_id, game_id, movie_id, rating, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.GameID,
		review.MovieID,
		review.Rating,
		review.Description,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
		)
		return fmt.Errorf("create review by user %s: %w", review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, game_id, movie_id, rating, description, created_at
		FROM reviews
		WHERE game_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, gameID)
	if err != nil {
		r.log.Error("Failed to find reviews by game ID",
			zap.Error(err),
			zap.String("game_id", gameID.String()),
		)
		return nil, fmt.Errorf("find reviews by game ID %s: %w", gameID.String(), err)
	}
	defer rows.Close()

	return r.scanReviews(rows)
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, game_id, movie_id, rating, description, created_at
		FROM reviews
		WHERE movie_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find reviews by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	return r.scanReviews(rows)
}

func (r *reviewRepository) GetGameReviewStats(ctx context.Context, gameID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0) AS avg_rating,
			COUNT(*) AS review_count
		FROM reviews
		WHERE game_id = $1
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, gameID).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get game review stats",
			zap.Error(err),
			zap.String("game_id", gameID.String()),
		)
		return 0, 0, fmt.Errorf("get game review stats for %s: %w", gameID.String(), err)
	}

	return avgRating, reviewCount, nil
}

func (r *reviewRepository) GetMovieReviewStats(ctx context.Context, movieID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0) AS avg_rating,
			COUNT(*) AS review_count
		FROM reviews
		WHERE movie_id = $1
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return 0, 0, fmt.Errorf("get movie review stats for %s: %w", movieID.String(), err)
	}

	return avgRating, reviewCount, nil
}

func (r *reviewRepository) scanReviews(rows pgx.Rows) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.GameID,
			&review.MovieID,
			&review.Rating,
			&review.Description,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}
