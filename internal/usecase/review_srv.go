package usecase

import (
	"context"
	"fmt"
	"time"

	"media-review/internal/data/entity"
	"media-review/internal/data/repository"
	"media-review/internal/dto/request"
	"media-review/internal/dto/response"
	"media-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateGameReview(ctx context.Context, userID, gameID string, req *request.ReviewRequest) (*response.ReviewResponse, error)
	CreateMovieReview(ctx context.Context, userID, movieID string, req *request.ReviewRequest) (*response.ReviewResponse, error)
	GetGameReviews(ctx context.Context, gameID string) (*response.ReviewListResponse, error)
	GetMovieReviews(ctx context.Context, movieID string) (*response.ReviewListResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateGameReview(ctx context.Context, userID, gameID string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	gameUUID, err := uuid.Parse(gameID)
	if err != nil {
		return nil, fmt.Errorf("invalid game id: %w", err)
	}

	game, err := s.repo.Game.FindByID(ctx, gameUUID)
	if err != nil {
		return nil, fmt.Errorf("find game: %w", err)
	}
	if game == nil {
		return nil, fmt.Errorf("game not found")
	}

	return s.create(ctx, userUUID, &gameUUID, nil, req)
}

func (s *reviewService) CreateMovieReview(ctx context.Context, userID, movieID string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	return s.create(ctx, userUUID, nil, &movieUUID, req)
}

func (s *reviewService) GetGameReviews(ctx context.Context, gameID string) (*response.ReviewListResponse, error) {
	gameUUID, err := uuid.Parse(gameID)
	if err != nil {
		return nil, fmt.Errorf("invalid game id: %w", err)
	}

	game, err := s.repo.Game.FindByID(ctx, gameUUID)
	if err != nil {
		return nil, fmt.Errorf("find game: %w", err)
	}
	if game == nil {
		return nil, fmt.Errorf("game not found")
	}

	reviews, err := s.repo.Review.FindByGameID(ctx, gameUUID)
	if err != nil {
		s.log.Error("Failed to get game reviews",
			zap.Error(err),
			zap.String("game_id", gameID),
		)
		return nil, fmt.Errorf("get game reviews: %w", err)
	}

	avgRating, reviewCount, err := s.repo.Review.GetGameReviewStats(ctx, gameUUID)
	if err != nil {
		s.log.Warn("Failed to get game review stats",
			zap.Error(err),
			zap.String("game_id", gameID),
		)
	}

	return &response.ReviewListResponse{
		ItemID:        game.ID.String(),
		ItemTitle:     game.Title,
		Reviews:       s.toResponses(ctx, reviews),
		AverageRating: avgRating,
		ReviewCount:   reviewCount,
	}, nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID string) (*response.ReviewListResponse, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to get movie reviews",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	avgRating, reviewCount, err := s.repo.Review.GetMovieReviewStats(ctx, movieUUID)
	if err != nil {
		s.log.Warn("Failed to get movie review stats",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
	}

	return &response.ReviewListResponse{
		ItemID:        movie.ID.String(),
		ItemTitle:     movie.Title,
		Reviews:       s.toResponses(ctx, reviews),
		AverageRating: avgRating,
		ReviewCount:   reviewCount,
	}, nil
}

// create persists a review for exactly one target; the entity validation
// covers the exclusivity and rating invariants before anything is written.
func (s *reviewService) create(ctx context.Context, userID uuid.UUID, gameID, movieID *uuid.UUID, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:      userID,
		GameID:      gameID,
		MovieID:     movieID,
		Rating:      req.Rating,
		Description: req.Description,
	}

	if errs := review.Validate(); errs != nil {
		s.log.Warn("Review invariant check failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Float64("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review, s.usernameFor(ctx, userID))
	return &resp, nil
}

func (s *reviewService) toResponses(ctx context.Context, reviews []*entity.Review) []response.ReviewResponse {
	out := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = response.ReviewToResponse(review, s.usernameFor(ctx, review.UserID))
	}
	return out
}

func (s *reviewService) usernameFor(ctx context.Context, userID uuid.UUID) string {
	user, _ := s.repo.User.FindByID(ctx, userID)
	if user == nil {
		return ""
	}
	return user.Username
}
