package usecase

import (
	"context"
	"fmt"
	"strings"

	"media-review/internal/data/repository"
	"media-review/internal/dto/response"

	"go.uber.org/zap"
)

type SearchService interface {
	Search(ctx context.Context, query string) (*response.SearchResponse, error)
}

type searchService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSearchService(repo *repository.Repository, log *zap.Logger) SearchService {
	return &searchService{
		repo: repo,
		log:  log.With(zap.String("service", "search")),
	}
}

func (s *searchService) Search(ctx context.Context, query string) (*response.SearchResponse, error) {
	result := &response.SearchResponse{
		Query:  query,
		Games:  []response.GameResponse{},
		Movies: []response.MovieResponse{},
	}

	// An empty query returns two empty sets, not the full catalogs.
	if strings.TrimSpace(query) == "" {
		return result, nil
	}

	games, err := s.repo.Game.SearchByTitle(ctx, query)
	if err != nil {
		s.log.Error("Failed to search games", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("search games: %w", err)
	}

	movies, err := s.repo.Movie.SearchByTitle(ctx, query)
	if err != nil {
		s.log.Error("Failed to search movies", zap.Error(err), zap.String("query", query))
		return nil, fmt.Errorf("search movies: %w", err)
	}

	for _, game := range games {
		genres, _ := s.repo.Genre.FindByGameID(ctx, game.ID)
		result.Games = append(result.Games, response.GameToResponse(game, genreNames(genres)))
	}

	for _, movie := range movies {
		genres, _ := s.repo.Genre.FindByMovieID(ctx, movie.ID)
		result.Movies = append(result.Movies, response.MovieToResponse(movie, genreNames(genres)))
	}

	s.log.Debug("Search completed",
		zap.String("query", query),
		zap.Int("games", len(result.Games)),
		zap.Int("movies", len(result.Movies)),
	)

	return result, nil
}
