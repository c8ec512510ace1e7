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

type MovieService interface {
	GetMovies(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)
	CreateMovie(ctx context.Context, req *request.CatalogItemRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.CatalogItemRequest) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("count movies: %w", err)
	}

	totalPages := totalPagesFor(total, ListPageSize)
	page := clampPage(req.Page, totalPages)
	offset := (page - 1) * ListPageSize

	movies, err := s.repo.Movie.FindAll(ctx, req.SortBy, ListPageSize, offset)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", page),
			zap.String("sort_by", req.SortBy),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		genres, err := s.repo.Genre.FindByMovieID(ctx, movie.ID)
		if err != nil {
			s.log.Warn("Failed to get genres for movie",
				zap.Error(err),
				zap.String("movie_id", movie.ID.String()),
			)
		}

		movieResponses[i] = response.MovieToResponse(movie, genreNames(genres))
	}

	s.log.Debug("Movies listed",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("page", page),
		zap.String("sort_by", req.SortBy),
	)

	return response.NewPaginatedResponse(movieResponses, page, ListPageSize, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	genres, err := s.repo.Genre.FindByMovieID(ctx, movie.ID)
	if err != nil {
		s.log.Warn("Failed to get genres for movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
	}

	detail := response.MovieToDetailResponse(movie, genreNames(genres))
	return &detail, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.CatalogItemRequest) (*response.MovieResponse, error) {
	movie, genreIDs, err := s.buildMovie(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	if err := s.attachGenres(ctx, movie.ID, movie.CreatedAt, genreIDs); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Int("genre_count", len(genreIDs)),
	)

	genres, _ := s.repo.Genre.FindByMovieID(ctx, movie.ID)
	resp := response.MovieToResponse(movie, genreNames(genres))
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.CatalogItemRequest) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id: %w", err)
	}

	existing, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("movie not found")
	}

	updated, genreIDs, err := s.buildMovie(ctx, req)
	if err != nil {
		return nil, err
	}

	existing.Title = updated.Title
	existing.ReleaseDate = updated.ReleaseDate
	existing.Description = updated.Description
	existing.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, existing); err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	if err := s.repo.MovieGenre.DeleteByMovieID(ctx, existing.ID); err != nil {
		return nil, fmt.Errorf("detach movie genres: %w", err)
	}
	if err := s.attachGenres(ctx, existing.ID, existing.UpdatedAt, genreIDs); err != nil {
		return nil, err
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", existing.Title),
	)

	genres, _ := s.repo.Genre.FindByMovieID(ctx, existing.ID)
	resp := response.MovieToResponse(existing, genreNames(genres))
	return &resp, nil
}

func (s *movieService) buildMovie(ctx context.Context, req *request.CatalogItemRequest) (*entity.Movie, []uuid.UUID, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Movie validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		return nil, nil, err
	}

	genreIDs, err := s.resolveGenreIDs(ctx, req.GenreIDs)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		ReleaseDate: releaseDate,
		Description: req.Description,
	}

	return movie, genreIDs, nil
}

func (s *movieService) resolveGenreIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	genreIDs := make([]uuid.UUID, 0, len(raw))
	for _, genreIDStr := range raw {
		genreID, err := uuid.Parse(genreIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid genre id: %w", err)
		}

		genre, err := s.repo.Genre.FindByID(ctx, genreID)
		if err != nil {
			s.log.Error("Failed to check genre existence",
				zap.Error(err),
				zap.String("genre_id", genreIDStr),
			)
			return nil, fmt.Errorf("check genre: %w", err)
		}
		if genre == nil {
			return nil, fmt.Errorf("validation failed: genre not found: %s", genreIDStr)
		}

		genreIDs = append(genreIDs, genreID)
	}

	return genreIDs, nil
}

func (s *movieService) attachGenres(ctx context.Context, movieID uuid.UUID, at time.Time, genreIDs []uuid.UUID) error {
	if len(genreIDs) == 0 {
		return nil
	}

	movieGenres := make([]*entity.MovieGenre, len(genreIDs))
	for i, genreID := range genreIDs {
		movieGenres[i] = &entity.MovieGenre{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: at,
			},
			MovieID: movieID,
			GenreID: genreID,
		}
	}

	if err := s.repo.MovieGenre.CreateBatch(ctx, movieGenres); err != nil {
		s.log.Error("Failed to attach movie genres",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("attach movie genres: %w", err)
	}

	return nil
}
