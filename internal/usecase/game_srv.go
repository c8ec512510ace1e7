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

type GameService interface {
	GetGames(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.GameResponse], error)
	GetGameByID(ctx context.Context, gameID string) (*response.GameDetailResponse, error)
	CreateGame(ctx context.Context, req *request.CatalogItemRequest) (*response.GameResponse, error)
	UpdateGame(ctx context.Context, gameID string, req *request.CatalogItemRequest) (*response.GameResponse, error)
}

type gameService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGameService(repo *repository.Repository, log *zap.Logger) GameService {
	return &gameService{
		repo: repo,
		log:  log.With(zap.String("service", "game")),
	}
}

func (s *gameService) GetGames(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.GameResponse], error) {
	total, err := s.repo.Game.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count games", zap.Error(err))
		return nil, fmt.Errorf("count games: %w", err)
	}

	totalPages := totalPagesFor(total, ListPageSize)
	page := clampPage(req.Page, totalPages)
	offset := (page - 1) * ListPageSize

	games, err := s.repo.Game.FindAll(ctx, req.SortBy, ListPageSize, offset)
	if err != nil {
		s.log.Error("Failed to get games",
			zap.Error(err),
			zap.Int("page", page),
			zap.String("sort_by", req.SortBy),
		)
		return nil, fmt.Errorf("get games: %w", err)
	}

	gameResponses := make([]response.GameResponse, len(games))
	for i, game := range games {
		genres, err := s.repo.Genre.FindByGameID(ctx, game.ID)
		if err != nil {
			s.log.Warn("Failed to get genres for game",
				zap.Error(err),
				zap.String("game_id", game.ID.String()),
			)
		}

		gameResponses[i] = response.GameToResponse(game, genreNames(genres))
	}

	s.log.Debug("Games listed",
		zap.Int("count", len(games)),
		zap.Int64("total", total),
		zap.Int("page", page),
		zap.String("sort_by", req.SortBy),
	)

	return response.NewPaginatedResponse(gameResponses, page, ListPageSize, total), nil
}

func (s *gameService) GetGameByID(ctx context.Context, gameID string) (*response.GameDetailResponse, error) {
	id, err := uuid.Parse(gameID)
	if err != nil {
		return nil, fmt.Errorf("invalid game id: %w", err)
	}

	game, err := s.repo.Game.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get game by ID",
			zap.Error(err),
			zap.String("game_id", gameID),
		)
		return nil, fmt.Errorf("get game by id: %w", err)
	}
	if game == nil {
		return nil, fmt.Errorf("game not found")
	}

	genres, err := s.repo.Genre.FindByGameID(ctx, game.ID)
	if err != nil {
		s.log.Warn("Failed to get genres for game",
			zap.Error(err),
			zap.String("game_id", gameID),
		)
	}

	averageScore, reviewCount, err := s.repo.Review.GetGameReviewStats(ctx, game.ID)
	if err != nil {
		s.log.Warn("Failed to get review stats for game",
			zap.Error(err),
			zap.String("game_id", gameID),
		)
		averageScore, reviewCount = 0, 0
	}

	detail := response.GameToDetailResponse(game, genreNames(genres), averageScore, reviewCount)
	return &detail, nil
}

func (s *gameService) CreateGame(ctx context.Context, req *request.CatalogItemRequest) (*response.GameResponse, error) {
	game, genreIDs, err := s.buildGame(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Game.Create(ctx, game); err != nil {
		s.log.Error("Failed to create game",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create game: %w", err)
	}

	if err := s.attachGenres(ctx, game.ID, game.CreatedAt, genreIDs); err != nil {
		return nil, err
	}

	s.log.Info("Game created",
		zap.String("game_id", game.ID.String()),
		zap.String("title", game.Title),
		zap.Int("genre_count", len(genreIDs)),
	)

	genres, _ := s.repo.Genre.FindByGameID(ctx, game.ID)
	resp := response.GameToResponse(game, genreNames(genres))
	return &resp, nil
}

func (s *gameService) UpdateGame(ctx context.Context, gameID string, req *request.CatalogItemRequest) (*response.GameResponse, error) {
	id, err := uuid.Parse(gameID)
	if err != nil {
		return nil, fmt.Errorf("invalid game id: %w", err)
	}

	existing, err := s.repo.Game.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find game: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("game not found")
	}

	updated, genreIDs, err := s.buildGame(ctx, req)
	if err != nil {
		return nil, err
	}

	// Wholesale replacement: all four fields and the complete genre set.
	existing.Title = updated.Title
	existing.ReleaseDate = updated.ReleaseDate
	existing.Description = updated.Description
	existing.UpdatedAt = time.Now()

	if err := s.repo.Game.Update(ctx, existing); err != nil {
		s.log.Error("Failed to update game",
			zap.Error(err),
			zap.String("game_id", gameID),
		)
		return nil, fmt.Errorf("update game: %w", err)
	}

	if err := s.repo.GameGenre.DeleteByGameID(ctx, existing.ID); err != nil {
		return nil, fmt.Errorf("detach game genres: %w", err)
	}
	if err := s.attachGenres(ctx, existing.ID, existing.UpdatedAt, genreIDs); err != nil {
		return nil, err
	}

	s.log.Info("Game updated",
		zap.String("game_id", gameID),
		zap.String("title", existing.Title),
	)

	genres, _ := s.repo.Genre.FindByGameID(ctx, existing.ID)
	resp := response.GameToResponse(existing, genreNames(genres))
	return &resp, nil
}

// buildGame validates the request and resolves it into a fresh entity
// plus the verified genre id set.
func (s *gameService) buildGame(ctx context.Context, req *request.CatalogItemRequest) (*entity.Game, []uuid.UUID, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Game validation failed", zap.Any("errors", errs))
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
	game := &entity.Game{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		ReleaseDate: releaseDate,
		Description: req.Description,
	}

	return game, genreIDs, nil
}

func (s *gameService) resolveGenreIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
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
			// Unknown ids are a validation failure, never silently dropped.
			return nil, fmt.Errorf("validation failed: genre not found: %s", genreIDStr)
		}

		genreIDs = append(genreIDs, genreID)
	}

	return genreIDs, nil
}

func (s *gameService) attachGenres(ctx context.Context, gameID uuid.UUID, at time.Time, genreIDs []uuid.UUID) error {
	if len(genreIDs) == 0 {
		return nil
	}

	gameGenres := make([]*entity.GameGenre, len(genreIDs))
	for i, genreID := range genreIDs {
		gameGenres[i] = &entity.GameGenre{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: at,
			},
			GameID:  gameID,
			GenreID: genreID,
		}
	}

	if err := s.repo.GameGenre.CreateBatch(ctx, gameGenres); err != nil {
		s.log.Error("Failed to attach game genres",
			zap.Error(err),
			zap.String("game_id", gameID.String()),
		)
		return fmt.Errorf("attach game genres: %w", err)
	}

	return nil
}

func genreNames(genres []*entity.Genre) []string {
	names := make([]string, len(genres))
	for i, genre := range genres {
		names[i] = genre.Name
	}
	return names
}

func parseReleaseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, fmt.Errorf("invalid release date: %w", err)
	}
	return &t, nil
}
