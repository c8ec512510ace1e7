package usecase

import (
	"media-review/internal/data/repository"
	"media-review/pkg/utils"

	"go.uber.org/zap"
)

// ListPageSize is the fixed page size for the game and movie list views.
const ListPageSize = 5

type Service struct {
	Auth   AuthService
	Game   GameService
	Movie  MovieService
	Genre  GenreService
	Review ReviewService
	Search SearchService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		Game:   NewGameService(repo, log),
		Movie:  NewMovieService(repo, log),
		Genre:  NewGenreService(repo, log),
		Review: NewReviewService(repo, log),
		Search: NewSearchService(repo, log),
	}
}

// clampPage keeps a 1-indexed page within [1, totalPages]. An
// out-of-range page lands on the nearest valid one instead of erroring,
// and an empty collection still counts as one page.
func clampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func totalPagesFor(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
