package response

import (
	"time"

	"media-review/internal/data/entity"
)

type GameResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ReleaseDate *string   `json:"release_date,omitempty"`
	Description *string   `json:"description,omitempty"`
	Genres      []string  `json:"genres"`
	CreatedAt   time.Time `json:"created_at"`
}

// GameDetailResponse adds the review aggregate shown on the detail page.
// AverageScore is 0 when the game has no reviews.
type GameDetailResponse struct {
	GameResponse
	AverageScore float64 `json:"average_score"`
	ReviewCount  int64   `json:"review_count"`
}

func GameToResponse(game *entity.Game, genres []string) GameResponse {
	return GameResponse{
		ID:          game.ID.String(),
		Title:       game.Title,
		ReleaseDate: formatDate(game.ReleaseDate),
		Description: game.Description,
		Genres:      genres,
		CreatedAt:   game.CreatedAt,
	}
}

func GameToDetailResponse(game *entity.Game, genres []string, averageScore float64, reviewCount int64) GameDetailResponse {
	return GameDetailResponse{
		GameResponse: GameToResponse(game, genres),
		AverageScore: averageScore,
		ReviewCount:  reviewCount,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
