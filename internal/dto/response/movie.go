package response

import (
	"time"

	"media-review/internal/data/entity"
)

type MovieResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ReleaseDate *string   `json:"release_date,omitempty"`
	Description *string   `json:"description,omitempty"`
	Genres      []string  `json:"genres"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovieDetailResponse carries no review aggregate; only the game detail
// page shows an average score.
type MovieDetailResponse struct {
	MovieResponse
}

func MovieToResponse(movie *entity.Movie, genres []string) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		ReleaseDate: formatDate(movie.ReleaseDate),
		Description: movie.Description,
		Genres:      genres,
		CreatedAt:   movie.CreatedAt,
	}
}

func MovieToDetailResponse(movie *entity.Movie, genres []string) MovieDetailResponse {
	return MovieDetailResponse{
		MovieResponse: MovieToResponse(movie, genres),
	}
}
