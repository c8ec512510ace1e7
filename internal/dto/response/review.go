package response

import (
	"time"

	"media-review/internal/data/entity"
)

type ReviewResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	GameID      *string   `json:"game_id,omitempty"`
	MovieID     *string   `json:"movie_id,omitempty"`
	Rating      float64   `json:"rating"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReviewListResponse is the view-x-reviews payload: the reviews plus the
// aggregate the listing page shows alongside them.
type ReviewListResponse struct {
	ItemID        string           `json:"item_id"`
	ItemTitle     string           `json:"item_title"`
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int64            `json:"review_count"`
}

func ReviewToResponse(review *entity.Review, username string) ReviewResponse {
	resp := ReviewResponse{
		ID:          review.ID.String(),
		UserID:      review.UserID.String(),
		Username:    username,
		Rating:      review.Rating,
		Description: review.Description,
		CreatedAt:   review.CreatedAt,
	}

	if review.GameID != nil {
		id := review.GameID.String()
		resp.GameID = &id
	}
	if review.MovieID != nil {
		id := review.MovieID.String()
		resp.MovieID = &id
	}

	return resp
}
