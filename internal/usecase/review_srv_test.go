package usecase

import (
	"context"
	"testing"

	"media-review/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGameReviewRatingBounds(t *testing.T) {
	tests := []struct {
		name    string
		rating  float64
		wantErr string
	}{
		{"below minimum", 0.9, "too low"},
		{"at minimum", 1.0, ""},
		{"mid range", 7.5, ""},
		{"at maximum", 10.0, ""},
		{"above maximum", 10.1, "too high"},
		{"two decimal places", 7.55, "decimal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo()
			game := newTestGame("Celeste")
			repo.Game.(*fakeGameRepo).games = append(repo.Game.(*fakeGameRepo).games, game)
			service := newTestService(repo)

			resp, err := service.Review.CreateGameReview(context.Background(), uuid.NewString(), game.ID.String(), &request.ReviewRequest{
				Rating:      tt.rating,
				Description: "memorable",
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "validation failed")
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, repo.Review.(*fakeReviewRepo).reviews)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.rating, resp.Rating)
			require.NotNil(t, resp.GameID)
			assert.Nil(t, resp.MovieID)
		})
	}
}

func TestCreateGameReviewTargetMissing(t *testing.T) {
	service := newTestService(newTestRepo())

	_, err := service.Review.CreateGameReview(context.Background(), uuid.NewString(), uuid.NewString(), &request.ReviewRequest{
		Rating:      8.0,
		Description: "great",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game not found")
}

func TestCreateMovieReviewTargetsMovieOnly(t *testing.T) {
	repo := newTestRepo()
	movie := newTestMovie("Arrival")
	repo.Movie.(*fakeMovieRepo).movies = append(repo.Movie.(*fakeMovieRepo).movies, movie)
	service := newTestService(repo)

	resp, err := service.Review.CreateMovieReview(context.Background(), uuid.NewString(), movie.ID.String(), &request.ReviewRequest{
		Rating:      9.5,
		Description: "stunning",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.MovieID)
	assert.Nil(t, resp.GameID)
	assert.Equal(t, movie.ID.String(), *resp.MovieID)
}

func TestCreateReviewMissingDescription(t *testing.T) {
	repo := newTestRepo()
	game := newTestGame("Celeste")
	repo.Game.(*fakeGameRepo).games = append(repo.Game.(*fakeGameRepo).games, game)
	service := newTestService(repo)

	_, err := service.Review.CreateGameReview(context.Background(), uuid.NewString(), game.ID.String(), &request.ReviewRequest{
		Rating: 8.0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetGameReviewsWithUsernames(t *testing.T) {
	repo := newTestRepo()
	game := newTestGame("Outer Wilds")
	repo.Game.(*fakeGameRepo).games = append(repo.Game.(*fakeGameRepo).games, game)
	service := newTestService(repo)

	_, err := service.Auth.Register(context.Background(), registerReq("frank", "secret", "secret"))
	require.NoError(t, err)
	user := repo.User.(*fakeUserRepo).users["frank"]

	_, err = service.Review.CreateGameReview(context.Background(), user.ID.String(), game.ID.String(), &request.ReviewRequest{
		Rating:      8.5,
		Description: "mind-bending",
	})
	require.NoError(t, err)
	_, err = service.Review.CreateGameReview(context.Background(), user.ID.String(), game.ID.String(), &request.ReviewRequest{
		Rating:      9.0,
		Description: "even better the second time",
	})
	require.NoError(t, err)

	list, err := service.Review.GetGameReviews(context.Background(), game.ID.String())
	require.NoError(t, err)

	assert.Equal(t, game.Title, list.ItemTitle)
	assert.InDelta(t, 8.75, list.AverageRating, 1e-9)
	assert.Equal(t, int64(2), list.ReviewCount)
	require.Len(t, list.Reviews, 2)
	assert.Equal(t, "frank", list.Reviews[0].Username)
}

func TestGetMovieReviewsEmpty(t *testing.T) {
	repo := newTestRepo()
	movie := newTestMovie("Solaris")
	repo.Movie.(*fakeMovieRepo).movies = append(repo.Movie.(*fakeMovieRepo).movies, movie)
	service := newTestService(repo)

	list, err := service.Review.GetMovieReviews(context.Background(), movie.ID.String())
	require.NoError(t, err)

	assert.Empty(t, list.Reviews)
	assert.Zero(t, list.AverageRating)
	assert.Zero(t, list.ReviewCount)
}
