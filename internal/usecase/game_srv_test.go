package usecase

import (
	"context"
	"fmt"
	"testing"

	"media-review/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGamesPageClamping(t *testing.T) {
	repo := newTestRepo()
	games := repo.Game.(*fakeGameRepo)
	for i := 0; i < 12; i++ {
		games.games = append(games.games, newTestGame(fmt.Sprintf("Game %02d", i)))
	}
	service := newTestService(repo)

	tests := []struct {
		name     string
		pageRaw  string
		wantPage int
		wantLen  int
	}{
		{"zero page becomes first", "0", 1, 5},
		{"non-numeric page becomes first", "abc", 1, 5},
		{"negative page becomes first", "-3", 1, 5},
		{"past the end lands on last page", "999", 3, 2},
		{"valid page stays", "2", 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request.NewListRequest(tt.pageRaw, "")

			result, err := service.Game.GetGames(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPage, result.Pagination.Page)
			assert.Len(t, result.Data, tt.wantLen)
			assert.Equal(t, int64(12), result.Pagination.Total)
			assert.Equal(t, 3, result.Pagination.TotalPages)
		})
	}
}

func TestGetGamesSortFallback(t *testing.T) {
	repo := newTestRepo()
	games := repo.Game.(*fakeGameRepo)
	games.games = append(games.games, newTestGame("Banjo"), newTestGame("Axiom"))
	service := newTestService(repo)

	_, err := service.Game.GetGames(context.Background(), request.NewListRequest("1", ""))
	require.NoError(t, err)
	assert.Equal(t, "title", games.lastSortBy)

	_, err = service.Game.GetGames(context.Background(), request.NewListRequest("1", "release_date"))
	require.NoError(t, err)
	assert.Equal(t, "release_date", games.lastSortBy)
}

func TestGetGamesEmptyCatalog(t *testing.T) {
	service := newTestService(newTestRepo())

	// An empty catalog still has a single page; any requested page
	// collapses onto it.
	for _, pageRaw := range []string{"1", "999"} {
		result, err := service.Game.GetGames(context.Background(), request.NewListRequest(pageRaw, ""))
		require.NoError(t, err)

		assert.Empty(t, result.Data)
		assert.Equal(t, int64(0), result.Pagination.Total)
		assert.Equal(t, 1, result.Pagination.Page)
		assert.False(t, result.Pagination.HasPrev)
		assert.False(t, result.Pagination.HasNext)
	}
}

func TestGetGameByIDAverageScore(t *testing.T) {
	repo := newTestRepo()
	game := newTestGame("Hollow Knight")
	repo.Game.(*fakeGameRepo).games = append(repo.Game.(*fakeGameRepo).games, game)

	reviews := repo.Review.(*fakeReviewRepo)
	userID := uuid.New()
	reviews.reviews = append(reviews.reviews,
		newTestReview(userID, &game.ID, nil, 8.5),
		newTestReview(userID, &game.ID, nil, 9.0),
	)

	service := newTestService(repo)

	detail, err := service.Game.GetGameByID(context.Background(), game.ID.String())
	require.NoError(t, err)

	assert.InDelta(t, 8.75, detail.AverageScore, 1e-9)
	assert.Equal(t, int64(2), detail.ReviewCount)
}

func TestGetGameByIDNoReviews(t *testing.T) {
	repo := newTestRepo()
	game := newTestGame("Unreviewed")
	repo.Game.(*fakeGameRepo).games = append(repo.Game.(*fakeGameRepo).games, game)
	service := newTestService(repo)

	detail, err := service.Game.GetGameByID(context.Background(), game.ID.String())
	require.NoError(t, err)

	assert.Zero(t, detail.AverageScore)
	assert.Zero(t, detail.ReviewCount)
}

func TestGetGameByIDNotFound(t *testing.T) {
	service := newTestService(newTestRepo())

	_, err := service.Game.GetGameByID(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateGameWithGenres(t *testing.T) {
	repo := newTestRepo()
	genres := repo.Genre.(*fakeGenreRepo)
	action := newTestGenre("Action")
	genres.genres = append(genres.genres, action)
	service := newTestService(repo)

	releaseDate := "2024-03-22"
	game, err := service.Game.CreateGame(context.Background(), &request.CatalogItemRequest{
		Title:       "Dragon Quest",
		ReleaseDate: &releaseDate,
		GenreIDs:    []string{action.ID.String()},
	})
	require.NoError(t, err)

	assert.Equal(t, "Dragon Quest", game.Title)
	require.NotNil(t, game.ReleaseDate)
	assert.Equal(t, releaseDate, *game.ReleaseDate)
	assert.Len(t, repo.GameGenre.(*fakeGameGenreRepo).links, 1)
}

func TestCreateGameUnknownGenre(t *testing.T) {
	service := newTestService(newTestRepo())

	_, err := service.Game.CreateGame(context.Background(), &request.CatalogItemRequest{
		Title:    "Orphaned",
		GenreIDs: []string{uuid.NewString()},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "genre not found")
}

func TestCreateGameMissingTitle(t *testing.T) {
	service := newTestService(newTestRepo())

	_, err := service.Game.CreateGame(context.Background(), &request.CatalogItemRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUpdateGameReplacesGenreSet(t *testing.T) {
	repo := newTestRepo()
	genres := repo.Genre.(*fakeGenreRepo)
	action := newTestGenre("Action")
	puzzle := newTestGenre("Puzzle")
	genres.genres = append(genres.genres, action, puzzle)
	service := newTestService(repo)

	created, err := service.Game.CreateGame(context.Background(), &request.CatalogItemRequest{
		Title:    "Portal",
		GenreIDs: []string{action.ID.String()},
	})
	require.NoError(t, err)

	updated, err := service.Game.UpdateGame(context.Background(), created.ID, &request.CatalogItemRequest{
		Title:    "Portal 2",
		GenreIDs: []string{puzzle.ID.String()},
	})
	require.NoError(t, err)

	assert.Equal(t, "Portal 2", updated.Title)

	links := repo.GameGenre.(*fakeGameGenreRepo).links
	require.Len(t, links, 1)
	assert.Equal(t, puzzle.ID, links[0].GenreID)
}

func TestUpdateGameNotFound(t *testing.T) {
	service := newTestService(newTestRepo())

	_, err := service.Game.UpdateGame(context.Background(), uuid.NewString(), &request.CatalogItemRequest{
		Title: "Ghost",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
