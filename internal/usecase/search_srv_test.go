package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEmptyQuery(t *testing.T) {
	repo := newTestRepo()
	repo.Game.(*fakeGameRepo).games = append(repo.Game.(*fakeGameRepo).games, newTestGame("Anything"))
	repo.Movie.(*fakeMovieRepo).movies = append(repo.Movie.(*fakeMovieRepo).movies, newTestMovie("Whatever"))
	service := newTestService(repo)

	for _, query := range []string{"", "   "} {
		result, err := service.Search.Search(context.Background(), query)
		require.NoError(t, err)

		// Empty query returns empty sets, never the full catalogs.
		assert.NotNil(t, result.Games)
		assert.NotNil(t, result.Movies)
		assert.Empty(t, result.Games)
		assert.Empty(t, result.Movies)
	}
}

func TestSearchMatchesSubstring(t *testing.T) {
	repo := newTestRepo()
	repo.Game.(*fakeGameRepo).games = append(repo.Game.(*fakeGameRepo).games, newTestGame("Test Game"))
	repo.Movie.(*fakeMovieRepo).movies = append(repo.Movie.(*fakeMovieRepo).movies, newTestMovie("Other"))
	service := newTestService(repo)

	result, err := service.Search.Search(context.Background(), "test")
	require.NoError(t, err)

	require.Len(t, result.Games, 1)
	assert.Equal(t, "Test Game", result.Games[0].Title)
	assert.Empty(t, result.Movies)
}

func TestSearchMatchesBothCatalogs(t *testing.T) {
	repo := newTestRepo()
	repo.Game.(*fakeGameRepo).games = append(repo.Game.(*fakeGameRepo).games, newTestGame("Blade Runner: The Game"))
	repo.Movie.(*fakeMovieRepo).movies = append(repo.Movie.(*fakeMovieRepo).movies, newTestMovie("Blade Runner"))
	service := newTestService(repo)

	result, err := service.Search.Search(context.Background(), "blade")
	require.NoError(t, err)

	assert.Len(t, result.Games, 1)
	assert.Len(t, result.Movies, 1)
	assert.Equal(t, "blade", result.Query)
}
