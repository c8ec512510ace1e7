package usecase

import (
	"context"
	"testing"

	"media-review/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGenre(t *testing.T) {
	service := newTestService(newTestRepo())

	genre, err := service.Genre.CreateGenre(context.Background(), &request.GenreRequest{Name: "Horror"})
	require.NoError(t, err)
	assert.Equal(t, "Horror", genre.Name)
	assert.NotEmpty(t, genre.ID)
}

func TestCreateGenreDuplicate(t *testing.T) {
	service := newTestService(newTestRepo())

	_, err := service.Genre.CreateGenre(context.Background(), &request.GenreRequest{Name: "Horror"})
	require.NoError(t, err)

	_, err = service.Genre.CreateGenre(context.Background(), &request.GenreRequest{Name: "Horror"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateGenreCaseSensitiveMatch(t *testing.T) {
	service := newTestService(newTestRepo())

	_, err := service.Genre.CreateGenre(context.Background(), &request.GenreRequest{Name: "Horror"})
	require.NoError(t, err)

	// Duplicate detection matches the exact name, so a different casing
	// is a distinct genre.
	_, err = service.Genre.CreateGenre(context.Background(), &request.GenreRequest{Name: "horror"})
	assert.NoError(t, err)
}

func TestCreateGenreMissingName(t *testing.T) {
	service := newTestService(newTestRepo())

	_, err := service.Genre.CreateGenre(context.Background(), &request.GenreRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetGenres(t *testing.T) {
	service := newTestService(newTestRepo())

	for _, name := range []string{"RPG", "Action"} {
		_, err := service.Genre.CreateGenre(context.Background(), &request.GenreRequest{Name: name})
		require.NoError(t, err)
	}

	genres, err := service.Genre.GetGenres(context.Background())
	require.NoError(t, err)
	assert.Len(t, genres, 2)
}
