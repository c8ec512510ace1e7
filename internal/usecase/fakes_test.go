package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"media-review/internal/data/entity"
	"media-review/internal/data/repository"
	"media-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes backing the service tests. Each fake keeps just enough
// behavior for the service contract: sorting, paging and exact matching
// mirror what the SQL layer does.

type fakeUserRepo struct {
	users       map[string]*entity.User
	createCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.createCalls++
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return f.users[username], nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	if session, ok := f.sessions[token]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

type fakeGenreRepo struct {
	genres  []*entity.Genre
	byGame  map[uuid.UUID][]*entity.Genre
	byMovie map[uuid.UUID][]*entity.Genre
}

func newFakeGenreRepo() *fakeGenreRepo {
	return &fakeGenreRepo{
		byGame:  make(map[uuid.UUID][]*entity.Genre),
		byMovie: make(map[uuid.UUID][]*entity.Genre),
	}
}

func (f *fakeGenreRepo) Create(_ context.Context, genre *entity.Genre) error {
	f.genres = append(f.genres, genre)
	return nil
}

func (f *fakeGenreRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Genre, error) {
	for _, genre := range f.genres {
		if genre.ID == id {
			return genre, nil
		}
	}
	return nil, nil
}

func (f *fakeGenreRepo) FindByName(_ context.Context, name string) (*entity.Genre, error) {
	for _, genre := range f.genres {
		if genre.Name == name {
			return genre, nil
		}
	}
	return nil, nil
}

func (f *fakeGenreRepo) FindAll(_ context.Context) ([]*entity.Genre, error) {
	return f.genres, nil
}

func (f *fakeGenreRepo) FindByGameID(_ context.Context, gameID uuid.UUID) ([]*entity.Genre, error) {
	return f.byGame[gameID], nil
}

func (f *fakeGenreRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.Genre, error) {
	return f.byMovie[movieID], nil
}

type fakeGameRepo struct {
	games      []*entity.Game
	lastSortBy string
}

func (f *fakeGameRepo) Create(_ context.Context, game *entity.Game) error {
	f.games = append(f.games, game)
	return nil
}

func (f *fakeGameRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Game, error) {
	for _, game := range f.games {
		if game.ID == id {
			return game, nil
		}
	}
	return nil, nil
}

func (f *fakeGameRepo) FindAll(_ context.Context, sortBy string, limit, offset int) ([]*entity.Game, error) {
	f.lastSortBy = sortBy

	sorted := make([]*entity.Game, len(f.games))
	copy(sorted, f.games)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Title < sorted[j].Title })

	if offset >= len(sorted) {
		return nil, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

func (f *fakeGameRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.games)), nil
}

func (f *fakeGameRepo) SearchByTitle(_ context.Context, query string) ([]*entity.Game, error) {
	var out []*entity.Game
	for _, game := range f.games {
		if strings.Contains(strings.ToLower(game.Title), strings.ToLower(query)) {
			out = append(out, game)
		}
	}
	return out, nil
}

func (f *fakeGameRepo) Update(_ context.Context, game *entity.Game) error {
	for i, existing := range f.games {
		if existing.ID == game.ID {
			f.games[i] = game
			return nil
		}
	}
	return nil
}

type fakeMovieRepo struct {
	movies []*entity.Movie
}

func (f *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	f.movies = append(f.movies, movie)
	return nil
}

func (f *fakeMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	for _, movie := range f.movies {
		if movie.ID == id {
			return movie, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindAll(_ context.Context, sortBy string, limit, offset int) ([]*entity.Movie, error) {
	sorted := make([]*entity.Movie, len(f.movies))
	copy(sorted, f.movies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Title < sorted[j].Title })

	if offset >= len(sorted) {
		return nil, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

func (f *fakeMovieRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.movies)), nil
}

func (f *fakeMovieRepo) SearchByTitle(_ context.Context, query string) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, movie := range f.movies {
		if strings.Contains(strings.ToLower(movie.Title), strings.ToLower(query)) {
			out = append(out, movie)
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	for i, existing := range f.movies {
		if existing.ID == movie.ID {
			f.movies[i] = movie
			return nil
		}
	}
	return nil
}

type fakeGameGenreRepo struct {
	links []*entity.GameGenre
}

func (f *fakeGameGenreRepo) CreateBatch(_ context.Context, gameGenres []*entity.GameGenre) error {
	f.links = append(f.links, gameGenres...)
	return nil
}

func (f *fakeGameGenreRepo) DeleteByGameID(_ context.Context, gameID uuid.UUID) error {
	var kept []*entity.GameGenre
	for _, link := range f.links {
		if link.GameID != gameID {
			kept = append(kept, link)
		}
	}
	f.links = kept
	return nil
}

type fakeMovieGenreRepo struct {
	links []*entity.MovieGenre
}

func (f *fakeMovieGenreRepo) CreateBatch(_ context.Context, movieGenres []*entity.MovieGenre) error {
	f.links = append(f.links, movieGenres...)
	return nil
}

func (f *fakeMovieGenreRepo) DeleteByMovieID(_ context.Context, movieID uuid.UUID) error {
	var kept []*entity.MovieGenre
	for _, link := range f.links {
		if link.MovieID != movieID {
			kept = append(kept, link)
		}
	}
	f.links = kept
	return nil
}

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByGameID(_ context.Context, gameID uuid.UUID) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, review := range f.reviews {
		if review.GameID != nil && *review.GameID == gameID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, review := range f.reviews {
		if review.MovieID != nil && *review.MovieID == movieID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) GetGameReviewStats(ctx context.Context, gameID uuid.UUID) (float64, int64, error) {
	reviews, _ := f.FindByGameID(ctx, gameID)
	return reviewStats(reviews)
}

func (f *fakeReviewRepo) GetMovieReviewStats(ctx context.Context, movieID uuid.UUID) (float64, int64, error) {
	reviews, _ := f.FindByMovieID(ctx, movieID)
	return reviewStats(reviews)
}

func reviewStats(reviews []*entity.Review) (float64, int64, error) {
	if len(reviews) == 0 {
		return 0, 0, nil
	}
	var sum float64
	for _, review := range reviews {
		sum += review.Rating
	}
	return sum / float64(len(reviews)), int64(len(reviews)), nil
}

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		User:       newFakeUserRepo(),
		Session:    newFakeSessionRepo(),
		Genre:      newFakeGenreRepo(),
		Game:       &fakeGameRepo{},
		Movie:      &fakeMovieRepo{},
		GameGenre:  &fakeGameGenreRepo{},
		MovieGenre: &fakeMovieGenreRepo{},
		Review:     &fakeReviewRepo{},
	}
}

func newTestService(repo *repository.Repository) *Service {
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
	return NewService(repo, config, zap.NewNop())
}

func newTestGame(title string) *entity.Game {
	now := time.Now()
	return &entity.Game{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title: title,
	}
}

func newTestMovie(title string) *entity.Movie {
	now := time.Now()
	return &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title: title,
	}
}

func newTestGenre(name string) *entity.Genre {
	return &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: name,
	}
}

func newTestReview(userID uuid.UUID, gameID, movieID *uuid.UUID, rating float64) *entity.Review {
	return &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:      userID,
		GameID:      gameID,
		MovieID:     movieID,
		Rating:      rating,
		Description: "solid",
	}
}
