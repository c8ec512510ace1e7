package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"media-review/internal/dto/request"
	"media-review/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Game   *GameHandler
	Movie  *MovieHandler
	Genre  *GenreHandler
	Review *ReviewHandler
	Search *SearchHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Game:   NewGameHandler(service.Game, service.Genre, log),
		Movie:  NewMovieHandler(service.Movie, service.Genre, log),
		Genre:  NewGenreHandler(service.Genre, log),
		Review: NewReviewHandler(service.Review, log),
		Search: NewSearchHandler(service.Search, log),
	}
}

// isFormRequest reports whether the client sent an HTML form rather than
// a JSON body. Form clients get redirects; JSON clients get payloads.
func isFormRequest(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return !strings.HasPrefix(ct, "application/json")
}

// decodeRequest fills dst from a JSON body or, for browser form posts,
// from the parsed form values.
func decodeRequest(r *http.Request, dst request.FormBinder) error {
	if !isFormRequest(r) {
		return json.NewDecoder(r.Body).Decode(dst)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}
	dst.FromForm(r.PostForm)
	return nil
}

// safeNext keeps post-login redirects on this site. Anything that is not
// a local path falls back to the landing page.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
