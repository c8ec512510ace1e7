package adaptor

import (
	"net/http"
	"strings"

	"media-review/internal/dto/request"
	"media-review/internal/usecase"
	"media-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	genres  usecase.GenreService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, genres usecase.GenreService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		genres:  genres,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies/
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.NewListRequest(query.Get("page"), query.Get("sort_by"))

	movies, err := h.service.GetMovies(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// AddForm handles GET /movies/add/ and returns the genre choices the
// add form needs.
func (h *MovieHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genres.GetGenres(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "load add movie form")
		return
	}

	utils.ResponseSuccess(w, "Add movie", map[string]any{"genres": genres})
}

// CreateMovie handles POST /movies/add/
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.CatalogItemRequest
	if err := decodeRequest(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	if isFormRequest(r) {
		http.Redirect(w, r, "/movies/", http.StatusFound)
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// EditForm handles GET /movies/{id}/edit and returns the current movie
// plus the genre choices.
func (h *MovieHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "load edit movie form")
		return
	}

	genres, err := h.genres.GetGenres(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "load edit movie form")
		return
	}

	utils.ResponseSuccess(w, "Edit movie", map[string]any{
		"movie":  movie,
		"genres": genres,
	})
}

// UpdateMovie handles POST /movies/{id}/edit
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	var req request.CatalogItemRequest
	if err := decodeRequest(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	if isFormRequest(r) {
		http.Redirect(w, r, "/movies/"+movieID, http.StatusFound)
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// handleServiceError handles errors for movie operations
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
