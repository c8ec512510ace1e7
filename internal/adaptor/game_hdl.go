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

type GameHandler struct {
	service usecase.GameService
	genres  usecase.GenreService
	log     *zap.Logger
}

func NewGameHandler(service usecase.GameService, genres usecase.GenreService, log *zap.Logger) *GameHandler {
	return &GameHandler{
		service: service,
		genres:  genres,
		log:     log.With(zap.String("handler", "game")),
	}
}

// GetGames handles GET /games/
func (h *GameHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.NewListRequest(query.Get("page"), query.Get("sort_by"))

	games, err := h.service.GetGames(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get games")
		return
	}

	utils.ResponseSuccess(w, "Games retrieved successfully", games)
}

// GetGameByID handles GET /games/{id}
func (h *GameHandler) GetGameByID(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	game, err := h.service.GetGameByID(r.Context(), gameID)
	if err != nil {
		h.handleServiceError(w, err, "get game by ID")
		return
	}

	utils.ResponseSuccess(w, "Game retrieved successfully", game)
}

// AddForm handles GET /games/add/ and returns the genre choices the
// add form needs.
func (h *GameHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genres.GetGenres(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "load add game form")
		return
	}

	utils.ResponseSuccess(w, "Add game", map[string]any{"genres": genres})
}

// CreateGame handles POST /games/add/
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req request.CatalogItemRequest
	if err := decodeRequest(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	game, err := h.service.CreateGame(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create game")
		return
	}

	if isFormRequest(r) {
		http.Redirect(w, r, "/games/", http.StatusFound)
		return
	}

	utils.ResponseCreated(w, "Game created successfully", game)
}

// EditForm handles GET /games/{id}/edit and returns the current game
// plus the genre choices.
func (h *GameHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	game, err := h.service.GetGameByID(r.Context(), gameID)
	if err != nil {
		h.handleServiceError(w, err, "load edit game form")
		return
	}

	genres, err := h.genres.GetGenres(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "load edit game form")
		return
	}

	utils.ResponseSuccess(w, "Edit game", map[string]any{
		"game":   game,
		"genres": genres,
	})
}

// UpdateGame handles POST /games/{id}/edit
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	var req request.CatalogItemRequest
	if err := decodeRequest(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	game, err := h.service.UpdateGame(r.Context(), gameID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update game")
		return
	}

	if isFormRequest(r) {
		http.Redirect(w, r, "/games/"+gameID, http.StatusFound)
		return
	}

	utils.ResponseSuccess(w, "Game updated successfully", game)
}

// handleServiceError handles errors for game operations
func (h *GameHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
