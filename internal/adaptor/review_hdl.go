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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GameReviewForm handles GET /games/review/{id}/ and returns the game
// the review form targets along with its existing reviews.
func (h *ReviewHandler) GameReviewForm(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	reviews, err := h.service.GetGameReviews(r.Context(), gameID)
	if err != nil {
		h.handleServiceError(w, err, "load game review form")
		return
	}

	utils.ResponseSuccess(w, "Review game", reviews)
}

// CreateGameReview handles POST /games/review/{id}/
func (h *ReviewHandler) CreateGameReview(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	userID, ok := utils.GetUserID(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ReviewRequest
	if err := decodeRequest(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.CreateGameReview(r.Context(), userID, gameID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create game review")
		return
	}

	if isFormRequest(r) {
		http.Redirect(w, r, "/games/"+gameID, http.StatusFound)
		return
	}

	utils.ResponseCreated(w, "Review created successfully", review)
}

// GetGameReviews handles GET /view-game-reviews/{id}
func (h *ReviewHandler) GetGameReviews(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	reviews, err := h.service.GetGameReviews(r.Context(), gameID)
	if err != nil {
		h.handleServiceError(w, err, "get game reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// MovieReviewForm handles GET /movies/review/{id}
func (h *ReviewHandler) MovieReviewForm(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	reviews, err := h.service.GetMovieReviews(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "load movie review form")
		return
	}

	utils.ResponseSuccess(w, "Review movie", reviews)
}

// CreateMovieReview handles POST /movies/review/{id}
func (h *ReviewHandler) CreateMovieReview(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	userID, ok := utils.GetUserID(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ReviewRequest
	if err := decodeRequest(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.CreateMovieReview(r.Context(), userID, movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie review")
		return
	}

	if isFormRequest(r) {
		http.Redirect(w, r, "/movies/"+movieID, http.StatusFound)
		return
	}

	utils.ResponseCreated(w, "Review created successfully", review)
}

// GetMovieReviews handles GET /view-movie-reviews/{id}
func (h *ReviewHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	reviews, err := h.service.GetMovieReviews(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// handleServiceError handles errors for review operations
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
