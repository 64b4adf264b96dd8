package user

import (
	"errors"
	"net/http"

	"github.com/careercracker/webclient/internal/backend"
	"github.com/careercracker/webclient/internal/dto"
	"github.com/careercracker/webclient/internal/service"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses: validation failures to
// 400, credential problems to 401, state-machine violations to 409, backend
// failures to the backend's own status, everything else to 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyResponse),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidFeedback),
		errors.Is(err, service.ErrEmptyJobTitle),
		errors.Is(err, service.ErrSpeechUnsupported),
		errors.Is(err, service.ErrNotListening):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, backend.ErrUnauthorized):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, service.ErrOperationInFlight),
		errors.Is(err, service.ErrNoActiveSession),
		errors.Is(err, service.ErrNoCurrentQuestion),
		errors.Is(err, service.ErrViewNotOpen),
		errors.Is(err, service.ErrResponseNotSubmitted),
		errors.Is(err, service.ErrAlreadySubmitted),
		errors.Is(err, service.ErrNotLastQuestion),
		errors.Is(err, service.ErrNoFeedbackAvailable):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})

	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			ctx.JSON(apiErr.StatusCode, dto.ErrorResponse{Message: apiErr.Message})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}
