package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/dailyhub/internal/apperrors"
	"github.com/oksasatya/dailyhub/internal/application"
	"github.com/oksasatya/dailyhub/pkg/response"
)

// statusFromError translates service-layer sentinels into HTTP statuses.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, application.ErrPasswordMismatch),
		errors.Is(err, application.ErrCityRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error, message string) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		response.Error[any](c, status, "internal server error", nil)
		return
	}
	if message == "" {
		message = err.Error()
	}
	response.Error[any](c, status, message, nil)
}
