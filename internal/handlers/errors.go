package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps the apperrors taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrStorage):
		return http.StatusServiceUnavailable
	case errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrTransferFailed),
		errors.Is(err, apperrors.ErrCompensationFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// respondWithError logs err at a level matching its status and writes the JSON error body.
// Server-side failures are reported with the generic message only.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, message string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(message, slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, gin.H{"error": message})
		return
	}
	logger.Warn(message, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}
