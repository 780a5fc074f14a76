package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

const (
	loginPath   = "/auth/login"
	homePath    = "/"
	entriesPath = "/entries"
)

// respondError maps a service error onto a status code and a non-technical message.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Please log in to access this page.", Redirect: loginPath})
	case errors.Is(err, apperrors.ErrAccessDenied):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have permission to view this entry.", Redirect: homePath})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entry not found."})
	case errors.Is(err, apperrors.ErrAuthFailure):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password."})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "That username or email is already registered."})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Debug("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Some required fields are missing or invalid."})
	case errors.Is(err, apperrors.ErrStorage):
		logger.Error("Attachment storage failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "The attachment could not be saved. Please try again."})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Something went wrong. Please try again."})
	}
}
