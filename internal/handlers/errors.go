package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps a service error to its HTTP status. Order matters:
// duplicates also wrap ErrValidation.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrArchivedReference):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidState), errors.Is(err, apperrors.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// respondError writes err as JSON. Server errors are logged and hidden behind fallback.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// respondBindError reports a request that failed binding or validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + describeFieldError(verrs[0])})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "dpositive":
		return fe.Field() + " must be greater than zero"
	case "dscale":
		return fe.Field() + " must have at most 3 decimal places"
	case "min":
		return fe.Field() + " must contain at least " + fe.Param() + " entries"
	case "datetime":
		return fe.Field() + " must be a date in YYYY-MM-DD format"
	}
	return fe.Field() + " failed on " + fe.Tag()
}

// currentUser returns the authenticated operator or aborts with 401.
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
