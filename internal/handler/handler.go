// internal/handler/handler.go
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"expense-tracker/internal/domain"
	"expense-tracker/internal/middleware"
	"expense-tracker/internal/service"
	"expense-tracker/internal/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// currentUser returns the id set by the auth middleware. It aborts the
// request when the id is missing, which means the route was wired without it.
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user_id missing", "code": "internal_error"})
		return "", false
	}
	return userID, true
}

// bindJSON decodes the body into v and answers 400 on failure.
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		msg := "Invalid JSON"
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			msg = "Amount must be a number"
		case errors.Is(err, domain.ErrInvalidDate):
			msg = "Date must be YYYY-MM-DD or RFC 3339"
		}
		slog.Debug("Bad request body", "error", err, "path", c.FullPath())
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "code": "invalid_json"})
		return false
	}
	return true
}

type periodQuery struct {
	Period string `form:"period" json:"period" validate:"omitempty,period"`
}

// bindPeriod reads the period query parameter, falling back to def when it
// is absent. An unknown period is answered with 400.
func bindPeriod(c *gin.Context, def domain.Period) (domain.Period, bool) {
	var q periodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, domain.NewValidationError("Invalid query"))
		return "", false
	}
	if err := validator.Struct(q); err != nil {
		respondError(c, err)
		return "", false
	}
	if q.Period == "" {
		return def, true
	}
	return domain.Period(q.Period), true
}

// respondError maps a service error to its status code and body. Unexpected
// errors are logged and answered with a generic message.
func respondError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	attrs := []any{"error", err, "method", c.Request.Method, "path", c.FullPath()}
	if userID, ok := middleware.UserID(c); ok {
		attrs = append(attrs, "user_id", userID)
	}
	switch {
	case status == http.StatusInternalServerError:
		slog.Error("Request failed", attrs...)
	case domain.IsValidation(err):
		slog.Debug("Request rejected", attrs...)
	}
	c.JSON(status, body)
}

func errorResponse(err error) (int, gin.H) {
	var (
		partial *domain.PartialPropagationError
		invalid *domain.ValidationError
	)
	switch {
	case errors.As(err, &partial):
		return http.StatusInternalServerError, gin.H{
			"error":          "The category was changed but its expenses were not fully updated. Retry the propagation.",
			"code":           "partial_propagation",
			"propagation_id": partial.PropagationID,
			"operation":      partial.Op,
		}
	case errors.As(err, &invalid):
		return http.StatusBadRequest, gin.H{"error": invalid.Message, "code": "validation_error"}
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusBadRequest, gin.H{"error": err.Error(), "code": "duplicate"}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, unauthorizedBody(err)
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": err.Error(), "code": "not_found"}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusInternalServerError, gin.H{"error": "Request timed out", "code": "timeout"}
	default:
		return http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": "internal_error"}
	}
}

// unauthorizedBody uses the AuthError details when err carries one.
func unauthorizedBody(err error) gin.H {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return gin.H{"error": authErr.Message, "code": authCode(authErr.Kind)}
	}
	return gin.H{"error": "Unauthorized", "code": "unauthorized"}
}

func authCode(kind domain.AuthErrorKind) string {
	switch kind {
	case domain.AuthExpired:
		return "token_expired"
	case domain.AuthBadCredentials:
		return "invalid_credentials"
	case domain.AuthMissing:
		return "unauthorized"
	default:
		return "invalid_token"
	}
}
