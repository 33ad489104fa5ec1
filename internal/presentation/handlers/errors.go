package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"chalee-api/internal/domain/errs"
	"chalee-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse represents an error in API responses
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	RequestID  string `json:"requestId,omitempty"`
}

// ErrorWriter translates errors into JSON responses. Outside production the
// underlying error text is exposed in Details.
type ErrorWriter struct {
	production bool
	logger     *zap.Logger
}

// NewErrorWriter creates a new error writer
func NewErrorWriter(production bool, logger *zap.Logger) *ErrorWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorWriter{production: production, logger: logger.With(zap.String("component", "http"))}
}

// Respond maps a service error onto a status code by its kind
func (w *ErrorWriter) Respond(c *gin.Context, operation string, err error) {
	message := errs.Message(err)

	switch {
	case errors.Is(err, errs.ErrValidation):
		w.write(c, http.StatusBadRequest, "invalid_request", message, err)
	case errors.Is(err, errs.ErrNotFound):
		w.write(c, http.StatusNotFound, "not_found", message, nil)
	case errors.Is(err, errs.ErrConflict):
		w.write(c, http.StatusConflict, "conflict", message, nil)
	case errors.Is(err, errs.ErrRateLimited):
		w.write(c, http.StatusTooManyRequests, "rate_limited", message, nil)
	case errors.Is(err, errs.ErrUpstream):
		w.write(c, http.StatusInternalServerError, "upstream_error", message, err)
	default:
		w.logger.Error("unexpected error",
			zap.String("operation", operation),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err))
		w.write(c, http.StatusInternalServerError, "internal_error", "An unexpected error occurred", err)
	}
}

// BadRequest writes a 400 for malformed input
func (w *ErrorWriter) BadRequest(c *gin.Context, message string, err error) {
	w.write(c, http.StatusBadRequest, "invalid_request", message, err)
}

func (w *ErrorWriter) write(c *gin.Context, status int, code, message string, err error) {
	resp := ErrorResponse{
		StatusCode: status,
		Error:      code,
		Message:    message,
		RequestID:  middleware.GetRequestID(c),
	}
	if err != nil && !w.production {
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}

// checkQueryKeys rejects query parameters outside allowed
func checkQueryKeys(c *gin.Context, allowed ...string) error {
	var unknown []string
	for key := range c.Request.URL.Query() {
		if !contains(allowed, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("property %s should not exist", strings.Join(unknown, ", "))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
