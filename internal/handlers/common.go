package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/payitnow/payitnow-api/internal/db"
	"github.com/payitnow/payitnow-api/internal/services"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// sendError logs err with the given message and sends a JSON error response
func sendError(c *gin.Context, log *zap.Logger, statusCode int, message string, err error) {
	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Debug(message, fields...)
	}
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleDBError maps store errors to 404 or 500
func handleDBError(c *gin.Context, log *zap.Logger, err error, notFoundMsg string) {
	if db.IsNotFound(err) {
		sendError(c, log, http.StatusNotFound, notFoundMsg, err)
		return
	}
	sendError(c, log, http.StatusInternalServerError, "Internal server error", err)
}

// sendList sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}

// parseUserID reads a positive integer user id from the named path parameter
func parseUserID(c *gin.Context, param string) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// statusForExecutionError maps an execution error kind to the HTTP status of its reply
func statusForExecutionError(err error) int {
	switch {
	case errors.Is(err, services.ErrParseFailure), errors.Is(err, services.ErrValidationIncomplete):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, services.ErrUnsupportedFallback), errors.Is(err, services.ErrProviderError):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrBridgeTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
