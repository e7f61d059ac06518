package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/payitnow/payitnow-api/internal/middleware"
	"github.com/payitnow/payitnow-api/internal/qr"
	"github.com/payitnow/payitnow-api/internal/services"
	"github.com/payitnow/payitnow-api/internal/types/business"
	"go.uber.org/zap"
)

// MessageEngine runs one user message through intent extraction and execution
type MessageEngine interface {
	HandleMessage(ctx context.Context, userID int64, text string) (*business.ExecutionResult, error)
}

// MessageHandler is the conversational intake
type MessageHandler struct {
	engine  MessageEngine
	limiter *middleware.RateLimiter
	logger  *zap.Logger
}

// NewMessageHandler creates a message handler. limiter may be nil.
func NewMessageHandler(engine MessageEngine, limiter *middleware.RateLimiter, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{engine: engine, limiter: limiter, logger: logger}
}

// MessageRequest is one user utterance
type MessageRequest struct {
	UserID int64  `json:"user_id" binding:"required,gt=0"`
	Text   string `json:"text" binding:"required,max=2000"`
}

// MessageResponse carries the reply text and an optional QR code for a deposit address
type MessageResponse struct {
	Message      string `json:"message"`
	QRCode       string `json:"qr_code,omitempty"`
	QRAddress    string `json:"qr_address,omitempty"`
	ExternalTxID string `json:"external_tx_id,omitempty"`
	ErrorKind    string `json:"error_kind,omitempty"`
}

// HandleMessage executes the intent in the message and replies with the outcome.
// Execution failures that carry a user message are returned with that message.
func (h *MessageHandler) HandleMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if h.limiter != nil {
		key := "user:" + strconv.FormatInt(req.UserID, 10)
		if !h.limiter.Allow(key) {
			h.limiter.Reject(c, key)
			return
		}
	}

	result, err := h.engine.HandleMessage(c.Request.Context(), req.UserID, req.Text)
	if err != nil {
		userResult, ok := services.ResultFromError(err)
		if !ok {
			sendError(c, h.logger, http.StatusInternalServerError, "Something went wrong. Please try again.", err)
			return
		}
		h.logger.Info("Message rejected",
			zap.String("correlation_id", middleware.GetCorrelationID(c)),
			zap.Int64("user_id", req.UserID),
			zap.String("error_kind", services.ErrorKindLabel(err)),
			zap.Error(err),
		)
		resp := h.render(userResult)
		resp.ErrorKind = services.ErrorKindLabel(err)
		c.JSON(statusForExecutionError(err), resp)
		return
	}

	c.JSON(http.StatusOK, h.render(result))
}

func (h *MessageHandler) render(result *business.ExecutionResult) MessageResponse {
	resp := MessageResponse{
		Message:      result.Message,
		QRAddress:    result.QRAddress,
		ExternalTxID: result.ExternalTxID,
	}
	if result.QRAddress == "" {
		return resp
	}
	// The reply is still useful without the image
	dataURL, err := qr.DataURL(result.QRAddress)
	if err != nil {
		h.logger.Warn("Failed to render QR code", zap.String("address", result.QRAddress), zap.Error(err))
		return resp
	}
	resp.QRCode = dataURL
	return resp
}
