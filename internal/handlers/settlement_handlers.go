package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/payitnow/payitnow-api/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SettlementReader serves read access to settlement records
type SettlementReader interface {
	Get(ctx context.Context, externalTxID string) (*business.SettlementRecord, []business.StatusTransition, error)
	ListByUser(ctx context.Context, userID int64) ([]business.SettlementRecord, error)
}

// SettlementHandler exposes settlement records and their history
type SettlementHandler struct {
	settlements SettlementReader
	logger      *zap.Logger
}

func NewSettlementHandler(settlements SettlementReader, logger *zap.Logger) *SettlementHandler {
	return &SettlementHandler{settlements: settlements, logger: logger}
}

// SettlementResponse is the API form of a settlement record
type SettlementResponse struct {
	ExternalTxID   string               `json:"external_tx_id"`
	UserID         int64                `json:"user_id"`
	Kind           string               `json:"kind"`
	Status         string               `json:"status"`
	Pair           string               `json:"pair"`
	AmountExpected decimal.Decimal      `json:"amount_expected"`
	DepositAddress *string              `json:"deposit_address,omitempty"`
	BeneficiaryRef *string              `json:"beneficiary_ref,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	History        []TransitionResponse `json:"history,omitempty"`
}

type TransitionResponse struct {
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	CreatedAt  time.Time `json:"created_at"`
}

func toSettlementResponse(r business.SettlementRecord) SettlementResponse {
	return SettlementResponse{
		ExternalTxID:   r.ExternalTxID,
		UserID:         r.UserID,
		Kind:           r.Kind,
		Status:         r.Status,
		Pair:           r.Pair,
		AmountExpected: r.AmountExpected,
		DepositAddress: r.DepositAddress,
		BeneficiaryRef: r.BeneficiaryRef,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// GetSettlement returns one record with its status history
func (h *SettlementHandler) GetSettlement(c *gin.Context) {
	txID := c.Param("tx_id")
	record, history, err := h.settlements.Get(c.Request.Context(), txID)
	if err != nil {
		handleDBError(c, h.logger, err, "Settlement not found")
		return
	}

	resp := toSettlementResponse(*record)
	for _, t := range history {
		resp.History = append(resp.History, TransitionResponse{
			FromStatus: t.FromStatus,
			ToStatus:   t.ToStatus,
			CreatedAt:  t.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// ListUserSettlements returns the user's most recent records
func (h *SettlementHandler) ListUserSettlements(c *gin.Context) {
	userID, ok := parseUserID(c, "user_id")
	if !ok {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid user ID format", nil)
		return
	}

	records, err := h.settlements.ListByUser(c.Request.Context(), userID)
	if err != nil {
		sendError(c, h.logger, http.StatusInternalServerError, "Failed to list settlements", err)
		return
	}

	out := make([]SettlementResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toSettlementResponse(r))
	}
	sendList(c, out)
}
