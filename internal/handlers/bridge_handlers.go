package handlers

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/payitnow/payitnow-api/internal/services"
	"github.com/payitnow/payitnow-api/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Bridger moves USDC cross-chain for a wallet identity
type Bridger interface {
	Bridge(ctx context.Context, identity *business.WalletIdentity, amount decimal.Decimal, recipient common.Address) (*services.BridgeTransfer, error)
}

// BridgeHandler exposes the burn, attest and mint flow
type BridgeHandler struct {
	identities services.IdentityProvider
	bridge     Bridger
	logger     *zap.Logger
}

func NewBridgeHandler(identities services.IdentityProvider, bridge Bridger, logger *zap.Logger) *BridgeHandler {
	return &BridgeHandler{identities: identities, bridge: bridge, logger: logger}
}

// BridgeRequest moves Amount USDC to Recipient, or to the user's own address when empty
type BridgeRequest struct {
	UserID    int64           `json:"user_id" binding:"required,gt=0"`
	Amount    decimal.Decimal `json:"amount"`
	Recipient string          `json:"recipient"`
}

type BridgeResponse struct {
	Message     string `json:"message,omitempty"`
	BurnTxHash  string `json:"burn_tx_hash,omitempty"`
	MessageHash string `json:"message_hash,omitempty"`
	MintTxHash  string `json:"mint_tx_hash,omitempty"`
	ErrorKind   string `json:"error_kind,omitempty"`
}

// Bridge runs a full transfer. A failure after the burn still returns the burn hash so
// the caller can retry the mint.
func (h *BridgeHandler) Bridge(c *gin.Context) {
	var req BridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Recipient != "" && !common.IsHexAddress(req.Recipient) {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid recipient address", nil)
		return
	}

	identity, err := h.identities.GetOrCreateIdentity(c.Request.Context(), req.UserID)
	if err != nil {
		sendError(c, h.logger, http.StatusInternalServerError, "Failed to resolve wallet", err)
		return
	}
	recipient := identity.Address
	if req.Recipient != "" {
		recipient = common.HexToAddress(req.Recipient)
	}

	transfer, err := h.bridge.Bridge(c.Request.Context(), identity, req.Amount, recipient)
	resp := toBridgeResponse(transfer)
	if err != nil {
		result, ok := services.ResultFromError(err)
		if !ok {
			sendError(c, h.logger, http.StatusInternalServerError, "Bridge failed", err)
			return
		}
		resp.Message = result.Message
		resp.ErrorKind = services.ErrorKindLabel(err)
		c.JSON(statusForExecutionError(err), resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func toBridgeResponse(t *services.BridgeTransfer) BridgeResponse {
	if t == nil {
		return BridgeResponse{}
	}
	resp := BridgeResponse{BurnTxHash: t.BurnTxHash.Hex()}
	if t.MessageHash != (common.Hash{}) {
		resp.MessageHash = t.MessageHash.Hex()
	}
	if t.MintTxHash != (common.Hash{}) {
		resp.MintTxHash = t.MintTxHash.Hex()
	}
	return resp
}
