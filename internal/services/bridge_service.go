package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/payitnow/payitnow-api/internal/client/attestation"
	"github.com/payitnow/payitnow-api/internal/client/chain"
	"github.com/payitnow/payitnow-api/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BridgeTransfer carries the hashes of a completed burn, attest and mint
type BridgeTransfer struct {
	BurnTxHash  common.Hash
	MessageHash common.Hash
	MintTxHash  common.Hash
}

// BridgeService moves USDC cross-chain with burn, attest and mint. Burn and mint cost gas
// and are never retried here; only the attestation wait polls.
type BridgeService struct {
	chain       chain.ClientInterface
	attestation attestation.ClientInterface
	logger      *zap.Logger
}

// NewBridgeService creates a bridge service
func NewBridgeService(chainClient chain.ClientInterface, attestationClient attestation.ClientInterface, logger *zap.Logger) *BridgeService {
	return &BridgeService{
		chain:       chainClient,
		attestation: attestationClient,
		logger:      logger,
	}
}

// Bridge burns amount on the source chain and mints it to recipient on the destination chain.
// On a failure after the burn, the returned transfer still carries the burn hash.
func (s *BridgeService) Bridge(ctx context.Context, identity *business.WalletIdentity, amount decimal.Decimal, recipient common.Address) (*BridgeTransfer, error) {
	if !amount.IsPositive() {
		return nil, newExecutionError(ErrValidationIncomplete, "Bridge amount must be greater than zero.")
	}

	burnTx, err := s.chain.DepositForBurn(ctx, identity.PrivateKey, amount, recipient)
	if err != nil {
		return nil, wrapExecutionError(ErrProviderError, "Bridge burn failed: "+err.Error(), err)
	}
	transfer := &BridgeTransfer{BurnTxHash: burnTx}
	s.logger.Info("Bridge burn submitted",
		zap.Int64("user_id", identity.UserID),
		zap.String("burn_tx", burnTx.Hex()),
		zap.String("amount", amount.String()),
	)

	message, messageHash, err := s.chain.BurnMessage(ctx, burnTx)
	if err != nil {
		return transfer, wrapExecutionError(ErrProviderError, "Bridge burn message unavailable: "+err.Error(), err)
	}
	transfer.MessageHash = messageHash

	signature, err := s.attestation.WaitForAttestation(ctx, messageHash.Hex())
	if err != nil {
		if errors.Is(err, attestation.ErrAttestationTimeout) {
			return transfer, wrapExecutionError(ErrBridgeTimeout,
				fmt.Sprintf("Attestation not ready yet for burn %s. Please try again later.", burnTx.Hex()), err)
		}
		return transfer, wrapExecutionError(ErrProviderError, "Attestation failed: "+err.Error(), err)
	}

	attestationBytes, err := hexutil.Decode(signature)
	if err != nil {
		return transfer, wrapExecutionError(ErrProviderError, "Attestation signature is not valid hex.", err)
	}

	mintTx, err := s.chain.ReceiveMessage(ctx, identity.PrivateKey, message, attestationBytes)
	if err != nil {
		return transfer, wrapExecutionError(ErrProviderError, "Bridge mint failed: "+err.Error(), err)
	}
	transfer.MintTxHash = mintTx

	s.logger.Info("Bridge completed",
		zap.Int64("user_id", identity.UserID),
		zap.String("burn_tx", burnTx.Hex()),
		zap.String("mint_tx", mintTx.Hex()),
	)
	return transfer, nil
}
