package services_test

import (
	"testing"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/payitnow/payitnow-api/internal/logger"
	"github.com/payitnow/payitnow-api/internal/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

func newTestIdentity(t *testing.T, userID int64) *business.WalletIdentity {
	t.Helper()
	key, err := gethcrypto.GenerateKey()
	require.NoError(t, err)
	return &business.WalletIdentity{
		UserID:     userID,
		Address:    gethcrypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func strPtr(s string) *string {
	return &s
}
