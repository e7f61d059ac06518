package business

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

// WalletIdentity is the signing handle and public address of a user's bot wallet
type WalletIdentity struct {
	UserID     int64
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
}

// TrackedAsset is one line of the balance report
type TrackedAsset struct {
	Ticker      string
	DisplayName string
	Network     string
}
