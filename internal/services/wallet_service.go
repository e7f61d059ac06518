package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/payitnow/payitnow-api/internal/db"
	"github.com/payitnow/payitnow-api/internal/types/business"
	"go.uber.org/zap"
)

// WalletChain is the chain label stored with every wallet. The same key signs on every
// EVM network the bot uses.
const WalletChain = "evm"

var _ IdentityProvider = (*WalletService)(nil)

// WalletService creates and unlocks one keystore-backed wallet per user
type WalletService struct {
	store       db.Store
	keystoreDir string
	passphrase  string
	scryptN     int
	scryptP     int
	identities  sync.Map
	logger      *zap.Logger
}

// NewWalletService creates a wallet service storing encrypted keys under keystoreDir
func NewWalletService(store db.Store, keystoreDir, passphrase string, logger *zap.Logger) *WalletService {
	return &WalletService{
		store:       store,
		keystoreDir: keystoreDir,
		passphrase:  passphrase,
		scryptN:     keystore.StandardScryptN,
		scryptP:     keystore.StandardScryptP,
		logger:      logger,
	}
}

// WithLightScrypt lowers the key derivation cost. Intended for tests.
func (s *WalletService) WithLightScrypt() *WalletService {
	s.scryptN = keystore.LightScryptN
	s.scryptP = keystore.LightScryptP
	return s
}

// GetOrCreateIdentity returns the user's signing identity, generating and persisting a new
// key on first use. Unlocked identities are kept in memory.
func (s *WalletService) GetOrCreateIdentity(ctx context.Context, userID int64) (*business.WalletIdentity, error) {
	if cached, ok := s.identities.Load(userID); ok {
		return cached.(*business.WalletIdentity), nil
	}

	wallet, err := s.store.GetWalletByUserID(ctx, userID)
	if err != nil {
		if !db.IsNotFound(err) {
			return nil, fmt.Errorf("failed to get wallet: %w", err)
		}
		wallet, err = s.createWallet(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	identity, err := s.unlock(userID, wallet)
	if err != nil {
		return nil, err
	}
	s.identities.Store(userID, identity)
	return identity, nil
}

func (s *WalletService) createWallet(ctx context.Context, userID int64) (db.Wallet, error) {
	account, err := keystore.StoreKey(s.keystoreDir, s.userPassphrase(userID), s.scryptN, s.scryptP)
	if err != nil {
		return db.Wallet{}, fmt.Errorf("failed to generate wallet key: %w", err)
	}

	// A concurrent create for the same user returns the row that won
	wallet, err := s.store.CreateWallet(ctx, db.CreateWalletParams{
		UserID:       userID,
		Address:      account.Address.Hex(),
		KeystorePath: account.URL.Path,
		Chain:        WalletChain,
	})
	if err != nil {
		return db.Wallet{}, fmt.Errorf("failed to save wallet: %w", err)
	}

	if wallet.KeystorePath != account.URL.Path {
		if err := os.Remove(account.URL.Path); err != nil {
			s.logger.Warn("Failed to remove unused keystore file", zap.String("path", account.URL.Path), zap.Error(err))
		}
	} else {
		s.logger.Info("Created wallet",
			zap.Int64("user_id", userID),
			zap.String("address", wallet.Address),
		)
	}
	return wallet, nil
}

func (s *WalletService) unlock(userID int64, wallet db.Wallet) (*business.WalletIdentity, error) {
	keyJSON, err := os.ReadFile(wallet.KeystorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore for user %d: %w", userID, err)
	}
	key, err := keystore.DecryptKey(keyJSON, s.userPassphrase(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keystore for user %d: %w", userID, err)
	}
	if key.Address != common.HexToAddress(wallet.Address) {
		return nil, fmt.Errorf("keystore address %s does not match wallet %s", key.Address.Hex(), wallet.Address)
	}
	return &business.WalletIdentity{
		UserID:     userID,
		Address:    key.Address,
		PrivateKey: key.PrivateKey,
	}, nil
}

func (s *WalletService) userPassphrase(userID int64) string {
	return s.passphrase + ":" + strconv.FormatInt(userID, 10)
}
