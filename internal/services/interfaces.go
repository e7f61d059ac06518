package services

import (
	"context"

	"github.com/payitnow/payitnow-api/internal/types/business"
)

// IntentExtractor turns free text into the strict intent schema
type IntentExtractor interface {
	Extract(ctx context.Context, text string) (*business.ExtractedIntent, error)
}

// IdentityProvider returns the signing identity for a user, creating it on first use
type IdentityProvider interface {
	GetOrCreateIdentity(ctx context.Context, userID int64) (*business.WalletIdentity, error)
}
