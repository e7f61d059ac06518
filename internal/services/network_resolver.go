package services

import (
	"context"
	"strings"
	"sync"

	"github.com/payitnow/payitnow-api/internal/client/swapprovider"
	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/payitnow/payitnow-api/internal/helpers"
	"github.com/payitnow/payitnow-api/internal/logger"
	"go.uber.org/zap"
)

// networkPriority is the tie-break order when a ticker exists on several networks.
// Codes in the same group share a rank.
var networkPriority = map[string]int{
	constants.NetworkERC20:   0,
	constants.NetworkETH:     1,
	constants.NetworkTRC20:   2,
	constants.NetworkBSC:     3,
	constants.NetworkBEP20:   3,
	constants.NetworkPolygon: 4,
	constants.NetworkMatic:   4,
	constants.NetworkSolana:  5,
}

// NetworkResolver picks the network a ticker is exchanged on. The ordered set of
// networks the provider reports for each ticker is cached for the process lifetime and
// the priority table is applied on every lookup. Concurrent misses may both query the
// provider; the last write wins and either answer is valid.
type NetworkResolver struct {
	provider swapprovider.SwapClientInterface
	cache    sync.Map // ticker -> []string, provider order
	logger   *zap.Logger
}

// NewNetworkResolver creates a resolver backed by the swap provider
func NewNetworkResolver(provider swapprovider.SwapClientInterface) *NetworkResolver {
	return &NetworkResolver{
		provider: provider,
		logger:   logger.Log,
	}
}

// Resolve returns the preferred network code for ticker, or "" when the provider
// reports none and its default should apply.
func (r *NetworkResolver) Resolve(ctx context.Context, ticker string) (string, error) {
	codes, err := r.Networks(ctx, ticker)
	if err != nil {
		return "", err
	}
	return PickNetwork(codes), nil
}

// Networks returns the active network codes for ticker in the order the provider
// reported them. Errors are not cached.
func (r *NetworkResolver) Networks(ctx context.Context, ticker string) ([]string, error) {
	key := helpers.NormalizeTicker(ticker)
	if cached, ok := r.cache.Load(key); ok {
		return append([]string(nil), cached.([]string)...), nil
	}

	networks, err := r.provider.GetNetworks(ctx, key)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(networks))
	for _, n := range networks {
		codes = append(codes, n.Code)
	}

	r.cache.Store(key, codes)
	r.logger.Debug("Cached ticker networks",
		zap.String("ticker", key),
		zap.Strings("reported", codes),
		zap.String("preferred", PickNetwork(codes)),
	)
	return append([]string(nil), codes...), nil
}

// PickNetwork applies the priority table to the reported codes, falling back to the
// first reported code.
func PickNetwork(codes []string) string {
	best := ""
	bestRank := len(networkPriority) + 1
	for _, code := range codes {
		rank, ok := networkPriority[strings.ToUpper(code)]
		if ok && rank < bestRank {
			best, bestRank = code, rank
		}
	}
	if best != "" {
		return best
	}
	if len(codes) > 0 {
		return codes[0]
	}
	return ""
}
