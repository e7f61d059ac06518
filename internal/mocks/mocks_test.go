package mocks

import (
	"context"
	"testing"

	"github.com/payitnow/payitnow-api/internal/client/attestation"
	"github.com/payitnow/payitnow-api/internal/client/chain"
	"github.com/payitnow/payitnow-api/internal/client/circle"
	"github.com/payitnow/payitnow-api/internal/client/notify"
	"github.com/payitnow/payitnow-api/internal/client/swapprovider"
	"github.com/payitnow/payitnow-api/internal/db"
	"github.com/payitnow/payitnow-api/internal/handlers"
	"github.com/payitnow/payitnow-api/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	_ db.Store                         = (*MockStore)(nil)
	_ swapprovider.SwapClientInterface = (*MockSwapClientInterface)(nil)
	_ circle.CircleClientInterface     = (*MockCircleClientInterface)(nil)
	_ chain.ClientInterface            = (*MockChainClient)(nil)
	_ attestation.ClientInterface      = (*MockAttestationClient)(nil)
	_ notify.Notifier                  = (*MockNotifier)(nil)
	_ notify.OperatorAlerter           = (*MockOperatorAlerter)(nil)
	_ services.IntentExtractor         = (*MockIntentExtractor)(nil)
	_ services.IdentityProvider        = (*MockIdentityProvider)(nil)
	_ handlers.MessageEngine           = (*MockMessageEngine)(nil)
	_ handlers.SettlementReader        = (*MockSettlementReader)(nil)
	_ handlers.Bridger                 = (*MockBridger)(nil)
)

func TestMockCircleClientWithHelper(t *testing.T) {
	mockClient := NewMockCircleClientForTest(t)

	mockClient.EXPECT().
		GetAvailableBalance(gomock.Any(), "USD").
		Return(decimal.NewFromInt(250), nil).
		Times(1)

	balance, err := mockClient.GetAvailableBalance(context.Background(), "USD")

	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(250)))
}
