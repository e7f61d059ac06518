package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockStoreForTest creates a new mock Store for testing
func NewMockStoreForTest(t *testing.T) *MockStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockStore(ctrl)
}

// NewMockSwapClientForTest creates a new mock SwapClientInterface for testing
func NewMockSwapClientForTest(t *testing.T) *MockSwapClientInterface {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSwapClientInterface(ctrl)
}

// NewMockCircleClientForTest creates a new mock CircleClientInterface for testing
func NewMockCircleClientForTest(t *testing.T) *MockCircleClientInterface {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCircleClientInterface(ctrl)
}

// NewMockChainClientForTest creates a new mock chain client for testing
func NewMockChainClientForTest(t *testing.T) *MockChainClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChainClient(ctrl)
}

// NewMockAttestationClientForTest creates a new mock attestation client for testing
func NewMockAttestationClientForTest(t *testing.T) *MockAttestationClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAttestationClient(ctrl)
}

// NewMockNotifierForTest creates a new mock Notifier for testing
func NewMockNotifierForTest(t *testing.T) *MockNotifier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockNotifier(ctrl)
}

// NewMockOperatorAlerterForTest creates a new mock OperatorAlerter for testing
func NewMockOperatorAlerterForTest(t *testing.T) *MockOperatorAlerter {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockOperatorAlerter(ctrl)
}

// NewMockIntentExtractorForTest creates a new mock IntentExtractor for testing
func NewMockIntentExtractorForTest(t *testing.T) *MockIntentExtractor {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockIntentExtractor(ctrl)
}

// NewMockIdentityProviderForTest creates a new mock IdentityProvider for testing
func NewMockIdentityProviderForTest(t *testing.T) *MockIdentityProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockIdentityProvider(ctrl)
}

// NewMockMessageEngineForTest creates a new mock MessageEngine for testing
func NewMockMessageEngineForTest(t *testing.T) *MockMessageEngine {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockMessageEngine(ctrl)
}

// NewMockSettlementReaderForTest creates a new mock SettlementReader for testing
func NewMockSettlementReaderForTest(t *testing.T) *MockSettlementReader {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSettlementReader(ctrl)
}

// NewMockBridgerForTest creates a new mock Bridger for testing
func NewMockBridgerForTest(t *testing.T) *MockBridger {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockBridger(ctrl)
}
