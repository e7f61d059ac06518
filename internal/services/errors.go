package services

import (
	"errors"
	"fmt"

	"github.com/payitnow/payitnow-api/internal/types/business"
)

// Error taxonomy for a single execution request. Every kind is terminal to the request
// and its message is shown to the user as is.
var (
	// ErrParseFailure means the extractor could not produce a usable intent
	ErrParseFailure = errors.New("parse failure")
	// ErrValidationIncomplete means the intent lacks fields its kind requires
	ErrValidationIncomplete = errors.New("validation incomplete")
	// ErrInsufficientFunds covers sender, bot wallet and treasury shortfalls
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrProviderError means a swap, bank or chain call returned an explicit error
	ErrProviderError = errors.New("provider error")
	// ErrBridgeTimeout means no attestation arrived within the polling bound
	ErrBridgeTimeout = errors.New("bridge timeout")
	// ErrUnsupportedFallback means a fiat-leg swap failed and no on-chain path exists
	ErrUnsupportedFallback = errors.New("unsupported fallback")
)

// ExecutionError is a classified, user-presentable failure.
// QRAddress is set when the user can resolve the failure by funding that address.
type ExecutionError struct {
	Kind      error
	Message   string
	QRAddress string
	Err       error
}

func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is and errors.As
func (e *ExecutionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newExecutionError(kind error, message string) *ExecutionError {
	return &ExecutionError{Kind: kind, Message: message}
}

func wrapExecutionError(kind error, message string, cause error) *ExecutionError {
	return &ExecutionError{Kind: kind, Message: message, Err: cause}
}

func needsFunding(message, address string) *ExecutionError {
	return &ExecutionError{Kind: ErrInsufficientFunds, Message: message, QRAddress: address}
}

// ErrorKindLabel names an error's taxonomy kind for metrics and logs
func ErrorKindLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrParseFailure):
		return "parse_failure"
	case errors.Is(err, ErrValidationIncomplete):
		return "validation_incomplete"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrProviderError):
		return "provider_error"
	case errors.Is(err, ErrBridgeTimeout):
		return "bridge_timeout"
	case errors.Is(err, ErrUnsupportedFallback):
		return "unsupported_fallback"
	default:
		return "internal"
	}
}

// ResultFromError renders a classified failure as the user-facing result. It reports false
// for unclassified errors.
func ResultFromError(err error) (*business.ExecutionResult, bool) {
	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		return nil, false
	}
	return &business.ExecutionResult{
		Message:   execErr.Message,
		QRAddress: execErr.QRAddress,
	}, true
}
