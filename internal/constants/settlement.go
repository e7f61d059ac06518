package constants

// Settlement record statuses shared by swap and fiat flows
const (
	StatusWait             = "wait"
	StatusConfirmation     = "confirmation"
	StatusExchange         = "exchange"
	StatusSending          = "sending"
	StatusSuccess          = "success"
	StatusOverdue          = "overdue"
	StatusRefund           = "refund"
	StatusError            = "error"
	StatusPayoutProcessing = "payout_processing"
	StatusSettled          = "settled"
	StatusFailed           = "failed"
)

// Banking partner payout statuses
const (
	PayoutStatusPending  = "pending"
	PayoutStatusComplete = "complete"
	PayoutStatusFailed   = "failed"
)

// Settlement record kinds
const (
	RecordKindSwap = "swap"
	RecordKindFiat = "fiat"
	// RecordKindDex is an on-chain fallback swap reconciled from its transaction receipt
	RecordKindDex = "dex"
)

// NonTerminalStatuses are polled by the settlement monitor.
var NonTerminalStatuses = []string{
	StatusWait,
	StatusConfirmation,
	StatusExchange,
	StatusSending,
	StatusPayoutProcessing,
}

// IsTerminalStatus reports whether the monitor must stop reconciling a record in this status.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusSuccess, StatusOverdue, StatusRefund, StatusSettled, StatusFailed:
		return true
	default:
		return false
	}
}

// swapStatusRank orders the swap happy path. Terminal statuses share the top rank.
var swapStatusRank = map[string]int{
	StatusWait:         0,
	StatusConfirmation: 1,
	StatusExchange:     2,
	StatusSending:      3,
	StatusSuccess:      4,
	StatusOverdue:      4,
	StatusRefund:       4,
	StatusFailed:       4,
}

// IsForwardSwapTransition reports whether moving a swap record from -> to follows
// the status machine. Unknown statuses and regressions are rejected.
func IsForwardSwapTransition(from, to string) bool {
	if IsTerminalStatus(from) {
		return false
	}
	fromRank, ok := swapStatusRank[from]
	if !ok {
		return false
	}
	toRank, ok := swapStatusRank[to]
	if !ok {
		return false
	}
	switch to {
	case StatusOverdue:
		return from == StatusWait
	case StatusRefund:
		return true
	}
	return toRank > fromRank
}
