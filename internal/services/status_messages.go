package services

import (
	"fmt"
	"strings"

	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/payitnow/payitnow-api/internal/helpers"
	"github.com/payitnow/payitnow-api/internal/types/business"
)

// swapStatusMessages are sent when a swap or DEX record enters the status.
// {pair} and {tx} are replaced with the record's pair and external transaction id.
var swapStatusMessages = map[string]string{
	constants.StatusConfirmation: "DETECTED: We see your deposit for {pair}. Waiting for confirmations...",
	constants.StatusExchange:     "SWAPPING: Confirmations done. Exchanging now...",
	constants.StatusSending:      "SENDING: Swap complete. Sending funds to your wallet...",
	constants.StatusSuccess:      "COMPLETE! Your {pair} swap is finished. Check your wallet balance.",
	constants.StatusOverdue:      "TIMEOUT: We did not receive your deposit in time. The transaction {tx} is cancelled. DO NOT SEND FUNDS.",
	constants.StatusRefund:       "REFUNDED: There was an issue and funds are being returned to you.",
	constants.StatusFailed:       "FAILED: Your {pair} swap could not be completed.",
}

// StatusMessage renders the user notification for a record entering status. It reports
// false when the status has no message.
func StatusMessage(record business.SettlementRecord, status string) (string, bool) {
	if record.Kind == constants.RecordKindFiat {
		switch status {
		case constants.StatusSettled, constants.StatusFailed:
			return fmt.Sprintf("Payment Update\nYour transfer (ID: %s) is now %s.",
				helpers.ShortID(record.ExternalTxID, 8), strings.ToUpper(status)), true
		default:
			return "", false
		}
	}

	format, ok := swapStatusMessages[status]
	if !ok {
		return "", false
	}
	return strings.NewReplacer("{pair}", record.Pair, "{tx}", record.ExternalTxID).Replace(format), true
}
