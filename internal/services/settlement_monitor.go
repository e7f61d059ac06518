package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/payitnow/payitnow-api/internal/client/chain"
	"github.com/payitnow/payitnow-api/internal/client/circle"
	"github.com/payitnow/payitnow-api/internal/client/notify"
	"github.com/payitnow/payitnow-api/internal/client/swapprovider"
	"github.com/payitnow/payitnow-api/internal/constants"
	"github.com/payitnow/payitnow-api/internal/db"
	"github.com/payitnow/payitnow-api/internal/metrics"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	// DefaultMonitorSchedule is the reconciliation period
	DefaultMonitorSchedule = "@every 60s"
	defaultNotifyTimeout   = 15 * time.Second
)

// TickSummary counts what one reconciliation pass did
type TickSummary struct {
	Polled       int
	Transitioned int
	QueryErrors  int
}

// SettlementMonitor reconciles every non-terminal settlement record against its external
// status. It is the only writer of a record after creation.
type SettlementMonitor struct {
	store    db.Store
	swaps    swapprovider.SwapClientInterface
	bank     circle.CircleClientInterface
	chain    chain.ClientInterface
	notifier notify.Notifier
	logger   *zap.Logger

	notifyTimeout time.Duration
	tickMu        sync.Mutex
	notifications sync.WaitGroup

	cron     *cron.Cron
	stopOnce sync.Once
}

// NewSettlementMonitor creates a settlement monitor
func NewSettlementMonitor(store db.Store, swaps swapprovider.SwapClientInterface, bank circle.CircleClientInterface, chainClient chain.ClientInterface, notifier notify.Notifier, logger *zap.Logger) *SettlementMonitor {
	return &SettlementMonitor{
		store:         store,
		swaps:         swaps,
		bank:          bank,
		chain:         chainClient,
		notifier:      notifier,
		logger:        logger,
		notifyTimeout: defaultNotifyTimeout,
	}
}

// Start schedules Tick on schedule. A tick still running when the next one is due delays it.
func (m *SettlementMonitor) Start(schedule string) error {
	if schedule == "" {
		schedule = DefaultMonitorSchedule
	}
	cronLogger := cron.PrintfLogger(zap.NewStdLog(m.logger))
	m.cron = cron.New(cron.WithChain(
		cron.Recover(cronLogger),
		cron.DelayIfStillRunning(cronLogger),
	))

	if _, err := m.cron.AddFunc(schedule, func() {
		if _, err := m.Tick(context.Background()); err != nil {
			m.logger.Error("Settlement monitor tick failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule settlement monitor: %w", err)
	}

	m.cron.Start()
	m.logger.Info("Settlement monitor started", zap.String("schedule", schedule))
	return nil
}

// Stop halts scheduling, waits for a running tick and drains pending notifications
func (m *SettlementMonitor) Stop() {
	m.stopOnce.Do(func() {
		if m.cron != nil {
			<-m.cron.Stop().Done()
		}
		m.Wait()
		m.logger.Info("Settlement monitor stopped")
	})
}

// Wait blocks until every dispatched notification has finished
func (m *SettlementMonitor) Wait() {
	m.notifications.Wait()
}

// Tick runs one reconciliation pass. Concurrent calls run one after another. Provider
// query errors skip the affected record only.
func (m *SettlementMonitor) Tick(ctx context.Context) (TickSummary, error) {
	m.tickMu.Lock()
	defer m.tickMu.Unlock()

	start := time.Now()
	var summary TickSummary

	records, err := m.store.ListSettlementRecordsByStatus(ctx, constants.NonTerminalStatuses)
	if err != nil {
		return summary, fmt.Errorf("failed to list pending settlement records: %w", err)
	}

	for _, record := range records {
		if ctx.Err() != nil {
			break
		}
		summary.Polled++

		next, changed, err := m.nextStatus(ctx, record)
		if err != nil {
			summary.QueryErrors++
			metrics.IncMonitorQueryError(record.Kind)
			m.logger.Warn("Settlement status query failed",
				zap.String("external_tx_id", record.ExternalTxID),
				zap.String("kind", record.Kind),
				zap.Error(err),
			)
			continue
		}
		if !changed {
			continue
		}

		if m.transition(ctx, record, next) {
			summary.Transitioned++
		}
	}

	metrics.ObserveMonitorTick(time.Since(start))
	if summary.Polled > 0 {
		m.logger.Debug("Settlement monitor tick",
			zap.Int("polled", summary.Polled),
			zap.Int("transitioned", summary.Transitioned),
			zap.Int("query_errors", summary.QueryErrors),
			zap.Duration("duration", time.Since(start)),
		)
	}
	return summary, nil
}

// nextStatus reports the status the record should move to, or changed=false when it
// must be left untouched this tick
func (m *SettlementMonitor) nextStatus(ctx context.Context, record db.SettlementRecord) (string, bool, error) {
	if constants.IsTerminalStatus(record.Status) {
		return "", false, nil
	}

	switch record.Kind {
	case constants.RecordKindSwap:
		status, err := m.swaps.GetStatus(ctx, record.ExternalTxID)
		if err != nil {
			return "", false, err
		}
		if status == record.Status {
			return "", false, nil
		}
		if !constants.IsForwardSwapTransition(record.Status, status) {
			m.logger.Debug("Ignoring swap status",
				zap.String("external_tx_id", record.ExternalTxID),
				zap.String("stored", record.Status),
				zap.String("reported", status),
			)
			return "", false, nil
		}
		return status, true, nil

	case constants.RecordKindFiat:
		payout, err := m.bank.GetPayout(ctx, record.ExternalTxID)
		if err != nil {
			return "", false, err
		}
		switch payout.Data.Status {
		case constants.PayoutStatusPending, constants.StatusError:
			return "", false, nil
		case constants.PayoutStatusComplete:
			return constants.StatusSettled, true, nil
		default:
			return constants.StatusFailed, true, nil
		}

	case constants.RecordKindDex:
		status, err := m.chain.TransactionStatus(ctx, common.HexToHash(record.ExternalTxID))
		if err != nil {
			return "", false, err
		}
		switch status {
		case chain.TxSuccess:
			return constants.StatusSuccess, true, nil
		case chain.TxFailed:
			return constants.StatusFailed, true, nil
		default:
			return "", false, nil
		}

	default:
		m.logger.Warn("Unknown settlement record kind",
			zap.String("external_tx_id", record.ExternalTxID),
			zap.String("kind", record.Kind),
		)
		return "", false, nil
	}
}

// transition persists the change conditionally on the stored status and notifies the user
func (m *SettlementMonitor) transition(ctx context.Context, record db.SettlementRecord, next string) bool {
	applied, err := m.store.TransitionSettlementStatus(ctx, db.UpdateSettlementStatusParams{
		ToStatus:     next,
		ExternalTxID: record.ExternalTxID,
		FromStatus:   record.Status,
	})
	if err != nil {
		m.logger.Error("Failed to persist settlement transition",
			zap.String("external_tx_id", record.ExternalTxID),
			zap.String("from", record.Status),
			zap.String("to", next),
			zap.Error(err),
		)
		return false
	}
	if !applied {
		m.logger.Debug("Settlement record moved concurrently",
			zap.String("external_tx_id", record.ExternalTxID),
			zap.String("expected", record.Status),
		)
		return false
	}

	metrics.IncMonitorTransition(record.Kind, next)
	m.logger.Info("Settlement status updated",
		zap.String("external_tx_id", record.ExternalTxID),
		zap.Int64("user_id", record.UserID),
		zap.String("from", record.Status),
		zap.String("to", next),
	)

	if text, ok := StatusMessage(SettlementRecordFromDB(record), next); ok {
		m.dispatch(ctx, record.UserID, record.ExternalTxID, text)
	}
	return true
}

// dispatch sends the notification in the background. Failures are logged only; the
// persisted status stays.
func (m *SettlementMonitor) dispatch(ctx context.Context, userID int64, externalTxID, text string) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.notifyTimeout)
	m.notifications.Add(1)
	go func() {
		defer m.notifications.Done()
		defer cancel()
		if err := m.notifier.Send(sendCtx, userID, text, nil); err != nil {
			m.logger.Warn("Failed to send settlement notification",
				zap.Int64("user_id", userID),
				zap.String("external_tx_id", externalTxID),
				zap.Error(err),
			)
		}
	}()
}
