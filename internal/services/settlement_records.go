package services

import (
	"context"
	"fmt"

	"github.com/payitnow/payitnow-api/internal/db"
	"github.com/payitnow/payitnow-api/internal/types/business"
)

const maxUserSettlements = 50

// SettlementRecordFromDB converts a stored record to its domain form
func SettlementRecordFromDB(r db.SettlementRecord) business.SettlementRecord {
	record := business.SettlementRecord{
		ExternalTxID:   r.ExternalTxID,
		UserID:         r.UserID,
		Kind:           r.Kind,
		Status:         r.Status,
		Pair:           r.Pair,
		AmountExpected: r.AmountExpected,
		CreatedAt:      r.CreatedAt.Time,
		UpdatedAt:      r.UpdatedAt.Time,
	}
	if r.DepositAddress.Valid {
		record.DepositAddress = &r.DepositAddress.String
	}
	if r.BeneficiaryRef.Valid {
		record.BeneficiaryRef = &r.BeneficiaryRef.String
	}
	return record
}

// SettlementQueryService serves read access to settlement records and their history
type SettlementQueryService struct {
	store db.Store
}

// NewSettlementQueryService creates a settlement query service
func NewSettlementQueryService(store db.Store) *SettlementQueryService {
	return &SettlementQueryService{store: store}
}

// Get returns one record and its transition history. The error satisfies db.IsNotFound
// when the record does not exist.
func (s *SettlementQueryService) Get(ctx context.Context, externalTxID string) (*business.SettlementRecord, []business.StatusTransition, error) {
	record, err := s.store.GetSettlementRecord(ctx, externalTxID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get settlement record: %w", err)
	}

	history, err := s.store.ListSettlementStatusHistory(ctx, externalTxID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get settlement history: %w", err)
	}

	transitions := make([]business.StatusTransition, 0, len(history))
	for _, h := range history {
		transitions = append(transitions, business.StatusTransition{
			ExternalTxID: h.ExternalTxID,
			FromStatus:   h.FromStatus,
			ToStatus:     h.ToStatus,
			CreatedAt:    h.CreatedAt.Time,
		})
	}

	converted := SettlementRecordFromDB(record)
	return &converted, transitions, nil
}

// ListByUser returns the user's most recent records, newest first
func (s *SettlementQueryService) ListByUser(ctx context.Context, userID int64) ([]business.SettlementRecord, error) {
	records, err := s.store.ListSettlementRecordsByUser(ctx, db.ListSettlementRecordsByUserParams{
		UserID: userID,
		Limit:  maxUserSettlements,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list settlement records: %w", err)
	}

	out := make([]business.SettlementRecord, 0, len(records))
	for _, r := range records {
		out = append(out, SettlementRecordFromDB(r))
	}
	return out, nil
}
