package calltrash

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/metrics"
)

// Delete snapshots a call into the trash and removes it, in one transaction.
func (s *Service) Delete(ctx context.Context, callID uuid.UUID) (*domain.TrashRecord, error) {
	var archived *domain.TrashRecord

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		call, err := s.calls.GetByID(ctx, callID)
		if err != nil {
			return fmt.Errorf("get call: %w", err)
		}

		rec := domain.NewTrashRecord(*call, s.now())
		archived, err = s.trash.Create(ctx, &rec)
		if err != nil {
			return fmt.Errorf("archive call: %w", err)
		}

		if err := s.calls.Delete(ctx, callID); err != nil {
			return fmt.Errorf("delete call: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTrashOperation("delete", 1)
	s.log.InfoContext(ctx, "call moved to trash",
		slog.String("call_id", callID.String()),
		slog.String("trash_id", archived.ID.String()),
		slog.String("sequence", archived.Call.Sequence),
	)

	return archived, nil
}

// Restore recreates the call held by a trash record and drops the record.
// If a call with the same external id was synced again in the meantime the
// insert fails with domain.ErrAlreadyExists and the record is kept.
func (s *Service) Restore(ctx context.Context, trashID uuid.UUID) (*domain.CallRecord, error) {
	var restored *domain.CallRecord

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rec, err := s.trash.GetByID(ctx, trashID)
		if err != nil {
			return fmt.Errorf("get trash record: %w", err)
		}

		call := rec.RestoredCall(s.now())
		restored, err = s.calls.Create(ctx, &call)
		if err != nil {
			return fmt.Errorf("restore call: %w", err)
		}

		if err := s.trash.Delete(ctx, trashID); err != nil {
			return fmt.Errorf("delete trash record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTrashOperation("restore", 1)
	s.log.InfoContext(ctx, "call restored",
		slog.String("trash_id", trashID.String()),
		slog.String("call_id", restored.ID.String()),
		slog.String("sequence", restored.Sequence),
	)

	return restored, nil
}

// Sweep purges every trash record older than the retention window.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	threshold := s.now().Add(-s.retention)

	n, err := s.trash.DeleteOlderThan(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("sweep trash: %w", err)
	}

	metrics.RecordTrashOperation("purge", n)
	s.log.InfoContext(ctx, "trash swept",
		slog.Int("purged", n),
		slog.Time("threshold", threshold),
	)

	return n, nil
}

// List returns trash records, most recently deleted first.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.TrashRecord, int, error) {
	if err := in.Validate(); err != nil {
		return nil, 0, err
	}
	return s.trash.List(ctx, in.Limit, in.Offset)
}

// Get returns one trash record.
func (s *Service) Get(ctx context.Context, trashID uuid.UUID) (*domain.TrashRecord, error) {
	return s.trash.GetByID(ctx, trashID)
}
