package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCall inserts a call with plausible defaults and returns it. Options run
// before the insert and may override any field.
func SeedCall(t *testing.T, pool *pgxpool.Pool, opts ...func(*domain.CallRecord)) domain.CallRecord {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	callDate := now.Add(-time.Hour)

	call := domain.CallRecord{
		ID:                  uuid.New(),
		Sequence:            "CALL-T" + suffix,
		ExternalID:          "call_" + suffix,
		ContactName:         domain.DefaultContactName,
		Phone:               "+34600" + suffix[:6],
		Status:              domain.CallStatusEnded,
		Direction:           domain.CallDirectionOutbound,
		CallDate:            &callDate,
		FromNumber:          "+34910000000",
		ToNumber:            "+34600" + suffix[:6],
		AgentName:           "Agent " + suffix,
		DisconnectionReason: "user_hangup",
		Summary:             "Summary " + suffix,
		Transcript:          "Agent: hola\nUser: buenas",
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	call.SetDurationMS(125000)

	for _, opt := range opts {
		opt(&call)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO calls (id, sequence, external_id, contact_name, phone, status, direction,
		                    call_date, duration_ms, duration, from_number, to_number, agent_name,
		                    disconnection_reason, summary, transcript, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		call.ID, call.Sequence, call.ExternalID, call.ContactName, call.Phone, string(call.Status),
		string(call.Direction), call.CallDate, call.DurationMS, call.Duration, call.FromNumber,
		call.ToNumber, call.AgentName, call.DisconnectionReason, call.Summary, call.Transcript,
		call.CreatedAt, call.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCall insert: %v", err)
	}

	return call
}

// SeedTrash inserts a trash snapshot of call deleted at deletedAt. The call
// itself is not touched.
func SeedTrash(t *testing.T, pool *pgxpool.Pool, call domain.CallRecord, deletedAt time.Time) domain.TrashRecord {
	t.Helper()
	ctx := context.Background()

	rec := domain.NewTrashRecord(call, deletedAt.UTC().Truncate(time.Microsecond))

	_, err := pool.Exec(ctx,
		`INSERT INTO calls_trash (id, sequence, external_id, contact_name, phone, status, direction,
		                          call_date, duration_ms, duration, from_number, to_number, agent_name,
		                          disconnection_reason, summary, transcript, deleted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		rec.ID, call.Sequence, call.ExternalID, call.ContactName, call.Phone, string(call.Status),
		string(call.Direction), call.CallDate, call.DurationMS, call.Duration, call.FromNumber,
		call.ToNumber, call.AgentName, call.DisconnectionReason, call.Summary, call.Transcript,
		rec.DeletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTrash insert: %v", err)
	}

	return rec
}
