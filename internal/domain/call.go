package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// DefaultContactName is stored when the remote platform has no contact name.
const DefaultContactName = "Sin nombre"

// CallRecord is a locally stored copy of a remote call, keyed by ExternalID.
type CallRecord struct {
	ID                  uuid.UUID
	Sequence            string
	ExternalID          string
	ContactName         string
	Phone               string
	Status              CallStatus
	Direction           CallDirection
	CallDate            *time.Time
	DurationMS          int64
	Duration            float64
	FromNumber          string
	ToNumber            string
	AgentName           string
	DisconnectionReason string
	Summary             string
	Transcript          string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CleanText runs the free-text fields through CleanText. Every create and
// update path calls it before persisting.
func (c *CallRecord) CleanText() {
	c.Summary = CleanText(c.Summary)
	c.Transcript = CleanText(c.Transcript)
}

// SetDurationMS stores the raw duration and derives the minutes value from it.
// Negative durations are stored as zero.
func (c *CallRecord) SetDurationMS(ms int64) {
	ms = max(0, ms)
	c.DurationMS = ms
	c.Duration = DurationMinutes(ms)
}

// HasTranscript reports whether a transcript is stored.
func (c *CallRecord) HasTranscript() bool { return c.Transcript != "" }

// HasAgent reports whether an agent name is stored.
func (c *CallRecord) HasAgent() bool { return c.AgentName != "" }

// DurationMinutes converts milliseconds to minutes rounded to two decimals.
func DurationMinutes(ms int64) float64 {
	return math.Round(float64(ms)/60000*100) / 100
}

// FormatSequence renders a database sequence value as a display number.
func FormatSequence(n int64) string {
	return fmt.Sprintf("CALL-%06d", n)
}

// TrashRecord is the snapshot of a deleted call, kept until the retention
// window expires or it is restored.
type TrashRecord struct {
	ID        uuid.UUID
	Call      CallRecord
	DeletedAt time.Time
}

// NewTrashRecord snapshots the business fields of a call.
func NewTrashRecord(call CallRecord, deletedAt time.Time) TrashRecord {
	return TrashRecord{
		ID:        uuid.New(),
		Call:      call,
		DeletedAt: deletedAt,
	}
}

// RestoredCall returns the call to recreate from the snapshot. The original
// sequence and external id are kept; timestamps are reset to now.
func (t TrashRecord) RestoredCall(now time.Time) CallRecord {
	call := t.Call
	call.ID = uuid.New()
	call.CreatedAt = now
	call.UpdatedAt = now
	return call
}

// CallStats summarises how complete the stored call history is.
type CallStats struct {
	Total          int
	WithTranscript int
	WithAgent      int
}
