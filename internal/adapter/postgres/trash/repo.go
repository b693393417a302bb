// Package trash implements the deleted-call archive using PostgreSQL.
package trash

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/callhistory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/callhistory-backend/internal/domain"
)

const (
	tableName = "calls_trash"
	entity    = "trash"

	defaultLimit = 50
	maxLimit     = 200
)

var columns = []string{
	"id", "sequence", "external_id", "contact_name", "phone", "status", "direction",
	"call_date", "duration_ms", "duration", "from_number", "to_number", "agent_name",
	"disconnection_reason", "summary", "transcript", "deleted_at",
}

// Repo provides trash persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new trash repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a snapshot.
func (r *Repo) Create(ctx context.Context, rec *domain.TrashRecord) (*domain.TrashRecord, error) {
	c := rec.Call

	query := postgres.Builder().
		Insert(tableName).
		Columns(columns...).
		Values(
			rec.ID, c.Sequence, c.ExternalID, c.ContactName, c.Phone, string(c.Status),
			string(c.Direction), c.CallDate, c.DurationMS, c.Duration, c.FromNumber,
			c.ToNumber, c.AgentName, c.DisconnectionReason, c.Summary, c.Transcript,
			rec.DeletedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, entity, rec.ID)
	}
	return created, nil
}

// GetByID returns a snapshot by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TrashRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	rec, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return rec, nil
}

// List returns snapshots, most recently deleted first, plus the total count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.TrashRecord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM calls_trash`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count trash: %w", err)
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(tableName).
		OrderBy("deleted_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list trash: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list trash: %w", err)
	}
	defer rows.Close()

	records := []domain.TrashRecord{}
	for rows.Next() {
		rec, err := scanTrash(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan trash: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list trash: %w", err)
	}

	return records, total, nil
}

// Delete removes a snapshot. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete trash: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteOlderThan purges snapshots deleted strictly before threshold.
// Returns the number of purged rows.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int, error) {
	sql, args, err := postgres.Builder().
		Delete(tableName).
		Where(squirrel.Lt{"deleted_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge trash: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("purge trash: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer) (*domain.TrashRecord, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rec, err := scanTrash(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func scanTrash(row pgx.Row) (domain.TrashRecord, error) {
	var (
		rec       domain.TrashRecord
		status    string
		direction string
		callDate  *time.Time
	)
	c := &rec.Call
	err := row.Scan(
		&rec.ID, &c.Sequence, &c.ExternalID, &c.ContactName, &c.Phone, &status, &direction,
		&callDate, &c.DurationMS, &c.Duration, &c.FromNumber, &c.ToNumber, &c.AgentName,
		&c.DisconnectionReason, &c.Summary, &c.Transcript, &rec.DeletedAt,
	)
	if err != nil {
		return domain.TrashRecord{}, err
	}

	c.Status = domain.CallStatus(status)
	c.Direction = domain.CallDirection(direction)
	if callDate != nil {
		utc := callDate.UTC()
		c.CallDate = &utc
	}
	return rec, nil
}
