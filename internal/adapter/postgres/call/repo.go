// Package call implements the call history repository using PostgreSQL.
// Queries are built with squirrel; the tx-aware querier comes from the context.
package call

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
	tableName = "calls"
	entity    = "call"

	defaultLimit = 50
	maxLimit     = 200
)

var columns = []string{
	"id", "sequence", "external_id", "contact_name", "phone", "status", "direction",
	"call_date", "duration_ms", "duration", "from_number", "to_number", "agent_name",
	"disconnection_reason", "summary", "transcript", "created_at", "updated_at",
}

// Repo provides call persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new call repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a call by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CallRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	call, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return call, nil
}

// GetByExternalID returns the call with the given remote identifier.
func (r *Repo) GetByExternalID(ctx context.Context, externalID string) (*domain.CallRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"external_id": externalID})

	call, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, entity, externalID)
	}
	return call, nil
}

// List returns calls matching the filter, newest call_date first, plus the
// total number of matches ignoring limit/offset.
func (r *Repo) List(ctx context.Context, filter domain.CallFilter) ([]domain.CallRecord, int, error) {
	where := filterConditions(filter)

	countQuery := postgres.Builder().
		Select("count(*)").
		From(tableName).
		Where(where)

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count calls: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count calls: %w", err)
	}

	limit, offset := clampPage(filter.Limit, filter.Offset)

	listQuery := postgres.Builder().
		Select(columns...).
		From(tableName).
		Where(where).
		OrderBy("call_date DESC NULLS LAST", "created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	calls, err := r.getMany(ctx, listQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("list calls: %w", err)
	}

	return calls, total, nil
}

// ListIncomplete returns every call missing a transcript or an agent name.
func (r *Repo) ListIncomplete(ctx context.Context) ([]domain.CallRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(tableName).
		Where(squirrel.Or{
			squirrel.Eq{"transcript": ""},
			squirrel.Eq{"agent_name": ""},
		}).
		OrderBy("created_at", "id")

	calls, err := r.getMany(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list incomplete calls: %w", err)
	}
	return calls, nil
}

// ListMissingAgent returns every call without an agent name.
func (r *Repo) ListMissingAgent(ctx context.Context) ([]domain.CallRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"agent_name": ""}).
		OrderBy("created_at", "id")

	calls, err := r.getMany(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list calls missing agent: %w", err)
	}
	return calls, nil
}

// DistinctReasons returns every non-empty disconnection reason currently stored.
func (r *Repo) DistinctReasons(ctx context.Context) ([]string, error) {
	query := postgres.Builder().
		Select("DISTINCT disconnection_reason").
		From(tableName).
		Where(squirrel.NotEq{"disconnection_reason": ""}).
		OrderBy("disconnection_reason")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build distinct reasons: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("distinct reasons: %w", err)
	}

	reasons, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("distinct reasons: %w", err)
	}
	return reasons, nil
}

// DistinctAgents returns every non-empty agent name currently stored, sorted.
func (r *Repo) DistinctAgents(ctx context.Context) ([]string, error) {
	query := postgres.Builder().
		Select("DISTINCT agent_name").
		From(tableName).
		Where(squirrel.NotEq{"agent_name": ""}).
		OrderBy("agent_name")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build distinct agents: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("distinct agents: %w", err)
	}

	agents, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("distinct agents: %w", err)
	}
	return agents, nil
}

// Stats counts all calls and how many carry a transcript or an agent name.
func (r *Repo) Stats(ctx context.Context) (domain.CallStats, error) {
	query := postgres.Builder().
		Select(
			"count(*)",
			"count(*) FILTER (WHERE transcript <> '')",
			"count(*) FILTER (WHERE agent_name <> '')",
		).
		From(tableName)

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.CallStats{}, fmt.Errorf("build call stats: %w", err)
	}

	var stats domain.CallStats
	err = postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, sql, args...).
		Scan(&stats.Total, &stats.WithTranscript, &stats.WithAgent)
	if err != nil {
		return domain.CallStats{}, fmt.Errorf("call stats: %w", err)
	}
	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a call. When call.Sequence is empty the next display number
// is drawn from call_sequence_seq; a non-empty sequence is kept as is.
// Returns domain.ErrAlreadyExists if the external id is taken.
func (r *Repo) Create(ctx context.Context, call *domain.CallRecord) (*domain.CallRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if call.ID == uuid.Nil {
		call.ID = uuid.New()
	}

	if call.Sequence == "" {
		var next int64
		if err := q.QueryRow(ctx, `SELECT nextval('call_sequence_seq')`).Scan(&next); err != nil {
			return nil, fmt.Errorf("next call sequence: %w", err)
		}
		call.Sequence = domain.FormatSequence(next)
	}

	now := time.Now().UTC()
	if call.CreatedAt.IsZero() {
		call.CreatedAt = now
	}
	if call.UpdatedAt.IsZero() {
		call.UpdatedAt = now
	}

	query := postgres.Builder().
		Insert(tableName).
		Columns(columns...).
		Values(
			call.ID, call.Sequence, call.ExternalID, call.ContactName, call.Phone,
			string(call.Status), string(call.Direction), call.CallDate, call.DurationMS,
			call.Duration, call.FromNumber, call.ToNumber, call.AgentName,
			call.DisconnectionReason, call.Summary, call.Transcript, call.CreatedAt,
			call.UpdatedAt,
		).
		Suffix("RETURNING " + joinColumns())

	created, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, entity, call.ExternalID)
	}
	return created, nil
}

// Update overwrites every synced field of an existing call. Sequence,
// external id and created_at are never changed.
func (r *Repo) Update(ctx context.Context, call *domain.CallRecord) (*domain.CallRecord, error) {
	query := postgres.Builder().
		Update(tableName).
		SetMap(map[string]any{
			"contact_name":         call.ContactName,
			"phone":                call.Phone,
			"status":               string(call.Status),
			"direction":            string(call.Direction),
			"call_date":            call.CallDate,
			"duration_ms":          call.DurationMS,
			"duration":             call.Duration,
			"from_number":          call.FromNumber,
			"to_number":            call.ToNumber,
			"agent_name":           call.AgentName,
			"disconnection_reason": call.DisconnectionReason,
			"summary":              call.Summary,
			"transcript":           call.Transcript,
			"updated_at":           time.Now().UTC(),
		}).
		Where(squirrel.Eq{"id": call.ID}).
		Suffix("RETURNING " + joinColumns())

	updated, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, entity, call.ID)
	}
	return updated, nil
}

// SetTranscript stores a transcript only if the call has none yet.
// Reports whether the row was changed.
func (r *Repo) SetTranscript(ctx context.Context, id uuid.UUID, transcript string) (bool, error) {
	return r.setIfEmpty(ctx, id, "transcript", transcript)
}

// SetAgent stores an agent name only if the call has none yet.
// Reports whether the row was changed.
func (r *Repo) SetAgent(ctx context.Context, id uuid.UUID, agentName string) (bool, error) {
	return r.setIfEmpty(ctx, id, "agent_name", agentName)
}

// ReplaceTranscript overwrites the stored transcript unconditionally.
func (r *Repo) ReplaceTranscript(ctx context.Context, id uuid.UUID, transcript string) error {
	query := postgres.Builder().
		Update(tableName).
		Set("transcript", transcript).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id})

	n, err := r.exec(ctx, query)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ReplaceReason rewrites every call whose disconnection reason equals from.
// Returns the number of rows changed.
func (r *Repo) ReplaceReason(ctx context.Context, from, to string) (int, error) {
	query := postgres.Builder().
		Update(tableName).
		Set("disconnection_reason", to).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"disconnection_reason": from})

	n, err := r.exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("replace reason %q: %w", from, err)
	}
	return int(n), nil
}

// Delete removes a call. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query := postgres.Builder().
		Delete(tableName).
		Where(squirrel.Eq{"id": id})

	n, err := r.exec(ctx, query)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) setIfEmpty(ctx context.Context, id uuid.UUID, column, value string) (bool, error) {
	query := postgres.Builder().
		Update(tableName).
		Set(column, value).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id, column: ""})

	n, err := r.exec(ctx, query)
	if err != nil {
		return false, postgres.MapError(err, entity, id)
	}
	return n > 0, nil
}

func (r *Repo) exec(ctx context.Context, query squirrel.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer) (*domain.CallRecord, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	call, err := scanCall(row)
	if err != nil {
		return nil, err
	}
	return &call, nil
}

func (r *Repo) getMany(ctx context.Context, query squirrel.Sqlizer) ([]domain.CallRecord, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	calls := []domain.CallRecord{}
	for rows.Next() {
		call, err := scanCall(rows)
		if err != nil {
			return nil, err
		}
		calls = append(calls, call)
	}
	return calls, rows.Err()
}

// scanCall reads one row selected with the columns list.
func scanCall(row pgx.Row) (domain.CallRecord, error) {
	var (
		c         domain.CallRecord
		status    string
		direction string
		callDate  *time.Time
	)
	err := row.Scan(
		&c.ID, &c.Sequence, &c.ExternalID, &c.ContactName, &c.Phone, &status, &direction,
		&callDate, &c.DurationMS, &c.Duration, &c.FromNumber, &c.ToNumber, &c.AgentName,
		&c.DisconnectionReason, &c.Summary, &c.Transcript, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.CallRecord{}, err
	}

	c.Status = domain.CallStatus(status)
	c.Direction = domain.CallDirection(direction)
	if callDate != nil {
		utc := callDate.UTC()
		c.CallDate = &utc
	}
	return c, nil
}

func filterConditions(f domain.CallFilter) squirrel.And {
	where := squirrel.And{}

	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*f.Status)})
	}
	if f.Direction != nil {
		where = append(where, squirrel.Eq{"direction": string(*f.Direction)})
	}
	if f.Agent != nil && *f.Agent != "" {
		where = append(where, squirrel.ILike{"agent_name": "%" + *f.Agent + "%"})
	}
	if len(f.Agents) > 0 {
		where = append(where, squirrel.Eq{"agent_name": f.Agents})
	}
	if f.CallFrom != nil {
		where = append(where, squirrel.GtOrEq{"call_date": *f.CallFrom})
	}
	if f.CallTo != nil {
		where = append(where, squirrel.Lt{"call_date": *f.CallTo})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"contact_name": pattern},
			squirrel.ILike{"phone": pattern},
			squirrel.ILike{"external_id": pattern},
			squirrel.ILike{"sequence": pattern},
		})
	}
	if f.MissingTranscript {
		where = append(where, squirrel.Eq{"transcript": ""})
	}

	return where
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
