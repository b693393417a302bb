// Package assignment stores person to agent assignments in PostgreSQL.
package assignment

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/callhistory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/callhistory-backend/internal/domain"
)

const (
	tableName = "agent_assignments"
	entity    = "agent assignment"
)

var columns = []string{"id", "person", "agent_names", "created_at", "updated_at"}

// Repo provides assignment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assignment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Save inserts the assignment, or replaces the agents of the existing row for
// the same person. The stored row is returned; on replace it keeps its
// original id and created_at.
func (r *Repo) Save(ctx context.Context, a *domain.AgentAssignment) (*domain.AgentAssignment, error) {
	agents := a.AgentNames
	if agents == nil {
		agents = []string{}
	}

	query := postgres.Builder().
		Insert(tableName).
		Columns(columns...).
		Values(a.ID, a.Person, agents, a.CreatedAt, a.UpdatedAt).
		Suffix("ON CONFLICT (person) DO UPDATE SET agent_names = EXCLUDED.agent_names, updated_at = EXCLUDED.updated_at").
		Suffix("RETURNING " + strings.Join(columns, ", "))

	saved, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, entity, a.Person)
	}
	return saved, nil
}

// GetByID returns an assignment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AgentAssignment, error) {
	query := postgres.Builder().
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	a, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return a, nil
}

// List returns every assignment ordered by person.
func (r *Repo) List(ctx context.Context) ([]domain.AgentAssignment, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(tableName).
		OrderBy("person", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list assignments: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AgentAssignment, error) {
		return scanAssignment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return list, nil
}

// Delete removes an assignment. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete assignment: %w", err)
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

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer) (*domain.AgentAssignment, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	a, err := scanAssignment(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanAssignment(row pgx.Row) (domain.AgentAssignment, error) {
	var a domain.AgentAssignment
	if err := row.Scan(&a.ID, &a.Person, &a.AgentNames, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.AgentAssignment{}, err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}
