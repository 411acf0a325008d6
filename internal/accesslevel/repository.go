package accesslevel

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the persistence contract the access level entity consumes.
type Repository interface {
	// Insert stores a under the lowest free Level and returns it.
	// It fails with ErrNoFreeLevel when every Level is taken.
	Insert(ctx context.Context, a *AccessLevel) (int64, error)
	Update(ctx context.Context, a *AccessLevel) (int64, error)
	Delete(ctx context.Context, id Level) (int64, error)
	GetByID(ctx context.Context, id Level) (*AccessLevel, error)
	List(ctx context.Context) ([]*AccessLevel, error)
}

const tableName = "access_level"

type queries struct {
	sb squirrel.StatementBuilderType
}

func newQueries(format squirrel.PlaceholderFormat) queries {
	return queries{sb: squirrel.StatementBuilder.PlaceholderFormat(format)}
}

// insert claims the lowest Level with no row. When none is free the
// statement inserts nothing and returns no row.
func (q queries) insert(a *AccessLevel) (string, []any, error) {
	free := squirrel.Select("free.column1").
		Column(squirrel.Expr("?", a.description)).
		From(fmt.Sprintf("(VALUES (%d),(%d),(%d)) AS free", Viewer, Admin, PowerUser)).
		Where("free.column1 NOT IN (SELECT access_level_id FROM " + tableName + ")").
		OrderBy("free.column1").
		Limit(1)

	return q.sb.Insert(tableName).
		Columns("access_level_id", "description").
		Select(free).
		Suffix("RETURNING access_level_id").
		ToSql()
}

func (q queries) update(a *AccessLevel) (string, []any, error) {
	return q.sb.Update(tableName).
		Set("description", a.description).
		Where(squirrel.Eq{"access_level_id": int64(*a.id)}).
		ToSql()
}

func (q queries) delete(id Level) (string, []any, error) {
	return q.sb.Delete(tableName).
		Where(squirrel.Eq{"access_level_id": int64(id)}).
		ToSql()
}

func (q queries) selectWhere(pred any) squirrel.SelectBuilder {
	sel := q.sb.Select("access_level_id", "description").From(tableName)
	if pred != nil {
		sel = sel.Where(pred)
	}
	return sel.OrderBy("access_level_id ASC")
}

// fromRow hydrates a stored row, rejecting ids outside the enumeration.
func fromRow(id int64, description string) (*AccessLevel, error) {
	l, err := ParseLevel(id)
	if err != nil {
		return nil, fmt.Errorf("stored access level %d: %w", id, err)
	}
	return &AccessLevel{id: &l, description: description}, nil
}

type pgxRepository struct {
	pool *pgxpool.Pool
	q    queries
}

// NewPgxRepository creates a Repository backed by PostgreSQL.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool, q: newQueries(squirrel.Dollar)}
}

// mapPgError turns constraint violations into domain errors.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if pgErr.ConstraintName == tableName+"_pkey" {
				return ErrExists
			}
			return ErrDescriptionTaken
		case pgerrcode.CheckViolation:
			return ErrNoFreeLevel
		}
	}
	return err
}

func (r *pgxRepository) Insert(ctx context.Context, a *AccessLevel) (int64, error) {
	query, args, err := r.q.insert(a)
	if err != nil {
		return 0, fmt.Errorf("build insert access level query failed: %w", err)
	}

	var id int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNoFreeLevel
		}
		if mapped := mapPgError(err); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("insert access level failed: %w", err)
	}
	return id, nil
}

func (r *pgxRepository) Update(ctx context.Context, a *AccessLevel) (int64, error) {
	query, args, err := r.q.update(a)
	if err != nil {
		return 0, fmt.Errorf("build update access level query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("update access level failed: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (r *pgxRepository) Delete(ctx context.Context, id Level) (int64, error) {
	query, args, err := r.q.delete(id)
	if err != nil {
		return 0, fmt.Errorf("build delete access level query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete access level failed: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id Level) (*AccessLevel, error) {
	query, args, err := r.q.selectWhere(squirrel.Eq{"access_level_id": int64(id)}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get access level query failed: %w", err)
	}

	var (
		rawID       int64
		description string
	)
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rawID, &description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get access level failed: %w", err)
	}
	return fromRow(rawID, description)
}

func (r *pgxRepository) List(ctx context.Context) ([]*AccessLevel, error) {
	query, args, err := r.q.selectWhere(nil).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list access levels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list access levels failed: %w", err)
	}
	defer rows.Close()

	var result []*AccessLevel
	for rows.Next() {
		var (
			rawID       int64
			description string
		)
		if err := rows.Scan(&rawID, &description); err != nil {
			return nil, fmt.Errorf("scan access level failed: %w", err)
		}
		a, err := fromRow(rawID, description)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate access levels failed: %w", err)
	}
	return result, nil
}
