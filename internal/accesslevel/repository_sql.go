package accesslevel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type sqlRepository struct {
	db *sql.DB
	q  queries
}

// NewSQLRepository creates a Repository over the embedded SQLite store.
func NewSQLRepository(db *sql.DB) Repository {
	return &sqlRepository{db: db, q: newQueries(squirrel.Question)}
}

func mapSQLiteError(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ErrExists
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return ErrDescriptionTaken
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return ErrNoFreeLevel
		}
		// Primary result code only; fall back to the message.
		if sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			msg := sqliteErr.Error()
			switch {
			case strings.Contains(msg, "access_level.access_level_id"):
				return ErrExists
			case strings.Contains(msg, "UNIQUE"):
				return ErrDescriptionTaken
			case strings.Contains(msg, "CHECK"):
				return ErrNoFreeLevel
			}
		}
	}
	return err
}

func (r *sqlRepository) Insert(ctx context.Context, a *AccessLevel) (int64, error) {
	query, args, err := r.q.insert(a)
	if err != nil {
		return 0, fmt.Errorf("build insert access level query failed: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNoFreeLevel
		}
		if mapped := mapSQLiteError(err); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("insert access level failed: %w", err)
	}
	return id, nil
}

func (r *sqlRepository) Update(ctx context.Context, a *AccessLevel) (int64, error) {
	query, args, err := r.q.update(a)
	if err != nil {
		return 0, fmt.Errorf("build update access level query failed: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapSQLiteError(err); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("update access level failed: %w", err)
	}
	return res.RowsAffected()
}

func (r *sqlRepository) Delete(ctx context.Context, id Level) (int64, error) {
	query, args, err := r.q.delete(id)
	if err != nil {
		return 0, fmt.Errorf("build delete access level query failed: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete access level failed: %w", err)
	}
	return res.RowsAffected()
}

func (r *sqlRepository) GetByID(ctx context.Context, id Level) (*AccessLevel, error) {
	query, args, err := r.q.selectWhere(squirrel.Eq{"access_level_id": int64(id)}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get access level query failed: %w", err)
	}

	var (
		rawID       int64
		description string
	)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&rawID, &description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get access level failed: %w", err)
	}
	return fromRow(rawID, description)
}

func (r *sqlRepository) List(ctx context.Context) ([]*AccessLevel, error) {
	query, args, err := r.q.selectWhere(nil).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list access levels query failed: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
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
	return result, rows.Err()
}
