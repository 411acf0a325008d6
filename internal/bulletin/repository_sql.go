package bulletin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
)

type sqlRepository struct {
	db *sql.DB
	q  queries
}

// NewSQLRepository creates a Repository over a database/sql handle using
// question-mark placeholders (the embedded SQLite store).
func NewSQLRepository(db *sql.DB) Repository {
	return &sqlRepository{db: db, q: newQueries(squirrel.Question)}
}

func (r *sqlRepository) Insert(ctx context.Context, b *Bulletin) (int64, error) {
	query, args, err := r.q.insert(b)
	if err != nil {
		return 0, fmt.Errorf("build insert bulletin query failed: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert bulletin failed: %w", err)
	}
	return id, nil
}

func (r *sqlRepository) Update(ctx context.Context, b *Bulletin) (int64, error) {
	query, args, err := r.q.update(b)
	if err != nil {
		return 0, fmt.Errorf("build update bulletin query failed: %w", err)
	}
	return r.exec(ctx, "update bulletin", query, args)
}

func (r *sqlRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query, args, err := r.q.delete(id)
	if err != nil {
		return 0, fmt.Errorf("build delete bulletin query failed: %w", err)
	}
	return r.exec(ctx, "delete bulletin", query, args)
}

func (r *sqlRepository) exec(ctx context.Context, op, query string, args []any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s failed: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s rows affected: %w", op, err)
	}
	return n, nil
}

func (r *sqlRepository) GetByID(ctx context.Context, id int64) (*Bulletin, error) {
	return r.getOne(ctx, squirrel.Eq{"bulletin_id": id})
}

func (r *sqlRepository) GetByCategory(ctx context.Context, category string) (*Bulletin, error) {
	return r.getOne(ctx, squirrel.Eq{"category": category})
}

func (r *sqlRepository) getOne(ctx context.Context, pred any) (*Bulletin, error) {
	query, args, err := r.q.selectWhere(pred).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get bulletin query failed: %w", err)
	}

	var rw row
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&rw.id, &rw.userID, &rw.category, &rw.message, &rw.createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get bulletin failed: %w", err)
	}
	return rw.toBulletin()
}

func (r *sqlRepository) List(ctx context.Context) ([]*Bulletin, error) {
	query, args, err := r.q.selectWhere(nil).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bulletins query failed: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bulletins failed: %w", err)
	}
	defer rows.Close()

	var result []*Bulletin
	for rows.Next() {
		var rw row
		if err := rows.Scan(&rw.id, &rw.userID, &rw.category, &rw.message, &rw.createdAt); err != nil {
			return nil, fmt.Errorf("scan bulletin failed: %w", err)
		}
		b, err := rw.toBulletin()
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}
