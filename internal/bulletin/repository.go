package bulletin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
)

// Repository is the persistence contract the bulletin entity consumes.
type Repository interface {
	// Insert stores b and returns the generated id.
	Insert(ctx context.Context, b *Bulletin) (int64, error)
	// Update writes b's fields to the row with b's id and returns the affected row count.
	Update(ctx context.Context, b *Bulletin) (int64, error)
	// Delete removes the row with id and returns the affected row count.
	Delete(ctx context.Context, id int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*Bulletin, error)
	GetByCategory(ctx context.Context, category string) (*Bulletin, error)
	List(ctx context.Context) ([]*Bulletin, error)
}

const tableName = "bulletin"

var selectColumns = []string{"bulletin_id", "user_id", "category", "message", "created_at"}

// queries builds the bulletin statements for one placeholder dialect.
type queries struct {
	sb squirrel.StatementBuilderType
}

func newQueries(format squirrel.PlaceholderFormat) queries {
	return queries{sb: squirrel.StatementBuilder.PlaceholderFormat(format)}
}

func (q queries) insert(b *Bulletin) (string, []any, error) {
	return q.sb.Insert(tableName).
		Columns("user_id", "category", "message", "created_at").
		Values(b.userID, b.category, b.message, b.timestamp).
		Suffix("RETURNING bulletin_id").
		ToSql()
}

func (q queries) update(b *Bulletin) (string, []any, error) {
	return q.sb.Update(tableName).
		Set("user_id", b.userID).
		Set("category", b.category).
		Set("message", b.message).
		Set("created_at", b.timestamp).
		Where(squirrel.Eq{"bulletin_id": *b.id}).
		ToSql()
}

func (q queries) delete(id int64) (string, []any, error) {
	return q.sb.Delete(tableName).
		Where(squirrel.Eq{"bulletin_id": id}).
		ToSql()
}

func (q queries) selectWhere(pred any) squirrel.SelectBuilder {
	sel := q.sb.Select(selectColumns...).From(tableName)
	if pred != nil {
		sel = sel.Where(pred)
	}
	return sel.OrderBy("bulletin_id ASC")
}

// row holds scanned column values before they become a Bulletin.
type row struct {
	id        int64
	userID    int64
	category  string
	message   string
	createdAt time.Time
}

// toBulletin hydrates a stored row. Text fields were sanitized on the way in
// and are not sanitized again, so stored text such as "&lt;b&gt;" survives.
func (r row) toBulletin() (*Bulletin, error) {
	b := &Bulletin{
		userID:    r.userID,
		category:  r.category,
		message:   r.message,
		timestamp: r.createdAt,
	}
	if err := b.SetBulletinID(&r.id); err != nil {
		return nil, apperror.Persistence(http.StatusInternalServerError, "stored bulletin is invalid", err)
	}
	return b, nil
}

type pgxRepository struct {
	pool *pgxpool.Pool
	q    queries
}

// NewPgxRepository creates a Repository backed by PostgreSQL.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool, q: newQueries(squirrel.Dollar)}
}

func (r *pgxRepository) Insert(ctx context.Context, b *Bulletin) (int64, error) {
	query, args, err := r.q.insert(b)
	if err != nil {
		return 0, fmt.Errorf("build insert bulletin query failed: %w", err)
	}

	var id int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert bulletin failed: %w", err)
	}
	return id, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Bulletin) (int64, error) {
	query, args, err := r.q.update(b)
	if err != nil {
		return 0, fmt.Errorf("build update bulletin query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update bulletin failed: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query, args, err := r.q.delete(id)
	if err != nil {
		return 0, fmt.Errorf("build delete bulletin query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete bulletin failed: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Bulletin, error) {
	return r.getOne(ctx, squirrel.Eq{"bulletin_id": id})
}

func (r *pgxRepository) GetByCategory(ctx context.Context, category string) (*Bulletin, error) {
	return r.getOne(ctx, squirrel.Eq{"category": category})
}

func (r *pgxRepository) getOne(ctx context.Context, pred any) (*Bulletin, error) {
	query, args, err := r.q.selectWhere(pred).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get bulletin query failed: %w", err)
	}

	var rw row
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&rw.id, &rw.userID, &rw.category, &rw.message, &rw.createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get bulletin failed: %w", err)
	}
	return rw.toBulletin()
}

func (r *pgxRepository) List(ctx context.Context) ([]*Bulletin, error) {
	query, args, err := r.q.selectWhere(nil).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bulletins query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bulletins failed: %w", err)
	}
	return result, nil
}
