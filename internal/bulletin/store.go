package bulletin

import (
	"context"
	"net/http"

	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/sanitize"
)

// Insert writes a new row and assigns the generated id to b.
// It fails without touching the store if b already has an id.
func (b *Bulletin) Insert(ctx context.Context, repo Repository) error {
	if b.id != nil {
		return ErrExists
	}

	id, err := repo.Insert(ctx, b)
	if err != nil {
		return apperror.AsPersistence(err, "failed to insert bulletin")
	}
	if err := b.SetBulletinID(&id); err != nil {
		return apperror.Persistence(http.StatusInternalServerError, "store returned an invalid bulletin id", err)
	}
	return nil
}

// Delete removes the row for b's id and clears the id.
func (b *Bulletin) Delete(ctx context.Context, repo Repository) error {
	if b.id == nil {
		return ErrNoDelete
	}

	n, err := repo.Delete(ctx, *b.id)
	if err != nil {
		return apperror.AsPersistence(err, "failed to delete bulletin")
	}
	if n == 0 {
		return ErrNotFound
	}
	b.id = nil
	return nil
}

// Update writes every field to the row for b's id.
// A stale id affects zero rows and is not reported.
func (b *Bulletin) Update(ctx context.Context, repo Repository) error {
	if b.id == nil {
		return ErrNoUpdate
	}

	if _, err := repo.Update(ctx, b); err != nil {
		return apperror.AsPersistence(err, "failed to update bulletin")
	}
	return nil
}

// GetByCategory returns the first bulletin in category, or ErrNotFound.
// An empty category is rejected before the store is queried.
func GetByCategory(ctx context.Context, repo Repository, category string) (*Bulletin, error) {
	category = sanitize.String(category)
	if category == "" {
		return nil, apperror.InvalidArgument("category invalid")
	}

	b, err := repo.GetByCategory(ctx, category)
	if err != nil {
		return nil, apperror.AsPersistence(err, "failed to get bulletin by category")
	}
	return b, nil
}

// GetByID returns the bulletin with the given id, or ErrNotFound.
func GetByID(ctx context.Context, repo Repository, id int64) (*Bulletin, error) {
	if id < 1 {
		return nil, apperror.InvalidArgument("bulletinId invalid")
	}

	b, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.AsPersistence(err, "failed to get bulletin")
	}
	return b, nil
}

// GetAll returns every bulletin ordered by id.
func GetAll(ctx context.Context, repo Repository) ([]*Bulletin, error) {
	list, err := repo.List(ctx)
	if err != nil {
		return nil, apperror.AsPersistence(err, "failed to list bulletins")
	}
	if list == nil {
		list = make([]*Bulletin, 0)
	}
	return list, nil
}
