package accesslevel

import (
	"context"
	"net/http"

	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
)

// Insert writes a new row and assigns the generated Level to a.
func (a *AccessLevel) Insert(ctx context.Context, repo Repository) error {
	if a.id != nil {
		return ErrExists
	}

	raw, err := repo.Insert(ctx, a)
	if err != nil {
		return apperror.AsPersistence(err, "failed to insert access level")
	}
	l, err := ParseLevel(raw)
	if err != nil {
		return apperror.Persistence(http.StatusInternalServerError, "store returned an undefined access level", err)
	}
	a.id = &l
	return nil
}

// Delete removes the row for a's id and clears the id.
func (a *AccessLevel) Delete(ctx context.Context, repo Repository) error {
	if a.id == nil {
		return ErrNoDelete
	}

	n, err := repo.Delete(ctx, *a.id)
	if err != nil {
		return apperror.AsPersistence(err, "failed to delete access level")
	}
	if n == 0 {
		return ErrNotFound
	}
	a.id = nil
	return nil
}

// Update writes the description to the row for a's id.
func (a *AccessLevel) Update(ctx context.Context, repo Repository) error {
	if a.id == nil {
		return ErrNoUpdate
	}

	if _, err := repo.Update(ctx, a); err != nil {
		return apperror.AsPersistence(err, "failed to update access level")
	}
	return nil
}

func GetByID(ctx context.Context, repo Repository, id Level) (*AccessLevel, error) {
	if !id.Valid() {
		return nil, apperror.InvalidArgument("accessLevelId invalid")
	}

	a, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.AsPersistence(err, "failed to get access level")
	}
	return a, nil
}

func GetAll(ctx context.Context, repo Repository) ([]*AccessLevel, error) {
	list, err := repo.List(ctx)
	if err != nil {
		return nil, apperror.AsPersistence(err, "failed to list access levels")
	}
	if list == nil {
		list = make([]*AccessLevel, 0)
	}
	return list, nil
}
