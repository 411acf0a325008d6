package accesslevel

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
)

// fakeRepository is an in-memory Repository that counts the calls it receives.
type fakeRepository struct {
	nextID int64
	rows   map[Level]string
	calls  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[Level]string)}
}

func (f *fakeRepository) Insert(_ context.Context, a *AccessLevel) (int64, error) {
	f.calls++
	f.nextID++
	f.rows[Level(f.nextID)] = a.Description()
	return f.nextID, nil
}

func (f *fakeRepository) Update(_ context.Context, a *AccessLevel) (int64, error) {
	f.calls++
	id := *a.AccessLevelID()
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	f.rows[id] = a.Description()
	return 1, nil
}

func (f *fakeRepository) Delete(_ context.Context, id Level) (int64, error) {
	f.calls++
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id Level) (*AccessLevel, error) {
	f.calls++
	d, ok := f.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return fromRow(int64(id), d)
}

func (f *fakeRepository) List(_ context.Context) ([]*AccessLevel, error) {
	f.calls++
	var list []*AccessLevel
	for _, l := range []Level{Viewer, Admin, PowerUser} {
		if d, ok := f.rows[l]; ok {
			a, _ := fromRow(int64(l), d)
			list = append(list, a)
		}
	}
	return list, nil
}

func TestInsertAssignsLevel(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()

	a, err := New(nil, "admin-user")
	require.NoError(t, err)
	require.NoError(t, a.Insert(ctx, repo))
	require.NotNil(t, a.AccessLevelID())
	assert.Equal(t, Viewer, *a.AccessLevelID())

	err = a.SetDescription(strings.Repeat("x", 33))
	assert.ErrorIs(t, err, apperror.ErrRange)
	assert.Equal(t, 1, repo.calls, "a rejected description never reaches the store")
}

func TestInsertRejectsUndefinedStoreID(t *testing.T) {
	repo := newFakeRepository()
	repo.nextID = 3

	a, err := New(nil, "extra")
	require.NoError(t, err)

	err = a.Insert(context.Background(), repo)
	assert.ErrorIs(t, err, apperror.ErrPersistence)
	assert.Nil(t, a.AccessLevelID())
}

func TestGuards(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()

	persisted, err := New(levelPtr(Admin), "admin")
	require.NoError(t, err)
	assert.ErrorIs(t, persisted.Insert(ctx, repo), ErrExists)

	fresh, err := New(nil, "viewer")
	require.NoError(t, err)
	assert.ErrorIs(t, fresh.Delete(ctx, repo), apperror.ErrPersistence)
	assert.ErrorIs(t, fresh.Update(ctx, repo), apperror.ErrPersistence)

	assert.Equal(t, 0, repo.calls)
}

func TestDeleteClearsID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()

	a, err := New(nil, "viewer")
	require.NoError(t, err)
	require.NoError(t, a.Insert(ctx, repo))
	require.NoError(t, a.Delete(ctx, repo))
	assert.Nil(t, a.AccessLevelID())
	assert.ErrorIs(t, a.Delete(ctx, repo), apperror.ErrPersistence)

	stale, err := New(levelPtr(PowerUser), "gone")
	require.NoError(t, err)
	assert.ErrorIs(t, stale.Delete(ctx, repo), ErrNotFound)
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewService(repo)

	a, err := svc.Create(ctx, "viewer")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, *a.AccessLevelID(), "read only")
	require.NoError(t, err)
	assert.Equal(t, "read only", updated.Description())
	assert.Equal(t, "read only", repo.rows[Viewer])

	_, err = svc.Update(ctx, Admin, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, Viewer))
	_, err = svc.GetByID(ctx, Viewer)
	assert.ErrorIs(t, err, ErrNotFound)
}
