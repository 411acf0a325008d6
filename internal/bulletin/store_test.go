package bulletin

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
)

func TestInsertAssignsStoreID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	repo.nextID = 41

	b, err := New(nil, 1, "sports", "go team", postedAt)
	require.NoError(t, err)

	require.NoError(t, b.Insert(ctx, repo))
	require.NotNil(t, b.BulletinID())
	assert.Equal(t, int64(42), *b.BulletinID())
	assert.Contains(t, repo.rows, int64(42))
}

func TestInsertWithIDNeverWrites(t *testing.T) {
	repo := newFakeRepository()

	b, err := New(int64Ptr(9), 1, "sports", "go team", postedAt)
	require.NoError(t, err)

	err = b.Insert(context.Background(), repo)
	assert.ErrorIs(t, err, apperror.ErrPersistence)
	assert.ErrorIs(t, err, ErrExists)
	assert.Equal(t, 0, repo.calls, "no statement may be issued")
}

func TestDeleteAndUpdateRequireID(t *testing.T) {
	repo := newFakeRepository()

	b, err := New(nil, 1, "sports", "go team", postedAt)
	require.NoError(t, err)

	assert.ErrorIs(t, b.Delete(context.Background(), repo), apperror.ErrPersistence)
	assert.ErrorIs(t, b.Update(context.Background(), repo), apperror.ErrPersistence)
	assert.Equal(t, 0, repo.calls)
}

func TestInsertDeleteScenario(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()

	b, err := New(nil, 1, "sports", "go team", postedAt)
	require.NoError(t, err)

	require.NoError(t, b.Insert(ctx, repo))
	id := *b.BulletinID()

	require.NoError(t, b.Delete(ctx, repo))
	assert.Nil(t, b.BulletinID(), "a deleted bulletin has no identity")
	assert.NotContains(t, repo.rows, id)

	err = b.Delete(ctx, repo)
	assert.ErrorIs(t, err, apperror.ErrPersistence)
}

func TestDeleteStaleID(t *testing.T) {
	repo := newFakeRepository()

	b, err := New(int64Ptr(77), 1, "sports", "go team", postedAt)
	require.NoError(t, err)

	err = b.Delete(context.Background(), repo)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, http.StatusNotFound, apperror.StatusCode(err))
	assert.NotNil(t, b.BulletinID(), "a failed delete keeps the id")
}

func TestUpdateWritesFieldsAndIgnoresStaleID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()

	b, err := New(nil, 1, "sports", "go team", postedAt)
	require.NoError(t, err)
	require.NoError(t, b.Insert(ctx, repo))

	require.NoError(t, b.SetMessage("final score 3-1"))
	require.NoError(t, b.Update(ctx, repo))
	assert.Equal(t, "final score 3-1", repo.rows[*b.BulletinID()].Message)

	stale, err := New(int64Ptr(500), 1, "sports", "ghost", postedAt)
	require.NoError(t, err)
	assert.NoError(t, stale.Update(ctx, repo), "zero affected rows is not an error")
}

func TestStoreFailureBecomesPersistenceError(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("connection refused")
	repo := newFakeRepository()
	repo.err = cause

	b, err := New(nil, 1, "sports", "go team", postedAt)
	require.NoError(t, err)

	err = b.Insert(ctx, repo)
	assert.ErrorIs(t, err, apperror.ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, apperror.StatusCode(err))
	assert.Nil(t, b.BulletinID())

	_, err = GetAll(ctx, repo)
	assert.ErrorIs(t, err, cause)
}

func TestGetByCategory(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()

	for _, c := range []struct{ category, message string }{
		{"sports", "first"},
		{"news", "second"},
		{"sports", "third"},
	} {
		b, err := New(nil, 1, c.category, c.message, postedAt)
		require.NoError(t, err)
		require.NoError(t, b.Insert(ctx, repo))
	}

	t.Run("Empty category fails before any query", func(t *testing.T) {
		before := repo.calls
		_, err := GetByCategory(ctx, repo, "")
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
		_, err = GetByCategory(ctx, repo, "<p></p>")
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
		assert.Equal(t, before, repo.calls)
	})

	t.Run("First match wins", func(t *testing.T) {
		b, err := GetByCategory(ctx, repo, "sports")
		require.NoError(t, err)
		assert.Equal(t, "first", b.Message())
	})

	t.Run("No match", func(t *testing.T) {
		_, err := GetByCategory(ctx, repo, "weather")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetAllReturnsEveryBulletin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()

	list, err := GetAll(ctx, repo)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for _, msg := range []string{"one", "two", "three"} {
		b, err := New(nil, 1, "misc", msg, postedAt)
		require.NoError(t, err)
		require.NoError(t, b.Insert(ctx, repo))
	}

	list, err = GetAll(ctx, repo)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "one", list[0].Message())
	assert.Equal(t, "three", list[2].Message())
}

func TestGetByIDRejectsNonPositive(t *testing.T) {
	repo := newFakeRepository()
	_, err := GetByID(context.Background(), repo, 0)
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	assert.Equal(t, 0, repo.calls)
}
