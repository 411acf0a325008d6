package bulletin

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/bulletin-board-backend/internal/db"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	sqlDB, err := db.OpenSQLite(context.Background(), db.MemoryPath, log)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB
}

func TestSQLRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(openTestDB(t))

	b, err := New(nil, 12, "sports", "go team", postedAt)
	require.NoError(t, err)
	require.NoError(t, b.Insert(ctx, repo))
	require.NotNil(t, b.BulletinID())
	id := *b.BulletinID()

	got, err := GetByID(ctx, repo, id)
	require.NoError(t, err)
	assert.Equal(t, id, *got.BulletinID())
	assert.Equal(t, int64(12), got.UserID())
	assert.Equal(t, "sports", got.Category())
	assert.Equal(t, "go team", got.Message())
	assert.True(t, postedAt.Equal(got.Timestamp()), "timestamp %v should equal %v", got.Timestamp(), postedAt)

	require.NoError(t, got.SetCategory("news"))
	require.NoError(t, got.Update(ctx, repo))

	byCategory, err := GetByCategory(ctx, repo, "news")
	require.NoError(t, err)
	assert.Equal(t, id, *byCategory.BulletinID())

	_, err = GetByCategory(ctx, repo, "sports")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, got.Delete(ctx, repo))
	_, err = GetByID(ctx, repo, id)
	assert.ErrorIs(t, err, ErrNotFound)

	// The first instance still holds the id; the row is gone.
	assert.ErrorIs(t, b.Delete(ctx, repo), ErrNotFound)
}

func TestSQLRepositoryListOrdersByID(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRepository(openTestDB(t))

	list, err := GetAll(ctx, repo)
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, msg := range []string{"alpha", "beta", "gamma"} {
		b, err := New(nil, 1, "misc", msg, postedAt)
		require.NoError(t, err)
		require.NoError(t, b.Insert(ctx, repo))
	}

	list, err = GetAll(ctx, repo)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, msg := range []string{"alpha", "beta", "gamma"} {
		assert.Equal(t, msg, list[i].Message())
	}
	assert.Less(t, *list[0].BulletinID(), *list[1].BulletinID())

	first, err := GetByCategory(ctx, repo, "misc")
	require.NoError(t, err)
	assert.Equal(t, "alpha", first.Message())
}
