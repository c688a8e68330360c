package scores_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/tetra/internal/scores"
	"github.com/plus3/tetra/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) (*scores.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "scores.db")
	store, err := scores.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := scores.Open("  ")
	assert.Error(t, err)
}

func TestTopOrdersByScore(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, e := range []scores.Entry{
		{Name: "ann", Score: 1200, Level: 2, Lines: 12},
		{Name: "bob", Score: 4000, Level: 5, Lines: 40},
		{Name: "cyd", Score: 1200, Level: 3, Lines: 11},
		{Name: "dee", Score: 300, Level: 1, Lines: 2},
	} {
		e.RecordedAt = base.Add(time.Duration(i) * time.Minute)
		recorded, err := store.Record(ctx, e)
		require.NoError(t, err)
		assert.Positive(t, recorded.ID)
	}

	top, err := store.Top(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "bob", top[0].Name)
	// Equal scores keep recording order.
	assert.Equal(t, "ann", top[1].Name)
	assert.Equal(t, "cyd", top[2].Name)
	assert.True(t, base.Add(2*time.Minute).Equal(top[2].RecordedAt))

	none, err := store.Top(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTopBreaksSubsecondTiesByTime(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	earlier := time.Date(2024, 3, 1, 12, 0, 5, 0, time.UTC)

	// The later entry is inserted first so row order cannot decide the tie.
	_, err := store.Record(ctx, scores.Entry{Name: "late", Score: 700, RecordedAt: earlier.Add(500 * time.Millisecond)})
	require.NoError(t, err)
	_, err = store.Record(ctx, scores.Entry{Name: "early", Score: 700, RecordedAt: earlier})
	require.NoError(t, err)

	top, err := store.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "early", top[0].Name)
	assert.Equal(t, "late", top[1].Name)
	assert.True(t, earlier.Equal(top[0].RecordedAt))
	assert.True(t, earlier.Add(500*time.Millisecond).Equal(top[1].RecordedAt))
}

func TestRecordFromSession(t *testing.T) {
	store, path := openStore(t)
	ctx := context.Background()

	session := tetris.NewSession(tetris.WithFirstPiece(tetris.I), tetris.WithSeed(2), tetris.WithLevel(4))
	session.FrameAdvance()
	session.HardDrop()
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))

	entry := scores.EntryFromSession("ada", session, at)
	assert.Equal(t, session.Score(), entry.Score)
	assert.Equal(t, 4, entry.Level)
	assert.Equal(t, 1, entry.Pieces)
	assert.Equal(t, uint64(1), entry.Frames)
	assert.Equal(t, time.UTC, entry.RecordedAt.Location())

	recorded, err := store.Record(ctx, entry)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var (
		name   string
		score  int
		pieces int
		frames int64
	)
	row := db.QueryRow(`SELECT name, score, pieces, frames FROM scores WHERE id = ?`, recorded.ID)
	require.NoError(t, row.Scan(&name, &score, &pieces, &frames))
	assert.Equal(t, "ada", name)
	assert.Equal(t, entry.Score, score)
	assert.Equal(t, 1, pieces)
	assert.Equal(t, int64(1), frames)
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	store, err := scores.Open(path)
	require.NoError(t, err)
	_, err = store.Record(ctx, scores.Entry{Name: "eve", Score: 50})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = scores.Open(path)
	require.NoError(t, err)
	defer store.Close()
	top, err := store.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "eve", top[0].Name)
	assert.False(t, top[0].RecordedAt.IsZero())
}

func TestClosedStore(t *testing.T) {
	store, _ := openStore(t)
	require.NoError(t, store.Close())
	assert.NoError(t, store.Close())

	_, err := store.Record(context.Background(), scores.Entry{Name: "x"})
	assert.ErrorIs(t, err, scores.ErrClosed)
	_, err = store.Top(context.Background(), 1)
	assert.ErrorIs(t, err, scores.ErrClosed)
}
