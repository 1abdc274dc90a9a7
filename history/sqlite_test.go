package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRecordAndRecent(t *testing.T) {
	r := newTestRecorder(t)

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	r.Record(Jump{Timestamp: base, Direction: "right", FromPane: "%1", ToPane: "%2",
		FromDocument: "nvim:/src", ToDocument: "zsh:/src"})
	r.Record(Jump{Timestamp: base.Add(time.Second), Direction: "down", FromPane: "%2", ToPane: "%3"})

	jumps, err := r.Recent(10)
	require.NoError(t, err)
	require.Len(t, jumps, 2)

	// Newest first.
	assert.Equal(t, "down", jumps[0].Direction)
	assert.Equal(t, "right", jumps[1].Direction)
	assert.Equal(t, "%2", jumps[1].ToPane)
	assert.Equal(t, "nvim:/src", jumps[1].FromDocument)
	assert.Equal(t, base, jumps[1].Timestamp)
}

func TestRecord_ZeroTimestampGetsNow(t *testing.T) {
	r := newTestRecorder(t)

	r.Record(Jump{Direction: "next", ToPane: "%1"})

	jumps, err := r.Recent(1)
	require.NoError(t, err)
	require.Len(t, jumps, 1)
	assert.WithinDuration(t, time.Now(), jumps[0].Timestamp, time.Minute)
}

func TestRecent_LimitApplies(t *testing.T) {
	r := newTestRecorder(t)

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		r.Record(Jump{Timestamp: base.Add(time.Duration(i) * time.Second), Direction: "next"})
	}

	jumps, err := r.Recent(3)
	require.NoError(t, err)
	assert.Len(t, jumps, 3)
}

func TestNewSQLiteRecorder_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	r, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r.Close()

	r.Record(Jump{Direction: "up", ToPane: "%1"})
	jumps, err := r.Recent(1)
	require.NoError(t, err)
	assert.Len(t, jumps, 1)
}

func TestNopRecorder(t *testing.T) {
	r := NopRecorder()
	r.Record(Jump{Direction: "left"})

	jumps, err := r.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, jumps)
	assert.NoError(t, r.Close())
}
