// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sheetconv/pkg/types"
)

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, dir
}

func TestOpenCreatesDatabase(t *testing.T) {
	_, dir := openStore(t)
	_, err := os.Stat(filepath.Join(dir, "journal.db"))
	assert.NoError(t, err)
}

func TestUnchanged(t *testing.T) {
	s, _ := openStore(t)
	modTime := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name  string
		setup func(t *testing.T)
		query time.Time
		want  bool
	}{
		{
			name:  "no record",
			setup: func(t *testing.T) {},
			query: modTime,
			want:  false,
		},
		{
			name: "matching successful record",
			setup: func(t *testing.T) {
				require.NoError(t, s.Record("in.xlsx", "out.csv", modTime, types.ConversionDone))
			},
			query: modTime,
			want:  true,
		},
		{
			name:  "source modified since",
			setup: func(t *testing.T) {},
			query: modTime.Add(time.Minute),
			want:  false,
		},
		{
			name: "failed record never counts as unchanged",
			setup: func(t *testing.T) {
				require.NoError(t, s.Record("in.xlsx", "out.csv", modTime, types.ConversionFailed))
			},
			query: modTime,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			got, err := s.Unchanged("in.xlsx", tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordUpserts(t *testing.T) {
	s, _ := openStore(t)
	modTime := time.Now()

	require.NoError(t, s.Record("in.xlsx", "out.csv", modTime, types.ConversionFailed))
	require.NoError(t, s.Record("in.xlsx", "out.csv", modTime, types.ConversionDone))

	entries, err := s.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, types.ConversionDone, entries[0].Status)
}

func TestEntriesOrdered(t *testing.T) {
	s, _ := openStore(t)
	now := time.Now()

	require.NoError(t, s.Record("b.xlsx", "b.csv", now, types.ConversionDone))
	require.NoError(t, s.Record("a.xlsx", "a.csv", now, types.ConversionDone))

	entries, err := s.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.xlsx", entries[0].InputPath)
	assert.Equal(t, "b.xlsx", entries[1].InputPath)
	assert.Equal(t, "a.csv", entries[0].OutputPath)
	assert.NotEmpty(t, entries[0].RecordedAt)
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	modTime := time.Now()
	require.NoError(t, s.Record("in.xlsx", "out.csv", modTime, types.ConversionDone))
	require.NoError(t, s.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	unchanged, err := s2.Unchanged("in.xlsx", modTime)
	require.NoError(t, err)
	assert.True(t, unchanged)
}
