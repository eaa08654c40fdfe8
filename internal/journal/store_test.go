// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/medvision/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seed(t *testing.T, s *Store) time.Time {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []types.JournalEntry{
		{Flow: "search", RequestID: "r1", Input: `query="asthma"`, Phase: "success", Message: "Found 3 relevant results", Count: 3, Duration: 120 * time.Millisecond, At: base},
		{Flow: "diagnose", Input: "patient=", Phase: "error", Message: "Please provide Patient ID and symptoms", At: base.Add(time.Minute)},
		{Flow: "search", RequestID: "r3", Input: `query="copd"`, Phase: "error", Message: "Search failed. Please try again.", At: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, s.Record(context.Background(), e))
	}
	return base
}

func TestRecentNewestFirst(t *testing.T) {
	s := testStore(t)
	base := seed(t, s)

	got, err := s.Recent(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "r3", got[0].RequestID)
	assert.Equal(t, "diagnose", got[1].Flow)
	assert.Equal(t, "r1", got[2].RequestID)

	assert.Equal(t, 3, got[2].Count)
	assert.Equal(t, 120*time.Millisecond, got[2].Duration)
	assert.True(t, got[2].At.Equal(base))
	assert.Empty(t, got[1].RequestID)
}

func TestRecentFilters(t *testing.T) {
	s := testStore(t)
	base := seed(t, s)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"by flow", Filter{Flow: "search"}, 2},
		{"by phase", Filter{Phase: "error"}, 2},
		{"flow and phase", Filter{Flow: "search", Phase: "success"}, 1},
		{"since", Filter{Since: base.Add(90 * time.Second)}, 1},
		{"limit", Filter{Limit: 1}, 1},
		{"no match", Filter{Flow: "treat"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Recent(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
			assert.NotNil(t, got)
		})
	}
}

func TestRecordStampsTime(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Record(context.Background(), types.JournalEntry{Flow: "status", Phase: "success"}))

	got, err := s.Recent(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.WithinDuration(t, time.Now(), got[0].At, time.Minute)
}

func TestConcurrentRecord(t *testing.T) {
	s := testStore(t)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Record(context.Background(), types.JournalEntry{Flow: "search", Phase: "success"}))
		}()
	}
	wg.Wait()

	got, err := s.Recent(context.Background(), Filter{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, got, 20)
}

func TestPurge(t *testing.T) {
	s := testStore(t)
	base := seed(t, s)

	n, err := s.Purge(context.Background(), base.Add(30*time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.Recent(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestExport(t *testing.T) {
	s := testStore(t)
	seed(t, s)
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "history.yaml")
	n, err := s.Export(context.Background(), Filter{Flow: "search"}, yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML, 2)
	assert.Equal(t, "r3", fromYAML[0]["request_id"])

	jsonPath := filepath.Join(dir, "history.json")
	_, err = s.Export(context.Background(), Filter{}, jsonPath)
	require.NoError(t, err)
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON []types.JournalEntry
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Len(t, fromJSON, 3)

	_, err = s.Export(context.Background(), Filter{}, filepath.Join(dir, "history.csv"))
	assert.ErrorContains(t, err, "unsupported export format")
}
