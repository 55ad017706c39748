// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{
		DBPath: filepath.Join(t.TempDir(), "answers.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResponse(id, query string) *types.SearchResponse {
	return &types.SearchResponse{
		Query: query,
		Answer: types.SynthesizedAnswer{
			Text:          "An answer about " + query + " [1].",
			CitationCount: 1,
			WordCount:     5,
		},
		Metadata: types.ResponseMetadata{
			RequestID:        id,
			Intent:           "general",
			Origin:           types.OriginLive,
			TotalResults:     3,
			ProcessingTimeMs: 120,
		},
	}
}

func TestRecordAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	resp := sampleResponse("req-1", "quantum computing")
	require.NoError(t, s.Record(ctx, resp))

	got, err := s.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "quantum computing", got.Query)
	assert.Equal(t, "general", got.Intent)
	assert.Equal(t, string(types.OriginLive), got.Origin)
	assert.Equal(t, resp.Answer.Text, got.Answer)
	assert.Equal(t, 3, got.TotalResults)
	assert.Equal(t, 1, got.CitationCount)
	assert.Equal(t, int64(120), got.ProcessingTimeMs)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no history entry")
}

func TestRecordDuplicateID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, sampleResponse("dup", "first")))
	assert.Error(t, s.Record(ctx, sampleResponse("dup", "second")))
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, sampleResponse(fmt.Sprintf("req-%d", i), fmt.Sprintf("query %d", i))))
	}

	entries, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	assert.Equal(t, "query 4", entries[0].Query)
	assert.Equal(t, "query 0", entries[4].Query)

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSearchText(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, sampleResponse("req-a", "espresso brewing techniques")))
	require.NoError(t, s.Record(ctx, sampleResponse("req-b", "kubernetes cluster sizing")))

	entries, err := s.SearchText(ctx, "espresso", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-a", entries[0].ID)

	none, err := s.SearchText(ctx, "volcano", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchTextMatchesAnswers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	resp := sampleResponse("req-ans", "some query")
	resp.Answer.Text = "The topminnow is a small freshwater fish [1]."
	require.NoError(t, s.Record(ctx, resp))

	entries, err := s.SearchText(ctx, "topminnow", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-ans", entries[0].ID)
}

func TestPrune(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, sampleResponse("recent", "kept")))

	// Insert an old row directly so the cutoff has something to remove.
	old := time.Now().UTC().Add(-72 * time.Hour).Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (id, query, intent, origin, answer, total_results, citation_count, word_count, processing_ms, created_at)
		 VALUES ('stale', 'old query', 'general', 'live', 'old answer', 0, 0, 2, 10, ?)`, old)
	require.NoError(t, err)

	n, err := s.Prune(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.Get(ctx, "stale")
	assert.Error(t, err)

	kept, err := s.Get(ctx, "recent")
	require.NoError(t, err)
	assert.Equal(t, "kept", kept.Query)
}

func TestNewStoreCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "answers.db")
	s, err := NewStore(types.HistoryConfig{DBPath: path})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Record(context.Background(), sampleResponse("req-x", "anything")))
}

func TestReopenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.db")

	s1, err := NewStore(types.HistoryConfig{DBPath: path})
	require.NoError(t, err)
	require.NoError(t, s1.Record(context.Background(), sampleResponse("persist", "durable query")))
	require.NoError(t, s1.Close())

	s2, err := NewStore(types.HistoryConfig{DBPath: path})
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get(context.Background(), "persist")
	require.NoError(t, err)
	assert.Equal(t, "durable query", got.Query)
}
