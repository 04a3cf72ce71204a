package journal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/aoc2023/internal/model"
)

func newTestJournal(t *testing.T) (*Journal, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "journal.db")
	j, err := Open(path)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j, path
}

func answers(values ...uint64) []model.Answer {
	out := make([]model.Answer, len(values))
	for i, v := range values {
		out[i] = model.Answer{Part: i + 1, Label: "answer", Value: v}
	}
	return out
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	j, _ := newTestJournal(t)
	run := j.NewRunID()

	entries, err := j.Record(ctx, RecordParams{RunID: run, Unit: "day_05", Input: "seeds: 1", Answers: answers(35, 46)})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Digest("seeds: 1"), entries[0].InputDigest)
	assert.NotEmpty(t, entries[0].ID)

	got, err := j.List(ctx, ListParams{Unit: "day_05"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first.
	assert.Equal(t, 2, got[0].Part)
	assert.Equal(t, uint64(46), got[0].Value)
	assert.Equal(t, run, got[0].RunID)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestRecord_LargeValuesRoundTrip(t *testing.T) {
	ctx := context.Background()
	j, _ := newTestJournal(t)

	big := ^uint64(0)
	_, err := j.Record(ctx, RecordParams{RunID: j.NewRunID(), Unit: "day_05", Answers: answers(big)})
	require.NoError(t, err)

	got, err := j.List(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, big, got[0].Value)
}

func TestRecord_RequiresRunID(t *testing.T) {
	j, _ := newTestJournal(t)
	_, err := j.Record(context.Background(), RecordParams{Unit: "day_01", Answers: answers(1)})
	assert.Error(t, err)
}

func TestList_Filters(t *testing.T) {
	ctx := context.Background()
	j, _ := newTestJournal(t)

	first := j.NewRunID()
	second := j.NewRunID()
	_, err := j.Record(ctx, RecordParams{RunID: first, Unit: "day_01", Answers: answers(1, 2)})
	require.NoError(t, err)
	_, err = j.Record(ctx, RecordParams{RunID: second, Unit: "day_02", Sample: true, Answers: answers(3)})
	require.NoError(t, err)

	all, err := j.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byRun, err := j.List(ctx, ListParams{RunID: second})
	require.NoError(t, err)
	require.Len(t, byRun, 1)
	assert.Equal(t, "day_02", byRun[0].Unit)
	assert.True(t, byRun[0].Sample)

	limited, err := j.List(ctx, ListParams{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	j, path := newTestJournal(t)

	for _, input := range []string{"a", "b"} {
		_, err := j.Record(ctx, RecordParams{RunID: j.NewRunID(), Unit: "day_06", Input: input, Answers: answers(4, 5)})
		require.NoError(t, err)
	}
	_, err := j.Record(ctx, RecordParams{RunID: j.NewRunID(), Unit: "day_01", Input: "a", Answers: answers(7)})
	require.NoError(t, err)

	st, err := j.Stats(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 5, st.Answers)
	assert.Equal(t, 3, st.Runs)
	assert.Equal(t, []UnitStats{
		{Unit: "day_01", Answers: 1, Runs: 1, Inputs: 1},
		{Unit: "day_06", Answers: 4, Runs: 2, Inputs: 2},
	}, st.Units)
}

func TestDigest(t *testing.T) {
	assert.Len(t, Digest(""), 64)
	assert.NotEqual(t, Digest("a"), Digest("b"))
}
