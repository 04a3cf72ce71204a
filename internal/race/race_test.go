package race

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/aoc2023/internal/puzzle"
)

func TestWinningHolds(t *testing.T) {
	tests := []struct {
		race      Race
		low, high uint64
	}{
		{Race{Time: 7, Record: 9}, 2, 5},
		{Race{Time: 15, Record: 40}, 4, 11},
		{Race{Time: 30, Record: 200}, 11, 19},
		{Race{Time: 71530, Record: 940200}, 14, 71516},
	}
	for _, tt := range tests {
		low, high, ok := tt.race.WinningHolds()
		require.True(t, ok, "%+v", tt.race)
		assert.Equal(t, tt.low, low, "%+v low", tt.race)
		assert.Equal(t, tt.high, high, "%+v high", tt.race)
		assert.Equal(t, tt.high-tt.low+1, tt.race.Ways())
	}
}

func TestWinningHolds_ExcludesTies(t *testing.T) {
	// Over 10 ms the distances are 0 9 16 21 24 25 24 21 16 9 0. Holds that
	// only tie the record lose; D=20 and D=24 make Δ a perfect square.
	tests := []struct {
		race      Race
		low, high uint64
	}{
		{Race{Time: 10, Record: 16}, 3, 7},
		{Race{Time: 10, Record: 20}, 3, 7},
		{Race{Time: 10, Record: 21}, 4, 6},
		{Race{Time: 10, Record: 24}, 5, 5},
	}
	for _, tt := range tests {
		low, high, ok := tt.race.WinningHolds()
		require.True(t, ok, "%+v", tt.race)
		assert.Equal(t, tt.low, low, "%+v low", tt.race)
		assert.Equal(t, tt.high, high, "%+v high", tt.race)
		assert.False(t, tt.race.Beats(low-1), "%+v: hold %d must not win", tt.race, low-1)
		assert.False(t, tt.race.Beats(high+1), "%+v: hold %d must not win", tt.race, high+1)
	}
}

func TestWinningHolds_NoWin(t *testing.T) {
	for _, r := range []Race{{Time: 10, Record: 25}, {Time: 0, Record: 0}, {Time: 3, Record: 2}} {
		_, _, ok := r.WinningHolds()
		assert.False(t, ok, "%+v", r)
		assert.Zero(t, r.Ways(), "%+v", r)
		_, _, ok = r.WinningHoldsSearch()
		assert.False(t, ok, "%+v search", r)
	}
}

func TestWinningHolds_LargeValues(t *testing.T) {
	// T² overflows uint64.
	r := Race{Time: 1 << 40, Record: 1 << 60}
	low, high, ok := r.WinningHolds()
	require.True(t, ok)
	assert.True(t, r.Beats(low))
	assert.True(t, r.Beats(high))
	assert.False(t, r.Beats(low-1))
	assert.False(t, r.Beats(high+1))

	slow, shigh, ok := r.WinningHoldsSearch()
	require.True(t, ok)
	assert.Equal(t, low, slow)
	assert.Equal(t, high, shigh)
}

func TestWinningHolds_AgreesWithSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 2000; i++ {
		r := Race{Time: uint64(rng.Intn(500)), Record: uint64(rng.Intn(70000))}
		low, high, ok := r.WinningHolds()
		slow, shigh, sok := r.WinningHoldsSearch()
		require.Equal(t, sok, ok, "%+v", r)
		if !ok {
			continue
		}
		require.Equal(t, slow, low, "%+v", r)
		require.Equal(t, shigh, high, "%+v", r)

		var brute uint64
		for x := uint64(0); x <= r.Time; x++ {
			if r.Beats(x) {
				brute++
			}
		}
		require.Equal(t, brute, r.Ways(), "%+v", r)
	}
}

func TestParseSheet(t *testing.T) {
	races, err := ParseSheet("Time:      7  15   30\nDistance:  9  40  200\n")
	require.NoError(t, err)
	assert.Equal(t, []Race{{7, 9}, {15, 40}, {30, 200}}, races)
}

func TestParseKerned(t *testing.T) {
	r, err := ParseKerned("Time:      7  15   30\nDistance:  9  40  200\n")
	require.NoError(t, err)
	assert.Equal(t, Race{Time: 71530, Record: 940200}, r)
	assert.Equal(t, uint64(71503), r.Ways())
}

func TestParseSheet_Errors(t *testing.T) {
	for _, input := range []string{
		"",
		"Time: 7\n",
		"Time: 7 15\nDistance: 9\n",
		"Times: 7\nDistance: 9\n",
		"Time: 7\nDist: 9\n",
		"Time: x\nDistance: 9\n",
		"Time:\nDistance:\n",
	} {
		_, err := ParseSheet(input)
		require.Error(t, err, "%q", input)
		assert.True(t, errors.Is(err, puzzle.ErrParse), "%q: %v", input, err)
	}

	_, err := ParseKerned("Time:\nDistance: 9\n")
	assert.True(t, errors.Is(err, puzzle.ErrParse))
}
