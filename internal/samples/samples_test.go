package samples

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/aoc2023/internal/days"
	"github.com/rcliao/aoc2023/internal/model"
	"github.com/rcliao/aoc2023/internal/puzzle"
)

func TestLoad_CoversEveryUnit(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)
	for _, name := range days.Registry().Names() {
		assert.NotEmpty(t, s[name], "%s has no worked example", name)
	}
}

func TestCheck_AllUnitsPass(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)
	reg := days.Registry()

	results, err := Check(reg, s, reg.Names())
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.True(t, r.OK(), r.String())
	}
}

func TestCheck_UnknownUnit(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)
	_, err = Check(days.Registry(), s, []string{"day_42"})
	assert.ErrorIs(t, err, puzzle.ErrUnknownUnit)
}

type stubUnit struct {
	answers []model.Answer
	err     error
}

func (stubUnit) Name() string  { return "stub" }
func (stubUnit) Title() string { return "stub" }
func (s stubUnit) Solve(string) ([]model.Answer, error) {
	return s.answers, s.err
}

func TestCheck_ReportsMismatches(t *testing.T) {
	set := Set{"stub": {{Input: "x", Want: map[int]uint64{1: 5, 2: 7, 3: 1}}}}
	reg := puzzle.NewRegistry(stubUnit{answers: []model.Answer{{Part: 1, Value: 5}, {Part: 2, Value: 8}}})

	results, err := Check(reg, set, []string{"stub"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.Equal(t, "FAIL stub example 1 part 2: want 7, got 8", results[1].String())
	assert.Equal(t, "no answer for this part", results[2].Err)
}

func TestCheck_SolveError(t *testing.T) {
	set := Set{"stub": {{Input: "x", Want: map[int]uint64{1: 5}}}}
	reg := puzzle.NewRegistry(stubUnit{err: errors.New("boom")})

	results, err := Check(reg, set, []string{"stub"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "boom", results[0].Err)
	assert.False(t, results[0].OK())
}

func TestParse_RejectsExampleWithoutWant(t *testing.T) {
	_, err := Parse([]byte("day_01:\n  - input: \"1\"\n"))
	assert.Error(t, err)
}

func TestSet_First(t *testing.T) {
	s := Set{"a": {{Input: "one"}, {Input: "two"}}}
	in, ok := s.First("a")
	assert.True(t, ok)
	assert.Equal(t, "one", in)
	_, ok = s.First("b")
	assert.False(t, ok)
}
