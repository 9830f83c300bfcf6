package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_PutBackThenBranchReconsumes(t *testing.T) {
	var trace []string

	// Peek-then-handle: the first scan consumes "ab", PutBack restores it,
	// and the branch's case matches the very same text again.
	g := New().
		Re("(ab)").OnString(func(s string) error { trace = append(trace, "peek:"+s); return nil }, 1).
		PutBack().
		Branch(
			New().Re("ab").Thunk(func() error { trace = append(trace, "handle"); return nil }),
		)

	p := sinkGrammar(t, g)
	require.NoError(t, p.Feed("ab"))

	assert.Equal(t, []string{"peek:ab", "handle"}, trace)
}

func TestRule_PutBackLiteral(t *testing.T) {
	var trace []string

	g := New().
		Re("x").Ignore().
		PutBackLiteral("<").
		Branch(
			New().Re("<").Thunk(func() error { trace = append(trace, "lt"); return nil }),
		)

	p := sinkGrammar(t, g)
	require.NoError(t, p.Feed("x"))

	assert.Equal(t, []string{"lt"}, trace)
}

func TestRule_BranchEmptyInputNeedsMore(t *testing.T) {
	calls := 0

	g := New().Branch(
		New().Re("a").Thunk(func() error { calls++; return nil }),
	)

	p := sinkGrammar(t, g)

	require.NoError(t, p.Feed(""))
	assert.Equal(t, 0, calls, "a branch fed empty input must pause, not pick a case")
	assert.False(t, p.IsLeaf())

	require.NoError(t, p.Feed("a"))
	assert.Equal(t, 1, calls)
}

func TestRule_ScanUntilMissLeavesInputUnchanged(t *testing.T) {
	pat, err := NewPattern("delim", false)
	require.NoError(t, err)

	r := &rule{kind: kindScanUntil, pattern: pat}

	var m Match
	input := "no match here"
	next, needMore, stepErr := r.step(&m, &input)

	require.NoError(t, stepErr)
	assert.Same(t, r, next, "a miss re-enters the same rule on the next chunk")
	assert.True(t, needMore)
	assert.Equal(t, "no match here", input)
}

func TestRule_BranchNoMatchNoDefaultIsSyntaxError(t *testing.T) {
	pat, err := NewPattern("a", false)
	require.NoError(t, err)

	r := &rule{kind: kindBranch, cases: []branchCase{{pattern: pat}}}

	var m Match
	input := "zzz"
	_, _, stepErr := r.step(&m, &input)

	require.Error(t, stepErr)
	var syn *SyntaxError
	require.ErrorAs(t, stepErr, &syn)
	assert.Equal(t, "zzz", syn.Input)
}

func TestRule_BranchNoMatchWithMoreCharsWaits(t *testing.T) {
	pat, err := NewPattern("a", false)
	require.NoError(t, err)

	r := &rule{kind: kindBranch, moreChars: true, cases: []branchCase{{pattern: pat}}}

	var m Match
	input := "zzz"
	next, needMore, stepErr := r.step(&m, &input)

	require.NoError(t, stepErr)
	assert.Same(t, r, next)
	assert.True(t, needMore)
}

func TestRule_BranchLaterPositionConsumesThroughMatch(t *testing.T) {
	pat, err := NewPattern("b", false)
	require.NoError(t, err)

	target := &rule{kind: kindReduce}
	r := &rule{kind: kindBranch, cases: []branchCase{{pattern: pat, target: target}}}

	var m Match
	input := "aab tail"
	next, needMore, stepErr := r.step(&m, &input)

	require.NoError(t, stepErr)
	assert.Same(t, target, next)
	assert.False(t, needMore)
	assert.Equal(t, " tail", input, "a match at position > 0 consumes everything through the match")
}
