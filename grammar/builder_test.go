package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammar_ErrorProducesSyntaxError(t *testing.T) {
	g := New().Re(".*").Error("unexpected input")

	p := sinkGrammar(t, g)
	err := p.Feed("anything")
	require.Error(t, err)

	var syn *SyntaxError
	require.ErrorAs(t, err, &syn)
	assert.Equal(t, "anything", syn.Input)
	assert.ErrorIs(t, err, ErrSyntaxError)
}

func TestGrammar_Append(t *testing.T) {
	var trace []string

	first := New().Re("a").Thunk(func() error { trace = append(trace, "a"); return nil })
	second := New().Re("b").Thunk(func() error { trace = append(trace, "b"); return nil })

	g := first.Append(second)

	p := sinkGrammar(t, g)
	require.NoError(t, p.Feed("ab"))

	assert.Equal(t, []string{"a", "b"}, trace)
}

func TestGrammar_BadPatternIsSticky(t *testing.T) {
	g := New().Re("(unclosed").Label("never reached")

	p := NewParser()
	err := p.Sink(g)
	require.Error(t, err)

	var badPattern *BadPatternError
	assert.ErrorAs(t, err, &badPattern)
}

func TestGrammar_ReusingConsumedCaseIsRejected(t *testing.T) {
	reused := New().Re("a").Thunk(func() error { return nil })

	outer := New().Branch(reused, New().Re("b").Thunk(func() error { return nil }))
	_ = outer

	// reused's tree has been absorbed; using it again as a second branch
	// case must surface as a build error rather than silently reusing (and
	// corrupting) rule nodes already owned by the first branch.
	another := New().Branch(reused)
	p := NewParser()
	err := p.Sink(another)
	require.Error(t, err)
}

func TestGrammar_If(t *testing.T) {
	takeBranch := true
	var trace []string

	g := New().
		If(func() bool { return takeBranch },
			New().Thunk(func() error { trace = append(trace, "yes"); return nil })).
		Thunk(func() error { trace = append(trace, "fallthrough"); return nil })

	p := sinkGrammar(t, g)
	require.NoError(t, p.Feed(""))

	assert.Equal(t, []string{"yes"}, trace)
}
