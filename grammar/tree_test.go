package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_DuplicateLabel_EarlierGotoKeepsEarlierBinding(t *testing.T) {
	tr := newTree()

	g1 := tr.goTo("L")
	l1 := tr.label("L")
	g2 := tr.goTo("L")
	l2 := tr.label("L")
	g3 := tr.goTo("L")

	require.NotNil(t, g1.target)
	require.NotNil(t, g2.target)

	assert.Same(t, l1, g1.target, "a goto resolved before the second Label keeps its earlier binding")
	assert.Same(t, l1, g2.target, "a goto bound between the two Labels keeps its binding to the first")
	assert.Same(t, l2, g3.target, "a goto created after the second Label resolves to it")
	assert.Same(t, l2, tr.symbols["L"], "the symbol table reflects the most recent Label for future lookups")
}

func TestTree_AbsorbCase_ScanUntil(t *testing.T) {
	outer := newTree()
	outer.pushBranch()

	p, err := NewPattern("a", false)
	require.NoError(t, err)

	sub := newTree()
	scanRule := sub.scan(p)
	reduceRule := sub.reduce(nil)

	require.NoError(t, outer.absorbCase(sub))

	require.Len(t, outer.activeBranch.cases, 1)
	assert.Same(t, p, outer.activeBranch.cases[0].pattern)
	assert.Same(t, reduceRule, outer.activeBranch.cases[0].target)
	_ = scanRule
}

func TestTree_AbsorbCase_NestedBranchFlattens(t *testing.T) {
	outer := newTree()
	outer.pushBranch()

	inner := newTree()
	inner.pushBranch()
	pa, _ := NewPattern("a", false)
	pb, _ := NewPattern("b", false)
	inner.activeBranch.cases = append(inner.activeBranch.cases,
		branchCase{pattern: pa, target: &rule{kind: kindReduce}},
		branchCase{pattern: pb, target: &rule{kind: kindReduce}},
	)

	require.NoError(t, outer.absorbCase(inner))
	assert.Len(t, outer.activeBranch.cases, 2)
}

func TestTree_AbsorbCase_Otherwise(t *testing.T) {
	outer := newTree()
	outer.pushBranch()

	sub := newTree()
	sub.otherwise()
	target := sub.reduce(nil)

	require.NoError(t, outer.absorbCase(sub))

	require.Len(t, outer.activeBranch.cases, 1)
	assert.Nil(t, outer.activeBranch.cases[0].pattern)
	assert.Same(t, target, outer.activeBranch.cases[0].target)
}

func TestTree_AbsorbCase_RejectsBareReduce(t *testing.T) {
	outer := newTree()
	outer.pushBranch()

	sub := newTree()
	sub.reduce(nil)

	err := outer.absorbCase(sub)
	require.Error(t, err)

	var buildErr *BuildError
	assert.ErrorAs(t, err, &buildErr)
}

func TestTree_MergePendingBothDirections(t *testing.T) {
	a := newTree()
	aGoto := a.goTo("shared")
	aLabel := a.label("back")

	b := newTree()
	bLabel := b.label("shared")
	bGoto := b.goTo("back")

	a.merge(b)

	assert.Same(t, bLabel, aGoto.target)
	assert.Same(t, aLabel, bGoto.target)
	assert.True(t, a.fullyResolved())
}
