package grammar

// tree is the builder-internal state backing a Grammar: a chain of rules in
// the order they were added, a symbol table of resolved labels, and a
// pending table of gotos still waiting for a label that hasn't been added
// yet. Grammar is a thin façade over tree; tree carries no public API.
type tree struct {
	chain chain

	// activeBranch is the most recently opened, not-yet-closed Branch. Only
	// meaningful while absorbing cases for it.
	activeBranch *rule

	symbols map[string]*rule
	pending map[string][]*rule
}

func newTree() *tree {
	return &tree{
		symbols: make(map[string]*rule),
		pending: make(map[string][]*rule),
	}
}

func (t *tree) scan(p *Pattern) *rule {
	return t.chain.pushBack(&rule{kind: kindScanUntil, pattern: p})
}

func (t *tree) reduce(action func(*Match) error) *rule {
	return t.chain.pushBack(&rule{kind: kindReduce, action: action})
}

func (t *tree) putBack() *rule {
	return t.chain.pushBack(&rule{kind: kindPutBack})
}

func (t *tree) putBackLiteral(literal string) *rule {
	return t.chain.pushBack(&rule{kind: kindPutBackLiteral, literal: literal})
}

func (t *tree) ifRule(predicate func() bool, consequent *rule) *rule {
	return t.chain.pushBack(&rule{kind: kindIf, predicate: predicate, consequent: consequent})
}

func (t *tree) stop() *rule {
	return t.chain.pushBack(&rule{kind: kindStop})
}

func (t *tree) otherwise() *rule {
	return t.chain.pushBack(&rule{kind: kindOtherwise})
}

// pushBranch opens a new Branch node and immediately appends a "post-branch"
// label after it, so the Branch's default successor (reached when no case
// matches and it isn't waiting on more input) is always set to wherever
// building continues after the branch closes.
func (t *tree) pushBranch() *rule {
	br := t.chain.pushBack(&rule{kind: kindBranch})
	t.activeBranch = br
	t.chain.pushBack(&rule{kind: kindLabel, name: "post-branch"})
	return br
}

// absorbCase folds sub's rules into the currently open branch as one more
// case, per the composition rules: a case built from a scan contributes
// (pattern, scan's default); a case built from a nested branch contributes
// all of that branch's cases, flattened in order; a case built from
// otherwise() contributes a nil-pattern (always-taken) case. Anything else
// is rejected. sub is left empty; its symbols and pending gotos are merged
// into t.
func (t *tree) absorbCase(sub *tree) error {
	if t.activeBranch == nil {
		return &BuildError{Message: "no open branch to add a case to"}
	}

	first := sub.chain.front()
	if first == nil {
		return &BuildError{Message: "branch case is empty"}
	}

	// Whatever this case's chain ends on, redirect its fallthrough straight
	// to the branch's own post-branch label: this is what lets a nested
	// branch's tail short-circuit past its own post-branch label into the
	// outer one instead of stopping there. Done before reading first.def so
	// that a one-rule case targets the post-branch label too.
	if back := sub.chain.back(); back != nil {
		back.def = t.activeBranch.def
	}

	switch first.kind {
	case kindScanUntil:
		t.activeBranch.cases = append(t.activeBranch.cases, branchCase{pattern: first.pattern, target: first.def})
	case kindBranch:
		t.activeBranch.cases = append(t.activeBranch.cases, first.cases...)
	case kindOtherwise:
		t.activeBranch.cases = append(t.activeBranch.cases, branchCase{pattern: nil, target: first.def})
	default:
		return &BuildError{Message: "branch case must begin with a scan, a nested branch, or otherwise()"}
	}

	t.merge(sub)
	sub.chain.release()
	return nil
}

// label adds a named label at the current build position, resolving any
// gotos already pending on that name.
func (t *tree) label(name string) *rule {
	l := &rule{kind: kindLabel, name: name}
	t.chain.pushBack(l)

	if pending, ok := t.pending[name]; ok {
		for _, g := range pending {
			g.target = l
		}
		delete(t.pending, name)
	}

	t.symbols[name] = l
	return l
}

// goTo adds a goto to name, resolving immediately against an existing label
// or queuing as pending if the label hasn't been added yet.
func (t *tree) goTo(name string) *rule {
	g := &rule{kind: kindGoto, name: name}

	if l, ok := t.symbols[name]; ok {
		g.target = l
	} else {
		t.pending[name] = append(t.pending[name], g)
	}

	t.chain.pushBack(g)
	return g
}

// merge folds other's symbol and pending tables into t, resolving pending
// gotos in both directions: t's pending gotos against other's labels, and
// other's pending gotos against t's (pre-merge) labels. Whatever remains
// pending afterward is carried forward into t.pending.
func (t *tree) merge(other *tree) {
	resolveAgainst(t.pending, other.symbols)
	resolveAgainst(other.pending, t.symbols)

	for name, l := range other.symbols {
		t.symbols[name] = l
	}
	for name, gotos := range other.pending {
		t.pending[name] = append(t.pending[name], gotos...)
	}
}

func resolveAgainst(pending map[string][]*rule, symbols map[string]*rule) {
	for name, gotos := range pending {
		l, ok := symbols[name]
		if !ok {
			continue
		}
		for _, g := range gotos {
			g.target = l
		}
		delete(pending, name)
	}
}

// append concatenates other's chain onto the end of t's, after merging
// tables, for Grammar.Append.
func (t *tree) append(other *tree) {
	t.merge(other)
	t.chain.append(&other.chain)
}

func (t *tree) fullyResolved() bool {
	return len(t.pending) == 0
}

// unresolvedNames returns the names of every goto target still pending, for
// use in an UnresolvedSymbolError.
func (t *tree) unresolvedNames() []string {
	names := make([]string, 0, len(t.pending))
	for name := range t.pending {
		names = append(names, name)
	}
	return names
}

func (t *tree) empty() bool {
	return t.chain.empty()
}

func (t *tree) release() *rule {
	return t.chain.release()
}
