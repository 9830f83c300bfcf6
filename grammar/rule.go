package grammar

// kind tags the closed set of rule node variants. Using one struct switched
// on kind (rather than one Go type per variant behind an interface) keeps
// the set of rule kinds closed and checkable at a single switch site,
// avoids a vtable-equivalent per node, and makes the whole graph trivially
// walkable for printing/debugging.
type kind int

const (
	kindScanUntil kind = iota
	kindReduce
	kindBranch
	kindLabel
	kindGoto
	kindPutBack
	kindPutBackLiteral
	kindIf
	kindStop
	// kindOtherwise is a transient placeholder produced by OtherwiseCase. It
	// is never meant to be stepped directly: Tree.absorbCase unwraps it into
	// a nil-pattern branchCase before the graph is ever handed to a Parser.
	// Its step behaves like Label purely as a safety net.
	kindOtherwise
)

// branchCase is one (pattern, target) entry of a Branch. A nil pattern is
// an "otherwise" case: always taken if reached, and never consumes input
// itself.
type branchCase struct {
	pattern *Pattern
	target  *rule
}

// rule is a single node of the rule graph. Every node shares an optional
// default successor (the rule to fall through to); the kind-specific fields
// below are populated only for the kinds that use them.
type rule struct {
	kind kind
	def  *rule

	// ScanUntil
	pattern *Pattern

	// Reduce
	action func(*Match) error

	// Branch
	cases     []branchCase
	moreChars bool

	// Label (name), diagnostics for Goto/Stop
	name string

	// Goto: target is the resolved Label node. Stepping a Goto returns
	// target.def, not target itself, so an unresolved rebind of the
	// Label's own default (via further chain-building) is always visible.
	target *rule

	// PutBackLiteral
	literal string

	// If
	predicate  func() bool
	consequent *rule
}

// step executes one rule node against the current match state and the
// remaining input, returning the next rule to execute and whether the
// Parser should suspend and wait for more input. A non-nil error is a
// fatal failure (typically raised by a Reduce callback or a Branch that
// ran out of cases) that must propagate out of the Parser's Feed call
// without leaving current_rule advanced past this node.
func (r *rule) step(m *Match, input *string) (next *rule, needMore bool, err error) {
	switch r.kind {
	case kindScanUntil:
		return r.stepScanUntil(m, input)
	case kindReduce:
		return r.stepReduce(m, input)
	case kindBranch:
		return r.stepBranch(m, input)
	case kindLabel, kindOtherwise:
		return r.def, false, nil
	case kindGoto:
		return r.target.def, false, nil
	case kindPutBack:
		*input = m.Full() + *input
		return r.def, false, nil
	case kindPutBackLiteral:
		*input = r.literal + *input
		return r.def, false, nil
	case kindIf:
		if r.predicate() {
			return r.consequent, false, nil
		}
		return r.def, false, nil
	case kindStop:
		// Returns its default with need_more=true: the caller's Feed loop
		// suspends immediately, but current_rule has already advanced past
		// the Stop so the next Feed call resumes from whatever follows it.
		return r.def, true, nil
	default:
		panic("grammar: rule: unknown kind")
	}
}

func (r *rule) stepScanUntil(m *Match, input *string) (*rule, bool, error) {
	found, ok := r.pattern.Search(*input)
	if !ok {
		return r, true, nil
	}

	*m = found
	*input = found.Suffix()
	return r.def, false, nil
}

func (r *rule) stepReduce(m *Match, input *string) (*rule, bool, error) {
	if r.action != nil {
		if err := r.action(m); err != nil {
			return nil, false, err
		}
	}
	return r.def, false, nil
}

func (r *rule) stepBranch(m *Match, input *string) (*rule, bool, error) {
	if *input == "" {
		return r, true, nil
	}

	var (
		chosen    *branchCase
		chosenMat Match
		chosenPos = -1
		otherwise bool
		foundAny  bool
	)

	for i := range r.cases {
		c := &r.cases[i]

		if c.pattern == nil {
			chosen = c
			otherwise = true
			foundAny = true
			break
		}

		found, ok := c.pattern.Search(*input)
		if !ok {
			continue
		}

		pos := found.Position()
		if pos == 0 {
			chosen = c
			chosenMat = found
			chosenPos = 0
			otherwise = false
			foundAny = true
			break
		}

		if !foundAny || pos < chosenPos {
			chosen = c
			chosenMat = found
			chosenPos = pos
			otherwise = false
			foundAny = true
		}
	}

	if foundAny {
		if !otherwise {
			*m = chosenMat
			*input = chosenMat.Suffix()
		}
		return chosen.target, false, nil
	}

	if r.moreChars {
		return r, true, nil
	}

	if r.def != nil {
		return r.def, false, nil
	}

	return nil, false, &SyntaxError{
		Message: "no branch matched and no default is set: " + r.diagnostic(),
		Input:   *input,
	}
}

func (r *rule) diagnostic() string {
	if len(r.cases) == 0 {
		return "<empty branch>"
	}

	desc := "<branch: "
	for i, c := range r.cases {
		if i > 0 {
			desc += ", "
		}
		if c.pattern == nil {
			desc += "otherwise"
		} else {
			desc += c.pattern.Render()
		}
	}
	return desc + ">"
}
