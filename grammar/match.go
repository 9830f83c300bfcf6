package grammar

// Match carries a candidate input string plus the most recent set of
// capture groups produced by scanning it. A Match is overwritten on every
// scan; a capture set it holds is valid only until the next scan on the same
// Match value, so reducers that want to retain capture text must copy it.
type Match struct {
	input string
	// loc holds the submatch index pairs as returned by
	// regexp.FindStringSubmatchIndex: loc[2*i], loc[2*i+1] are the start and
	// end byte offsets of capture group i (group 0 is the whole match). An
	// unset capture has both offsets equal to -1.
	loc []int
}

func newMatch(input string, loc []int) Match {
	return Match{input: input, loc: loc}
}

// Input returns the string the most recent scan was run against.
func (m Match) Input() string {
	return m.input
}

// Full returns the complete text of the most recent match (capture index 0).
func (m Match) Full() string {
	return m.Capture(0)
}

// Capture returns the text of the capture group at index. Index 0 is the
// whole match. Out-of-range or unset indices return the empty string rather
// than failing, per the reducer callback contract.
func (m Match) Capture(index int) string {
	start, end, ok := m.span(index)
	if !ok {
		return ""
	}
	return m.input[start:end]
}

// Position returns the byte offset at which the most recent match began.
func (m Match) Position() int {
	start, _, ok := m.span(0)
	if !ok {
		return -1
	}
	return start
}

// Suffix returns the portion of the input following the most recent match.
func (m Match) Suffix() string {
	_, end, ok := m.span(0)
	if !ok {
		return m.input
	}
	return m.input[end:]
}

// NumCaptures returns the number of capture groups in the most recent match,
// including group 0 (the whole match).
func (m Match) NumCaptures() int {
	return len(m.loc) / 2
}

// Groups returns every capture of the most recent match, in order, with
// index 0 as the whole match.
func (m Match) Groups() []string {
	n := m.NumCaptures()
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = m.Capture(i)
	}
	return out
}

func (m Match) span(index int) (start, end int, ok bool) {
	if index < 0 || 2*index+1 >= len(m.loc) {
		return 0, 0, false
	}
	start, end = m.loc[2*index], m.loc[2*index+1]
	if start < 0 || end < 0 {
		return 0, 0, false
	}
	return start, end, true
}

func (m Match) String() string {
	if m.loc == nil {
		return "<match: empty>"
	}
	return "<match: " + m.Full() + ">"
}
