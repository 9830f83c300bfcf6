package xmljson

// SemanticAction maintains the stack of currently-open Elements while a
// grammar.Parser walks the XML grammar BuildGrammar constructs, and
// assembles the finished tree as tags close. The methods here are the
// reducer callbacks wired into that grammar.
type SemanticAction struct {
	stack     []*Element
	result    *Element
	lineCount int
}

// NewSemanticAction returns a SemanticAction ready to receive callbacks
// starting at line 1.
func NewSemanticAction() *SemanticAction {
	return &SemanticAction{lineCount: 1}
}

func (a *SemanticAction) top() *Element {
	return a.stack[len(a.stack)-1]
}

// OnOpen pushes a new Element for an opening tag.
func (a *SemanticAction) OnOpen(name string) {
	a.stack = append(a.stack, newElement(a.lineCount, name))
}

// Close pops the top Element, checking it matches name, and either records
// it as the final Result (if the stack is now empty) or attaches it as a
// child of whatever element is now on top.
func (a *SemanticAction) Close(name string) error {
	top := a.top()
	if top.Tag != name {
		return &XmlUnbalancedError{Got: name, Expected: top.Tag, Line: a.lineCount}
	}

	a.stack = a.stack[:len(a.stack)-1]
	a.finish(top)
	return nil
}

// OnSelfClose pops the top Element without checking a closing tag name,
// for a self-closing <tag/>.
func (a *SemanticAction) OnSelfClose() {
	top := a.top()
	a.stack = a.stack[:len(a.stack)-1]
	a.finish(top)
}

func (a *SemanticAction) finish(elem *Element) {
	if len(a.stack) == 0 {
		a.result = elem
		return
	}
	a.top().pushChild(elem)
}

// OnContent appends text to the currently open element's content. It is a
// no-op before any tag has opened (matching leading whitespace/text at the
// top level, which has nowhere to attach).
func (a *SemanticAction) OnContent(text string) {
	if len(a.stack) == 0 {
		return
	}
	a.top().addContent(text)
}

// OnAttributeName records the start of a new attribute on the currently
// open element.
func (a *SemanticAction) OnAttributeName(name string) {
	a.top().pushAttribute(name)
}

// OnAttributeValue fills in the value of the most recently named
// attribute.
func (a *SemanticAction) OnAttributeValue(value string) {
	a.top().setLastAttributeValue(value)
}

// LineEnd advances the line counter used to stamp newly opened elements
// and to report the line of an XmlUnbalancedError.
func (a *SemanticAction) LineEnd() {
	a.lineCount++
}

// Line returns the current line count.
func (a *SemanticAction) Line() int {
	return a.lineCount
}

// Result returns the root Element once the outermost tag has closed. It is
// nil until then.
func (a *SemanticAction) Result() *Element {
	return a.result
}
