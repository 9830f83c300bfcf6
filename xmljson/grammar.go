package xmljson

import (
	"github.com/nothingisbad/grammar/grammar"
)

// BuildGrammar constructs the rule graph that drives action as it scans
// XML text: a top-level grammar that tolerates a leading XML declaration
// and comments before descending into "in-tree" once the root tag opens,
// and an in-tree grammar that handles open/close/self-close tags, a
// tag-loop for scanning attributes, and comment skipping via a back-edge.
func BuildGrammar(action *SemanticAction) *grammar.Grammar {
	onOpen := func(name string) error {
		action.OnOpen(name)
		return nil
	}
	onClose := func(name string) error {
		return action.Close(name)
	}
	onContent := func(text string) error {
		action.OnContent(text)
		return nil
	}
	onAttributeName := func(name string) error {
		action.OnAttributeName(name)
		return nil
	}
	onAttributeValue := func(value string) error {
		action.OnAttributeValue(value)
		return nil
	}
	onSelfClose := func() error {
		action.OnSelfClose()
		return nil
	}
	discard := func() error { return nil }

	inTree := grammar.New().
		Label("in-tree").
		Re(`([^<]*)`).OnString(onContent, 1).
		Branch(
			// closing tag
			grammar.New().
				Re(`^\s*</\s*([^>[:space:]]*)\s*>`).OnString(onClose, 1).
				Goto("in-tree"),

			// comment inside the tree
			grammar.New().
				Re(`^\s*<!--`).Label("comment").
				Branch(
					grammar.New().Re(`.*-->`).Goto("in-tree"),
					grammar.New().Re(`.*`).Goto("comment"),
				),

			// xml declaration is only legal at the top level; listed before
			// the open tag, whose pattern would also match "<?" at position 0
			grammar.New().Re(`<\?`).Error("xml declaration must be at top-level."),

			// open tag, then loop over its attributes
			grammar.New().
				Re(`\s*<([^>/[:space:]]*)`).OnString(onOpen, 1).
				Label("tag-loop").
				Re(`^\s*`).Ignore().
				Branch(
					grammar.New().Re(`^>`).Goto("in-tree"),
					grammar.New().Re(`/>`).Thunk(onSelfClose).Goto("in-tree"),
					grammar.OtherwiseCase().
						Re(`(\s*[^>=[:space:]]*?)\s*?=`).OnString(onAttributeName, 1).
						Re(`"(.*?)"`).OnString(onAttributeValue, 1).
						Goto("tag-loop"),
				),

			grammar.OtherwiseCase().Error("don't know how to handle tag."),
		).
		Goto("in-tree")

	topLevel := grammar.New().
		Label("toplevel-rule").
		Re(`[^<]*`).Thunk(discard).
		Branch(
			// ignore a single-line xml declaration
			grammar.New().Re(`<\?.*\?>`).Goto("toplevel-rule"),

			// comment before the root element opens
			grammar.New().
				Re(`^\s*<!--`).Label("toplevel-comment").
				Branch(
					grammar.New().Re(`.*-->`).Goto("toplevel-rule"),
					grammar.New().Re(`.*`).Goto("toplevel-comment"),
				),

			grammar.New().Re(`^\s*</`).Error("close tag with no open tags"),

			// must be the root tag: descend into the tree
			grammar.OtherwiseCase().Re(`^\s*`).Goto("in-tree"),
		).
		Append(inTree)

	return topLevel
}
