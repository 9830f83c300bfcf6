// Package grammar implements a small, general-purpose grammar engine: a
// builder for describing regular-expression-driven, branching, labelled rule
// graphs, and an interpreter that executes them as a streaming trampoline
// over a character stream fed one chunk at a time.
//
// A caller builds a graph with the Grammar façade, sinks it into a Parser,
// and then repeatedly calls Parser.Feed with successive chunks of input. The
// Parser pauses ("needs more input") at well-defined suspension points and
// resumes exactly where it left off on the next Feed call, which is what
// lets the same grammar consume a file a line at a time.
package grammar
