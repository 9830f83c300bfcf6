package xmljson

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/nothingisbad/grammar/grammar"
)

// ErrNoRootElement is returned by Translate when the input never produced
// a closed root element (empty input, or input that never got past the
// top-level rules).
var ErrNoRootElement = errors.New("xmljson: no root element found")

// Translate reads XML from r one line at a time, feeding each line plus
// its trailing newline to a fresh grammar.Parser built from BuildGrammar,
// and returns the resulting document as JSON. logger, if non-nil,
// receives one line per input line fed to the parser; pass nil to parse
// silently.
func Translate(r io.Reader, logger *log.Logger) ([]byte, error) {
	action := NewSemanticAction()
	parser := grammar.NewParser()
	if err := parser.Sink(BuildGrammar(action)); err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := action.Line()

		if err := parser.Feed(scanner.Text() + "\n"); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		action.LineEnd()

		if logger != nil {
			logger.Printf("xmljson: parsed line %d", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	root := action.Result()
	if root == nil {
		return nil, fmt.Errorf("line %d: %w", action.Line(), ErrNoRootElement)
	}

	return EmitJSON(root)
}
