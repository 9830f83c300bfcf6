package xmljson

import (
	"errors"
	"strconv"

	"github.com/dekarrin/rosed"
)

// ErrXmlUnbalanced is the sentinel for mismatched open/close tags.
var ErrXmlUnbalanced = errors.New("unbalanced xml tags")

// XmlUnbalancedError is returned by SemanticAction.Close when the tag being
// closed doesn't match the element currently open on the stack.
type XmlUnbalancedError struct {
	Got      string
	Expected string
	Line     int
}

func (e *XmlUnbalancedError) Error() string {
	return rosed.Edit("line " + strconv.Itoa(e.Line) + ": unbalanced open/close tags: got " +
		e.Got + ", expected " + e.Expected).Wrap(78).String()
}

func (e *XmlUnbalancedError) Is(target error) bool {
	return target == ErrXmlUnbalanced
}
