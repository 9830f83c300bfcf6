package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnresolvedSymbolError_ListsNames(t *testing.T) {
	cases := []struct {
		name   string
		names  []string
		expect string
	}{
		{"one", []string{"end"}, "unresolved goto target(s): end"},
		{"two", []string{"end", "mid"}, "unresolved goto target(s): end and mid"},
		{"three", []string{"end", "mid", "top"}, "unresolved goto target(s): end, mid, and top"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := &UnresolvedSymbolError{Names: tc.names}
			assert.Equal(t, tc.expect, err.Error())

			// the error must not rearrange the caller's name list
			assert.Equal(t, tc.names, err.Names)
		})
	}
}
