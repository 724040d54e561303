package rewrite

import (
	"testing"

	"github.com/vectorforge/svgcore/pathdata"
)

func mustParsePath(t *testing.T, d string) []pathdata.Command {
	t.Helper()
	cmds, err := pathdata.ParsePath(d)
	if err != nil {
		t.Fatalf("ParsePath(%q) error: %v", d, err)
	}
	return cmds
}

func letters(cmds []pathdata.Command) string {
	out := make([]byte, len(cmds))
	for i, c := range cmds {
		out[i] = letterCase(c)
	}
	return string(out)
}
