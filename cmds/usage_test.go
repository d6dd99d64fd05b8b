package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))

	buf := new(strings.Builder)
	executor.WriteUsage(buf)
	out := buf.String()
	for _, want := range []string{
		"-h (help, -help, --help)\tprint this usage\n",
		"foo\tFOO\n",
		"  bar\tBAR\n",
		"  baz\tBAZ\n",
		"    qux\tQUX\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}
