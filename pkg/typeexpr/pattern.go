package typeexpr

import "regexp"

// patternRules are the ordered substitutions applied when parsing is
// not applicable. Order matters: later rules operate on the output of
// earlier ones. The qualifier-collapsing rule only fires when the
// qualifier starts at an identifier boundary not preceded by a quote,
// so a two-segment <class 'a.B'> wrapper unwraps with its dot intact
// (a known asymmetry with the one-segment wrapper, kept on purpose).
var patternRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`typing\.`), ""},
	{regexp.MustCompile(`__main__\.`), ""},
	{regexp.MustCompile(`builtins\.`), ""},
	{regexp.MustCompile(`collections\.abc\.`), ""},
	// module.Class -> Class
	{regexp.MustCompile(`(^|[^'\w])([a-zA-Z_][a-zA-Z0-9_]*)\.([A-Z][a-zA-Z0-9_]*)`), "${1}${3}"},
	// <class 'str'> -> str
	{regexp.MustCompile(`<class '(\w+)'>`), "${1}"},
	// <class 'pkg.Widget'> -> pkg.Widget
	{regexp.MustCompile(`<class '(\w+\.\w+)'>`), "${1}"},
}

// CleanPattern applies the ordered substitution rules to the whole
// string. It is best-effort: inputs matching no rule come back
// unchanged, and it never fails on any input, including the empty
// string.
func CleanPattern(s string) string {
	for _, r := range patternRules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}
