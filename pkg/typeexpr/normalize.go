package typeexpr

import (
	"fmt"

	"github.com/crimson206/func-analyzer/internal/fallback"
)

// Normalize returns the canonical form of a stringified type
// expression. It parses and re-renders the expression when it fits
// the grammar and falls back to the pattern cleaner otherwise, so it
// never fails: any string input produces a string result.
func Normalize(raw string) string {
	return fallback.Attempt(
		func() (string, error) {
			n, err := Parse(raw)
			if err != nil {
				return "", err
			}
			return Render(n), nil
		},
		func() string { return CleanPattern(raw) },
	)
}

// Decorate wraps an already-normalized string in color markup of the
// form <fg=COLOR>(TEXT)</>. An empty color name means no decoration.
// The markup is cosmetic and has no effect on the canonical value.
func Decorate(s, color string) string {
	if color == "" {
		return s
	}
	return fmt.Sprintf("<fg=%s>(%s)</>", color, s)
}
