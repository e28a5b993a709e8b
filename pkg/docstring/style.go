// Package docstring recovers parameter name to description mappings
// from free-text documentation comments. It understands the google,
// numpy and sphinx layouts through convention-aware parsers and falls
// back to fixed-precedence pattern recovery when none of them apply,
// so extraction never fails on any input text.
package docstring

import "fmt"

// Style identifies a docstring convention.
type Style string

const (
	StyleGoogle Style = "google"
	StyleNumpy  Style = "numpy"
	StyleSphinx Style = "sphinx"
	// StyleAuto is not a distinct parsing strategy; it lets the
	// structured parser inspect the text for any known convention.
	StyleAuto Style = "auto"
)

// ParseStyle converts a tag string into a Style. The empty string
// means auto.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleGoogle, StyleNumpy, StyleSphinx, StyleAuto:
		return Style(s), nil
	case "":
		return StyleAuto, nil
	default:
		return "", fmt.Errorf("unknown docstring style %q", s)
	}
}
