package docstring

import (
	"strings"

	"github.com/crimson206/func-analyzer/internal/fallback"
)

// Extract returns a mapping from parameter name to trimmed
// description recovered from the docstring. An empty or absent
// docstring yields an empty mapping. The convention-aware parse runs
// first; any failure there is absorbed by the manual recovery path,
// so Extract never fails. The result is built fresh per call and
// safe for concurrent use.
func Extract(doc string, style Style) map[string]string {
	if strings.TrimSpace(doc) == "" {
		return map[string]string{}
	}
	return fallback.Attempt(
		func() (map[string]string, error) { return parseStructured(doc, style) },
		func() map[string]string { return extractManual(doc) },
	)
}
