package docstring

import (
	"bufio"
	"regexp"
	"strings"
)

// Stricter than the structured sphinx form: no type token allowed.
var manualParamRe = regexp.MustCompile(`^:param\s+(\w+):\s*(.*)$`)

// extractManual is the deterministic recovery path used when the
// structured parsers find nothing usable. Passes run in fixed
// precedence over the same docstring: google/sphinx :param lines
// populate the mapping first, a second :param pass (the distinct
// sphinx convention) fills only names still absent, then a
// numpy-style Parameters section fills the remaining gaps. The first
// matched convention wins per parameter name; later passes never
// overwrite. It never fails; unparseable text contributes no entries.
func extractManual(doc string) map[string]string {
	params := map[string]string{}
	collectParamFields(doc, params, true)
	collectParamFields(doc, params, false)
	numpy, _ := scanNumpySection(doc)
	for name, desc := range numpy {
		if _, ok := params[name]; !ok {
			params[name] = desc
		}
	}
	return params
}

// collectParamFields scans for ":param name: description" lines. The
// description runs until the next :marker line, a blank line, or end
// of text. With overwrite false, only names not already present are
// filled.
func collectParamFields(doc string, params map[string]string, overwrite bool) {
	var name string
	var desc []string
	flush := func() {
		if name != "" {
			d := strings.TrimSpace(strings.Join(desc, " "))
			if _, exists := params[name]; d != "" && (overwrite || !exists) {
				params[name] = d
			}
		}
		name = ""
		desc = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(doc))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if m := manualParamRe.FindStringSubmatch(line); m != nil {
			flush()
			name = m[1]
			desc = append(desc, m[2])
			continue
		}
		if line == "" || strings.HasPrefix(line, ":") {
			flush()
			continue
		}
		if name != "" {
			desc = append(desc, line)
		}
	}
	flush()
}
