package docstring

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
)

// parseStructured attempts a convention-aware parse of the docstring.
// The style tag biases which layout is tried first; auto inspects the
// text for any known convention. It fails when no recognizable
// section is present so the caller can fall back to manual recovery.
func parseStructured(doc string, style Style) (map[string]string, error) {
	for _, s := range conventionOrder(style) {
		var params map[string]string
		var err error
		switch s {
		case StyleSphinx:
			params, err = parseSphinx(doc)
		case StyleGoogle:
			params, err = parseGoogle(doc)
		case StyleNumpy:
			params, err = parseNumpy(doc)
		}
		if err == nil {
			return params, nil
		}
	}
	return nil, fmt.Errorf("no recognizable docstring section")
}

// conventionOrder rotates the explicit style to the front. Auto tries
// the most distinctive markers first.
func conventionOrder(style Style) []Style {
	switch style {
	case StyleGoogle:
		return []Style{StyleGoogle, StyleSphinx, StyleNumpy}
	case StyleNumpy:
		return []Style{StyleNumpy, StyleSphinx, StyleGoogle}
	case StyleSphinx:
		return []Style{StyleSphinx, StyleGoogle, StyleNumpy}
	default:
		return []Style{StyleSphinx, StyleGoogle, StyleNumpy}
	}
}

// :param name: desc, with an optional type token (":param str name: desc").
var sphinxParamRe = regexp.MustCompile(`^:param\s+(?:\w+\s+)?(\w+)\s*:\s*(.*)$`)

func parseSphinx(doc string) (map[string]string, error) {
	params := map[string]string{}
	found := false
	var name string
	var desc []string
	flush := func() {
		if name != "" {
			if d := strings.TrimSpace(strings.Join(desc, " ")); d != "" {
				params[name] = d
			}
		}
		name = ""
		desc = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(doc))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if m := sphinxParamRe.FindStringSubmatch(line); m != nil {
			flush()
			found = true
			name = m[1]
			desc = append(desc, m[2])
			continue
		}
		// Field descriptions run until the next :marker or a blank line.
		if line == "" || strings.HasPrefix(line, ":") {
			flush()
			continue
		}
		if name != "" {
			desc = append(desc, line)
		}
	}
	flush()

	if !found {
		return nil, fmt.Errorf("no sphinx field list")
	}
	return params, nil
}

var (
	googleHeaderRe = regexp.MustCompile(`^(Args|Arguments|Parameters):$`)
	googleEntryRe  = regexp.MustCompile(`^(\*{0,2}\w+)\s*(?:\(([^)]*)\))?\s*:\s*(.*)$`)
)

func parseGoogle(doc string) (map[string]string, error) {
	lines := strings.Split(doc, "\n")
	start := -1
	headerIndent := 0
	for i, ln := range lines {
		if googleHeaderRe.MatchString(strings.TrimSpace(ln)) {
			start = i + 1
			headerIndent = indentOf(ln)
			break
		}
	}
	if start == -1 {
		return nil, fmt.Errorf("no google-style section")
	}

	params := map[string]string{}
	var name string
	var desc []string
	entryIndent := -1
	flush := func() {
		if name != "" {
			if d := strings.TrimSpace(strings.Join(desc, " ")); d != "" {
				params[name] = d
			}
		}
		name = ""
		desc = nil
	}

	for _, ln := range lines[start:] {
		trimmed := strings.TrimSpace(ln)
		if trimmed == "" {
			flush()
			continue
		}
		ind := indentOf(ln)
		if ind <= headerIndent {
			// Dedent to the header level ends the section.
			flush()
			break
		}
		if m := googleEntryRe.FindStringSubmatch(trimmed); m != nil && (entryIndent == -1 || ind <= entryIndent) {
			flush()
			if entryIndent == -1 {
				entryIndent = ind
			}
			name = strings.TrimLeft(m[1], "*")
			desc = append(desc, m[3])
			continue
		}
		if name != "" {
			desc = append(desc, trimmed)
		}
	}
	flush()

	return params, nil
}

func parseNumpy(doc string) (map[string]string, error) {
	params, ok := scanNumpySection(doc)
	if !ok {
		return nil, fmt.Errorf("no numpy parameters section")
	}
	return params, nil
}

var (
	dashesRe     = regexp.MustCompile(`^-+$`)
	numpyEntryRe = regexp.MustCompile(`^(\w+)\s*(?::.*)?$`)
)

// scanNumpySection locates a numpy-style Parameters section (header
// line, dashed divider, then "name : type" lines with indented
// description lines) and returns its name to description mapping.
// The second return value reports whether a section was found at all.
func scanNumpySection(doc string) (map[string]string, bool) {
	lines := strings.Split(doc, "\n")
	start := -1
	for i := 0; i+1 < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "Parameters" && dashesRe.MatchString(strings.TrimSpace(lines[i+1])) {
			start = i + 2
			break
		}
	}
	if start == -1 {
		return nil, false
	}

	params := map[string]string{}
	var name string
	var desc []string
	entryIndent := -1
	flush := func() {
		if name != "" {
			if d := strings.TrimSpace(strings.Join(desc, " ")); d != "" {
				params[name] = d
			}
		}
		name = ""
		desc = nil
	}

	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			flush()
			continue
		}
		// Another underlined header ends the parameters block.
		if i+1 < len(lines) && dashesRe.MatchString(strings.TrimSpace(lines[i+1])) {
			flush()
			break
		}
		ind := indentOf(lines[i])
		if m := numpyEntryRe.FindStringSubmatch(trimmed); m != nil && (entryIndent == -1 || ind <= entryIndent) {
			flush()
			if entryIndent == -1 {
				entryIndent = ind
			}
			name = m[1]
			continue
		}
		if name != "" && ind > entryIndent {
			desc = append(desc, trimmed)
		}
	}
	flush()

	return params, true
}

// indentOf counts leading space and tab characters.
func indentOf(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}
