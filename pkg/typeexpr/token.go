package typeexpr

import "fmt"

// tokKind represents the kind of token in type expressions.
type tokKind int

const (
	tkIdent tokKind = iota
	tkDot
	tkLBrack
	tkRBrack
	tkComma
	tkPipe
	tkString
	tkNumber
	tkEOF
)

// token represents a single token in a type expression.
type token struct {
	kind tokKind
	text string
}

// tokenize parses a string into a sequence of tokens.
func tokenize(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		skipWhitespace(s, &i)
		if i >= len(s) {
			break
		}
		if tok, advanced, err := scanSpecialToken(s, &i); advanced {
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			continue
		}
		if num, ok := scanNumber(s, &i); ok {
			toks = append(toks, token{kind: tkNumber, text: num})
			continue
		}
		ident, ok := scanIdent(s, &i)
		if !ok {
			return nil, fmt.Errorf("unexpected character: %q", s[i])
		}
		toks = append(toks, token{kind: tkIdent, text: ident})
	}
	toks = append(toks, token{kind: tkEOF})
	return toks, nil
}

// skipWhitespace advances the position past any whitespace characters.
func skipWhitespace(s string, i *int) {
	for *i < len(s) {
		c := s[*i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			*i++
			continue
		}
		break
	}
}

// isIdentStart returns true if the character can start an identifier.
func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isIdentChar returns true if the character can be part of an identifier.
func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// scanIdent scans an identifier from the current position.
func scanIdent(s string, i *int) (string, bool) {
	start := *i
	if !isIdentStart(s[*i]) {
		return "", false
	}
	for *i < len(s) && isIdentChar(s[*i]) {
		*i++
	}
	return s[start:*i], true
}

// scanNumber scans an integer or decimal literal from the current position.
func scanNumber(s string, i *int) (string, bool) {
	start := *i
	for *i < len(s) && s[*i] >= '0' && s[*i] <= '9' {
		*i++
	}
	if *i == start {
		return "", false
	}
	if *i < len(s) && s[*i] == '.' && *i+1 < len(s) && s[*i+1] >= '0' && s[*i+1] <= '9' {
		*i++
		for *i < len(s) && s[*i] >= '0' && s[*i] <= '9' {
			*i++
		}
	}
	return s[start:*i], true
}

// scanSpecialToken scans punctuation tokens and quoted string literals.
func scanSpecialToken(s string, i *int) (token, bool, error) {
	switch s[*i] {
	case '.':
		*i++
		return token{kind: tkDot, text: "."}, true, nil
	case '[':
		*i++
		return token{kind: tkLBrack, text: "["}, true, nil
	case ']':
		*i++
		return token{kind: tkRBrack, text: "]"}, true, nil
	case ',':
		*i++
		return token{kind: tkComma, text: ","}, true, nil
	case '|':
		*i++
		return token{kind: tkPipe, text: "|"}, true, nil
	case '\'', '"':
		lit, err := scanQuotedString(s, i)
		if err != nil {
			return token{}, true, err
		}
		return token{kind: tkString, text: lit}, true, nil
	default:
		return token{}, false, nil
	}
}

// scanQuotedString scans a quoted string literal, keeping the source
// quoting convention in the returned text.
func scanQuotedString(s string, i *int) (string, error) {
	quote := s[*i]
	start := *i
	*i++
	for *i < len(s) && s[*i] != quote {
		*i++
	}
	if *i >= len(s) {
		return "", fmt.Errorf("unterminated string literal")
	}
	*i++
	return s[start:*i], nil
}
