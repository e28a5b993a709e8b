package typeexpr

import "testing"

func TestTokenize_Kinds(t *testing.T) {
	s := "Dict[str, int] | None 'lit' 3.14"
	toks, err := tokenize(s)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	var hasIdent, hasLBrack, hasRBrack, hasComma, hasPipe, hasString, hasNumber, hasEOF bool
	for _, tk := range toks {
		switch tk.kind {
		case tkIdent:
			hasIdent = true
		case tkLBrack:
			hasLBrack = true
		case tkRBrack:
			hasRBrack = true
		case tkComma:
			hasComma = true
		case tkPipe:
			hasPipe = true
		case tkString:
			if tk.text == "'lit'" {
				hasString = true
			}
		case tkNumber:
			if tk.text == "3.14" {
				hasNumber = true
			}
		case tkEOF:
			hasEOF = true
		}
	}
	if !(hasIdent && hasLBrack && hasRBrack && hasComma && hasPipe && hasString && hasNumber && hasEOF) {
		t.Fatalf("missing kinds: ident=%v [=%v ]=%v ,=%v |=%v str=%v num=%v eof=%v",
			hasIdent, hasLBrack, hasRBrack, hasComma, hasPipe, hasString, hasNumber, hasEOF)
	}
}

func TestTokenize_QuotingPreserved(t *testing.T) {
	toks, err := tokenize(`"abc" 'def'`)
	if err != nil {
		t.Fatalf("tokenize error: %v", err)
	}
	if toks[0].text != `"abc"` {
		t.Errorf("double-quoted literal: got %q", toks[0].text)
	}
	if toks[1].text != `'def'` {
		t.Errorf("single-quoted literal: got %q", toks[1].text)
	}
}

func TestTokenize_Errors(t *testing.T) {
	for _, s := range []string{"'unterminated", "a + b", "<class 'int'>", "{{{not valid"} {
		if _, err := tokenize(s); err == nil {
			t.Errorf("tokenize(%q): expected error", s)
		}
	}
}
