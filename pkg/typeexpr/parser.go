package typeexpr

import "fmt"

// parser handles parsing of type expressions using recursive descent.
type parser struct {
	toks []token
	pos  int
}

// cur returns the current token.
func (p *parser) cur() token { return p.toks[p.pos] }

// eat consumes a token of the specified kind and returns true if successful.
func (p *parser) eat(k tokKind) bool {
	if p.cur().kind == k {
		p.pos++
		return true
	}
	return false
}

// Parse parses a string as a single type expression and returns the
// AST root. It fails on unparseable syntax and on any expression
// shape outside the identifier / dotted-chain / subscript / union
// grammar. The input is never evaluated.
func Parse(s string) (Node, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tkEOF {
		return nil, fmt.Errorf("unexpected trailing token %q", p.cur().text)
	}
	return n, nil
}

// parseUnion parses '|' unions with left associativity.
func (p *parser) parseUnion() (Node, error) {
	n, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for p.eat(tkPipe) {
		rhs, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		n = Union{Left: n, Right: rhs}
	}
	return n, nil
}

// parsePostfix parses a primary followed by any number of dotted
// qualifiers and bracket subscripts.
func (p *parser) parsePostfix() (Node, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().kind {
		case tkDot:
			p.pos++
			if p.cur().kind != tkIdent {
				return nil, fmt.Errorf("expected identifier after '.'")
			}
			seg := p.cur().text
			p.pos++
			switch v := n.(type) {
			case Name:
				n = Qualified{Chain: []string{v.Ident, seg}}
			case Qualified:
				n = Qualified{Chain: append(v.Chain, seg)}
			default:
				return nil, fmt.Errorf("cannot qualify non-identifier expression")
			}
		case tkLBrack:
			p.pos++
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if !p.eat(tkRBrack) {
				return nil, fmt.Errorf("expected ']'")
			}
			n = Subscript{Base: n, Args: args}
		default:
			return n, nil
		}
	}
}

// parseArgs parses the comma-separated argument list of a subscript.
// At least one argument is required.
func (p *parser) parseArgs() ([]Node, error) {
	var args []Node
	for {
		arg, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.eat(tkComma) {
			return args, nil
		}
	}
}

// parsePrimary parses an identifier or a literal constant.
func (p *parser) parsePrimary() (Node, error) {
	switch p.cur().kind {
	case tkIdent:
		text := p.cur().text
		p.pos++
		switch text {
		case "None", "True", "False":
			// Constant singletons render as themselves.
			return Literal{Text: text}, nil
		}
		return Name{Ident: text}, nil
	case tkString, tkNumber:
		text := p.cur().text
		p.pos++
		return Literal{Text: text}, nil
	default:
		return nil, fmt.Errorf("unexpected token %q", p.cur().text)
	}
}
