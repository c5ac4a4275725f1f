package reader

import (
	"strconv"

	"github.com/malcore/golisp/pkg/types"
)

// parser is a recursive-descent parser over the lexer's token stream,
// producing types.Value forms directly (there is no separate AST).
type parser struct {
	lex  *lexer
	peek *token
}

func newParser(src string) *parser {
	return &parser{lex: newLexer(src)}
}

func (p *parser) nextToken() (token, error) {
	if p.peek != nil {
		t := *p.peek
		p.peek = nil
		return t, nil
	}
	return p.lex.next()
}

func (p *parser) peekToken() (token, error) {
	if p.peek == nil {
		t, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.peek = &t
	}
	return *p.peek, nil
}

// Read parses a single form from src. ok is false when src contains no
// forms (only whitespace/comments), matching the reference reader's
// "blank line" behavior at the REPL.
func Read(src string) (form types.Value, ok bool, err error) {
	p := newParser(src)
	t, err := p.peekToken()
	if err != nil {
		return nil, false, err
	}
	if t.kind == tokEOF {
		return nil, false, nil
	}
	v, err := p.readForm()
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (p *parser) readForm() (types.Value, error) {
	t, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	switch t.kind {
	case tokEOF:
		return nil, types.NewParseError("unexpected end of input", t.pos)
	case tokLParen:
		return p.readSeq(tokRParen, ")")
	case tokLBracket:
		return p.readVector()
	case tokLBrace:
		return p.readMap()
	case tokRParen, tokRBracket, tokRBrace:
		return nil, types.NewParseError("unexpected '"+t.text+"'", t.pos)
	case tokQuote:
		return p.readWrapped("quote")
	case tokQuasiquote:
		return p.readWrapped("quasiquote")
	case tokUnquote:
		return p.readWrapped("unquote")
	case tokSpliceUnquote:
		return p.readWrapped("splice-unquote")
	case tokDeref:
		return p.readWrapped("deref")
	case tokAtom:
		return p.readAtom(t)
	}
	return nil, types.NewParseError("unexpected token '"+t.text+"'", t.pos)
}

func (p *parser) readWrapped(sym string) (types.Value, error) {
	inner, err := p.readForm()
	if err != nil {
		return nil, err
	}
	return types.NewList(types.SymbolValue(sym), inner), nil
}

func (p *parser) readSeq(end tokenKind, endText string) (*types.ListValue, error) {
	var items []types.Value
	for {
		t, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if t.kind == tokEOF {
			return nil, types.NewParseError("expected '"+endText+"', got end of input", t.pos)
		}
		if t.kind == end {
			p.nextToken()
			return types.NewList(items...), nil
		}
		form, err := p.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, form)
	}
}

func (p *parser) readVector() (*types.VectorValue, error) {
	list, err := p.readSeq(tokRBracket, "]")
	if err != nil {
		return nil, err
	}
	return types.NewVector(list.Items...), nil
}

func (p *parser) readMap() (*types.MapValue, error) {
	m := types.NewMap()
	for {
		t, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if t.kind == tokEOF {
			return nil, types.NewParseError("expected '}', got end of input", t.pos)
		}
		if t.kind == tokRBrace {
			p.nextToken()
			return m, nil
		}
		key, err := p.readForm()
		if err != nil {
			return nil, err
		}
		valTok, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if valTok.kind == tokRBrace || valTok.kind == tokEOF {
			return nil, types.NewParseError("map literal missing value for key "+key.String(), valTok.pos)
		}
		val, err := p.readForm()
		if err != nil {
			return nil, err
		}
		updated, err := m.Assoc(key, val)
		if err != nil {
			return nil, types.NewParseError(err.Error(), t.pos)
		}
		m = updated
	}
}

func (p *parser) readAtom(t token) (types.Value, error) {
	text := t.text
	if len(text) > 0 && text[0] == '"' {
		if len(text) < 2 || text[len(text)-1] != '"' {
			return nil, types.NewParseError("unterminated string", t.pos)
		}
		return types.StringValue(text[1 : len(text)-1]), nil
	}
	switch text {
	case "nil":
		return types.Nil{}, nil
	case "true":
		return types.BooleanValue(true), nil
	case "false":
		return types.BooleanValue(false), nil
	}
	if text[0] == ':' {
		return types.KeywordValue(text[1:]), nil
	}
	if n, err := strconv.ParseFloat(text, 64); err == nil {
		return types.NumberValue(n), nil
	}
	return types.SymbolValue(text), nil
}
