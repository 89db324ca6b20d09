// Package parser reads token streams into dynamic values. It is the
// textual front door of the evaluator: '(a . b)' pairs, 'x quoting,
// [v ...] vectors, string, integer, float and character literals.
//
// Reader failures are ordinary host errors, not conditions: the
// reader runs before any evaluator handler could exist.
package parser

import (
	"fmt"
	"strconv"

	"github.com/rowhit/remacs/internal/lexer"
	"github.com/rowhit/remacs/internal/lisp"
	"github.com/rowhit/remacs/internal/token"
)

// Interner resolves symbol names; the evaluator's obarray implements
// it.
type Interner interface {
	Intern(name string) lisp.Object
}

type Parser struct {
	l       *lexer.Lexer
	intern  Interner
	curTok  token.Token
	peekTok token.Token
}

func New(l *lexer.Lexer, intern Interner) *Parser {
	p := &Parser{l: l, intern: intern}
	// Prime curTok and peekTok.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

// ReadAll reads every form until end of input.
func (p *Parser) ReadAll() ([]lisp.Object, error) {
	var forms []lisp.Object
	for p.curTok.Type != token.EOF {
		form, err := p.Read()
		if err != nil {
			return forms, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

// Read reads one form and advances past it.
func (p *Parser) Read() (lisp.Object, error) {
	switch p.curTok.Type {
	case token.EOF:
		return nil, p.errorf("unexpected end of input")
	case token.LPAREN:
		return p.readList()
	case token.LBRACKET:
		return p.readVector()
	case token.QUOTE:
		p.nextToken()
		form, err := p.Read()
		if err != nil {
			return nil, err
		}
		return lisp.ListOf(p.intern.Intern("quote"), form), nil
	case token.STRING:
		s := lisp.NewStr(p.curTok.Literal)
		p.nextToken()
		return s, nil
	case token.INT, token.CHAR:
		n, err := strconv.ParseInt(p.curTok.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid integer literal %q", p.curTok.Literal)
		}
		p.nextToken()
		return &lisp.Integer{Value: n}, nil
	case token.FLOAT:
		f, err := strconv.ParseFloat(p.curTok.Literal, 64)
		if err != nil {
			return nil, p.errorf("invalid float literal %q", p.curTok.Literal)
		}
		p.nextToken()
		return &lisp.Float{Value: f}, nil
	case token.SYMBOL:
		sym := p.intern.Intern(p.curTok.Literal)
		p.nextToken()
		return sym, nil
	case token.RPAREN, token.RBRACKET, token.DOT:
		return nil, p.errorf("unexpected %q", p.curTok.Literal)
	default:
		return nil, p.errorf("invalid token %q", p.curTok.Literal)
	}
}

func (p *Parser) readList() (lisp.Object, error) {
	p.nextToken() // opening paren
	var elems []lisp.Object
	tail := lisp.Object(lisp.Nil)
	for {
		switch p.curTok.Type {
		case token.RPAREN:
			p.nextToken()
			list := tail
			for i := len(elems) - 1; i >= 0; i-- {
				list = lisp.NewCons(elems[i], list)
			}
			return list, nil
		case token.EOF:
			return nil, p.errorf("unterminated list")
		case token.DOT:
			if len(elems) == 0 {
				return nil, p.errorf("dotted pair with no car")
			}
			p.nextToken()
			form, err := p.Read()
			if err != nil {
				return nil, err
			}
			tail = form
			if p.curTok.Type != token.RPAREN {
				return nil, p.errorf("malformed dotted pair")
			}
		default:
			form, err := p.Read()
			if err != nil {
				return nil, err
			}
			elems = append(elems, form)
		}
	}
}

func (p *Parser) readVector() (lisp.Object, error) {
	p.nextToken() // opening bracket
	var elems []lisp.Object
	for {
		switch p.curTok.Type {
		case token.RBRACKET:
			p.nextToken()
			return &lisp.Vector{Elems: elems}, nil
		case token.EOF:
			return nil, p.errorf("unterminated vector")
		default:
			form, err := p.Read()
			if err != nil {
				return nil, err
			}
			elems = append(elems, form)
		}
	}
}

func (p *Parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%d:%d: %s", p.curTok.Line, p.curTok.Column, fmt.Sprintf(format, args...))
}
