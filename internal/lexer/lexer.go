// Package lexer tokenizes s-expression source text.
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rowhit/remacs/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, column := l.line, l.column

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Line: line, Column: column}
	case '(':
		l.readChar()
		return token.Token{Type: token.LPAREN, Literal: "(", Line: line, Column: column}
	case ')':
		l.readChar()
		return token.Token{Type: token.RPAREN, Literal: ")", Line: line, Column: column}
	case '[':
		l.readChar()
		return token.Token{Type: token.LBRACKET, Literal: "[", Line: line, Column: column}
	case ']':
		l.readChar()
		return token.Token{Type: token.RBRACKET, Literal: "]", Line: line, Column: column}
	case '\'':
		l.readChar()
		return token.Token{Type: token.QUOTE, Literal: "'", Line: line, Column: column}
	case '"':
		lit, ok := l.readString()
		if !ok {
			return token.Token{Type: token.ILLEGAL, Literal: lit, Line: line, Column: column}
		}
		return token.Token{Type: token.STRING, Literal: lit, Line: line, Column: column}
	case '?':
		lit, ok := l.readCharLiteral()
		if !ok {
			return token.Token{Type: token.ILLEGAL, Literal: lit, Line: line, Column: column}
		}
		return token.Token{Type: token.CHAR, Literal: lit, Line: line, Column: column}
	}

	// A lone dot separates the tail of a dotted pair; a dot followed
	// by a digit starts a float.
	if l.ch == '.' && !unicode.IsDigit(l.peekChar()) {
		l.readChar()
		return token.Token{Type: token.DOT, Literal: ".", Line: line, Column: column}
	}

	lit := l.readAtom()
	if lit == "" {
		ch := string(l.ch)
		l.readChar()
		return token.Token{Type: token.ILLEGAL, Literal: ch, Line: line, Column: column}
	}
	return token.Token{Type: classifyAtom(lit), Literal: lit, Line: line, Column: column}
}

func (l *Lexer) skipWhitespace() {
	for {
		switch {
		case l.ch == ';':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' || l.ch == '\f':
			l.readChar()
		default:
			return
		}
	}
}

func isDelimiter(ch rune) bool {
	switch ch {
	case 0, ' ', '\t', '\n', '\r', '\f', '(', ')', '[', ']', '"', ';', '\'':
		return true
	}
	return false
}

// readAtom consumes symbol and number constituents up to the next
// delimiter. A backslash escapes the following character.
func (l *Lexer) readAtom() string {
	var out strings.Builder
	for !isDelimiter(l.ch) {
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				break
			}
		}
		out.WriteRune(l.ch)
		l.readChar()
	}
	return out.String()
}

// classifyAtom distinguishes integer and float literals from symbols.
// Anything that does not parse fully as a number is a symbol, so
// names like 1+ stay symbols.
func classifyAtom(lit string) token.TokenType {
	i := 0
	if lit[i] == '+' || lit[i] == '-' {
		i++
	}
	startsNumeric := i < len(lit) &&
		(unicode.IsDigit(rune(lit[i])) ||
			(lit[i] == '.' && i+1 < len(lit) && unicode.IsDigit(rune(lit[i+1]))))
	if !startsNumeric {
		return token.SYMBOL
	}
	if _, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return token.INT
	}
	if _, err := strconv.ParseFloat(lit, 64); err == nil {
		return token.FLOAT
	}
	return token.SYMBOL
}

// readString consumes a double-quoted string with backslash escapes.
// Returns false on unterminated input.
func (l *Lexer) readString() (string, bool) {
	var out strings.Builder
	l.readChar() // opening quote
	for l.ch != '"' {
		if l.ch == 0 {
			return out.String(), false
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				return out.String(), false
			}
			out.WriteRune(escapeChar(l.ch))
			l.readChar()
			continue
		}
		out.WriteRune(l.ch)
		l.readChar()
	}
	l.readChar() // closing quote
	return out.String(), true
}

// readCharLiteral consumes ?c or ?\c and yields the character code as
// decimal text, keeping the token self-contained for the reader.
func (l *Lexer) readCharLiteral() (string, bool) {
	l.readChar() // question mark
	if l.ch == 0 {
		return "", false
	}
	ch := l.ch
	if ch == '\\' {
		l.readChar()
		if l.ch == 0 {
			return "", false
		}
		ch = escapeChar(l.ch)
	}
	l.readChar()
	return strconv.Itoa(int(ch)), true
}

func escapeChar(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'e':
		return 0x1b
	case '0':
		return 0
	case 's':
		return ' '
	default:
		return ch
	}
}
