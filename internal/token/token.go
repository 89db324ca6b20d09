package token

type TokenType string

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	LPAREN = "("
	RPAREN = ")"
	QUOTE  = "'"
	DOT    = "."

	SYMBOL = "SYMBOL"
	INT    = "INT"
	FLOAT  = "FLOAT"
	STRING = "STRING"
	CHAR   = "CHAR"

	LBRACKET = "["
	RBRACKET = "]"
)
