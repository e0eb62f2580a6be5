package domain

import "fmt"

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	// Keywords
	PRICE TokenType = iota
	DOWN
	RATE
	TERM

	// Literals
	NUMBER

	// Symbols
	PERCENT
	COMMA
	EOF
)

func (t TokenType) String() string {
	switch t {
	case PRICE:
		return "PRICE"
	case DOWN:
		return "DOWN"
	case RATE:
		return "RATE"
	case TERM:
		return "TERM"
	case NUMBER:
		return "NUMBER"
	case PERCENT:
		return "PERCENT"
	case COMMA:
		return "COMMA"
	case EOF:
		return "EOF"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a single lexeme from a mortgage command. Position is the
// zero-based byte offset of the lexeme in the source string.
type Token struct {
	Type     TokenType
	Lexeme   string
	Position int
}

func (t Token) String() string {
	return fmt.Sprintf("%s ('%s') at position %d", t.Type, t.Lexeme, t.Position)
}
