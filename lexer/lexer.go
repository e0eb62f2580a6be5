// Package lexer turns a normalized mortgage command into tokens.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"mortgage-parser/domain"
)

var keywords = []struct {
	word      string
	tokenType domain.TokenType
}{
	{"price", domain.PRICE},
	{"down", domain.DOWN},
	{"rate", domain.RATE},
	{"term", domain.TERM},
}

type lexer struct {
	input string
	pos   int
}

// Tokenize scans input left to right and returns every token followed by a
// single EOF token, or the first *domain.LexError encountered.
func Tokenize(input string) ([]domain.Token, error) {
	l := &lexer{input: input}
	return l.tokenize()
}

func (l *lexer) tokenize() ([]domain.Token, error) {
	var tokens []domain.Token

	for {
		l.skipWhitespace()
		if l.atEnd() {
			break
		}

		if tok, ok := l.matchKeyword(); ok {
			tokens = append(tokens, tok)
			continue
		}

		c := l.input[l.pos]
		switch {
		case isDigit(c):
			tok, err := l.lexNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case c == ',':
			tokens = append(tokens, l.symbol(domain.COMMA))
		case c == '%':
			tokens = append(tokens, l.symbol(domain.PERCENT))
		default:
			r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
			return nil, &domain.LexError{
				Message:  fmt.Sprintf("Unexpected character '%c' at position %d.", r, l.pos),
				Text:     string(r),
				Position: l.pos,
			}
		}
	}

	tokens = append(tokens, domain.Token{Type: domain.EOF, Position: l.pos})
	return tokens, nil
}

// matchKeyword consumes a case-insensitive keyword unless it is immediately
// followed by a letter or digit.
func (l *lexer) matchKeyword() (domain.Token, bool) {
	for _, kw := range keywords {
		end := l.pos + len(kw.word)
		if end > len(l.input) || !strings.EqualFold(l.input[l.pos:end], kw.word) {
			continue
		}
		if end < len(l.input) {
			next, _ := utf8.DecodeRuneInString(l.input[end:])
			if unicode.IsLetter(next) || unicode.IsDigit(next) {
				return domain.Token{}, false
			}
		}

		tok := domain.Token{Type: kw.tokenType, Lexeme: l.input[l.pos:end], Position: l.pos}
		l.pos = end
		return tok, true
	}
	return domain.Token{}, false
}

func (l *lexer) lexNumber() (domain.Token, error) {
	start := l.pos
	l.skipDigits()

	if !l.atEnd() && l.input[l.pos] == '.' {
		l.pos++
		if l.atEnd() || !isDigit(l.input[l.pos]) {
			return domain.Token{}, &domain.LexError{
				Message:  fmt.Sprintf("Invalid number format at position %d. Expected digits after decimal point.", l.pos),
				Text:     l.input[start:l.pos],
				Position: l.pos,
			}
		}
		l.skipDigits()
	}

	return domain.Token{Type: domain.NUMBER, Lexeme: l.input[start:l.pos], Position: start}, nil
}

func (l *lexer) symbol(tokenType domain.TokenType) domain.Token {
	tok := domain.Token{Type: tokenType, Lexeme: l.input[l.pos : l.pos+1], Position: l.pos}
	l.pos++
	return tok
}

func (l *lexer) skipWhitespace() {
	for !l.atEnd() {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

func (l *lexer) skipDigits() {
	for !l.atEnd() && isDigit(l.input[l.pos]) {
		l.pos++
	}
}

func (l *lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
