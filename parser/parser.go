// Package parser matches a token stream against the mortgage grammar:
//
//	mortgage := PRICE NUMBER [COMMA]
//	            DOWN NUMBER PERCENT [COMMA]
//	            RATE NUMBER [PERCENT] [COMMA]
//	            TERM NUMBER {COMMA} EOF
//
// The percent sign is required after the down payment and optional after the
// rate.
package parser

import (
	"fmt"
	"strconv"

	"mortgage-parser/domain"
)

type parser struct {
	tokens  []domain.Token
	current int
}

// Parse consumes tokens produced by lexer.Tokenize and returns a validated
// MortgageInput. Grammar failures are *domain.SyntaxError; range failures
// and a non-integer term are *domain.ValueError.
func Parse(tokens []domain.Token) (domain.MortgageInput, error) {
	p := &parser{tokens: tokens}
	return p.parseMortgage()
}

func (p *parser) parseMortgage() (domain.MortgageInput, error) {
	if _, err := p.consume(domain.PRICE, "Expected keyword 'price' at start."); err != nil {
		return domain.MortgageInput{}, err
	}
	price, err := p.consumeNumber("Expected home price after 'price'.")
	if err != nil {
		return domain.MortgageInput{}, err
	}
	p.match(domain.COMMA)

	if _, err := p.consume(domain.DOWN, "Expected keyword 'down' after price."); err != nil {
		return domain.MortgageInput{}, err
	}
	down, err := p.consumeNumber("Expected down payment percentage after 'down'.")
	if err != nil {
		return domain.MortgageInput{}, err
	}
	if _, err := p.consume(domain.PERCENT, "Expected '%' after down payment percentage."); err != nil {
		return domain.MortgageInput{}, err
	}
	p.match(domain.COMMA)

	if _, err := p.consume(domain.RATE, "Expected keyword 'rate' after down payment."); err != nil {
		return domain.MortgageInput{}, err
	}
	rate, err := p.consumeNumber("Expected interest rate percentage after 'rate'.")
	if err != nil {
		return domain.MortgageInput{}, err
	}
	p.match(domain.PERCENT)
	p.match(domain.COMMA)

	if _, err := p.consume(domain.TERM, "Expected keyword 'term' after interest rate."); err != nil {
		return domain.MortgageInput{}, err
	}
	term, err := p.consumeInt("Expected term in years after 'term'.")
	if err != nil {
		return domain.MortgageInput{}, err
	}

	for p.match(domain.COMMA) {
	}
	if _, err := p.consume(domain.EOF, "Expected end of input after term."); err != nil {
		return domain.MortgageInput{}, err
	}

	return domain.NewMortgageInput(price, down, rate, term)
}

func (p *parser) consumeNumber(expected string) (float64, error) {
	tok, err := p.consume(domain.NUMBER, expected)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		return 0, &domain.SyntaxError{
			Message:  fmt.Sprintf("Invalid number '%s' at position %d.", tok.Lexeme, tok.Position),
			Found:    tok.Type,
			Position: tok.Position,
		}
	}
	return value, nil
}

func (p *parser) consumeInt(expected string) (int, error) {
	tok, err := p.consume(domain.NUMBER, expected)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(tok.Lexeme, 10, 32)
	if err != nil {
		return 0, &domain.ValueError{
			Message: fmt.Sprintf("Term must be a whole number. Got '%s'.", tok.Lexeme),
		}
	}
	return int(value), nil
}

func (p *parser) consume(tokenType domain.TokenType, expected string) (domain.Token, error) {
	if p.check(tokenType) {
		return p.advance(), nil
	}
	found := p.peek()
	return domain.Token{}, &domain.SyntaxError{
		Message:  fmt.Sprintf("%s Found token %s at position %d.", expected, found.Type, found.Position),
		Found:    found.Type,
		Position: found.Position,
	}
}

func (p *parser) match(tokenType domain.TokenType) bool {
	if p.check(tokenType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType domain.TokenType) bool {
	return p.peek().Type == tokenType
}

func (p *parser) advance() domain.Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

// peek returns the current token. A stream that runs out without an EOF
// token behaves as if one followed its last token.
func (p *parser) peek() domain.Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	if len(p.tokens) == 0 {
		return domain.Token{Type: domain.EOF}
	}
	last := p.tokens[len(p.tokens)-1]
	return domain.Token{Type: domain.EOF, Position: last.Position + len(last.Lexeme)}
}
