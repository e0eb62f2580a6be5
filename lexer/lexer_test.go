package lexer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-parser/domain"
)

func TestTokenize_CanonicalCommand(t *testing.T) {
	got, err := Tokenize("price 450000, down 15%, rate 7.25%, term 30")
	require.NoError(t, err)

	want := []domain.Token{
		{Type: domain.PRICE, Lexeme: "price", Position: 0},
		{Type: domain.NUMBER, Lexeme: "450000", Position: 6},
		{Type: domain.COMMA, Lexeme: ",", Position: 12},
		{Type: domain.DOWN, Lexeme: "down", Position: 14},
		{Type: domain.NUMBER, Lexeme: "15", Position: 19},
		{Type: domain.PERCENT, Lexeme: "%", Position: 21},
		{Type: domain.COMMA, Lexeme: ",", Position: 22},
		{Type: domain.RATE, Lexeme: "rate", Position: 24},
		{Type: domain.NUMBER, Lexeme: "7.25", Position: 29},
		{Type: domain.PERCENT, Lexeme: "%", Position: 33},
		{Type: domain.COMMA, Lexeme: ",", Position: 34},
		{Type: domain.TERM, Lexeme: "term", Position: 36},
		{Type: domain.NUMBER, Lexeme: "30", Position: 41},
		{Type: domain.EOF, Lexeme: "", Position: 43},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_KeywordsAreCaseInsensitive(t *testing.T) {
	got, err := Tokenize("PRICE Down rAtE tErM")
	require.NoError(t, err)

	types := make([]domain.TokenType, len(got))
	for i, tok := range got {
		types[i] = tok.Type
	}
	assert.Equal(t, []domain.TokenType{domain.PRICE, domain.DOWN, domain.RATE, domain.TERM, domain.EOF}, types)
	assert.Equal(t, "Down", got[1].Lexeme)
}

func TestTokenize_EOFPositionIncludesTrailingWhitespace(t *testing.T) {
	got, err := Tokenize("  12 \t\n")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, domain.Token{Type: domain.NUMBER, Lexeme: "12", Position: 2}, got[0])
	assert.Equal(t, domain.Token{Type: domain.EOF, Position: 7}, got[1])
}

func TestTokenize_EmptyInput(t *testing.T) {
	got, err := Tokenize("")
	require.NoError(t, err)
	assert.Equal(t, []domain.Token{{Type: domain.EOF, Position: 0}}, got)
}

func TestTokenize_KeywordBoundary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
	}{
		{"longer word", "pricey 100", 0},
		{"plural", "prices 100", 0},
		{"digit suffix", "price 1 down2", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			require.Error(t, err)

			var lexErr *domain.LexError
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.pos, lexErr.Position)
		})
	}
}

func TestTokenize_KeywordFollowedBySymbol(t *testing.T) {
	got, err := Tokenize("term,")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.TERM, got[0].Type)
	assert.Equal(t, domain.COMMA, got[1].Type)
}

func TestTokenize_UnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("price $450000")
	require.Error(t, err)

	var lexErr *domain.LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, "$", lexErr.Text)
	assert.Equal(t, 6, lexErr.Position)
	assert.Equal(t, "Unexpected character '$' at position 6.", lexErr.Error())
}

func TestTokenize_UnexpectedMultibyteCharacter(t *testing.T) {
	_, err := Tokenize("price €5")
	require.Error(t, err)

	var lexErr *domain.LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, "€", lexErr.Text)
	assert.Equal(t, 6, lexErr.Position)
}

func TestTokenize_InvalidNumberFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
	}{
		{"trailing point at end", "price 12.", 9},
		{"point before space", "price 12. down", 9},
		{"point before percent", "down 15.%", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			require.Error(t, err)

			var lexErr *domain.LexError
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.pos, lexErr.Position)
			assert.Contains(t, lexErr.Error(), "Invalid number format")
		})
	}
}

func TestTokenize_LeadingPointIsUnexpected(t *testing.T) {
	_, err := Tokenize(".5")
	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindLexical, kind)
}
