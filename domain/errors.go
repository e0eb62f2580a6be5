package domain

import "errors"

// ErrorKind classifies failures of the mortgage pipeline.
type ErrorKind int

const (
	KindLexical ErrorKind = iota
	KindSyntax
	KindValue
)

func (k ErrorKind) String() string {
	switch k {
	case KindLexical:
		return "lexical"
	case KindSyntax:
		return "syntax"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// LexError is returned by the tokenizer for characters or number shapes it
// cannot classify.
type LexError struct {
	Message  string
	Text     string // offending character or partial lexeme
	Position int
}

func (e *LexError) Error() string   { return e.Message }
func (e *LexError) Kind() ErrorKind { return KindLexical }

// SyntaxError is returned by the parser when the token stream does not match
// the mortgage grammar.
type SyntaxError struct {
	Message  string
	Found    TokenType
	Position int
}

func (e *SyntaxError) Error() string   { return e.Message }
func (e *SyntaxError) Kind() ErrorKind { return KindSyntax }

// ValueError is returned when a grammatically valid command carries a value
// outside its allowed range.
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string   { return e.Message }
func (e *ValueError) Kind() ErrorKind { return KindValue }

// KindOf reports the pipeline error kind carried anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var kinded interface {
		error
		Kind() ErrorKind
	}
	if errors.As(err, &kinded) {
		return kinded.Kind(), true
	}
	return 0, false
}
