package parser

import (
	"fmt"
	"strings"
)

// ErrorKind classifies the single failure a parse can end with.
type ErrorKind int

const (
	// LexicalError reports a character no lexer rule matches.
	LexicalError ErrorKind = iota
	// UnexpectedToken reports a well-formed token the grammar cannot accept
	// at its position.
	UnexpectedToken
	// UnexpectedEOF reports input ending while a construct is open.
	UnexpectedEOF
	// MalformedLiteral reports literal text that fails to convert, e.g. an
	// integer too large for 32 bits.
	MalformedLiteral
	// NestingLimitExceeded reports input nested beyond the fixed depth cap.
	NestingLimitExceeded
)

// ParseError is the error value produced by ParseSource. Parsing is
// fail-fast: the first error aborts the whole parse and no partial Program
// is ever returned alongside it.
type ParseError struct {
	Kind     ErrorKind
	Position Position
	Found    Token       // offending token (UnexpectedToken, MalformedLiteral)
	Expected []TokenType // token kinds accepted at this point (UnexpectedToken, UnexpectedEOF)
	Message  string      // scanner message (LexicalError)
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case LexicalError:
		return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
	case UnexpectedToken:
		return fmt.Sprintf("%d:%d: unexpected %s %q, expected %s",
			e.Position.Line, e.Position.Column, e.Found.Type, e.Found.Lexeme, expectedList(e.Expected))
	case UnexpectedEOF:
		return fmt.Sprintf("%d:%d: unexpected end of input, expected %s",
			e.Position.Line, e.Position.Column, expectedList(e.Expected))
	case MalformedLiteral:
		return fmt.Sprintf("%d:%d: malformed %s literal %q",
			e.Position.Line, e.Position.Column, strings.ToLower(e.Found.Type.String()), e.Found.Lexeme)
	case NestingLimitExceeded:
		return fmt.Sprintf("%d:%d: nesting depth exceeds the limit of %d",
			e.Position.Line, e.Position.Column, maxNestingDepth)
	default:
		return fmt.Sprintf("%d:%d: parse error", e.Position.Line, e.Position.Column)
	}
}

func expectedList(kinds []TokenType) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	if len(names) > 1 {
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
	return strings.Join(names, "")
}
