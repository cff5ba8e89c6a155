package errors

import (
	"fmt"
	"strings"

	"rustl/internal/ast"
	"rustl/internal/parser"
)

// FromParseError converts the parser's structured failure into a renderable
// diagnostic, attaching the code and help text for its kind.
func FromParseError(err *parser.ParseError) Diagnostic {
	d := Diagnostic{
		Level: Error,
		Position: ast.Position{
			Offset: err.Position.Offset,
			Line:   err.Position.Line,
			Column: err.Position.Column,
		},
		Length: len(err.Found.Lexeme),
	}

	switch err.Kind {
	case parser.LexicalError:
		d.Code = ErrorLexical
		d.Message = err.Message

	case parser.UnexpectedToken:
		d.Code = ErrorUnexpectedToken
		d.Message = fmt.Sprintf("unexpected %s %q", err.Found.Type, err.Found.Lexeme)
		d.HelpText = "expected " + describeExpected(err.Expected)

	case parser.UnexpectedEOF:
		d.Code = ErrorUnexpectedEOF
		d.Message = "unexpected end of input"
		d.HelpText = "expected " + describeExpected(err.Expected)

	case parser.MalformedLiteral:
		d.Code = ErrorMalformedLiteral
		d.Message = fmt.Sprintf("malformed literal %q", err.Found.Lexeme)
		if err.Found.Type == parser.INT {
			d.Notes = append(d.Notes, "integer literals must fit in 32 bits")
		}

	case parser.NestingLimitExceeded:
		d.Code = ErrorNestingLimit
		d.Message = "expression nesting is too deep"
		d.Notes = append(d.Notes, "deeply nested input is rejected to bound parser recursion")
	}

	return d
}

func describeExpected(kinds []parser.TokenType) string {
	if len(kinds) == 0 {
		return "a different token"
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
