package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rustl/internal/parser"
)

func TestFormatDiagnostic(t *testing.T) {
	source := "x = 1;\ny = ;\nz = 3;"
	reporter := NewReporter("test.rl", source)

	_, err := parser.ParseSource("test.rl", source)
	require.Error(t, err)

	parseErr, ok := err.(*parser.ParseError)
	require.True(t, ok)

	formatted := reporter.Format(FromParseError(parseErr))

	assert.Contains(t, formatted, "error["+ErrorUnexpectedToken+"]")
	assert.Contains(t, formatted, "test.rl:2:5")
	assert.Contains(t, formatted, "y = ;", "The offending source line should be shown")
	assert.Contains(t, formatted, "^")
	assert.Contains(t, formatted, "help:")
}

func TestLexicalErrorDiagnostic(t *testing.T) {
	source := "x = @;"

	_, err := parser.ParseSource("test.rl", source)
	require.Error(t, err)

	d := FromParseError(err.(*parser.ParseError))
	assert.Equal(t, ErrorLexical, d.Code)
	assert.Equal(t, 1, d.Position.Line)
	assert.Equal(t, 5, d.Position.Column)
}

func TestMalformedLiteralDiagnostic(t *testing.T) {
	_, err := parser.ParseSource("test.rl", "x = 9999999999;")
	require.Error(t, err)

	d := FromParseError(err.(*parser.ParseError))
	assert.Equal(t, ErrorMalformedLiteral, d.Code)
	assert.Contains(t, d.Message, "9999999999")
	require.Len(t, d.Notes, 1)
	assert.Contains(t, d.Notes[0], "32 bits")
}

func TestUnexpectedEOFDiagnostic(t *testing.T) {
	_, err := parser.ParseSource("test.rl", "fn f() {")
	require.Error(t, err)

	d := FromParseError(err.(*parser.ParseError))
	assert.Equal(t, ErrorUnexpectedEOF, d.Code)
	assert.Contains(t, d.HelpText, "expected")
}

func TestMarkerLengthMatchesLexeme(t *testing.T) {
	_, err := parser.ParseSource("test.rl", "x = 1 while;")
	require.Error(t, err)

	d := FromParseError(err.(*parser.ParseError))
	assert.Equal(t, ErrorUnexpectedToken, d.Code)
	assert.Equal(t, len("while"), d.Length)
}

func TestDescribeExpected(t *testing.T) {
	assert.Equal(t, "a different token", describeExpected(nil))
	assert.Equal(t, "SEMICOLON", describeExpected([]parser.TokenType{parser.SEMICOLON}))
	assert.Equal(t, "COMMA or RIGHT_PAREN",
		describeExpected([]parser.TokenType{parser.COMMA, parser.RIGHT_PAREN}))
}
