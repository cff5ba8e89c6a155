package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"rustl/internal/errors"
	"rustl/internal/parser"
)

// ConvertParseError transforms the parser's single failure into LSP
// diagnostics for IDE display. The parser stops at the first error, so the
// result always holds exactly one entry.
func ConvertParseError(err error) []protocol.Diagnostic {
	parseErr, ok := err.(*parser.ParseError)
	if !ok {
		return nil
	}

	d := errors.FromParseError(parseErr)

	span := uint32(d.Length)
	if span == 0 {
		span = 1
	}

	source := "rustl-parser"
	if parseErr.Kind == parser.LexicalError {
		source = "rustl-lexer"
	}

	message := d.Message
	if d.HelpText != "" {
		message += " (" + d.HelpText + ")"
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(d.Position.Line - 1),   // Convert to 0-based indexing
				Character: uint32(d.Position.Column - 1), // Convert to 0-based indexing
			},
			End: protocol.Position{
				Line:      uint32(d.Position.Line - 1),
				Character: uint32(d.Position.Column-1) + span,
			},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: d.Code},
		Source:   ptrString(source),
		Message:  message,
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
