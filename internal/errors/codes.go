package errors

// Error codes used in diagnostics and documentation to give every failure
// a stable identity across the toolchain.
//
// Error code ranges:
// E0100-E0199: Lexer and parser errors
// E0200-E0299: Reserved for a future evaluator
// E0800-E0899: Warning codes
// E0900-E0999: Reserved for tooling errors

const (
	// E0100: Character the lexer cannot form a token from
	ErrorLexical = "E0100"

	// E0101: Token that no grammar rule accepts at its position
	ErrorUnexpectedToken = "E0101"

	// E0102: Input ended while a construct was still open
	ErrorUnexpectedEOF = "E0102"

	// E0103: Literal that lexed but does not fit its value type
	ErrorMalformedLiteral = "E0103"

	// E0104: Expression or block nesting beyond the parser's depth cap
	ErrorNestingLimit = "E0104"
)
