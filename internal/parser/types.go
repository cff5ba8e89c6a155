package parser

// regenerate tokentype_string.go with `go generate ./internal/parser`
//
//go:generate stringer -type=TokenType
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	INT
	FLOAT
	STRING
	CHAR

	// Keywords
	IMPORT
	FN
	IF
	ELIF
	ELSE
	WHILE
	FOR
	IN
	RETURN
	TRUE
	FALSE

	// Operators
	PLUS
	INCREMENT
	PLUS_EQUAL
	MINUS
	DECREMENT
	MINUS_EQUAL
	STAR
	STAR_EQUAL
	SLASH
	SLASH_EQUAL
	LESS
	GREATER
	EQUAL
	EQUAL_EQUAL
	BANG_EQUAL
	DOT_DOT

	// Separators
	COMMA
	SEMICOLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
