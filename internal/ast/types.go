package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	// Special / error
	ILLEGAL NodeType = iota

	// High-level constructs
	PROGRAM
	IDENT

	// Statements
	IMPORT
	ASSIGN
	OP_ASSIGN
	IF
	WHILE
	FOR
	EXPR_STMT
	FUNCTION

	// Expressions
	INT_LIT
	FLOAT_LIT
	STRING_LIT
	BOOL_LIT
	CHAR_LIT
	IDENT_EXPR
	LIST_EXPR
	CALL_EXPR
	INDEX_EXPR
	PREFIX_EXPR
	BINARY_EXPR
	COMPREHENSION_EXPR
)
