package lsp

import (
	"rustl/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

func collectSemanticTokens(program *ast.Program) []SemanticToken {
	var tokens []SemanticToken

	if program == nil {
		return tokens
	}

	for _, stmt := range program.Statements {
		tokens = append(tokens, walkStatement(stmt)...)
	}

	return tokens
}

func walkStatement(stmt ast.Statement) []SemanticToken {
	var tokens []SemanticToken

	if stmt == nil {
		return tokens
	}

	switch v := stmt.(type) {
	case *ast.Import:
		// The path is a string literal, already colored by the tokenizer
		return tokens
	case *ast.Assign:
		tokens = append(tokens, walkExpression(v.Target)...)
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.OpAssign:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "variable", 0)...)
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.If:
		tokens = append(tokens, walkExpression(v.Condition)...)
		tokens = append(tokens, walkBlock(v.Statements)...)
		for i, cond := range v.ElifConditions {
			tokens = append(tokens, walkExpression(cond)...)
			tokens = append(tokens, walkBlock(v.ElifBlocks[i])...)
		}
		tokens = append(tokens, walkBlock(v.ElseStatements)...)
	case *ast.While:
		tokens = append(tokens, walkExpression(v.Condition)...)
		tokens = append(tokens, walkBlock(v.Statements)...)
	case *ast.For:
		tokens = append(tokens, makeToken(v.Var.Pos, v.Var.EndPos, v.Var.Value, "variable", 1)...)
		tokens = append(tokens, walkExpression(v.Iterable)...)
		tokens = append(tokens, walkBlock(v.Statements)...)
	case *ast.ExprStmt:
		tokens = append(tokens, walkExpression(v.Expr)...)
	case *ast.Function:
		tokens = append(tokens, walkFunction(v)...)
	}

	return tokens
}

func walkFunction(f *ast.Function) []SemanticToken {
	var tokens []SemanticToken

	if f == nil {
		return tokens
	}

	tokens = append(tokens, makeToken(f.Name.Pos, f.Name.EndPos, f.Name.Value, "function", 1)...)

	for _, param := range f.Params {
		tokens = append(tokens, makeToken(param.Pos, param.EndPos, param.Value, "parameter", 1)...)
	}

	tokens = append(tokens, walkBlock(f.Body)...)

	if f.Return != nil {
		tokens = append(tokens, walkExpression(f.Return)...)
	}

	return tokens
}

func walkBlock(stmts []ast.Statement) []SemanticToken {
	var tokens []SemanticToken
	for _, stmt := range stmts {
		tokens = append(tokens, walkStatement(stmt)...)
	}
	return tokens
}

func walkExpression(expr ast.Expr) []SemanticToken {
	var tokens []SemanticToken

	if expr == nil {
		return tokens
	}

	switch v := expr.(type) {
	case *ast.IdentExpr:
		tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.Name, "variable", 0)...)
	case *ast.CallExpr:
		tokens = append(tokens, makeToken(v.Function.Pos, v.Function.EndPos, v.Function.Value, "function", 0)...)
		for _, arg := range v.Args {
			tokens = append(tokens, walkExpression(arg)...)
		}
	case *ast.IndexExpr:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "variable", 0)...)
		tokens = append(tokens, walkExpression(v.Index)...)
	case *ast.PrefixExpr:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "variable", 0)...)
	case *ast.BinaryExpr:
		tokens = append(tokens, walkExpression(v.Left)...)
		tokens = append(tokens, walkExpression(v.Right)...)
	case *ast.ListExpr:
		for _, item := range v.Items {
			tokens = append(tokens, walkExpression(item.Value)...)
		}
	case *ast.ComprehensionExpr:
		tokens = append(tokens, walkExpression(v.Value)...)
		tokens = append(tokens, makeToken(v.Var.Pos, v.Var.EndPos, v.Var.Value, "variable", 1)...)
		tokens = append(tokens, walkExpression(v.Source)...)
	}

	// Literals need no semantic tokens; the client tokenizer colors them.
	return tokens
}

// makeToken creates a semantic token for a given position and text
func makeToken(pos, endPos ast.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" {
		return nil
	}

	length := endPos.Column - pos.Column
	if length <= 0 {
		length = len(value)
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
