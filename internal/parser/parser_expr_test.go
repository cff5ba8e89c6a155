package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rustl/internal/ast"
)

func parseExprStmt(t *testing.T, source string) ast.Expr {
	t.Helper()
	program, err := ParseSource("test.rl", source)
	require.NoError(t, err, source)
	require.Len(t, program.Statements, 1)
	stmt, ok := program.Statements[0].(*ast.ExprStmt)
	require.True(t, ok, "Expected an expression statement for %q", source)
	return stmt.Expr
}

func TestLeftAssociativity(t *testing.T) {
	expr := parseExprStmt(t, "1 - 2 - 3;")

	outer, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Minus, outer.Op)

	inner, ok := outer.Left.(*ast.BinaryExpr)
	require.True(t, ok, "Left operand should hold the earlier subtraction")
	assert.Equal(t, ast.Minus, inner.Op)
	assert.Equal(t, int32(1), inner.Left.(*ast.IntLit).Value)
	assert.Equal(t, int32(2), inner.Right.(*ast.IntLit).Value)
	assert.Equal(t, int32(3), outer.Right.(*ast.IntLit).Value)
}

func TestFlatPrecedence(t *testing.T) {
	// Every operator shares one precedence tier, so multiplication does
	// not bind tighter than addition.
	expr := parseExprStmt(t, "1 + 2 * 3;")
	assert.Equal(t, "((1 + 2) * 3)", expr.String())

	expr = parseExprStmt(t, "a < b == c;")
	assert.Equal(t, "((a < b) == c)", expr.String())
}

func TestMixedOperatorChain(t *testing.T) {
	expr := parseExprStmt(t, "a + b < c != d;")

	outer, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.NotEqual, outer.Op)

	middle, ok := outer.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.LessThan, middle.Op)

	inner, ok := middle.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Plus, inner.Op)
}

func TestNegativeLiterals(t *testing.T) {
	expr := parseExprStmt(t, "-5;")
	lit, ok := expr.(*ast.IntLit)
	require.True(t, ok, "-5 should lex as one literal, not a unary expression")
	assert.Equal(t, int32(-5), lit.Value)

	// With whitespace before the digits the minus is a binary operator.
	expr = parseExprStmt(t, "1 - 2;")
	binary, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Minus, binary.Op)
}

func TestAdjacentNegativeLiteralIsRejected(t *testing.T) {
	// "1 -2" lexes as two integer literals with no operator between them.
	_, err := ParseSource("test.rl", "x = 1 -2;")
	require.Error(t, err)

	parseErr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, UnexpectedToken, parseErr.Kind)
	assert.Equal(t, INT, parseErr.Found.Type)
	assert.Equal(t, "-2", parseErr.Found.Lexeme)
}

func TestLiteralAtoms(t *testing.T) {
	assert.Equal(t, 2.5, parseExprStmt(t, "2.5;").(*ast.FloatLit).Value)
	assert.Equal(t, "hi", parseExprStmt(t, `"hi";`).(*ast.StringLit).Value)
	assert.Equal(t, 'a', parseExprStmt(t, "'a';").(*ast.CharLit).Value)
	assert.True(t, parseExprStmt(t, "true;").(*ast.BoolLit).Value)
	assert.False(t, parseExprStmt(t, "false;").(*ast.BoolLit).Value)
}

func TestCallExpression(t *testing.T) {
	expr := parseExprStmt(t, "max(a, b + 1, 3);")

	call, ok := expr.(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "max", call.Function.Value)
	require.Len(t, call.Args, 3)

	_, ok = call.Args[1].(*ast.BinaryExpr)
	assert.True(t, ok, "Arguments are full expressions")
}

func TestNestedCall(t *testing.T) {
	expr := parseExprStmt(t, "f(g(x));")

	outer, ok := expr.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, outer.Args, 1)

	inner, ok := outer.Args[0].(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "g", inner.Function.Value)
}

func TestCallWithoutArguments(t *testing.T) {
	expr := parseExprStmt(t, "tick();")

	call, ok := expr.(*ast.CallExpr)
	require.True(t, ok)
	assert.Empty(t, call.Args)
}

func TestIndexExpression(t *testing.T) {
	expr := parseExprStmt(t, "xs[i + 1];")

	index, ok := expr.(*ast.IndexExpr)
	require.True(t, ok)
	assert.Equal(t, "xs", index.Name.Value)

	_, ok = index.Index.(*ast.BinaryExpr)
	assert.True(t, ok)
}

func TestEmptyList(t *testing.T) {
	expr := parseExprStmt(t, "[];")

	list, ok := expr.(*ast.ListExpr)
	require.True(t, ok)
	assert.Empty(t, list.Items)
}

func TestListItemFlags(t *testing.T) {
	expr := parseExprStmt(t, "[..x, y, z..];")

	list, ok := expr.(*ast.ListExpr)
	require.True(t, ok)
	require.Len(t, list.Items, 3)

	assert.True(t, list.Items[0].Pack)
	assert.False(t, list.Items[0].Spread)

	assert.False(t, list.Items[1].Pack)
	assert.False(t, list.Items[1].Spread)

	assert.False(t, list.Items[2].Pack)
	assert.True(t, list.Items[2].Spread)
}

func TestSingleSpreadList(t *testing.T) {
	expr := parseExprStmt(t, "[rest..];")

	list, ok := expr.(*ast.ListExpr)
	require.True(t, ok)
	require.Len(t, list.Items, 1)
	assert.True(t, list.Items[0].Spread)
}

func TestNestedLists(t *testing.T) {
	expr := parseExprStmt(t, "[[1, 2], [3]];")

	list, ok := expr.(*ast.ListExpr)
	require.True(t, ok)
	require.Len(t, list.Items, 2)

	inner, ok := list.Items[0].Value.(*ast.ListExpr)
	require.True(t, ok)
	assert.Len(t, inner.Items, 2)
}

func TestComprehension(t *testing.T) {
	expr := parseExprStmt(t, "[x * x for x in xs];")

	comp, ok := expr.(*ast.ComprehensionExpr)
	require.True(t, ok)
	assert.Equal(t, "x", comp.Var.Value)

	_, ok = comp.Value.(*ast.BinaryExpr)
	assert.True(t, ok)

	source, ok := comp.Source.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "xs", source.Name)
}

func TestComprehensionOverCall(t *testing.T) {
	expr := parseExprStmt(t, "[f(x) for x in range(10)];")

	comp, ok := expr.(*ast.ComprehensionExpr)
	require.True(t, ok)

	_, ok = comp.Value.(*ast.CallExpr)
	assert.True(t, ok)
	_, ok = comp.Source.(*ast.CallExpr)
	assert.True(t, ok)
}

func TestPackMarkerBeforeComprehensionIsRejected(t *testing.T) {
	// A leading `..` commits to the list literal form, so `for` afterwards
	// is a syntax error.
	_, err := ParseSource("test.rl", "[..x for x in xs];")
	require.Error(t, err)

	parseErr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, UnexpectedToken, parseErr.Kind)
	assert.Equal(t, FOR, parseErr.Found.Type)
}

func TestListInsideBinaryExpression(t *testing.T) {
	expr := parseExprStmt(t, "[1] + [2];")

	binary, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Plus, binary.Op)

	_, ok = binary.Left.(*ast.ListExpr)
	assert.True(t, ok)
}
