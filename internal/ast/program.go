package ast

// Program represents a complete rustl source file: an ordered sequence of
// statements. It is the root of the tree and owns every node below it.
type Program struct {
	Pos        Position
	EndPos     Position
	Statements []Statement
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like variable or function names.
// Example: "total", "fib", "x"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Import represents an import statement. Only the syntactic form is modeled;
// resolving the path is the caller's concern.
// Example: `import "lib/math.rl";`
type Import struct {
	Pos    Position
	EndPos Position
	Path   string
}

// Assign represents whole-expression assignment. The target may be any
// expression, which is how indexed targets like `xs[0] = 1;` are written.
// Example: "x = y + 1;"
type Assign struct {
	Pos    Position
	EndPos Position
	Target Expr
	Value  Expr
}

// OpAssign represents compound assignment and the postfix increment and
// decrement forms, which desugar to Plus/Minus with a value of Int(1).
// Unlike Assign, the target is restricted to a bare identifier.
// Example: "x += 2;", "count++;"
type OpAssign struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Op     Operator
	Value  Expr
}

// If represents an if statement with its elif chain and optional else block.
// ElifConditions and ElifBlocks are parallel slices of equal length,
// preserving left-to-right source order.
// Example: "if (a) { 1; } elif (b) { 2; } else { 3; }"
type If struct {
	Pos            Position
	EndPos         Position
	Condition      Expr
	Statements     []Statement
	ElifConditions []Expr
	ElifBlocks     [][]Statement
	ElseStatements []Statement
	HasElse        bool
}

// While represents a while loop.
// Example: "while (i < 10) { i++; }"
type While struct {
	Pos        Position
	EndPos     Position
	Condition  Expr
	Statements []Statement
}

// For represents single-variable iteration over the value of an expression.
// Example: "for x in xs { print(x); }"
type For struct {
	Pos        Position
	EndPos     Position
	Var        Ident
	Iterable   Expr
	Statements []Statement
}

// ExprStmt represents a bare expression followed by a semicolon, used for
// calls evaluated for their side effects.
// Example: "print(x);"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// Function represents a function definition. Return is nil when the body has
// no trailing `return expr;` clause.
// Example: "fn add(a, b) { return a + b; }"
type Function struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []Ident
	Body   []Statement
	Return Expr
}

// IntLit represents an integer literal.
type IntLit struct {
	Pos    Position
	EndPos Position
	Value  int32
}

// FloatLit represents a floating point literal.
type FloatLit struct {
	Pos    Position
	EndPos Position
	Value  float64
}

// StringLit represents a string literal; Value holds the text with the
// surrounding quotes stripped.
type StringLit struct {
	Pos    Position
	EndPos Position
	Value  string
}

// BoolLit represents "true" or "false".
type BoolLit struct {
	Pos    Position
	EndPos Position
	Value  bool
}

// CharLit represents a single-character literal like 'a'.
type CharLit struct {
	Pos    Position
	EndPos Position
	Value  rune
}

// IdentExpr represents a variable reference in expression position.
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// ListItem is one element of a list literal. Pack records a leading `..`,
// Spread a trailing `..`; both are purely syntactic markers whose runtime
// meaning belongs to a downstream evaluator.
type ListItem struct {
	Value  Expr
	Pack   bool
	Spread bool
}

// ListExpr represents a list literal. An empty `[]` has zero items.
// Example: "[..head, x, rest..]"
type ListExpr struct {
	Pos    Position
	EndPos Position
	Items  []ListItem
}

// CallExpr represents a function call. The callee is always a bare
// identifier in this grammar.
// Example: "max(a, b)"
type CallExpr struct {
	Pos      Position
	EndPos   Position
	Function Ident
	Args     []Expr
}

// IndexExpr represents indexing a named variable.
// Example: "xs[i + 1]"
type IndexExpr struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Index  Expr
}

// PrefixExpr represents prefix increment/decrement. Op is always Plus or
// Minus and Value is always the literal Int(1).
// Example: "++x", "--x"
type PrefixExpr struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Op     Operator
	Value  Expr
}

// BinaryExpr represents binary application of an operator. All operators
// share one precedence level and associate left.
// Example: "a + b"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Left   Expr
	Op     Operator
	Right  Expr
}

// ComprehensionExpr represents a list comprehension
// `[ value for var in source ]`.
// Example: "[x * x for x in xs]"
type ComprehensionExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
	Var    Ident
	Source Expr
}
