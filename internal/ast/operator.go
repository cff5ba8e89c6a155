package ast

// Operator enumerates the binary operators of the language. The same values
// are reused for compound assignment and prefix increment/decrement, which
// only ever carry Plus or Minus.
type Operator int

// regenerate operator_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=Operator
const (
	Plus Operator = iota
	Minus
	Times
	Divide
	LessThan
	GreaterThan
	Equal
	NotEqual
)

// Symbol returns the source-form spelling of the operator.
func (op Operator) Symbol() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Divide:
		return "/"
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	default:
		return "?"
	}
}
