package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	parts := make([]string, len(p.Statements))
	for i, stmt := range p.Statements {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, "\n")
}

func (i *Ident) String() string {
	return i.Value
}

func (i *Import) String() string {
	return fmt.Sprintf("import %q;", i.Path)
}

func (a *Assign) String() string {
	return fmt.Sprintf("%s = %s;", a.Target.String(), a.Value.String())
}

func (a *OpAssign) String() string {
	return fmt.Sprintf("%s %s= %s;", a.Name.Value, a.Op.Symbol(), a.Value.String())
}

func (i *If) String() string {
	var result strings.Builder

	result.WriteString(fmt.Sprintf("if (%s) {\n", i.Condition.String()))
	writeBlock(&result, i.Statements)
	result.WriteString("}")

	for idx, cond := range i.ElifConditions {
		result.WriteString(fmt.Sprintf(" elif (%s) {\n", cond.String()))
		writeBlock(&result, i.ElifBlocks[idx])
		result.WriteString("}")
	}

	if i.HasElse {
		result.WriteString(" else {\n")
		writeBlock(&result, i.ElseStatements)
		result.WriteString("}")
	}

	return result.String()
}

func (w *While) String() string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("while (%s) {\n", w.Condition.String()))
	writeBlock(&result, w.Statements)
	result.WriteString("}")
	return result.String()
}

func (f *For) String() string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("for %s in %s {\n", f.Var.Value, f.Iterable.String()))
	writeBlock(&result, f.Statements)
	result.WriteString("}")
	return result.String()
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (f *Function) String() string {
	var result strings.Builder

	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Value
	}
	result.WriteString(fmt.Sprintf("fn %s(%s) {\n", f.Name.Value, strings.Join(params, ", ")))
	writeBlock(&result, f.Body)
	if f.Return != nil {
		result.WriteString(fmt.Sprintf("  return %s;\n", f.Return.String()))
	}
	result.WriteString("}")
	return result.String()
}

// writeBlock renders a statement sequence indented one level.
func writeBlock(out *strings.Builder, stmts []Statement) {
	for _, stmt := range stmts {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(stmt.String(), "\n", "\n  "))
		out.WriteByte('\n')
	}
}

func (l *IntLit) String() string {
	return fmt.Sprintf("%d", l.Value)
}

func (l *FloatLit) String() string {
	return fmt.Sprintf("%g", l.Value)
}

func (l *StringLit) String() string {
	return fmt.Sprintf("%q", l.Value)
}

func (l *BoolLit) String() string {
	if l.Value {
		return "true"
	}
	return "false"
}

func (l *CharLit) String() string {
	return fmt.Sprintf("'%c'", l.Value)
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (l *ListExpr) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range l.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		if item.Pack {
			b.WriteString("..")
		}
		b.WriteString(item.Value.String())
		if item.Spread {
			b.WriteString("..")
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (c *CallExpr) String() string {
	var b strings.Builder
	b.WriteString(c.Function.Value)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (i *IndexExpr) String() string {
	return fmt.Sprintf("%s[%s]", i.Name.Value, i.Index.String())
}

func (p *PrefixExpr) String() string {
	if p.Op == Minus {
		return fmt.Sprintf("--%s", p.Name.Value)
	}
	return fmt.Sprintf("++%s", p.Name.Value)
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.Symbol(), b.Right.String())
}

func (c *ComprehensionExpr) String() string {
	return fmt.Sprintf("[%s for %s in %s]", c.Value.String(), c.Var.Value, c.Source.String())
}
