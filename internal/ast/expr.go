package ast

type Expr interface {
	Node
	isExpr()
}

func (*IntLit) isExpr() {}

func (*FloatLit) isExpr() {}

func (*StringLit) isExpr() {}

func (*BoolLit) isExpr() {}

func (*CharLit) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*ListExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*IndexExpr) isExpr() {}

func (*PrefixExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*ComprehensionExpr) isExpr() {}
