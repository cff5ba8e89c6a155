package ast

type Statement interface {
	Node
	isStatement()
}

func (*Import) isStatement() {}

func (*Assign) isStatement() {}

func (*OpAssign) isStatement() {}

func (*If) isStatement() {}

func (*While) isStatement() {}

func (*For) isStatement() {}

func (*ExprStmt) isStatement() {}

func (*Function) isStatement() {}
