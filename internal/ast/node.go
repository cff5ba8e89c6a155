package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (i *Import) NodePos() Position    { return i.Pos }
func (i *Import) NodeEndPos() Position { return i.EndPos }
func (*Import) NodeType() NodeType     { return IMPORT }

func (a *Assign) NodePos() Position    { return a.Pos }
func (a *Assign) NodeEndPos() Position { return a.EndPos }
func (*Assign) NodeType() NodeType     { return ASSIGN }

func (a *OpAssign) NodePos() Position    { return a.Pos }
func (a *OpAssign) NodeEndPos() Position { return a.EndPos }
func (*OpAssign) NodeType() NodeType     { return OP_ASSIGN }

func (i *If) NodePos() Position    { return i.Pos }
func (i *If) NodeEndPos() Position { return i.EndPos }
func (*If) NodeType() NodeType     { return IF }

func (w *While) NodePos() Position    { return w.Pos }
func (w *While) NodeEndPos() Position { return w.EndPos }
func (*While) NodeType() NodeType     { return WHILE }

func (f *For) NodePos() Position    { return f.Pos }
func (f *For) NodeEndPos() Position { return f.EndPos }
func (*For) NodeType() NodeType     { return FOR }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (f *Function) NodePos() Position    { return f.Pos }
func (f *Function) NodeEndPos() Position { return f.EndPos }
func (*Function) NodeType() NodeType     { return FUNCTION }

func (l *IntLit) NodePos() Position    { return l.Pos }
func (l *IntLit) NodeEndPos() Position { return l.EndPos }
func (*IntLit) NodeType() NodeType     { return INT_LIT }

func (l *FloatLit) NodePos() Position    { return l.Pos }
func (l *FloatLit) NodeEndPos() Position { return l.EndPos }
func (*FloatLit) NodeType() NodeType     { return FLOAT_LIT }

func (l *StringLit) NodePos() Position    { return l.Pos }
func (l *StringLit) NodeEndPos() Position { return l.EndPos }
func (*StringLit) NodeType() NodeType     { return STRING_LIT }

func (l *BoolLit) NodePos() Position    { return l.Pos }
func (l *BoolLit) NodeEndPos() Position { return l.EndPos }
func (*BoolLit) NodeType() NodeType     { return BOOL_LIT }

func (l *CharLit) NodePos() Position    { return l.Pos }
func (l *CharLit) NodeEndPos() Position { return l.EndPos }
func (*CharLit) NodeType() NodeType     { return CHAR_LIT }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (l *ListExpr) NodePos() Position    { return l.Pos }
func (l *ListExpr) NodeEndPos() Position { return l.EndPos }
func (*ListExpr) NodeType() NodeType     { return LIST_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (i *IndexExpr) NodePos() Position    { return i.Pos }
func (i *IndexExpr) NodeEndPos() Position { return i.EndPos }
func (*IndexExpr) NodeType() NodeType     { return INDEX_EXPR }

func (p *PrefixExpr) NodePos() Position    { return p.Pos }
func (p *PrefixExpr) NodeEndPos() Position { return p.EndPos }
func (*PrefixExpr) NodeType() NodeType     { return PREFIX_EXPR }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (c *ComprehensionExpr) NodePos() Position    { return c.Pos }
func (c *ComprehensionExpr) NodeEndPos() Position { return c.EndPos }
func (*ComprehensionExpr) NodeType() NodeType     { return COMPREHENSION_EXPR }
