package parser

import "rustl/internal/ast"

// simpleStatementFollow is the set of tokens that may legally follow the
// leading expression of a simple statement.
var simpleStatementFollow = []TokenType{
	EQUAL, PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL, SLASH_EQUAL, INCREMENT, DECREMENT, SEMICOLON,
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.peek().Type {
	case IMPORT:
		return p.parseImport()
	case IF:
		return p.parseIf()
	case WHILE:
		return p.parseWhile()
	case FOR:
		return p.parseFor()
	case FN:
		return p.parseFunction()
	default:
		return p.parseSimpleStatement()
	}
}

// parseImport parses `import "path";`. Only the syntactic form is handled;
// what happens with the path is the caller's concern.
func (p *Parser) parseImport() (ast.Statement, error) {
	start := p.advance()

	path, err := p.consume(STRING)
	if err != nil {
		return nil, err
	}
	semi, err := p.consume(SEMICOLON)
	if err != nil {
		return nil, err
	}

	return &ast.Import{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(semi),
		Path:   path.Lexeme,
	}, nil
}

// parseSimpleStatement parses the statement forms that begin with an
// expression: plain assignment, compound assignment, postfix
// increment/decrement, and bare expression statements. The form is decided
// by one-token lookahead after the leading expression.
func (p *Parser) parseSimpleStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	switch p.peek().Type {
	case EQUAL:
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		semi, err := p.consume(SEMICOLON)
		if err != nil {
			return nil, err
		}
		return &ast.Assign{
			Pos:    expr.NodePos(),
			EndPos: p.makeEndPos(semi),
			Target: expr,
			Value:  value,
		}, nil

	case PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL, SLASH_EQUAL:
		name, err := p.requireIdentTarget(expr)
		if err != nil {
			return nil, err
		}
		op := p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		semi, err := p.consume(SEMICOLON)
		if err != nil {
			return nil, err
		}
		return &ast.OpAssign{
			Pos:    expr.NodePos(),
			EndPos: p.makeEndPos(semi),
			Name:   name,
			Op:     compoundOperator(op.Type),
			Value:  value,
		}, nil

	case INCREMENT, DECREMENT:
		name, err := p.requireIdentTarget(expr)
		if err != nil {
			return nil, err
		}
		op := p.advance()
		semi, err := p.consume(SEMICOLON)
		if err != nil {
			return nil, err
		}
		// `x++;` desugars to adding the literal 1, `x--;` to subtracting it.
		return &ast.OpAssign{
			Pos:    expr.NodePos(),
			EndPos: p.makeEndPos(semi),
			Name:   name,
			Op:     compoundOperator(op.Type),
			Value:  p.literalOne(op),
		}, nil

	case SEMICOLON:
		semi := p.advance()
		return &ast.ExprStmt{
			Pos:    expr.NodePos(),
			EndPos: p.makeEndPos(semi),
			Expr:   expr,
		}, nil

	default:
		return nil, p.unexpected(simpleStatementFollow...)
	}
}

// requireIdentTarget enforces that compound-assignment and postfix
// increment/decrement targets are bare identifiers. Plain `=` targets are
// deliberately not restricted this way.
func (p *Parser) requireIdentTarget(expr ast.Expr) (ast.Ident, error) {
	ident, ok := expr.(*ast.IdentExpr)
	if !ok {
		return ast.Ident{}, p.unexpected(EQUAL, SEMICOLON)
	}
	return ast.Ident{Pos: ident.Pos, EndPos: ident.EndPos, Value: ident.Name}, nil
}

func (p *Parser) literalOne(tok Token) ast.Expr {
	return &ast.IntLit{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  1,
	}
}

func compoundOperator(tt TokenType) ast.Operator {
	switch tt {
	case PLUS_EQUAL, INCREMENT:
		return ast.Plus
	case MINUS_EQUAL, DECREMENT:
		return ast.Minus
	case STAR_EQUAL:
		return ast.Times
	default:
		return ast.Divide
	}
}

// parseIf parses an if statement with its elif chain and optional else
// block. The elif clauses are linearized into parallel condition/block
// slices preserving left-to-right source order.
func (p *Parser) parseIf() (ast.Statement, error) {
	start := p.advance()

	condition, err := p.parseParenCondition()
	if err != nil {
		return nil, err
	}
	statements, _, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elifConditions []ast.Expr
	var elifBlocks [][]ast.Statement
	for p.check(ELIF) {
		p.advance()
		cond, err := p.parseParenCondition()
		if err != nil {
			return nil, err
		}
		block, _, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elifConditions = append(elifConditions, cond)
		elifBlocks = append(elifBlocks, block)
	}

	var elseStatements []ast.Statement
	hasElse := false
	if p.match(ELSE) {
		hasElse = true
		elseStatements, _, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &ast.If{
		Pos:            p.makePos(start),
		EndPos:         p.makeEndPos(p.previous()),
		Condition:      condition,
		Statements:     statements,
		ElifConditions: elifConditions,
		ElifBlocks:     elifBlocks,
		ElseStatements: elseStatements,
		HasElse:        hasElse,
	}, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	start := p.advance()

	condition, err := p.parseParenCondition()
	if err != nil {
		return nil, err
	}
	statements, end, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.While{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Condition:  condition,
		Statements: statements,
	}, nil
}

// parseFor parses `for ident in expr { ... }`; the loop header carries no
// parentheses.
func (p *Parser) parseFor() (ast.Statement, error) {
	start := p.advance()

	loopVar, err := p.consumeIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(IN); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	statements, end, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.For{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Var:        loopVar,
		Iterable:   iterable,
		Statements: statements,
	}, nil
}

// parseFunction parses a function definition. An optional `return expr;`
// must be the last construct in the body; a function without one simply has
// no return value.
func (p *Parser) parseFunction() (ast.Statement, error) {
	start := p.advance()

	name, err := p.consumeIdent()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}

	open, err := p.consume(LEFT_BRACE)
	if err != nil {
		return nil, err
	}
	if err := p.enterNesting(open); err != nil {
		return nil, err
	}
	defer p.leaveNesting()

	var body []ast.Statement
	var returnExpr ast.Expr
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		if p.check(RETURN) {
			p.advance()
			returnExpr, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(SEMICOLON); err != nil {
				return nil, err
			}
			if !p.check(RIGHT_BRACE) {
				return nil, p.unexpected(RIGHT_BRACE)
			}
			break
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}

	end, err := p.consume(RIGHT_BRACE)
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Params: params,
		Body:   body,
		Return: returnExpr,
	}, nil
}

// parseParameterList parses zero or more comma-separated identifiers in
// parentheses; a trailing comma is not permitted.
func (p *Parser) parseParameterList() ([]ast.Ident, error) {
	if _, err := p.consume(LEFT_PAREN); err != nil {
		return nil, err
	}

	var params []ast.Ident
	if !p.check(RIGHT_PAREN) {
		for {
			param, err := p.consumeIdent()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(COMMA) {
				break
			}
		}
	}

	if _, err := p.consume(RIGHT_PAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseParenCondition() (ast.Expr, error) {
	if _, err := p.consume(LEFT_PAREN); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RIGHT_PAREN); err != nil {
		return nil, err
	}
	return condition, nil
}

// parseBlock parses a brace-delimited statement sequence and returns the
// closing brace token for end-position bookkeeping.
func (p *Parser) parseBlock() ([]ast.Statement, Token, error) {
	open, err := p.consume(LEFT_BRACE)
	if err != nil {
		return nil, Token{}, err
	}
	if err := p.enterNesting(open); err != nil {
		return nil, Token{}, err
	}
	defer p.leaveNesting()

	var statements []ast.Statement
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, Token{}, err
		}
		statements = append(statements, stmt)
	}

	end, err := p.consume(RIGHT_BRACE)
	if err != nil {
		return nil, Token{}, err
	}
	return statements, end, nil
}
