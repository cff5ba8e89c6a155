package parser

import (
	"strconv"
	"unicode/utf8"

	"rustl/internal/ast"
)

// atomStart is the set of token kinds that may begin an expression, reported
// as the expected set when no atom alternative matches.
var atomStart = []TokenType{
	INT, FLOAT, STRING, CHAR, TRUE, FALSE, IDENTIFIER, LEFT_BRACKET, INCREMENT, DECREMENT,
}

// parseExpression parses `Atom (BinOp Atom)*`. All eight binary operators
// share a single precedence level and associate left, so `a - b - c` is
// `(a - b) - c` and `*` binds no tighter than `+`.
func (p *Parser) parseExpression() (ast.Expr, error) {
	if err := p.enterNesting(p.peek()); err != nil {
		return nil, err
	}
	defer p.leaveNesting()

	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := binaryOperator(p.peek().Type)
		if !ok {
			break
		}
		p.advance()
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Left:   left,
			Op:     op,
			Right:  right,
		}
	}

	return left, nil
}

func binaryOperator(tt TokenType) (ast.Operator, bool) {
	switch tt {
	case PLUS:
		return ast.Plus, true
	case MINUS:
		return ast.Minus, true
	case STAR:
		return ast.Times, true
	case SLASH:
		return ast.Divide, true
	case LESS:
		return ast.LessThan, true
	case GREATER:
		return ast.GreaterThan, true
	case EQUAL_EQUAL:
		return ast.Equal, true
	case BANG_EQUAL:
		return ast.NotEqual, true
	default:
		return 0, false
	}
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case INT:
		p.advance()
		value, err := strconv.ParseInt(tok.Lexeme, 10, 32)
		if err != nil {
			return nil, &ParseError{Kind: MalformedLiteral, Position: tok.Position, Found: tok}
		}
		return &ast.IntLit{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Value: int32(value)}, nil

	case FLOAT:
		p.advance()
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, &ParseError{Kind: MalformedLiteral, Position: tok.Position, Found: tok}
		}
		return &ast.FloatLit{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Value: value}, nil

	case STRING:
		p.advance()
		return &ast.StringLit{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Value: tok.Lexeme}, nil

	case CHAR:
		p.advance()
		value, _ := utf8.DecodeRuneInString(tok.Lexeme)
		return &ast.CharLit{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Value: value}, nil

	case TRUE, FALSE:
		p.advance()
		return &ast.BoolLit{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Value: tok.Type == TRUE}, nil

	case INCREMENT, DECREMENT:
		return p.parsePrefix()

	case IDENTIFIER:
		return p.parseIdentifierAtom()

	case LEFT_BRACKET:
		return p.parseListOrComprehension()

	default:
		return nil, p.unexpected(atomStart...)
	}
}

// parsePrefix parses `++name` and `--name`, which stand for adding or
// subtracting the literal 1.
func (p *Parser) parsePrefix() (ast.Expr, error) {
	op := p.advance()
	name, err := p.consumeIdent()
	if err != nil {
		return nil, err
	}

	operator := ast.Plus
	if op.Type == DECREMENT {
		operator = ast.Minus
	}

	return &ast.PrefixExpr{
		Pos:    p.makePos(op),
		EndPos: name.EndPos,
		Name:   name,
		Op:     operator,
		Value:  p.literalOne(op),
	}, nil
}

// parseIdentifierAtom disambiguates `name(args)`, `name[idx]` and bare
// `name` purely by the next token; no backtracking is needed.
func (p *Parser) parseIdentifierAtom() (ast.Expr, error) {
	tok := p.advance()

	if p.match(LEFT_PAREN) {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		rparen, err := p.consume(RIGHT_PAREN)
		if err != nil {
			return nil, err
		}
		return &ast.CallExpr{
			Pos:      p.makePos(tok),
			EndPos:   p.makeEndPos(rparen),
			Function: p.makeIdent(tok),
			Args:     args,
		}, nil
	}

	if p.match(LEFT_BRACKET) {
		index, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		rbracket, err := p.consume(RIGHT_BRACKET)
		if err != nil {
			return nil, err
		}
		return &ast.IndexExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(rbracket),
			Name:   p.makeIdent(tok),
			Index:  index,
		}, nil
	}

	return &ast.IdentExpr{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Name:   tok.Lexeme,
	}, nil
}

// parseArguments parses zero or more comma-separated call arguments; a
// trailing comma is not permitted.
func (p *Parser) parseArguments() ([]ast.Expr, error) {
	var args []ast.Expr
	if p.check(RIGHT_PAREN) {
		return args, nil
	}

	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.match(COMMA) {
			break
		}
	}

	return args, nil
}

// parseListOrComprehension parses everything that begins with '['. A `for`
// after the first expression selects the comprehension form; otherwise the
// items are a list literal whose elements may carry a leading `..` (pack)
// or a trailing `..` (spread).
func (p *Parser) parseListOrComprehension() (ast.Expr, error) {
	start := p.advance()

	if p.check(RIGHT_BRACKET) {
		end := p.advance()
		return &ast.ListExpr{Pos: p.makePos(start), EndPos: p.makeEndPos(end)}, nil
	}

	var items []ast.ListItem

	if !p.check(DOT_DOT) {
		first, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if p.match(FOR) {
			loopVar, err := p.consumeIdent()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(IN); err != nil {
				return nil, err
			}
			source, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			end, err := p.consume(RIGHT_BRACKET)
			if err != nil {
				return nil, err
			}
			return &ast.ComprehensionExpr{
				Pos:    p.makePos(start),
				EndPos: p.makeEndPos(end),
				Value:  first,
				Var:    loopVar,
				Source: source,
			}, nil
		}

		items = append(items, ast.ListItem{Value: first, Spread: p.match(DOT_DOT)})
		if !p.match(COMMA) {
			end, err := p.consume(RIGHT_BRACKET)
			if err != nil {
				return nil, err
			}
			return &ast.ListExpr{Pos: p.makePos(start), EndPos: p.makeEndPos(end), Items: items}, nil
		}
	}

	for {
		pack := p.match(DOT_DOT)
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		items = append(items, ast.ListItem{Value: value, Pack: pack, Spread: p.match(DOT_DOT)})
		if !p.match(COMMA) {
			break
		}
	}

	end, err := p.consume(RIGHT_BRACKET)
	if err != nil {
		return nil, err
	}
	return &ast.ListExpr{Pos: p.makePos(start), EndPos: p.makeEndPos(end), Items: items}, nil
}
