package parser

import "rustl/internal/ast"

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) match(tt TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(tt TokenType) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.unexpected(tt)
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// unexpected builds the error for the current token, carrying the set of
// token kinds that would have been accepted in its place.
func (p *Parser) unexpected(expected ...TokenType) error {
	tok := p.peek()
	if tok.Type == EOF {
		return &ParseError{
			Kind:     UnexpectedEOF,
			Position: tok.Position,
			Expected: expected,
		}
	}
	return &ParseError{
		Kind:     UnexpectedToken,
		Position: tok.Position,
		Found:    tok,
		Expected: expected,
	}
}

func (p *Parser) enterNesting(tok Token) error {
	p.depth++
	if p.depth > maxNestingDepth {
		return &ParseError{Kind: NestingLimitExceeded, Position: tok.Position}
	}
	return nil
}

func (p *Parser) leaveNesting() {
	p.depth--
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// consumeIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) consumeIdent() (ast.Ident, error) {
	tok, err := p.consume(IDENTIFIER)
	if err != nil {
		return ast.Ident{}, err
	}
	return p.makeIdent(tok), nil
}
