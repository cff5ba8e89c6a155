package parser

import "rustl/internal/ast"

// maxNestingDepth caps the combined expression/block nesting depth so that
// pathological input fails with NestingLimitExceeded instead of exhausting
// the goroutine stack.
const maxNestingDepth = 512

type Parser struct {
	filename string
	tokens   []Token
	current  int
	depth    int
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{filename: filename, tokens: tokens}
}

// ParseSource tokenizes and parses one compilation unit. Lexical errors take
// precedence over syntactic ones; the returned error is always a *ParseError.
// Each call is independent, so concurrent calls on different inputs are safe.
func ParseSource(filename, source string) (*ast.Program, error) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	if errs := scanner.Errors(); len(errs) > 0 {
		first := errs[0]
		return nil, &ParseError{
			Kind:     LexicalError,
			Position: first.Position,
			Message:  first.Message,
		}
	}

	return NewParser(filename, tokens).ParseProgram()
}

// ParseProgram parses statements until the token stream is exhausted,
// propagating the first error with no partial Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{Pos: p.makePos(p.peek())}

	for !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	program.EndPos = p.makePos(p.peek())
	return program, nil
}
