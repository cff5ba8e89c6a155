package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startColumn int
	column      int
	offset      int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // how many characters it covers
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.offset}})
	return s.tokens
}

// Errors returns the lexical errors collected during ScanTokens.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case '[':
		s.addToken(LEFT_BRACKET)
	case ']':
		s.addToken(RIGHT_BRACKET)
	case ',':
		s.addToken(COMMA)
	case ';':
		s.addToken(SEMICOLON)

	// Operators with potential multi-character variants
	case '+':
		s.scanPlusOperator()
	case '-':
		s.scanMinusOperator()
	case '*':
		s.scanStarOperator()
	case '/':
		s.scanSlashOperator()
	case '=':
		s.scanEqualOperator()
	case '!':
		s.scanBangOperator()
	case '<':
		s.addToken(LESS)
	case '>':
		s.addToken(GREATER)
	case '.':
		s.scanDotOperator()

	// Whitespace (ignored)
	case ' ', '\r', '\t':
		// Ignore whitespace
	case '\n':
		// Handled in advance()

	// String and character literals
	case '"':
		s.scanString()
	case '\'':
		s.scanChar()

	default:
		s.scanDefault(c)
	}
}

/// Operator scanning methods: multi-character forms are matched greedily
// before their single-character prefixes.

func (s *Scanner) scanPlusOperator() {
	if s.matchNext('+') {
		s.addToken(INCREMENT)
	} else if s.matchNext('=') {
		s.addToken(PLUS_EQUAL)
	} else {
		s.addToken(PLUS)
	}
}

func (s *Scanner) scanMinusOperator() {
	if s.matchNext('-') {
		s.addToken(DECREMENT)
	} else if s.matchNext('=') {
		s.addToken(MINUS_EQUAL)
	} else if isDigit(s.peek()) {
		// A minus immediately followed by a digit is a negative integer
		// literal, matching the longest-match rule for `-?[0-9]+`.
		s.scanNegativeNumber()
	} else {
		s.addToken(MINUS)
	}
}

func (s *Scanner) scanStarOperator() {
	if s.matchNext('=') {
		s.addToken(STAR_EQUAL)
	} else {
		s.addToken(STAR)
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('=') {
		s.addToken(SLASH_EQUAL)
	} else if s.matchNext('/') {
		s.scanSingleLineComment()
	} else {
		s.addToken(SLASH)
	}
}

func (s *Scanner) scanEqualOperator() {
	if s.matchNext('=') {
		s.addToken(EQUAL_EQUAL)
	} else {
		s.addToken(EQUAL)
	}
}

func (s *Scanner) scanBangOperator() {
	if s.matchNext('=') {
		s.addToken(BANG_EQUAL)
	} else {
		s.reportError("Unexpected character: '!'")
	}
}

func (s *Scanner) scanDotOperator() {
	if s.matchNext('.') {
		s.addToken(DOT_DOT)
	} else {
		s.reportError("Unexpected character: '.'")
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.reportError(fmt.Sprintf("Unexpected character: %q", c))
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	s.offset++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: text,
		Position: Position{
			Line:   s.line,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.line, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]

	s.addToken(lookupIdentifier(text))
}

// scanNumber lexes a numeric literal starting with a digit. The float form
// `[0-9]+\.[0-9]+` is attempted before settling for an integer, so "3.14"
// never splits into "3", ".", "14".
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // '.'
		for isDigit(s.peek()) {
			s.advance()
		}
		s.addToken(FLOAT)
		return
	}
	s.addToken(INT)
}

// scanNegativeNumber lexes the digits after a consumed '-'. Floats carry no
// sign in this grammar, so only the integer form is produced.
func (s *Scanner) scanNegativeNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	s.addToken(INT)
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError("Unterminated string.")
		return
	}
	s.advance()
	value := s.source[s.start+1 : s.current-1]
	s.tokens = append(s.tokens, Token{Type: STRING, Lexeme: value, Position: Position{
		Line: s.line, Column: s.startColumn, Offset: s.start},
	})
}

// scanChar lexes a character literal: exactly one character between single
// quotes, with no escape support.
func (s *Scanner) scanChar() {
	for s.peek() != '\'' && s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() || s.peek() == '\n' {
		s.reportError("Unterminated character literal.")
		return
	}
	s.advance()
	value := s.source[s.start+1 : s.current-1]
	if utf8.RuneCountInString(value) != 1 {
		s.reportError("Character literal must contain exactly one character.")
		return
	}
	s.tokens = append(s.tokens, Token{Type: CHAR, Lexeme: value, Position: Position{
		Line: s.line, Column: s.startColumn, Offset: s.start},
	})
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}

// scanSingleLineComment discards everything to the end of the line; comments
// never appear in the token stream.
func (s *Scanner) scanSingleLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}
