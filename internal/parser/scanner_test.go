package parser

import (
	"testing"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "import fn if elif else while for in return true false customIdent _under"
	expected := []TokenType{
		IMPORT, FN, IF, ELIF, ELSE, WHILE, FOR, IN, RETURN,
		TRUE, FALSE, IDENTIFIER, IDENTIFIER,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 0 12345 3.14 0.5"
	expected := []TokenType{INT, INT, INT, FLOAT, FLOAT}
	expectedLexemes := []string{"42", "0", "12345", "3.14", "0.5"}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("expected lexeme '%s', got '%s'", expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestNegativeNumbers(t *testing.T) {
	// A minus directly followed by a digit joins the literal; a spaced
	// minus stays a binary operator.
	input := "-5 1 - 2"
	expected := []TokenType{INT, INT, MINUS, INT}
	expectedLexemes := []string{"-5", "1", "-", "2"}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("expected lexeme '%s', got '%s'", expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestFloatBeforeInt(t *testing.T) {
	input := "3.14"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != FLOAT || tokens[0].Lexeme != "3.14" {
		t.Errorf("expected FLOAT '3.14', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != EOF {
		t.Errorf("expected a single FLOAT token, got trailing %s", tokens[1].Type)
	}
}

func TestStrings(t *testing.T) {
	input := `"hello" "world"`
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != STRING || tokens[0].Lexeme != "hello" {
		t.Errorf("expected STRING 'hello', got %s %s", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != STRING || tokens[1].Lexeme != "world" {
		t.Errorf("expected STRING 'world', got %s %s", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestUnterminatedString(t *testing.T) {
	scanner := NewScanner(`"open`)
	scanner.ScanTokens()

	if len(scanner.Errors()) != 1 {
		t.Fatalf("expected 1 scan error, got %d", len(scanner.Errors()))
	}
}

func TestCharLiterals(t *testing.T) {
	input := `'a' 'Z' '_'`
	expectedLexemes := []string{"a", "Z", "_"}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, lexeme := range expectedLexemes {
		if tokens[i].Type != CHAR {
			t.Errorf("expected CHAR, got %s", tokens[i].Type)
		}
		if tokens[i].Lexeme != lexeme {
			t.Errorf("expected lexeme %q, got %q", lexeme, tokens[i].Lexeme)
		}
	}
}

func TestMultiCharacterLiteralRejected(t *testing.T) {
	scanner := NewScanner(`'ab'`)
	scanner.ScanTokens()

	if len(scanner.Errors()) != 1 {
		t.Fatalf("expected 1 scan error, got %d", len(scanner.Errors()))
	}
}

func TestOperatorsAndBrackets(t *testing.T) {
	input := `(){}[],;+ ++ += - -- -= * *= / /= < > = == != ..`
	expected := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, LEFT_BRACKET, RIGHT_BRACKET,
		COMMA, SEMICOLON, PLUS, INCREMENT, PLUS_EQUAL, MINUS, DECREMENT, MINUS_EQUAL,
		STAR, STAR_EQUAL, SLASH, SLASH_EQUAL, LESS, GREATER, EQUAL, EQUAL_EQUAL,
		BANG_EQUAL, DOT_DOT,
	}
	expectedLexemes := []string{
		"(", ")", "{", "}", "[", "]", ",", ";", "+", "++", "+=", "-", "--", "-=",
		"*", "*=", "/", "/=", "<", ">", "=", "==", "!=", "..",
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("expected lexeme '%s', got '%s'", expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestSingleLineCommentsAreDiscarded(t *testing.T) {
	input := "x // trailing comment\ny"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	expected := []TokenType{IDENTIFIER, IDENTIFIER, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	scanner := NewScanner("x = @;")
	scanner.ScanTokens()

	errs := scanner.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 scan error, got %d", len(errs))
	}
	if errs[0].Position.Column != 5 {
		t.Errorf("expected error at column 5, got %d", errs[0].Position.Column)
	}
}

func TestBangRequiresEqual(t *testing.T) {
	scanner := NewScanner("a ! b")
	scanner.ScanTokens()

	if len(scanner.Errors()) != 1 {
		t.Fatalf("expected 1 scan error, got %d", len(scanner.Errors()))
	}
}

func TestPositions(t *testing.T) {
	input := "x = 1;\ny = 2;"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	// "y" starts line 2, column 1, offset 7
	y := tokens[4]
	if y.Lexeme != "y" {
		t.Fatalf("expected token 'y', got %q", y.Lexeme)
	}
	if y.Position.Line != 2 || y.Position.Column != 1 || y.Position.Offset != 7 {
		t.Errorf("unexpected position for 'y': %+v", y.Position)
	}
}

func TestScannerIsRestartable(t *testing.T) {
	input := "a + b;"

	first := NewScanner(input).ScanTokens()
	second := NewScanner(input).ScanTokens()

	if len(first) != len(second) {
		t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("token %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
