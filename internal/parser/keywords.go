package parser

var KEYWORDS = map[string]TokenType{
	"import": IMPORT,
	"fn":     FN,
	"if":     IF,
	"elif":   ELIF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"in":     IN,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
}
