package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"rustl/internal/lsp"
	"rustl/internal/parser"
)

func exampleURI(t *testing.T, name string) string {
	t.Helper()
	absPath, err := filepath.Abs(filepath.Join("../../examples", name))
	require.NoError(t, err, "Failed to get absolute path")
	return "file://" + filepath.ToSlash(absPath)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewRustlHandler()

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: exampleURI(t, "fib.rl"),
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 17)

	assertToken(t, &decoded[0], 3, 4, 3, "function", []string{"declaration"})
	assertToken(t, &decoded[1], 3, 8, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[2], 4, 9, 1, "variable", nil)
	assertToken(t, &decoded[3], 5, 9, 6, "variable", nil)
	assertToken(t, &decoded[4], 5, 18, 1, "variable", nil)
	assertToken(t, &decoded[5], 7, 9, 6, "variable", nil)
	assertToken(t, &decoded[6], 7, 18, 3, "function", nil)
	assertToken(t, &decoded[7], 7, 22, 1, "variable", nil)
	assertToken(t, &decoded[8], 7, 31, 3, "function", nil)
	assertToken(t, &decoded[9], 7, 35, 1, "variable", nil)
	assertToken(t, &decoded[10], 9, 12, 6, "variable", nil)
	assertToken(t, &decoded[11], 12, 1, 1, "variable", nil)
	assertToken(t, &decoded[12], 13, 8, 1, "variable", nil)
	assertToken(t, &decoded[13], 14, 5, 5, "function", nil)
	assertToken(t, &decoded[14], 14, 11, 3, "function", nil)
	assertToken(t, &decoded[15], 14, 15, 1, "variable", nil)
	assertToken(t, &decoded[16], 15, 5, 1, "variable", nil)
}

func TestDiagnosticsForBrokenSource(t *testing.T) {
	_, err := parser.ParseSource("broken.rl", "x = ;")
	require.Error(t, err)

	diagnostics := lsp.ConvertParseError(err)
	require.Len(t, diagnostics, 1, "Fail-fast parsing yields a single diagnostic")

	d := diagnostics[0]
	require.Equal(t, uint32(0), d.Range.Start.Line)
	require.Equal(t, uint32(4), d.Range.Start.Character)
	require.Equal(t, "rustl-parser", *d.Source)
	require.Contains(t, d.Message, "unexpected")
}

func TestCompletionReturnsKeywords(t *testing.T) {
	handler := lsp.NewRustlHandler()

	result, err := handler.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)
	require.NotEmpty(t, list.Items)

	labels := make([]string, len(list.Items))
	for i, item := range list.Items {
		labels[i] = item.Label
	}
	require.Contains(t, labels, "fn")
	require.Contains(t, labels, "elif")
	require.Contains(t, labels, "while")
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
