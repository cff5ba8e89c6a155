// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"
	"rustl/internal/lsp"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "rustl" // Name identifier for the language server

var handler protocol.Handler // Protocol handler instance (wired up below)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	rustlHandler := lsp.NewRustlHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     rustlHandler.Initialize,
		Initialized:                    rustlHandler.Initialized,
		Shutdown:                       rustlHandler.Shutdown,
		SetTrace:                       rustlHandler.SetTrace,
		TextDocumentDidOpen:            rustlHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           rustlHandler.TextDocumentDidClose,
		TextDocumentDidChange:          rustlHandler.TextDocumentDidChange,
		TextDocumentCompletion:         rustlHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: rustlHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting rustl LSP server...")

	// Serve over standard input/output, the transport editors expect
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting rustl LSP server:", err)
		os.Exit(1)
	}
}
