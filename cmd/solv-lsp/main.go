// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"solv/internal/lsp"
)

const lsName = "solv" // Name identifier for the language server

var handler protocol.Handler

func main() {
	// Configure debug logging (1 = debug level, nil = default backend)
	commonlog.Configure(1, nil)

	solvHandler := lsp.NewSolvHandler()

	handler = protocol.Handler{
		Initialize:            solvHandler.Initialize,
		Initialized:           solvHandler.Initialized,
		Shutdown:              solvHandler.Shutdown,
		SetTrace:              solvHandler.SetTrace,
		TextDocumentDidOpen:   solvHandler.TextDocumentDidOpen,
		TextDocumentDidClose:  solvHandler.TextDocumentDidClose,
		TextDocumentDidChange: solvHandler.TextDocumentDidChange,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting solv LSP server...")

	// Serve over stdio, the transport editors use for LSP
	if err := s.RunStdio(); err != nil {
		log.Println("Error starting solv LSP server:", err)
		os.Exit(1)
	}
}
