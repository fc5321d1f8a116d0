// SPDX-License-Identifier: Apache-2.0

// Package lsp serves solv diagnostics over the Language Server Protocol.
package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// SolvHandler implements the LSP handlers for the solv toolchain. It
// keeps the latest buffer contents per open document and re-runs the
// parse/resolve/validate pipeline on every change.
type SolvHandler struct {
	mu      sync.RWMutex
	content map[string]string
}

// NewSolvHandler creates a handler with no open documents.
func NewSolvHandler() *SolvHandler {
	return &SolvHandler{
		content: make(map[string]string),
	}
}

// Initialize advertises the server's capabilities: full-document sync is
// all we need, since the pipeline always re-checks whole files.
func (h *SolvHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

// Initialized is called once the client completes initialization.
func (h *SolvHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *SolvHandler) Shutdown(ctx *glsp.Context) error {
	return nil
}

// SetTrace handles trace level changes; solv does not emit trace output.
func (h *SolvHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen checks a newly opened document.
func (h *SolvHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.check(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange re-checks on every edit; sync is full-document,
// so the last change event carries the complete text.
func (h *SolvHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	text, ok := h.latestContent(params.ContentChanges)
	if !ok {
		return nil
	}
	h.check(ctx, params.TextDocument.URI, text)
	return nil
}

// TextDocumentDidClose drops the document state and clears diagnostics.
func (h *SolvHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	delete(h.content, path)
	h.mu.Unlock()

	publishDiagnostics(ctx, params.TextDocument.URI, nil)
	return nil
}

func (h *SolvHandler) latestContent(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case protocol.TextDocumentContentChangeEvent:
			return change.Text, true
		}
	}
	return "", false
}

func (h *SolvHandler) check(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	path, err := uriToPath(uri)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.content[path] = text
	h.mu.Unlock()

	diagnostics := CollectDiagnostics(path, text)
	publishDiagnostics(ctx, uri, diagnostics)
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// uriToPath converts a document URI to a platform-local file path.
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove the leading slash of /C:/... paths
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
