// SPDX-License-Identifier: Apache-2.0
package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"solv/internal/errors"
	"solv/internal/parser"
	"solv/internal/resolve"
	"solv/internal/semantic"
)

// CollectDiagnostics runs the full pipeline on one document and converts
// every diagnostic into LSP form. Resolution errors do not stop the
// immutable validation; the validator tolerates unbound references.
func CollectDiagnostics(path, source string) []protocol.Diagnostic {
	var all []errors.CompilerError

	unit, parseErrors := parser.ParseSource(path, source)
	all = append(all, parseErrors...)

	if unit != nil {
		all = append(all, resolve.Resolve(unit)...)
		for _, contract := range unit.Contracts {
			all = append(all, semantic.ValidateImmutables(contract)...)
		}
	}

	diagnostics := make([]protocol.Diagnostic, 0, len(all))
	for _, err := range all {
		diagnostics = append(diagnostics, convertDiagnostic(err))
	}
	return diagnostics
}

func convertDiagnostic(err errors.CompilerError) protocol.Diagnostic {
	length := err.Length
	if length < 1 {
		length = 1
	}

	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(err.Position.Line - 1),
				Character: uint32(err.Position.Column - 1),
			},
			End: protocol.Position{
				Line:      uint32(err.Position.Line - 1),
				Character: uint32(err.Position.Column - 1 + length),
			},
		},
		Severity: ptrSeverity(severityFor(err.Level)),
		Source:   ptrString("solv"),
		Message:  err.Message,
	}
	if err.Code != "" {
		code := protocol.IntegerOrString{Value: err.Code}
		diagnostic.Code = &code
	}
	if err.Secondary != nil {
		diagnostic.RelatedInformation = []protocol.DiagnosticRelatedInformation{
			{
				Location: protocol.Location{
					URI: protocol.DocumentUri(err.Secondary.Position.Filename),
					Range: protocol.Range{
						Start: protocol.Position{
							Line:      uint32(err.Secondary.Position.Line - 1),
							Character: uint32(err.Secondary.Position.Column - 1),
						},
						End: protocol.Position{
							Line:      uint32(err.Secondary.Position.Line - 1),
							Character: uint32(err.Secondary.Position.Column),
						},
					},
				},
				Message: err.Secondary.Label,
			},
		}
	}
	return diagnostic
}

func severityFor(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
