// SPDX-License-Identifier: Apache-2.0

// Package parser turns source text of the Solidity subset into the
// internal/ast representation consumed by the resolver and validator.
package parser

import (
	"github.com/alecthomas/participle/v2"

	"solv/internal/ast"
	"solv/internal/errors"
)

var unitParser = participle.MustBuild[sourceUnit](
	participle.Lexer(solLexer),
	participle.Elide("Whitespace", "Comment", "BlockComment"),
	participle.UseLookahead(3),
)

// ParseSource parses one source file. Parse failures are returned as
// diagnostics, never as hard errors; a nil unit means nothing usable was
// recovered.
func ParseSource(filename, source string) (*ast.SourceUnit, []errors.CompilerError) {
	tree, err := unitParser.ParseString(filename, source)
	if err != nil {
		return nil, []errors.CompilerError{convertParseError(err)}
	}
	return lowerSourceUnit(tree), nil
}

func convertParseError(err error) errors.CompilerError {
	if pe, ok := err.(participle.Error); ok {
		pos := pe.Position()
		return errors.Syntax(pe.Message(), ast.Position{
			Filename: pos.Filename,
			Offset:   pos.Offset,
			Line:     pos.Line,
			Column:   pos.Column,
		})
	}
	return errors.Syntax(err.Error(), ast.Position{Line: 1, Column: 1})
}
