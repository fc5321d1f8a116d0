// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var solLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "BlockComment", Pattern: `/\*(?s:.*?)\*/`},

		// Keywords and identifiers (keywords are matched as literals in the grammar)
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},

		// Number literals
		{Name: "Number", Pattern: `0x[0-9a-fA-F]+|[0-9]+`},

		// String literals
		{Name: "String", Pattern: `"[^"\n]*"`},

		// Operators (multi-character first)
		{Name: "Operator", Pattern: `(\|\||&&|==|!=|<=|>=|\+=|-=|\*=|/=|%=|[-+*/%<>=!])`},

		// Punctuation
		{Name: "Punct", Pattern: `[{}(),;.]`},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
})
