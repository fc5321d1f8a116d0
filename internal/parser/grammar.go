// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Parse tree produced by participle. It mirrors the surface syntax and is
// lowered into internal/ast by lower.go; nothing outside this package
// sees these types.

type sourceUnit struct {
	Pos       lexer.Position
	Contracts []*contractDef `@@*`
	EndPos    lexer.Position
}

type contractDef struct {
	Pos     lexer.Position
	Name    string         `"contract" @Ident`
	Bases   []*inheritance `( "is" @@ ( "," @@ )* )?`
	Members []*member      `"{" @@* "}"`
	EndPos  lexer.Position
}

type inheritance struct {
	Pos    lexer.Position
	Name   string  `@Ident`
	Args   []*expr `( "(" ( @@ ( "," @@ )* )? ")" )?`
	EndPos lexer.Position
}

type member struct {
	Ctor *ctorDef  `  @@`
	Fn   *funcDef  `| @@`
	Mod  *modDef   `| @@`
	Var  *stateVar `| @@`
}

type stateVar struct {
	Pos        lexer.Position
	Type       string `@Ident`
	Visibility string `@("public" | "internal" | "private")?`
	Immutable  bool   `@"immutable"?`
	Name       string `@Ident`
	Value      *expr  `( "=" @@ )? ";"`
	EndPos     lexer.Position
}

type ctorDef struct {
	Pos    lexer.Position
	Params []*param      `"constructor" "(" ( @@ ( "," @@ )* )? ")"`
	Decos  []*decoration `@@*`
	Body   *block        `@@`
	EndPos lexer.Position
}

type funcDef struct {
	Pos    lexer.Position
	Name   string        `"function" @Ident`
	Params []*param      `"(" ( @@ ( "," @@ )* )? ")"`
	Decos  []*decoration `@@*`
	Body   *block        `( @@ | ";" )`
	EndPos lexer.Position
}

type modDef struct {
	Pos    lexer.Position
	Name   string        `"modifier" @Ident`
	Params []*param      `( "(" ( @@ ( "," @@ )* )? ")" )?`
	Decos  []*decoration `@@*`
	Body   *block        `@@`
	EndPos lexer.Position
}

// decoration is anything that may follow a callable's parameter list:
// visibility, mutability, virtual/override markers, the returns clause,
// or a modifier / base-constructor invocation.
type decoration struct {
	Pos        lexer.Position
	Visibility string      `  @("public" | "internal" | "external" | "private")`
	Mutability string      `| @("pure" | "view" | "payable")`
	Virtual    bool        `| @"virtual"`
	Override   bool        `| @"override"`
	Returns    string      `| "returns" "(" @Ident ")"`
	Invocation *invocation `| @@`
	EndPos     lexer.Position
}

type invocation struct {
	Pos    lexer.Position
	Name   string  `@Ident`
	Args   []*expr `( "(" ( @@ ( "," @@ )* )? ")" )?`
	EndPos lexer.Position
}

type param struct {
	Pos    lexer.Position
	Type   string `@Ident`
	Name   string `@Ident?`
	EndPos lexer.Position
}

type block struct {
	Pos    lexer.Position
	Stmts  []*stmt `"{" @@* "}"`
	EndPos lexer.Position
}

type stmt struct {
	If          *ifStmt      `  @@`
	While       *whileStmt   `| @@`
	Return      *returnStmt  `| @@`
	Block       *block       `| @@`
	Placeholder *placeholder `| @@`
	VarDecl     *varDeclStmt `| @@`
	Simple      *simpleStmt  `| @@`
}

type placeholder struct {
	Pos    lexer.Position
	Mark   string `@"_" ";"`
	EndPos lexer.Position
}

type ifStmt struct {
	Pos    lexer.Position
	Cond   *expr `"if" "(" @@ ")"`
	Then   *stmt `@@`
	Else   *stmt `( "else" @@ )?`
	EndPos lexer.Position
}

type whileStmt struct {
	Pos    lexer.Position
	Cond   *expr `"while" "(" @@ ")"`
	Body   *stmt `@@`
	EndPos lexer.Position
}

type returnStmt struct {
	Pos    lexer.Position
	Value  *expr `"return" @@? ";"`
	EndPos lexer.Position
}

type varDeclStmt struct {
	Pos    lexer.Position
	Type   string `@Ident`
	Name   string `@Ident`
	Value  *expr  `( "=" @@ )? ";"`
	EndPos lexer.Position
}

type simpleStmt struct {
	Pos    lexer.Position
	LHS    *expr  `@@`
	Op     string `( @("=" | "+=" | "-=" | "*=" | "/=" | "%=")`
	RHS    *expr  `@@ )? ";"`
	EndPos lexer.Position
}

type expr struct {
	Pos    lexer.Position
	Left   *unary   `@@`
	Ops    []*binOp `@@*`
	EndPos lexer.Position
}

type binOp struct {
	Op     string `@("||" | "&&" | "==" | "!=" | "<=" | ">=" | "<" | ">" | "+" | "-" | "*" | "/" | "%")`
	Right  *unary `@@`
	EndPos lexer.Position
}

type unary struct {
	Pos    lexer.Position
	Op     string   `@("!" | "-")?`
	Post   *postfix `@@`
	EndPos lexer.Position
}

type postfix struct {
	Pos     lexer.Position
	Primary *primary     `@@`
	Suffix  []*postfixOp `@@*`
	EndPos  lexer.Position
}

type postfixOp struct {
	Pos    lexer.Position
	Member *string     `  "." @Ident`
	Call   *callSuffix `| @@`
	EndPos lexer.Position
}

type callSuffix struct {
	Pos    lexer.Position
	Args   []*expr `"(" ( @@ ( "," @@ )* )? ")"`
	EndPos lexer.Position
}

type primary struct {
	Pos    lexer.Position
	Super  bool    `  @"super"`
	True   bool    `| @"true"`
	False  bool    `| @"false"`
	Number *string `| @Number`
	Str    *string `| @String`
	Ident  *string `| @Ident`
	Paren  *expr   `| "(" @@ ")"`
	EndPos lexer.Position
}
