// SPDX-License-Identifier: Apache-2.0
package ast

type Stmt interface {
	Node
	isStmt()
}

// Block represents a braced statement list.
// Example: "{ x = 1; if (y) { return; } }"
type Block struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// IfStmt represents a two-way conditional.
// Example: "if (cond) { ... } else { ... }"
type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Stmt
	Else   Stmt // nil when absent
}

// WhileStmt represents a while loop.
// Example: "while (i < n) { ... }"
type WhileStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   Stmt
}

// ReturnStmt represents a return statement.
// Example: "return x + 1;", "return;"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for a bare return
}

// ExprStmt represents an expression used as a statement.
// Example: "initX();"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	X      Expr
}

// AssignStmt represents simple and compound assignment statements.
// Example: "x = v;", "total += v;"
type AssignStmt struct {
	Pos    Position
	EndPos Position
	Target Expr
	Op     string // "=", "+=", "-=", "*=", "/=", "%="
	Value  Expr
}

// Ordinary reports whether this is a plain "=" assignment, the only form
// that counts as an initialization site for immutable variables.
func (a *AssignStmt) Ordinary() bool { return a.Op == "=" }

// VarDeclStmt represents a local variable declaration.
// Example: "uint v = f();"
type VarDeclStmt struct {
	Pos      Position
	EndPos   Position
	TypeName Ident
	Name     Ident
	Value    Expr // optional
}

// PlaceholderStmt is the "_;" statement inside a modifier body, standing
// for the wrapped function's body.
type PlaceholderStmt struct {
	Pos    Position
	EndPos Position
}
