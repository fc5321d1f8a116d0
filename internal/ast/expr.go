// SPDX-License-Identifier: Apache-2.0
package ast

type Expr interface {
	Node
	isExpr()
}

// Identifier is a simple name reference.
// Example: "x", "initX", "totalSupply"
type Identifier struct {
	Pos    Position
	EndPos Position
	Name   string

	// Ref is the resolved declaration, set by the resolver. Nil only for
	// builtin globals the resolver deliberately ignores.
	Ref Declaration
}

// MemberAccess is a dotted reference.
// Example: "super.init", "Base.f", "msg.sender"
type MemberAccess struct {
	Pos    Position
	EndPos Position
	X      Expr
	Member Ident

	// Ref is the exact declaration a qualified call pins, set by the
	// resolver for super- and base-qualified accesses. Nil otherwise.
	Ref Declaration
}

// CallExpr is a function call.
// Example: "f()", "super.init(3)", "g(a, b)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

// BinaryExpr represents binary operations.
// Example: "3 + x", "i < n"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// UnaryExpr represents unary operations.
// Example: "!done", "-amount"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	X      Expr
}

// Literal represents number, string and boolean literals.
// Example: "3", "0x42", "\"hi\"", "true"
type Literal struct {
	Pos    Position
	EndPos Position
	Value  string
}

// ParenExpr represents a parenthesized expression.
type ParenExpr struct {
	Pos    Position
	EndPos Position
	X      Expr
}

// SuperExpr is the "super" keyword, only meaningful as the object of a
// member access.
type SuperExpr struct {
	Pos    Position
	EndPos Position
}
