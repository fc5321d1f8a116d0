// SPDX-License-Identifier: Apache-2.0

// Package ast defines the name-resolved syntax tree for the Solidity
// subset understood by solv. The parser produces it, the resolver fills
// in the Ref / Target / Linearized annotations, and the immutable
// validator consumes it without re-deriving any binding information.
package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

type Node interface {
	NodePos() Position
	NodeEndPos() Position
}

// Declaration is anything an identifier can resolve to: a contract, a
// state variable, a callable, a parameter or a local variable.
type Declaration interface {
	Node
	DeclName() string
}

// Callable is the sum type over {*Function, *Modifier}. Dispatch sites
// pattern-match on the concrete type instead of casting.
type Callable interface {
	Declaration
	// Owner is the contract the callable is declared on, set by the resolver.
	Owner() *Contract
	// VirtualSemantics reports whether calls to this declaration dispatch
	// dynamically (declared virtual, or overriding a virtual declaration).
	VirtualSemantics() bool
	isCallable()
}

// Ident is a raw name with its source span. It carries no binding; bound
// references live on Identifier and MemberAccess expressions.
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// SourceUnit is one parsed file: a sequence of contract definitions.
type SourceUnit struct {
	Pos       Position
	EndPos    Position
	Contracts []*Contract
}

// Contract is a contract definition together with its resolver annotations.
type Contract struct {
	Pos       Position
	EndPos    Position
	Name      Ident
	Bases     []*InheritanceSpecifier
	Vars      []*StateVariable
	Funcs     []*Function // includes the constructor, if any
	Modifiers []*Modifier

	// Linearized is the C3-resolved inheritance chain, most-derived first,
	// starting with the contract itself. Set by the resolver.
	Linearized []*Contract
}

// Constructor returns the contract's constructor or nil.
func (c *Contract) Constructor() *Function {
	for _, fn := range c.Funcs {
		if fn.IsConstructor {
			return fn
		}
	}
	return nil
}

// StateVarsIncludingInherited collects the state variables of the whole
// linearized chain, most-base contract first so that inherited variables
// precede the contract's own, matching construction order.
func (c *Contract) StateVarsIncludingInherited() []*StateVariable {
	var vars []*StateVariable
	for i := len(c.Linearized) - 1; i >= 0; i-- {
		vars = append(vars, c.Linearized[i].Vars...)
	}
	return vars
}

// InheritanceSpecifier is one entry of a contract's "is" list, with the
// optional base-constructor argument expressions.
type InheritanceSpecifier struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Args   []Expr

	// Target is the referenced base contract, set by the resolver.
	Target *Contract
}

// StateVariable is a contract-level variable declaration.
// Example: "uint immutable x;" or "uint y = 3;"
type StateVariable struct {
	Pos       Position
	EndPos    Position
	TypeName  Ident
	Immutable bool
	Name      Ident
	Value     Expr // optional initializer

	// Contract is the declaring contract, set by the resolver.
	Contract *Contract
}

// Function covers ordinary functions and constructors. A constructor has
// IsConstructor set and an empty Name.
type Function struct {
	Pos           Position
	EndPos        Position
	Name          Ident
	IsConstructor bool
	Params        []*Param
	Returns       *Ident // return type name, nil for none
	Visibility    string // "public", "internal", "external", "private" or ""
	Mutability    string // "pure", "view", "payable" or ""
	IsVirtual     bool
	IsOverride    bool
	Invocations   []*ModifierInvocation
	Body          *Block // nil for unimplemented declarations

	// Contract is the declaring contract, set by the resolver.
	Contract *Contract
}

// Modifier is a function modifier definition. Its body may contain the
// "_;" placeholder statement.
type Modifier struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	Params     []*Param
	IsVirtual  bool
	IsOverride bool
	Body       *Block

	// Contract is the declaring contract, set by the resolver.
	Contract *Contract
}

// ModifierInvocation is one entry of a function's modifier list. The name
// resolves either to a modifier or, on constructors, to a base contract
// whose constructor arguments are supplied here.
type ModifierInvocation struct {
	Pos    Position
	EndPos Position
	Name   *Identifier
	Args   []Expr
}

// Param is a function or modifier parameter.
type Param struct {
	Pos      Position
	EndPos   Position
	TypeName Ident
	Name     Ident
}
