// SPDX-License-Identifier: Apache-2.0
package errors

import (
	"fmt"

	"solv/internal/ast"
)

// newError builds a plain error diagnostic at a node's span.
func newError(code, message string, node ast.Node) CompilerError {
	pos := node.NodePos()
	length := node.NodeEndPos().Offset - pos.Offset
	if length < 1 {
		length = 1
	}
	return CompilerError{
		Level:    Error,
		Code:     code,
		Message:  message,
		Position: pos,
		Length:   length,
	}
}

// Immutable state variable diagnostics. The message wording follows the
// upstream compiler so existing tooling that matches on messages keeps
// working.

func ImmutableReadDuringConstruction(node ast.Node) CompilerError {
	return newError(ErrorImmutableReadDuringConstruction,
		"Immutable variables cannot be read in the constructor or any function or modifier called by it.",
		node)
}

func InvalidInitLocation(node ast.Node) CompilerError {
	return newError(ErrorInvalidInitLocation,
		"Immutable variables can only be initialized directly in the constructor.",
		node)
}

func WrongContractInit(node ast.Node) CompilerError {
	return newError(ErrorWrongContractInit,
		"Immutable variables must be initialized in the constructor of the contract they are defined in.",
		node)
}

func InitInLoop(node ast.Node) CompilerError {
	return newError(ErrorInitInLoop,
		"Immutable variables can only be initialized once, not in a while statement.",
		node)
}

func InitInBranch(node ast.Node) CompilerError {
	return newError(ErrorInitInBranch,
		"Immutable variables must be initialized unconditionally, not in an if statement.",
		node)
}

func DoubleInit(node ast.Node) CompilerError {
	return newError(ErrorDoubleInit,
		"Immutable state variable already initialized.",
		node)
}

// IncompleteConstruction reports a construction exit point reached while
// variable remains unassigned. The secondary location points at the
// variable's declaration.
func IncompleteConstruction(pos ast.Position, variable *ast.StateVariable) CompilerError {
	return CompilerError{
		Level:    Error,
		Code:     ErrorIncompleteConstruction,
		Message:  "Construction control flow ends without initializing all immutable state variables.",
		Position: pos,
		Length:   1,
		Secondary: &SecondaryLocation{
			Label:    fmt.Sprintf("Not initialized: %s", variable.Name.Value),
			Position: variable.NodePos(),
		},
	}
}

// Name resolution diagnostics.

func UndefinedIdentifier(name string, node ast.Node) CompilerError {
	err := newError(ErrorUndefinedIdentifier,
		fmt.Sprintf("undefined identifier '%s'", name), node)
	err.Length = len(name)
	return err
}

func UndefinedMember(member, target string, node ast.Node) CompilerError {
	return newError(ErrorUndefinedMember,
		fmt.Sprintf("member '%s' not found on '%s'", member, target), node)
}

func DuplicateDeclaration(name string, node ast.Node) CompilerError {
	return newError(ErrorDuplicateDeclaration,
		fmt.Sprintf("duplicate declaration: %s", name), node)
}

// Inheritance diagnostics.

func UnknownBase(name string, node ast.Node) CompilerError {
	return newError(ErrorUnknownBase,
		fmt.Sprintf("unknown base contract '%s'", name), node)
}

func InheritanceCycle(name string, node ast.Node) CompilerError {
	return newError(ErrorInheritanceCycle,
		fmt.Sprintf("contract '%s' inherits from itself, directly or indirectly", name), node)
}

func LinearizationFailure(name string, node ast.Node) CompilerError {
	return newError(ErrorLinearization,
		fmt.Sprintf("linearization of inheritance graph impossible for contract '%s'", name), node)
}

// Syntax reports a parse failure at a raw position.
func Syntax(message string, pos ast.Position) CompilerError {
	return CompilerError{
		Level:    Error,
		Code:     ErrorSyntax,
		Message:  message,
		Position: pos,
		Length:   1,
	}
}
