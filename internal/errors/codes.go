// SPDX-License-Identifier: Apache-2.0
package errors

// Error codes for the solv toolchain.
// These codes are used in error messages and documentation to provide
// consistent error identification across the CLI and the language server.
//
// Error code ranges:
// E0001-E0099: Name resolution errors
// E0100-E0199: Parser errors
// E0300-E0399: Inheritance/linearization errors
// E0400-E0499: Immutable state variable errors
const (
	// Name resolution errors (E0001-E0099)

	// E0001: Identifier does not resolve to any declaration
	ErrorUndefinedIdentifier = "E0001"

	// E0002: Member access does not resolve on a contract or super
	ErrorUndefinedMember = "E0002"

	// E0003: Duplicate declaration within one contract
	ErrorDuplicateDeclaration = "E0003"

	// Parser errors (E0100-E0199)

	// E0100: Syntax error
	ErrorSyntax = "E0100"

	// Inheritance errors (E0300-E0399)

	// E0300: "is" clause names an unknown contract
	ErrorUnknownBase = "E0300"

	// E0301: Inheritance graph contains a cycle
	ErrorInheritanceCycle = "E0301"

	// E0302: C3 linearization is impossible for the declared base order
	ErrorLinearization = "E0302"

	// Immutable state variable errors (E0400-E0499)

	// E0401: Immutable variable read while reachable from a constructor
	ErrorImmutableReadDuringConstruction = "E0401"

	// E0402: Immutable variable assigned outside any constructor
	ErrorInvalidInitLocation = "E0402"

	// E0403: Immutable variable assigned by a foreign contract's constructor
	ErrorWrongContractInit = "E0403"

	// E0404: Immutable variable assigned inside a loop body
	ErrorInitInLoop = "E0404"

	// E0405: Immutable variable assigned inside a conditional arm
	ErrorInitInBranch = "E0405"

	// E0406: Immutable variable assigned a second time
	ErrorDoubleInit = "E0406"

	// E0407: Construction ends with an immutable variable unassigned
	ErrorIncompleteConstruction = "E0407"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUndefinedIdentifier:
		return "Identifier is used but not declared in the contract hierarchy"
	case ErrorUndefinedMember:
		return "Qualified member does not exist on the referenced contract"
	case ErrorDuplicateDeclaration:
		return "Duplicate declaration found"
	case ErrorSyntax:
		return "Source file could not be parsed"
	case ErrorUnknownBase:
		return "Inheritance specifier references an unknown contract"
	case ErrorInheritanceCycle:
		return "Contract inherits from itself, directly or indirectly"
	case ErrorLinearization:
		return "No valid C3 linearization exists for the declared bases"
	case ErrorImmutableReadDuringConstruction:
		return "Immutable variable read before construction completed"
	case ErrorInvalidInitLocation:
		return "Immutable variable initialized outside a constructor"
	case ErrorWrongContractInit:
		return "Immutable variable initialized by the wrong contract"
	case ErrorInitInLoop:
		return "Immutable variable initialized inside a loop"
	case ErrorInitInBranch:
		return "Immutable variable initialized conditionally"
	case ErrorDoubleInit:
		return "Immutable variable initialized more than once"
	case ErrorIncompleteConstruction:
		return "Construction ends without initializing all immutable variables"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Name Resolution"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0300" && code < "E0400":
		return "Inheritance"
	case code >= "E0400" && code < "E0500":
		return "Immutable State"
	default:
		return "Unknown"
	}
}
