// SPDX-License-Identifier: Apache-2.0
package semantic

import (
	"solv/internal/ast"
)

// FindFinalOverride resolves the callable that actually executes when the
// given declaration is invoked polymorphically in the context of the
// most-derived contract whose linearization is supplied. Non-virtual
// callables always target the exact declaration. It is a pure function of
// its arguments so it can be tested without a validator.
func FindFinalOverride(callable ast.Callable, linearized []*ast.Contract) ast.Callable {
	if !callable.VirtualSemantics() {
		return callable
	}

	switch origin := callable.(type) {
	case *ast.Function:
		// Most-derived first: the first exact signature match is the
		// implementation dynamic dispatch selects, even for calls made
		// through a base-qualified super chain.
		for _, contract := range linearized {
			for _, fn := range contract.Funcs {
				if fn.Name.Value == origin.Name.Value && sameSignature(fn, origin) {
					return fn
				}
			}
		}
	case *ast.Modifier:
		// Modifiers are not distinguished by signature.
		for _, contract := range linearized {
			for _, m := range contract.Modifiers {
				if m.Name.Value == origin.Name.Value {
					return m
				}
			}
		}
	}

	return callable
}

// sameSignature compares parameter and return types by resolved name.
func sameSignature(a, b *ast.Function) bool {
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i].TypeName.Value != b.Params[i].TypeName.Value {
			return false
		}
	}
	if (a.Returns == nil) != (b.Returns == nil) {
		return false
	}
	if a.Returns != nil && a.Returns.Value != b.Returns.Value {
		return false
	}
	return true
}
