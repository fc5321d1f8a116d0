// SPDX-License-Identifier: Apache-2.0

// Package semantic validates the usage of immutable state variables: each
// one must be assigned exactly once, only from the constructor of its
// declaring contract, and never read while any constructor in the
// inheritance chain is still running.
//
// The analysis is deliberately conservative. Initialization inside loops
// and conditionals is rejected outright instead of proving single
// assignment per path, and a variable initialized identically in both
// arms of an if/else is still an error. Upgrading this to a per-path
// definite-assignment analysis would be a semantic change, not a cleanup.
package semantic

import (
	"solv/internal/ast"
	"solv/internal/errors"
)

// execContext is the traversal state threaded through the walk. The
// branch, loop and construction flags are saved and restored around
// nested scopes; they are never reset when the walk crosses a call edge,
// which is how "reachable from a constructor" propagates through
// arbitrarily deep call chains.
type execContext struct {
	inConstruction bool
	inBranch       bool
	inLoop         bool
	constructor    *ast.Function // innermost enclosing constructor, nil outside
}

// Validator checks one contract. All state is scoped to a single
// contract's analysis, so separate contracts can be validated
// independently.
type Validator struct {
	contract    *ast.Contract
	visited     map[ast.Callable]bool
	initialized map[*ast.StateVariable]bool
	ctx         execContext
	errs        []errors.CompilerError
}

// ValidateImmutables runs the immutable-usage analysis for one contract
// as the most-derived contract of its hierarchy. It never fails hard;
// every violation is returned as a diagnostic.
func ValidateImmutables(contract *ast.Contract) []errors.CompilerError {
	v := &Validator{
		contract:    contract,
		visited:     make(map[ast.Callable]bool),
		initialized: make(map[*ast.StateVariable]bool),
	}
	v.analyze()
	return v.errs
}

func (v *Validator) addError(err errors.CompilerError) {
	v.errs = append(v.errs, err)
}

// analyze drives the whole-hierarchy traversal: state variable
// initializers first, then each base contract's constructor and
// base-constructor arguments in reverse linearized order (most-base
// first, matching runtime construction order), then every function and
// modifier not reached from any constructor, and finally the
// completeness check for the implicit end of construction.
func (v *Validator) analyze() {
	v.ctx.inConstruction = true

	for _, sv := range v.contract.StateVarsIncludingInherited() {
		if sv.Value != nil {
			v.walkExpr(sv.Value)
			v.initialized[sv] = true
		}
	}

	for i := len(v.contract.Linearized) - 1; i >= 0; i-- {
		k := v.contract.Linearized[i]

		v.ctx.inConstruction = true

		if ctor := k.Constructor(); ctor != nil {
			v.walkCallable(ctor)
			v.visited[ctor] = true
		}

		for _, spec := range k.Bases {
			for _, arg := range spec.Args {
				v.walkExpr(arg)
			}
		}

		v.ctx.inConstruction = false

		// The sweep checks the visited set but does not record into it:
		// a base function swept here may still be walked again later
		// under construction context when a derived constructor calls it.
		for _, fn := range k.Funcs {
			if !v.visited[fn] {
				v.walkCallable(fn)
			}
		}
		for _, m := range k.Modifiers {
			if !v.visited[m] {
				v.walkCallable(m)
			}
		}
	}

	v.checkAllInitialized(v.contract.NodePos())
}

// walkCallable enters a function or modifier body. The constructor slot
// is saved and reset for the callee, while the construction, branch and
// loop flags stay caller-supplied.
func (v *Validator) walkCallable(callable ast.Callable) {
	prevConstructor := v.ctx.constructor
	v.ctx.constructor = nil

	switch decl := callable.(type) {
	case *ast.Function:
		if decl.IsConstructor {
			v.ctx.constructor = decl
		}
		for _, inv := range decl.Invocations {
			v.walkExpr(inv.Name)
			for _, arg := range inv.Args {
				v.walkExpr(arg)
			}
		}
		if decl.Body != nil {
			v.walkStmt(decl.Body)
		}
	case *ast.Modifier:
		if decl.Body != nil {
			v.walkStmt(decl.Body)
		}
	}

	v.ctx.constructor = prevConstructor
}

func (v *Validator) walkStmt(s ast.Stmt) {
	switch node := s.(type) {
	case *ast.Block:
		for _, inner := range node.Stmts {
			v.walkStmt(inner)
		}
	case *ast.IfStmt:
		prevInBranch := v.ctx.inBranch

		v.walkExpr(node.Cond)

		v.ctx.inBranch = true
		v.walkStmt(node.Then)
		if node.Else != nil {
			v.walkStmt(node.Else)
		}
		v.ctx.inBranch = prevInBranch
	case *ast.WhileStmt:
		prevInLoop := v.ctx.inLoop
		v.ctx.inLoop = true

		v.walkExpr(node.Cond)
		v.walkStmt(node.Body)

		v.ctx.inLoop = prevInLoop
	case *ast.ReturnStmt:
		if v.ctx.constructor == nil {
			if node.Value != nil {
				v.walkExpr(node.Value)
			}
			return
		}
		if node.Value != nil {
			v.walkExpr(node.Value)
		}
		// Construction can exit here, so everything must be assigned.
		v.checkAllInitialized(node.NodePos())
	case *ast.ExprStmt:
		v.walkExpr(node.X)
	case *ast.AssignStmt:
		v.walkAssignTarget(node)
		v.walkExpr(node.Value)
	case *ast.VarDeclStmt:
		if node.Value != nil {
			v.walkExpr(node.Value)
		}
	case *ast.PlaceholderStmt:
		// the wrapped body is analyzed on its own
	}
}

// walkAssignTarget treats an identifier target of a plain "=" as an
// initialization site; compound assignments and non-identifier targets
// fall back to ordinary expression walking and count as reads.
func (v *Validator) walkAssignTarget(assign *ast.AssignStmt) {
	if id, ok := assign.Target.(*ast.Identifier); ok && assign.Ordinary() {
		v.visitIdentifier(id, true)
		return
	}
	v.walkExpr(assign.Target)
}

func (v *Validator) walkExpr(e ast.Expr) {
	switch node := e.(type) {
	case *ast.Identifier:
		v.visitIdentifier(node, false)
	case *ast.MemberAccess:
		v.walkExpr(node.X)
		// A qualified access pins its exact target; no override
		// resolution happens here.
		if callable, ok := node.Ref.(ast.Callable); ok {
			if !v.visited[callable] {
				v.visited[callable] = true
				v.walkCallable(callable)
			}
		}
	case *ast.CallExpr:
		v.walkExpr(node.Callee)
		for _, arg := range node.Args {
			v.walkExpr(arg)
		}
	case *ast.BinaryExpr:
		v.walkExpr(node.Left)
		v.walkExpr(node.Right)
	case *ast.UnaryExpr:
		v.walkExpr(node.X)
	case *ast.ParenExpr:
		v.walkExpr(node.X)
	}
}

// visitIdentifier handles the two interesting reference kinds: a callable
// reference becomes a call edge resolved through dynamic dispatch, and an
// immutable state variable reference is validated as a write or a read.
func (v *Validator) visitIdentifier(id *ast.Identifier, isAssignTarget bool) {
	if callable, ok := id.Ref.(ast.Callable); ok {
		final := FindFinalOverride(callable, v.contract.Linearized)
		if !v.visited[final] {
			v.visited[final] = true
			v.walkCallable(final)
		}
		return
	}

	variable, ok := id.Ref.(*ast.StateVariable)
	if !ok || !variable.Immutable {
		return
	}

	if isAssignTarget {
		if v.ctx.constructor == nil {
			v.addError(errors.InvalidInitLocation(id))
		} else if v.ctx.constructor.Contract != variable.Contract {
			v.addError(errors.WrongContractInit(id))
		} else if v.ctx.inLoop {
			v.addError(errors.InitInLoop(id))
		} else if v.ctx.inBranch {
			v.addError(errors.InitInBranch(id))
		}

		if v.initialized[variable] {
			v.addError(errors.DoubleInit(id))
		} else {
			v.initialized[variable] = true
		}
	} else if v.ctx.inConstruction {
		v.addError(errors.ImmutableReadDuringConstruction(id))
	}
}

// checkAllInitialized emits one diagnostic per immutable variable still
// unassigned at a construction exit point.
func (v *Validator) checkAllInitialized(pos ast.Position) {
	for _, sv := range v.contract.StateVarsIncludingInherited() {
		if sv.Immutable && !v.initialized[sv] {
			v.addError(errors.IncompleteConstruction(pos, sv))
		}
	}
}
