// SPDX-License-Identifier: Apache-2.0

// Package resolve binds names in a parsed source unit: contract
// references in inheritance clauses, the C3 linearization of every
// contract, and the declaration behind every identifier and qualified
// member access. The immutable validator trusts these links and never
// re-derives them.
package resolve

import (
	"solv/internal/ast"
	"solv/internal/errors"
)

// Builtin globals of the execution environment. References to them are
// left unbound and produce no diagnostics.
var builtinGlobals = map[string]bool{
	"msg":       true,
	"block":     true,
	"tx":        true,
	"this":      true,
	"now":       true,
	"require":   true,
	"assert":    true,
	"revert":    true,
	"keccak256": true,
}

type Resolver struct {
	unit      *ast.SourceUnit
	contracts map[string]*ast.Contract
	errs      []errors.CompilerError
}

// Resolve annotates the source unit in place and returns all binding
// diagnostics. It always completes; unresolved references are reported
// and left nil.
func Resolve(unit *ast.SourceUnit) []errors.CompilerError {
	r := &Resolver{
		unit:      unit,
		contracts: make(map[string]*ast.Contract),
	}
	r.declareContracts()
	r.linearizeAll()
	for _, c := range unit.Contracts {
		r.bindContract(c)
	}
	return r.errs
}

func (r *Resolver) addError(err errors.CompilerError) {
	r.errs = append(r.errs, err)
}

// declareContracts registers contract names, sets declaring-contract
// backpointers and checks for duplicate member names.
func (r *Resolver) declareContracts() {
	for _, c := range r.unit.Contracts {
		if _, exists := r.contracts[c.Name.Value]; exists {
			r.addError(errors.DuplicateDeclaration(c.Name.Value, c))
			continue
		}
		r.contracts[c.Name.Value] = c
	}

	for _, c := range r.unit.Contracts {
		seen := make(map[string]bool)
		declare := func(name string, node ast.Node) {
			if name == "" {
				return // constructors are anonymous
			}
			if seen[name] {
				r.addError(errors.DuplicateDeclaration(name, node))
			}
			seen[name] = true
		}
		for _, v := range c.Vars {
			v.Contract = c
			declare(v.Name.Value, v)
		}
		for _, fn := range c.Funcs {
			fn.Contract = c
			declare(fn.Name.Value, fn)
		}
		for _, m := range c.Modifiers {
			m.Contract = c
			declare(m.Name.Value, m)
		}
		for _, b := range c.Bases {
			target, ok := r.contracts[b.Name.Value]
			if !ok {
				r.addError(errors.UnknownBase(b.Name.Value, b))
				continue
			}
			b.Target = target
		}
	}
}

// bindContract resolves every expression position of one contract.
func (r *Resolver) bindContract(c *ast.Contract) {
	b := &binder{resolver: r, contract: c}

	for _, v := range c.Vars {
		if v.Value != nil {
			b.bindExpr(v.Value)
		}
	}
	for _, spec := range c.Bases {
		for _, arg := range spec.Args {
			b.bindExpr(arg)
		}
	}
	for _, fn := range c.Funcs {
		b.pushFrame()
		for _, p := range fn.Params {
			b.define(p)
		}
		for _, inv := range fn.Invocations {
			b.bindInvocation(inv)
		}
		if fn.Body != nil {
			b.bindStmt(fn.Body)
		}
		b.popFrame()
	}
	for _, m := range c.Modifiers {
		b.pushFrame()
		for _, p := range m.Params {
			b.define(p)
		}
		if m.Body != nil {
			b.bindStmt(m.Body)
		}
		b.popFrame()
	}
}

// binder carries the lexical scope stack while walking one contract.
type binder struct {
	resolver *Resolver
	contract *ast.Contract
	frames   []map[string]ast.Declaration
}

func (b *binder) pushFrame() {
	b.frames = append(b.frames, make(map[string]ast.Declaration))
}

func (b *binder) popFrame() {
	b.frames = b.frames[:len(b.frames)-1]
}

func (b *binder) define(decl ast.Declaration) {
	if len(b.frames) == 0 || decl.DeclName() == "" {
		return
	}
	b.frames[len(b.frames)-1][decl.DeclName()] = decl
}

// lookup searches locals, then the whole linearized hierarchy, then
// top-level contract names. A nil result with ok=true means a builtin
// that is deliberately left unbound.
func (b *binder) lookup(name string) (ast.Declaration, bool) {
	for i := len(b.frames) - 1; i >= 0; i-- {
		if decl, ok := b.frames[i][name]; ok {
			return decl, true
		}
	}
	for _, k := range b.contract.Linearized {
		for _, v := range k.Vars {
			if v.Name.Value == name {
				return v, true
			}
		}
		for _, fn := range k.Funcs {
			if fn.Name.Value == name {
				return fn, true
			}
		}
		for _, m := range k.Modifiers {
			if m.Name.Value == name {
				return m, true
			}
		}
	}
	if c, ok := b.resolver.contracts[name]; ok {
		return c, true
	}
	if builtinGlobals[name] {
		return nil, true
	}
	return nil, false
}

func (b *binder) bindInvocation(inv *ast.ModifierInvocation) {
	decl, ok := b.lookup(inv.Name.Name)
	if !ok {
		b.resolver.addError(errors.UndefinedIdentifier(inv.Name.Name, inv.Name))
	}
	inv.Name.Ref = decl
	for _, arg := range inv.Args {
		b.bindExpr(arg)
	}
}

func (b *binder) bindStmt(s ast.Stmt) {
	switch node := s.(type) {
	case *ast.Block:
		b.pushFrame()
		for _, inner := range node.Stmts {
			b.bindStmt(inner)
		}
		b.popFrame()
	case *ast.IfStmt:
		b.bindExpr(node.Cond)
		b.bindStmt(node.Then)
		if node.Else != nil {
			b.bindStmt(node.Else)
		}
	case *ast.WhileStmt:
		b.bindExpr(node.Cond)
		b.bindStmt(node.Body)
	case *ast.ReturnStmt:
		if node.Value != nil {
			b.bindExpr(node.Value)
		}
	case *ast.ExprStmt:
		b.bindExpr(node.X)
	case *ast.AssignStmt:
		b.bindExpr(node.Target)
		b.bindExpr(node.Value)
	case *ast.VarDeclStmt:
		if node.Value != nil {
			b.bindExpr(node.Value)
		}
		b.define(node)
	case *ast.PlaceholderStmt:
		// stands for the wrapped body, nothing to bind
	}
}

func (b *binder) bindExpr(e ast.Expr) {
	switch node := e.(type) {
	case *ast.Identifier:
		decl, ok := b.lookup(node.Name)
		if !ok {
			b.resolver.addError(errors.UndefinedIdentifier(node.Name, node))
		}
		node.Ref = decl
	case *ast.MemberAccess:
		b.bindExpr(node.X)
		b.bindMember(node)
	case *ast.CallExpr:
		b.bindExpr(node.Callee)
		for _, arg := range node.Args {
			b.bindExpr(arg)
		}
	case *ast.BinaryExpr:
		b.bindExpr(node.Left)
		b.bindExpr(node.Right)
	case *ast.UnaryExpr:
		b.bindExpr(node.X)
	case *ast.ParenExpr:
		b.bindExpr(node.X)
	}
}

// bindMember pins the exact declaration behind super- and base-qualified
// accesses. Every other member access (builtin globals like msg.sender)
// stays unbound.
func (b *binder) bindMember(m *ast.MemberAccess) {
	switch target := m.X.(type) {
	case *ast.SuperExpr:
		// super skips the contract itself and takes the next match in
		// its own linearization.
		for _, k := range b.contract.Linearized[1:] {
			if decl := findCallable(k, m.Member.Value); decl != nil {
				m.Ref = decl
				return
			}
		}
		b.resolver.addError(errors.UndefinedMember(m.Member.Value, "super", m))
	case *ast.Identifier:
		base, ok := target.Ref.(*ast.Contract)
		if !ok {
			return
		}
		for _, k := range base.Linearized {
			if decl := findCallable(k, m.Member.Value); decl != nil {
				m.Ref = decl
				return
			}
		}
		b.resolver.addError(errors.UndefinedMember(m.Member.Value, base.Name.Value, m))
	}
}

func findCallable(c *ast.Contract, name string) ast.Declaration {
	for _, fn := range c.Funcs {
		if fn.Name.Value == name {
			return fn
		}
	}
	for _, m := range c.Modifiers {
		if m.Name.Value == name {
			return m
		}
	}
	return nil
}
