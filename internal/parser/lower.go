// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"

	"solv/internal/ast"
)

// Lowering from the participle parse tree to the ast package. Positions
// come straight from the lexer; identifier end positions are derived from
// the name length since identifiers never span lines.

func position(p lexer.Position) ast.Position {
	return ast.Position{
		Filename: p.Filename,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Column,
	}
}

func identAt(name string, p lexer.Position) ast.Ident {
	pos := position(p)
	end := pos
	end.Offset += len(name)
	end.Column += len(name)
	return ast.Ident{Pos: pos, EndPos: end, Value: name}
}

func lowerSourceUnit(u *sourceUnit) *ast.SourceUnit {
	unit := &ast.SourceUnit{Pos: position(u.Pos), EndPos: position(u.EndPos)}
	for _, c := range u.Contracts {
		unit.Contracts = append(unit.Contracts, lowerContract(c))
	}
	return unit
}

func lowerContract(c *contractDef) *ast.Contract {
	contract := &ast.Contract{
		Pos:    position(c.Pos),
		EndPos: position(c.EndPos),
		Name:   identAt(c.Name, c.Pos),
	}
	for _, b := range c.Bases {
		spec := &ast.InheritanceSpecifier{
			Pos:    position(b.Pos),
			EndPos: position(b.EndPos),
			Name:   identAt(b.Name, b.Pos),
		}
		for _, a := range b.Args {
			spec.Args = append(spec.Args, lowerExpr(a))
		}
		contract.Bases = append(contract.Bases, spec)
	}
	for _, m := range c.Members {
		switch {
		case m.Ctor != nil:
			contract.Funcs = append(contract.Funcs, lowerCtor(m.Ctor))
		case m.Fn != nil:
			contract.Funcs = append(contract.Funcs, lowerFunc(m.Fn))
		case m.Mod != nil:
			contract.Modifiers = append(contract.Modifiers, lowerMod(m.Mod))
		case m.Var != nil:
			contract.Vars = append(contract.Vars, lowerStateVar(m.Var))
		}
	}
	return contract
}

func lowerStateVar(v *stateVar) *ast.StateVariable {
	sv := &ast.StateVariable{
		Pos:       position(v.Pos),
		EndPos:    position(v.EndPos),
		TypeName:  identAt(v.Type, v.Pos),
		Immutable: v.Immutable,
		Name:      identAt(v.Name, v.Pos),
	}
	if v.Value != nil {
		sv.Value = lowerExpr(v.Value)
	}
	return sv
}

func lowerCtor(c *ctorDef) *ast.Function {
	fn := &ast.Function{
		Pos:           position(c.Pos),
		EndPos:        position(c.EndPos),
		Name:          ast.Ident{Pos: position(c.Pos), EndPos: position(c.Pos)},
		IsConstructor: true,
		Params:        lowerParams(c.Params),
		Body:          lowerBlock(c.Body),
	}
	applyDecorations(fn, nil, c.Decos)
	return fn
}

func lowerFunc(f *funcDef) *ast.Function {
	fn := &ast.Function{
		Pos:    position(f.Pos),
		EndPos: position(f.EndPos),
		Name:   identAt(f.Name, f.Pos),
		Params: lowerParams(f.Params),
	}
	if f.Body != nil {
		fn.Body = lowerBlock(f.Body)
	}
	applyDecorations(fn, nil, f.Decos)
	return fn
}

func lowerMod(m *modDef) *ast.Modifier {
	mod := &ast.Modifier{
		Pos:    position(m.Pos),
		EndPos: position(m.EndPos),
		Name:   identAt(m.Name, m.Pos),
		Params: lowerParams(m.Params),
		Body:   lowerBlock(m.Body),
	}
	applyDecorations(nil, mod, m.Decos)
	return mod
}

// applyDecorations distributes the post-parameter decoration list onto a
// function or modifier. Exactly one of fn and mod is non-nil.
func applyDecorations(fn *ast.Function, mod *ast.Modifier, decos []*decoration) {
	for _, d := range decos {
		switch {
		case d.Visibility != "":
			if fn != nil {
				fn.Visibility = d.Visibility
			}
		case d.Mutability != "":
			if fn != nil {
				fn.Mutability = d.Mutability
			}
		case d.Virtual:
			if fn != nil {
				fn.IsVirtual = true
			} else {
				mod.IsVirtual = true
			}
		case d.Override:
			if fn != nil {
				fn.IsOverride = true
			} else {
				mod.IsOverride = true
			}
		case d.Returns != "":
			if fn != nil {
				ret := identAt(d.Returns, d.Pos)
				fn.Returns = &ret
			}
		case d.Invocation != nil:
			if fn != nil {
				fn.Invocations = append(fn.Invocations, lowerInvocation(d.Invocation))
			}
		}
	}
}

func lowerInvocation(inv *invocation) *ast.ModifierInvocation {
	name := identAt(inv.Name, inv.Pos)
	mi := &ast.ModifierInvocation{
		Pos:    position(inv.Pos),
		EndPos: position(inv.EndPos),
		Name: &ast.Identifier{
			Pos:    name.Pos,
			EndPos: name.EndPos,
			Name:   inv.Name,
		},
	}
	for _, a := range inv.Args {
		mi.Args = append(mi.Args, lowerExpr(a))
	}
	return mi
}

func lowerParams(params []*param) []*ast.Param {
	var out []*ast.Param
	for _, p := range params {
		lowered := &ast.Param{
			Pos:      position(p.Pos),
			EndPos:   position(p.EndPos),
			TypeName: identAt(p.Type, p.Pos),
		}
		if p.Name != "" {
			lowered.Name = identAt(p.Name, p.Pos)
		}
		out = append(out, lowered)
	}
	return out
}

func lowerBlock(b *block) *ast.Block {
	out := &ast.Block{Pos: position(b.Pos), EndPos: position(b.EndPos)}
	for _, s := range b.Stmts {
		out.Stmts = append(out.Stmts, lowerStmt(s))
	}
	return out
}

func lowerStmt(s *stmt) ast.Stmt {
	switch {
	case s.If != nil:
		out := &ast.IfStmt{
			Pos:    position(s.If.Pos),
			EndPos: position(s.If.EndPos),
			Cond:   lowerExpr(s.If.Cond),
			Then:   lowerStmt(s.If.Then),
		}
		if s.If.Else != nil {
			out.Else = lowerStmt(s.If.Else)
		}
		return out
	case s.While != nil:
		return &ast.WhileStmt{
			Pos:    position(s.While.Pos),
			EndPos: position(s.While.EndPos),
			Cond:   lowerExpr(s.While.Cond),
			Body:   lowerStmt(s.While.Body),
		}
	case s.Return != nil:
		out := &ast.ReturnStmt{
			Pos:    position(s.Return.Pos),
			EndPos: position(s.Return.EndPos),
		}
		if s.Return.Value != nil {
			out.Value = lowerExpr(s.Return.Value)
		}
		return out
	case s.Block != nil:
		return lowerBlock(s.Block)
	case s.Placeholder != nil:
		return &ast.PlaceholderStmt{
			Pos:    position(s.Placeholder.Pos),
			EndPos: position(s.Placeholder.EndPos),
		}
	case s.VarDecl != nil:
		out := &ast.VarDeclStmt{
			Pos:      position(s.VarDecl.Pos),
			EndPos:   position(s.VarDecl.EndPos),
			TypeName: identAt(s.VarDecl.Type, s.VarDecl.Pos),
			Name:     identAt(s.VarDecl.Name, s.VarDecl.Pos),
		}
		if s.VarDecl.Value != nil {
			out.Value = lowerExpr(s.VarDecl.Value)
		}
		return out
	default:
		simple := s.Simple
		if simple.Op != "" {
			return &ast.AssignStmt{
				Pos:    position(simple.Pos),
				EndPos: position(simple.EndPos),
				Target: lowerExpr(simple.LHS),
				Op:     simple.Op,
				Value:  lowerExpr(simple.RHS),
			}
		}
		return &ast.ExprStmt{
			Pos:    position(simple.Pos),
			EndPos: position(simple.EndPos),
			X:      lowerExpr(simple.LHS),
		}
	}
}

func lowerExpr(e *expr) ast.Expr {
	acc := lowerUnary(e.Left)
	for _, op := range e.Ops {
		right := lowerUnary(op.Right)
		acc = &ast.BinaryExpr{
			Pos:    acc.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op.Op,
			Left:   acc,
			Right:  right,
		}
	}
	return acc
}

func lowerUnary(u *unary) ast.Expr {
	inner := lowerPostfix(u.Post)
	if u.Op == "" {
		return inner
	}
	return &ast.UnaryExpr{
		Pos:    position(u.Pos),
		EndPos: inner.NodeEndPos(),
		Op:     u.Op,
		X:      inner,
	}
}

func lowerPostfix(p *postfix) ast.Expr {
	acc := lowerPrimary(p.Primary)
	for _, op := range p.Suffix {
		switch {
		case op.Member != nil:
			acc = &ast.MemberAccess{
				Pos:    acc.NodePos(),
				EndPos: position(op.EndPos),
				X:      acc,
				Member: identAt(*op.Member, op.Pos),
			}
		case op.Call != nil:
			call := &ast.CallExpr{
				Pos:    acc.NodePos(),
				EndPos: position(op.Call.EndPos),
				Callee: acc,
			}
			for _, a := range op.Call.Args {
				call.Args = append(call.Args, lowerExpr(a))
			}
			acc = call
		}
	}
	return acc
}

func lowerPrimary(p *primary) ast.Expr {
	pos := position(p.Pos)
	end := position(p.EndPos)
	switch {
	case p.Super:
		return &ast.SuperExpr{Pos: pos, EndPos: end}
	case p.True:
		return &ast.Literal{Pos: pos, EndPos: end, Value: "true"}
	case p.False:
		return &ast.Literal{Pos: pos, EndPos: end, Value: "false"}
	case p.Number != nil:
		return &ast.Literal{Pos: pos, EndPos: end, Value: *p.Number}
	case p.Str != nil:
		return &ast.Literal{Pos: pos, EndPos: end, Value: *p.Str}
	case p.Ident != nil:
		name := identAt(*p.Ident, p.Pos)
		return &ast.Identifier{Pos: name.Pos, EndPos: name.EndPos, Name: *p.Ident}
	default:
		return &ast.ParenExpr{Pos: pos, EndPos: end, X: lowerExpr(p.Paren)}
	}
}
