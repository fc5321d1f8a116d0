// SPDX-License-Identifier: Apache-2.0
package ast

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }

func (u *SourceUnit) NodePos() Position    { return u.Pos }
func (u *SourceUnit) NodeEndPos() Position { return u.EndPos }

func (c *Contract) NodePos() Position    { return c.Pos }
func (c *Contract) NodeEndPos() Position { return c.EndPos }
func (c *Contract) DeclName() string     { return c.Name.Value }

func (s *InheritanceSpecifier) NodePos() Position    { return s.Pos }
func (s *InheritanceSpecifier) NodeEndPos() Position { return s.EndPos }

func (v *StateVariable) NodePos() Position    { return v.Pos }
func (v *StateVariable) NodeEndPos() Position { return v.EndPos }
func (v *StateVariable) DeclName() string     { return v.Name.Value }

func (f *Function) NodePos() Position    { return f.Pos }
func (f *Function) NodeEndPos() Position { return f.EndPos }
func (f *Function) DeclName() string     { return f.Name.Value }
func (f *Function) Owner() *Contract     { return f.Contract }
func (f *Function) VirtualSemantics() bool {
	return f.IsVirtual || f.IsOverride
}
func (*Function) isCallable() {}

func (m *Modifier) NodePos() Position    { return m.Pos }
func (m *Modifier) NodeEndPos() Position { return m.EndPos }
func (m *Modifier) DeclName() string     { return m.Name.Value }
func (m *Modifier) Owner() *Contract     { return m.Contract }
func (m *Modifier) VirtualSemantics() bool {
	return m.IsVirtual || m.IsOverride
}
func (*Modifier) isCallable() {}

func (m *ModifierInvocation) NodePos() Position    { return m.Pos }
func (m *ModifierInvocation) NodeEndPos() Position { return m.EndPos }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (p *Param) DeclName() string     { return p.Name.Value }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) isStmt()                {}

func (s *IfStmt) NodePos() Position    { return s.Pos }
func (s *IfStmt) NodeEndPos() Position { return s.EndPos }
func (*IfStmt) isStmt()                {}

func (s *WhileStmt) NodePos() Position    { return s.Pos }
func (s *WhileStmt) NodeEndPos() Position { return s.EndPos }
func (*WhileStmt) isStmt()                {}

func (s *ReturnStmt) NodePos() Position    { return s.Pos }
func (s *ReturnStmt) NodeEndPos() Position { return s.EndPos }
func (*ReturnStmt) isStmt()                {}

func (s *ExprStmt) NodePos() Position    { return s.Pos }
func (s *ExprStmt) NodeEndPos() Position { return s.EndPos }
func (*ExprStmt) isStmt()                {}

func (s *AssignStmt) NodePos() Position    { return s.Pos }
func (s *AssignStmt) NodeEndPos() Position { return s.EndPos }
func (*AssignStmt) isStmt()                {}

func (s *VarDeclStmt) NodePos() Position    { return s.Pos }
func (s *VarDeclStmt) NodeEndPos() Position { return s.EndPos }
func (s *VarDeclStmt) DeclName() string     { return s.Name.Value }
func (*VarDeclStmt) isStmt()                {}

func (s *PlaceholderStmt) NodePos() Position    { return s.Pos }
func (s *PlaceholderStmt) NodeEndPos() Position { return s.EndPos }
func (*PlaceholderStmt) isStmt()                {}

func (e *Identifier) NodePos() Position    { return e.Pos }
func (e *Identifier) NodeEndPos() Position { return e.EndPos }
func (*Identifier) isExpr()                {}

func (e *MemberAccess) NodePos() Position    { return e.Pos }
func (e *MemberAccess) NodeEndPos() Position { return e.EndPos }
func (*MemberAccess) isExpr()                {}

func (e *CallExpr) NodePos() Position    { return e.Pos }
func (e *CallExpr) NodeEndPos() Position { return e.EndPos }
func (*CallExpr) isExpr()                {}

func (e *BinaryExpr) NodePos() Position    { return e.Pos }
func (e *BinaryExpr) NodeEndPos() Position { return e.EndPos }
func (*BinaryExpr) isExpr()                {}

func (e *UnaryExpr) NodePos() Position    { return e.Pos }
func (e *UnaryExpr) NodeEndPos() Position { return e.EndPos }
func (*UnaryExpr) isExpr()                {}

func (e *Literal) NodePos() Position    { return e.Pos }
func (e *Literal) NodeEndPos() Position { return e.EndPos }
func (*Literal) isExpr()                {}

func (e *ParenExpr) NodePos() Position    { return e.Pos }
func (e *ParenExpr) NodeEndPos() Position { return e.EndPos }
func (*ParenExpr) isExpr()                {}

func (e *SuperExpr) NodePos() Position    { return e.Pos }
func (e *SuperExpr) NodeEndPos() Position { return e.EndPos }
func (*SuperExpr) isExpr()                {}
