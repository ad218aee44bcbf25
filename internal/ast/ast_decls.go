package ast

import (
	"github.com/veryl-lang/semcore/internal/token"
	"github.com/veryl-lang/semcore/internal/typeref"
)

// Direction is a port's data-flow direction (spec.md section 3,
// SymbolKind.Port).
type Direction int

const (
	DirInput Direction = iota
	DirOutput
	DirInout
	DirRef
	DirModport
	DirInterface
)

// QualifiedName is the AST-level representation of a (possibly generic)
// qualified path, e.g. `pkg::Vector#(Int)`. Symbol collection (out of
// scope here) is what turns this into a resolved symbols.GenericSymbolPath;
// this shape is only what the parser hands us.
type QualifiedName struct {
	Segments    []string
	GenericArgs [][]string // GenericArgs[i] are the generic arguments applied to Segments[i], if any.
}

// ModuleDecl is a `module` declaration.
type ModuleDecl struct {
	Token     token.Token
	Name      string
	Public    bool
	Ports     []*PortDecl
	Params    []*ParameterDecl
	Variables []*VariableDecl
	Instances []*InstanceDecl
	Functions []*FunctionDecl
	AlwaysFfs []*AlwaysFfStatement
}

func (m *ModuleDecl) TokenLiteral() string  { return m.Token.TextOf() }
func (m *ModuleDecl) GetToken() token.Token { return m.Token }
func (m *ModuleDecl) declarationNode()      {}
func (m *ModuleDecl) Accept(v Visitor) {
	v.BeforeModule(m)
	for _, p := range m.Ports {
		p.Accept(v)
	}
	for _, p := range m.Params {
		p.Accept(v)
	}
	for _, vr := range m.Variables {
		vr.Accept(v)
	}
	for _, i := range m.Instances {
		i.Accept(v)
	}
	for _, f := range m.Functions {
		f.Accept(v)
	}
	for _, a := range m.AlwaysFfs {
		a.Accept(v)
	}
	v.AfterModule(m)
}

// InterfaceDecl is an `interface` declaration.
type InterfaceDecl struct {
	Token    token.Token
	Name     string
	Public   bool
	Modports []*ModportDecl
	Variables []*VariableDecl
}

func (i *InterfaceDecl) TokenLiteral() string  { return i.Token.TextOf() }
func (i *InterfaceDecl) GetToken() token.Token { return i.Token }
func (i *InterfaceDecl) declarationNode()      {}
func (i *InterfaceDecl) Accept(v Visitor) {
	v.BeforeInterface(i)
	for _, m := range i.Modports {
		m.Accept(v)
	}
	for _, vr := range i.Variables {
		vr.Accept(v)
	}
	v.AfterInterface(i)
}

// PackageDecl is a `package` declaration.
type PackageDecl struct {
	Token     token.Token
	Name      string
	Public    bool
	Params    []*ParameterDecl
	TypeDefs  []*TypeDefDecl
	Structs   []*StructDecl
	Unions    []*UnionDecl
	Enums     []*EnumDecl
	Functions []*FunctionDecl
}

func (p *PackageDecl) TokenLiteral() string  { return p.Token.TextOf() }
func (p *PackageDecl) GetToken() token.Token { return p.Token }
func (p *PackageDecl) declarationNode()      {}
func (p *PackageDecl) Accept(v Visitor) {
	v.BeforePackage(p)
	for _, prm := range p.Params {
		prm.Accept(v)
	}
	for _, t := range p.TypeDefs {
		t.Accept(v)
	}
	for _, s := range p.Structs {
		s.Accept(v)
	}
	for _, u := range p.Unions {
		u.Accept(v)
	}
	for _, e := range p.Enums {
		e.Accept(v)
	}
	for _, f := range p.Functions {
		f.Accept(v)
	}
	v.AfterPackage(p)
}

// PortDecl is a module port declaration.
type PortDecl struct {
	Token     token.Token
	Name      string
	Direction Direction
	Type      typeref.TypeKind
}

func (p *PortDecl) TokenLiteral() string  { return p.Token.TextOf() }
func (p *PortDecl) GetToken() token.Token { return p.Token }
func (p *PortDecl) declarationNode()      {}
func (p *PortDecl) Accept(v Visitor)      { v.BeforePort(p); v.AfterPort(p) }

// VariableDecl is a plain variable declaration.
type VariableDecl struct {
	Token token.Token
	Name  string
	Type  typeref.TypeKind
}

func (vd *VariableDecl) TokenLiteral() string  { return vd.Token.TextOf() }
func (vd *VariableDecl) GetToken() token.Token { return vd.Token }
func (vd *VariableDecl) declarationNode()      {}
func (vd *VariableDecl) Accept(v Visitor)      { v.BeforeVariable(vd); v.AfterVariable(vd) }

// ParameterDecl is a `param`/`localparam` declaration.
type ParameterDecl struct {
	Token token.Token
	Name  string
	Type  typeref.TypeKind
}

func (pd *ParameterDecl) TokenLiteral() string  { return pd.Token.TextOf() }
func (pd *ParameterDecl) GetToken() token.Token { return pd.Token }
func (pd *ParameterDecl) declarationNode()      {}
func (pd *ParameterDecl) Accept(v Visitor)      { v.BeforeParameter(pd); v.AfterParameter(pd) }

// InstanceDecl is a module/interface instantiation.
type InstanceDecl struct {
	Token    token.Token
	Name     string
	TypeName QualifiedName
}

func (id *InstanceDecl) TokenLiteral() string  { return id.Token.TextOf() }
func (id *InstanceDecl) GetToken() token.Token { return id.Token }
func (id *InstanceDecl) declarationNode()      {}
func (id *InstanceDecl) Accept(v Visitor)      { v.BeforeInstance(id); v.AfterInstance(id) }

// TypeDefDecl is a `type` alias declaration.
type TypeDefDecl struct {
	Token token.Token
	Name  string
	Type  typeref.TypeKind
}

func (td *TypeDefDecl) TokenLiteral() string  { return td.Token.TextOf() }
func (td *TypeDefDecl) GetToken() token.Token { return td.Token }
func (td *TypeDefDecl) declarationNode()      {}
func (td *TypeDefDecl) Accept(v Visitor)      { v.BeforeTypeDef(td); v.AfterTypeDef(td) }

// ModportMember is one member of a modport list: either a variable view or
// a function view.
type ModportMember struct {
	Name      string
	Direction Direction
	IsFunction bool
}

// ModportDecl is a `modport` declaration inside an interface.
type ModportDecl struct {
	Token   token.Token
	Name    string
	Members []ModportMember
}

func (md *ModportDecl) TokenLiteral() string  { return md.Token.TextOf() }
func (md *ModportDecl) GetToken() token.Token { return md.Token }
func (md *ModportDecl) declarationNode()      {}
func (md *ModportDecl) Accept(v Visitor)      { v.BeforeModport(md); v.AfterModport(md) }

// StructMember is a single field of a struct.
type StructMember struct {
	Name string
	Type typeref.TypeKind
}

// StructDecl is a `struct` declaration.
type StructDecl struct {
	Token   token.Token
	Name    string
	Members []StructMember
}

func (sd *StructDecl) TokenLiteral() string  { return sd.Token.TextOf() }
func (sd *StructDecl) GetToken() token.Token { return sd.Token }
func (sd *StructDecl) declarationNode()      {}
func (sd *StructDecl) Accept(v Visitor)      { v.BeforeStruct(sd); v.AfterStruct(sd) }

// UnionMember is a single arm of a union.
type UnionMember struct {
	Name string
	Type typeref.TypeKind
}

// UnionDecl is a `union` declaration.
type UnionDecl struct {
	Token   token.Token
	Name    string
	Members []UnionMember
}

func (ud *UnionDecl) TokenLiteral() string  { return ud.Token.TextOf() }
func (ud *UnionDecl) GetToken() token.Token { return ud.Token }
func (ud *UnionDecl) declarationNode()      {}
func (ud *UnionDecl) Accept(v Visitor)      { v.BeforeUnion(ud); v.AfterUnion(ud) }

// EnumDecl is an `enum` declaration.
type EnumDecl struct {
	Token   token.Token
	Name    string
	Members []string
}

func (ed *EnumDecl) TokenLiteral() string  { return ed.Token.TextOf() }
func (ed *EnumDecl) GetToken() token.Token { return ed.Token }
func (ed *EnumDecl) declarationNode()      {}
func (ed *EnumDecl) Accept(v Visitor)      { v.BeforeEnum(ed); v.AfterEnum(ed) }

// FunctionDecl is a `function` declaration.
type FunctionDecl struct {
	Token token.Token
	Name  string
}

func (fd *FunctionDecl) TokenLiteral() string  { return fd.Token.TextOf() }
func (fd *FunctionDecl) GetToken() token.Token { return fd.Token }
func (fd *FunctionDecl) declarationNode()      {}
func (fd *FunctionDecl) Accept(v Visitor)      { v.BeforeFunction(fd); v.AfterFunction(fd) }
