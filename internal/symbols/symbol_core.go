// Package symbols implements the Symbol Table and Name Resolver: the
// global, namespaced dictionary of declared identifiers described in
// spec.md section 1, including qualified-path resolution through type
// aliases, generic instantiations, modport ports, interface instances and
// imports, visibility gating, and per-file eviction.
//
// The split across files mirrors the teacher repository's own
// internal/symbols package (symbol_table_core.go / _operations.go /
// _resolution.go / ... — one focused file per concern instead of one
// monolith).
package symbols

import (
	"github.com/veryl-lang/semcore/internal/ast"
	"github.com/veryl-lang/semcore/internal/namespace"
	"github.com/veryl-lang/semcore/internal/symid"
	"github.com/veryl-lang/semcore/internal/token"
	"github.com/veryl-lang/semcore/internal/typeref"
)

// SymbolId re-exports symid.SymbolId so callers don't need a second import
// for the single most common type in this package.
type SymbolId = symid.SymbolId

// symIDNext allocates the next globally unique SymbolId.
func symIDNext() SymbolId { return symid.New() }

// Kind tags the payload a Symbol carries (spec.md section 3, SymbolKind).
type Kind int

const (
	KindModule Kind = iota
	KindProtoModule
	KindAliasModule

	KindInterface
	KindAliasInterface

	KindPackage
	KindProtoPackage
	KindAliasPackage

	KindVariable
	KindParameter
	KindProtoConst

	KindPort

	KindTypeDef
	KindProtoTypeDef

	KindStruct
	KindUnion
	KindStructMember
	KindUnionMember

	KindEnum
	KindEnumMember
	KindEnumMemberMangled

	KindModport
	KindModportFunctionMember
	KindModportVariableMember

	KindFunction
	KindProtoFunction
	KindSystemFunction

	KindInstance

	KindGenericInstance
	KindGenericParameter

	KindSystemVerilog
	KindNamespace
	KindBlock
	KindGenvar
	KindClockDomain
	KindTest
)

// String renders a Kind for diagnostics and test failures.
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "Module"
	case KindProtoModule:
		return "ProtoModule"
	case KindAliasModule:
		return "AliasModule"
	case KindInterface:
		return "Interface"
	case KindAliasInterface:
		return "AliasInterface"
	case KindPackage:
		return "Package"
	case KindProtoPackage:
		return "ProtoPackage"
	case KindAliasPackage:
		return "AliasPackage"
	case KindVariable:
		return "Variable"
	case KindParameter:
		return "Parameter"
	case KindProtoConst:
		return "ProtoConst"
	case KindPort:
		return "Port"
	case KindTypeDef:
		return "TypeDef"
	case KindProtoTypeDef:
		return "ProtoTypeDef"
	case KindStruct:
		return "Struct"
	case KindUnion:
		return "Union"
	case KindStructMember:
		return "StructMember"
	case KindUnionMember:
		return "UnionMember"
	case KindEnum:
		return "Enum"
	case KindEnumMember:
		return "EnumMember"
	case KindEnumMemberMangled:
		return "EnumMemberMangled"
	case KindModport:
		return "Modport"
	case KindModportFunctionMember:
		return "ModportFunctionMember"
	case KindModportVariableMember:
		return "ModportVariableMember"
	case KindFunction:
		return "Function"
	case KindProtoFunction:
		return "ProtoFunction"
	case KindSystemFunction:
		return "SystemFunction"
	case KindInstance:
		return "Instance"
	case KindGenericInstance:
		return "GenericInstance"
	case KindGenericParameter:
		return "GenericParameter"
	case KindSystemVerilog:
		return "SystemVerilog"
	case KindNamespace:
		return "Namespace"
	case KindBlock:
		return "Block"
	case KindGenvar:
		return "Genvar"
	case KindClockDomain:
		return "ClockDomain"
	case KindTest:
		return "Test"
	default:
		return "Unknown"
	}
}

// BoundKind distinguishes the three shapes a GenericParameter's bound can
// take (spec.md section 3, SymbolKind.GenericParameter).
type BoundKind int

const (
	BoundUnbounded BoundKind = iota
	BoundInst
	BoundProto
)

// GenericBound is the bound attached to a GenericParameter symbol.
type GenericBound struct {
	Kind BoundKind
	Path GenericSymbolPath // meaningful only for BoundInst/BoundProto
}

// AliasPayload is carried by AliasModule/AliasInterface/AliasPackage
// symbols: the path they resolve to.
type AliasPayload struct {
	Target GenericSymbolPath
}

// TypedPayload is carried by every type-bearing symbol kind: Variable,
// Parameter, ProtoConst, TypeDef, ProtoTypeDef, StructMember, UnionMember
// (spec.md section 4.3-2f, "Type-bearing symbols").
type TypedPayload struct {
	Type typeref.TypeKind
}

// PortPayload is carried by Port symbols.
type PortPayload struct {
	Direction ast.Direction
	Type      typeref.TypeKind
}

// InstancePayload is carried by Instance symbols: the (possibly generic)
// type they instantiate.
type InstancePayload struct {
	TypeName GenericSymbolPath
}

// GenericInstancePayload is carried by GenericInstance symbols: a back
// reference to the generic base they specialize.
type GenericInstancePayload struct {
	Base SymbolId
}

// GenericParameterPayload is carried by GenericParameter symbols.
type GenericParameterPayload struct {
	Bound GenericBound
}

// ModportMemberPayload is carried by ModportVariableMember/
// ModportFunctionMember symbols: the direction the modport view exposes.
type ModportMemberPayload struct {
	Direction ast.Direction
}

// EvaluatedValue is the lazily-computed constant-folding result cached on
// a Symbol, with an Overrides stack on top of it for elaboration-time
// specialization (spec.md section 9, "Overrides stack").
type EvaluatedValue struct {
	Value any
	Ready bool
}

// Symbol is the tagged record of one declared entity (spec.md section 3).
// Conceptually immutable; in practice mutated only through the
// SymbolTable's Update/AddReference/AddGenericInstance/AddImported*/
// Push|PopOverride methods (spec.md, "Lifecycle").
type Symbol struct {
	ID        SymbolId
	Token     token.Token
	Namespace namespace.Namespace
	Kind      Kind
	Payload   any

	Public     bool
	Imported   []namespace.Namespace
	References []token.Token

	GenericInstances []SymbolId

	DocComment string

	evaluated *EvaluatedValue
	overrides []any

	// DefineContext records which conditional-generation branch this
	// declaration belongs to (spec.md section 3 invariant 3).
	DefineContext namespace.DefineContext
}

// InnerNamespace is the symbol's own scope viewed as a namespace: its
// declaring namespace with its own name appended (spec.md GLOSSARY,
// "Inner namespace").
func (s Symbol) InnerNamespace() namespace.Namespace {
	return s.Namespace.Push(s.Token.Text)
}

// TypedPayloadOf type-asserts Payload as TypedPayload, returning the zero
// value and false if Payload isn't one (or is nil).
func (s Symbol) TypedPayloadOf() (TypedPayload, bool) {
	p, ok := s.Payload.(TypedPayload)
	return p, ok
}

// PortPayloadOf type-asserts Payload as PortPayload.
func (s Symbol) PortPayloadOf() (PortPayload, bool) {
	p, ok := s.Payload.(PortPayload)
	return p, ok
}

// AliasPayloadOf type-asserts Payload as AliasPayload.
func (s Symbol) AliasPayloadOf() (AliasPayload, bool) {
	p, ok := s.Payload.(AliasPayload)
	return p, ok
}

// InstancePayloadOf type-asserts Payload as InstancePayload.
func (s Symbol) InstancePayloadOf() (InstancePayload, bool) {
	p, ok := s.Payload.(InstancePayload)
	return p, ok
}

// GenericInstancePayloadOf type-asserts Payload as GenericInstancePayload.
func (s Symbol) GenericInstancePayloadOf() (GenericInstancePayload, bool) {
	p, ok := s.Payload.(GenericInstancePayload)
	return p, ok
}

// GenericParameterPayloadOf type-asserts Payload as
// GenericParameterPayload.
func (s Symbol) GenericParameterPayloadOf() (GenericParameterPayload, bool) {
	p, ok := s.Payload.(GenericParameterPayload)
	return p, ok
}

// ModportMemberPayloadOf type-asserts Payload as ModportMemberPayload.
func (s Symbol) ModportMemberPayloadOf() (ModportMemberPayload, bool) {
	p, ok := s.Payload.(ModportMemberPayload)
	return p, ok
}

// IsTypeDefKind reports whether k is TypeDef or ProtoTypeDef.
func IsTypeDefKind(k Kind) bool { return k == KindTypeDef || k == KindProtoTypeDef }

// isTypeBearing mirrors spec.md section 4.3-2f's "Type-bearing symbols"
// list: the kinds that carry a TypedPayload and are traced via
// trace_type_kind during descent.
func isTypeBearing(k Kind) bool {
	switch k {
	case KindVariable, KindStructMember, KindUnionMember, KindParameter, KindTypeDef, KindProtoTypeDef, KindProtoConst:
		return true
	default:
		return false
	}
}
