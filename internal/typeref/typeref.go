// Package typeref models spec.md section 3's TypeKind: the type carried by
// type-bearing symbols (Variable, Parameter, Port, TypeDef, struct/union
// members). It is its own package so both internal/ast (which attaches a
// TypeKind to declaration nodes) and internal/symbols (which traces
// through TypeKinds during resolution) can depend on it without an import
// cycle.
package typeref

import "github.com/veryl-lang/semcore/internal/ident"

// Category distinguishes a user-defined (resolvable) type reference from a
// primitive/abstract one that has no members to descend into.
type Category int

const (
	// UserDefined types carry a qualified path resolved against the
	// symbol table (spec.md section 4.3-2f).
	UserDefined Category = iota
	// Primitive covers built-in scalar types (logic, bit, int, etc.):
	// further descent always fails with NotFound.
	Primitive
	// Abstract covers other non-resolvable type shapes (e.g. unsized
	// vectors of a primitive, string, void): also no members.
	Abstract
)

// TypeKind is the tagged type reference attached to type-bearing symbols.
type TypeKind struct {
	Category Category

	// Path is the qualified name for a UserDefined reference, e.g.
	// ["PackageA", "StructB"].
	Path []ident.StrId

	// Symbol is filled in once resolve_user_defined has back-filled the
	// cross-reference (spec.md section 2, data-flow). Zero until then.
	Symbol int64 // holds a symid.SymbolId; stored untyped to avoid the dependency.

	// Name is a human-readable label for Primitive/Abstract categories
	// (e.g. "logic", "bit[7:0]", "string"), used only for diagnostics.
	Name string
}

// NewUserDefined builds a TypeKind referring to an unresolved qualified
// path.
func NewUserDefined(path ...ident.StrId) TypeKind {
	return TypeKind{Category: UserDefined, Path: append([]ident.StrId(nil), path...)}
}

// NewPrimitive builds a TypeKind for a primitive scalar type (logic, bit,
// int, ...) with no resolvable members.
func NewPrimitive(name string) TypeKind {
	return TypeKind{Category: Primitive, Name: name}
}

// NewAbstract builds a TypeKind for a non-resolvable composite shape (an
// unsized vector of a primitive, string, void, ...) with no resolvable
// members either.
func NewAbstract(name string) TypeKind {
	return TypeKind{Category: Abstract, Name: name}
}

// HasMembers reports whether this TypeKind can be descended into.
func (t TypeKind) HasMembers() bool {
	return t.Category == UserDefined
}

// HeadSegment returns the first path segment of a UserDefined TypeKind, or
// the zero StrId if not UserDefined or empty.
func (t TypeKind) HeadSegment() ident.StrId {
	if t.Category != UserDefined || len(t.Path) == 0 {
		return ident.StrId(0)
	}
	return t.Path[0]
}
