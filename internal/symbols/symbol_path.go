package symbols

import "github.com/veryl-lang/semcore/internal/ident"

// SymbolPath is a qualified reference, always non-empty once constructed
// (spec.md section 3, "SymbolPath. Vec<StrId> — a qualified reference;
// always non-empty").
type SymbolPath struct {
	Segments []ident.StrId
}

// NewSymbolPath interns each segment and builds a SymbolPath.
func NewSymbolPath(segments ...string) SymbolPath {
	ids := make([]ident.StrId, len(segments))
	for i, s := range segments {
		ids[i] = ident.Intern(s)
	}
	return SymbolPath{Segments: ids}
}

// Len returns the number of segments.
func (p SymbolPath) Len() int { return len(p.Segments) }

// String renders the path as "a::b::c" for diagnostics.
func (p SymbolPath) String() string {
	out := ""
	for i, s := range p.Segments {
		if i > 0 {
			out += "::"
		}
		out += s.Text()
	}
	return out
}

// GenericSymbolPath is a path that may carry generic arguments per
// segment. GenericPath returns the un-mangled form used to look up the
// generic base; MangledPath returns the form used to look up an
// already-instantiated specialization (spec.md section 3).
type GenericSymbolPath struct {
	Segments []ident.StrId
	// Generics[i] holds the generic arguments applied at Segments[i], or
	// nil if that segment isn't generic.
	Generics [][]ident.StrId
}

// NewGenericSymbolPath builds a non-generic GenericSymbolPath from plain
// segments (the common case: most paths carry no generic arguments).
func NewGenericSymbolPath(segments ...string) GenericSymbolPath {
	ids := make([]ident.StrId, len(segments))
	for i, s := range segments {
		ids[i] = ident.Intern(s)
	}
	return GenericSymbolPath{Segments: ids, Generics: make([][]ident.StrId, len(ids))}
}

// WithGenericArgs returns a copy of p with generic arguments attached to
// the segment at index i.
func (p GenericSymbolPath) WithGenericArgs(i int, args ...string) GenericSymbolPath {
	next := GenericSymbolPath{
		Segments: append([]ident.StrId(nil), p.Segments...),
		Generics: append([][]ident.StrId(nil), p.Generics...),
	}
	ids := make([]ident.StrId, len(args))
	for j, a := range args {
		ids[j] = ident.Intern(a)
	}
	next.Generics[i] = ids
	return next
}

// GenericPath returns the plain (un-mangled) SymbolPath, ignoring any
// generic arguments — used to look up the generic base definition.
func (p GenericSymbolPath) GenericPath() SymbolPath {
	return SymbolPath{Segments: append([]ident.StrId(nil), p.Segments...)}
}

// MangledPath returns the SymbolPath form produced by mangling each
// generic segment's arguments into its name — used to look up an
// already-instantiated specialization (spec.md section 4.3, "trace_type_
// path tries the mangled (pre-instantiated) form first").
func (p GenericSymbolPath) MangledPath() SymbolPath {
	segs := make([]ident.StrId, len(p.Segments))
	for i, seg := range p.Segments {
		var args []ident.StrId
		if i < len(p.Generics) {
			args = p.Generics[i]
		}
		if len(args) == 0 {
			segs[i] = seg
			continue
		}
		mangled := seg.Text()
		for _, a := range args {
			mangled += "$" + a.Text()
		}
		segs[i] = ident.Intern(mangled)
	}
	return SymbolPath{Segments: segs}
}

// IsGeneric reports whether any segment carries generic arguments.
func (p GenericSymbolPath) IsGeneric() bool {
	for _, g := range p.Generics {
		if len(g) > 0 {
			return true
		}
	}
	return false
}

// Len returns the number of segments.
func (p GenericSymbolPath) Len() int { return len(p.Segments) }
