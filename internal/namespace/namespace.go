// Package namespace implements the ordered segment sequences that locate
// every declaration in the symbol table (spec.md section 3, "Namespace").
package namespace

import "github.com/veryl-lang/semcore/internal/ident"

// Builtin namespace heads (spec.md section 3 invariant 4: the first
// segment of every non-builtin namespace is a project identifier;
// builtin namespaces are $sv and $std).
const (
	SV  = "$sv"
	Std = "$std"
)

// Namespace is an ordered sequence of interned name segments, e.g.
// ["prj", "PackageA", "StructA"].
type Namespace struct {
	Paths []ident.StrId
}

// New builds a Namespace from plain-text segments, interning each one.
func New(segments ...string) Namespace {
	ns := Namespace{Paths: make([]ident.StrId, len(segments))}
	for i, s := range segments {
		ns.Paths[i] = ident.Intern(s)
	}
	return ns
}

// FromIds builds a Namespace directly from already-interned segments.
func FromIds(ids ...ident.StrId) Namespace {
	return Namespace{Paths: append([]ident.StrId(nil), ids...)}
}

// Push returns a new Namespace with segment appended. Namespace values are
// treated as immutable by callers; Push/Pop never mutate the receiver's
// backing array in place.
func (n Namespace) Push(segment ident.StrId) Namespace {
	next := make([]ident.StrId, len(n.Paths)+1)
	copy(next, n.Paths)
	next[len(n.Paths)] = segment
	return Namespace{Paths: next}
}

// Pop returns a new Namespace with the last segment removed. Popping an
// empty Namespace returns an empty Namespace.
func (n Namespace) Pop() Namespace {
	if len(n.Paths) == 0 {
		return n
	}
	return Namespace{Paths: append([]ident.StrId(nil), n.Paths[:len(n.Paths)-1]...)}
}

// Depth returns the number of segments.
func (n Namespace) Depth() int { return len(n.Paths) }

// Empty reports whether the namespace has no segments.
func (n Namespace) Empty() bool { return len(n.Paths) == 0 }

// Head returns the first segment (the project/builtin root), or the zero
// StrId if empty.
func (n Namespace) Head() ident.StrId {
	if len(n.Paths) == 0 {
		return ident.StrId(0)
	}
	return n.Paths[0]
}

// Last returns the final segment, or the zero StrId if empty.
func (n Namespace) Last() ident.StrId {
	if len(n.Paths) == 0 {
		return ident.StrId(0)
	}
	return n.Paths[len(n.Paths)-1]
}

// Matched reports whether self and other name exactly the same scope:
// equal length and pairwise-equal segments (spec.md section 3, "exact
// containment").
func (n Namespace) Matched(other Namespace) bool {
	if len(n.Paths) != len(other.Paths) {
		return false
	}
	for i := range n.Paths {
		if n.Paths[i] != other.Paths[i] {
			return false
		}
	}
	return true
}

// Included reports whether self is a prefix of other (or equal to it),
// with the two sharing the same project head (spec.md section 3).
func (n Namespace) Included(other Namespace) bool {
	if len(n.Paths) == 0 || len(other.Paths) == 0 {
		return len(n.Paths) == 0
	}
	if n.Paths[0] != other.Paths[0] {
		return false
	}
	if len(n.Paths) > len(other.Paths) {
		return false
	}
	for i := range n.Paths {
		if n.Paths[i] != other.Paths[i] {
			return false
		}
	}
	return true
}

// Replace substitutes segments via m, returning a new Namespace. Used to
// rewrite a generic base name to its instance name in reported namespaces
// (spec.md section 3).
func (n Namespace) Replace(m map[ident.StrId]ident.StrId) Namespace {
	if len(m) == 0 {
		return n
	}
	next := make([]ident.StrId, len(n.Paths))
	for i, seg := range n.Paths {
		if repl, ok := m[seg]; ok {
			next[i] = repl
		} else {
			next[i] = seg
		}
	}
	return Namespace{Paths: next}
}

// String renders the namespace as "a::b::c", matching the reporting format
// used throughout spec.md's worked examples.
func (n Namespace) String() string {
	out := ""
	for i, seg := range n.Paths {
		if i > 0 {
			out += "::"
		}
		out += seg.Text()
	}
	return out
}

// Equal reports pairwise segment equality (alias for Matched, offered for
// readability at call sites that aren't specifically about containment).
func (n Namespace) Equal(other Namespace) bool { return n.Matched(other) }

// DefineContext records the conditional-generation branch a declaration
// arose under, e.g. a Veryl `if` / `for` generate block. Two definitions
// under the same block but different branch selectors can never both be
// live at elaboration time, so the symbol table allows both to share a
// namespace (spec.md section 3 invariant 3).
type DefineContext struct {
	// Block identifies the generate construct (0 means "no conditional
	// context" — ordinary top-level or block-scoped declarations).
	Block ident.StrId
	// Branch identifies which arm of Block this declaration came from.
	// Two DefineContexts with the same Block and different Branch are
	// mutually exclusive.
	Branch int
}

// Exclusive reports whether c and other describe mutually exclusive
// conditional-generation branches (spec.md section 3, "define_context
// .exclusive(other)").
func (c DefineContext) Exclusive(other DefineContext) bool {
	if c.Block == 0 || other.Block == 0 {
		return false
	}
	return c.Block == other.Block && c.Branch != other.Branch
}
