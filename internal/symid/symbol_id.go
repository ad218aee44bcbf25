// Package symid defines the SymbolId type shared by the AST (for
// already-resolved type references) and the symbol table (for everything
// else), kept in its own package so neither has to import the other just
// to talk about "the id of a symbol" (spec.md section 3: "id: SymbolId
// (globally unique, monotonic)").
package symid

import "sync/atomic"

// SymbolId globally and uniquely identifies a symbol for the life of the
// table. Ids are never reused (spec.md section 3 invariant 1).
type SymbolId int64

var next atomic.Int64

// New allocates the next SymbolId in the process-wide monotonic sequence.
func New() SymbolId {
	return SymbolId(next.Add(1))
}

// Invalid is the zero value, never produced by New.
const Invalid SymbolId = 0
