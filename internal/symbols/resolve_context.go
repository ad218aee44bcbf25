package symbols

import (
	"github.com/veryl-lang/semcore/internal/ident"
	"github.com/veryl-lang/semcore/internal/namespace"
)

// ResolveContext is the per-query mutable traversal state threaded through
// one call to Resolve (spec.md section 4.3, "Context (per-query state)").
// It is never shared across calls: each Resolve starts from a fresh zero
// value (spec.md section 9, "Mutable traversal context").
type ResolveContext struct {
	Namespace namespace.Namespace

	// GenericNamespaceMap maps a generic base's name to the instance name
	// substituted for it in the final reported namespace (spec.md section
	// 4.3 step 3, "rewrite its reported namespace via generic_namespace_map
	// so diagnostics mention the instance, not the base").
	GenericNamespaceMap map[ident.StrId]ident.StrId

	// Inner is true once descent has moved into a found symbol's own
	// scope; it switches candidate qualification from Included to Matched
	// (spec.md section 4.3-2b).
	Inner bool
	// OtherPrj is true once the first segment failed to match anything
	// and was treated as an implicit external-project namespace.
	OtherPrj bool
	// SvMember is true once descent has crossed into an opaque
	// SystemVerilog type; all further segments synthesize a single
	// untracked SystemVerilog symbol (spec.md section 4.3-2a).
	SvMember bool
	// Imported records whether any segment qualified only through an
	// imported namespace rather than direct containment.
	Imported bool

	// LastFound is the most recently resolved symbol, used both for
	// diagnostic context on failure and to classify the "prior segment"
	// for visibility gating (spec.md section 4.4).
	LastFound *Symbol
	// LastFoundType is the id of the symbol the previous segment's type
	// (or alias/generic target) traced to, consulted by classifyPrior to
	// tell an Instance/TypeDef/GenericInstance/GenericParameter apart from
	// what it ultimately resolves to.
	LastFoundType SymbolId
}

func newResolveContext(ns namespace.Namespace) *ResolveContext {
	return &ResolveContext{
		Namespace:           ns,
		GenericNamespaceMap: make(map[ident.StrId]ident.StrId),
	}
}
