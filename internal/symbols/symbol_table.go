package symbols

import (
	"sync"

	"github.com/veryl-lang/semcore/internal/ident"
	"github.com/veryl-lang/semcore/internal/namespace"
	"github.com/veryl-lang/semcore/internal/token"
)

// VarRefAffiliation groups recorded variable reads/writes by the namespace
// that owns them — typically the enclosing module/function (spec.md
// section 3, "var_ref_list: Map<VarRefAffiliation, List<VarRef>>").
type VarRefAffiliation struct {
	Owner namespace.Namespace
}

// VarRef is one recorded read or write of a variable, kept for downstream
// assignment analysis (the reset checker is one consumer, but the
// var-ref list itself is a general-purpose fact base other passes may
// also use — spec.md section 3).
type VarRef struct {
	Name    ident.StrId
	Token   token.Token
	IsWrite bool
}

// Import is a queued import intent, drained by ApplyImport (spec.md
// section 4.2).
type Import struct {
	Path      SymbolPath
	Namespace namespace.Namespace
	Wildcard  bool
}

// SymbolTable is the process-wide (or, for testability, explicitly owned
// — spec.md section 9 "Process-wide singleton") namespaced dictionary of
// declared identifiers. Zero value is not usable; construct with
// NewSymbolTable.
type SymbolTable struct {
	mu sync.RWMutex

	nameTable         map[ident.StrId][]SymbolId
	symbolTable       map[SymbolId]Symbol
	projectLocalTable map[ident.StrId]map[ident.StrId]ident.StrId

	varRefList map[string][]VarRef // keyed by VarRefAffiliation.Owner.String()
	importList []Import

	cache resolutionCache

	logger traceLogger
}
