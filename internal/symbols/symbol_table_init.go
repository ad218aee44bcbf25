package symbols

import (
	"github.com/veryl-lang/semcore/internal/ident"
	"github.com/veryl-lang/semcore/internal/namespace"
	"github.com/veryl-lang/semcore/internal/token"
)

// NewSymbolTable constructs an empty table with the two builtin
// namespaces ($sv, $std) and the SystemVerilog system-function set
// pre-registered (spec.md section 4.1, "Builtin namespaces ($sv, $std)
// and SystemVerilog system functions are inserted at construction time";
// section 6, "must be pre-registered as SystemFunction symbols in the
// root namespace").
func NewSymbolTable() *SymbolTable {
	s := &SymbolTable{
		nameTable:         make(map[ident.StrId][]SymbolId),
		symbolTable:       make(map[SymbolId]Symbol),
		projectLocalTable: make(map[ident.StrId]map[ident.StrId]ident.StrId),
		varRefList:        make(map[string][]VarRef),
		cache:             newResolutionCache(),
	}
	s.initBuiltinNamespaces()
	s.initSystemFunctions()
	return s
}

// initBuiltinNamespaces registers the $sv and $std roots themselves as
// Namespace-kind symbols so a bare `resolve(["$sv"], [])` succeeds the
// same way resolving any other namespace head does.
func (s *SymbolTable) initBuiltinNamespaces() {
	for _, root := range []string{namespace.SV, namespace.Std} {
		sym := Symbol{
			ID:        symIDNext(),
			Token:     token.NewBuiltinToken(root),
			Namespace: namespace.Namespace{},
			Kind:      KindNamespace,
			Public:    true,
		}
		s.insertLocked(sym)
	}
}

// initSystemFunctions pre-registers the full IEEE system-function/task set
// as SystemFunction symbols in the root (empty) namespace.
func (s *SymbolTable) initSystemFunctions() {
	root := namespace.Namespace{}
	for _, name := range token.SVSystemFunctions {
		sym := Symbol{
			ID:        symIDNext(),
			Token:     token.NewBuiltinToken(name),
			Namespace: root,
			Kind:      KindSystemFunction,
			Public:    true,
		}
		s.insertLocked(sym)
	}
}
