package symbols

import (
	"github.com/veryl-lang/semcore/internal/ident"
	"github.com/veryl-lang/semcore/internal/namespace"
	"github.com/veryl-lang/semcore/internal/token"
)

// Insert appends symbol to the name and symbol tables, returning its id.
// If a conflicting entry already exists — same namespace and a
// non-exclusive DefineContext (spec.md invariant 3) — nothing is inserted
// and ok is false (spec.md section 4.1).
func (s *SymbolTable) Insert(symbol Symbol) (id SymbolId, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.invalidateCache("insert")
	return s.insertLocked(symbol)
}

// insertLocked performs the insert without touching the cache or lock;
// callers (Insert, and table construction) are responsible for both.
func (s *SymbolTable) insertLocked(symbol Symbol) (SymbolId, bool) {
	if symbol.ID == 0 {
		symbol.ID = symIDNext()
	}
	text := symbol.Token.Text
	for _, existingID := range s.nameTable[text] {
		existing, ok := s.symbolTable[existingID]
		if !ok {
			continue
		}
		if existing.Namespace.Matched(symbol.Namespace) && !existing.DefineContext.Exclusive(symbol.DefineContext) {
			return 0, false
		}
	}
	s.nameTable[text] = append(s.nameTable[text], symbol.ID)
	s.symbolTable[symbol.ID] = symbol
	return symbol.ID, true
}

// Update overwrites a symbol's record in place and invalidates the cache
// (spec.md section 4.1, "update(symbol): overwrites in place; must
// invalidate the global resolution cache").
func (s *SymbolTable) Update(symbol Symbol) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.invalidateCache("update")
	if _, ok := s.symbolTable[symbol.ID]; !ok {
		return false
	}
	s.symbolTable[symbol.ID] = symbol
	return true
}

// Get returns the symbol for id.
func (s *SymbolTable) Get(id SymbolId) (Symbol, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sym, ok := s.symbolTable[id]
	return sym, ok
}

// AllWithName returns every symbol sharing the given interned name — the
// homonym list used as the candidate set at each resolution step
// (spec.md section 4.3-2b).
func (s *SymbolTable) AllWithName(name ident.StrId) []Symbol {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.nameTable[name]
	out := make([]Symbol, 0, len(ids))
	for _, id := range ids {
		if sym, ok := s.symbolTable[id]; ok {
			out = append(out, sym)
		}
	}
	return out
}

// GetAll returns every symbol currently stored, regardless of name —
// used by callers needing both EnumMember and EnumMemberMangled forms
// uniformly (spec.md section 9, "EnumMemberMangled").
func (s *SymbolTable) GetAll() []Symbol {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Symbol, 0, len(s.symbolTable))
	for _, sym := range s.symbolTable {
		out = append(out, sym)
	}
	return out
}

// Len returns the number of symbols currently stored.
func (s *SymbolTable) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.symbolTable)
}

// AddReference records tok as a use-site of the symbol id.
func (s *SymbolTable) AddReference(id SymbolId, tok token.Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.invalidateCache("add_reference")
	sym, ok := s.symbolTable[id]
	if !ok {
		return false
	}
	sym.References = append(sym.References, tok)
	s.symbolTable[id] = sym
	return true
}

// AddGenericInstance records instanceID as a specialization of the
// generic base id.
func (s *SymbolTable) AddGenericInstance(id SymbolId, instanceID SymbolId) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.invalidateCache("add_generic_instance")
	sym, ok := s.symbolTable[id]
	if !ok {
		return false
	}
	sym.GenericInstances = append(sym.GenericInstances, instanceID)
	s.symbolTable[id] = sym
	return true
}

// AddImportedNamespace marks ns as an imported-into scope for id, skipping
// duplicates (spec.md invariant 6: "imported never contains duplicate
// namespaces for the same symbol").
func (s *SymbolTable) AddImportedNamespace(id SymbolId, ns namespace.Namespace) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.invalidateCache("add_imported_namespace")
	sym, ok := s.symbolTable[id]
	if !ok {
		return false
	}
	for _, existing := range sym.Imported {
		if existing.Matched(ns) {
			return true
		}
	}
	sym.Imported = append(sym.Imported, ns)
	s.symbolTable[id] = sym
	return true
}

// PushOverride pushes a forced value onto id's override stack, used during
// generic specialization (spec.md section 9, "Overrides stack").
func (s *SymbolTable) PushOverride(id SymbolId, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.invalidateCache("push_override")
	sym, ok := s.symbolTable[id]
	if !ok {
		return false
	}
	sym.overrides = append(sym.overrides, value)
	s.symbolTable[id] = sym
	return true
}

// PopOverride pops the top of id's override stack. Popping an empty stack
// is a no-op. Pushing then popping yields a Symbol equal to the pre-push
// state (spec.md section 8, "Round-trips").
func (s *SymbolTable) PopOverride(id SymbolId) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.invalidateCache("pop_override")
	sym, ok := s.symbolTable[id]
	if !ok || len(sym.overrides) == 0 {
		return false
	}
	sym.overrides = sym.overrides[:len(sym.overrides)-1]
	s.symbolTable[id] = sym
	return true
}

// CurrentOverride returns the top of id's override stack, if any. A
// consumer evaluating a lazily-computed constant must consult this before
// the Evaluated cache (spec.md section 9).
func (s *SymbolTable) CurrentOverride(id SymbolId) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sym, ok := s.symbolTable[id]
	if !ok || len(sym.overrides) == 0 {
		return nil, false
	}
	return sym.overrides[len(sym.overrides)-1], true
}

// SetEvaluated caches the constant-folded value for id.
func (s *SymbolTable) SetEvaluated(id SymbolId, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.invalidateCache("set_evaluated")
	sym, ok := s.symbolTable[id]
	if !ok {
		return false
	}
	sym.evaluated = &EvaluatedValue{Value: value, Ready: true}
	s.symbolTable[id] = sym
	return true
}

// Evaluated returns id's cached constant value, consulting the override
// stack first (spec.md section 9).
func (s *SymbolTable) Evaluated(id SymbolId) (any, bool) {
	if v, ok := s.CurrentOverride(id); ok {
		return v, true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sym, ok := s.symbolTable[id]
	if !ok || sym.evaluated == nil || !sym.evaluated.Ready {
		return nil, false
	}
	return sym.evaluated.Value, true
}

// RegisterProjectLocalRename installs a per-project alias-to-real-name
// mapping, consulted as the first step of Resolve (spec.md section 4.3-1,
// section 3 GLOSSARY "Project-local rename").
func (s *SymbolTable) RegisterProjectLocalRename(project, asName, realName ident.StrId) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.invalidateCache("register_project_local_rename")
	if s.projectLocalTable[project] == nil {
		s.projectLocalTable[project] = make(map[ident.StrId]ident.StrId)
	}
	s.projectLocalTable[project][asName] = realName
}

// AddVarRef records one read or write of a variable under affiliation.
// Per spec.md section 9's open question ("get_var_ref_list and
// get_assign_list invalidate the cache in the source despite being
// read-only; this is probably defensive and can be relaxed"), this core
// takes the relaxed reading: AddVarRef mutates var-ref bookkeeping only,
// never the resolution cache, since var refs never affect what a path
// resolves to.
func (s *SymbolTable) AddVarRef(affiliation VarRefAffiliation, ref VarRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := affiliation.Owner.String()
	s.varRefList[key] = append(s.varRefList[key], ref)
}

// GetVarRefList returns the recorded var refs for affiliation.
func (s *SymbolTable) GetVarRefList(affiliation VarRefAffiliation) []VarRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]VarRef(nil), s.varRefList[affiliation.Owner.String()]...)
}
