package symbols

// AddImport queues an import intent, drained by the next ApplyImport call
// (spec.md section 4.2).
func (s *SymbolTable) AddImport(imp Import) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.importList = append(s.importList, imp)
}

// ApplyImport drains the queued imports, resolving each and marking the
// target (or, for a wildcard, every member of the target package) as
// imported into the recorded namespace (spec.md section 4.2). Resolution
// failures and SystemVerilog targets are silently skipped, matching the
// teacher's own tolerant-import behavior.
func (s *SymbolTable) ApplyImport() {
	s.mu.Lock()
	pending := s.importList
	s.importList = nil
	s.mu.Unlock()

	for _, imp := range pending {
		result, err := s.Resolve(imp.Path, imp.Namespace)
		if err != nil {
			continue
		}
		if imp.Wildcard {
			pkg, ok := s.getPackage(result.Found)
			if !ok {
				continue
			}
			inner := pkg.InnerNamespace()
			for _, sym := range s.GetAll() {
				if sym.Namespace.Matched(inner) {
					s.AddImportedNamespace(sym.ID, imp.Namespace)
				}
			}
			continue
		}
		if result.Found.Kind == KindSystemVerilog {
			continue
		}
		s.AddImportedNamespace(result.Found.ID, imp.Namespace)
	}
}

// getPackage walks through AliasPackage/GenericInstance layers to the
// concrete Package (or ProtoPackage) symbol a wildcard import names
// (spec.md section 4.2, "walk through aliases/generic-instances (via
// get_package) to the concrete package").
func (s *SymbolTable) getPackage(sym Symbol) (Symbol, bool) {
	seen := map[SymbolId]bool{}
	for {
		if seen[sym.ID] {
			return Symbol{}, false
		}
		seen[sym.ID] = true

		switch sym.Kind {
		case KindPackage, KindProtoPackage:
			return sym, true
		case KindAliasPackage:
			alias, ok := sym.AliasPayloadOf()
			if !ok {
				return Symbol{}, false
			}
			result, err := s.Resolve(alias.Target.GenericPath(), sym.Namespace)
			if err != nil {
				return Symbol{}, false
			}
			sym = result.Found
		case KindGenericInstance:
			inst, ok := sym.GenericInstancePayloadOf()
			if !ok {
				return Symbol{}, false
			}
			base, ok := s.Get(inst.Base)
			if !ok {
				return Symbol{}, false
			}
			sym = base
		default:
			return Symbol{}, false
		}
	}
}
