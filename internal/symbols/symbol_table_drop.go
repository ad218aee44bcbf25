package symbols

import "github.com/veryl-lang/semcore/internal/ident"

// Drop removes every symbol whose token source is the given file path,
// prunes name_table list membership, and prunes every surviving symbol's
// references by source (spec.md section 4.1, "drop(file_path)"). It is
// the sole lifetime-shortening operation and must run to completion
// before any resolution is served over the affected state (spec.md
// section 5, "Per-file eviction").
func (s *SymbolTable) Drop(filePath ident.PathId) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.invalidateCache("drop")

	removed := make(map[SymbolId]bool)
	for id, sym := range s.symbolTable {
		if sym.Token.IsFile() && sym.Token.Source.Path == filePath {
			removed[id] = true
			delete(s.symbolTable, id)
		}
	}
	if len(removed) == 0 {
		return
	}

	for name, ids := range s.nameTable {
		kept := ids[:0:0]
		for _, id := range ids {
			if !removed[id] {
				kept = append(kept, id)
			}
		}
		if len(kept) == 0 {
			delete(s.nameTable, name)
		} else {
			s.nameTable[name] = kept
		}
	}

	for id, sym := range s.symbolTable {
		if len(sym.References) == 0 {
			continue
		}
		kept := sym.References[:0:0]
		for _, ref := range sym.References {
			if !(ref.IsFile() && ref.Source.Path == filePath) {
				kept = append(kept, ref)
			}
		}
		if len(kept) != len(sym.References) {
			sym.References = kept
			s.symbolTable[id] = sym
		}
	}
}
