package symbols

import (
	"github.com/google/uuid"

	"github.com/veryl-lang/semcore/internal/config"
)

// CacheSnapshot is a point-in-time read of the table's size, handed to an
// embedding compiler driver for logging/correlation across incremental
// builds. It never affects resolution semantics (spec.md SPEC_FULL section
// 4.5, "NEW": `SymbolTable.ExportSnapshot()`).
type CacheSnapshot struct {
	// ID is a fresh correlation id minted for this snapshot, not a hash of
	// its contents: two snapshots of an unchanged table still get distinct
	// IDs, the same way a driver would tag two separate incremental-build
	// log lines even when nothing changed between them.
	ID string
	// Entries is the resolution cache's current size.
	Entries int
	// Symbols is the table's total symbol count.
	Symbols int
}

// ExportSnapshot reads the table's current cache and symbol counts under
// the read lock and stamps the result with a fresh uuid.NewString()
// correlation id. Under config.IsTestMode the id is left blank instead, so
// golden-output tests comparing snapshots don't have to scrub a random
// value out of their expectations.
func (s *SymbolTable) ExportSnapshot() CacheSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id := ""
	if !config.IsTestMode {
		id = uuid.NewString()
	}
	return CacheSnapshot{
		ID:      id,
		Entries: s.cache.len(),
		Symbols: len(s.symbolTable),
	}
}
