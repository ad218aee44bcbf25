// Package semcore is the thin facade an embedding compiler driver (parser,
// CLI, LSP) wires against: one SymbolTable plus the always_ff reset
// checker, mirroring the teacher repository's own analyzer.New/
// RegisterBuiltins/Analyze shape (SPEC_FULL.md section 0).
package semcore

import (
	"github.com/veryl-lang/semcore/internal/ast"
	"github.com/veryl-lang/semcore/internal/diagnostics"
	"github.com/veryl-lang/semcore/internal/resetcheck"
	"github.com/veryl-lang/semcore/internal/symbols"
)

// Core wires a SymbolTable to the diagnostic passes that consume it. A
// zero Core is not usable; construct with New.
type Core struct {
	Symbols *symbols.SymbolTable
}

// New builds a Core around a freshly constructed SymbolTable ($sv/$std and
// the SystemVerilog system-function set already registered).
func New() *Core {
	return &Core{Symbols: symbols.NewSymbolTable()}
}

// Analyze runs every structural diagnostic pass over program and returns
// the combined, deduplicated, source-ordered diagnostics. Name resolution
// itself isn't a pass over the AST — it's driven on demand by Resolve
// calls an embedding host makes as it walks its own tree — so Analyze
// today only runs the reset checker; a host wanting resolution diagnostics
// calls Core.Symbols.Resolve directly and reports ResolveError itself.
func (c *Core) Analyze(program *ast.Program) []*diagnostics.DiagnosticError {
	return resetcheck.Check(program)
}

// Snapshot reports the symbol table's current size, tagged with a fresh
// correlation id, for a host to log across incremental builds
// (SPEC_FULL.md section 4.5 "NEW").
func (c *Core) Snapshot() symbols.CacheSnapshot {
	return c.Symbols.ExportSnapshot()
}
