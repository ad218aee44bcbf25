package semcore

import (
	"testing"

	"github.com/veryl-lang/semcore/internal/ast"
	"github.com/veryl-lang/semcore/internal/diagnostics"
	"github.com/veryl-lang/semcore/internal/namespace"
	"github.com/veryl-lang/semcore/internal/symbols"
	"github.com/veryl-lang/semcore/internal/token"
)

// New wires a SymbolTable that already has $sv/$std and the
// SystemVerilog system-function set pre-registered.
func TestNew_PreregistersBuiltins(t *testing.T) {
	c := New()
	if c.Symbols == nil {
		t.Fatal("Symbols is nil")
	}
	if _, err := c.Symbols.Resolve(symbols.NewSymbolPath("$sv"), namespace.Namespace{}); err != nil {
		t.Fatalf("expected $sv to already be registered, got %v", err)
	}
}

// Analyze runs the reset checker over a program and surfaces its
// diagnostics.
func TestCore_Analyze_RunsResetChecker(t *testing.T) {
	c := New()
	af := &ast.AlwaysFfStatement{
		Token:       token.NewBuiltinToken("always_ff"),
		ResetSignal: "rst_n",
		Body: &ast.BlockStatement{
			Token: token.NewBuiltinToken("{"),
		},
	}
	prog := &ast.Program{Modules: []*ast.ModuleDecl{{AlwaysFfs: []*ast.AlwaysFfStatement{af}}}}

	errs := c.Analyze(prog)
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrC001MissingIfReset {
		t.Fatalf("expected one missing_if_reset, got %v", errs)
	}
}

// Snapshot counts the pre-registered builtins even before any project
// symbol is inserted.
func TestCore_Snapshot_TracksTableSize(t *testing.T) {
	c := New()
	snap := c.Snapshot()
	if snap.Symbols == 0 {
		t.Fatal("expected the pre-registered builtins to be counted")
	}
}
