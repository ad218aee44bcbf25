package resetcheck

import (
	"testing"

	"github.com/veryl-lang/semcore/internal/ast"
	"github.com/veryl-lang/semcore/internal/diagnostics"
	"github.com/veryl-lang/semcore/internal/token"
)

func lhs(names ...string) *ast.HierarchicalIdentifier {
	return &ast.HierarchicalIdentifier{
		Token:    token.NewBuiltinToken(names[0]),
		Segments: names,
	}
}

func assign(names ...string) *ast.AssignmentStatement {
	return &ast.AssignmentStatement{
		Token: token.NewBuiltinToken(names[0]),
		LHS:   lhs(names...),
	}
}

func block(stmts ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{Token: token.NewBuiltinToken("{"), Statements: stmts}
}

func codes(errs []*diagnostics.DiagnosticError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func hasCode(errs []*diagnostics.DiagnosticError, code string) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}

// A well-formed clocked process: reset signal declared, if_reset is the
// first statement, and every signal driven in the body is also driven in
// the reset branch. No diagnostics expected (spec.md section 4.6, section
// 8).
func TestCheck_WellFormed(t *testing.T) {
	af := &ast.AlwaysFfStatement{
		Token:       token.NewBuiltinToken("always_ff"),
		ResetSignal: "rst_n",
		Body: block(
			&ast.IfResetStatement{
				Token: token.NewBuiltinToken("if_reset"),
				Body:  block(assign("q")),
			},
			assign("q"),
		),
	}
	prog := &ast.Program{Modules: []*ast.ModuleDecl{{AlwaysFfs: []*ast.AlwaysFfStatement{af}}}}

	errs := Check(prog)
	if len(errs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", codes(errs))
	}
}

// A process that declares a reset signal but doesn't open with if_reset
// must report missing_if_reset (spec.md section 4.6, section 8 scenario
// "missing if_reset").
func TestCheck_MissingIfReset(t *testing.T) {
	af := &ast.AlwaysFfStatement{
		Token:       token.NewBuiltinToken("always_ff"),
		ResetSignal: "rst_n",
		Body:        block(assign("q")),
	}
	prog := &ast.Program{Modules: []*ast.ModuleDecl{{AlwaysFfs: []*ast.AlwaysFfStatement{af}}}}

	errs := Check(prog)
	if !hasCode(errs, diagnostics.ErrC001MissingIfReset) {
		t.Fatalf("expected %s, got %v", diagnostics.ErrC001MissingIfReset, codes(errs))
	}
}

// if_reset inside a process with no declared reset signal is itself an
// error, independent of coverage (spec.md section 4.6).
func TestCheck_MissingResetSignal(t *testing.T) {
	af := &ast.AlwaysFfStatement{
		Token: token.NewBuiltinToken("always_ff"),
		Body: block(
			&ast.IfResetStatement{
				Token: token.NewBuiltinToken("if_reset"),
				Body:  block(assign("q")),
			},
			assign("q"),
		),
	}
	prog := &ast.Program{Modules: []*ast.ModuleDecl{{AlwaysFfs: []*ast.AlwaysFfStatement{af}}}}

	errs := Check(prog)
	if !hasCode(errs, diagnostics.ErrC002MissingResetSignal) {
		t.Fatalf("expected %s, got %v", diagnostics.ErrC002MissingResetSignal, codes(errs))
	}
}

// A signal driven in the body but never driven in the reset branch is
// reported by name, once per signal (spec.md section 4.6, section 8
// scenario "partial reset coverage").
func TestCheck_MissingResetStatement(t *testing.T) {
	af := &ast.AlwaysFfStatement{
		Token:       token.NewBuiltinToken("always_ff"),
		ResetSignal: "rst_n",
		Body: block(
			&ast.IfResetStatement{
				Token: token.NewBuiltinToken("if_reset"),
				Body:  block(assign("q")),
			},
			assign("q"),
			assign("r"),
		),
	}
	prog := &ast.Program{Modules: []*ast.ModuleDecl{{AlwaysFfs: []*ast.AlwaysFfStatement{af}}}}

	errs := Check(prog)
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrC003MissingResetStatement {
		t.Fatalf("expected exactly one %s, got %v", diagnostics.ErrC003MissingResetStatement, codes(errs))
	}
	if want := "'r'"; !contains(errs[0].Message, want) {
		t.Fatalf("expected message to mention %s, got %q", want, errs[0].Message)
	}
}

// Driving the same uncovered signal twice in the body is reported once,
// not once per assignment (spec.md section 4.6, "dedup by name").
func TestCheck_MissingResetStatement_DedupedByName(t *testing.T) {
	af := &ast.AlwaysFfStatement{
		Token:       token.NewBuiltinToken("always_ff"),
		ResetSignal: "rst_n",
		Body: block(
			&ast.IfResetStatement{
				Token: token.NewBuiltinToken("if_reset"),
				Body:  block(),
			},
			assign("r"),
			assign("r"),
		),
	}
	prog := &ast.Program{Modules: []*ast.ModuleDecl{{AlwaysFfs: []*ast.AlwaysFfStatement{af}}}}

	errs := Check(prog)
	n := 0
	for _, e := range errs {
		if e.Code == diagnostics.ErrC003MissingResetStatement {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("expected exactly one missing_reset_statement, got %d (%v)", n, codes(errs))
	}
}

// A nested block inside the reset branch (e.g. an if/else within
// if_reset) must not close the branch early: the brace counter has to
// unwind past the nested block before in_if_reset clears (spec.md section
// 4.6, "Left/right brace" state machine).
func TestCheck_NestedBlockInsideIfReset(t *testing.T) {
	af := &ast.AlwaysFfStatement{
		Token:       token.NewBuiltinToken("always_ff"),
		ResetSignal: "rst_n",
		Body: block(
			&ast.IfResetStatement{
				Token: token.NewBuiltinToken("if_reset"),
				Body:  block(block(assign("q"))),
			},
			assign("q"),
		),
	}
	prog := &ast.Program{Modules: []*ast.ModuleDecl{{AlwaysFfs: []*ast.AlwaysFfStatement{af}}}}

	errs := Check(prog)
	if len(errs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", codes(errs))
	}
}

// Each always_ff process is independent: state from one must not leak
// into the next (spec.md section 9, "Mutable traversal context" applied
// per-process here rather than per-query).
func TestCheck_IndependentAcrossProcesses(t *testing.T) {
	good := &ast.AlwaysFfStatement{
		Token:       token.NewBuiltinToken("always_ff"),
		ResetSignal: "rst_n",
		Body: block(
			&ast.IfResetStatement{Token: token.NewBuiltinToken("if_reset"), Body: block(assign("q"))},
			assign("q"),
		),
	}
	bad := &ast.AlwaysFfStatement{
		Token:       token.NewBuiltinToken("always_ff"),
		ResetSignal: "rst_n",
		Body:        block(assign("r")),
	}
	prog := &ast.Program{Modules: []*ast.ModuleDecl{{AlwaysFfs: []*ast.AlwaysFfStatement{good, bad}}}}

	errs := Check(prog)
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrC001MissingIfReset {
		t.Fatalf("expected exactly one missing_if_reset from the second process, got %v", codes(errs))
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
