// Package resetcheck implements the always_ff reset-coverage checker: a
// structural AST walk that verifies every signal driven inside a clocked
// process is also driven in its reset branch (spec.md section 4.6). It is
// one walker.Visitor implementation among the analyzer's broader
// diagnostic surface (spec.md section 6, "Walker contract").
package resetcheck

import (
	"github.com/veryl-lang/semcore/internal/ast"
	"github.com/veryl-lang/semcore/internal/diagnostics"
	"github.com/veryl-lang/semcore/internal/walker"
)

// Checker walks a Program collecting lefthand-side writes inside each
// always_ff process and comparing the full set against what the reset
// branch alone covers (spec.md section 4.6).
//
// Checker embeds walker.BaseVisitor and overrides only the hooks it needs
// — the rest of the grammar passes through as no-ops, the same shape the
// teacher's own analyzer passes use for the Visit cases they don't care
// about.
type Checker struct {
	walker.BaseVisitor

	errors walker.ErrorAccumulator

	inAlwaysFf   bool
	inIfReset    bool
	ifResetBrace int
	ifResetExist bool

	allLHS   []*ast.HierarchicalIdentifier
	resetLHS []*ast.HierarchicalIdentifier

	currentProcess *ast.AlwaysFfStatement
}

// New builds an empty Checker.
func New() *Checker {
	return &Checker{}
}

// Check runs the checker over program and returns the accumulated,
// deduplicated, source-ordered diagnostics (spec.md section 4.6,
// "Failure semantics: all three errors are reported but non-fatal; the
// walk continues").
func Check(program *ast.Program) []*diagnostics.DiagnosticError {
	c := New()
	walker.Walk(program, c)
	return c.Errors()
}

// Errors returns the diagnostics accumulated so far.
func (c *Checker) Errors() []*diagnostics.DiagnosticError { return c.errors.Errors() }

// BeforeAlwaysFf enters a clocked process (spec.md section 4.6, "Enter
// clocked process: set in_always_ff=true. If the process declares a
// reset signal but its first statement is not an IfReset statement, emit
// missing_if_reset").
func (c *Checker) BeforeAlwaysFf(af *ast.AlwaysFfStatement) {
	c.inAlwaysFf = true
	c.currentProcess = af
	c.ifResetExist = false
	c.allLHS = nil
	c.resetLHS = nil

	if af.HasDeclaredReset() {
		first := af.FirstStatement()
		if _, ok := first.(*ast.IfResetStatement); !ok {
			c.errors.Add(diagnostics.MissingIfReset(af.Token))
		}
	}
}

// BeforeIfReset enters a reset branch (spec.md section 4.6, "Enter reset
// branch: set in_if_reset=true, if_reset_exist=true, if_reset_brace=0").
func (c *Checker) BeforeIfReset(ir *ast.IfResetStatement) {
	if !c.inAlwaysFf {
		return
	}
	c.inIfReset = true
	c.ifResetExist = true
	c.ifResetBrace = 0
}

// BeforeBlock models a left brace: while inside the reset branch, each
// nested block deepens the brace counter (spec.md section 4.6, "Left
// brace (while in_if_reset): increment if_reset_brace").
func (c *Checker) BeforeBlock(b *ast.BlockStatement) {
	if c.inIfReset {
		c.ifResetBrace++
	}
}

// AfterBlock models a right brace: the counter unwinds, and reaching zero
// closes the reset branch (spec.md section 4.6, "Right brace (while
// in_if_reset): decrement; if it reaches 0, set in_if_reset=false").
func (c *Checker) AfterBlock(b *ast.BlockStatement) {
	if !c.inIfReset {
		return
	}
	c.ifResetBrace--
	if c.ifResetBrace <= 0 {
		c.inIfReset = false
	}
}

// BeforeAssignment records the LHS of an assignment inside the current
// clocked process, and additionally inside the reset-branch set if we're
// still in it (spec.md section 4.6, "Assignment (while in_always_ff): push
// LHS into all_lefthand_sides; if in_if_reset, also into
// reset_lefthand_sides").
func (c *Checker) BeforeAssignment(as *ast.AssignmentStatement) {
	if !c.inAlwaysFf || as.LHS == nil {
		return
	}
	c.allLHS = append(c.allLHS, as.LHS)
	if c.inIfReset {
		c.resetLHS = append(c.resetLHS, as.LHS)
	}
}

// AfterAlwaysFf exits the clocked process: checks for an orphaned reset
// branch, checks every driven signal against the reset-branch coverage
// when the process has a reset branch, and resets all per-process state
// (spec.md section 4.6, "Exit clocked process").
func (c *Checker) AfterAlwaysFf(af *ast.AlwaysFfStatement) {
	if c.ifResetExist && !af.HasDeclaredReset() {
		c.errors.Add(diagnostics.MissingResetSignal(af.Token))
	}

	if c.ifResetExist {
		covered := make(map[string]bool, len(c.resetLHS))
		for _, lhs := range c.resetLHS {
			covered[lhs.Canonical()] = true
		}
		reported := make(map[string]bool, len(c.allLHS))
		for _, lhs := range c.allLHS {
			name := lhs.Canonical()
			if covered[name] || reported[name] {
				continue
			}
			reported[name] = true
			c.errors.Add(diagnostics.MissingResetStatement(lhs.Token, name))
		}
	}

	c.inAlwaysFf = false
	c.inIfReset = false
	c.ifResetBrace = 0
	c.ifResetExist = false
	c.allLHS = nil
	c.resetLHS = nil
	c.currentProcess = nil
}

var _ ast.Visitor = (*Checker)(nil)
