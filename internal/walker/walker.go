// Package walker provides the reusable harness semantic passes plug into:
// a no-op default implementation of ast.Visitor (so a pass only overrides
// the hooks it needs) and an error accumulator with the same
// dedup-by-position-and-code discipline as the teacher repository's
// internal/analyzer walker (spec.md section 6, "Walker contract").
package walker

import (
	"fmt"
	"sort"

	"github.com/veryl-lang/semcore/internal/ast"
	"github.com/veryl-lang/semcore/internal/diagnostics"
)

// BaseVisitor implements ast.Visitor with no-op methods. Concrete passes
// embed it and override only the Before/After hooks they care about.
type BaseVisitor struct{}

func (BaseVisitor) BeforeProgram(*ast.Program) {}
func (BaseVisitor) AfterProgram(*ast.Program)  {}

func (BaseVisitor) BeforeModule(*ast.ModuleDecl) {}
func (BaseVisitor) AfterModule(*ast.ModuleDecl)  {}

func (BaseVisitor) BeforeInterface(*ast.InterfaceDecl) {}
func (BaseVisitor) AfterInterface(*ast.InterfaceDecl)  {}

func (BaseVisitor) BeforePackage(*ast.PackageDecl) {}
func (BaseVisitor) AfterPackage(*ast.PackageDecl)  {}

func (BaseVisitor) BeforePort(*ast.PortDecl) {}
func (BaseVisitor) AfterPort(*ast.PortDecl)  {}

func (BaseVisitor) BeforeVariable(*ast.VariableDecl) {}
func (BaseVisitor) AfterVariable(*ast.VariableDecl)  {}

func (BaseVisitor) BeforeParameter(*ast.ParameterDecl) {}
func (BaseVisitor) AfterParameter(*ast.ParameterDecl)  {}

func (BaseVisitor) BeforeInstance(*ast.InstanceDecl) {}
func (BaseVisitor) AfterInstance(*ast.InstanceDecl)  {}

func (BaseVisitor) BeforeTypeDef(*ast.TypeDefDecl) {}
func (BaseVisitor) AfterTypeDef(*ast.TypeDefDecl)  {}

func (BaseVisitor) BeforeModport(*ast.ModportDecl) {}
func (BaseVisitor) AfterModport(*ast.ModportDecl)  {}

func (BaseVisitor) BeforeStruct(*ast.StructDecl) {}
func (BaseVisitor) AfterStruct(*ast.StructDecl)  {}

func (BaseVisitor) BeforeUnion(*ast.UnionDecl) {}
func (BaseVisitor) AfterUnion(*ast.UnionDecl)  {}

func (BaseVisitor) BeforeEnum(*ast.EnumDecl) {}
func (BaseVisitor) AfterEnum(*ast.EnumDecl)  {}

func (BaseVisitor) BeforeFunction(*ast.FunctionDecl) {}
func (BaseVisitor) AfterFunction(*ast.FunctionDecl)  {}

func (BaseVisitor) BeforeAlwaysFf(*ast.AlwaysFfStatement) {}
func (BaseVisitor) AfterAlwaysFf(*ast.AlwaysFfStatement)  {}

func (BaseVisitor) BeforeIfReset(*ast.IfResetStatement) {}
func (BaseVisitor) AfterIfReset(*ast.IfResetStatement)  {}

func (BaseVisitor) BeforeAssignment(*ast.AssignmentStatement) {}
func (BaseVisitor) AfterAssignment(*ast.AssignmentStatement)  {}

func (BaseVisitor) BeforeBlock(*ast.BlockStatement) {}
func (BaseVisitor) AfterBlock(*ast.BlockStatement)  {}

func (BaseVisitor) BeforeIdentifier(*ast.Identifier) {}
func (BaseVisitor) AfterIdentifier(*ast.Identifier)  {}

func (BaseVisitor) BeforeHierarchicalIdentifier(*ast.HierarchicalIdentifier) {}
func (BaseVisitor) AfterHierarchicalIdentifier(*ast.HierarchicalIdentifier)  {}

var _ ast.Visitor = BaseVisitor{}

// Walk drives node's own Accept dispatch. It exists mainly for call-site
// symmetry (`walker.Walk(program, checker)` reads the same regardless of
// the node's concrete type).
func Walk(node ast.Node, v ast.Visitor) {
	if node == nil {
		return
	}
	node.Accept(v)
}

// ErrorAccumulator collects *diagnostics.DiagnosticError values emitted
// during a walk, deduplicating by "line:column:code" and returning them in
// stable source order — the same discipline as the teacher repository's
// analyzer.walker.addError/getErrors pair.
type ErrorAccumulator struct {
	set map[string]*diagnostics.DiagnosticError
}

// Add records err, keeping the last write for a given position+code key.
func (a *ErrorAccumulator) Add(err *diagnostics.DiagnosticError) {
	if err == nil {
		return
	}
	if a.set == nil {
		a.set = make(map[string]*diagnostics.DiagnosticError)
	}
	key := fmt.Sprintf("%d:%d:%s", err.Token.Line, err.Token.Column, err.Code)
	a.set[key] = err
}

// Errors returns the accumulated errors sorted by (line, column).
func (a *ErrorAccumulator) Errors() []*diagnostics.DiagnosticError {
	result := make([]*diagnostics.DiagnosticError, 0, len(a.set))
	for _, err := range a.set {
		result = append(result, err)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Token.Line != result[j].Token.Line {
			return result[i].Token.Line < result[j].Token.Line
		}
		return result[i].Token.Column < result[j].Token.Column
	})
	return result
}
