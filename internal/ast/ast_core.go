// Package ast defines the trimmed AST node set the semantic core consumes:
// enough of the Veryl grammar to drive name resolution and the always_ff
// reset-coverage checker (spec.md section 6). The grammar-generated parser
// that produces these nodes is an external collaborator, out of scope here
// (spec.md section 1).
package ast

import (
	"github.com/veryl-lang/semcore/internal/token"
)

// Node is the base interface for every AST node, modeled on the
// TokenLiteral()/Accept(Visitor) shape used throughout the teacher
// repository's own ast package.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	Accept(v Visitor)
}

// Statement is a Node appearing in a statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node appearing in an expression position.
type Expression interface {
	Node
	expressionNode()
}

// Declaration is a Node appearing at module/interface/package scope.
type Declaration interface {
	Node
	declarationNode()
}

// Program is the root node of one source file's AST.
type Program struct {
	Token   token.Token
	File    string
	Modules []*ModuleDecl
}

func (p *Program) TokenLiteral() string { return p.Token.TextOf() }
func (p *Program) GetToken() token.Token { return p.Token }
func (p *Program) Accept(v Visitor) {
	v.BeforeProgram(p)
	for _, m := range p.Modules {
		m.Accept(v)
	}
	v.AfterProgram(p)
}

// Identifier is a bare name reference.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) TokenLiteral() string { return i.Token.TextOf() }
func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) Accept(v Visitor)      { v.BeforeIdentifier(i); v.AfterIdentifier(i) }
func (i *Identifier) expressionNode()       {}

// HierarchicalIdentifier is a dotted/indexed left-hand-side reference such
// as `foo.bar[0].baz`, the LHS shape the reset checker collects
// (spec.md section 4.6).
type HierarchicalIdentifier struct {
	Token    token.Token
	Segments []string // e.g. ["foo", "bar", "baz"]; index/slice text is not modeled, it doesn't affect canonical LHS comparison.
}

func (h *HierarchicalIdentifier) TokenLiteral() string { return h.Token.TextOf() }
func (h *HierarchicalIdentifier) GetToken() token.Token { return h.Token }
func (h *HierarchicalIdentifier) Accept(v Visitor) {
	v.BeforeHierarchicalIdentifier(h)
	v.AfterHierarchicalIdentifier(h)
}
func (h *HierarchicalIdentifier) expressionNode() {}

// Canonical renders the textual form used to compare LHS expressions
// between the reset branch and the rest of the clocked process
// (spec.md section 4.6, step 2: "Stringify each reset LHS into a
// canonical textual form").
func (h *HierarchicalIdentifier) Canonical() string {
	out := ""
	for i, seg := range h.Segments {
		if i > 0 {
			out += "."
		}
		out += seg
	}
	return out
}
