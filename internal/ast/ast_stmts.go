package ast

import "github.com/veryl-lang/semcore/internal/token"

// BlockStatement is a brace-delimited statement list. Before/After hooks on
// it are how the reset checker observes "{" and "}" (spec.md section 4.6:
// "Left brace (while in_if_reset): increment if_reset_brace" / "Right
// brace: decrement; if it reaches 0, set in_if_reset=false").
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (b *BlockStatement) TokenLiteral() string  { return b.Token.TextOf() }
func (b *BlockStatement) GetToken() token.Token { return b.Token }
func (b *BlockStatement) statementNode()        {}
func (b *BlockStatement) Accept(v Visitor) {
	v.BeforeBlock(b)
	for _, s := range b.Statements {
		if s == nil {
			continue
		}
		s.Accept(v)
	}
	v.AfterBlock(b)
}

// IfResetStatement is the reset branch of a clocked process:
// `if_reset { ... }`. Its Body is always modeled as a BlockStatement so
// entering/leaving it produces the brace events the checker counts.
type IfResetStatement struct {
	Token token.Token
	Body  *BlockStatement
	Else  *BlockStatement // the non-reset else-branch, if any; the checker counts its assignments as driven but not as reset.
}

func (ir *IfResetStatement) TokenLiteral() string  { return ir.Token.TextOf() }
func (ir *IfResetStatement) GetToken() token.Token { return ir.Token }
func (ir *IfResetStatement) statementNode()        {}
func (ir *IfResetStatement) Accept(v Visitor) {
	v.BeforeIfReset(ir)
	if ir.Body != nil {
		ir.Body.Accept(v)
	}
	if ir.Else != nil {
		ir.Else.Accept(v)
	}
	v.AfterIfReset(ir)
}

// AssignmentStatement is `lhs = rhs` (or `lhs <= rhs`) inside a process
// body; the reset checker only inspects the LHS (spec.md section 4.6).
type AssignmentStatement struct {
	Token token.Token
	LHS   *HierarchicalIdentifier
}

func (as *AssignmentStatement) TokenLiteral() string  { return as.Token.TextOf() }
func (as *AssignmentStatement) GetToken() token.Token { return as.Token }
func (as *AssignmentStatement) statementNode()        {}
func (as *AssignmentStatement) Accept(v Visitor) {
	v.BeforeAssignment(as)
	if as.LHS != nil {
		as.LHS.Accept(v)
	}
	v.AfterAssignment(as)
}

// AlwaysFfStatement is a clocked process: `always_ff (clk, rst) { ... }`.
// ResetSignal is the declared reset port name, or "" if the process
// declares none (spec.md section 4.6).
type AlwaysFfStatement struct {
	Token       token.Token
	ResetSignal string
	Body        *BlockStatement
}

func (af *AlwaysFfStatement) TokenLiteral() string  { return af.Token.TextOf() }
func (af *AlwaysFfStatement) GetToken() token.Token { return af.Token }
func (af *AlwaysFfStatement) statementNode()        {}
func (af *AlwaysFfStatement) Accept(v Visitor) {
	v.BeforeAlwaysFf(af)
	if af.Body != nil {
		af.Body.Accept(v)
	}
	v.AfterAlwaysFf(af)
}

// HasDeclaredReset reports whether this process declared a reset signal.
func (af *AlwaysFfStatement) HasDeclaredReset() bool { return af.ResetSignal != "" }

// FirstStatement returns the first statement in the process body, or nil
// if the body is empty.
func (af *AlwaysFfStatement) FirstStatement() Statement {
	if af.Body == nil || len(af.Body.Statements) == 0 {
		return nil
	}
	return af.Body.Statements[0]
}
