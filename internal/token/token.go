// Package token defines the lexical token representation consumed by the
// semantic core. The lexer/parser that produce these tokens are external
// collaborators (spec.md section 6); this package only models the shape
// they hand us.
package token

import (
	"sync/atomic"

	"github.com/veryl-lang/semcore/internal/ident"
)

// TokenId uniquely identifies one token instance (not its text — two
// occurrences of the same identifier get distinct TokenIds). Unlike StrId,
// TokenIds are never deduplicated: every token a parser hands us is a
// distinct position in the source.
type TokenId int64

var nextTokenId atomic.Int64

// NewTokenId allocates the next TokenId in the process-wide sequence.
func NewTokenId() TokenId {
	return TokenId(nextTokenId.Add(1))
}

// SourceKind tags where a token originated.
type SourceKind int

const (
	// SourceFile marks a token read from a project source file.
	SourceFile SourceKind = iota
	// SourceBuiltin marks a token synthesized for a built-in symbol
	// ($sv, $std, SystemVerilog keywords and system functions).
	SourceBuiltin
	// SourceExternal marks a token synthesized for a symbol supplied by
	// an external collaborator (e.g. an opaque SystemVerilog member).
	SourceExternal
)

// TokenSource identifies where a Token's text came from.
type TokenSource struct {
	Kind SourceKind
	Path ident.PathId // valid only when Kind == SourceFile
}

// File returns a TokenSource rooted at the given file path.
func File(path ident.PathId) TokenSource {
	return TokenSource{Kind: SourceFile, Path: path}
}

// Builtin is the shared TokenSource for built-in symbols.
var Builtin = TokenSource{Kind: SourceBuiltin}

// External is the shared TokenSource for symbols synthesized by an
// external collaborator (e.g. descent into an opaque SystemVerilog type).
var External = TokenSource{Kind: SourceExternal}

// Token is a single lexical token: interned text plus its position and
// origin.
type Token struct {
	ID     TokenId
	Text   ident.StrId
	Line   int
	Column int
	Length int
	Source TokenSource
}

// NewToken builds a Token for textual content read from a file.
func NewToken(text string, line, column, length int, path ident.PathId) Token {
	return Token{
		ID:     NewTokenId(),
		Text:   ident.Intern(text),
		Line:   line,
		Column: column,
		Length: length,
		Source: File(path),
	}
}

// NewBuiltinToken builds a synthetic Token for a built-in symbol with no
// real source position.
func NewBuiltinToken(text string) Token {
	return Token{
		ID:     NewTokenId(),
		Text:   ident.Intern(text),
		Source: Builtin,
	}
}

// NewExternalToken builds a synthetic Token for a symbol manufactured while
// descending into an opaque external type (spec.md section 4.3-2a).
func NewExternalToken(text string) Token {
	return Token{
		ID:     NewTokenId(),
		Text:   ident.Intern(text),
		Source: External,
	}
}

// TextOf is a convenience accessor for the interned text.
func (t Token) TextOf() string { return t.Text.Text() }

// IsFile reports whether the token originated from a project source file.
func (t Token) IsFile() bool { return t.Source.Kind == SourceFile }
