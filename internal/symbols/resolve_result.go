package symbols

import "github.com/veryl-lang/semcore/internal/namespace"

// Cause classifies why a resolve failed (spec.md section 4.3, Output).
type Cause int

const (
	CauseNotFound Cause = iota
	CausePrivate
	CauseInvisible
)

func (c Cause) String() string {
	switch c {
	case CauseNotFound:
		return "not_found"
	case CausePrivate:
		return "private"
	case CauseInvisible:
		return "invisible"
	default:
		return "unknown"
	}
}

// ResolveResult is the successful outcome of Resolve.
type ResolveResult struct {
	Found    Symbol
	FullPath []SymbolId
	Imported bool
}

// ResolveError is the unsuccessful outcome of Resolve. LastFound is the
// nearest enclosing symbol successfully resolved before the failure, for
// diagnostic context (spec.md section 4.3, Output; section 7).
type ResolveError struct {
	Cause     Cause
	Name      string // populated when Cause == CauseNotFound
	LastFound *Symbol
}

func (e *ResolveError) Error() string {
	switch e.Cause {
	case CauseNotFound:
		return "symbol not found: " + e.Name
	case CausePrivate:
		return "symbol is private"
	case CauseInvisible:
		return "symbol is not visible from this context"
	default:
		return "resolution failed"
	}
}

// cacheKey is the memoization key: a path plus the namespace it was
// resolved against (spec.md section 4.5).
type cacheKey struct {
	path string // SymbolPath.String() of the path as passed to Resolve, before project-local rename; the rename depends only on that path and the namespace, and registering one clears the cache.
	ns   string // namespace.Namespace.String()
}

func newCacheKey(path SymbolPath, ns namespace.Namespace) cacheKey {
	return cacheKey{path: path.String(), ns: ns.String()}
}
