package symbols

import (
	"github.com/veryl-lang/semcore/internal/ident"
	"github.com/veryl-lang/semcore/internal/namespace"
	"github.com/veryl-lang/semcore/internal/token"
)

// Resolve looks up path in namespace, consulting the resolution cache
// first and memoizing a successful result (spec.md section 4.3, the
// central algorithm; section 4.5, "reads consult the cache first; on
// miss, perform resolution and store the successful result").
func (s *SymbolTable) Resolve(path SymbolPath, ns namespace.Namespace) (ResolveResult, *ResolveError) {
	if path.Len() == 0 {
		return ResolveResult{}, &ResolveError{Cause: CauseNotFound}
	}

	key := newCacheKey(path, ns)
	s.mu.RLock()
	if cached, ok := s.cache.get(key); ok {
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()
	s.logger.resolveMiss(path.String(), ns.String())

	result, rerr := s.resolveUncached(path, ns)
	if rerr != nil {
		return result, rerr
	}

	s.mu.Lock()
	s.cache.put(key, result)
	s.mu.Unlock()
	return result, nil
}

// resolveUncached implements spec.md section 4.3's algorithm directly:
// project-local rename, then a strictly left-to-right walk over path's
// segments, gating each candidate by containment/matching, visibility, and
// descending into the found symbol's scope according to its kind.
func (s *SymbolTable) resolveUncached(path SymbolPath, ns namespace.Namespace) (ResolveResult, *ResolveError) {
	segments := append([]ident.StrId(nil), path.Segments...)

	if len(ns.Paths) > 0 {
		if real, ok := s.projectLocalRename(ns.Paths[0], segments[0]); ok {
			segments[0] = real
		}
	}

	ctx := newResolveContext(ns)
	var found Symbol
	var fullPath []SymbolId

	for i, name := range segments {
		if ctx.SvMember {
			// Further descent inside an opaque SystemVerilog type is
			// untracked: synthesize one symbol and consume every
			// remaining segment against it (spec.md section 4.3-2a).
			sv := s.synthesizeSVMember(ctx)
			for j := i; j < len(segments); j++ {
				fullPath = append(fullPath, sv.ID)
			}
			found = sv
			break
		}

		candidate, imported, ok := s.bestCandidate(ctx, name)
		if !ok {
			if i == 0 {
				// Treat the unresolved head segment as an implicit
				// external-project namespace (spec.md section 4.3-2c).
				ctx.Namespace = namespace.FromIds(name)
				ctx.Inner = true
				ctx.OtherPrj = true
				continue
			}
			return ResolveResult{}, &ResolveError{Cause: CauseNotFound, Name: name.Text(), LastFound: ctx.LastFound}
		}

		if !isPublic(ctx, candidate) {
			return ResolveResult{}, &ResolveError{Cause: CausePrivate, LastFound: ctx.LastFound}
		}
		if !s.isVisible(ctx, candidate) {
			return ResolveResult{}, &ResolveError{Cause: CauseInvisible, LastFound: ctx.LastFound}
		}

		fullPath = append(fullPath, candidate.ID)
		ctx.Imported = ctx.Imported || imported
		found = candidate
		ctx.LastFound = &found

		s.descend(ctx, candidate)
	}

	if found.ID == 0 {
		// The only segment was taken as an implicit project namespace;
		// no symbol was resolved.
		return ResolveResult{}, &ResolveError{Cause: CauseNotFound, Name: segments[0].Text()}
	}

	reported := found
	reported.Namespace = found.Namespace.Replace(ctx.GenericNamespaceMap)
	return ResolveResult{Found: reported, FullPath: fullPath, Imported: ctx.Imported}, nil
}

// bestCandidate picks, among the symbols sharing name, the one qualifying
// under ctx's current scope with the greatest namespace depth — ties go to
// the later entry in name_table's (insertion) order, since the last write
// wins the found slot (spec.md section 4.3-2b, "Open questions").
func (s *SymbolTable) bestCandidate(ctx *ResolveContext, name ident.StrId) (Symbol, bool, bool) {
	candidates := s.AllWithName(name)
	var best Symbol
	bestDepth := -1
	found := false
	imported := false

	for _, c := range candidates {
		qualifies := false
		viaImport := false

		if ctx.Inner {
			if ctx.Namespace.Matched(c.Namespace) || s.matchNestedGenericInstance(ctx, c) {
				qualifies = true
			}
		} else {
			// A candidate qualifies by direct containment when the two
			// namespaces share one unbroken line of descent: either the
			// search scope sits at or above the candidate (the common
			// case — resolving a name declared directly in, or nested
			// under, the scope we're searching from) or the candidate
			// sits at or above the search scope (resolving a
			// project-top-level package or module by name from a
			// nested scope inside it, spec.md section 8 scenario 3).
			if ctx.Namespace.Included(c.Namespace) || c.Namespace.Included(ctx.Namespace) {
				qualifies = true
			} else {
				for _, impNs := range c.Imported {
					if impNs.Included(ctx.Namespace) {
						qualifies = true
						viaImport = true
						break
					}
				}
			}
		}

		if !qualifies {
			continue
		}
		depth := c.Namespace.Depth()
		if depth >= bestDepth {
			best = c
			bestDepth = depth
			found = true
			imported = viaImport
		}
	}

	return best, imported, found
}

// matchNestedGenericInstance reports whether ctx's last-found symbol and
// candidate are both GenericInstances whose scopes nest — the last-found's
// inner namespace matches the candidate's own namespace (spec.md section
// 4.3-2b).
func (s *SymbolTable) matchNestedGenericInstance(ctx *ResolveContext, candidate Symbol) bool {
	if ctx.LastFound == nil {
		return false
	}
	if ctx.LastFound.Kind != KindGenericInstance || candidate.Kind != KindGenericInstance {
		return false
	}
	return ctx.LastFound.InnerNamespace().Matched(candidate.Namespace)
}

// projectLocalRename consults the per-project alias table for a
// substitution of the resolved path's first segment (spec.md section
// 4.3-1, GLOSSARY "Project-local rename").
func (s *SymbolTable) projectLocalRename(project, asName ident.StrId) (ident.StrId, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	aliases, ok := s.projectLocalTable[project]
	if !ok {
		return 0, false
	}
	real, ok := aliases[asName]
	return real, ok
}

// synthesizeSVMember builds the opaque SystemVerilog symbol returned once
// descent crosses into an untracked external type (spec.md section
// 4.3-2a).
func (s *SymbolTable) synthesizeSVMember(ctx *ResolveContext) Symbol {
	return Symbol{
		ID:        symIDNext(),
		Token:     token.NewExternalToken("<sv-member>"),
		Namespace: ctx.Namespace,
		Kind:      KindSystemVerilog,
		Public:    true,
	}
}
