package symbols

// resolutionCache is a flat memoization of successful resolve results.
// Errors are never cached (spec.md section 4.5, section 7: "The
// resolution cache never caches errors"). Every table-mutating operation
// clears it wholesale (spec.md invariant 5).
type resolutionCache struct {
	entries map[cacheKey]ResolveResult
}

func newResolutionCache() resolutionCache {
	return resolutionCache{entries: make(map[cacheKey]ResolveResult)}
}

func (c *resolutionCache) get(key cacheKey) (ResolveResult, bool) {
	if c.entries == nil {
		return ResolveResult{}, false
	}
	r, ok := c.entries[key]
	return r, ok
}

func (c *resolutionCache) put(key cacheKey, result ResolveResult) {
	if c.entries == nil {
		c.entries = make(map[cacheKey]ResolveResult)
	}
	c.entries[key] = result
}

func (c *resolutionCache) clear() {
	c.entries = make(map[cacheKey]ResolveResult)
}

func (c *resolutionCache) len() int { return len(c.entries) }

// invalidate clears the cache. Every SymbolTable method that changes a
// stored symbol, the name table or the rename table calls this before
// returning (spec.md invariant 5); AddImport, which only queues an
// import, and AddVarRef (see its comment) do not. Named distinctly from
// clear so call sites at the SymbolTable level read as intent
// ("s.invalidateCache()") rather than cache-internals.
func (s *SymbolTable) invalidateCache(op string) {
	s.cache.clear()
	s.logger.mutationInvalidatesCache(op)
}
