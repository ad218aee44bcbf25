package symbols

import "log/slog"

// traceLogger is the optional diagnostic-trace hook an embedding host (an
// LSP, a build driver) can attach to a SymbolTable. The teacher repository
// carries no logging dependency at all, so this stays opt-in and silent
// by default; when enabled it is grounded on golangsnmp-gomib's
// mib/resolver_context.go, the closest-domain example repo that does use
// log/slog inside its resolver (see SPEC_FULL.md, Ambient stack).
type traceLogger struct {
	log *slog.Logger
}

func (t traceLogger) enabled() bool { return t.log != nil }

func (t traceLogger) resolveMiss(path string, ns string) {
	if t.log != nil {
		t.log.Debug("resolve cache miss", "path", path, "namespace", ns)
	}
}

func (t traceLogger) mutationInvalidatesCache(op string) {
	if t.log != nil {
		t.log.Debug("symbol table mutated, cache invalidated", "op", op)
	}
}

// SetLogger attaches an slog.Logger for diagnostic tracing. Passing nil
// disables tracing (the default).
func (s *SymbolTable) SetLogger(l *slog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = traceLogger{log: l}
}
