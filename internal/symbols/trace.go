package symbols

import (
	"github.com/veryl-lang/semcore/internal/namespace"
	"github.com/veryl-lang/semcore/internal/typeref"
)

// descend advances ctx into found's own scope according to its kind
// (spec.md section 4.3-2f). Leaf kinds (Function, Struct, Union,
// EnumMember, Modport and its function members, Block, SystemFunction,
// Genvar, ClockDomain, Test, and the Proto* kinds that carry no type) do
// not descend: like a primitive type they leave ctx in failDescent's empty
// inner scope, so a further segment fails with NotFound on the next
// iteration's bestCandidate call (or with Invisible, for a name declared
// in the root namespace itself).
func (s *SymbolTable) descend(ctx *ResolveContext, found Symbol) {
	switch {
	case found.Kind == KindPort:
		s.tracePort(ctx, found)
	case isTypeBearing(found.Kind):
		s.traceTypeBearing(ctx, found)
	case found.Kind == KindModportVariableMember:
		s.traceModportVariableMember(ctx, found)
	case found.Kind == KindModule, found.Kind == KindInterface,
		found.Kind == KindPackage, found.Kind == KindProtoPackage,
		found.Kind == KindEnum, found.Kind == KindSystemVerilog,
		found.Kind == KindNamespace:
		ctx.enterScope(found)
	case found.Kind == KindAliasModule, found.Kind == KindAliasInterface, found.Kind == KindAliasPackage:
		s.traceAlias(ctx, found)
	case found.Kind == KindInstance:
		s.traceInstance(ctx, found)
	case found.Kind == KindGenericInstance:
		s.traceGenericInstance(ctx, found)
	case found.Kind == KindGenericParameter:
		s.traceGenericParameter(ctx, found)
	default:
		ctx.failDescent()
	}
}

// enterScope descends into sym's own namespace, recording it as the
// resolved type/target for the next segment's visibility classification
// (spec.md section 4.4, classifyPrior's use of LastFoundType).
func (ctx *ResolveContext) enterScope(sym Symbol) {
	ctx.Namespace = sym.InnerNamespace()
	ctx.Inner = true
	ctx.LastFoundType = sym.ID
}

// failDescent is the shared "no members, further descent fails with
// NotFound" outcome for a primitive/abstract type or an unresolvable
// alias/instance target (spec.md section 4.3-2f).
func (ctx *ResolveContext) failDescent() {
	ctx.Namespace = namespace.Namespace{}
	ctx.Inner = true
}

// traceTypeBearing dispatches a Variable/StructMember/UnionMember/
// Parameter/TypeDef/ProtoTypeDef/ProtoConst symbol's carried TypeKind
// through traceTypeKind (spec.md section 4.3-2f, "Type-bearing symbols").
func (s *SymbolTable) traceTypeBearing(ctx *ResolveContext, sym Symbol) {
	tp, ok := sym.TypedPayloadOf()
	if !ok {
		ctx.failDescent()
		return
	}
	s.traceTypeKind(ctx, sym, tp.Type)
}

// tracePort dispatches a Port symbol's carried type the same way
// (spec.md section 4.3-2f lists Port among the type-bearing kinds, but its
// payload shape, PortPayload, differs from TypedPayload).
func (s *SymbolTable) tracePort(ctx *ResolveContext, sym Symbol) {
	pp, ok := sym.PortPayloadOf()
	if !ok {
		ctx.failDescent()
		return
	}
	s.traceTypeKind(ctx, sym, pp.Type)
}

// traceTypeKind resolves t against ctx's current namespace and descends
// into whatever it names, recursing through TypeDef aliases and breaking
// cycles by comparing the next hop's head segment against owner's own
// name (spec.md section 4.3-2f, section 5 "Reentrancy", section 9 "Cycle
// breaking").
func (s *SymbolTable) traceTypeKind(ctx *ResolveContext, owner Symbol, t typeref.TypeKind) {
	if !t.HasMembers() {
		ctx.failDescent()
		return
	}
	if len(t.Path) > 0 && t.Path[0] == owner.Token.Text {
		ctx.failDescent()
		return
	}

	result, err := s.Resolve(SymbolPath{Segments: t.Path}, ctx.Namespace)
	if err != nil {
		ctx.failDescent()
		return
	}
	resolved := result.Found

	if IsTypeDefKind(resolved.Kind) {
		if tp, ok := resolved.TypedPayloadOf(); ok {
			s.traceTypeKind(ctx, resolved, tp.Type)
			return
		}
	}
	if resolved.Kind == KindSystemVerilog {
		ctx.SvMember = true
		ctx.Namespace = resolved.InnerNamespace()
		return
	}
	ctx.enterScope(resolved)
}

// traceModportVariableMember looks the bare member name up one scope up
// from the modport (i.e. in the declaring interface's own namespace) and
// traces the Variable of that name declared there, since a modport
// variable view carries no type of its own (spec.md section 4.3-2f).
func (s *SymbolTable) traceModportVariableMember(ctx *ResolveContext, sym Symbol) {
	upNS := ctx.Namespace.Pop()
	for _, c := range s.AllWithName(sym.Token.Text) {
		if c.Kind == KindVariable && c.Namespace.Matched(upNS) {
			s.traceTypeBearing(ctx, c)
			return
		}
	}
	ctx.failDescent()
}

// traceAlias dispatches an AliasModule/AliasInterface/AliasPackage symbol
// to traceTypePath on its recorded target (spec.md section 4.3-2f).
func (s *SymbolTable) traceAlias(ctx *ResolveContext, sym Symbol) {
	ap, ok := sym.AliasPayloadOf()
	if !ok {
		ctx.failDescent()
		return
	}
	s.traceTypePath(ctx, ap.Target)
}

// traceInstance resolves an Instance symbol's (possibly generic) type name
// and traces that path (spec.md section 4.3-2f, "Instance: resolve the
// instance's type_name (imported-adjusted), then trace that path"; the
// "imported-adjusted" resolution is simply Resolve itself, since imported
// namespaces are already honored by bestCandidate's qualification rule).
func (s *SymbolTable) traceInstance(ctx *ResolveContext, sym Symbol) {
	ip, ok := sym.InstancePayloadOf()
	if !ok {
		ctx.failDescent()
		return
	}
	s.traceTypePath(ctx, ip.TypeName)
}

// traceTypePath implements spec.md section 4.3's trace_type_path: try the
// mangled (pre-instantiated) form first, then the generic form; recurse
// through alias chains, and dispatch generic instances/parameters to their
// own tracers.
func (s *SymbolTable) traceTypePath(ctx *ResolveContext, path GenericSymbolPath) {
	result, err := s.Resolve(path.MangledPath(), ctx.Namespace)
	if err != nil {
		result, err = s.Resolve(path.GenericPath(), ctx.Namespace)
	}
	if err != nil {
		ctx.failDescent()
		return
	}

	target := result.Found
	switch target.Kind {
	case KindAliasModule, KindAliasInterface, KindAliasPackage:
		ap, ok := target.AliasPayloadOf()
		if !ok {
			ctx.failDescent()
			return
		}
		s.traceTypePath(ctx, ap.Target)
	case KindGenericInstance:
		s.traceGenericInstance(ctx, target)
	case KindGenericParameter:
		s.traceGenericParameter(ctx, target)
	default:
		ctx.enterScope(target)
	}
}

// traceGenericInstance sets ctx's scope to the generic base's inner
// namespace and records the base-name-to-instance-name substitution used
// to rewrite the final reported namespace (spec.md section 4.3-2f,
// section 4.3 step 3).
func (s *SymbolTable) traceGenericInstance(ctx *ResolveContext, sym Symbol) {
	gip, ok := sym.GenericInstancePayloadOf()
	if !ok {
		ctx.failDescent()
		return
	}
	base, ok := s.Get(gip.Base)
	if !ok {
		ctx.failDescent()
		return
	}
	ctx.enterScope(base)
	ctx.GenericNamespaceMap[base.Token.Text] = sym.Token.Text
}

// traceGenericParameter dispatches a GenericParameter's bound: Inst/Proto
// bounds resolve their path in the parameter's own declaring namespace and
// descend into it, Unbounded parameters treat themselves as the scope
// (spec.md section 4.3-2f).
func (s *SymbolTable) traceGenericParameter(ctx *ResolveContext, sym Symbol) {
	gp, ok := sym.GenericParameterPayloadOf()
	if !ok {
		ctx.failDescent()
		return
	}
	switch gp.Bound.Kind {
	case BoundInst, BoundProto:
		result, err := s.Resolve(gp.Bound.Path.GenericPath(), sym.Namespace)
		if err != nil {
			ctx.failDescent()
			return
		}
		ctx.enterScope(result.Found)
	default:
		ctx.enterScope(sym)
	}
}
