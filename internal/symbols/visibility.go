package symbols

import "github.com/veryl-lang/semcore/internal/ast"

// isModuleLike gates §4.4's isPublic rule: only module/interface/
// package-like symbols (and their alias/proto forms) carry a visibility
// barrier across project boundaries; every other kind is implicitly
// public (spec.md section 4.4).
func isModuleLike(k Kind) bool {
	switch k {
	case KindModule, KindProtoModule, KindAliasModule,
		KindInterface, KindAliasInterface,
		KindPackage, KindProtoPackage, KindAliasPackage:
		return true
	default:
		return false
	}
}

// isPublic implements spec.md section 4.4's is_public: for module-like
// kinds, a cross-project reference requires the symbol to be declared
// public.
func isPublic(ctx *ResolveContext, found Symbol) bool {
	if !isModuleLike(found.Kind) {
		return true
	}
	return !ctx.OtherPrj || found.Public
}

// priorClass is the classification of the previously resolved segment used
// to gate the current one (spec.md section 4.4, "classify the prior
// segment").
type priorClass struct {
	viaInterfaceInstance bool
	viaInterface         bool
	viaPackage           bool
	viaEnum              bool
}

// classifyPrior classifies ctx.LastFound per spec.md section 4.4's four
// "via" categories. ctx.LastFoundType, set by descend/enterScope while
// tracing prior's type or alias/generic target, lets an Instance, TypeDef,
// GenericInstance, or GenericParameter be classified by what it ultimately
// resolves to rather than just its own kind.
func (s *SymbolTable) classifyPrior(ctx *ResolveContext, prior Symbol) priorClass {
	var pc priorClass

	switch prior.Kind {
	case KindPort:
		if pp, ok := prior.PortPayloadOf(); ok {
			if pp.Direction == ast.DirModport || pp.Direction == ast.DirInterface {
				pc.viaInterfaceInstance = true
			}
		}
	case KindInstance:
		if target, ok := s.Get(ctx.LastFoundType); ok {
			if target.Kind == KindInterface || target.Kind == KindAliasInterface {
				pc.viaInterfaceInstance = true
			}
		}
	case KindInterface, KindAliasInterface:
		pc.viaInterface = true
	case KindPackage, KindProtoPackage, KindAliasPackage:
		pc.viaPackage = true
	case KindEnum:
		pc.viaEnum = true
	case KindTypeDef, KindProtoTypeDef:
		if target, ok := s.Get(ctx.LastFoundType); ok && target.Kind == KindEnum {
			pc.viaEnum = true
		}
	case KindGenericInstance:
		if target, ok := s.Get(ctx.LastFoundType); ok {
			switch target.Kind {
			case KindInterface, KindAliasInterface:
				pc.viaInterface = true
			case KindPackage, KindProtoPackage, KindAliasPackage:
				pc.viaPackage = true
			}
		}
	case KindGenericParameter:
		target, ok := s.Get(ctx.LastFoundType)
		if !ok {
			break
		}
		gp, ok := prior.GenericParameterPayloadOf()
		if !ok {
			break
		}
		switch target.Kind {
		case KindInterface, KindAliasInterface:
			pc.viaInterface = true
			if gp.Bound.Kind == BoundInst {
				pc.viaInterfaceInstance = true
			}
		case KindPackage, KindProtoPackage, KindAliasPackage:
			pc.viaPackage = true
		}
	}

	return pc
}

// isVisible implements spec.md section 4.4's admission table. With no
// prior segment resolved, every candidate is visible; otherwise the found
// kind's requirement is checked against the prior segment's classification.
func (s *SymbolTable) isVisible(ctx *ResolveContext, found Symbol) bool {
	if ctx.LastFound == nil {
		return true
	}
	pc := s.classifyPrior(ctx, *ctx.LastFound)

	switch found.Kind {
	case KindVariable, KindModportFunctionMember, KindModportVariableMember:
		return pc.viaInterfaceInstance
	case KindStructMember, KindUnionMember:
		switch ctx.LastFound.Kind {
		case KindPort, KindModportVariableMember, KindVariable, KindParameter,
			KindProtoConst, KindStructMember, KindUnionMember:
			return true
		default:
			return false
		}
	case KindParameter, KindProtoConst, KindTypeDef, KindProtoTypeDef,
		KindEnum, KindStruct, KindUnion, KindProtoFunction:
		return pc.viaPackage
	case KindFunction:
		return pc.viaInterfaceInstance || pc.viaPackage
	case KindEnumMember, KindEnumMemberMangled:
		return pc.viaEnum
	case KindModport:
		return pc.viaInterface
	case KindGenericInstance:
		return pc.viaPackage
	default:
		return ctx.LastFound.Kind == KindNamespace
	}
}
