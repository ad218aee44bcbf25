package symbols

import (
	"testing"
	"time"

	"github.com/veryl-lang/semcore/internal/ast"
	"github.com/veryl-lang/semcore/internal/ident"
	"github.com/veryl-lang/semcore/internal/namespace"
	"github.com/veryl-lang/semcore/internal/token"
	"github.com/veryl-lang/semcore/internal/typeref"
)

// fixture builds the worked example from spec.md section 8 end-to-end
// scenarios: a project "prj" with a module, a package holding a
// self-referential struct, an interface with a modport view, a second
// interface instantiated from the module, and an externally-typed
// SystemVerilog member. Every scenario test resolves against this same
// table.
func fixture(t *testing.T) *SymbolTable {
	t.Helper()
	s := NewSymbolTable()

	sym := func(name string, ns namespace.Namespace, kind Kind, payload any) {
		t.Helper()
		_, ok := s.Insert(Symbol{
			Token:     token.NewBuiltinToken(name),
			Namespace: ns,
			Kind:      kind,
			Payload:   payload,
			Public:    true,
		})
		if !ok {
			t.Fatalf("insert %s into %s: conflict", name, ns.String())
		}
	}

	prj := namespace.New("prj")
	moduleA := namespace.New("prj", "ModuleA")
	packageA := namespace.New("prj", "PackageA")
	structB := namespace.New("prj", "PackageA", "StructB")
	ifA := namespace.New("prj", "IfA")
	mpA := namespace.New("prj", "IfA", "mpA")
	ifB := namespace.New("prj", "IfB")

	sym("ModuleA", prj, KindModule, nil)
	sym("PackageA", prj, KindPackage, nil)
	sym("StructB", packageA, KindStruct, nil)

	sym("memberB", structB, KindStructMember, TypedPayload{Type: typeref.NewUserDefined(ident.Intern("StructB"))})
	sym("memberA", structB, KindStructMember, TypedPayload{Type: typeref.NewPrimitive("logic")})

	sym("paramA", moduleA, KindParameter, TypedPayload{Type: typeref.NewPrimitive("logic")})
	sym("paramB", moduleA, KindParameter, TypedPayload{Type: typeref.NewUserDefined(ident.Intern("PackageA"), ident.Intern("StructB"))})

	sym("IfA", prj, KindInterface, nil)
	sym("mpA", ifA, KindModport, nil)
	sym("memberC", ifA, KindVariable, TypedPayload{Type: typeref.NewUserDefined(ident.Intern("MyT"))})
	sym("MyT", ifA, KindTypeDef, TypedPayload{Type: typeref.NewUserDefined(ident.Intern("PackageA"), ident.Intern("StructB"))})
	sym("memberC", mpA, KindModportVariableMember, ModportMemberPayload{Direction: ast.DirInput})
	sym("portB", moduleA, KindPort, PortPayload{
		Direction: ast.DirModport,
		Type:      typeref.NewUserDefined(ident.Intern("IfA"), ident.Intern("mpA")),
	})

	sym("IfB", prj, KindInterface, nil)
	sym("memberB", ifB, KindVariable, TypedPayload{Type: typeref.NewUserDefined(ident.Intern("PackageA"), ident.Intern("StructB"))})
	sym("instA", moduleA, KindInstance, InstancePayload{TypeName: NewGenericSymbolPath("IfB")})

	sym("memberD", moduleA, KindVariable, TypedPayload{Type: typeref.NewUserDefined(ident.Intern("$sv"), ident.Intern("SvTypeA"))})
	sym("SvTypeA", namespace.New(namespace.SV), KindSystemVerilog, nil)

	return s
}

func mustResolve(t *testing.T, s *SymbolTable, path SymbolPath, ns namespace.Namespace) ResolveResult {
	t.Helper()
	result, err := s.Resolve(path, ns)
	if err != nil {
		t.Fatalf("resolve(%s, %s): unexpected error: %v", path.String(), ns.String(), err)
	}
	return result
}

// Scenario 1: a bare top-level module name resolves from the empty (project
// root) namespace.
func TestResolve_Scenario1_TopLevelModule(t *testing.T) {
	s := fixture(t)
	result := mustResolve(t, s, NewSymbolPath("ModuleA"), namespace.Namespace{})
	if got, want := result.Found.Namespace.String(), "prj"; got != want {
		t.Fatalf("namespace = %q, want %q", got, want)
	}
}

// Scenario 2: a module-local parameter resolves from inside the module but
// not from a sibling package.
func TestResolve_Scenario2_ModuleLocalParameter(t *testing.T) {
	s := fixture(t)
	result := mustResolve(t, s, NewSymbolPath("paramA"), namespace.New("prj", "ModuleA"))
	if got, want := result.Found.Namespace.String(), "prj::ModuleA"; got != want {
		t.Fatalf("namespace = %q, want %q", got, want)
	}

	_, err := s.Resolve(NewSymbolPath("paramA"), namespace.New("prj", "PackageA"))
	if err == nil || err.Cause != CauseNotFound {
		t.Fatalf("expected NotFound from a sibling package, got %v", err)
	}
}

// Scenario 3: Parameter -> Struct -> StructMember -> Struct, landing back
// inside the originating struct's own namespace.
func TestResolve_Scenario3_ParameterThroughStructMember(t *testing.T) {
	s := fixture(t)
	result := mustResolve(t, s, NewSymbolPath("paramB", "memberB", "memberA"), namespace.New("prj", "ModuleA"))
	if got, want := result.Found.Namespace.String(), "prj::PackageA::StructB"; got != want {
		t.Fatalf("namespace = %q, want %q", got, want)
	}
	if len(result.FullPath) != 3 {
		t.Fatalf("full_path length = %d, want 3", len(result.FullPath))
	}
}

// Scenario 4: Port -> Modport -> ModportVariableMember -> TypeDef -> Struct
// -> StructMember, the modport-view descent.
func TestResolve_Scenario4_PortThroughModport(t *testing.T) {
	s := fixture(t)
	result := mustResolve(t, s, NewSymbolPath("portB", "memberC", "memberB", "memberA"), namespace.New("prj", "ModuleA"))
	if got, want := result.Found.Namespace.String(), "prj::PackageA::StructB"; got != want {
		t.Fatalf("namespace = %q, want %q", got, want)
	}
	if len(result.FullPath) != 4 {
		t.Fatalf("full_path length = %d, want 4", len(result.FullPath))
	}
}

// Scenario 5: descent crosses into an opaque SystemVerilog type and every
// remaining segment short-circuits to the same synthesized member.
func TestResolve_Scenario5_SystemVerilogMemberShortCircuit(t *testing.T) {
	s := fixture(t)
	result := mustResolve(t, s, NewSymbolPath("memberD", "memberA", "memberA", "memberA"), namespace.New("prj", "ModuleA"))
	if got, want := result.Found.Namespace.String(), "$sv::SvTypeA"; got != want {
		t.Fatalf("namespace = %q, want %q", got, want)
	}
	if got, want := result.Found.Kind, KindSystemVerilog; got != want {
		t.Fatalf("kind = %v, want %v", got, want)
	}
	if len(result.FullPath) != 4 {
		t.Fatalf("full_path length = %d, want 4", len(result.FullPath))
	}
}

// Scenario 6: Instance -> (interface) Variable -> StructMember -> Struct,
// an interface instance exposing one of its variable's struct members.
func TestResolve_Scenario6_InstanceThroughInterfaceVariable(t *testing.T) {
	s := fixture(t)
	result := mustResolve(t, s, NewSymbolPath("instA", "memberB", "memberB", "memberA"), namespace.New("prj", "ModuleA"))
	if got, want := result.Found.Namespace.String(), "prj::PackageA::StructB"; got != want {
		t.Fatalf("namespace = %q, want %q", got, want)
	}
}

// Universal invariant: resolving a dropped symbol's path yields NotFound.
func TestResolve_DropThenResolveYieldsNotFound(t *testing.T) {
	s := NewSymbolTable()
	path := ident.InternPath("mod_a.vl")
	id, ok := s.Insert(Symbol{
		Token:     token.NewToken("ModuleA", 1, 1, 7, path),
		Namespace: namespace.New("prj"),
		Kind:      KindModule,
		Public:    true,
	})
	if !ok {
		t.Fatal("insert failed")
	}
	if _, ok := s.Get(id); !ok {
		t.Fatal("expected symbol present before drop")
	}

	s.Drop(path)

	_, err := s.Resolve(NewSymbolPath("ModuleA"), namespace.Namespace{})
	if err == nil || err.Cause != CauseNotFound {
		t.Fatalf("expected NotFound after drop, got %v", err)
	}
}

// Universal invariant: a successful resolve's full_path has length equal
// to the query path's length.
func TestResolve_FullPathLengthMatchesQuery(t *testing.T) {
	s := fixture(t)
	result := mustResolve(t, s, NewSymbolPath("paramB", "memberB", "memberA"), namespace.New("prj", "ModuleA"))
	if len(result.FullPath) != 3 {
		t.Fatalf("full_path length = %d, want 3", len(result.FullPath))
	}
}

// Resolution is cached: a second identical query is served from the cache
// and returns an identical result without needing the table to change.
func TestResolve_CachesSuccessfulResult(t *testing.T) {
	s := fixture(t)
	ns := namespace.New("prj", "ModuleA")
	first := mustResolve(t, s, NewSymbolPath("paramA"), ns)
	second := mustResolve(t, s, NewSymbolPath("paramA"), ns)
	if first.Found.ID != second.Found.ID {
		t.Fatalf("cached result disagrees with live result: %v vs %v", first.Found.ID, second.Found.ID)
	}
}

// A mutation (Insert) invalidates the cache: a path that fails to resolve
// before the symbol is inserted resolves once it has been inserted.
func TestResolve_MutationInvalidatesCache(t *testing.T) {
	s := NewSymbolTable()
	if _, err := s.Resolve(NewSymbolPath("Late"), namespace.Namespace{}); err == nil {
		t.Fatal("expected NotFound before insertion")
	}
	s.Insert(Symbol{
		Token:     token.NewBuiltinToken("Late"),
		Namespace: namespace.New("prj"),
		Kind:      KindModule,
		Public:    true,
	})
	result, err := s.Resolve(NewSymbolPath("Late"), namespace.Namespace{})
	if err != nil {
		t.Fatalf("expected resolution to succeed after insert, got %v", err)
	}
	if got, want := result.Found.Namespace.String(), "prj"; got != want {
		t.Fatalf("namespace = %q, want %q", got, want)
	}
}

// Round-trip: insert then get returns a symbol with the same id.
func TestSymbolTable_InsertGetRoundTrip(t *testing.T) {
	s := NewSymbolTable()
	id, ok := s.Insert(Symbol{
		Token:     token.NewBuiltinToken("Foo"),
		Namespace: namespace.New("prj"),
		Kind:      KindModule,
	})
	if !ok {
		t.Fatal("insert failed")
	}
	got, ok := s.Get(id)
	if !ok {
		t.Fatal("get failed")
	}
	if got.ID != id {
		t.Fatalf("got.ID = %v, want %v", got.ID, id)
	}
}

// Round-trip: pushing then popping an override restores the pre-push
// override stack.
func TestSymbolTable_PushPopOverrideRoundTrip(t *testing.T) {
	s := NewSymbolTable()
	id, _ := s.Insert(Symbol{
		Token:     token.NewBuiltinToken("p"),
		Namespace: namespace.New("prj"),
		Kind:      KindParameter,
	})
	before, hadBefore := s.CurrentOverride(id)

	if !s.PushOverride(id, 42) {
		t.Fatal("push failed")
	}
	if v, ok := s.CurrentOverride(id); !ok || v != 42 {
		t.Fatalf("CurrentOverride after push = %v, %v; want 42, true", v, ok)
	}
	if !s.PopOverride(id) {
		t.Fatal("pop failed")
	}

	after, hadAfter := s.CurrentOverride(id)
	if hadBefore != hadAfter || before != after {
		t.Fatalf("override state after push+pop = (%v, %v), want pre-push state (%v, %v)", after, hadAfter, before, hadBefore)
	}
}

// Resolution terminates for a self-referential struct member instead of
// looping forever (spec.md section 9, "Cycle breaking").
func TestResolve_SelfReferentialStructTerminates(t *testing.T) {
	s := fixture(t)
	type outcome struct {
		result ResolveResult
		err    *ResolveError
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := s.Resolve(NewSymbolPath("paramB", "memberB", "memberB", "memberA"), namespace.New("prj", "ModuleA"))
		done <- outcome{result, err}
	}()
	select {
	case o := <-done:
		if o.err != nil {
			t.Fatalf("unexpected error: %v", o.err)
		}
		if got, want := o.result.Found.Namespace.String(), "prj::PackageA::StructB"; got != want {
			t.Fatalf("namespace = %q, want %q", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("resolve did not terminate on a self-referential struct chain")
	}
}
