package symbols

import (
	"testing"

	"github.com/veryl-lang/semcore/internal/namespace"
	"github.com/veryl-lang/semcore/internal/token"
)

// ApplyImport makes a package member visible in the importing namespace
// without moving it: the symbol keeps its original declaring namespace
// but gains the importer's namespace in its Imported list (spec.md
// section 4.2).
func TestApplyImport_SingleMember(t *testing.T) {
	s := NewSymbolTable()
	pkgID, _ := s.Insert(Symbol{
		Token:     token.NewBuiltinToken("PackageA"),
		Namespace: namespace.New("prj"),
		Kind:      KindPackage,
		Public:    true,
	})
	constID, _ := s.Insert(Symbol{
		Token:     token.NewBuiltinToken("ConstA"),
		Namespace: namespace.New("prj", "PackageA"),
		Kind:      KindParameter,
	})

	s.AddImport(Import{
		Path:      NewSymbolPath("PackageA", "ConstA"),
		Namespace: namespace.New("prj", "ModuleA"),
	})
	s.ApplyImport()

	sym, ok := s.Get(constID)
	if !ok {
		t.Fatal("ConstA missing after import")
	}
	if len(sym.Imported) != 1 || !sym.Imported[0].Matched(namespace.New("prj", "ModuleA")) {
		t.Fatalf("ConstA.Imported = %v, want [prj::ModuleA]", sym.Imported)
	}
	if !sym.Namespace.Matched(namespace.New("prj", "PackageA")) {
		t.Fatalf("import must not move the symbol's own namespace, got %v", sym.Namespace)
	}

	if _, ok := s.Get(pkgID); !ok {
		t.Fatal("PackageA missing")
	}
}

// A wildcard import marks every member of the target package as imported
// into the importer's namespace.
func TestApplyImport_Wildcard(t *testing.T) {
	s := NewSymbolTable()
	s.Insert(Symbol{
		Token:     token.NewBuiltinToken("PackageA"),
		Namespace: namespace.New("prj"),
		Kind:      KindPackage,
		Public:    true,
	})
	aID, _ := s.Insert(Symbol{
		Token:     token.NewBuiltinToken("ConstA"),
		Namespace: namespace.New("prj", "PackageA"),
		Kind:      KindParameter,
	})
	bID, _ := s.Insert(Symbol{
		Token:     token.NewBuiltinToken("ConstB"),
		Namespace: namespace.New("prj", "PackageA"),
		Kind:      KindParameter,
	})

	s.AddImport(Import{
		Path:      NewSymbolPath("PackageA"),
		Namespace: namespace.New("prj", "ModuleA"),
		Wildcard:  true,
	})
	s.ApplyImport()

	for _, id := range []SymbolId{aID, bID} {
		sym, _ := s.Get(id)
		if len(sym.Imported) != 1 {
			t.Fatalf("symbol %v not marked imported: %+v", id, sym)
		}
	}
}

// An import whose path can't be resolved is silently skipped rather than
// surfacing an error (spec.md section 4.2, section 7).
func TestApplyImport_UnresolvableIsSkipped(t *testing.T) {
	s := NewSymbolTable()
	s.AddImport(Import{
		Path:      NewSymbolPath("DoesNotExist"),
		Namespace: namespace.New("prj", "ModuleA"),
	})
	s.ApplyImport() // must not panic
}

// ExportSnapshot reports the table's current size and, outside test mode,
// a non-empty correlation id.
func TestExportSnapshot_ReportsSize(t *testing.T) {
	s := NewSymbolTable()
	before := s.ExportSnapshot()
	s.Insert(Symbol{
		Token:     token.NewBuiltinToken("Extra"),
		Namespace: namespace.New("prj"),
		Kind:      KindModule,
	})
	after := s.ExportSnapshot()

	if after.Symbols != before.Symbols+1 {
		t.Fatalf("Symbols = %d, want %d", after.Symbols, before.Symbols+1)
	}
	if before.ID == "" || after.ID == "" {
		t.Fatal("expected a non-empty correlation id outside test mode")
	}
	if before.ID == after.ID {
		t.Fatal("two snapshots must not share a correlation id")
	}
}
