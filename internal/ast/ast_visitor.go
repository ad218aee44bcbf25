package ast

// Visitor is the walker contract: one Before/After pair per grammar
// non-terminal modeled in this package (spec.md section 6, "Walker
// contract. A visitor interface with Before/After hooks on every grammar
// non-terminal"). internal/walker.BaseVisitor supplies no-op defaults so a
// concrete pass only overrides the hooks it cares about, the same
// small-interface-big-default-impl shape used for unimplemented Visit
// cases in the teacher repository's own analyzer walker.
type Visitor interface {
	BeforeProgram(*Program)
	AfterProgram(*Program)

	BeforeModule(*ModuleDecl)
	AfterModule(*ModuleDecl)

	BeforeInterface(*InterfaceDecl)
	AfterInterface(*InterfaceDecl)

	BeforePackage(*PackageDecl)
	AfterPackage(*PackageDecl)

	BeforePort(*PortDecl)
	AfterPort(*PortDecl)

	BeforeVariable(*VariableDecl)
	AfterVariable(*VariableDecl)

	BeforeParameter(*ParameterDecl)
	AfterParameter(*ParameterDecl)

	BeforeInstance(*InstanceDecl)
	AfterInstance(*InstanceDecl)

	BeforeTypeDef(*TypeDefDecl)
	AfterTypeDef(*TypeDefDecl)

	BeforeModport(*ModportDecl)
	AfterModport(*ModportDecl)

	BeforeStruct(*StructDecl)
	AfterStruct(*StructDecl)

	BeforeUnion(*UnionDecl)
	AfterUnion(*UnionDecl)

	BeforeEnum(*EnumDecl)
	AfterEnum(*EnumDecl)

	BeforeFunction(*FunctionDecl)
	AfterFunction(*FunctionDecl)

	BeforeAlwaysFf(*AlwaysFfStatement)
	AfterAlwaysFf(*AlwaysFfStatement)

	BeforeIfReset(*IfResetStatement)
	AfterIfReset(*IfResetStatement)

	BeforeAssignment(*AssignmentStatement)
	AfterAssignment(*AssignmentStatement)

	BeforeBlock(*BlockStatement)
	AfterBlock(*BlockStatement)

	BeforeIdentifier(*Identifier)
	AfterIdentifier(*Identifier)

	BeforeHierarchicalIdentifier(*HierarchicalIdentifier)
	AfterHierarchicalIdentifier(*HierarchicalIdentifier)
}
