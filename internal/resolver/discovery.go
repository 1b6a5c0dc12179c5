package resolver

import (
	"context"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	shimscanner "github.com/microsoft/typescript-go/shim/scanner"

	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/typeshape"
)

// Prop is one field of a component's props, with its declaration site.
type Prop struct {
	// Name is the declared prop name.
	Name string
	// Shape is the resolved type shape handed to the classifier.
	Shape *typeshape.Shape
	// Line and Column are 1-based; 0 means unknown.
	Line   int
	Column int
}

// Field converts the prop into the classifier's input.
func (p Prop) Field() typeshape.Field {
	return typeshape.Field{Name: p.Name, Shape: p.Shape}
}

// Component is an exported callable of a "use client" module whose first
// parameter is its props.
type Component struct {
	// Name is the exported name ("default" for anonymous default exports).
	Name string
	// SourceFile is the path of the module declaring the component.
	SourceFile string
	// Props lists the fields of the first parameter's type, in declaration order.
	Props []Prop
}

// BoundaryAnalyzer discovers checked components in client-boundary modules.
type BoundaryAnalyzer struct {
	program  *shimcompiler.Program
	checker  *shimchecker.Checker
	resolver *ShapeResolver
}

// NewBoundaryAnalyzer creates an analyzer with its own type checker.
// The returned release function must be called when analysis is done.
func NewBoundaryAnalyzer(program *shimcompiler.Program) (*BoundaryAnalyzer, func()) {
	checker, release := shimcompiler.Program_GetTypeChecker(program, context.Background())
	return &BoundaryAnalyzer{
		program:  program,
		checker:  checker,
		resolver: NewShapeResolver(checker),
	}, release
}

// NewBoundaryAnalyzerWithChecker creates an analyzer reusing an existing checker.
func NewBoundaryAnalyzerWithChecker(program *shimcompiler.Program, checker *shimchecker.Checker) *BoundaryAnalyzer {
	return &BoundaryAnalyzer{
		program:  program,
		checker:  checker,
		resolver: NewShapeResolver(checker),
	}
}

// AnalyzeProgram discovers components in every eligible source file matching
// the include/exclude patterns. Declaration files, test files and modules
// without the "use client" directive are skipped.
func (a *BoundaryAnalyzer) AnalyzeProgram(includePatterns, excludePatterns []string) []Component {
	var all []Component
	for _, sf := range a.program.GetSourceFiles() {
		if sf.IsDeclarationFile {
			continue
		}
		if IsTestFile(sf.FileName()) {
			continue
		}
		if !MatchesGlob(sf.FileName(), includePatterns, excludePatterns) {
			continue
		}
		all = append(all, a.AnalyzeSourceFile(sf)...)
	}
	return all
}

// AnalyzeSourceFile discovers the checked components of one module.
// Returns nil for modules that do not start with the "use client" directive.
func (a *BoundaryAnalyzer) AnalyzeSourceFile(sf *ast.SourceFile) []Component {
	if !HasUseClientDirective(sf) {
		return nil
	}

	var components []Component
	add := func(name string, fn *ast.Node) {
		if fn == nil {
			return
		}
		components = append(components, Component{
			Name:       name,
			SourceFile: sf.FileName(),
			Props:      a.propsOfCallable(fn),
		})
	}

	for _, stmt := range sf.Statements.Nodes {
		switch stmt.Kind {
		case ast.KindFunctionDeclaration:
			if !isExported(stmt) {
				continue
			}
			name := "default"
			decl := stmt.AsFunctionDeclaration()
			if decl.Name() != nil {
				name = decl.Name().Text()
			}
			add(name, stmt)

		case ast.KindVariableStatement:
			if !isExported(stmt) {
				continue
			}
			declList := stmt.AsVariableStatement().DeclarationList
			if declList == nil {
				continue
			}
			for _, declNode := range declList.AsVariableDeclarationList().Declarations.Nodes {
				decl := declNode.AsVariableDeclaration()
				fn := callableInitializer(decl.Initializer)
				if fn == nil {
					continue
				}
				name := "default"
				if decl.Name() != nil && decl.Name().Kind == ast.KindIdentifier {
					name = decl.Name().Text()
				}
				add(name, fn)
			}

		case ast.KindExportAssignment:
			// export default <expr>
			expr := stmt.AsExportAssignment().Expression
			if fn := callableInitializer(expr); fn != nil {
				add("default", fn)
				continue
			}
			// export default Identifier — follow the symbol to its declaration.
			if expr != nil && expr.Kind == ast.KindIdentifier {
				add("default", a.declaredCallable(expr))
			}
		}
	}

	return components
}

// propsOfCallable resolves the fields of a callable's first parameter.
// Returns nil when the callable takes no parameters or the props type
// cannot be resolved.
func (a *BoundaryAnalyzer) propsOfCallable(fn *ast.Node) []Prop {
	params := parameterList(fn)
	if params == nil || len(params.Nodes) == 0 {
		return nil
	}
	paramNode := params.Nodes[0]
	paramDecl := paramNode.AsParameterDeclaration()

	// Prefer the explicit annotation; fall back to the checker's inference
	// (handles destructured parameters with a separate type alias).
	var propsType *shimchecker.Type
	if paramDecl.Type != nil {
		propsType = shimchecker.Checker_getTypeFromTypeNode(a.checker, paramDecl.Type)
	} else if paramDecl.Name() != nil {
		if sym := a.checker.GetSymbolAtLocation(paramDecl.Name()); sym != nil {
			propsType = shimchecker.Checker_getTypeOfSymbol(a.checker, sym)
		}
	}
	if propsType == nil {
		return nil
	}

	var props []Prop
	for _, propSym := range shimchecker.Checker_getPropertiesOfType(a.checker, propsType) {
		propType := shimchecker.Checker_getTypeOfSymbol(a.checker, propSym)
		line, column := declarationSite(propSym)
		props = append(props, Prop{
			Name:   propSym.Name,
			Shape:  a.resolver.Resolve(propType),
			Line:   line,
			Column: column,
		})
	}
	return props
}

// declaredCallable follows an identifier to its declaration and returns it
// if function-like.
func (a *BoundaryAnalyzer) declaredCallable(ident *ast.Node) *ast.Node {
	sym := a.checker.GetSymbolAtLocation(ident)
	if sym == nil || sym.ValueDeclaration == nil {
		return nil
	}
	decl := sym.ValueDeclaration
	switch decl.Kind {
	case ast.KindFunctionDeclaration:
		return decl
	case ast.KindVariableDeclaration:
		return callableInitializer(decl.AsVariableDeclaration().Initializer)
	}
	return nil
}

// callableInitializer unwraps an expression to a function-like node.
func callableInitializer(expr *ast.Node) *ast.Node {
	if expr == nil {
		return nil
	}
	switch expr.Kind {
	case ast.KindArrowFunction, ast.KindFunctionExpression:
		return expr
	}
	return nil
}

// parameterList returns a function-like node's parameters.
func parameterList(fn *ast.Node) *ast.NodeList {
	switch fn.Kind {
	case ast.KindFunctionDeclaration:
		return fn.AsFunctionDeclaration().Parameters
	case ast.KindArrowFunction:
		return fn.AsArrowFunction().Parameters
	case ast.KindFunctionExpression:
		return fn.AsFunctionExpression().Parameters
	}
	return nil
}

// isExported reports whether a statement carries the export modifier.
func isExported(stmt *ast.Node) bool {
	return stmt.ModifierFlags()&ast.ModifierFlagsExport != 0
}

// declarationSite returns the 1-based line and column of a symbol's value
// declaration, or zeros when unknown.
func declarationSite(sym *ast.Symbol) (int, int) {
	if sym == nil || sym.ValueDeclaration == nil {
		return 0, 0
	}
	sf := ast.GetSourceFileOfNode(sym.ValueDeclaration)
	if sf == nil {
		return 0, 0
	}
	line, column := shimscanner.GetECMALineAndCharacterOfPosition(sf, sym.ValueDeclaration.Pos())
	return line + 1, column + 1
}
