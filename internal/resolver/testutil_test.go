package resolver_test

import (
	"context"
	"testing"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/bundled"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/tsoptions"
	"github.com/microsoft/typescript-go/shim/tspath"

	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/resolver"
	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/testutil"
	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/typeshape"
)

const testRootDir = "/project"

const testTSConfig = `{
	"compilerOptions": {
		"strict": true,
		"noEmit": true,
		"jsx": "preserve"
	},
	"include": ["**/*.ts", "**/*.tsx"]
}`

// checkerEnv holds a tsgo program, checker, and source file for resolver tests.
type checkerEnv struct {
	program    *shimcompiler.Program
	checker    *shimchecker.Checker
	sourceFile *ast.SourceFile
	release    func()
}

// setupChecker creates an in-memory tsgo program from inline TypeScript
// source and returns the environment for testing. The caller must call
// env.release() when done.
func setupChecker(t *testing.T, fileName, source string) *checkerEnv {
	t.Helper()
	return setupCheckerFiles(t, fileName, map[string]string{fileName: source})
}

// setupCheckerFiles builds a program over several virtual source files.
// mainFile selects the env's sourceFile and must be a key of files.
func setupCheckerFiles(t *testing.T, mainFile string, files map[string]string) *checkerEnv {
	t.Helper()

	virtualFiles := map[string]string{
		tspath.ResolvePath(testRootDir, "tsconfig.json"): testTSConfig,
	}
	for name, source := range files {
		virtualFiles[tspath.ResolvePath(testRootDir, name)] = source
	}
	fs := testutil.NewDefaultOverlayVFS(virtualFiles)
	host := shimcompiler.NewCompilerHost(testRootDir, fs, bundled.LibPath(), nil, nil)

	configParseResult, diags := tsoptions.GetParsedCommandLineOfConfigFile(
		"tsconfig.json", &core.CompilerOptions{}, nil, host, nil,
	)
	if len(diags) > 0 {
		t.Fatalf("tsconfig parse errors: %v", diags[0].String())
	}

	program := shimcompiler.NewProgram(shimcompiler.ProgramOptions{
		Config:                      configParseResult,
		SingleThreaded:              core.TSTrue,
		Host:                        host,
		UseSourceOfProjectReference: true,
	})
	if program == nil {
		t.Fatal("failed to create program")
	}
	program.BindSourceFiles()

	sourceFile := program.GetSourceFile(mainFile)
	if sourceFile == nil {
		t.Fatalf("source file %q not found in program", mainFile)
	}

	checker, release := shimcompiler.Program_GetTypeChecker(program, context.Background())
	if checker == nil {
		t.Fatal("failed to get type checker")
	}

	return &checkerEnv{
		program:    program,
		checker:    checker,
		sourceFile: sourceFile,
		release:    release,
	}
}

// resolveNamedType looks up a top-level type declaration by name and resolves
// it to a Shape.
func (env *checkerEnv) resolveNamedType(t *testing.T, typeName string) *typeshape.Shape {
	t.Helper()

	r := resolver.NewShapeResolver(env.checker)

	for _, stmt := range env.sourceFile.Statements.Nodes {
		switch stmt.Kind {
		case ast.KindTypeAliasDeclaration:
			decl := stmt.AsTypeAliasDeclaration()
			if decl.Name().Text() == typeName {
				resolved := shimchecker.Checker_getTypeFromTypeNode(env.checker, decl.Type)
				return r.Resolve(resolved)
			}
		case ast.KindInterfaceDeclaration:
			decl := stmt.AsInterfaceDeclaration()
			if decl.Name().Text() == typeName {
				sym := env.checker.GetSymbolAtLocation(decl.Name())
				if sym != nil {
					resolved := shimchecker.Checker_getDeclaredTypeOfSymbol(env.checker, sym)
					return r.Resolve(resolved)
				}
			}
		case ast.KindClassDeclaration:
			decl := stmt.AsClassDeclaration()
			if decl.Name() != nil && decl.Name().Text() == typeName {
				sym := env.checker.GetSymbolAtLocation(decl.Name())
				if sym != nil {
					resolved := shimchecker.Checker_getDeclaredTypeOfSymbol(env.checker, sym)
					return r.Resolve(resolved)
				}
			}
		}
	}

	t.Fatalf("type %q not found in source file", typeName)
	return nil
}

func assertShapeKind(t *testing.T, s *typeshape.Shape, want typeshape.Kind) {
	t.Helper()
	if s == nil {
		t.Fatalf("expected shape of kind %s, got nil", want)
	}
	if s.Kind != want {
		t.Fatalf("expected kind %s, got %s", want, s.Kind)
	}
}
