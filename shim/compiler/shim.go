// Package compiler re-exports github.com/microsoft/typescript-go/internal/compiler.
package compiler

import (
	"context"

	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/checker"
	"github.com/microsoft/typescript-go/internal/compiler"
)

type (
	CompilerHost   = compiler.CompilerHost
	Program        = compiler.Program
	ProgramOptions = compiler.ProgramOptions
)

var (
	NewCompilerHost = compiler.NewCompilerHost
	NewProgram      = compiler.NewProgram
)

func Program_GetSyntacticDiagnostics(recv *compiler.Program, ctx context.Context, sourceFile *ast.SourceFile) []*ast.Diagnostic {
	return recv.GetSyntacticDiagnostics(ctx, sourceFile)
}

func Program_GetTypeChecker(recv *compiler.Program, ctx context.Context) (*checker.Checker, func()) {
	return recv.GetTypeChecker(ctx)
}
