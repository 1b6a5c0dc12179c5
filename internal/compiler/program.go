package compiler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/tsoptions"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"
)

// Diagnostic represents a compilation diagnostic message.
type Diagnostic struct {
	FilePath string
	Message  string
}

func (d Diagnostic) String() string {
	if d.FilePath != "" {
		return fmt.Sprintf("%s: %s", d.FilePath, d.Message)
	}
	return d.Message
}

// ParseTSConfig parses a tsconfig.json file using tsgo's native JSONC parser,
// which handles comments, trailing commas and extends chains.
func ParseTSConfig(fs vfs.FS, cwd string, tsconfigPath string, host shimcompiler.CompilerHost) (*tsoptions.ParsedCommandLine, []Diagnostic, error) {
	resolvedConfigPath := tspath.ResolvePath(cwd, tsconfigPath)
	if !fs.FileExists(resolvedConfigPath) {
		return nil, nil, fmt.Errorf("could not find tsconfig at %v", resolvedConfigPath)
	}

	configParseResult, diagnostics := tsoptions.GetParsedCommandLineOfConfigFile(tsconfigPath, &core.CompilerOptions{}, nil, host, nil)

	if len(diagnostics) > 0 {
		return nil, convertDiagnostics(diagnostics), nil
	}

	if configParseResult != nil && len(configParseResult.Errors) > 0 {
		return nil, convertDiagnostics(configParseResult.Errors), nil
	}

	return configParseResult, nil, nil
}

// CreateProgram creates and binds a TypeScript program from a parsed tsconfig.
func CreateProgram(parsedConfig *tsoptions.ParsedCommandLine, host shimcompiler.CompilerHost) (*shimcompiler.Program, []Diagnostic, error) {
	program := shimcompiler.NewProgram(shimcompiler.ProgramOptions{
		Config:                      parsedConfig,
		SingleThreaded:              core.TSTrue,
		Host:                        host,
		UseSourceOfProjectReference: true,
	})
	if program == nil {
		return nil, nil, errors.New("failed to create program")
	}

	programDiags := program.GetProgramDiagnostics()
	if len(programDiags) > 0 {
		return nil, convertDiagnostics(programDiags), nil
	}

	program.BindSourceFiles()

	return program, nil, nil
}

// SyntaxErrors returns parse errors for all source files.
func SyntaxErrors(program *shimcompiler.Program) []Diagnostic {
	diags := shimcompiler.Program_GetSyntacticDiagnostics(program, context.Background(), nil)
	return convertDiagnostics(diags)
}

// SourceFiles returns the program's source files, excluding declaration files.
func SourceFiles(program *shimcompiler.Program) []*ast.SourceFile {
	var files []*ast.SourceFile
	for _, f := range program.GetSourceFiles() {
		if !f.IsDeclarationFile {
			files = append(files, f)
		}
	}
	return files
}

// convertDiagnostics converts tsgo diagnostics to our Diagnostic type.
func convertDiagnostics(tsdiags []*ast.Diagnostic) []Diagnostic {
	diags := make([]Diagnostic, len(tsdiags))
	for i, d := range tsdiags {
		var filePath string
		if d.File() != nil {
			filePath = d.File().FileName()
		}
		diags[i] = Diagnostic{
			FilePath: filePath,
			Message:  d.String(),
		}
	}
	return diags
}

// FormatDiagnostics formats diagnostics into a human-readable block.
func FormatDiagnostics(diags []Diagnostic) string {
	var sb strings.Builder
	for _, d := range diags {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
