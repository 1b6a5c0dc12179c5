package resolver

import (
	"path/filepath"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
)

// HasUseClientDirective reports whether a module opts into the client
// boundary: its first top-level statement must be the string literal
// directive "use client".
func HasUseClientDirective(sf *ast.SourceFile) bool {
	if sf == nil || sf.Statements == nil || len(sf.Statements.Nodes) == 0 {
		return false
	}
	first := sf.Statements.Nodes[0]
	if first.Kind != ast.KindExpressionStatement {
		return false
	}
	expr := first.AsExpressionStatement().Expression
	if expr == nil || expr.Kind != ast.KindStringLiteral {
		return false
	}
	return expr.AsStringLiteral().Text == "use client"
}

// IsTestFile reports whether a file name marks a test module
// (a ".test." or ".spec." segment before the extension). Test files are
// skipped entirely: their components never render across a real boundary.
func IsTestFile(path string) bool {
	base := filepath.Base(filepath.ToSlash(path))
	return strings.Contains(base, ".test.") || strings.Contains(base, ".spec.")
}
