// Package ast re-exports github.com/microsoft/typescript-go/internal/ast.
// The module path shares the typescript-go prefix so the internal import is
// permitted; see tsgolint's tools/gen_shims for the pattern.
package ast

import (
	"github.com/microsoft/typescript-go/internal/ast"
)

type (
	Diagnostic     = ast.Diagnostic
	Kind           = ast.Kind
	ModifierFlags  = ast.ModifierFlags
	Node           = ast.Node
	NodeList       = ast.NodeList
	SourceFile     = ast.SourceFile
	SourceFileLike = ast.SourceFileLike
	Symbol         = ast.Symbol
	SymbolFlags    = ast.SymbolFlags
)

const (
	KindArrowFunction        = ast.KindArrowFunction
	KindClassDeclaration     = ast.KindClassDeclaration
	KindExportAssignment     = ast.KindExportAssignment
	KindExpressionStatement  = ast.KindExpressionStatement
	KindFunctionDeclaration  = ast.KindFunctionDeclaration
	KindFunctionExpression   = ast.KindFunctionExpression
	KindIdentifier           = ast.KindIdentifier
	KindInterfaceDeclaration = ast.KindInterfaceDeclaration
	KindStringLiteral        = ast.KindStringLiteral
	KindTypeAliasDeclaration = ast.KindTypeAliasDeclaration
	KindVariableDeclaration  = ast.KindVariableDeclaration
	KindVariableStatement    = ast.KindVariableStatement

	ModifierFlagsExport = ast.ModifierFlagsExport

	SymbolFlagsClass = ast.SymbolFlagsClass
)

var GetSourceFileOfNode = ast.GetSourceFileOfNode
