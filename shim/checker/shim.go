// Package checker re-exports github.com/microsoft/typescript-go/internal/checker,
// including go:linkname accessors for the unexported Checker methods and an
// unsafe field accessor for IndexInfo, following tsgolint's tools/gen_shims.
package checker

import (
	"unsafe"

	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/checker"
)

type (
	Checker       = checker.Checker
	IndexInfo     = checker.IndexInfo
	Signature     = checker.Signature
	SignatureKind = checker.SignatureKind
	Type          = checker.Type
	TypeFlags     = checker.TypeFlags
	TypeId        = checker.TypeId
)

const (
	SignatureKindCall      = checker.SignatureKindCall
	SignatureKindConstruct = checker.SignatureKindConstruct

	TypeFlagsBigInt          = checker.TypeFlagsBigInt
	TypeFlagsBigIntLiteral   = checker.TypeFlagsBigIntLiteral
	TypeFlagsBoolean         = checker.TypeFlagsBoolean
	TypeFlagsBooleanLiteral  = checker.TypeFlagsBooleanLiteral
	TypeFlagsConditional     = checker.TypeFlagsConditional
	TypeFlagsEnum            = checker.TypeFlagsEnum
	TypeFlagsEnumLiteral     = checker.TypeFlagsEnumLiteral
	TypeFlagsIndex           = checker.TypeFlagsIndex
	TypeFlagsIndexedAccess   = checker.TypeFlagsIndexedAccess
	TypeFlagsIntersection    = checker.TypeFlagsIntersection
	TypeFlagsNull            = checker.TypeFlagsNull
	TypeFlagsNumber          = checker.TypeFlagsNumber
	TypeFlagsNumberLiteral   = checker.TypeFlagsNumberLiteral
	TypeFlagsObject          = checker.TypeFlagsObject
	TypeFlagsString          = checker.TypeFlagsString
	TypeFlagsStringLiteral   = checker.TypeFlagsStringLiteral
	TypeFlagsTemplateLiteral = checker.TypeFlagsTemplateLiteral
	TypeFlagsTypeParameter   = checker.TypeFlagsTypeParameter
	TypeFlagsUndefined       = checker.TypeFlagsUndefined
	TypeFlagsUnion           = checker.TypeFlagsUnion
	TypeFlagsVoid            = checker.TypeFlagsVoid
)

var IsTupleType = checker.IsTupleType

//go:linkname Checker_getBaseConstraintOfType github.com/microsoft/typescript-go/internal/checker.(*Checker).getBaseConstraintOfType
func Checker_getBaseConstraintOfType(recv *checker.Checker, t *checker.Type) *checker.Type

//go:linkname Checker_getDeclaredTypeOfSymbol github.com/microsoft/typescript-go/internal/checker.(*Checker).getDeclaredTypeOfSymbol
func Checker_getDeclaredTypeOfSymbol(recv *checker.Checker, symbol *ast.Symbol) *checker.Type

//go:linkname Checker_getIndexInfosOfType github.com/microsoft/typescript-go/internal/checker.(*Checker).getIndexInfosOfType
func Checker_getIndexInfosOfType(recv *checker.Checker, t *checker.Type) []*checker.IndexInfo

//go:linkname Checker_getPropertiesOfType github.com/microsoft/typescript-go/internal/checker.(*Checker).getPropertiesOfType
func Checker_getPropertiesOfType(recv *checker.Checker, t *checker.Type) []*ast.Symbol

//go:linkname Checker_getSignaturesOfType github.com/microsoft/typescript-go/internal/checker.(*Checker).getSignaturesOfType
func Checker_getSignaturesOfType(recv *checker.Checker, t *checker.Type, kind checker.SignatureKind) []*checker.Signature

//go:linkname Checker_getTypeArguments github.com/microsoft/typescript-go/internal/checker.(*Checker).getTypeArguments
func Checker_getTypeArguments(recv *checker.Checker, t *checker.Type) []*checker.Type

//go:linkname Checker_getTypeFromTypeNode github.com/microsoft/typescript-go/internal/checker.(*Checker).getTypeFromTypeNode
func Checker_getTypeFromTypeNode(recv *checker.Checker, node *ast.Node) *checker.Type

//go:linkname Checker_getTypeOfSymbol github.com/microsoft/typescript-go/internal/checker.(*Checker).getTypeOfSymbol
func Checker_getTypeOfSymbol(recv *checker.Checker, symbol *ast.Symbol) *checker.Type

//go:linkname Checker_isArrayType github.com/microsoft/typescript-go/internal/checker.(*Checker).isArrayType
func Checker_isArrayType(recv *checker.Checker, t *checker.Type) bool

// extra_IndexInfo mirrors the layout of checker.IndexInfo so unexported
// fields can be read through an unsafe cast.
type extra_IndexInfo struct {
	keyType     *checker.Type
	valueType   *checker.Type
	isReadonly  bool
	declaration *ast.Node
	components  []*ast.Node
}

func IndexInfo_valueType(v *checker.IndexInfo) *checker.Type {
	return ((*extra_IndexInfo)(unsafe.Pointer(v))).valueType
}
