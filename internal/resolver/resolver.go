// Package resolver turns TypeScript checker types into the owned
// typeshape.Shape trees the classifier consumes, and discovers which
// exported components of a "use client" module need checking.
package resolver

import (
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"

	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/classify"
	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/typeshape"
)

// maxResolveDepth bounds shape resolution. Prop types are ordinary source
// annotations; anything deeper is a pathological generic expansion and
// resolves to an opaque (serializable) shape instead of overflowing.
const maxResolveDepth = 20

// ShapeResolver converts checker types into typeshape.Shape trees.
type ShapeResolver struct {
	checker *shimchecker.Checker
	// visiting tracks types currently being resolved so self-referential
	// aliases produce a finite tree.
	visiting map[shimchecker.TypeId]bool
	depth    int
}

// NewShapeResolver creates a resolver bound to a checker.
func NewShapeResolver(checker *shimchecker.Checker) *ShapeResolver {
	return &ShapeResolver{
		checker:  checker,
		visiting: make(map[shimchecker.TypeId]bool),
	}
}

// Resolve converts a checker type into a Shape. It never fails: types the
// resolver cannot place in a category come back opaque, which the classifier
// treats as serializable.
func (r *ShapeResolver) Resolve(t *shimchecker.Type) *typeshape.Shape {
	if t == nil {
		return typeshape.Opaque()
	}
	if r.depth >= maxResolveDepth {
		return typeshape.Opaque()
	}
	r.depth++
	defer func() { r.depth-- }()

	id := uint64(t.Id())
	if r.visiting[t.Id()] {
		// Cyclic alias — the cyclic branch counts as serializable.
		return &typeshape.Shape{Kind: typeshape.KindOpaque, ID: id}
	}

	flags := t.Flags()

	if flags&shimchecker.TypeFlagsUnion != 0 {
		return r.resolveComposite(t, typeshape.KindUnion)
	}
	if flags&shimchecker.TypeFlagsIntersection != 0 {
		return r.resolveComposite(t, typeshape.KindIntersection)
	}

	return r.resolveSingle(t)
}

// resolveComposite resolves union and intersection members in branch order.
func (r *ShapeResolver) resolveComposite(t *shimchecker.Type, kind typeshape.Kind) *typeshape.Shape {
	id := uint64(t.Id())
	r.visiting[t.Id()] = true
	defer delete(r.visiting, t.Id())

	members := make([]*typeshape.Shape, 0, len(t.Types()))
	for _, member := range t.Types() {
		members = append(members, r.Resolve(member))
	}
	return &typeshape.Shape{Kind: kind, Members: members, ID: id}
}

// resolveSingle handles a non-union, non-intersection type.
func (r *ShapeResolver) resolveSingle(t *shimchecker.Type) *typeshape.Shape {
	id := uint64(t.Id())
	flags := t.Flags()

	const primitiveFlags = shimchecker.TypeFlagsString |
		shimchecker.TypeFlagsNumber |
		shimchecker.TypeFlagsBoolean |
		shimchecker.TypeFlagsBigInt |
		shimchecker.TypeFlagsStringLiteral |
		shimchecker.TypeFlagsNumberLiteral |
		shimchecker.TypeFlagsBooleanLiteral |
		shimchecker.TypeFlagsBigIntLiteral |
		shimchecker.TypeFlagsEnum |
		shimchecker.TypeFlagsEnumLiteral |
		shimchecker.TypeFlagsTemplateLiteral |
		shimchecker.TypeFlagsNull |
		shimchecker.TypeFlagsUndefined |
		shimchecker.TypeFlagsVoid

	if flags&primitiveFlags != 0 {
		return &typeshape.Shape{Kind: typeshape.KindPrimitive, ID: id}
	}

	if flags&shimchecker.TypeFlagsObject != 0 {
		return r.resolveObject(t)
	}

	// Type parameters and friends: resolve through the base constraint.
	if flags&(shimchecker.TypeFlagsTypeParameter|shimchecker.TypeFlagsConditional|shimchecker.TypeFlagsIndexedAccess|shimchecker.TypeFlagsIndex) != 0 {
		constraint := shimchecker.Checker_getBaseConstraintOfType(r.checker, t)
		if constraint != nil && constraint != t {
			return r.Resolve(constraint)
		}
	}

	// any, unknown, never, symbol, unresolved — fail open.
	return &typeshape.Shape{Kind: typeshape.KindOpaque, ID: id}
}

// resolveObject handles object types: arrays, tuples, functions, classes,
// host-runtime natives and plain data. Call signatures are checked before
// construct signatures so a degenerate callable-and-constructable type
// reports as a function.
func (r *ShapeResolver) resolveObject(t *shimchecker.Type) *typeshape.Shape {
	id := uint64(t.Id())

	if shimchecker.Checker_isArrayType(r.checker, t) {
		typeArgs := shimchecker.Checker_getTypeArguments(r.checker, t)
		if len(typeArgs) == 0 {
			return &typeshape.Shape{Kind: typeshape.KindPlainData, ID: id}
		}
		r.visiting[t.Id()] = true
		elem := r.Resolve(typeArgs[0])
		delete(r.visiting, t.Id())
		return &typeshape.Shape{Kind: typeshape.KindPlainData, Members: []*typeshape.Shape{elem}, ID: id}
	}

	if shimchecker.IsTupleType(t) {
		r.visiting[t.Id()] = true
		defer delete(r.visiting, t.Id())
		var members []*typeshape.Shape
		for _, arg := range shimchecker.Checker_getTypeArguments(r.checker, t) {
			members = append(members, r.Resolve(arg))
		}
		return &typeshape.Shape{Kind: typeshape.KindPlainData, Members: members, ID: id}
	}

	callSigs := shimchecker.Checker_getSignaturesOfType(r.checker, t, shimchecker.SignatureKindCall)
	if len(callSigs) > 0 {
		return &typeshape.Shape{Kind: typeshape.KindFunction, ID: id}
	}

	ctorSigs := shimchecker.Checker_getSignaturesOfType(r.checker, t, shimchecker.SignatureKindConstruct)
	if len(ctorSigs) > 0 {
		return &typeshape.Shape{Kind: typeshape.KindConstructor, Name: constructedName(t), ID: id}
	}

	if sym := t.Symbol(); sym != nil {
		// Class-backed nominal types.
		if sym.Flags&ast.SymbolFlagsClass != 0 {
			return &typeshape.Shape{Kind: typeshape.KindClassInstance, Name: sym.Name, ID: id}
		}
		// Host-runtime natives (Date, Map, Set, ...) are declared as
		// interfaces in the standard lib, so the class flag never fires.
		// Tag them by nominal name instead of walking their method-bearing
		// structure.
		if classify.IsAllowlisted(sym.Name) {
			return &typeshape.Shape{Kind: typeshape.KindClassInstance, Name: sym.Name, ID: id}
		}
	}

	// Plain data: property types plus index-signature value types,
	// in declaration order.
	r.visiting[t.Id()] = true
	defer delete(r.visiting, t.Id())

	var members []*typeshape.Shape
	for _, prop := range shimchecker.Checker_getPropertiesOfType(r.checker, t) {
		propType := shimchecker.Checker_getTypeOfSymbol(r.checker, prop)
		members = append(members, r.Resolve(propType))
	}
	for _, info := range shimchecker.Checker_getIndexInfosOfType(r.checker, t) {
		members = append(members, r.Resolve(shimchecker.IndexInfo_valueType(info)))
	}
	return &typeshape.Shape{Kind: typeshape.KindPlainData, Members: members, ID: id}
}

// constructedName names the type a constructor shape builds. The standard
// lib declares runtime constructors as `FooConstructor` interfaces
// (DateConstructor, ArrayConstructor, ...); strip the suffix so the
// allowlist sees the constructed type's name. Class symbols already carry
// the class name.
func constructedName(t *shimchecker.Type) string {
	name := nominalName(t)
	if len(name) > len("Constructor") && strings.HasSuffix(name, "Constructor") {
		return strings.TrimSuffix(name, "Constructor")
	}
	return name
}

// nominalName extracts a type's symbol name, filtering the checker's
// internal placeholders for anonymous types.
func nominalName(t *shimchecker.Type) string {
	sym := t.Symbol()
	if sym == nil {
		return ""
	}
	name := sym.Name
	if name == "" || name == "__type" || name == "__object" || name == "__function" {
		return ""
	}
	if name[0] == '\xfe' {
		return ""
	}
	return name
}
