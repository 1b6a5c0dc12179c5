// Package typeshape defines the structural type description consumed by the
// serializability classifier. A Shape is a normalized, owned representation of
// a TypeScript type — the resolver produces Shapes from checker types so that
// the classifier never touches compiler internals.
package typeshape

// Kind identifies the primary shape of a type.
type Kind string

const (
	// KindPrimitive covers string, number, boolean, bigint, literals,
	// null and undefined. Always serializable.
	KindPrimitive Kind = "primitive"

	// KindPlainData covers object literals, interfaces without class backing,
	// arrays, tuples and index-signature mappings. Serializable iff every
	// member shape is serializable.
	KindPlainData Kind = "plain-data"

	// KindFunction covers any type with call signatures.
	KindFunction Kind = "function"

	// KindClassInstance covers nominal types backed by a class declaration
	// or a host-runtime class (Date, Map, ...). Name carries the nominal name.
	KindClassInstance Kind = "class-instance"

	// KindConstructor covers types with construct signatures ("new (...) => T").
	// Name carries the constructed type's nominal name when known.
	KindConstructor Kind = "constructor"

	// KindUnion is an ordered set of alternative shapes.
	KindUnion Kind = "union"

	// KindIntersection is a set of combined shapes.
	KindIntersection Kind = "intersection"

	// KindOpaque is anything the resolver could not place in the categories
	// above (any, unknown, unresolved symbols, ...). Treated as serializable.
	KindOpaque Kind = "opaque"
)

// Shape is the tagged structural description of a field's type.
type Shape struct {
	Kind Kind `json:"kind"`

	// Name is the nominal type name for class-instance and constructor shapes.
	Name string `json:"name,omitempty"`

	// Members holds branch shapes for unions and intersections, and member
	// shapes (property types, element types, index-signature value types)
	// for plain data.
	Members []*Shape `json:"members,omitempty"`

	// ID identifies the checker type this shape was resolved from. It keys
	// cycle detection during classification; zero means no identity.
	ID uint64 `json:"-"`
}

// Field pairs a declared prop name with its resolved shape.
// Fields are classified independently, in declaration order.
type Field struct {
	Name  string
	Shape *Shape
}

// FileContext carries the path of the module being checked. It only
// influences the reset-naming exception for error-boundary files.
type FileContext struct {
	Path string
}

// Primitive returns a primitive shape.
func Primitive() *Shape { return &Shape{Kind: KindPrimitive} }

// Opaque returns an opaque shape.
func Opaque() *Shape { return &Shape{Kind: KindOpaque} }

// Function returns a function shape.
func Function() *Shape { return &Shape{Kind: KindFunction} }

// ClassInstance returns a class-instance shape with the given nominal name.
func ClassInstance(name string) *Shape {
	return &Shape{Kind: KindClassInstance, Name: name}
}

// Constructor returns a constructor shape with the given nominal name.
func Constructor(name string) *Shape {
	return &Shape{Kind: KindConstructor, Name: name}
}

// PlainData returns a plain-data shape over the given member shapes.
func PlainData(members ...*Shape) *Shape {
	return &Shape{Kind: KindPlainData, Members: members}
}

// Union returns a union shape over the given branches, preserving order.
func Union(members ...*Shape) *Shape {
	return &Shape{Kind: KindUnion, Members: members}
}

// Intersection returns an intersection shape over the given branches.
func Intersection(members ...*Shape) *Shape {
	return &Shape{Kind: KindIntersection, Members: members}
}
