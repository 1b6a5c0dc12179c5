package resolver_test

import (
	"testing"

	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/typeshape"
)

const shapesSource = `
export type Str = string;
export type MaybeStr = string | null;
export type Callback = () => void;
export type Handler = (e: string) => number;
export class Widget { id = 0; }
export type WidgetCtor = typeof Widget;
export type Stamp = Date;
export type Lookup = Map<string, number>;
export type DateCtor = DateConstructor;
export interface Profile { name: string; age: number; }
export type Names = string[];
export type Pair = [string, number];
export type WithCallback = { label: string; onClick: () => void };
export type Dict = { [key: string]: () => void };
export type Mixed = string | (() => void);
export type Both = Profile & { extra: string };
export type Anything = any;
export type Tree = { value: string; children: Tree[] };
`

func hasMemberOfKind(s *typeshape.Shape, kind typeshape.Kind) bool {
	for _, m := range s.Members {
		if m != nil && m.Kind == kind {
			return true
		}
	}
	return false
}

func TestResolvePrimitive(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	assertShapeKind(t, env.resolveNamedType(t, "Str"), typeshape.KindPrimitive)
}

func TestResolveNullableUnion(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	shape := env.resolveNamedType(t, "MaybeStr")
	assertShapeKind(t, shape, typeshape.KindUnion)
	if len(shape.Members) != 2 {
		t.Fatalf("expected 2 union members, got %d", len(shape.Members))
	}
	for _, m := range shape.Members {
		assertShapeKind(t, m, typeshape.KindPrimitive)
	}
}

func TestResolveFunction(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	assertShapeKind(t, env.resolveNamedType(t, "Callback"), typeshape.KindFunction)
	assertShapeKind(t, env.resolveNamedType(t, "Handler"), typeshape.KindFunction)
}

func TestResolveClassInstance(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	shape := env.resolveNamedType(t, "Widget")
	assertShapeKind(t, shape, typeshape.KindClassInstance)
	if shape.Name != "Widget" {
		t.Errorf("expected class name Widget, got %q", shape.Name)
	}
}

func TestResolveClassConstructor(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	shape := env.resolveNamedType(t, "WidgetCtor")
	assertShapeKind(t, shape, typeshape.KindConstructor)
	if shape.Name != "Widget" {
		t.Errorf("expected constructor name Widget, got %q", shape.Name)
	}
}

func TestResolveHostNativeInstance(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	shape := env.resolveNamedType(t, "Stamp")
	assertShapeKind(t, shape, typeshape.KindClassInstance)
	if shape.Name != "Date" {
		t.Errorf("expected Date, got %q", shape.Name)
	}

	shape = env.resolveNamedType(t, "Lookup")
	assertShapeKind(t, shape, typeshape.KindClassInstance)
	if shape.Name != "Map" {
		t.Errorf("expected Map, got %q", shape.Name)
	}
}

func TestResolveHostNativeConstructor(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	shape := env.resolveNamedType(t, "DateCtor")
	assertShapeKind(t, shape, typeshape.KindConstructor)
	if shape.Name != "Date" {
		t.Errorf("expected constructor name Date, got %q", shape.Name)
	}
}

func TestResolveInterface(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	shape := env.resolveNamedType(t, "Profile")
	assertShapeKind(t, shape, typeshape.KindPlainData)
	if len(shape.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(shape.Members))
	}
	for _, m := range shape.Members {
		assertShapeKind(t, m, typeshape.KindPrimitive)
	}
}

func TestResolveArray(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	shape := env.resolveNamedType(t, "Names")
	assertShapeKind(t, shape, typeshape.KindPlainData)
	if len(shape.Members) != 1 {
		t.Fatalf("expected 1 element member, got %d", len(shape.Members))
	}
	assertShapeKind(t, shape.Members[0], typeshape.KindPrimitive)
}

func TestResolveTuple(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	shape := env.resolveNamedType(t, "Pair")
	assertShapeKind(t, shape, typeshape.KindPlainData)
	if len(shape.Members) != 2 {
		t.Fatalf("expected 2 tuple members, got %d", len(shape.Members))
	}
}

func TestResolveObjectWithFunctionMember(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	shape := env.resolveNamedType(t, "WithCallback")
	assertShapeKind(t, shape, typeshape.KindPlainData)
	if !hasMemberOfKind(shape, typeshape.KindFunction) {
		t.Error("expected a function member")
	}
	if !hasMemberOfKind(shape, typeshape.KindPrimitive) {
		t.Error("expected a primitive member")
	}
}

func TestResolveIndexSignature(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	shape := env.resolveNamedType(t, "Dict")
	assertShapeKind(t, shape, typeshape.KindPlainData)
	if !hasMemberOfKind(shape, typeshape.KindFunction) {
		t.Error("expected index signature value to surface as a function member")
	}
}

func TestResolveUnionWithFunctionBranch(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	shape := env.resolveNamedType(t, "Mixed")
	assertShapeKind(t, shape, typeshape.KindUnion)
	if !hasMemberOfKind(shape, typeshape.KindFunction) {
		t.Error("expected a function branch")
	}
}

func TestResolveIntersection(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	shape := env.resolveNamedType(t, "Both")
	assertShapeKind(t, shape, typeshape.KindIntersection)
	if len(shape.Members) != 2 {
		t.Fatalf("expected 2 intersection members, got %d", len(shape.Members))
	}
}

func TestResolveAnyIsOpaque(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	assertShapeKind(t, env.resolveNamedType(t, "Anything"), typeshape.KindOpaque)
}

func TestResolveRecursiveTypeTerminates(t *testing.T) {
	env := setupChecker(t, "shapes.ts", shapesSource)
	defer env.release()

	// Tree references itself through an array member; resolution must
	// produce a finite tree.
	shape := env.resolveNamedType(t, "Tree")
	assertShapeKind(t, shape, typeshape.KindPlainData)
	if len(shape.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(shape.Members))
	}
}
