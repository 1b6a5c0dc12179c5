package resolver_test

import (
	"testing"

	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/resolver"
	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/typeshape"
)

func analyzeSource(t *testing.T, fileName, source string) []resolver.Component {
	t.Helper()
	env := setupChecker(t, fileName, source)
	t.Cleanup(env.release)

	analyzer := resolver.NewBoundaryAnalyzerWithChecker(env.program, env.checker)
	return analyzer.AnalyzeSourceFile(env.sourceFile)
}

func findComponent(t *testing.T, components []resolver.Component, name string) resolver.Component {
	t.Helper()
	for _, c := range components {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("component %q not found in %d components", name, len(components))
	return resolver.Component{}
}

func TestAnalyzeSkipsFilesWithoutDirective(t *testing.T) {
	components := analyzeSource(t, "server.ts", `
type Props = { onClick: () => void };
export function Button(props: Props) { return null; }
`)
	if len(components) != 0 {
		t.Errorf("expected no components without directive, got %d", len(components))
	}
}

func TestAnalyzeExportedFunctions(t *testing.T) {
	components := analyzeSource(t, "buttons.ts", `"use client";

type Props = { label: string; onClick: () => void };

export function Button(props: Props) { return null; }

export const Card = (props: { title: string }) => null;

function hidden(props: Props) { return null; }

export default function Page(props: { id: number }) { return null; }
`)
	if len(components) != 3 {
		t.Fatalf("expected 3 components, got %d", len(components))
	}

	button := findComponent(t, components, "Button")
	if len(button.Props) != 2 {
		t.Fatalf("expected 2 props on Button, got %d", len(button.Props))
	}
	if button.Props[0].Name != "label" || button.Props[1].Name != "onClick" {
		t.Errorf("props out of declaration order: %q, %q", button.Props[0].Name, button.Props[1].Name)
	}
	assertShapeKind(t, button.Props[0].Shape, typeshape.KindPrimitive)
	assertShapeKind(t, button.Props[1].Shape, typeshape.KindFunction)
	if button.Props[0].Line == 0 || button.Props[0].Column == 0 {
		t.Error("expected declaration site on prop")
	}

	card := findComponent(t, components, "Card")
	if len(card.Props) != 1 || card.Props[0].Name != "title" {
		t.Errorf("unexpected Card props: %+v", card.Props)
	}

	page := findComponent(t, components, "Page")
	if len(page.Props) != 1 || page.Props[0].Name != "id" {
		t.Errorf("unexpected Page props: %+v", page.Props)
	}
}

func TestAnalyzeDefaultExportIdentifier(t *testing.T) {
	components := analyzeSource(t, "panel.ts", `"use client";

const Panel = (props: { note: string }) => null;
export default Panel;
`)
	if len(components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(components))
	}
	c := components[0]
	if c.Name != "default" {
		t.Errorf("expected name default, got %q", c.Name)
	}
	if len(c.Props) != 1 || c.Props[0].Name != "note" {
		t.Errorf("unexpected props: %+v", c.Props)
	}
}

func TestAnalyzeDestructuredParameter(t *testing.T) {
	components := analyzeSource(t, "header.ts", `"use client";

type Props = { title: string };
export function Header({ title }: Props) { return null; }
`)
	c := findComponent(t, components, "Header")
	if len(c.Props) != 1 || c.Props[0].Name != "title" {
		t.Errorf("unexpected props: %+v", c.Props)
	}
}

func TestAnalyzeComponentWithoutParameters(t *testing.T) {
	components := analyzeSource(t, "footer.ts", `"use client";

export function Footer() { return null; }
`)
	c := findComponent(t, components, "Footer")
	if len(c.Props) != 0 {
		t.Errorf("expected no props, got %+v", c.Props)
	}
}

func TestAnalyzeProgramSkipsTestAndExcludedFiles(t *testing.T) {
	files := map[string]string{
		"app/page.ts": `"use client";
export function Page(props: { id: number }) { return null; }
`,
		"app/page.test.ts": `"use client";
export function PageFixture(props: { cb: () => void }) { return null; }
`,
		"legacy/old.ts": `"use client";
export function Old(props: { cb: () => void }) { return null; }
`,
	}
	env := setupCheckerFiles(t, "app/page.ts", files)
	defer env.release()

	analyzer := resolver.NewBoundaryAnalyzerWithChecker(env.program, env.checker)
	components := analyzer.AnalyzeProgram(nil, []string{"legacy/**"})

	if len(components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(components))
	}
	if components[0].Name != "Page" {
		t.Errorf("expected Page, got %q", components[0].Name)
	}
}
