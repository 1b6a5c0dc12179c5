package resolver_test

import (
	"testing"

	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/resolver"
)

func TestMatchesGlobEmptyIncludeMatchesAll(t *testing.T) {
	if !resolver.MatchesGlob("/project/app/page.tsx", nil, nil) {
		t.Error("empty include list must match every path")
	}
}

func TestMatchesGlobInclude(t *testing.T) {
	cases := []struct {
		path    string
		include []string
		want    bool
	}{
		{"/project/app/page.tsx", []string{"app/**/*.tsx"}, true},
		{"/project/app/deep/page.tsx", []string{"app/**/*.tsx"}, true},
		{"/project/lib/util.ts", []string{"app/**/*.tsx"}, false},
		{"/project/app/page.tsx", []string{"**/*.tsx"}, true},
		{"/project/app/page.ts", []string{"**/*.tsx"}, false},
		{"page.tsx", []string{"*.tsx"}, true},
	}
	for _, tc := range cases {
		if got := resolver.MatchesGlob(tc.path, tc.include, nil); got != tc.want {
			t.Errorf("MatchesGlob(%q, %v) = %v, want %v", tc.path, tc.include, got, tc.want)
		}
	}
}

func TestMatchesGlobExcludeWins(t *testing.T) {
	cases := []struct {
		path    string
		exclude []string
		want    bool
	}{
		{"/project/legacy/old.tsx", []string{"legacy/**"}, false},
		{"/project/app/page.tsx", []string{"legacy/**"}, true},
		{"/project/app/gen.tsx", []string{"**/gen.tsx"}, false},
	}
	for _, tc := range cases {
		if got := resolver.MatchesGlob(tc.path, nil, tc.exclude); got != tc.want {
			t.Errorf("MatchesGlob(%q, exclude %v) = %v, want %v", tc.path, tc.exclude, got, tc.want)
		}
	}
}
