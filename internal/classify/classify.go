// Package classify implements the serializability decision for props crossing
// the "use client" boundary. Classification is a pure function over an owned
// typeshape.Shape tree — it never fails, never inspects checker internals, and
// defaults to Serializable on anything it cannot prove problematic.
package classify

import (
	"regexp"
	"strings"

	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/typeshape"
)

// Verdict is the three-valued outcome of classifying one field.
type Verdict int

const (
	// Serializable means the field may cross the client boundary.
	Serializable Verdict = iota
	// FunctionNotAction means the field is a function that does not follow
	// the Server Action naming convention.
	FunctionNotAction
	// InvalidClass means the field is a class or constructor type outside
	// the built-in allowlist.
	InvalidClass
)

func (v Verdict) String() string {
	switch v {
	case Serializable:
		return "serializable"
	case FunctionNotAction:
		return "function-not-action"
	case InvalidClass:
		return "invalid-class"
	default:
		return "unknown"
	}
}

// errorBoundaryFile matches error-boundary module paths: error.ts/error.tsx,
// optionally with a global- prefix, at a path-segment boundary.
var errorBoundaryFile = regexp.MustCompile(`(^|[/\\])(global-)?error\.tsx?$`)

// Options tunes classification beyond the built-in conventions.
// The zero value reproduces the reference behavior exactly.
type Options struct {
	// ExtraAllowTypes are additional nominal type names exempted from
	// class-instance and constructor disqualification.
	ExtraAllowTypes []string

	// ExtraActionProps are prop names treated as Server Actions regardless
	// of the naming convention.
	ExtraActionProps []string
}

// Classify decides whether a field's type may cross the client boundary.
// Priority order: function disqualification first, then class
// disqualification, then everything else is serializable.
func Classify(field typeshape.Field, ctx typeshape.FileContext) Verdict {
	return ClassifyWithOptions(field, ctx, Options{})
}

// ClassifyWithOptions is Classify with user-supplied exemptions.
func ClassifyWithOptions(field typeshape.Field, ctx typeshape.FileContext, opts Options) Verdict {
	c := classifier{
		name:     field.Name,
		path:     ctx.Path,
		visiting: make(map[uint64]bool),
	}
	if len(opts.ExtraAllowTypes) > 0 {
		c.extraAllow = make(map[string]bool, len(opts.ExtraAllowTypes))
		for _, n := range opts.ExtraAllowTypes {
			c.extraAllow[n] = true
		}
	}
	if len(opts.ExtraActionProps) > 0 {
		c.extraActions = make(map[string]bool, len(opts.ExtraActionProps))
		for _, n := range opts.ExtraActionProps {
			c.extraActions[n] = true
		}
	}
	return c.classify(field.Shape)
}

// classifier carries the field name and file context through the recursion.
// Every branch of a union, intersection or plain-data shape is classified
// with the same name and context.
type classifier struct {
	name         string
	path         string
	extraAllow   map[string]bool
	extraActions map[string]bool
	// visiting tracks shape IDs on the active recursion path. A revisited
	// shape means a self-referential type alias; the cyclic branch counts
	// as serializable so classification always terminates.
	visiting map[uint64]bool
}

func (c *classifier) classify(s *typeshape.Shape) Verdict {
	if s == nil {
		return Serializable
	}
	if s.ID != 0 {
		if c.visiting[s.ID] {
			return Serializable
		}
		c.visiting[s.ID] = true
		defer delete(c.visiting, s.ID)
	}

	switch s.Kind {
	case typeshape.KindFunction:
		if c.exemptFunction() {
			return Serializable
		}
		return FunctionNotAction

	case typeshape.KindClassInstance, typeshape.KindConstructor:
		if IsAllowlisted(s.Name) || c.extraAllow[s.Name] {
			return Serializable
		}
		return InvalidClass

	case typeshape.KindUnion, typeshape.KindIntersection, typeshape.KindPlainData:
		// The first disqualifying member, in declared order, decides.
		for _, m := range s.Members {
			if v := c.classify(m); v != Serializable {
				return v
			}
		}
		return Serializable

	default:
		// Primitive, opaque, or malformed input: fail open.
		return Serializable
	}
}

// exemptFunction reports whether a function-shaped field escapes
// disqualification: the Server Action naming convention, a configured
// exemption, or the reset callback of an error-boundary module.
func (c *classifier) exemptFunction() bool {
	if IsActionName(c.name) {
		return true
	}
	if c.extraActions[c.name] {
		return true
	}
	return c.name == "reset" && IsErrorBoundaryFile(c.path)
}

// IsActionName reports whether a prop name follows the Server Action naming
// convention: exactly "action", or a non-empty name suffixed with "Action".
// Matching is case-sensitive; bare "Action" does not qualify.
func IsActionName(name string) bool {
	if name == "action" {
		return true
	}
	return len(name) > len("Action") && strings.HasSuffix(name, "Action")
}

// IsErrorBoundaryFile reports whether a path names an error-boundary module
// (error.tsx, error.ts, global-error.tsx, global-error.ts).
func IsErrorBoundaryFile(path string) bool {
	return errorBoundaryFile.MatchString(path)
}
