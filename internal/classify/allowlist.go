package classify

// allowlist holds the nominal names of host-runtime types that are
// structurally class-like but transfer across the boundary under
// structured-clone-style semantics. Membership is an exact string match.
//
// "Array" and "Object" are the constructor names the checker reports for
// generic array and plain-object types; without them those would be
// flagged as classes.
var allowlist = map[string]bool{
	"Date":    true,
	"Map":     true,
	"Set":     true,
	"Promise": true,
	"RegExp":  true,

	"Error":          true,
	"EvalError":      true,
	"RangeError":     true,
	"ReferenceError": true,
	"SyntaxError":    true,
	"TypeError":      true,
	"URIError":       true,

	"ArrayBuffer":       true,
	"SharedArrayBuffer": true,
	"DataView":          true,
	"Int8Array":         true,
	"Uint8Array":        true,
	"Uint8ClampedArray": true,
	"Int16Array":        true,
	"Uint16Array":       true,
	"Int32Array":        true,
	"Uint32Array":       true,
	"Float32Array":      true,
	"Float64Array":      true,
	"BigInt64Array":     true,
	"BigUint64Array":    true,

	"Blob": true,
	"File": true,

	"Array":  true,
	"Object": true,
}

// IsAllowlisted reports whether a nominal type name is exempt from
// class-instance and constructor disqualification. No case folding,
// no partial matching.
func IsAllowlisted(typeName string) bool {
	return allowlist[typeName]
}

// AllowlistedNames returns a copy of the allowlist for introspection
// (e.g., documentation output). Order is unspecified.
func AllowlistedNames() []string {
	names := make([]string, 0, len(allowlist))
	for n := range allowlist {
		names = append(names, n)
	}
	return names
}
