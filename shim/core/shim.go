// Package core re-exports github.com/microsoft/typescript-go/internal/core.
package core

import (
	"github.com/microsoft/typescript-go/internal/core"
)

type (
	CompilerOptions = core.CompilerOptions
	Tristate        = core.Tristate
)

const (
	TSUnknown = core.TSUnknown
	TSFalse   = core.TSFalse
	TSTrue    = core.TSTrue
)
