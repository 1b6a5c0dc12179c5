// Package tspath re-exports github.com/microsoft/typescript-go/internal/tspath.
package tspath

import (
	"github.com/microsoft/typescript-go/internal/tspath"
)

var (
	NormalizePath = tspath.NormalizePath
	ResolvePath   = tspath.ResolvePath
)
