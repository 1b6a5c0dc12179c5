// Package bundled re-exports github.com/microsoft/typescript-go/internal/bundled.
package bundled

import (
	"github.com/microsoft/typescript-go/internal/bundled"
)

var (
	LibPath = bundled.LibPath
	WrapFS  = bundled.WrapFS
)
