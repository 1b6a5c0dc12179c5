// Package compiler wraps program construction on top of the tsgo shims:
// tsconfig parsing, host setup and diagnostic conversion. The checker itself
// is obtained from the program by the callers that need it.
package compiler

import (
	"github.com/microsoft/typescript-go/shim/bundled"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/vfs"
	"github.com/microsoft/typescript-go/shim/vfs/cachedvfs"
	"github.com/microsoft/typescript-go/shim/vfs/osvfs"
)

// DefaultFS creates a filesystem backed by the OS with the bundled standard
// libs overlaid.
func DefaultFS() vfs.FS {
	return bundled.WrapFS(cachedvfs.From(osvfs.FS()))
}

// DefaultHost creates a compiler host rooted at cwd over the given filesystem.
func DefaultHost(cwd string, fs vfs.FS) shimcompiler.CompilerHost {
	return shimcompiler.NewCompilerHost(cwd, fs, bundled.LibPath(), nil, nil)
}
