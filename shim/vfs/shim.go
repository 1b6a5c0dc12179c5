// Package vfs re-exports github.com/microsoft/typescript-go/internal/vfs.
package vfs

import (
	"github.com/microsoft/typescript-go/internal/vfs"
)

type (
	Entries     = vfs.Entries
	FS          = vfs.FS
	FileInfo    = vfs.FileInfo
	WalkDirFunc = vfs.WalkDirFunc
)
