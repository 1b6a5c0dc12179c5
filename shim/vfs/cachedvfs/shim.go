// Package cachedvfs re-exports github.com/microsoft/typescript-go/internal/vfs/cachedvfs.
package cachedvfs

import (
	"github.com/microsoft/typescript-go/internal/vfs/cachedvfs"
)

type FS = cachedvfs.FS

var From = cachedvfs.From
