// Package osvfs re-exports github.com/microsoft/typescript-go/internal/vfs/osvfs.
package osvfs

import (
	"github.com/microsoft/typescript-go/internal/vfs/osvfs"
)

var FS = osvfs.FS
