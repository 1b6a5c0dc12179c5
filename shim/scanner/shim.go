// Package scanner re-exports github.com/microsoft/typescript-go/internal/scanner.
package scanner

import (
	"github.com/microsoft/typescript-go/internal/scanner"
)

var GetECMALineAndCharacterOfPosition = scanner.GetECMALineAndCharacterOfPosition
