// Package tsoptions re-exports github.com/microsoft/typescript-go/internal/tsoptions.
package tsoptions

import (
	"github.com/microsoft/typescript-go/internal/tsoptions"
)

type (
	ParseConfigHost   = tsoptions.ParseConfigHost
	ParsedCommandLine = tsoptions.ParsedCommandLine
)

var GetParsedCommandLineOfConfigFile = tsoptions.GetParsedCommandLineOfConfigFile
