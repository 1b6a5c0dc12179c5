package main

import (
	"fmt"
	"os"
	"strings"
)

const version = "0.0.1-dev"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		// No subcommand — default to check
		return runCheck(os.Args[1:])
	}

	switch os.Args[1] {
	case "check":
		return runCheck(os.Args[2:])
	case "watch":
		return runWatch(os.Args[2:])
	case "--version", "-v":
		fmt.Println("clientboundary", version)
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	default:
		// First arg starting with - is a flag, not a subcommand
		if strings.HasPrefix(os.Args[1], "-") {
			return runCheck(os.Args[1:])
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("clientboundary - checks that props of \"use client\" components are serializable")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  clientboundary [flags]              Check project (default)")
	fmt.Println("  clientboundary check [flags]        Check project")
	fmt.Println("  clientboundary watch [flags]        Re-check on source changes")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --version, -v          Print version and exit")
	fmt.Println("  --help, -h             Print this help message")
	fmt.Println()
	fmt.Println("Check Flags:")
	fmt.Println("  --project, -p <path>   Path to tsconfig.json (default: tsconfig.json)")
	fmt.Println("  --config <path>        Path to clientboundary.config.json")
	fmt.Println("  --json                 Emit diagnostics as JSON on stdout")
	fmt.Println("  --strict               Promote warnings to errors")
	fmt.Println("  --quiet                Suppress warnings, report errors only")
	fmt.Println("  --cache                Replay the previous run when nothing changed")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  clientboundary")
	fmt.Println("  clientboundary check --project tsconfig.build.json")
	fmt.Println("  clientboundary check --strict --json")
	fmt.Println()
}
