package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/checkcache"
	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/classify"
	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/compiler"
	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/config"
	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/diagnostic"
	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/resolver"
	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/typeshape"
)

// runCheck executes the full check pipeline:
// load config -> parse tsconfig -> create program -> discover components ->
// classify props -> report.
func runCheck(args []string) int {
	checkFlags := flag.NewFlagSet("check", flag.ExitOnError)

	var (
		configPath   string
		tsconfigPath string
		jsonOutput   bool
		strict       bool
		quiet        bool
		useCache     bool
	)

	checkFlags.StringVar(&configPath, "config", "", "Path to clientboundary config file (clientboundary.config.json)")
	checkFlags.StringVar(&tsconfigPath, "project", "tsconfig.json", "Path to tsconfig.json (or use -p)")
	checkFlags.StringVar(&tsconfigPath, "p", "tsconfig.json", "Path to tsconfig.json (shorthand for --project)")
	checkFlags.BoolVar(&jsonOutput, "json", false, "Emit diagnostics as JSON on stdout")
	checkFlags.BoolVar(&strict, "strict", false, "Promote warnings to errors")
	checkFlags.BoolVar(&quiet, "quiet", false, "Suppress warnings, report errors only")
	checkFlags.BoolVar(&useCache, "cache", false, "Replay the previous run when nothing changed")

	checkFlags.Usage = func() {
		fmt.Println("Usage: clientboundary check [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		checkFlags.PrintDefaults()
	}

	checkFlags.Parse(args)

	checkStart := time.Now()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not get working directory: %v\n", err)
		return 1
	}

	// Load config: explicit path, or discovered next to the working directory.
	cfg := config.DefaultConfig()
	if configPath == "" {
		configPath = config.Discover(cwd)
	} else if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(cwd, configPath)
	}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		cfg = *loaded
		if !quiet && !jsonOutput {
			fmt.Fprintf(os.Stderr, "loaded config from %s\n", filepath.Base(configPath))
		}
	}

	// Flags win over the config file.
	cfg.Strict = cfg.Strict || strict
	cfg.Quiet = cfg.Quiet || quiet

	// Parse tsconfig using tsgo's native JSONC parser (handles comments,
	// trailing commas, extends).
	tsFS := compiler.DefaultFS()
	host := compiler.DefaultHost(cwd, tsFS)

	parsedConfig, diags, err := compiler.ParseTSConfig(tsFS, cwd, tsconfigPath, host)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if len(diags) > 0 {
		fmt.Fprint(os.Stderr, compiler.FormatDiagnostics(diags))
		return 1
	}

	// The cache keys on the config, the tsconfig and every source file of
	// the program. A hit replays the previous diagnostics without building
	// a program or a checker.
	var (
		cachePath     string
		configHash    string
		tsconfigHash  string
		sourcesDigest string
	)
	if useCache {
		resolvedTsconfig := tsconfigPath
		if !filepath.IsAbs(resolvedTsconfig) {
			resolvedTsconfig = filepath.Join(cwd, resolvedTsconfig)
		}
		cachePath = checkcache.CachePath(resolvedTsconfig)
		if configPath != "" {
			configHash = checkcache.HashFile(configPath)
		}
		tsconfigHash = checkcache.HashFile(resolvedTsconfig)
		sourcesDigest = checkcache.SourcesDigest(parsedConfig.FileNames())

		if cached := checkcache.Load(cachePath); cached.IsValid(configHash, tsconfigHash, sourcesDigest) {
			collector := diagnostic.NewCollector(cfg.Strict, cfg.Quiet)
			for _, d := range cached.Diagnostics {
				collector.Add(d)
			}
			return report(collector, cached.Components, jsonOutput, cfg.Quiet, checkStart)
		}
	}

	program, programDiags, err := compiler.CreateProgram(parsedConfig, host)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if len(programDiags) > 0 {
		fmt.Fprint(os.Stderr, compiler.FormatDiagnostics(programDiags))
		return 1
	}

	// Syntax errors don't stop the check: unparseable regions resolve to
	// opaque types, which classify as serializable.
	if syntaxDiags := compiler.SyntaxErrors(program); len(syntaxDiags) > 0 && !cfg.Quiet && !jsonOutput {
		fmt.Fprint(os.Stderr, compiler.FormatDiagnostics(syntaxDiags))
	}

	analyzer, release := resolver.NewBoundaryAnalyzer(program)
	defer release()

	components := analyzer.AnalyzeProgram(cfg.Files.Include, cfg.Files.Exclude)

	collector := diagnostic.NewCollector(cfg.Strict, cfg.Quiet)
	opts := classify.Options{
		ExtraAllowTypes:  cfg.AllowTypes,
		ExtraActionProps: cfg.AllowProps,
	}
	for _, component := range components {
		for _, prop := range component.Props {
			verdict := classify.ClassifyWithOptions(prop.Field(), typeshape.FileContext{Path: component.SourceFile}, opts)
			switch verdict {
			case classify.FunctionNotAction:
				collector.Add(diagnostic.Diagnostic{
					Severity:  diagnostic.SeverityError,
					Category:  diagnostic.CategoryPropsFunction,
					File:      component.SourceFile,
					Line:      prop.Line,
					Column:    prop.Column,
					Component: component.Name,
					Prop:      prop.Name,
					Message:   diagnostic.FunctionNotActionMessage(prop.Name),
				})
			case classify.InvalidClass:
				collector.Add(diagnostic.Diagnostic{
					Severity:  diagnostic.SeverityError,
					Category:  diagnostic.CategoryPropsClass,
					File:      component.SourceFile,
					Line:      prop.Line,
					Column:    prop.Column,
					Component: component.Name,
					Prop:      prop.Name,
					Message:   diagnostic.InvalidClassMessage(prop.Name),
				})
			}
		}
	}

	if useCache {
		cache := checkcache.New(configHash, tsconfigHash, sourcesDigest, len(components), collector.Diagnostics())
		if err := checkcache.Save(cachePath, cache); err != nil {
			fmt.Fprintf(os.Stderr, "warning: saving cache: %v\n", err)
		}
	}

	return report(collector, len(components), jsonOutput, cfg.Quiet, checkStart)
}

// report renders the collected diagnostics and returns the process exit code.
func report(collector *diagnostic.Collector, components int, jsonOutput, quiet bool, start time.Time) int {
	if jsonOutput {
		if err := collector.WriteJSON(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: writing JSON output: %v\n", err)
			return 1
		}
		fmt.Println()
	} else {
		if out := collector.FormatAll(); out != "" {
			fmt.Print(out)
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "checked %d component(s) in %s: %s\n",
				components, time.Since(start).Round(time.Millisecond), collector.Summary())
		}
	}

	if collector.HasErrors() {
		return 1
	}
	return 0
}
