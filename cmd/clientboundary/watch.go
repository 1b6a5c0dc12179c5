package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/watcher"
)

// runWatch implements the "clientboundary watch" command: run a check, then
// re-run it whenever a source file changes.
func runWatch(args []string) int {
	watchFlags := flag.NewFlagSet("watch", flag.ExitOnError)

	var (
		configPath          string
		tsconfigPath        string
		strict              bool
		quiet               bool
		preserveWatchOutput bool
	)

	watchFlags.StringVar(&configPath, "config", "", "Path to clientboundary config file")
	watchFlags.StringVar(&tsconfigPath, "project", "tsconfig.json", "Path to tsconfig.json")
	watchFlags.StringVar(&tsconfigPath, "p", "tsconfig.json", "Path to tsconfig.json (shorthand)")
	watchFlags.BoolVar(&strict, "strict", false, "Promote warnings to errors")
	watchFlags.BoolVar(&quiet, "quiet", false, "Suppress warnings, report errors only")
	watchFlags.BoolVar(&preserveWatchOutput, "preserveWatchOutput", false, "Don't clear console between re-checks")

	watchFlags.Usage = func() {
		fmt.Println("Usage: clientboundary watch [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		watchFlags.PrintDefaults()
	}

	watchFlags.Parse(args)

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not get working directory: %v\n", err)
		return 1
	}

	// Re-checks go through the same pipeline as a one-shot check. The cache
	// makes the no-op case (saves that don't change content) cheap.
	checkArgs := []string{"--project", tsconfigPath, "--cache"}
	if configPath != "" {
		checkArgs = append(checkArgs, "--config", configPath)
	}
	if strict {
		checkArgs = append(checkArgs, "--strict")
	}
	if quiet {
		checkArgs = append(checkArgs, "--quiet")
	}

	fmt.Fprintln(os.Stderr, "performing initial check...")
	runCheck(checkArgs)

	recheck := func(events []watcher.Event) {
		if !preserveWatchOutput {
			// Clear terminal (like tsc --watch)
			fmt.Fprint(os.Stderr, "\033[2J\033[H")
		}
		fmt.Fprintf(os.Stderr, "detected %d change(s), re-checking...\n", len(events))
		runCheck(checkArgs)
		fmt.Fprintln(os.Stderr, "watching for changes...")
	}

	watchDir := filepath.Dir(tsconfigPath)
	if !filepath.IsAbs(watchDir) {
		watchDir = filepath.Join(cwd, watchDir)
	}

	w := watcher.New(
		[]string{watchDir},
		[]string{".ts", ".tsx", ".mts", ".cts"},
		100*time.Millisecond,
		recheck,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nshutting down...")
		w.Stop()
	}()

	fmt.Fprintln(os.Stderr, "watching for changes...")
	if err := w.Watch(); err != nil {
		fmt.Fprintf(os.Stderr, "error: watch: %v\n", err)
		return 1
	}
	return 0
}
