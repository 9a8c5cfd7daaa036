// Package main is the entry point for the editcore editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/editcore/internal/app"
	"github.com/dshills/editcore/internal/macro"
	"github.com/dshills/editcore/internal/scenario"
	"github.com/dshills/editcore/internal/session"
	"github.com/dshills/editcore/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, replayPath, macroPath := parseFlags()

	// Headless modes run without a terminal.
	if replayPath != "" {
		return runReplay(replayPath)
	}
	if macroPath != "" {
		return runMacro(macroPath, opts.File)
	}

	// Create application
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	// Create terminal front end
	term, err := tui.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetTerminal(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set terminal: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Shutdown()
	}()

	// Run the application
	if err := application.Run(); err != nil {
		// Check if it's a normal quit using errors.Is for wrapped errors
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// runReplay loads a scenario file or directory and reports results.
func runReplay(path string) int {
	scs, err := scenario.LoadPath(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if scenario.Report(os.Stdout, scenario.RunAll(scs)) {
		return 0
	}
	return 1
}

// runMacro executes a Lua script against a session seeded from file
// and prints the resulting buffer.
func runMacro(path, file string) int {
	buffer := ""
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: open file %s: %v\n", file, err)
			return 1
		}
		buffer = string(data)
	}

	sess := session.New(session.WithBuffer(buffer))
	host, err := macro.NewHost(sess)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer host.Close()

	if err := host.DoFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Print(sess.Buffer())
	return 0
}

func parseFlags() (app.Options, string, string) {
	var opts app.Options
	var replayPath string
	var macroPath string
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&replayPath, "replay", "", "Run key scenarios from a YAML file or directory and exit")
	flag.StringVar(&macroPath, "macro", "", "Run a Lua macro against the buffer and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Editcore - structural editing engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: editcore [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  editcore                       Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  editcore file.go               Open a file\n")
		fmt.Fprintf(os.Stderr, "  editcore -replay cases.yaml    Replay key scenarios\n")
		fmt.Fprintf(os.Stderr, "  editcore -macro fmt.lua f.go   Run a macro over a file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Editcore %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level when set; empty keeps the configured level
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	// The remaining argument is the file to open
	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Error: expected at most one file argument\n")
		os.Exit(1)
	}
	if len(args) == 1 {
		opts.File = args[0]
	}

	return opts, replayPath, macroPath
}
