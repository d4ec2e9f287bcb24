package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/iopaint-config/internal/editor"
	"github.com/handiism/iopaint-config/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one editing session and returns the process exit code.
// Deferred cleanup completes before main calls os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("iopaint-config", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "IOPaint configuration editor")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  iopaint-config <config.json>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Set IOPAINT_CONFIG_LOG to a file path to keep a log of the session.")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	configFile := fs.Arg(0)

	// Warnings about the existing file go to the console before the form
	// takes over the terminal.
	console := slog.New(slog.NewTextHandler(stderr, nil))
	init := editor.New(configFile, editor.WithLogger(console)).Load()

	logger, closeLog, err := sessionLogger()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening log file: %v\n", err)
		return 1
	}
	defer closeLog()

	status, err := tui.Run(editor.New(configFile, editor.WithLogger(logger)), init)
	if err != nil {
		logger.Error("session failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if status != "" {
		fmt.Fprintln(stdout, status)
	}
	return 0
}

// sessionLogger returns the logger used while the form owns the terminal.
func sessionLogger() (*slog.Logger, func(), error) {
	path := os.Getenv("IOPAINT_CONFIG_LOG")
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := tea.LogToFile(path, "iopaint-config")
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}
