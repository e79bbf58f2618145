package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sculletto/Elden-Ring-Rune-Multiplier/cmd/runeforge/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false

	// Extract --debug/-d flag
	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) > 0 {
		switch filteredArgs[0] {
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version":
			fmt.Printf("runeforge %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		}
	}

	// An initial CSV path may be passed as an argument
	initialPath := ""
	if len(filteredArgs) > 0 {
		initialPath = filteredArgs[0]
	}

	logger.Info("starting runeforge", "path", initialPath, "debug", debugMode)

	m := NewModel(initialPath)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`runeforge - multiply soul columns in Elden Ring param CSVs

Usage:
  runeforge [flags] [file.csv]

Set the multiplier (0.00-10.00), then enter or paste a CSV path and press
Enter. The rewritten file is written next to the input with a _soulx<mult>
suffix; the original is never modified.

Flags:
  -d, --debug     write a debug log to ~/.runeforge/logs
  -h, --help      show this help
      --version   show version information

Keys:
  tab        switch between multiplier and path fields
  enter      run the rewrite on the entered path
  c          copy the last result summary to the clipboard
  esc        dismiss the result dialog
  ctrl+c     quit`)
}
