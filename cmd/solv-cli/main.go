// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"solv/internal/config"
	"solv/internal/errors"
	"solv/internal/parser"
	"solv/internal/resolve"
	"solv/internal/semantic"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: solv <file.sol>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(filepath.Dir(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	configureColor(cfg)

	reporter := errors.NewErrorReporter(path, string(source))

	var diagnostics []errors.CompilerError

	unit, parseErrors := parser.ParseSource(path, string(source))
	diagnostics = append(diagnostics, parseErrors...)

	if unit != nil {
		diagnostics = append(diagnostics, resolve.Resolve(unit)...)

		// Each contract is validated independently as the most-derived
		// contract of its own hierarchy, with fresh validator state.
		for _, contract := range unit.Contracts {
			diagnostics = append(diagnostics, semantic.ValidateImmutables(contract)...)
		}
	}

	printed := 0
	suppressed := 0
	for _, diagnostic := range diagnostics {
		if !cfg.Enabled(diagnostic.Code) {
			suppressed++
			continue
		}
		if cfg.MaxErrors > 0 && printed >= cfg.MaxErrors {
			suppressed++
			continue
		}
		fmt.Print(reporter.FormatError(diagnostic))
		printed++
	}
	if suppressed > 0 {
		fmt.Printf("(%d diagnostics suppressed)\n\n", suppressed)
	}

	duration := formatDuration(time.Since(startTime))
	if printed == 0 && suppressed == 0 {
		color.Green("No immutable violations in %s (%s)", path, duration)
	} else {
		color.Red("Found %d problems in %s (%s)", printed+suppressed, path, duration)
		os.Exit(1)
	}
}

// configureColor applies the config's color mode; "auto" enables color
// only when stdout is a terminal.
func configureColor(cfg config.Config) {
	switch cfg.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
