// SPDX-License-Identifier: Apache-2.0
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"solv/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// SecondaryLocation points at a second source span that gives context for
// the primary diagnostic, e.g. the declaration of a variable that was
// never initialized.
type SecondaryLocation struct {
	Label    string
	Position ast.Position
}

// CompilerError represents a structured diagnostic with optional context
type CompilerError struct {
	Level     ErrorLevel
	Code      string       // Error code like E0401
	Message   string       // Primary error message
	Position  ast.Position // Location in source
	Length    int          // Length of the problematic region
	Secondary *SecondaryLocation
	Notes     []string // Additional context notes
}

// ErrorReporter handles consistent diagnostic formatting for one file
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError formats a diagnostic with Rust-like styling
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0401]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	indent := strings.Repeat(" ", er.lineNumberWidth(err.Position.Line))
	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column))
	er.writeSnippet(&result, err.Position, err.Length, err.Level)

	// Secondary location rendered as its own note block, e.g. the
	// "Not initialized:" annotation on a variable declaration.
	if err.Secondary != nil {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, noteColor("note:"), err.Secondary.Label))
		result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
			indent, dim("-->"), er.filename,
			err.Secondary.Position.Line, err.Secondary.Position.Column))
		er.writeSnippet(&result, err.Secondary.Position, 1, Note)
	}

	for _, note := range err.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	result.WriteString("\n")
	return result.String()
}

// writeSnippet renders the source line with a caret marker underneath.
func (er *ErrorReporter) writeSnippet(out *strings.Builder, pos ast.Position, length int, level ErrorLevel) {
	if pos.Line <= 0 || pos.Line > len(er.lines) {
		return
	}

	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	width := er.lineNumberWidth(pos.Line)
	indent := strings.Repeat(" ", width)

	out.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
	out.WriteString(fmt.Sprintf("%s %s %s\n",
		bold(fmt.Sprintf("%*d", width, pos.Line)),
		dim("│"),
		er.lines[pos.Line-1]))
	out.WriteString(fmt.Sprintf("%s %s %s\n",
		indent, dim("│"), er.marker(pos.Column, length, level)))
}

// getLevelColor returns the color function for an error level
func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// marker creates the underline marker for a span
func (er *ErrorReporter) marker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}

	spaces := strings.Repeat(" ", max(0, column-1))

	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level != Error {
		markerColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	}

	return spaces + markerColor(strings.Repeat("^", length))
}

// lineNumberWidth calculates the gutter width for line numbers
func (er *ErrorReporter) lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
