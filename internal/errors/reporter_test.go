// SPDX-License-Identifier: Apache-2.0
package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"solv/internal/ast"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestFormatErrorHeaderAndSnippet(t *testing.T) {
	withoutColor(t)

	source := "contract C {\n    uint immutable x;\n}\n"
	reporter := NewErrorReporter("test.sol", source)

	err := CompilerError{
		Level:    Error,
		Code:     ErrorDoubleInit,
		Message:  "Immutable state variable already initialized.",
		Position: ast.Position{Filename: "test.sol", Line: 2, Column: 20},
		Length:   1,
	}

	out := reporter.FormatError(err)
	assert.Contains(t, out, "error[E0406]: Immutable state variable already initialized.")
	assert.Contains(t, out, "--> test.sol:2:20")
	assert.Contains(t, out, "    uint immutable x;")
	assert.Contains(t, out, "^")
}

func TestFormatErrorCaretAlignsWithColumn(t *testing.T) {
	withoutColor(t)

	source := "abcdef\n"
	reporter := NewErrorReporter("test.sol", source)

	out := reporter.FormatError(CompilerError{
		Level:    Error,
		Code:     ErrorSyntax,
		Message:  "boom",
		Position: ast.Position{Line: 1, Column: 3},
		Length:   2,
	})

	var markerLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "^") {
			markerLine = line
			break
		}
	}
	assert.Contains(t, markerLine, "  ^^", "two spaces for column 3, two carets for length 2")
}

func TestFormatErrorSecondaryLocation(t *testing.T) {
	withoutColor(t)

	source := "contract C {\n    uint immutable x;\n}\n"
	reporter := NewErrorReporter("test.sol", source)

	err := CompilerError{
		Level:    Error,
		Code:     ErrorIncompleteConstruction,
		Message:  "Construction control flow ends without initializing all immutable state variables.",
		Position: ast.Position{Line: 1, Column: 1},
		Length:   1,
		Secondary: &SecondaryLocation{
			Label:    "Not initialized: x",
			Position: ast.Position{Filename: "test.sol", Line: 2, Column: 5},
		},
	}

	out := reporter.FormatError(err)
	assert.Contains(t, out, "note: Not initialized: x")
	assert.Contains(t, out, "--> test.sol:2:5")
}

func TestFormatErrorNotes(t *testing.T) {
	withoutColor(t)

	reporter := NewErrorReporter("test.sol", "contract C { }\n")
	out := reporter.FormatError(CompilerError{
		Level:    Warning,
		Message:  "something odd",
		Position: ast.Position{Line: 1, Column: 1},
		Notes:    []string{"extra context"},
	})

	assert.Contains(t, out, "warning: something odd")
	assert.Contains(t, out, "note: extra context")
}

func TestFormatErrorOutOfRangeLine(t *testing.T) {
	withoutColor(t)

	reporter := NewErrorReporter("test.sol", "contract C { }\n")
	out := reporter.FormatError(CompilerError{
		Level:    Error,
		Code:     ErrorSyntax,
		Message:  "unexpected end of file",
		Position: ast.Position{Line: 99, Column: 1},
	})

	// no snippet for a line we cannot show, but the header still renders
	assert.Contains(t, out, "error[E0100]: unexpected end of file")
	assert.NotContains(t, out, "^")
}
