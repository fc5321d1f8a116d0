// SPDX-License-Identifier: Apache-2.0
package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestCollectDiagnosticsCleanFile(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() {
        x = 1;
    }
}`

	diags := CollectDiagnostics("/tmp/test.sol", source)
	assert.Empty(t, diags)
}

func TestCollectDiagnosticsReportsViolation(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() {
        x = 1;
        x = 2;
    }
}`

	diags := CollectDiagnostics("/tmp/test.sol", source)
	require.Len(t, diags, 1)

	d := diags[0]
	require.NotNil(t, d.Code)
	assert.Equal(t, "E0406", d.Code.Value)
	// LSP positions are zero-based
	assert.Equal(t, uint32(5), d.Range.Start.Line)
	assert.Equal(t, uint32(8), d.Range.Start.Character)
	require.NotNil(t, d.Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	require.NotNil(t, d.Source)
	assert.Equal(t, "solv", *d.Source)
}

func TestCollectDiagnosticsSecondaryBecomesRelatedInformation(t *testing.T) {
	source := `contract C {
    uint immutable x;
}`

	diags := CollectDiagnostics("/tmp/test.sol", source)
	require.Len(t, diags, 1)

	d := diags[0]
	require.NotNil(t, d.Code)
	assert.Equal(t, "E0407", d.Code.Value)
	require.Len(t, d.RelatedInformation, 1)
	assert.Contains(t, d.RelatedInformation[0].Message, "Not initialized: x")
	assert.Equal(t, uint32(1), d.RelatedInformation[0].Location.Range.Start.Line)
}

func TestCollectDiagnosticsParseError(t *testing.T) {
	diags := CollectDiagnostics("/tmp/test.sol", "contract {")
	require.Len(t, diags, 1)
	require.NotNil(t, diags[0].Code)
	assert.Equal(t, "E0100", diags[0].Code.Value)
}

func TestUriToPath(t *testing.T) {
	path, err := uriToPath("file:///home/user/test.sol")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/test.sol", path)
}
