// SPDX-License-Identifier: Apache-2.0
package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solv/internal/ast"
	"solv/internal/errors"
	"solv/internal/parser"
)

func resolveSource(t *testing.T, source string) (*ast.SourceUnit, []errors.CompilerError) {
	t.Helper()

	unit, parseErrors := parser.ParseSource("test.sol", source)
	require.Empty(t, parseErrors, "should have no parse errors")
	require.NotNil(t, unit)

	return unit, Resolve(unit)
}

func contractByName(t *testing.T, unit *ast.SourceUnit, name string) *ast.Contract {
	t.Helper()
	for _, c := range unit.Contracts {
		if c.Name.Value == name {
			return c
		}
	}
	t.Fatalf("contract %s not found", name)
	return nil
}

func linearizedNames(c *ast.Contract) []string {
	names := make([]string, 0, len(c.Linearized))
	for _, k := range c.Linearized {
		names = append(names, k.Name.Value)
	}
	return names
}

func TestLinearizationSingleContract(t *testing.T) {
	unit, errs := resolveSource(t, `contract A { }`)
	require.Empty(t, errs)

	a := contractByName(t, unit, "A")
	assert.Equal(t, []string{"A"}, linearizedNames(a))
}

func TestLinearizationChain(t *testing.T) {
	unit, errs := resolveSource(t, `contract A { }
contract B is A { }
contract C is B { }`)
	require.Empty(t, errs)

	c := contractByName(t, unit, "C")
	assert.Equal(t, []string{"C", "B", "A"}, linearizedNames(c))
}

func TestLinearizationDiamond(t *testing.T) {
	// The declared base list is reversed before the merge, so
	// "is B, C" puts C before B in the result.
	unit, errs := resolveSource(t, `contract A { }
contract B is A { }
contract C is A { }
contract D is B, C { }`)
	require.Empty(t, errs)

	d := contractByName(t, unit, "D")
	assert.Equal(t, []string{"D", "C", "B", "A"}, linearizedNames(d))
}

func TestLinearizationCycle(t *testing.T) {
	_, errs := resolveSource(t, `contract A is B { }
contract B is A { }`)

	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorInheritanceCycle, errs[0].Code)
}

func TestLinearizationImpossibleOrder(t *testing.T) {
	// X and Y demand contradictory relative orders of A and B, so no
	// merge exists for Z.
	unit, errs := resolveSource(t, `contract A { }
contract B { }
contract X is A, B { }
contract Y is B, A { }
contract Z is X, Y { }`)

	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorLinearization, errs[0].Code)
	assert.Contains(t, errs[0].Message, "Z")

	// Z itself still gets a partial chain so later passes do not crash.
	z := contractByName(t, unit, "Z")
	assert.Equal(t, "Z", z.Linearized[0].Name.Value)
}

func TestUnknownBase(t *testing.T) {
	unit, errs := resolveSource(t, `contract C is Missing { }`)

	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorUnknownBase, errs[0].Code)

	// the unknown base is skipped, not fatal
	c := contractByName(t, unit, "C")
	assert.Equal(t, []string{"C"}, linearizedNames(c))
}
