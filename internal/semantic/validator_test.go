// SPDX-License-Identifier: Apache-2.0
package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solv/internal/errors"
	"solv/internal/parser"
	"solv/internal/resolve"
)

// validateSource parses and resolves a snippet, then runs the immutable
// validator on every contract. The snippet must be free of parse and
// resolution errors.
func validateSource(t *testing.T, source string) map[string][]errors.CompilerError {
	t.Helper()

	unit, parseErrors := parser.ParseSource("test.sol", source)
	require.Empty(t, parseErrors, "should have no parse errors")
	require.NotNil(t, unit, "unit should be parsed")

	resolveErrors := resolve.Resolve(unit)
	require.Empty(t, resolveErrors, "should have no resolution errors")

	result := make(map[string][]errors.CompilerError)
	for _, contract := range unit.Contracts {
		result[contract.Name.Value] = ValidateImmutables(contract)
	}
	return result
}

func codes(diagnostics []errors.CompilerError) []string {
	out := make([]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func TestWellFormedConstructorHasNoDiagnostics(t *testing.T) {
	source := `contract Token {
    address immutable owner;
    uint immutable cap;
    uint supply;

    constructor(uint limit) {
        owner = msg.sender;
        cap = limit;
    }

    function mint(uint amount) public {
        supply = supply + amount;
    }
}`

	diags := validateSource(t, source)
	assert.Empty(t, diags["Token"])
}

func TestReadOutsideConstructionIsLegal(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() {
        x = 1;
    }

    function get() public view returns (uint) {
        return x;
    }
}`

	diags := validateSource(t, source)
	assert.Empty(t, diags["C"])
}

func TestReadThroughConstructorCalledFunction(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() public {
        x = f();
    }

    function f() public pure returns (uint) {
        return 3 + x;
    }
}`

	diags := validateSource(t, source)
	require.Len(t, diags["C"], 1, "should flag exactly the read inside f")
	assert.Equal(t, errors.ErrorImmutableReadDuringConstruction, diags["C"][0].Code)
	// the diagnostic points at the x read inside f, not at the call site
	assert.Equal(t, 9, diags["C"][0].Position.Line)
}

func TestReadPropagatesThroughDeepCallChain(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() {
        x = 1;
        a();
    }

    function a() internal { b(); }
    function b() internal { c(); }
    function c() internal {
        uint v = x;
    }
}`

	diags := validateSource(t, source)
	require.Len(t, diags["C"], 1)
	assert.Equal(t, errors.ErrorImmutableReadDuringConstruction, diags["C"][0].Code)
}

func TestInitOutsideConstructor(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() {
        initX();
    }

    function initX() internal {
        x = 3;
    }
}`

	diags := validateSource(t, source)
	require.Len(t, diags["C"], 1)
	assert.Equal(t, errors.ErrorInvalidInitLocation, diags["C"][0].Code)
}

func TestInitFromForeignConstructor(t *testing.T) {
	source := `contract Base {
    uint immutable val;

    constructor() {
        val = 1;
    }
}

contract Derived is Base {
    constructor() {
        val = 2;
    }
}`

	diags := validateSource(t, source)
	assert.Empty(t, diags["Base"])
	require.Len(t, diags["Derived"], 2)
	assert.Equal(t, errors.ErrorWrongContractInit, diags["Derived"][0].Code)
	// val was already assigned by Base's constructor earlier in the chain
	assert.Equal(t, errors.ErrorDoubleInit, diags["Derived"][1].Code)
}

func TestInitInLoop(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() {
        while (true) {
            x = 3;
        }
    }
}`

	diags := validateSource(t, source)
	require.Len(t, diags["C"], 1)
	assert.Equal(t, errors.ErrorInitInLoop, diags["C"][0].Code)
}

func TestInitInBranch(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor(bool flag) {
        if (flag) {
            x = 3;
        }
    }
}`

	diags := validateSource(t, source)
	require.Len(t, diags["C"], 1)
	assert.Equal(t, errors.ErrorInitInBranch, diags["C"][0].Code)
}

func TestLoopCheckPrecedesBranchCheck(t *testing.T) {
	// An assignment nested in both constructs reports only the loop
	// violation: the loop flag is tested first in the validation chain.
	source := `contract C {
    uint immutable x;

    constructor(bool flag) {
        while (flag) {
            if (flag) {
                x = 3;
            }
        }
    }
}`

	diags := validateSource(t, source)
	require.Len(t, diags["C"], 1)
	assert.Equal(t, errors.ErrorInitInLoop, diags["C"][0].Code)
}

func TestBothArmsStillRejected(t *testing.T) {
	// Deliberately conservative: initializing in both arms of an if/else
	// is rejected even though every path assigns exactly once.
	source := `contract C {
    uint immutable x;

    constructor(bool flag) {
        if (flag) {
            x = 3;
        } else {
            x = 4;
        }
    }
}`

	diags := validateSource(t, source)
	assert.Equal(t,
		[]string{errors.ErrorInitInBranch, errors.ErrorInitInBranch, errors.ErrorDoubleInit},
		codes(diags["C"]))
}

func TestDoubleInit(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() {
        x = 1;
        x = 2;
        x = 3;
    }
}`

	diags := validateSource(t, source)
	// one diagnostic per extra assignment site
	assert.Equal(t, []string{errors.ErrorDoubleInit, errors.ErrorDoubleInit}, codes(diags["C"]))
}

func TestIncompleteConstructionAtImplicitEnd(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() {
        uint y = 1;
    }
}`

	diags := validateSource(t, source)
	require.Len(t, diags["C"], 1)
	assert.Equal(t, errors.ErrorIncompleteConstruction, diags["C"][0].Code)
	require.NotNil(t, diags["C"][0].Secondary)
	assert.Contains(t, diags["C"][0].Secondary.Label, "Not initialized: x")
}

func TestIncompleteConstructionAtEarlyReturn(t *testing.T) {
	source := `contract C {
    uint immutable x;
    uint immutable y;

    constructor(bool early) {
        x = 1;
        if (early) {
            return;
        }
        y = 2;
    }
}`

	diags := validateSource(t, source)
	require.Len(t, diags["C"], 1, "only the early return misses y")
	assert.Equal(t, errors.ErrorIncompleteConstruction, diags["C"][0].Code)
	assert.Equal(t, 8, diags["C"][0].Position.Line)
	require.NotNil(t, diags["C"][0].Secondary)
	assert.Contains(t, diags["C"][0].Secondary.Label, "y")
}

func TestReturnInPlainFunctionSkipsCompletenessCheck(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() {
        x = 1;
    }

    function f() public pure returns (uint) {
        return 2;
    }
}`

	diags := validateSource(t, source)
	assert.Empty(t, diags["C"])
}

func TestNoConstructorWithUnassignedImmutable(t *testing.T) {
	source := `contract C {
    uint immutable x;
}`

	diags := validateSource(t, source)
	require.Len(t, diags["C"], 1)
	assert.Equal(t, errors.ErrorIncompleteConstruction, diags["C"][0].Code)
}

func TestImmutableWithInitializer(t *testing.T) {
	source := `contract C {
    uint immutable x = 5;
}`

	diags := validateSource(t, source)
	assert.Empty(t, diags["C"])
}

func TestInitializerCountsAsTheSingleAssignment(t *testing.T) {
	source := `contract C {
    uint immutable x = 5;

    constructor() {
        x = 6;
    }
}`

	diags := validateSource(t, source)
	require.Len(t, diags["C"], 1)
	assert.Equal(t, errors.ErrorDoubleInit, diags["C"][0].Code)
}

func TestStateVarInitializerReadsImmutable(t *testing.T) {
	// Initializer expressions run during construction, so the read of x
	// inside y's initializer is flagged.
	source := `contract C {
    uint immutable x;
    uint y = x;

    constructor() {
        x = 1;
    }
}`

	diags := validateSource(t, source)
	require.Len(t, diags["C"], 1)
	assert.Equal(t, errors.ErrorImmutableReadDuringConstruction, diags["C"][0].Code)
}

func TestBaseConstructorArgumentsRunInConstructionContext(t *testing.T) {
	source := `contract A {
    uint immutable a;

    constructor(uint v) {
        a = v;
    }
}

contract B is A(valueOf()) {
    function valueOf() internal view returns (uint) {
        return a;
    }
}`

	diags := validateSource(t, source)
	assert.Empty(t, diags["A"])
	require.Len(t, diags["B"], 1)
	assert.Equal(t, errors.ErrorImmutableReadDuringConstruction, diags["B"][0].Code)
}

func TestCompoundAssignmentCountsAsRead(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() {
        x += 1;
    }
}`

	diags := validateSource(t, source)
	assert.Equal(t,
		[]string{errors.ErrorImmutableReadDuringConstruction, errors.ErrorIncompleteConstruction},
		codes(diags["C"]))
}

func TestModifierInvokedByConstructor(t *testing.T) {
	source := `contract C {
    uint immutable x;

    modifier guard() {
        if (x > 0) {
            return;
        }
        _;
    }

    constructor() guard() {
        x = 1;
    }
}`

	diags := validateSource(t, source)
	require.Len(t, diags["C"], 1)
	assert.Equal(t, errors.ErrorImmutableReadDuringConstruction, diags["C"][0].Code)
}

func TestDiamondOverrideReachedThroughSuperChain(t *testing.T) {
	// A's constructor calls init() through dynamic dispatch; the body
	// that actually runs is D's override, whose read of v must be
	// flagged even though no call site names D.init directly.
	source := `contract A {
    uint immutable v;

    constructor() {
        v = 1;
        init();
    }

    function init() internal virtual {
    }
}

contract B is A {
    function init() internal virtual override {
        super.init();
    }
}

contract C is A {
}

contract D is B, C {
    function init() internal override {
        uint t = v;
    }
}`

	diags := validateSource(t, source)
	assert.Empty(t, diags["A"], "A alone dispatches to its own empty init")
	assert.Empty(t, diags["B"], "B's override only chains to A's empty body")
	assert.Empty(t, diags["C"])
	require.Len(t, diags["D"], 1, "D's override runs during A's construction")
	assert.Equal(t, errors.ErrorImmutableReadDuringConstruction, diags["D"][0].Code)
	assert.Equal(t, 24, diags["D"][0].Position.Line)
}

func TestRecursiveCallsTerminate(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() {
        ping();
        x = 1;
    }

    function ping() internal { pong(); }
    function pong() internal { ping(); }
}`

	diags := validateSource(t, source)
	assert.Empty(t, diags["C"])
}

func TestUnimplementedFunctionIsSkipped(t *testing.T) {
	source := `contract C {
    uint immutable x;

    constructor() {
        x = 1;
    }

    function hook() public virtual;
}`

	diags := validateSource(t, source)
	assert.Empty(t, diags["C"])
}

func TestIndependentContractAnalyses(t *testing.T) {
	// Each contract is validated with fresh state: the assignment seen
	// while analyzing Derived must not leak into Base's own analysis.
	source := `contract Base {
    uint immutable val;
}

contract Derived is Base {
    constructor() {
        val = 1;
    }
}`

	diags := validateSource(t, source)
	require.Len(t, diags["Base"], 1)
	assert.Equal(t, errors.ErrorIncompleteConstruction, diags["Base"][0].Code)
	require.Len(t, diags["Derived"], 1)
	assert.Equal(t, errors.ErrorWrongContractInit, diags["Derived"][0].Code)
}
