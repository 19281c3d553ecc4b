// SPDX-License-Identifier: MIT
// Package mathx_test: utility tier.
package mathx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aflaxman/stan/mathx"
	"github.com/aflaxman/stan/scalar"
)

// TestSquare covers value and derivative.
func TestSquare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6.25, mathx.Square(f(-2.5)).Float())

	d := mathx.Square(scalar.Var(3))
	assert.Equal(t, 9.0, d.Float())
	assert.Equal(t, 6.0, d.Deriv(), "d x²/dx = 2x")
}

// TestFdimFma checks the C99 helpers.
func TestFdimFma(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.5, mathx.Fdim(f(2), f(0.5)).Float())
	assert.Equal(t, 0.0, mathx.Fdim(f(0.5), f(2)).Float())
	assert.Equal(t, 7.0, mathx.Fma(f(2), f(3), f(1)).Float())
}

// TestExp2Log2 checks the base-2 pair against the stdlib.
func TestExp2Log2(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0.5, 1, 4.25, 20} {
		assert.InDeltaf(t, math.Exp2(v), mathx.Exp2(f(v)).Float(), 1e-9, "Exp2(%g)", v)
		assert.InDeltaf(t, math.Log2(v), mathx.Log2(f(v)).Float(), 1e-12, "Log2(%g)", v)
	}
}

// TestSteps covers both step conventions at the origin.
func TestSteps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, mathx.Step(f(0)), "Heaviside includes 0")
	assert.Equal(t, 0, mathx.Step(f(-1e-300)))
	assert.Equal(t, 0, mathx.IntStep(f(0)), "strict step excludes 0")
	assert.Equal(t, 1, mathx.IntStep(f(1e-300)))
}

// TestBinaryLogLoss checks both outcomes and the stabilized y=0 branch.
func TestBinaryLogLoss(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, -math.Log(0.8), mathx.BinaryLogLoss(1, f(0.8)).Float(), 1e-12)
	assert.InDelta(t, -math.Log(0.2), mathx.BinaryLogLoss(0, f(0.8)).Float(), 1e-12)
	assert.InDelta(t, 1e-12, mathx.BinaryLogLoss(0, f(1e-12)).Float(), 1e-15,
		"loss for a confident correct rejection is ≈ ŷ")
}
