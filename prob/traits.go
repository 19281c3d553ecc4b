// SPDX-License-Identifier: MIT
// Package prob: proportionality elision.

package prob

import "github.com/aflaxman/stan/scalar"

// includeSummand reports whether a term whose value depends only on deps
// belongs in the accumulated log density. With propto=false every term is
// included. With propto=true a term is skipped when all of its dependencies
// are constants, since it then contributes only an additive constant; a term
// with no dependencies at all is always such a constant.
//
// Whether each dependency is a constant is answered by the scalar type
// itself (scalar.Real.Const), so the same evaluator body serves both the
// plain and the derivative-tracking renditions.
func includeSummand[T scalar.Real[T]](propto bool, deps ...T) bool {
	if !propto {
		return true
	}

	return !scalar.ConstAll(deps...)
}
