// SPDX-License-Identifier: MIT

// Package pmatrix: scalar reductions. Each rank folds its owned entries and
// one collective sum produces the global value on every rank.

package pmatrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/parmat/comm"
)

// Dot returns Σ m_ij·that_ij over all global entries. The product is plain,
// not conjugated, for complex data as well.
//
// Collective: every rank of the grid must call Dot with aligned operands.
func (m *Matrix[T]) Dot(that *Matrix[T]) (T, error) {
	var zero T
	if err := m.checkAligned("Dot", that); err != nil {
		return zero, err
	}
	part := []T{0}
	for i, v := range m.data {
		part[0] += v * that.data[i]
	}
	if err := comm.SumReduce(m.grid.Comm(), part); err != nil {
		return zero, fmt.Errorf("Dot: %w", err)
	}
	return part[0], nil
}

// SquaredNorm returns Dot(m, m). For complex data this is Σ m_ij², not the
// conjugated Frobenius norm.
//
// Collective.
func (m *Matrix[T]) SquaredNorm() (T, error) {
	return m.Dot(m)
}

// Norm returns the square root of the squared norm's magnitude.
//
// Collective.
func (m *Matrix[T]) Norm() (float64, error) {
	sq, err := m.SquaredNorm()
	if err != nil {
		return 0, err
	}
	switch v := any(sq).(type) {
	case float64:
		return math.Sqrt(v), nil
	case complex128:
		return math.Sqrt(cmplx.Abs(v)), nil
	}
	return 0, nil // unreachable: Scalar is a closed union
}
