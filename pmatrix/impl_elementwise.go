// SPDX-License-Identifier: MIT

// Package pmatrix: element-wise kernels. Pure per-rank loops over the local
// buffer; no communication, so alignment of the two buffers is mandatory and
// enforced up front.

package pmatrix

import "fmt"

// Add accumulates that into m in place (m += that).
func (m *Matrix[T]) Add(that *Matrix[T]) error {
	if err := m.checkAligned("Add", that); err != nil {
		return err
	}
	for i, v := range that.data {
		m.data[i] += v
	}
	return nil
}

// Sub subtracts that from m in place (m -= that).
func (m *Matrix[T]) Sub(that *Matrix[T]) error {
	if err := m.checkAligned("Sub", that); err != nil {
		return err
	}
	for i, v := range that.data {
		m.data[i] -= v
	}
	return nil
}

// Scale multiplies every entry by s in place.
func (m *Matrix[T]) Scale(s T) {
	for i := range m.data {
		m.data[i] *= s
	}
}

// Unscale divides every entry by s in place.
func (m *Matrix[T]) Unscale(s T) error {
	if s == 0 {
		return fmt.Errorf("Unscale: %w", ErrZeroDivisor)
	}
	for i := range m.data {
		m.data[i] /= s
	}
	return nil
}

// Neg returns a fresh negated copy; m is untouched.
func (m *Matrix[T]) Neg() *Matrix[T] {
	out := m.Clone()
	for i := range out.data {
		out.data[i] = -out.data[i]
	}
	return out
}
