// SPDX-License-Identifier: MIT

// Package pmatrix: collective algebra delegated to the back end. The scalar
// kind is resolved once per call with a type switch on the local buffer; the
// float64 and complex128 branches then follow the same shape of code against
// the real or complex routine.
//
// Every exported function in this file is a lock-step SPMD call: all ranks of
// the grid's communicator must reach it together with consistent arguments.

package pmatrix

import (
	"fmt"

	"github.com/katalvlaran/parmat/backend"
	"github.com/katalvlaran/parmat/layout"
)

// Transpose flags for Prod, re-exported from the back-end contract.
const (
	TransN = backend.TransN // op(X) = X
	TransT = backend.TransT // op(X) = Xᵀ
	TransC = backend.TransC // op(X) = Xᴴ (conjugate transpose; = Xᵀ for real data)
)

func validProdTrans(t byte) bool {
	return t == backend.TransN || t == backend.TransT || t == backend.TransC
}

// opDims returns the global shape of op(X).
func opDims[T Scalar](trans byte, x *Matrix[T]) (rows, cols int) {
	if trans == backend.TransN {
		return x.Rows(), x.Cols()
	}
	return x.Cols(), x.Rows()
}

// Prod returns op(m)·op(that) as a fresh matrix on m's grid. The inner
// dimensions are validated after the transpose flags are applied.
//
// Collective.
func (m *Matrix[T]) Prod(that *Matrix[T], transA, transB byte) (*Matrix[T], error) {
	if !validProdTrans(transA) {
		return nil, fmt.Errorf("Prod: transA %q: %w", transA, ErrOutOfRange)
	}
	if !validProdTrans(transB) {
		return nil, fmt.Errorf("Prod: transB %q: %w", transB, ErrOutOfRange)
	}
	if m.grid.Rows() != that.grid.Rows() || m.grid.Cols() != that.grid.Cols() {
		return nil, fmt.Errorf("Prod: grid shape differs: %w", ErrDimensionMismatch)
	}
	am, an := opDims(transA, m)
	bm, bn := opDims(transB, that)
	if an != bm {
		return nil, fmt.Errorf("Prod: inner dimensions %d vs %d: %w", an, bm, ErrDimensionMismatch)
	}
	out, err := m.sibling(am, bn)
	if err != nil {
		return nil, fmt.Errorf("Prod: %w", err)
	}

	var info int
	switch a := any(m.data).(type) {
	case []float64:
		b := any(that.data).([]float64)
		c := any(out.data).([]float64)
		info = m.be.PDGemm(transA, transB, am, bn, an, 1,
			a, 1, 1, m.lay.Desc(), b, 1, 1, that.lay.Desc(), 0, c, 1, 1, out.lay.Desc())
	case []complex128:
		b := any(that.data).([]complex128)
		c := any(out.data).([]complex128)
		info = m.be.PZGemm(transA, transB, am, bn, an, 1,
			a, 1, 1, m.lay.Desc(), b, 1, 1, that.lay.Desc(), 0, c, 1, 1, out.lay.Desc())
	}
	if info != 0 {
		return nil, &BackendError{Op: "Prod", Code: info}
	}
	return out, nil
}

// heevWorkLen is the documented complex-eigensolve scratch requirement:
// (NP0+NQ0+NB)·NB + 3n + n², with NP0/NQ0 the block-cyclic occupancy counts
// of NN = max(n, NB, 2) over the grid rows and columns.
func heevWorkLen(n, nb, gridRows, gridCols int) int {
	nn := max(n, nb, 2)
	np0 := layout.LocalExtent(nn, nb, 0, 0, gridRows)
	nq0 := layout.LocalExtent(nn, nb, 0, 0, gridCols)
	return (np0+nq0+nb)*nb + 3*n + n*n
}

// Diagonalize computes the full eigendecomposition of a symmetric (real) or
// Hermitian (complex) matrix. It returns the eigenvalues in ascending order
// and a fresh matrix whose columns are the eigenvectors.
//
// The matrix must be square and the process grid square. The input buffer is
// consumed by the back-end routine: after a successful call m no longer holds
// its original entries.
//
// Collective.
func (m *Matrix[T]) Diagonalize() ([]float64, *Matrix[T], error) {
	if err := m.checkSquare("Diagonalize", true); err != nil {
		return nil, nil, err
	}
	n := m.Rows()
	z := m.Clone()
	z.Zeros()
	w := make([]float64, n)

	var info int
	switch a := any(m.data).(type) {
	case []float64:
		zb := any(z.data).([]float64)
		liwork := 7*n + 8*m.grid.Cols() + 2
		iwork := make([]int, liwork)
		probe := make([]float64, 1)
		info = m.be.PDSyevd(backend.JobVectors, backend.UploUpper, n,
			a, 1, 1, m.lay.Desc(), w, zb, 1, 1, z.lay.Desc(),
			probe, backend.ProbeWorkspace, iwork, liwork)
		if info == 0 {
			work := make([]float64, int(probe[0]))
			info = m.be.PDSyevd(backend.JobVectors, backend.UploUpper, n,
				a, 1, 1, m.lay.Desc(), w, zb, 1, 1, z.lay.Desc(),
				work, len(work), iwork, liwork)
		}
	case []complex128:
		zb := any(z.data).([]complex128)
		lwork := heevWorkLen(n, m.lay.Desc().NB, m.grid.Rows(), m.grid.Cols())
		work := make([]complex128, lwork)
		lrwork := 4*n - 2
		rwork := make([]float64, lrwork)
		info = m.be.PZHeev(backend.JobVectors, backend.UploUpper, n,
			a, 1, 1, m.lay.Desc(), w, zb, 1, 1, z.lay.Desc(),
			work, lwork, rwork, lrwork)
	}
	if info != 0 {
		return nil, nil, &BackendError{Op: "Diagonalize", Code: info}
	}
	return w, z, nil
}

// DiagonalizeRange computes the k smallest eigenvalues (ascending) of a
// symmetric real matrix and the corresponding eigenvectors. k larger than the
// matrix order is clamped; k < 1 is an error. The eigenvector matrix is still
// full order — the back-end routine requires the complete allocation and
// fills only the first k columns.
//
// Complex matrices are not supported by the range-selecting routine.
//
// Collective.
func (m *Matrix[T]) DiagonalizeRange(k int) ([]float64, *Matrix[T], error) {
	if err := m.checkSquare("DiagonalizeRange", true); err != nil {
		return nil, nil, err
	}
	if k < 1 {
		return nil, nil, fmt.Errorf("DiagonalizeRange: k=%d: %w", k, ErrOutOfRange)
	}
	n := m.Rows()
	if k > n {
		k = n
	}

	a, ok := any(m.data).([]float64)
	if !ok {
		return nil, nil, fmt.Errorf("DiagonalizeRange: %w", ErrNotImplemented)
	}
	z := m.Clone()
	z.Zeros()
	zb := any(z.data).([]float64)
	w := make([]float64, k)

	nnp := max(n, m.grid.Rows()*m.grid.Cols()+1, 4)
	liwork := 12*nnp + 2*n
	iwork := make([]int, liwork)
	var found, vectors int

	probe := make([]float64, 1)
	info := m.be.PDSyevr(backend.JobVectors, backend.RangeIndex, backend.UploUpper, n,
		a, 1, 1, m.lay.Desc(), 0, 0, 1, k, &found, &vectors,
		w, zb, 1, 1, z.lay.Desc(), probe, backend.ProbeWorkspace, iwork, liwork)
	if info == 0 {
		work := make([]float64, int(probe[0]))
		info = m.be.PDSyevr(backend.JobVectors, backend.RangeIndex, backend.UploUpper, n,
			a, 1, 1, m.lay.Desc(), 0, 0, 1, k, &found, &vectors,
			w, zb, 1, 1, z.lay.Desc(), work, len(work), iwork, liwork)
	}
	if info != 0 {
		return nil, nil, &BackendError{Op: "DiagonalizeRange", Code: info}
	}
	return w, z, nil
}

// Symmetrize replaces m with (m + mᵀ)/2 in place via the distributed
// transpose-accumulate routine. Real scalars only.
//
// Collective.
func (m *Matrix[T]) Symmetrize() error {
	c, ok := any(m.data).([]float64)
	if !ok {
		return fmt.Errorf("Symmetrize: %w", ErrNotImplemented)
	}
	if err := m.checkSquare("Symmetrize", false); err != nil {
		return err
	}
	n := m.Rows()
	cp := m.Clone()
	a := any(cp.data).([]float64)
	info := m.be.PDTran(n, n, 0.5, a, 1, 1, cp.lay.Desc(), 0.5, c, 1, 1, m.lay.Desc())
	if info != 0 {
		return &BackendError{Op: "Symmetrize", Code: info}
	}
	return nil
}
