// SPDX-License-Identifier: MIT
// Package backend — the fixed routine contract.

package backend

import "github.com/katalvlaran/parmat/layout"

// Transpose flags shared by every routine taking them.
const (
	TransN = 'N' // operand as is
	TransT = 'T' // transpose
	TransC = 'C' // conjugate transpose (adjoint); equals TransT for real scalars
)

// Eigensolver job and range flags.
const (
	JobValues  = 'N' // eigenvalues only
	JobVectors = 'V' // eigenvalues and eigenvectors
	UploUpper  = 'U' // use the upper triangle
	UploLower  = 'L' // use the lower triangle
	RangeAll   = 'A' // all eigenvalues
	RangeIndex = 'I' // eigenvalues il..iu (1-based, ascending)
)

// ProbeWorkspace is the lwork value that turns a call into a workspace-size
// probe: the routine stores the required length into work[0] and returns
// without computing. This two-call protocol is a genuine property of the
// external contract, kept explicit on purpose.
const ProbeWorkspace = -1

// Backend is the dense linear-algebra collaborator. One method per external
// routine; real and complex variants are distinct entries (the scalar-kind
// dispatch happens once, at the algebra boundary in pmatrix).
//
// All local buffers are column-major with leading dimension desc.LLD, as
// described by their descriptors. ia/ja/ib/jb/ic/jc are 1-based global
// origin offsets; this core always passes 1 (whole matrices, never
// sub-blocks). Every method returns an info code (see package doc).
type Backend interface {
	// PDGemm computes C = alpha·op(A)·op(B) + beta·C for float64 scalars,
	// where op is selected by the trans flags and the global result is m×n
	// with inner dimension k.
	PDGemm(transA, transB byte, m, n, k int, alpha float64,
		a []float64, ia, ja int, descA layout.Desc,
		b []float64, ib, jb int, descB layout.Desc,
		beta float64, c []float64, ic, jc int, descC layout.Desc) int

	// PZGemm is PDGemm for complex128 scalars; TransC conjugates.
	PZGemm(transA, transB byte, m, n, k int, alpha complex128,
		a []complex128, ia, ja int, descA layout.Desc,
		b []complex128, ib, jb int, descB layout.Desc,
		beta complex128, c []complex128, ic, jc int, descC layout.Desc) int

	// PDSyevd computes all eigenvalues (ascending, into w) and, when jobz ==
	// JobVectors, eigenvectors (into z) of the real symmetric matrix A.
	// A is consumed: its distributed buffer is overwritten by the solve.
	// lwork == ProbeWorkspace probes the required work length into work[0];
	// liwork is NOT probed reliably and must be ≥ 7n + 8·P_c + 2.
	PDSyevd(jobz, uplo byte, n int,
		a []float64, ia, ja int, descA layout.Desc,
		w []float64,
		z []float64, iz, jz int, descZ layout.Desc,
		work []float64, lwork int, iwork []int, liwork int) int

	// PDSyevr computes the eigenvalues selected by rng (RangeAll, or
	// RangeIndex for the 1-based ascending index window il..iu) and their
	// eigenvectors. On return *mFound and *nzFound hold the number of
	// eigenvalues and eigenvectors produced; the vectors occupy the first
	// *nzFound columns of z. A is consumed. lwork probes as in PDSyevd;
	// liwork must be ≥ 12·nnp + 2n with nnp = max(n, P_r·P_c+1, 4).
	PDSyevr(jobz, rng, uplo byte, n int,
		a []float64, ia, ja int, descA layout.Desc,
		vl, vu float64, il, iu int,
		mFound, nzFound *int,
		w []float64,
		z []float64, iz, jz int, descZ layout.Desc,
		work []float64, lwork int, iwork []int, liwork int) int

	// PZHeev computes all eigenvalues (real, ascending) and, when jobz ==
	// JobVectors, eigenvectors of the complex Hermitian matrix A. With
	// JobVectors A is consumed (overwritten by the eigenvector matrix);
	// with JobValues it is left in place. lwork probes as in PDSyevd;
	// lrwork must be ≥ 4n − 2.
	PZHeev(jobz, uplo byte, n int,
		a []complex128, ia, ja int, descA layout.Desc,
		w []float64,
		z []complex128, iz, jz int, descZ layout.Desc,
		work []complex128, lwork int, rwork []float64, lrwork int) int

	// PDTran computes the distributed transpose-accumulate
	// C = beta·C + alpha·Aᵀ, with C globally m×n and A globally n×m.
	PDTran(m, n int, alpha float64,
		a []float64, ia, ja int, descA layout.Desc,
		beta float64, c []float64, ic, jc int, descC layout.Desc) int
}
