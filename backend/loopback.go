// SPDX-License-Identifier: MIT
// Package backend — Loopback, the serial reference implementation.
//
// Strategy (identical on every rank, hence deterministic across the grid):
//   - Stage 1: rebuild each operand's Layout from its descriptor.
//   - Stage 2: gather the operand into a replicated row-major dense matrix —
//     each rank writes its owned entries into a zero buffer and one
//     sum-reduction over the grid's communicator assembles the global
//     matrix (ownership is a disjoint partition, so sums never overlap).
//   - Stage 3: compute serially with gonum (blas64 / cblas128 / lapack64).
//   - Stage 4: scatter — every rank keeps its owned part of the result.
//
// Contract fidelity:
//   - Negative info mirrors the 1-based position of the offending argument;
//     positive info means the computation (or a collective) failed.
//   - lwork == ProbeWorkspace stores the required length into work[0].
//   - The manual scratch-size formulas (liwork, lrwork) are enforced even
//     though the serial kernels do not need the memory: callers must be
//     correct against the real back end, not against a lenient stand-in.
//   - Eigensolvers consume their distributed input, like the real routines
//     (PZHeev with JobValues leaves A in place; see the contract).

package backend

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/parmat/layout"
)

// infoComputeFailed is the positive status reported when the serial kernel
// or a collective underneath it fails.
const infoComputeFailed = 1

// Loopback implements Backend serially over the grid's communicator.
// The zero value is ready to use; it carries no state.
type Loopback struct{}

// Compile-time conformance check.
var _ Backend = Loopback{}

// ---------- workspace formulas ----------

// syevdLwork is the work length Loopback advertises through the probe.
func syevdLwork(n int) int { return 1 + 6*n + n*n }

// syevdLiworkMin mirrors the documented minimum 7n + 8·P_c + 2.
func syevdLiworkMin(n, pc int) int { return 7*n + 8*pc + 2 }

// syevrLiworkMin mirrors 12·nnp + 2n, nnp = max(n, P_r·P_c + 1, 4).
func syevrLiworkMin(n, pr, pc int) int {
	nnp := n
	if v := pr*pc + 1; v > nnp {
		nnp = v
	}
	if nnp < 4 {
		nnp = 4
	}
	return 12*nnp + 2*n
}

// heevLwork mirrors the documented (NP0+NQ0+NB)·NB + 3n + n² with NP0/NQ0
// taken from the block-cyclic occupancy count of NN = max(n, NB, 2).
func heevLwork(n, nb, pr, pc int) int {
	nn := n
	if nb > nn {
		nn = nb
	}
	if nn < 2 {
		nn = 2
	}
	np0 := layout.LocalExtent(nn, nb, 0, 0, pr)
	nq0 := layout.LocalExtent(nn, nb, 0, 0, pc)
	return (np0+nq0+nb)*nb + 3*n + n*n
}

// heevLrworkMin mirrors 4n − 2.
func heevLrworkMin(n int) int { return 4*n - 2 }

// ---------- gather / scatter ----------

func gatherReal(l layout.Layout, loc []float64) ([]float64, bool) {
	cols := l.Cols()
	full := make([]float64, l.Rows()*cols)
	k := 0
	l.Owned(func(row, col int) bool {
		full[row*cols+col] = loc[k]
		k++
		return true
	})
	if err := l.Grid().Comm().AllReduceSum(full); err != nil {
		return nil, false
	}
	return full, true
}

func scatterReal(l layout.Layout, full []float64, loc []float64) {
	cols := l.Cols()
	k := 0
	l.Owned(func(row, col int) bool {
		loc[k] = full[row*cols+col]
		k++
		return true
	})
}

func gatherCplx(l layout.Layout, loc []complex128) ([]complex128, bool) {
	cols := l.Cols()
	flat := make([]float64, 2*l.Rows()*cols)
	k := 0
	l.Owned(func(row, col int) bool {
		off := 2 * (row*cols + col)
		flat[off] = real(loc[k])
		flat[off+1] = imag(loc[k])
		k++
		return true
	})
	if err := l.Grid().Comm().AllReduceSum(flat); err != nil {
		return nil, false
	}
	full := make([]complex128, l.Rows()*cols)
	for i := range full {
		full[i] = complex(flat[2*i], flat[2*i+1])
	}
	return full, true
}

func scatterCplx(l layout.Layout, full []complex128, loc []complex128) {
	cols := l.Cols()
	k := 0
	l.Owned(func(row, col int) bool {
		loc[k] = full[row*cols+col]
		k++
		return true
	})
}

// ---------- shared argument helpers ----------

func validTrans(t byte) bool { return t == TransN || t == TransT || t == TransC }

func transBlas(t byte) blas.Transpose {
	switch t {
	case TransT:
		return blas.Trans
	case TransC:
		return blas.ConjTrans
	default:
		return blas.NoTrans
	}
}

func uploBlas(u byte) blas.Uplo {
	if u == UploLower {
		return blas.Lower
	}
	return blas.Upper
}

func evJob(jobz byte) lapack.EVJob {
	if jobz == JobVectors {
		return lapack.EVCompute
	}
	return lapack.EVNone
}

// opShape returns the global shape of op(X) for a descriptor.
func opShape(trans byte, d layout.Desc) (rows, cols int) {
	if trans == TransN {
		return d.M, d.N
	}
	return d.N, d.M
}

// ---------- PDGemm / PZGemm ----------

// PDGemm gathers op(A), op(B) and C, runs one serial dgemm, and scatters C.
func (Loopback) PDGemm(transA, transB byte, m, n, k int, alpha float64,
	a []float64, ia, ja int, descA layout.Desc,
	b []float64, ib, jb int, descB layout.Desc,
	beta float64, c []float64, ic, jc int, descC layout.Desc) int {

	if !validTrans(transA) {
		return -1
	}
	if !validTrans(transB) {
		return -2
	}
	am, an := opShape(transA, descA)
	bm, bn := opShape(transB, descB)
	if m <= 0 || m != am {
		return -3
	}
	if n <= 0 || n != bn {
		return -4
	}
	if k != an || k != bm {
		return -5
	}
	if ia != 1 || ja != 1 {
		return -8
	}
	la, err := layout.FromDesc(descA)
	if err != nil || len(a) < la.LocalSize() {
		return -10
	}
	if ib != 1 || jb != 1 {
		return -12
	}
	lb, err := layout.FromDesc(descB)
	if err != nil || len(b) < lb.LocalSize() {
		return -14
	}
	if ic != 1 || jc != 1 {
		return -17
	}
	lc, err := layout.FromDesc(descC)
	if err != nil || descC.M != m || descC.N != n || len(c) < lc.LocalSize() {
		return -19
	}

	fa, ok := gatherReal(la, a)
	if !ok {
		return infoComputeFailed
	}
	fb, ok := gatherReal(lb, b)
	if !ok {
		return infoComputeFailed
	}
	fc, ok := gatherReal(lc, c)
	if !ok {
		return infoComputeFailed
	}

	ag := blas64.General{Rows: descA.M, Cols: descA.N, Stride: maxInt(descA.N, 1), Data: fa}
	bg := blas64.General{Rows: descB.M, Cols: descB.N, Stride: maxInt(descB.N, 1), Data: fb}
	cg := blas64.General{Rows: m, Cols: n, Stride: maxInt(n, 1), Data: fc}
	blas64.Gemm(transBlas(transA), transBlas(transB), alpha, ag, bg, beta, cg)

	scatterReal(lc, fc, c)
	return 0
}

// PZGemm is the complex128 twin of PDGemm; TransC conjugates.
func (Loopback) PZGemm(transA, transB byte, m, n, k int, alpha complex128,
	a []complex128, ia, ja int, descA layout.Desc,
	b []complex128, ib, jb int, descB layout.Desc,
	beta complex128, c []complex128, ic, jc int, descC layout.Desc) int {

	if !validTrans(transA) {
		return -1
	}
	if !validTrans(transB) {
		return -2
	}
	am, an := opShape(transA, descA)
	bm, bn := opShape(transB, descB)
	if m <= 0 || m != am {
		return -3
	}
	if n <= 0 || n != bn {
		return -4
	}
	if k != an || k != bm {
		return -5
	}
	if ia != 1 || ja != 1 {
		return -8
	}
	la, err := layout.FromDesc(descA)
	if err != nil || len(a) < la.LocalSize() {
		return -10
	}
	if ib != 1 || jb != 1 {
		return -12
	}
	lb, err := layout.FromDesc(descB)
	if err != nil || len(b) < lb.LocalSize() {
		return -14
	}
	if ic != 1 || jc != 1 {
		return -17
	}
	lc, err := layout.FromDesc(descC)
	if err != nil || descC.M != m || descC.N != n || len(c) < lc.LocalSize() {
		return -19
	}

	fa, ok := gatherCplx(la, a)
	if !ok {
		return infoComputeFailed
	}
	fb, ok := gatherCplx(lb, b)
	if !ok {
		return infoComputeFailed
	}
	fc, ok := gatherCplx(lc, c)
	if !ok {
		return infoComputeFailed
	}

	ag := cblas128.General{Rows: descA.M, Cols: descA.N, Stride: maxInt(descA.N, 1), Data: fa}
	bg := cblas128.General{Rows: descB.M, Cols: descB.N, Stride: maxInt(descB.N, 1), Data: fb}
	cg := cblas128.General{Rows: m, Cols: n, Stride: maxInt(n, 1), Data: fc}
	cblas128.Gemm(transBlas(transA), transBlas(transB), alpha, ag, bg, beta, cg)

	scatterCplx(lc, fc, c)
	return 0
}

// ---------- eigensolvers ----------

// syevFull runs the serial symmetric eigensolve on a replicated row-major
// matrix. On success and jobz == JobVectors, fa's columns hold the
// orthonormal eigenvectors; ev is ascending.
func syevFull(jobz, uplo byte, n int, fa []float64, ev []float64) bool {
	sym := blas64.Symmetric{N: n, Stride: n, Data: fa, Uplo: uploBlas(uplo)}
	var probe [1]float64
	lapack64.Syev(evJob(jobz), sym, ev, probe[:], -1)
	lw := int(probe[0])
	if lw < 3*n-1 {
		lw = 3*n - 1
	}
	if lw < 1 {
		lw = 1
	}
	ws := make([]float64, lw)
	return lapack64.Syev(evJob(jobz), sym, ev, ws, lw)
}

// PDSyevd: full symmetric eigensolve; see Backend for the contract.
func (Loopback) PDSyevd(jobz, uplo byte, n int,
	a []float64, ia, ja int, descA layout.Desc,
	w []float64,
	z []float64, iz, jz int, descZ layout.Desc,
	work []float64, lwork int, iwork []int, liwork int) int {

	if jobz != JobValues && jobz != JobVectors {
		return -1
	}
	if uplo != UploUpper && uplo != UploLower {
		return -2
	}
	if n <= 0 || descA.M != n || descA.N != n {
		return -3
	}
	if ia != 1 || ja != 1 {
		return -5
	}
	la, err := layout.FromDesc(descA)
	if err != nil || len(a) < la.LocalSize() {
		return -7
	}
	if len(w) < n {
		return -8
	}
	if iz != 1 || jz != 1 {
		return -10
	}
	lz, err := layout.FromDesc(descZ)
	if err != nil || descZ.M != n || descZ.N != n || len(z) < lz.LocalSize() {
		return -12
	}
	if len(work) < 1 {
		return -13
	}
	if lwork == ProbeWorkspace {
		work[0] = float64(syevdLwork(n))
		return 0
	}
	if lwork < syevdLwork(n) || len(work) < lwork {
		return -14
	}
	if liwork < syevdLiworkMin(n, descA.Ctx.Cols()) || len(iwork) < liwork {
		return -16
	}

	fa, ok := gatherReal(la, a)
	if !ok {
		return infoComputeFailed
	}
	if !syevFull(jobz, uplo, n, fa, w[:n]) {
		return infoComputeFailed
	}
	if jobz == JobVectors {
		scatterReal(lz, fa, z)
	}
	// The input is consumed, exactly like the external routine.
	scatterReal(la, fa, a)
	return 0
}

// PDSyevr: range-selected symmetric eigensolve; see Backend for the contract.
func (Loopback) PDSyevr(jobz, rng, uplo byte, n int,
	a []float64, ia, ja int, descA layout.Desc,
	vl, vu float64, il, iu int,
	mFound, nzFound *int,
	w []float64,
	z []float64, iz, jz int, descZ layout.Desc,
	work []float64, lwork int, iwork []int, liwork int) int {

	if jobz != JobValues && jobz != JobVectors {
		return -1
	}
	if rng != RangeAll && rng != RangeIndex {
		return -2
	}
	if uplo != UploUpper && uplo != UploLower {
		return -3
	}
	if n <= 0 || descA.M != n || descA.N != n {
		return -4
	}
	if ia != 1 || ja != 1 {
		return -6
	}
	la, err := layout.FromDesc(descA)
	if err != nil || len(a) < la.LocalSize() {
		return -8
	}
	if rng == RangeIndex && (il < 1 || iu < il || iu > n) {
		return -11
	}
	if mFound == nil || nzFound == nil {
		return -13
	}
	if iz != 1 || jz != 1 {
		return -17
	}
	lz, err := layout.FromDesc(descZ)
	if err != nil || descZ.M != n || descZ.N != n || len(z) < lz.LocalSize() {
		return -19
	}
	if len(work) < 1 {
		return -20
	}
	if lwork == ProbeWorkspace {
		work[0] = float64(syevdLwork(n))
		return 0
	}
	if lwork < syevdLwork(n) || len(work) < lwork {
		return -21
	}
	if liwork < syevrLiworkMin(n, descA.Ctx.Rows(), descA.Ctx.Cols()) || len(iwork) < liwork {
		return -23
	}

	lo, hi := 1, n
	if rng == RangeIndex {
		lo, hi = il, iu
	}
	m := hi - lo + 1
	if len(w) < m {
		return -15
	}

	fa, ok := gatherReal(la, a)
	if !ok {
		return infoComputeFailed
	}
	ev := make([]float64, n)
	if !syevFull(jobz, uplo, n, fa, ev) {
		return infoComputeFailed
	}
	copy(w[:m], ev[lo-1:hi])
	*mFound = m
	*nzFound = 0

	if jobz == JobVectors {
		// Selected eigenvectors occupy the first m columns of Z.
		fz := make([]float64, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				fz[i*n+j] = fa[i*n+(lo-1+j)]
			}
		}
		scatterReal(lz, fz, z)
		*nzFound = m
	}
	scatterReal(la, fa, a) // input consumed
	return 0
}

// embeddingDropTol separates a genuine new complex direction from the image
// of an already-kept one; collapsed residuals are at rounding level while
// survivors keep O(1) norm (the embedding images have Gram spectrum {0, 2}).
const embeddingDropTol = 1e-6

// hermitianFromEmbedding maps the ascending real-orthonormal eigenbasis of
// the 2n×2n embedding back to n orthonormal complex eigenpairs. Column p
// maps to u + i·v (top half u, bottom half v); multiplication by i rotates
// inside each degenerate cluster's real span, so the 2n images span only n
// complex directions. A Gram–Schmidt sweep in ascending eigenvalue order
// keeps the first independent image of every complex direction, which also
// keeps the eigenvalues ascending. Returns the kept eigenvalues and the
// row-major n×n eigenvector matrix.
func hermitianFromEmbedding(n int, fb, ev []float64) ([]float64, []complex128, bool) {
	nn := 2 * n
	vals := make([]float64, 0, n)
	kept := make([][]complex128, 0, n)
	fz := make([]complex128, n*n)
	for p := 0; p < nn && len(kept) < n; p++ {
		v := make([]complex128, n)
		for q := 0; q < n; q++ {
			v[q] = complex(fb[q*nn+p], fb[(n+q)*nn+p])
		}
		for _, u := range kept {
			var dot complex128
			for q := 0; q < n; q++ {
				dot += cmplx.Conj(u[q]) * v[q]
			}
			for q := 0; q < n; q++ {
				v[q] -= dot * u[q]
			}
		}
		var norm float64
		for q := 0; q < n; q++ {
			norm += real(v[q])*real(v[q]) + imag(v[q])*imag(v[q])
		}
		norm = math.Sqrt(norm)
		if norm <= embeddingDropTol {
			continue // complex-parallel to a kept vector
		}
		col := len(kept)
		for q := 0; q < n; q++ {
			v[q] /= complex(norm, 0)
			fz[q*n+col] = v[q]
		}
		kept = append(kept, v)
		vals = append(vals, ev[p])
	}
	if len(kept) != n {
		return nil, nil, false
	}
	return vals, fz, true
}

// PZHeev: Hermitian eigensolve via the 2n×2n real-symmetric embedding
// [[Re −Im],[Im Re]]; every eigenvalue of A appears twice in the embedding
// and its complex eigenvectors are recovered by hermitianFromEmbedding.
func (Loopback) PZHeev(jobz, uplo byte, n int,
	a []complex128, ia, ja int, descA layout.Desc,
	w []float64,
	z []complex128, iz, jz int, descZ layout.Desc,
	work []complex128, lwork int, rwork []float64, lrwork int) int {

	if jobz != JobValues && jobz != JobVectors {
		return -1
	}
	if uplo != UploUpper && uplo != UploLower {
		return -2
	}
	if n <= 0 || descA.M != n || descA.N != n {
		return -3
	}
	if ia != 1 || ja != 1 {
		return -5
	}
	la, err := layout.FromDesc(descA)
	if err != nil || len(a) < la.LocalSize() {
		return -7
	}
	if len(w) < n {
		return -8
	}
	if iz != 1 || jz != 1 {
		return -10
	}
	lz, err := layout.FromDesc(descZ)
	if err != nil || descZ.M != n || descZ.N != n || len(z) < lz.LocalSize() {
		return -12
	}
	if len(work) < 1 {
		return -13
	}
	grid := descA.Ctx
	if lwork == ProbeWorkspace {
		work[0] = complex(float64(heevLwork(n, descA.NB, grid.Rows(), grid.Cols())), 0)
		return 0
	}
	if lwork < heevLwork(n, descA.NB, grid.Rows(), grid.Cols()) || len(work) < lwork {
		return -14
	}
	if lrwork < heevLrworkMin(n) || len(rwork) < lrwork {
		return -16
	}

	fa, ok := gatherCplx(la, a)
	if !ok {
		return infoComputeFailed
	}

	// Hermitian embedding: the eigensolve only reads the chosen triangle of
	// the matrix it is given, but the replicated matrix is full, so fill the
	// whole 2n×2n block structure.
	nn := 2 * n
	fb := make([]float64, nn*nn)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			re, im := real(fa[i*n+j]), imag(fa[i*n+j])
			fb[i*nn+j] = re         // top-left: Re
			fb[i*nn+(n+j)] = -im    // top-right: -Im
			fb[(n+i)*nn+j] = im     // bottom-left: Im
			fb[(n+i)*nn+(n+j)] = re // bottom-right: Re
		}
	}
	ev := make([]float64, nn)
	if !syevFull(jobz, UploUpper, nn, fb, ev) {
		return infoComputeFailed
	}
	if jobz != JobVectors {
		for i := 0; i < n; i++ {
			w[i] = ev[2*i] // doubled spectrum, one value per adjacent pair
		}
		return 0
	}

	vals, fz, ok := hermitianFromEmbedding(n, fb, ev)
	if !ok {
		return infoComputeFailed
	}
	copy(w[:n], vals)
	scatterCplx(lz, fz, z)
	scatterCplx(la, fz, a) // A is overwritten by the eigenvector matrix
	return 0
}

// ---------- PDTran ----------

// PDTran computes C = beta·C + alpha·Aᵀ on the replicated matrices and
// scatters C; A is globally n×m, C is m×n.
func (Loopback) PDTran(m, n int, alpha float64,
	a []float64, ia, ja int, descA layout.Desc,
	beta float64, c []float64, ic, jc int, descC layout.Desc) int {

	if m <= 0 {
		return -1
	}
	if n <= 0 {
		return -2
	}
	if ia != 1 || ja != 1 {
		return -5
	}
	la, err := layout.FromDesc(descA)
	if err != nil || descA.M != n || descA.N != m || len(a) < la.LocalSize() {
		return -7
	}
	if ic != 1 || jc != 1 {
		return -10
	}
	lc, err := layout.FromDesc(descC)
	if err != nil || descC.M != m || descC.N != n || len(c) < lc.LocalSize() {
		return -12
	}

	fa, ok := gatherReal(la, a)
	if !ok {
		return infoComputeFailed
	}
	fc, ok := gatherReal(lc, c)
	if !ok {
		return infoComputeFailed
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			fc[i*n+j] = beta*fc[i*n+j] + alpha*fa[j*m+i]
		}
	}
	scatterReal(lc, fc, c)
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
