// SPDX-License-Identifier: MIT

package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmat/layout"
)

// The index translation sits on the hot path of every element access; keep
// the two directions allocation-free.

func mustLayout(tb testing.TB, rank, pr, pc, r, c, nbr, nbc int) layout.Layout {
	tb.Helper()
	l, err := layout.New(gridAt(tb, rank, pr, pc), r, c, nbr, nbc)
	require.NoError(tb, err)
	return l
}

func BenchmarkGlobalToLocal(b *testing.B) {
	l := mustLayout(b, 1, 2, 2, 1024, 1024, 16, 16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.GlobalToLocal(i%1024, (i*7)%1024)
	}
}

func BenchmarkLocalToGlobal(b *testing.B) {
	l := mustLayout(b, 1, 2, 2, 1024, 1024, 16, 16)
	n := l.LocalSize()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = l.LocalToGlobal(i % n)
	}
}

func BenchmarkOwnedEnumeration(b *testing.B) {
	l := mustLayout(b, 0, 2, 2, 512, 512, 8, 8)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sum := 0
		l.Owned(func(row, col int) bool {
			sum += row + col
			return true
		})
		_ = sum
	}
}
