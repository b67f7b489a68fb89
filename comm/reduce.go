// SPDX-License-Identifier: MIT

package comm

// SumReduce sums buf element-wise across all ranks, in place, through the
// communicator's float64 collective. complex128 buffers are viewed as
// re/im pairs so one collective serves both scalar kinds.
//
// Like AllReduceSum, this is a lock-step call: every rank of c must reach it
// with a buffer of the same length and element type.
func SumReduce[T float64 | complex128](c Communicator, buf []T) error {
	switch b := any(buf).(type) {
	case []float64:
		return c.AllReduceSum(b)
	case []complex128:
		flat := make([]float64, 2*len(b))
		for i, v := range b {
			flat[2*i] = real(v)
			flat[2*i+1] = imag(v)
		}
		if err := c.AllReduceSum(flat); err != nil {
			return err
		}
		for i := range b {
			b[i] = complex(flat[2*i], flat[2*i+1])
		}
	}
	return nil
}
