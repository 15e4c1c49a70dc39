package grid

import "github.com/ctessum/sparse"

// Kernel1 returns the 4-neighbour Laplacian kernel used by the host's
// cross-diffusion scheme.
func Kernel1() *sparse.DenseArray {
	k := sparse.ZerosDense(3, 3)
	k.Set(1., 0, 1)
	k.Set(1., 1, 0)
	k.Set(-4., 1, 1)
	k.Set(1., 1, 2)
	k.Set(1., 2, 1)
	return k
}

// Kernel2 returns the 4-neighbour sum kernel (zero centre).
func Kernel2() *sparse.DenseArray {
	k := sparse.ZerosDense(3, 3)
	k.Set(1., 0, 1)
	k.Set(1., 1, 0)
	k.Set(1., 1, 2)
	k.Set(1., 2, 1)
	return k
}

// Convolve applies kernel to src under constant (zero) boundary padding and
// returns a fresh array. Written as a correlation; the kernels used here are
// all symmetric so the distinction does not matter.
func Convolve(src, kernel *sparse.DenseArray) *sparse.DenseArray {
	nr, nc := src.Shape[0], src.Shape[1]
	kr, kc := kernel.Shape[0], kernel.Shape[1]
	ro, co := kr/2, kc/2
	out := sparse.ZerosDense(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			sum := 0.
			for ki := 0; ki < kr; ki++ {
				ii := i + ki - ro
				if ii < 0 || ii >= nr {
					continue
				}
				for kj := 0; kj < kc; kj++ {
					jj := j + kj - co
					if jj < 0 || jj >= nc {
						continue
					}
					sum += src.Get(ii, jj) * kernel.Get(ki, kj)
				}
			}
			out.Set(sum, i, j)
		}
	}
	return out
}
