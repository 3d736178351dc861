package ops

import "github.com/seed-ml/seed/internal/parallel"

// Dense float64 matrix kernels shared by the operation library.
// All buffers are row-major; dimensions are validated by the callers.
//
// Kernels fan out across output rows: each goroutine owns a disjoint set
// of rows and the per-element summation order is fixed, so parallel runs
// are bit-identical to sequential ones.

var kernelConfig = parallel.DefaultConfig()

// matMul computes C = A·B where A is [m,k] and B is [k,n].
func matMul(a []float64, m, k int, b []float64, n int) []float64 {
	c := make([]float64, m*n)
	parallel.For(m, func(i int) {
		for p := 0; p < k; p++ {
			av := a[i*k+p]
			if av == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				c[i*n+j] += av * b[p*n+j]
			}
		}
	}, kernelConfig)
	return c
}

// matMulTransA computes C = Aᵀ·B where A is [m,k] and B is [m,n],
// producing a [k,n] result.
func matMulTransA(a []float64, m, k int, b []float64, n int) []float64 {
	c := make([]float64, k*n)
	parallel.For(k, func(p int) {
		for i := 0; i < m; i++ {
			av := a[i*k+p]
			if av == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				c[p*n+j] += av * b[i*n+j]
			}
		}
	}, kernelConfig)
	return c
}

// matMulTransB computes C = A·Bᵀ where A is [m,k] and B is [n,k],
// producing a [m,n] result.
func matMulTransB(a []float64, m, k int, b []float64, n int) []float64 {
	c := make([]float64, m*n)
	parallel.For(m, func(i int) {
		for j := 0; j < n; j++ {
			sum := 0.0
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[j*k+p]
			}
			c[i*n+j] = sum
		}
	}, kernelConfig)
	return c
}

// columnSum reduces a [m,n] matrix to its per-column sums [n].
func columnSum(a []float64, m, n int) []float64 {
	sums := make([]float64, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sums[j] += a[i*n+j]
		}
	}
	return sums
}
