package heat

import "math"

// applyFunc multiplies a linear operator by x, writing the result
// into out. Both slices have length n and out is fully overwritten.
type applyFunc func(x, out []float64)

// conjugateGradient solves applyA(x) = b for x by the matrix-free
// conjugate gradient method, starting from x's current contents. It
// reports whether the residual norm dropped below tol within
// maxIter iterations. No sparse matrix is ever materialized; applyA
// is called with the current search direction each iteration (spec
// §9).
func conjugateGradient(applyA applyFunc, b, x []float64, maxIter int, tol float64) bool {
	n := len(b)
	r := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)

	applyA(x, ap)
	for i := 0; i < n; i++ {
		r[i] = b[i] - ap[i]
		p[i] = r[i]
	}

	rsOld := dot(r, r)
	if math.Sqrt(rsOld) < tol {
		return true
	}

	for iter := 0; iter < maxIter; iter++ {
		applyA(p, ap)
		alphaDen := dot(p, ap)
		if math.Abs(alphaDen) < 1e-20 {
			break
		}
		alpha := rsOld / alphaDen
		for i := 0; i < n; i++ {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		rsNew := dot(r, r)
		if math.Sqrt(rsNew) < tol {
			return true
		}
		beta := rsNew / rsOld
		for i := 0; i < n; i++ {
			p[i] = r[i] + beta*p[i]
		}
		rsOld = rsNew
	}
	return false
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
