package internal

// Binomial returns the binomial coefficient C(n, k).
//
// The product is built one factor at a time, multiplying before dividing,
// so every partial result is itself a binomial coefficient and stays exact
// while it fits in a float64 mantissa.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	if k > n-k {
		k = n - k // optimization
	}

	r := 1.0
	for d := 1; d <= k; d++ {
		r = r * float64(n-k+d) / float64(d)
	}

	return r
}
