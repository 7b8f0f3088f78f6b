// core/factor/factor.go
package factor

import (
	"errors"
	"fmt"
)

// ErrNonPositive is returned for inputs below 1. Trial division makes no
// progress on 0 and produces nonsense on negatives, so they are rejected
// instead of looping or emitting a negative "factor".
var ErrNonPositive = errors.New("value must be ≥ 1")

// Factorize returns the prime factors of n in non-decreasing order, with
// multiplicity: the product of the result equals n. Factorize(1) returns
// an empty slice (1 has no prime factors).
//
// Plain trial division: a candidate divisor starts at 2 and is retried
// after every successful division, so repeated primes are each recorded.
// Once candidate² exceeds the remainder, the remainder (if > 1) is itself
// prime and closes the list. O(√n) trials in the worst case; int64-sized
// semiprimes with two large factors will be slow, which is acceptable
// here.
func Factorize(n int64) ([]int64, error) {
	if n < 1 {
		return nil, fmt.Errorf("factorize %d: %w", n, ErrNonPositive)
	}

	factors := []int64{}
	d := int64(2)
	// d ≤ √n ≤ √(2^63) here, so d*d cannot overflow.
	for d*d <= n {
		if n%d == 0 {
			factors = append(factors, d)
			n /= d
		} else {
			d++
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors, nil
}
