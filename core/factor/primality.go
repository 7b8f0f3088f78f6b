package factor

// IsPrime reports whether n is prime by trial division, checking 2 and
// then odd candidates up to √n. Agrees with Factorize: n is prime exactly
// when Factorize(n) returns [n].
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
