package factor

// Term is one prime power in a factorization.
type Term struct {
	Prime    int64
	Exponent int
}

// Factorization pairs an input value with its prime decomposition, both
// flat (with multiplicity) and grouped into prime powers.
type Factorization struct {
	Value   int64
	Factors []int64
	Terms   []Term
}

// New factorizes n and packages the result. The error is ErrNonPositive
// (wrapped) for n < 1.
func New(n int64) (Factorization, error) {
	fs, err := Factorize(n)
	if err != nil {
		return Factorization{}, err
	}
	return Factorization{Value: n, Factors: fs, Terms: group(fs)}, nil
}

// group collapses a sorted factor slice into (prime, exponent) terms.
func group(fs []int64) []Term {
	terms := []Term{}
	for _, f := range fs {
		if n := len(terms); n > 0 && terms[n-1].Prime == f {
			terms[n-1].Exponent++
			continue
		}
		terms = append(terms, Term{Prime: f, Exponent: 1})
	}
	return terms
}

// Product multiplies the factors back together; for any Factorization
// built by New it equals Value.
func (f Factorization) Product() int64 {
	p := int64(1)
	for _, x := range f.Factors {
		p *= x
	}
	return p
}

// IsPrime reports whether the value itself is prime, i.e. the
// factorization is the value alone.
func (f Factorization) IsPrime() bool {
	return len(f.Factors) == 1
}
