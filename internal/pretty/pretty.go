// internal/pretty/pretty.go
package pretty

import (
	"fmt"
	"strings"

	"primefact-core/factor"
)

// Options control the text rendering of a factorization.
type Options struct {
	// Collapse repeated primes into powers (2^2 x 3 instead of 2 x 2 x 3).
	Exponents bool

	// Glyphs
	TimesGlyph string // default "x"
	PowerGlyph string // default "^"
}

// DefaultOptions is the plain multiplicative form.
var DefaultOptions = Options{
	TimesGlyph: "x",
	PowerGlyph: "^",
}

// Render returns the one-line human form, e.g.
//
//	12 = 2 x 2 x 3
//	17 = 17 (prime)
//	1 = 1
func Render(f factor.Factorization, opt Options) string {
	times := opt.TimesGlyph
	if times == "" {
		times = DefaultOptions.TimesGlyph
	}
	power := opt.PowerGlyph
	if power == "" {
		power = DefaultOptions.PowerGlyph
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d = ", f.Value)

	switch {
	case len(f.Factors) == 0:
		b.WriteString("1")
	case opt.Exponents:
		for i, tm := range f.Terms {
			if i > 0 {
				b.WriteString(" " + times + " ")
			}
			if tm.Exponent == 1 {
				fmt.Fprintf(&b, "%d", tm.Prime)
			} else {
				fmt.Fprintf(&b, "%d%s%d", tm.Prime, power, tm.Exponent)
			}
		}
	default:
		for i, p := range f.Factors {
			if i > 0 {
				b.WriteString(" " + times + " ")
			}
			fmt.Fprintf(&b, "%d", p)
		}
	}

	if f.IsPrime() {
		b.WriteString(" (prime)")
	}
	return b.String()
}
