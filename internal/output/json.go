// internal/output/json.go
package output

import (
	"io"

	"primefact-core/factor"
	"primefact/internal/jsonutil"
	"primefact/pkg/api"
)

func init() {
	register("json", func(w io.Writer, cfg Config) Writer {
		return &jsonWriter{w: w, exponents: cfg.Exponents}
	})
	register("jsonl", func(w io.Writer, cfg Config) Writer {
		return &jsonlWriter{w: w, exponents: cfg.Exponents}
	})
}

// ToAPI converts a domain factorization to the stable wire schema (v1).
// Terms are attached only when the caller asked for exponent grouping.
func ToAPI(f factor.Factorization, exponents bool) api.FactorizationV1 {
	v := api.FactorizationV1{
		Value:   f.Value,
		Factors: append([]int64{}, f.Factors...),
		Prime:   f.IsPrime(),
	}
	if exponents {
		v.Terms = make([]api.TermV1, 0, len(f.Terms))
		for _, tm := range f.Terms {
			v.Terms = append(v.Terms, api.TermV1{Prime: tm.Prime, Exponent: tm.Exponent})
		}
	}
	return v
}

// jsonWriter buffers everything and emits a single pretty-indented array.
type jsonWriter struct {
	w         io.Writer
	exponents bool
	buf       []api.FactorizationV1
}

func (j *jsonWriter) Write(f factor.Factorization) error {
	j.buf = append(j.buf, ToAPI(f, j.exponents))
	return nil
}

func (j *jsonWriter) Close() error {
	if j.buf == nil {
		j.buf = []api.FactorizationV1{}
	}
	return jsonutil.EncodePretty(j.w, j.buf)
}

// jsonlWriter streams one compact object per line.
type jsonlWriter struct {
	w         io.Writer
	exponents bool
}

func (j *jsonlWriter) Write(f factor.Factorization) error {
	return jsonutil.EncodeLine(j.w, ToAPI(f, j.exponents))
}

func (j *jsonlWriter) Close() error { return nil }
