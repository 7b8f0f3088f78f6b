// internal/output/tsv.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"primefact-core/factor"
)

func init() {
	register("tsv", func(w io.Writer, cfg Config) Writer {
		return &tsvWriter{w: w, header: cfg.Header}
	})
}

type tsvWriter struct {
	w      io.Writer
	header bool
}

func (t *tsvWriter) Write(f factor.Factorization) error {
	if t.header {
		t.header = false
		if _, err := fmt.Fprintln(t.w, "value\tfactors\tprime"); err != nil {
			return err
		}
	}
	fs := make([]string, len(f.Factors))
	for i, p := range f.Factors {
		fs[i] = strconv.FormatInt(p, 10)
	}
	_, err := fmt.Fprintf(t.w, "%d\t%s\t%t\n", f.Value, strings.Join(fs, " "), f.IsPrime())
	return err
}

func (t *tsvWriter) Close() error { return nil }
