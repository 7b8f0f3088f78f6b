// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"primefact-core/factor"
	"primefact/internal/pretty"
)

func init() {
	register("text", func(w io.Writer, cfg Config) Writer {
		opt := pretty.DefaultOptions
		opt.Exponents = cfg.Exponents
		return &textWriter{w: w, opt: opt}
	})
}

type textWriter struct {
	w   io.Writer
	opt pretty.Options
}

func (t *textWriter) Write(f factor.Factorization) error {
	_, err := fmt.Fprintln(t.w, pretty.Render(f, t.opt))
	return err
}

func (t *textWriter) Close() error { return nil }
